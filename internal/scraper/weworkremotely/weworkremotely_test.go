package weworkremotely

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyMarkup = `
<section class="jobs">
  <ul>
    <li>
      <a href="/remote-jobs/acme-growth-marketing-manager">
        <span class="company">Acme</span>
        <span class="title">Growth Marketing Manager</span>
        <span class="region company">Anywhere in the World</span>
      </a>
    </li>
  </ul>
</section>`

const currentMarkup = `
<section class="jobs">
  <ul>
    <li>
      <a href="/listings/globex-seo-specialist">
        <p class="new-listing__company-name">Globex</p>
        <h4 class="new-listing__header__title">SEO Specialist</h4>
      </a>
    </li>
  </ul>
</section>`

func docFrom(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc.Find("section.jobs li").First()
}

func TestFirstTextLegacySelectors(t *testing.T) {
	li := docFrom(t, legacyMarkup)

	assert.Equal(t, "Growth Marketing Manager", firstText(li, titleSelectors))
	assert.Equal(t, "Acme", firstText(li, companySelectors))
	assert.Equal(t, "Anywhere in the World", firstText(li, regionSelectors))
}

func TestFirstTextFallsBackToCurrentSelectors(t *testing.T) {
	li := docFrom(t, currentMarkup)

	assert.Equal(t, "SEO Specialist", firstText(li, titleSelectors))
	assert.Equal(t, "Globex", firstText(li, companySelectors))
	assert.Equal(t, "", firstText(li, regionSelectors), "missing field stays empty instead of failing")
}
