package indeed

import (
	"context"
	"testing"

	"jobtrend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchURL(t *testing.T) {
	url := searchURL("growth manager", "New York", 10)

	assert.Contains(t, url, "q=growth+manager")
	assert.Contains(t, url, "l=New+York")
	assert.Contains(t, url, "start=10")
	assert.Contains(t, url, "fromage=1", "only postings from the last day")
}

func TestFetchPageRespectsConfiguredPageLimit(t *testing.T) {
	s := New(&config.Config{MaxPagesPerSite: 2})

	// pages past the limit are skipped before any browser work happens,
	// so a nil session must never be touched
	jobs, err := s.FetchPage(context.Background(), nil, "growth", "Remote", 2)

	require.NoError(t, err)
	assert.Nil(t, jobs)
}
