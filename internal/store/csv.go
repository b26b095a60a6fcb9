package store

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"jobtrend/internal/models"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

// header is the fixed column order of the jobs file. The skills column is a
// single semicolon-joined field and must round-trip through Split/Join.
var header = []string{
	"id", "title", "company", "location", "salary", "skills",
	"url", "source", "scraped_date", "search_query", "search_location",
}

// Store persists job postings to a flat CSV file. The acquisition path only
// ever appends; existing rows are never mutated. The duplicate filter is
// check-then-write without a lock, so the store assumes a single acquisition
// process writes at a time.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// ensureFile creates the data directory and a header-only file when the
// backing file does not exist yet.
func (s *Store) ensureFile() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// ReadAll returns every persisted posting in file (append) order. A missing
// file is created empty and yields an empty slice; any other failure degrades
// to the built-in sample dataset so the dashboard always has something to show.
func (s *Store) ReadAll() []models.JobPosting {
	if err := s.ensureFile(); err != nil {
		log.Printf("⚠️ Could not prepare jobs file: %v. Falling back to sample data.", err)
		return SamplePostings()
	}

	f, err := os.Open(s.path)
	if err != nil {
		log.Printf("⚠️ Could not open %s: %v. Falling back to sample data.", s.path, err)
		return SamplePostings()
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)
	rows, err := r.ReadAll()
	if err != nil {
		log.Printf("⚠️ Could not parse %s: %v. Falling back to sample data.", s.path, err)
		return SamplePostings()
	}

	postings := make([]models.JobPosting, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		postings = append(postings, rowToPosting(row))
	}
	return postings
}

// Append filters candidates against the existing history and writes only the
// new ones, assigning each a fresh id. Returns the number of records written.
// A candidate is a duplicate when its URL matches an existing non-empty URL,
// or when its lower-cased title-company key matches an existing record.
func (s *Store) Append(candidates []models.JobPosting) (int, error) {
	if err := s.ensureFile(); err != nil {
		return 0, fmt.Errorf("could not prepare jobs file: %w", err)
	}

	existing := s.ReadAll()
	urls := mapset.NewThreadUnsafeSet[string]()
	keys := mapset.NewThreadUnsafeSet[string]()
	for _, p := range existing {
		if p.URL != "" {
			urls.Add(p.URL)
		}
		keys.Add(p.DedupKey())
	}

	var kept []models.JobPosting
	for _, c := range candidates {
		c = sanitize(c)
		if !c.Valid() {
			continue
		}
		if c.URL != "" && urls.Contains(c.URL) {
			continue
		}
		if keys.Contains(c.DedupKey()) {
			continue
		}

		c.ID = uuid.NewString()
		kept = append(kept, c)
		if c.URL != "" {
			urls.Add(c.URL)
		}
		keys.Add(c.DedupKey())
	}

	if len(kept) == 0 {
		log.Println("ℹ️ No new unique jobs to add")
		return 0, nil
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return 0, fmt.Errorf("could not open jobs file for append: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, p := range kept {
		if err := w.Write(postingToRow(p)); err != nil {
			return 0, fmt.Errorf("could not write job row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, fmt.Errorf("could not flush jobs file: %w", err)
	}

	log.Printf("💾 Appended %d new jobs to %s", len(kept), s.path)
	return len(kept), nil
}

// WriteAll replaces the entire persisted history. Only used for seeding demo
// data, never by the acquisition path.
func (s *Store) WriteAll(records []models.JobPosting) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("could not create jobs file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, p := range records {
		p = sanitize(p)
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if err := w.Write(postingToRow(p)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	log.Printf("💾 Wrote %d jobs to %s", len(records), s.path)
	return nil
}

// Stats summarizes the store in a single pass over ReadAll.
type Stats struct {
	TotalJobs  int            `json:"total_jobs"`
	RecentJobs int            `json:"recent_jobs"`
	Sources    map[string]int `json:"sources"`
	Companies  map[string]int `json:"companies"`
	Locations  map[string]int `json:"locations"`
}

func (s *Store) Stats() Stats {
	postings := s.ReadAll()
	stats := Stats{
		TotalJobs: len(postings),
		Sources:   make(map[string]int),
		Companies: make(map[string]int),
		Locations: make(map[string]int),
	}

	dayAgo := time.Now().Add(-24 * time.Hour)
	for _, p := range postings {
		stats.Sources[p.Source]++
		stats.Companies[p.Company]++
		stats.Locations[p.Location]++
		if p.ScrapedAt.After(dayAgo) {
			stats.RecentJobs++
		}
	}
	return stats
}

// sanitize normalizes candidate fields before dedup and persistence.
func sanitize(p models.JobPosting) models.JobPosting {
	p.Title = models.CleanText(p.Title)
	p.Company = models.CleanText(p.Company)
	p.Location = models.CleanText(p.Location)
	p.Salary = models.CleanText(p.Salary)
	p.Skills = models.NormalizeSkills(p.Skills)
	if p.ScrapedAt.IsZero() {
		p.ScrapedAt = time.Now()
	}
	return p
}

func postingToRow(p models.JobPosting) []string {
	return []string{
		p.ID,
		p.Title,
		p.Company,
		p.Location,
		p.Salary,
		strings.Join(p.Skills, ";"),
		p.URL,
		p.Source,
		p.ScrapedAt.UTC().Format(time.RFC3339),
		p.SearchQuery,
		p.SearchLocation,
	}
}

func rowToPosting(row []string) models.JobPosting {
	p := models.JobPosting{
		ID:             row[0],
		Title:          row[1],
		Company:        row[2],
		Location:       row[3],
		Salary:         row[4],
		URL:            row[6],
		Source:         row[7],
		SearchQuery:    row[9],
		SearchLocation: row[10],
	}

	if row[5] != "" {
		for _, skill := range strings.Split(row[5], ";") {
			if skill = strings.TrimSpace(skill); skill != "" {
				p.Skills = append(p.Skills, skill)
			}
		}
	}

	if t, err := time.Parse(time.RFC3339, row[8]); err == nil {
		p.ScrapedAt = t
	}
	return p
}
