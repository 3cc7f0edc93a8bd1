package services

import (
	"sort"
	"strings"

	"vibin_web/models"
)

// Result batch sizes of the search page
const (
	searchMinResults = 5
	searchMaxResults = 19
	applyMinResults  = 8
	applyMaxResults  = 27
	initialResults   = 12
)

// SearchModel holds the filter criteria and the current result set.
//
// With enforce off the criteria are captured but do not influence results, which are
// a fresh random batch on every apply. With enforce on the batch is filtered and sorted.
type SearchModel struct {
	filters models.SearchFilters
	query   string
	results []models.Profile
	enforce bool
}

func NewSearchModel(initial []models.Profile, enforce bool) *SearchModel {
	return &SearchModel{
		filters: models.DefaultSearchFilters(),
		results: append([]models.Profile{}, initial...),
		enforce: enforce,
	}
}

func (s *SearchModel) Filters() models.SearchFilters {
	return s.filters.Clone()
}

// SetFilters replaces the criteria. The caller validates them.
func (s *SearchModel) SetFilters(f models.SearchFilters) {
	if f.Tags == nil {
		f.Tags = []string{}
	}
	s.filters = f.Clone()
}

// Clear resets every field to its default
func (s *SearchModel) Clear() {
	s.filters = models.DefaultSearchFilters()
}

// ToggleTag adds tag when absent and removes it when present. No maximum.
func (s *SearchModel) ToggleTag(tag string) {
	for i, t := range s.filters.Tags {
		if t == tag {
			s.filters.Tags = append(s.filters.Tags[:i], s.filters.Tags[i+1:]...)
			return
		}
	}
	s.filters.Tags = append(s.filters.Tags, tag)
}

func (s *SearchModel) Query() string {
	return s.query
}

func (s *SearchModel) Results() []models.Profile {
	return append([]models.Profile{}, s.results...)
}

// ReplaceResults discards the current results for a fresh batch
func (s *SearchModel) ReplaceResults(query string, batch []models.Profile) {
	s.query = query
	if s.enforce {
		batch = ApplyFilters(batch, s.filters)
	}
	s.results = append([]models.Profile{}, batch...)
}

// ApplyFilters keeps the profiles that satisfy f and orders them by f.SortBy.
// Distance is not part of Profile, so distance sorting keeps the batch order.
func ApplyFilters(profiles []models.Profile, f models.SearchFilters) []models.Profile {
	location := strings.ToLower(strings.TrimSpace(f.Location))

	out := make([]models.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.Age < f.AgeRange[0] || p.Age > f.AgeRange[1] {
			continue
		}
		if p.FameRating < f.FameRange[0] || p.FameRating > f.FameRange[1] {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(p.Location), location) {
			continue
		}
		if len(f.Tags) > 0 && !hasAnyTag(p, f.Tags) {
			continue
		}
		out = append(out, p)
	}

	switch f.SortBy {
	case models.SortByAge:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Age < out[j].Age })
	case models.SortByFame:
		sort.SliceStable(out, func(i, j int) bool { return out[i].FameRating > out[j].FameRating })
	case models.SortByName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}
	return out
}

func hasAnyTag(p models.Profile, tags []string) bool {
	for _, tag := range tags {
		if p.HasTag(tag) {
			return true
		}
	}
	return false
}
