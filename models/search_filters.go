package models

// Sort keys accepted by SearchFilters.SortBy
const (
	SortByDistance = "distance"
	SortByAge      = "age"
	SortByFame     = "fame"
	SortByName     = "name"
)

// SearchFilters is the criteria object of the search page. AgeRange and FameRange are [min, max].
type SearchFilters struct {
	AgeRange  [2]int     `json:"ageRange" validate:"dive,gte=18,lte=99"`
	Distance  int        `json:"distance" validate:"gte=1,lte=500"`
	FameRange [2]float64 `json:"fameRange" validate:"dive,gte=0,lte=5"`
	Tags      []string   `json:"tags"`
	Location  string     `json:"location" validate:"max=120"`
	SortBy    string     `json:"sortBy" validate:"oneof=distance age fame name"`
}

// DefaultSearchFilters returns the filters a fresh or cleared search starts with
func DefaultSearchFilters() SearchFilters {
	return SearchFilters{
		AgeRange:  [2]int{18, 50},
		Distance:  100,
		FameRange: [2]float64{0, 5},
		Tags:      []string{},
		Location:  "",
		SortBy:    SortByDistance,
	}
}

// ActiveCount is the badge number shown next to the filters button
func (f SearchFilters) ActiveCount() int {
	n := len(f.Tags)
	if f.Location != "" {
		n++
	}
	return n
}

// Clone returns a copy that does not share the Tags slice
func (f SearchFilters) Clone() SearchFilters {
	c := f
	c.Tags = append([]string{}, f.Tags...)
	return c
}
