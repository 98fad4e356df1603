package query

import (
	"fmt"
	"strconv"
	"time"

	"licitemos/internal/models"
)

// Sortable fields shared by all listing records.
const (
	SortByCode     = "codigo"
	SortByTitle    = "nombre"
	SortByOrganism = "organismo"
	SortByAmount   = "monto"
	SortByDate     = "cierre"
)

const (
	Ascending  = "asc"
	Descending = "desc"
)

// Params is the full query state for one listing panel. It is passed by
// value and is JSON-serializable, so independent panels (tenders vs.
// orders) can hold their own copy without shared state.
type Params struct {
	SearchTerm string `json:"searchTerm,omitempty"`
	Category   string `json:"categoria,omitempty"`
	Region     string `json:"region,omitempty"`
	Type       string `json:"tipo,omitempty"`
	Status     string `json:"estado,omitempty"`

	AmountMin *int64     `json:"montoMin,omitempty"`
	AmountMax *int64     `json:"montoMax,omitempty"`
	DateFrom  *time.Time `json:"fechaDesde,omitempty"`
	DateTo    *time.Time `json:"fechaHasta,omitempty"`

	SortField     string `json:"sortField,omitempty"`
	SortDirection string `json:"sortDirection,omitempty"`

	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

func validSortField(field string) bool {
	switch field {
	case "", SortByCode, SortByTitle, SortByOrganism, SortByAmount, SortByDate:
		return true
	default:
		return false
	}
}

func (p Params) validateSort() error {
	if !validSortField(p.SortField) {
		return fmt.Errorf("%w: unknown sort field %q", models.ErrInvalidParameter, p.SortField)
	}
	switch p.SortDirection {
	case "", Ascending, Descending:
	default:
		return fmt.Errorf("%w: unknown sort direction %q", models.ErrInvalidParameter, p.SortDirection)
	}
	return nil
}

func (p Params) validatePage() error {
	if p.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1, got %d", models.ErrInvalidParameter, p.Page)
	}
	if p.PageSize < 1 {
		return fmt.Errorf("%w: pageSize must be >= 1, got %d", models.ErrInvalidParameter, p.PageSize)
	}
	return nil
}

// ParamsFromFilters turns a persisted saved-search filter set into runnable
// query params. Amount bounds are stored as strings by the UI and parsed
// here.
func ParamsFromFilters(f models.SearchFilters, page, pageSize int) (Params, error) {
	p := Params{
		SearchTerm: f.SearchTerm,
		Category:   f.Category,
		Region:     f.Region,
		Type:       f.Type,
		Status:     f.Status,
		Page:       page,
		PageSize:   pageSize,
	}

	min, err := parseAmount(f.AmountMin, "montoMin")
	if err != nil {
		return Params{}, err
	}
	p.AmountMin = min

	max, err := parseAmount(f.AmountMax, "montoMax")
	if err != nil {
		return Params{}, err
	}
	p.AmountMax = max

	return p, nil
}

func parseAmount(s, field string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: invalid %s value %q", models.ErrInvalidParameter, field, s)
	}
	return &n, nil
}

func isWildcard(s string) bool {
	return s == "" || s == models.WildcardAll || s == models.WildcardAllM
}
