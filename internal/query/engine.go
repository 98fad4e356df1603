package query

import (
	"sort"
	"strings"
	"time"
)

// Record is the view a listing record exposes to the engine. Tenders,
// awards and purchase orders all implement it; record kinds without a
// region or type tag return "" and are only ever matched through wildcard
// filters on those fields.
type Record interface {
	RecordID() string
	CodeValue() string
	TitleValue() string
	OrganismValue() string
	SearchText() []string
	CategoryTag() string
	RegionTag() string
	TypeTag() string
	StatusTag() string
	AmountValue() (int64, bool)
	DateValue() time.Time
}

type Result struct {
	Items        []Record `json:"items"`
	TotalMatched int      `json:"totalMatched"`
	TotalPages   int      `json:"totalPages"`
}

// Apply filters, sorts and paginates records according to params. The
// input slice is never mutated; Items is always a fresh slice. Invalid
// pagination or sort parameters are rejected, never coerced.
func Apply(records []Record, p Params) (Result, error) {
	if err := p.validatePage(); err != nil {
		return Result{}, err
	}

	matched, err := filterSorted(records, p)
	if err != nil {
		return Result{}, err
	}

	total := len(matched)
	totalPages := (total + p.PageSize - 1) / p.PageSize

	start := (p.Page - 1) * p.PageSize
	if start >= total {
		return Result{Items: []Record{}, TotalMatched: total, TotalPages: totalPages}, nil
	}
	end := start + p.PageSize
	if end > total {
		end = total
	}

	items := make([]Record, end-start)
	copy(items, matched[start:end])

	return Result{Items: items, TotalMatched: total, TotalPages: totalPages}, nil
}

// filterSorted returns the full matched set in final order, before
// pagination.
func filterSorted(records []Record, p Params) ([]Record, error) {
	if err := p.validateSort(); err != nil {
		return nil, err
	}

	matched := make([]Record, 0, len(records))
	for _, r := range records {
		if Matches(r, p) {
			matched = append(matched, r)
		}
	}

	if p.SortField != "" {
		desc := p.SortDirection == Descending
		sort.SliceStable(matched, func(i, j int) bool {
			return recordLess(matched[i], matched[j], p.SortField, desc)
		})
	}

	return matched, nil
}

// Matches reports whether a record satisfies every active predicate in
// params. Wildcard values deactivate their predicate.
func Matches(r Record, p Params) bool {
	if p.SearchTerm != "" && !matchesSearch(r, p.SearchTerm) {
		return false
	}
	if !isWildcard(p.Category) && r.CategoryTag() != p.Category {
		return false
	}
	if !isWildcard(p.Region) && r.RegionTag() != p.Region {
		return false
	}
	if !isWildcard(p.Type) && r.TypeTag() != p.Type {
		return false
	}
	if !isWildcard(p.Status) && r.StatusTag() != p.Status {
		return false
	}

	if p.AmountMin != nil || p.AmountMax != nil {
		amount, ok := r.AmountValue()
		if !ok {
			return false
		}
		if p.AmountMin != nil && amount < *p.AmountMin {
			return false
		}
		if p.AmountMax != nil && amount > *p.AmountMax {
			return false
		}
	}

	if p.DateFrom != nil && r.DateValue().Before(*p.DateFrom) {
		return false
	}
	if p.DateTo != nil && r.DateValue().After(*p.DateTo) {
		return false
	}

	return true
}

func matchesSearch(r Record, term string) bool {
	term = strings.ToLower(term)
	for _, field := range r.SearchText() {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// recordLess orders two records on the sort field. A record with no value
// for the field sorts after every record with one, in both directions;
// equal records report false so the stable sort preserves fixture order.
func recordLess(a, b Record, field string, desc bool) bool {
	if field == SortByAmount {
		av, aok := a.AmountValue()
		bv, bok := b.AmountValue()
		if aok != bok {
			return aok
		}
		if !aok || av == bv {
			return false
		}
		if desc {
			return av > bv
		}
		return av < bv
	}

	if field == SortByDate {
		ad, bd := a.DateValue(), b.DateValue()
		if ad.Equal(bd) {
			return false
		}
		if desc {
			return ad.After(bd)
		}
		return ad.Before(bd)
	}

	var as, bs string
	switch field {
	case SortByCode:
		as, bs = a.CodeValue(), b.CodeValue()
	case SortByTitle:
		as, bs = a.TitleValue(), b.TitleValue()
	case SortByOrganism:
		as, bs = a.OrganismValue(), b.OrganismValue()
	}
	if as == bs {
		return false
	}
	if desc {
		return as > bs
	}
	return as < bs
}
