package query_test

import (
	"errors"
	"sort"
	"testing"
	"time"

	gofakeit "github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"licitemos/internal/fixtures"
	"licitemos/internal/models"
	"licitemos/internal/query"
)

func i64(n int64) *int64 { return &n }

func tptr(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func firstPage(pageSize int) query.Params {
	return query.Params{Page: 1, PageSize: pageSize}
}

func ids(items []query.Record) []string {
	out := make([]string, 0, len(items))
	for _, r := range items {
		out = append(out, r.RecordID())
	}
	return out
}

func TestApplyCategoryWithWildcardRegion(t *testing.T) {
	p := firstPage(10)
	p.Category = "Tecnología"
	p.Region = models.WildcardAll

	res, err := query.Apply(fixtures.TenderRecords(), p)
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalMatched)
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, []string{"1", "8", "12"}, ids(res.Items))
	for _, r := range res.Items {
		assert.Equal(t, "Tecnología", r.CategoryTag())
	}
}

func TestApplySearchTermIsCaseInsensitiveSubstring(t *testing.T) {
	p := firstPage(10)
	p.SearchTerm = "VIALIDAD"

	res, err := query.Apply(fixtures.TenderRecords(), p)
	require.NoError(t, err)

	assert.Equal(t, 2, res.TotalMatched)
	assert.Equal(t, []string{"2", "6"}, ids(res.Items))
}

func TestApplySearchTermMatchesCounterparty(t *testing.T) {
	p := firstPage(10)
	p.SearchTerm = "ecoconsult"

	res, err := query.Apply(fixtures.AwardRecords(), p)
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalMatched)
}

func TestApplyAmountMinExcludesUnspecified(t *testing.T) {
	p := firstPage(20)
	p.AmountMin = i64(50000000)

	res, err := query.Apply(fixtures.TenderRecords(), p)
	require.NoError(t, err)

	assert.Equal(t, 5, res.TotalMatched)
	for _, r := range res.Items {
		amount, ok := r.AmountValue()
		require.True(t, ok, "record %s with unspecified amount passed an amount bound", r.RecordID())
		assert.GreaterOrEqual(t, amount, int64(50000000))
	}
}

func TestApplyAmountBoundsAreInclusive(t *testing.T) {
	p := firstPage(20)
	p.AmountMin = i64(45000000)
	p.AmountMax = i64(45000000)

	res, err := query.Apply(fixtures.TenderRecords(), p)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids(res.Items))
}

func TestApplyDateBoundsAreInclusive(t *testing.T) {
	p := firstPage(20)
	p.DateTo = tptr("2025-11-03")

	res, err := query.Apply(fixtures.TenderRecords(), p)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(res.Items))

	p = firstPage(20)
	p.DateFrom = tptr("2025-11-03")
	res, err = query.Apply(fixtures.TenderRecords(), p)
	require.NoError(t, err)
	assert.Equal(t, 12, res.TotalMatched)
}

func TestApplySoundnessAndCompleteness(t *testing.T) {
	configs := []query.Params{
		{Category: "Infraestructura"},
		{Region: "Metropolitana", Status: string(models.TenderOpen)},
		{SearchTerm: "sistema", AmountMin: i64(40000000)},
		{Type: string(models.TTLarge)},
		{AmountMax: i64(30000000), DateTo: tptr("2025-11-10")},
	}

	records := fixtures.TenderRecords()
	for _, p := range configs {
		p.Page = 1
		p.PageSize = len(records)

		res, err := query.Apply(records, p)
		require.NoError(t, err)

		matched := map[string]bool{}
		for _, r := range res.Items {
			assert.True(t, query.Matches(r, p), "returned record %s fails a predicate", r.RecordID())
			matched[r.RecordID()] = true
		}
		for _, r := range records {
			if !matched[r.RecordID()] {
				assert.False(t, query.Matches(r, p), "record %s satisfies all predicates but was excluded", r.RecordID())
			}
		}
	}
}

func TestApplyNullAmountSortsLastBothDirections(t *testing.T) {
	for _, dir := range []string{query.Ascending, query.Descending} {
		p := firstPage(20)
		p.SortField = query.SortByAmount
		p.SortDirection = dir

		res, err := query.Apply(fixtures.TenderRecords(), p)
		require.NoError(t, err)
		require.Equal(t, 12, len(res.Items))

		last := res.Items[len(res.Items)-1]
		_, ok := last.AmountValue()
		assert.False(t, ok, "direction %s: record with unspecified amount should sort last", dir)

		for _, r := range res.Items[:len(res.Items)-1] {
			_, ok := r.AmountValue()
			assert.True(t, ok)
		}
	}
}

func TestApplySortDirections(t *testing.T) {
	p := firstPage(20)
	p.SortField = query.SortByAmount
	p.SortDirection = query.Ascending

	res, err := query.Apply(fixtures.TenderRecords(), p)
	require.NoError(t, err)
	assert.Equal(t, "3", res.Items[0].RecordID())

	p.SortDirection = query.Descending
	res, err = query.Apply(fixtures.TenderRecords(), p)
	require.NoError(t, err)
	assert.Equal(t, "11", res.Items[0].RecordID())
}

func TestApplySortIsStable(t *testing.T) {
	p := firstPage(20)
	p.SortField = query.SortByOrganism
	p.SortDirection = query.Ascending

	base, err := query.Apply(fixtures.TenderRecords(), p)
	require.NoError(t, err)

	// Adding a no-op wildcard predicate must not reorder records equal on
	// the sort field.
	p.Category = models.WildcardAll
	again, err := query.Apply(fixtures.TenderRecords(), p)
	require.NoError(t, err)
	assert.Equal(t, ids(base.Items), ids(again.Items))

	// Records 2 and 6 share an organism; fixture order decides.
	pos := map[string]int{}
	for i, id := range ids(base.Items) {
		pos[id] = i
	}
	assert.Less(t, pos["2"], pos["6"])
}

func TestApplyPagination(t *testing.T) {
	records := fixtures.TenderRecords()

	for page := 1; page <= 3; page++ {
		p := query.Params{Page: page, PageSize: 5}
		res, err := query.Apply(records, p)
		require.NoError(t, err)

		assert.Equal(t, 12, res.TotalMatched, "totalMatched must not depend on page")
		assert.Equal(t, 3, res.TotalPages)

		want := 5
		if page == 3 {
			want = 2
		}
		assert.Equal(t, want, len(res.Items), "page %d", page)
	}

	res, err := query.Apply(records, query.Params{Page: 4, PageSize: 5})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, 12, res.TotalMatched)
}

func TestApplyZeroMatches(t *testing.T) {
	p := firstPage(10)
	p.Category = "Minería"

	res, err := query.Apply(fixtures.TenderRecords(), p)
	require.NoError(t, err)
	assert.Equal(t, 0, res.TotalMatched)
	assert.Equal(t, 0, res.TotalPages)
	assert.Empty(t, res.Items)
}

func TestApplyRejectsInvalidParams(t *testing.T) {
	records := fixtures.TenderRecords()

	cases := []query.Params{
		{Page: 0, PageSize: 10},
		{Page: -1, PageSize: 10},
		{Page: 1, PageSize: 0},
		{Page: 1, PageSize: -5},
		{Page: 1, PageSize: 10, SortField: "favorito"},
		{Page: 1, PageSize: 10, SortDirection: "sideways"},
	}
	for _, p := range cases {
		_, err := query.Apply(records, p)
		assert.ErrorIs(t, err, models.ErrInvalidParameter, "params %+v", p)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	records := fixtures.TenderRecords()
	before := ids(records)

	p := firstPage(5)
	p.SortField = query.SortByAmount
	p.SortDirection = query.Descending
	_, err := query.Apply(records, p)
	require.NoError(t, err)

	assert.Equal(t, before, ids(records))
}

func TestApplyAmountThresholdMonotonicity(t *testing.T) {
	gofakeit.Seed(0)
	records := fixtures.RandomTenderRecords(200)

	thresholds := make([]int64, 25)
	for i := range thresholds {
		thresholds[i] = int64(gofakeit.Number(0, 600000000))
	}
	sort.Slice(thresholds, func(i, j int) bool { return thresholds[i] < thresholds[j] })

	prev := len(records) + 1
	for _, th := range thresholds {
		p := firstPage(len(records))
		p.AmountMin = i64(th)

		res, err := query.Apply(records, p)
		require.NoError(t, err)
		assert.LessOrEqual(t, res.TotalMatched, prev, "raising the threshold must not grow the match set")
		prev = res.TotalMatched
	}
}

func TestParamsFromFilters(t *testing.T) {
	f := models.SearchFilters{
		Category:  "Infraestructura",
		AmountMin: "50000000",
	}

	p, err := query.ParamsFromFilters(f, 1, 10)
	require.NoError(t, err)
	require.NotNil(t, p.AmountMin)
	assert.Equal(t, int64(50000000), *p.AmountMin)

	res, err := query.Apply(fixtures.TenderRecords(), p)
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "11"}, ids(res.Items))
}

func TestParamsFromFiltersRejectsBadAmounts(t *testing.T) {
	for _, bad := range []string{"abc", "-5", "12.5"} {
		_, err := query.ParamsFromFilters(models.SearchFilters{AmountMin: bad}, 1, 10)
		assert.True(t, errors.Is(err, models.ErrInvalidParameter), "value %q", bad)
	}
}
