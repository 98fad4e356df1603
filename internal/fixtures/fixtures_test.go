package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"licitemos/internal/fixtures"
	"licitemos/internal/models"
)

func TestTenderInvariants(t *testing.T) {
	tenders := fixtures.Tenders()
	require.Equal(t, 12, len(tenders))

	seen := map[string]bool{}
	for _, tender := range tenders {
		assert.NotEmpty(t, tender.Id)
		assert.False(t, seen[tender.Id], "duplicate tender id %s", tender.Id)
		seen[tender.Id] = true

		assert.True(t, models.ValidTenderStatus(tender.Status), "tender %s status %q", tender.Id, tender.Status)
		assert.True(t, models.ValidTenderType(tender.Type), "tender %s type %q", tender.Id, tender.Type)
		if tender.Amount != nil {
			assert.GreaterOrEqual(t, *tender.Amount, int64(0))
		}
	}
}

func TestAwardAndOrderInvariants(t *testing.T) {
	awards := fixtures.Awards()
	require.Equal(t, 8, len(awards))
	seen := map[string]bool{}
	for _, a := range awards {
		assert.False(t, seen[a.Id], "duplicate award id %s", a.Id)
		seen[a.Id] = true
		assert.True(t, models.ValidAwardStatus(a.Status))
	}

	orders := fixtures.PurchaseOrders()
	require.Equal(t, 8, len(orders))
	seen = map[string]bool{}
	for _, o := range orders {
		assert.False(t, seen[o.Id], "duplicate order id %s", o.Id)
		seen[o.Id] = true
		assert.True(t, models.ValidOrderStatus(o.Status))
	}
}

func TestCollectionsReturnFreshCopies(t *testing.T) {
	tenders := fixtures.Tenders()
	tenders[0].Favorite = true
	tenders[0].Title = "mutated"

	again := fixtures.Tenders()
	assert.False(t, again[0].Favorite)
	assert.NotEqual(t, "mutated", again[0].Title)

	searches := fixtures.SavedSearches()
	searches[0].Name = "mutated"
	assert.NotEqual(t, "mutated", fixtures.SavedSearches()[0].Name)
}

func TestRecordAdapters(t *testing.T) {
	assert.Equal(t, 12, len(fixtures.TenderRecords()))
	assert.Equal(t, 8, len(fixtures.AwardRecords()))
	assert.Equal(t, 8, len(fixtures.OrderRecords()))
}

func TestDefaultPreferences(t *testing.T) {
	cfg := fixtures.DefaultAlertsConfig()
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.EmailActive)
	assert.Equal(t, models.AlertDaily, cfg.Frequency)
	assert.Equal(t, "09:00", cfg.Schedule)

	profile := fixtures.DefaultProfile()
	require.NoError(t, profile.Validate())
	assert.Equal(t, "admin@licitemos.cl", profile.Email)
}
