package fixtures

import (
	"fmt"
	"time"

	gofakeit "github.com/brianvoe/gofakeit/v7"

	"licitemos/internal/models"
	"licitemos/internal/query"
)

var tenderStatuses = []models.TenderStatus{
	models.TenderOpen, models.TenderClosed, models.TenderInEvaluation, models.TenderAwarded,
}

var tenderTypes = []models.TenderType{
	models.TTPublic, models.TTLarge, models.TTRestricted, models.TTQuick,
}

// RandomTender builds a plausible tender for property-style tests. Roughly
// a fifth of them carry no disclosed amount.
func RandomTender(id int) models.Tender {
	var amt *int64
	if gofakeit.Number(0, 4) > 0 {
		v := int64(gofakeit.Number(100000, 500000000))
		amt = &v
	}

	return models.Tender{
		Id:          fmt.Sprintf("rnd-%d", id),
		Code:        fmt.Sprintf("%d-%d-LE25", gofakeit.Number(1000, 9999), gofakeit.Number(1, 99)),
		Title:       gofakeit.Sentence(6),
		Organism:    gofakeit.Company(),
		Type:        tenderTypes[gofakeit.Number(0, len(tenderTypes)-1)],
		Region:      models.Regions[gofakeit.Number(1, len(models.Regions)-1)],
		Amount:      amt,
		Closing:     time.Date(2025, time.Month(gofakeit.Number(1, 12)), gofakeit.Number(1, 28), 0, 0, 0, 0, time.UTC),
		Status:      tenderStatuses[gofakeit.Number(0, len(tenderStatuses)-1)],
		Description: gofakeit.Sentence(10),
		Category:    models.TenderCategories[gofakeit.Number(1, len(models.TenderCategories)-1)],
	}
}

func RandomTenderRecords(n int) []query.Record {
	out := make([]query.Record, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, RandomTender(i))
	}
	return out
}
