package models

import "time"

type TenderStatus string

const (
	TenderOpen         TenderStatus = "abierta"
	TenderClosed       TenderStatus = "cerrada"
	TenderInEvaluation TenderStatus = "en_evaluacion"
	TenderAwarded      TenderStatus = "adjudicada"
)

func ValidTenderStatus(s TenderStatus) bool {
	switch s {
	case TenderOpen, TenderClosed, TenderInEvaluation, TenderAwarded:
		return true
	default:
		return false
	}
}

type TenderType string

const (
	TTPublic     TenderType = "LE"
	TTLarge      TenderType = "LP"
	TTRestricted TenderType = "LR"
	TTQuick      TenderType = "LQ"
)

func ValidTenderType(t TenderType) bool {
	switch t {
	case TTPublic, TTLarge, TTRestricted, TTQuick:
		return true
	default:
		return false
	}
}

// Tender is a published procurement opportunity. Amount is nil when the
// issuing body did not disclose a budget, which is not the same as zero.
type Tender struct {
	Id          string       `json:"id"`
	Code        string       `json:"codigo"`
	Title       string       `json:"nombre"`
	Organism    string       `json:"organismo"`
	Type        TenderType   `json:"tipo"`
	Region      string       `json:"region"`
	Amount      *int64       `json:"monto"`
	Closing     time.Time    `json:"cierre"`
	Status      TenderStatus `json:"estado"`
	Description string       `json:"descripcion"`
	Category    string       `json:"categoria"`
	Favorite    bool         `json:"favorito"`
}

func (t Tender) RecordID() string      { return t.Id }
func (t Tender) CodeValue() string     { return t.Code }
func (t Tender) TitleValue() string    { return t.Title }
func (t Tender) OrganismValue() string { return t.Organism }
func (t Tender) CategoryTag() string   { return t.Category }
func (t Tender) RegionTag() string     { return t.Region }
func (t Tender) TypeTag() string       { return string(t.Type) }
func (t Tender) StatusTag() string     { return string(t.Status) }
func (t Tender) DateValue() time.Time  { return t.Closing }

func (t Tender) SearchText() []string {
	return []string{t.Code, t.Title, t.Organism}
}

func (t Tender) AmountValue() (int64, bool) {
	if t.Amount == nil {
		return 0, false
	}
	return *t.Amount, true
}
