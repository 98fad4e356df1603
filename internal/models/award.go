package models

import "time"

type AwardStatus string

const (
	AwardInExecution AwardStatus = "en_ejecucion"
	AwardFinished    AwardStatus = "finalizada"
	AwardSuspended   AwardStatus = "suspendida"
)

func ValidAwardStatus(s AwardStatus) bool {
	switch s {
	case AwardInExecution, AwardFinished, AwardSuspended:
		return true
	default:
		return false
	}
}

// Award is a tender that has been adjudicated to a supplier.
type Award struct {
	Id            string      `json:"id"`
	Code          string      `json:"codigo"`
	Title         string      `json:"titulo"`
	Organism      string      `json:"organismo"`
	Awardee       string      `json:"adjudicatario"`
	Amount        *int64      `json:"monto"`
	AwardDate     time.Time   `json:"fechaAdjudicacion"`
	ExecutionTerm string      `json:"plazoEjecucion"`
	Category      string      `json:"categoria"`
	Status        AwardStatus `json:"estado"`
	Favorite      bool        `json:"favorito"`
}

func (a Award) RecordID() string      { return a.Id }
func (a Award) CodeValue() string     { return a.Code }
func (a Award) TitleValue() string    { return a.Title }
func (a Award) OrganismValue() string { return a.Organism }
func (a Award) CategoryTag() string   { return a.Category }
func (a Award) RegionTag() string     { return "" }
func (a Award) TypeTag() string       { return "" }
func (a Award) StatusTag() string     { return string(a.Status) }
func (a Award) DateValue() time.Time  { return a.AwardDate }

func (a Award) SearchText() []string {
	return []string{a.Code, a.Title, a.Organism, a.Awardee}
}

func (a Award) AmountValue() (int64, bool) {
	if a.Amount == nil {
		return 0, false
	}
	return *a.Amount, true
}
