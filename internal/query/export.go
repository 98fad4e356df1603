package query

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Summary holds the counters a dashboard renders over the full matched
// set: how many records matched, how many per status, and the sum of the
// disclosed amounts. Pagination in params is ignored.
type Summary struct {
	Count        int            `json:"count"`
	StatusCounts map[string]int `json:"statusCounts"`
	AmountTotal  int64          `json:"amountTotal"`
	WithAmount   int            `json:"withAmount"`
}

func Summarize(records []Record, p Params) (Summary, error) {
	if err := p.validateSort(); err != nil {
		return Summary{}, err
	}

	s := Summary{StatusCounts: map[string]int{}}
	for _, r := range records {
		if !Matches(r, p) {
			continue
		}
		s.Count++
		s.StatusCounts[r.StatusTag()]++
		if amount, ok := r.AmountValue(); ok {
			s.AmountTotal += amount
			s.WithAmount++
		}
	}
	return s, nil
}

var csvHeader = []string{"Código", "Nombre", "Organismo", "Tipo", "Región", "Monto", "Cierre", "Estado"}

// WriteCSV exports the full sorted matched set, one row per record. A
// record with no disclosed amount gets an empty cell, not a zero.
func WriteCSV(w io.Writer, records []Record, p Params) error {
	matched, err := filterSorted(records, p)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("query.WriteCSV: %w", err)
	}

	for _, r := range matched {
		amount := ""
		if v, ok := r.AmountValue(); ok {
			amount = strconv.FormatInt(v, 10)
		}
		row := []string{
			r.CodeValue(),
			r.TitleValue(),
			r.OrganismValue(),
			r.TypeTag(),
			r.RegionTag(),
			amount,
			r.DateValue().Format("2006-01-02"),
			r.StatusTag(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("query.WriteCSV: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("query.WriteCSV: %w", err)
	}
	return nil
}
