package models

import "fmt"

// Typed schemas for the preference blobs kept in the key-value store. The
// store itself is schemaless; these types are validated at the
// serialization boundary so reader and writer cannot silently drift apart.

type AlertFrequency string

const (
	AlertDaily   AlertFrequency = "diario"
	AlertWeekly  AlertFrequency = "semanal"
	AlertInstant AlertFrequency = "instantaneo"
)

func ValidAlertFrequency(f AlertFrequency) bool {
	switch f {
	case AlertDaily, AlertWeekly, AlertInstant:
		return true
	default:
		return false
	}
}

type AlertKeyword struct {
	Id        string `json:"id"`
	Word      string `json:"palabra"`
	Category  string `json:"categoria"`
	Region    string `json:"region"`
	AmountMin string `json:"montoMin"`
	Active    bool   `json:"activa"`
}

type AlertsConfig struct {
	EmailActive bool           `json:"emailActivo"`
	Frequency   AlertFrequency `json:"frecuencia"`
	Schedule    string         `json:"horario"`
	Keywords    []AlertKeyword `json:"palabrasClave"`
}

func (c AlertsConfig) Validate() error {
	if !ValidAlertFrequency(c.Frequency) {
		return fmt.Errorf("%w: unknown alert frequency %q", ErrInvalidParameter, c.Frequency)
	}
	for _, kw := range c.Keywords {
		if kw.Word == "" {
			return fmt.Errorf("%w: alert keyword with empty word", ErrInvalidParameter)
		}
	}
	return nil
}

// SearchFilters is the persisted subset of a query configuration. Amount
// bounds are kept as strings because that is the shape the UI stores;
// query.ParamsFromFilters parses them.
type SearchFilters struct {
	SearchTerm string `json:"searchTerm,omitempty"`
	Category   string `json:"categoria,omitempty"`
	Region     string `json:"region,omitempty"`
	Type       string `json:"tipo,omitempty"`
	Status     string `json:"estado,omitempty"`
	AmountMin  string `json:"montoMin,omitempty"`
	AmountMax  string `json:"montoMax,omitempty"`
}

type SavedSearch struct {
	Id          string        `json:"id"`
	Name        string        `json:"nombre"`
	Description string        `json:"descripcion"`
	Filters     SearchFilters `json:"filtros"`
	Favorite    bool          `json:"favorita"`
	CreatedAt   string        `json:"fechaCreacion"`
	LastUsedAt  string        `json:"ultimoUso"`
	UseCount    int           `json:"cantidadUsos"`
}

func (s SavedSearch) Validate() error {
	if s.Id == "" {
		return fmt.Errorf("%w: saved search without id", ErrInvalidParameter)
	}
	if s.Name == "" {
		return fmt.Errorf("%w: saved search without name", ErrInvalidParameter)
	}
	return nil
}

type Profile struct {
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Phone    string `json:"telefono"`
	Company  string `json:"empresa"`
	Position string `json:"cargo"`
	Address  string `json:"direccion"`
	City     string `json:"ciudad"`
	Region   string `json:"region"`
	RUT      string `json:"rut"`
	Plan     string `json:"plan"`
}

func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: profile without name", ErrInvalidParameter)
	}
	if p.Email == "" {
		return fmt.Errorf("%w: profile without email", ErrInvalidParameter)
	}
	return nil
}
