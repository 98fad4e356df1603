package fixtures

import "licitemos/internal/models"

var savedSearches = []models.SavedSearch{
	{
		Id:          "1",
		Name:        "Licitaciones de Tecnología RM",
		Description: "Búsqueda de proyectos tecnológicos en la Región Metropolitana",
		Filters: models.SearchFilters{
			Category: "Tecnología",
			Region:   "Metropolitana",
			Status:   string(models.TenderOpen),
		},
		Favorite:   true,
		CreatedAt:  "2025-10-15",
		LastUsedAt: "2025-11-01",
		UseCount:   23,
	},
	{
		Id:          "2",
		Name:        "Infraestructura sobre $50M",
		Description: "Proyectos de infraestructura con monto superior a 50 millones",
		Filters: models.SearchFilters{
			Category:  "Infraestructura",
			AmountMin: "50000000",
		},
		Favorite:   true,
		CreatedAt:  "2025-10-20",
		LastUsedAt: "2025-10-31",
		UseCount:   15,
	},
	{
		Id:          "3",
		Name:        "Salud Nacional",
		Description: "Todas las licitaciones del área de salud a nivel nacional",
		Filters: models.SearchFilters{
			Category: "Salud",
			Region:   "Nacional",
		},
		Favorite:   false,
		CreatedAt:  "2025-10-10",
		LastUsedAt: "2025-10-28",
		UseCount:   8,
	},
}

// SavedSearches is the starter list shown before the user has persisted
// their own.
func SavedSearches() []models.SavedSearch {
	out := make([]models.SavedSearch, len(savedSearches))
	copy(out, savedSearches)
	return out
}

// DefaultProfile is the profile shown before one has been stored.
func DefaultProfile() models.Profile {
	return models.Profile{
		Name:     "Administrador",
		Email:    "admin@licitemos.cl",
		Phone:    "+56 9 1234 5678",
		Company:  "Mi Empresa SpA",
		Position: "Gerente de Licitaciones",
		Address:  "Av. Libertador Bernardo O'Higgins 1234",
		City:     "Santiago",
		Region:   "Metropolitana",
		RUT:      "12.345.678-9",
		Plan:     "Básico",
	}
}

// DefaultAlertsConfig is the alerts configuration used until the user
// saves one.
func DefaultAlertsConfig() models.AlertsConfig {
	return models.AlertsConfig{
		EmailActive: false,
		Frequency:   models.AlertDaily,
		Schedule:    "09:00",
		Keywords:    []models.AlertKeyword{},
	}
}
