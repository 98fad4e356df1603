package models

// Wildcard filter sentinels. The UI uses "Todas" for feminine nouns
// (región, categoría) and "Todos" for the rest; both mean "no constraint".
const (
	WildcardAll  = "Todas"
	WildcardAllM = "Todos"
)

var Regions = []string{
	WildcardAll,
	"Nacional",
	"Metropolitana",
	"Valparaíso",
	"Biobío",
	"Maule",
	"Ñuble",
	"Los Lagos",
}

var TenderCategories = []string{
	WildcardAll,
	"Infraestructura",
	"Salud",
	"Tecnología",
	"Consultoría",
}

var OrderCategories = []string{
	WildcardAll,
	"Infraestructura",
	"Salud",
	"Tecnología",
	"Consultoría",
	"Suministros",
	"Mobiliario",
	"Vehículos",
}
