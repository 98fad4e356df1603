// Package fixtures holds the static listing collections the product ships
// with. There is no authoritative record store behind them; they are
// seeded once per process and only user-local annotations ever change.
package fixtures

import (
	"time"

	"licitemos/internal/models"
	"licitemos/internal/query"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("fixtures: bad date literal " + s)
	}
	return t
}

func amount(n int64) *int64 {
	return &n
}

var tenders = []models.Tender{
	{
		Id:          "1",
		Code:        "1043030-23-LE25",
		Title:       "Sistema de Admisión Escolar 2025 Período complementario y de regularización Región de Ñuble",
		Organism:    "Ministerio de Educación",
		Type:        models.TTPublic,
		Region:      "Ñuble",
		Amount:      nil,
		Closing:     date("2025-11-03"),
		Status:      models.TenderOpen,
		Description: "Sistema de admisión escolar complementario",
		Category:    "Tecnología",
	},
	{
		Id:          "2",
		Code:        "1043-37-LE25",
		Title:       "Adquisición de Base Granular CBR 60%",
		Organism:    "Dirección de Vialidad",
		Type:        models.TTPublic,
		Region:      "Metropolitana",
		Amount:      amount(45000000),
		Closing:     date("2025-11-07"),
		Status:      models.TenderOpen,
		Description: "Suministro de material granular para obras viales",
		Category:    "Infraestructura",
	},
	{
		Id:          "3",
		Code:        "1030-28-LE25",
		Title:       "REPARACIÓN DEL SISTEMA ELECTRICO DE TALLER Y EMPALME ELECTRICO",
		Organism:    "Empresa Portuaria Valparaíso",
		Type:        models.TTPublic,
		Region:      "Valparaíso",
		Amount:      amount(12500000),
		Closing:     date("2025-11-10"),
		Status:      models.TenderOpen,
		Description: "Reparación y mantenimiento sistema eléctrico",
		Category:    "Infraestructura",
	},
	{
		Id:          "4",
		Code:        "1037-17-LE25",
		Title:       "IMPLEMENTACIÓN Y CAPACITACIÓN SISTEMAS DE RIEGO",
		Organism:    "INDAP",
		Type:        models.TTPublic,
		Region:      "Maule",
		Amount:      amount(28000000),
		Closing:     date("2025-11-06"),
		Status:      models.TenderOpen,
		Description: "Implementación de sistemas de riego tecnificado",
		Category:    "Consultoría",
	},
	{
		Id:          "5",
		Code:        "1043046-16-LE25",
		Title:       "CONSERVACIÓN SISTEMA CONTROL DE TRÁNSITO ÑUBLE 5.",
		Organism:    "Ministerio de Obras Públicas",
		Type:        models.TTRestricted,
		Region:      "Ñuble",
		Amount:      amount(85000000),
		Closing:     date("2025-11-17"),
		Status:      models.TenderOpen,
		Description: "Mantenimiento sistema control de tránsito",
		Category:    "Infraestructura",
	},
	{
		Id:          "6",
		Code:        "1043-30-LE25",
		Title:       "Adquisición de Emulsión Asfáltica de Quiebre Lento",
		Organism:    "Dirección de Vialidad",
		Type:        models.TTPublic,
		Region:      "Biobío",
		Amount:      amount(32000000),
		Closing:     date("2025-11-04"),
		Status:      models.TenderOpen,
		Description: "Suministro de emulsión asfáltica para obras viales",
		Category:    "Infraestructura",
	},
	{
		Id:          "7",
		Code:        "1042-18-LE25",
		Title:       "Suministro de Equipos Médicos Hospital Regional",
		Organism:    "Servicio de Salud Metropolitano Central",
		Type:        models.TTLarge,
		Region:      "Metropolitana",
		Amount:      amount(125000000),
		Closing:     date("2025-11-15"),
		Status:      models.TenderInEvaluation,
		Description: "Adquisición de equipamiento médico de última generación",
		Category:    "Salud",
	},
	{
		Id:          "8",
		Code:        "1041-25-LE25",
		Title:       "Desarrollo Plataforma Digital Ciudadana",
		Organism:    "Gobierno Digital",
		Type:        models.TTPublic,
		Region:      "Nacional",
		Amount:      amount(95000000),
		Closing:     date("2025-11-20"),
		Status:      models.TenderOpen,
		Description: "Desarrollo de plataforma web y mobile para trámites",
		Category:    "Tecnología",
	},
	{
		Id:          "9",
		Code:        "1040-12-LE25",
		Title:       "Consultoría Evaluación Ambiental Estratégica",
		Organism:    "Ministerio del Medio Ambiente",
		Type:        models.TTPublic,
		Region:      "Los Lagos",
		Amount:      amount(18500000),
		Closing:     date("2025-11-08"),
		Status:      models.TenderOpen,
		Description: "Evaluación de impacto ambiental de proyectos regionales",
		Category:    "Consultoría",
	},
	{
		Id:          "10",
		Code:        "1039-45-LE25",
		Title:       "Adquisición de Medicamentos Oncológicos",
		Organism:    "CENABAST",
		Type:        models.TTLarge,
		Region:      "Nacional",
		Amount:      amount(250000000),
		Closing:     date("2025-11-12"),
		Status:      models.TenderOpen,
		Description: "Provisión anual de medicamentos oncológicos",
		Category:    "Salud",
	},
	{
		Id:          "11",
		Code:        "1038-33-LE25",
		Title:       "Construcción Biblioteca Pública Municipal",
		Organism:    "Municipalidad de Puerto Montt",
		Type:        models.TTRestricted,
		Region:      "Los Lagos",
		Amount:      amount(450000000),
		Closing:     date("2025-11-25"),
		Status:      models.TenderOpen,
		Description: "Construcción de biblioteca con sala multimedia",
		Category:    "Infraestructura",
	},
	{
		Id:          "12",
		Code:        "1037-89-LE25",
		Title:       "Sistema Gestión Documental Institucional",
		Organism:    "Ministerio del Interior",
		Type:        models.TTPublic,
		Region:      "Metropolitana",
		Amount:      amount(42000000),
		Closing:     date("2025-11-09"),
		Status:      models.TenderClosed,
		Description: "Implementación de sistema de gestión documental",
		Category:    "Tecnología",
	},
}

var awards = []models.Award{
	{
		Id:            "1",
		Code:          "ADJ-2025-001",
		Title:         "Servicios de Consultoría Ambiental",
		Organism:      "Ministerio del Medio Ambiente",
		Awardee:       "EcoConsult Ltda.",
		Amount:        amount(800000),
		AwardDate:     date("2025-10-28"),
		ExecutionTerm: "6 meses",
		Category:      "Consultoría",
		Status:        models.AwardInExecution,
	},
	{
		Id:            "2",
		Code:          "ADJ-2025-002",
		Title:         "Mantenimiento de Carreteras Región Norte",
		Organism:      "Ministerio de Obras Públicas",
		Awardee:       "Constructora del Norte S.A.",
		Amount:        amount(4200000),
		AwardDate:     date("2025-09-15"),
		ExecutionTerm: "12 meses",
		Category:      "Infraestructura",
		Status:        models.AwardInExecution,
	},
	{
		Id:            "3",
		Code:          "ADJ-2025-003",
		Title:         "Desarrollo de Portal Web Ciudadano",
		Organism:      "Gobierno Digital",
		Awardee:       "TechSolutions SpA",
		Amount:        amount(1500000),
		AwardDate:     date("2025-08-20"),
		ExecutionTerm: "8 meses",
		Category:      "Tecnología",
		Status:        models.AwardFinished,
	},
	{
		Id:            "4",
		Code:          "ADJ-2025-004",
		Title:         "Provisión de Insumos Médicos",
		Organism:      "Hospital Regional",
		Awardee:       "MedSupply Internacional",
		Amount:        amount(1800000),
		AwardDate:     date("2025-07-10"),
		ExecutionTerm: "24 meses",
		Category:      "Salud",
		Status:        models.AwardInExecution,
	},
	{
		Id:            "5",
		Code:          "ADJ-2025-005",
		Title:         "Auditoría Financiera Institucional",
		Organism:      "Contraloría Regional",
		Awardee:       "Audit & Partners",
		Amount:        amount(580000),
		AwardDate:     date("2025-06-05"),
		ExecutionTerm: "4 meses",
		Category:      "Consultoría",
		Status:        models.AwardFinished,
	},
	{
		Id:            "6",
		Code:          "ADJ-2025-006",
		Title:         "Construcción de Centro Deportivo",
		Organism:      "Municipalidad de Viña del Mar",
		Awardee:       "Constructora Pacific",
		Amount:        amount(6700000),
		AwardDate:     date("2025-05-18"),
		ExecutionTerm: "18 meses",
		Category:      "Infraestructura",
		Status:        models.AwardSuspended,
	},
	{
		Id:            "7",
		Code:          "ADJ-2025-007",
		Title:         "Sistema de Gestión Documental",
		Organism:      "Ministerio del Interior",
		Awardee:       "DocuSystems Chile",
		Amount:        amount(980000),
		AwardDate:     date("2025-09-30"),
		ExecutionTerm: "10 meses",
		Category:      "Tecnología",
		Status:        models.AwardInExecution,
	},
	{
		Id:            "8",
		Code:          "ADJ-2025-008",
		Title:         "Capacitación Personal Sanitario",
		Organism:      "Servicio de Salud Valparaíso",
		Awardee:       "Instituto de Formación Médica",
		Amount:        amount(420000),
		AwardDate:     date("2025-08-12"),
		ExecutionTerm: "6 meses",
		Category:      "Salud",
		Status:        models.AwardFinished,
	},
}

var orders = []models.PurchaseOrder{
	{
		Id:        "1",
		Code:      "OC-2025-1234",
		Title:     "Suministro de Material de Oficina",
		Organism:  "Ministerio de Educación",
		Supplier:  "OfficeSupply Chile S.A.",
		Amount:    amount(450000),
		IssueDate: date("2025-10-25"),
		Delivery:  date("2025-11-15"),
		Category:  "Suministros",
		Status:    models.OrderInProcess,
	},
	{
		Id:        "2",
		Code:      "OC-2025-1235",
		Title:     "Equipamiento Computacional",
		Organism:  "Gobierno Regional Metropolitano",
		Supplier:  "TechStore SpA",
		Amount:    amount(2800000),
		IssueDate: date("2025-10-20"),
		Delivery:  date("2025-11-30"),
		Category:  "Tecnología",
		Status:    models.OrderPending,
	},
	{
		Id:        "3",
		Code:      "OC-2025-1236",
		Title:     "Insumos Médicos Urgentes",
		Organism:  "Hospital San Juan de Dios",
		Supplier:  "MedEquip Ltda.",
		Amount:    amount(1200000),
		IssueDate: date("2025-10-18"),
		Delivery:  date("2025-10-28"),
		Category:  "Salud",
		Status:    models.OrderDelivered,
	},
	{
		Id:        "4",
		Code:      "OC-2025-1237",
		Title:     "Mobiliario para Oficinas Públicas",
		Organism:  "Ministerio del Interior",
		Supplier:  "Muebles y Diseño S.A.",
		Amount:    amount(890000),
		IssueDate: date("2025-10-15"),
		Delivery:  date("2025-11-20"),
		Category:  "Mobiliario",
		Status:    models.OrderInProcess,
	},
	{
		Id:        "5",
		Code:      "OC-2025-1238",
		Title:     "Licencias de Software",
		Organism:  "Servicio de Impuestos Internos",
		Supplier:  "Software Solutions Chile",
		Amount:    amount(3500000),
		IssueDate: date("2025-10-10"),
		Delivery:  date("2025-10-20"),
		Category:  "Tecnología",
		Status:    models.OrderDelivered,
	},
	{
		Id:        "6",
		Code:      "OC-2025-1239",
		Title:     "Material de Construcción",
		Organism:  "Municipalidad de Santiago",
		Supplier:  "Constructora Los Andes",
		Amount:    amount(1650000),
		IssueDate: date("2025-10-05"),
		Delivery:  date("2025-11-10"),
		Category:  "Infraestructura",
		Status:    models.OrderInProcess,
	},
	{
		Id:        "7",
		Code:      "OC-2025-1240",
		Title:     "Vehículos de Servicio",
		Organism:  "Carabineros de Chile",
		Supplier:  "Automotriz Nacional",
		Amount:    amount(8500000),
		IssueDate: date("2025-09-28"),
		Delivery:  date("2025-10-15"),
		Category:  "Vehículos",
		Status:    models.OrderCancelled,
	},
	{
		Id:        "8",
		Code:      "OC-2025-1241",
		Title:     "Productos de Limpieza",
		Organism:  "Ministerio de Salud",
		Supplier:  "Clean Pro Chile",
		Amount:    amount(320000),
		IssueDate: date("2025-10-22"),
		Delivery:  date("2025-11-05"),
		Category:  "Suministros",
		Status:    models.OrderPending,
	},
}

// Tenders returns a fresh copy of the seeded tender collection in fixture
// order.
func Tenders() []models.Tender {
	out := make([]models.Tender, len(tenders))
	copy(out, tenders)
	return out
}

func Awards() []models.Award {
	out := make([]models.Award, len(awards))
	copy(out, awards)
	return out
}

func PurchaseOrders() []models.PurchaseOrder {
	out := make([]models.PurchaseOrder, len(orders))
	copy(out, orders)
	return out
}

// TenderRecords adapts the tender collection for the query engine.
func TenderRecords() []query.Record {
	out := make([]query.Record, 0, len(tenders))
	for _, t := range tenders {
		out = append(out, t)
	}
	return out
}

func AwardRecords() []query.Record {
	out := make([]query.Record, 0, len(awards))
	for _, a := range awards {
		out = append(out, a)
	}
	return out
}

func OrderRecords() []query.Record {
	out := make([]query.Record, 0, len(orders))
	for _, o := range orders {
		out = append(out, o)
	}
	return out
}
