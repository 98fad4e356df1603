package models

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pendiente"
	OrderInProcess OrderStatus = "en_proceso"
	OrderDelivered OrderStatus = "entregada"
	OrderCancelled OrderStatus = "cancelada"
)

func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderInProcess, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// PurchaseOrder is an order issued against an awarded supplier.
type PurchaseOrder struct {
	Id        string      `json:"id"`
	Code      string      `json:"codigo"`
	Title     string      `json:"titulo"`
	Organism  string      `json:"organismo"`
	Supplier  string      `json:"proveedor"`
	Amount    *int64      `json:"monto"`
	IssueDate time.Time   `json:"fechaEmision"`
	Delivery  time.Time   `json:"fechaEntrega"`
	Category  string      `json:"categoria"`
	Status    OrderStatus `json:"estado"`
	Favorite  bool        `json:"favorito"`
}

func (o PurchaseOrder) RecordID() string      { return o.Id }
func (o PurchaseOrder) CodeValue() string     { return o.Code }
func (o PurchaseOrder) TitleValue() string    { return o.Title }
func (o PurchaseOrder) OrganismValue() string { return o.Organism }
func (o PurchaseOrder) CategoryTag() string   { return o.Category }
func (o PurchaseOrder) RegionTag() string     { return "" }
func (o PurchaseOrder) TypeTag() string       { return "" }
func (o PurchaseOrder) StatusTag() string     { return string(o.Status) }
func (o PurchaseOrder) DateValue() time.Time  { return o.IssueDate }

func (o PurchaseOrder) SearchText() []string {
	return []string{o.Code, o.Title, o.Organism, o.Supplier}
}

func (o PurchaseOrder) AmountValue() (int64, bool) {
	if o.Amount == nil {
		return 0, false
	}
	return *o.Amount, true
}
