package models

// PurchaseStatusPending is the initial status of every purchase we create.
// Fulfillment and cancellation are owned entirely by the sales service.
const PurchaseStatusPending = "pendiente"

// PurchaseDetail is one line item of a purchase: product, quantity and the
// unit price at the moment of checkout, plus the computed subtotal.
type PurchaseDetail struct {
	ProductID int64   `json:"id_producto"`
	Quantity  int     `json:"cantidad"`
	UnitPrice float64 `json:"precio"`
	Subtotal  float64 `json:"subtotal"`
}

// Purchase defines an order as persisted by the sales service.
type Purchase struct {
	ID      int64            `json:"id_compra"`
	UserID  int64            `json:"id_usuario"`
	Date    string           `json:"fecha,omitempty"`
	Total   float64          `json:"total"`
	Status  string           `json:"estado"`
	Details []PurchaseDetail `json:"detalles,omitempty"`
}

// PurchaseInput is the payload for POST /compras.
type PurchaseInput struct {
	UserID  int64            `json:"id_usuario"`
	Details []PurchaseDetail `json:"detalles"`
	Total   float64          `json:"total"`
	Status  string           `json:"estado"`
}
