package models

// The inventory microservice speaks Spanish field names on the wire
// (id_producto, nombre, precio...). We keep the Go structs in English and
// confine the wire names to the JSON tags, so nothing outside this package
// needs to know about the backend's naming.

// Product defines a product record as served by the inventory service.
type Product struct {
	ID          int64      `json:"id_producto"`
	Name        string     `json:"nombre"`
	Description string     `json:"descripcion"`
	Price       float64    `json:"precio"`
	Stock       int        `json:"stock"`
	SKU         string     `json:"sku"`
	Category    *Category  `json:"categoria,omitempty"`
	Condition   *Condition `json:"estado,omitempty"`
	Platform    *Platform  `json:"plataforma,omitempty"`
	Photo       string     `json:"foto,omitempty"`
}

// ProductInput is the payload we forward to the inventory service when
// creating or updating a product from the admin inventory screen.
type ProductInput struct {
	Name        string     `json:"nombre"`
	Description string     `json:"descripcion"`
	Price       float64    `json:"precio"`
	Stock       int        `json:"stock"`
	SKU         string     `json:"sku"`
	Category    *Category  `json:"categoria,omitempty"`
	Condition   *Condition `json:"estado,omitempty"`
	Platform    *Platform  `json:"plataforma,omitempty"`
	Photo       string     `json:"foto,omitempty"`
}
