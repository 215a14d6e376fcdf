package models

// Category defines a product category from the inventory service.
type Category struct {
	ID   int64  `json:"id_cat"`
	Name string `json:"nombre,omitempty"`
}

// Condition defines the physical condition of a product (new, used, ...).
// The inventory service calls these "estados".
type Condition struct {
	ID   int64  `json:"id_estado"`
	Name string `json:"nombre,omitempty"`
}

// Platform defines a gaming platform (SNES, N64, PS1, ...).
type Platform struct {
	ID   int64  `json:"id_plat"`
	Name string `json:"nombre,omitempty"`
}
