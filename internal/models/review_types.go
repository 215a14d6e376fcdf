package models

// Review defines a product review from the reviews service. The backend
// enforces at most one review per (product, user) pair; a second create
// attempt comes back as 409 Conflict.
type Review struct {
	ID        int64  `json:"id_resena"`
	ProductID int64  `json:"id_producto"`
	UserID    int64  `json:"id_usuario"`
	Text      string `json:"texto"`
	Rating    int    `json:"calificacion"`
	Date      string `json:"fecha,omitempty"`
}

// ReviewInput is the payload for creating or updating a review.
type ReviewInput struct {
	ProductID int64  `json:"id_producto"`
	UserID    int64  `json:"id_usuario"`
	Text      string `json:"texto"`
	Rating    int    `json:"calificacion"`
}

// ContactMessage is the payload for POST /contactos.
type ContactMessage struct {
	Name    string `json:"nombre"`
	Email   string `json:"correo"`
	Message string `json:"mensaje"`
}
