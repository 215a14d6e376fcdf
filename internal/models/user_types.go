package models

// Role defines the role record nested inside a user from the user service.
type Role struct {
	ID   int64  `json:"id_rol"`
	Name string `json:"nombre"`
}

// User defines a user record as served by the user microservice.
type User struct {
	ID       int64  `json:"id_usuario"`
	Name     string `json:"nombre"`
	Email    string `json:"correo"`
	Phone    string `json:"telefono,omitempty"`
	PhotoURL string `json:"foto_perfil,omitempty"`
	Role     *Role  `json:"rol,omitempty"`
}

// RegisterInput is the payload forwarded to POST /usuarios. The security
// question and answer are optional; without them the account simply cannot
// use the password-recovery flow.
type RegisterInput struct {
	Name             string `json:"nombre"`
	Email            string `json:"correo"`
	Username         string `json:"nombre_usu"`
	Password         string `json:"password"`
	Phone            string `json:"telefono,omitempty"`
	BirthDate        string `json:"fec_nac,omitempty"`
	SecurityQuestion string `json:"pregunta_seguridad,omitempty"`
	SecurityAnswer   string `json:"respuesta_seguridad,omitempty"`
}
