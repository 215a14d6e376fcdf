package session

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoUserID means the login response carried no recognizable user id.
var ErrNoUserID = errors.New("login response has no user id")

// User is the normalized identity kept in a session. It is produced
// exactly once, from the login response, so no other part of the app ever
// has to re-derive the admin flag from loosely-typed data.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoUrl,omitempty"`
	Admin    bool   `json:"admin"`
}

// rawLoginUser absorbs the shapes the user service has used across
// iterations: the id under id_usuario, id or idUsuario, and the role as a
// nested object, a bare string, or a numeric id.
type rawLoginUser struct {
	IDUsuario   *int64          `json:"id_usuario"`
	ID          *int64          `json:"id"`
	IDUsuarioCC *int64          `json:"idUsuario"`
	Name        string          `json:"nombre"`
	Email       string          `json:"correo"`
	PhotoURL    string          `json:"foto_perfil"`
	Role        json.RawMessage `json:"rol"`
}

type rawRole struct {
	ID   int64  `json:"id_rol"`
	Name string `json:"nombre"`
}

// UserFromLogin parses the raw login response into a normalized User.
func UserFromLogin(raw json.RawMessage) (User, error) {
	var parsed rawLoginUser
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return User{}, err
	}

	user := User{
		Name:     parsed.Name,
		Email:    parsed.Email,
		PhotoURL: parsed.PhotoURL,
	}

	switch {
	case parsed.IDUsuario != nil:
		user.ID = *parsed.IDUsuario
	case parsed.ID != nil:
		user.ID = *parsed.ID
	case parsed.IDUsuarioCC != nil:
		user.ID = *parsed.IDUsuarioCC
	default:
		return User{}, ErrNoUserID
	}

	user.Admin = isAdminRole(parsed.Role)
	return user, nil
}

// isAdminRole decides the admin flag from whatever shape the role came in.
// Role id 1 is the administrator role in the user service's seed data.
func isAdminRole(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}

	var obj rawRole
	if err := json.Unmarshal(raw, &obj); err == nil && (obj.ID != 0 || obj.Name != "") {
		return obj.ID == 1 || isAdminName(obj.Name)
	}

	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return isAdminName(name)
	}

	var id int64
	if err := json.Unmarshal(raw, &id); err == nil {
		return id == 1
	}

	return false
}

func isAdminName(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "admin", "administrador", "administrator":
		return true
	}
	return false
}
