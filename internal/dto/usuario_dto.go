package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearUsuarioRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nombre   string `json:"nombre"   validate:"required,min=2"`
	Apellido string `json:"apellido"`
	Rol      string `json:"rol"      validate:"required,oneof=SUPER_ADMIN SUPERVISOR GUIA"`
	// Profile fields — applied to the role profile matching Rol
	Telefono string `json:"telefono"`
	Zona     string `json:"zona"`
	Idiomas  string `json:"idiomas"`
}

type ActualizarUsuarioRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Rol      string `json:"rol"      validate:"omitempty,oneof=SUPER_ADMIN SUPERVISOR GUIA"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Telefono string `json:"telefono"`
	Zona     string `json:"zona"`
	Idiomas  string `json:"idiomas"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Nombre         string `json:"nombre"`
	Apellido       string `json:"apellido"`
	Rol            string `json:"rol"`
	Activo         bool   `json:"activo"`
	PerfilCompleto bool   `json:"perfil_completo"`
}
