package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles del sistema.
const (
	RolSuperAdmin = "SUPER_ADMIN"
	RolSupervisor = "SUPERVISOR"
	RolGuia       = "GUIA"
)

// Usuario stores system accounts with role-based access.
// Rol: SUPER_ADMIN | SUPERVISOR | GUIA. A user has at most one Supervisor
// profile or one Guia profile, chosen by role and keyed 1:1 by UsuarioID.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Nombre       string    `gorm:"not null"`
	Apellido     string
	Rol          string `gorm:"type:varchar(20);not null"`
	Activo       bool   `gorm:"not null;default:true"`
	// PerfilCompleto marks accounts whose role profile was fully captured
	PerfilCompleto    bool `gorm:"not null;default:false"`
	EmailVerificadoAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Usuario) TableName() string { return "usuarios" }

// Supervisor is the role profile for SUPERVISOR accounts, 1:1 with Usuario.
type Supervisor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Telefono  string
	// Zona is the terminal area the supervisor is responsible for
	Zona      string
	CreatedAt time.Time
	UpdatedAt time.Time

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}

func (Supervisor) TableName() string { return "supervisores" }

// Guia is the role profile for GUIA accounts, 1:1 with Usuario.
type Guia struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Telefono  string
	// Idiomas is a comma-separated list of languages offered on tours
	Idiomas    string
	Disponible bool `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}

func (Guia) TableName() string { return "guias" }
