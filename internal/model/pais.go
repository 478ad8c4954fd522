package model

import (
	"time"

	"github.com/google/uuid"
)

// Pais is a reference country. Codigo is the ISO-2 business key and is
// immutable once created; only Nombre may be updated afterwards.
// Referenced by Buque (flag country) and Recalada (origin country).
type Pais struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Codigo    string    `gorm:"type:varchar(2);uniqueIndex;not null"`
	Nombre    string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Pais) TableName() string { return "paises" }
