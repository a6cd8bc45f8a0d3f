package cuenta

import (
	"time"

	"gorm.io/gorm"
)

// Etapas gruesas de la cuenta (más gruesas que las del pipeline de deals)
const (
	EtapaLead        = "lead"
	EtapaSQL         = "sql"
	EtapaOportunidad = "oportunidad"
	EtapaWon         = "won"
	EtapaLost        = "lost"
)

// Cuenta representa un prospecto (universidad o empresa).
type Cuenta struct {
	ID        uint           `gorm:"primaryKey" json:"cuentaId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nombre       string `gorm:"size:255;not null" json:"nombre"`
	Dominio      string `gorm:"size:255;index" json:"dominio"`
	Pais         string `gorm:"size:2;index" json:"pais"` // código ISO
	Etapa        string `gorm:"size:20;not null;default:'lead'" json:"etapa"`
	FitComercial string `gorm:"size:20" json:"fitComercial"`
	OwnerID      *uint  `gorm:"index" json:"ownerId"`
	Workspace    string `gorm:"size:20;not null;index" json:"workspace"`

	Contacto string `gorm:"size:255" json:"contacto"`
	Email    string `gorm:"size:255" json:"email"`
	Telefono string `gorm:"size:50" json:"telefono"`
	Notas    string `json:"notas"`
}

// EsEtapaValida indica si el valor pertenece al enum de etapas de cuenta.
func EsEtapaValida(etapa string) bool {
	switch etapa {
	case EtapaLead, EtapaSQL, EtapaOportunidad, EtapaWon, EtapaLost:
		return true
	}
	return false
}
