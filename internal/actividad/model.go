package actividad

import (
	"time"

	"gorm.io/gorm"
)

// Canales por los que se registra actividad
const (
	CanalEmail    = "email"
	CanalLlamada  = "llamada"
	CanalWhatsapp = "whatsapp"
	CanalLinkedin = "linkedin"
	CanalReunion  = "reunion"
)

// Actividad es una fila del log de actividad comercial.
type Actividad struct {
	ID        uint           `gorm:"primaryKey" json:"actividadId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	MiembroID uint   `gorm:"not null;index" json:"miembroId"`
	Usuario   string `gorm:"size:100" json:"usuario"` // nombre al momento del registro
	Rol       string `gorm:"size:10" json:"rol"`
	Workspace string `gorm:"size:20;not null;index" json:"workspace"`

	TipoAccion  string    `gorm:"size:50;not null" json:"tipoAccion"`
	Entidad     string    `gorm:"size:255" json:"entidad"`    // nombre de la cuenta/deal afectado
	TipoEntidad string    `gorm:"size:30" json:"tipoEntidad"` // cuenta | oportunidad | reunion
	Canal       string    `gorm:"size:20" json:"canal"`
	Fecha       time.Time `gorm:"not null;index" json:"fecha"`
}
