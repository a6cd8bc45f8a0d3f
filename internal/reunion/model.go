package reunion

import (
	"time"

	"gorm.io/gorm"
)

// Tipos de reunión
const (
	TipoPrimeraReunion = "primera_reunion"
	TipoDemo           = "demo"
	TipoSeguimiento    = "seguimiento"
)

// Reunion representa una reunión agendada o realizada con una cuenta.
type Reunion struct {
	ID        uint           `gorm:"primaryKey" json:"reunionId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	CuentaID      uint   `gorm:"not null;index" json:"cuentaId"`
	OportunidadID *uint  `gorm:"index" json:"oportunidadId"`
	MiembroID     *uint  `gorm:"index" json:"miembroId"`
	Workspace     string `gorm:"size:20;not null;index" json:"workspace"`

	Tipo            string     `gorm:"size:30;not null" json:"tipo"`
	FechaProgramada time.Time  `gorm:"not null" json:"fechaProgramada"`
	FechaRealizada  *time.Time `json:"fechaRealizada"`
	Resultado       string     `gorm:"size:255" json:"resultado"`
	Notas           string     `json:"notas"`
}

// Realizada indica si la reunión ya ocurrió.
func (r *Reunion) Realizada() bool {
	return r.FechaRealizada != nil
}
