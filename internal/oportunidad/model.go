package oportunidad

import (
	"time"

	"gorm.io/gorm"
)

// Fuentes de origen
const (
	FuenteInbound  = "inbound"
	FuenteOutbound = "outbound"
	FuenteReferido = "referido"
)

// Accion es una acción de seguimiento (próxima o ya realizada) en JSONB.
type Accion struct {
	Tipo        string `json:"tipo"`
	Fecha       string `json:"fecha"` // YYYY-MM-DD
	Descripcion string `json:"descripcion"`
}

// Oportunidad representa un deal del pipeline de una cuenta.
type Oportunidad struct {
	ID        uint           `gorm:"primaryKey" json:"oportunidadId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	CuentaID  uint   `gorm:"not null;index" json:"cuentaId"`
	OwnerID   *uint  `gorm:"index" json:"ownerId"`
	Workspace string `gorm:"size:20;not null;index" json:"workspace"`

	Etapa        string  `gorm:"size:50;not null" json:"etapa"`
	Estado       string  `gorm:"size:20;not null" json:"estado"` // derivado de Etapa
	MRR          float64 `gorm:"not null;default:0" json:"mrr"`
	Probabilidad int     `gorm:"not null;default:0" json:"probabilidad"` // 0-100
	Fuente       string  `gorm:"size:20" json:"fuente"`                  // inbound | outbound | referido
	ICPTier      string  `gorm:"size:1" json:"icpTier"`                  // A | B | C

	// Seguimiento en JSONB
	ProximaAccion   *Accion `gorm:"type:jsonb;serializer:json" json:"proximaAccion"`
	UltimaActividad *Accion `gorm:"type:jsonb;serializer:json" json:"ultimaActividad"`

	MotivoPerdida string     `gorm:"size:255" json:"motivoPerdida,omitempty"` // solo cuando Etapa=lost
	FechaCierre   *time.Time `json:"fechaCierreEstimada,omitempty"`
}

// DiasEstancada calcula los días desde la última actualización. Siempre se
// deriva al leer, nunca se persiste.
func (o *Oportunidad) DiasEstancada(now time.Time) int {
	d := int(now.Sub(o.UpdatedAt).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
