package nota

import "gorm.io/gorm"

// Nota es un comentario sobre una oportunidad. Las notas de sistema las
// genera el propio pipeline (cambios de etapa).
type Nota struct {
	gorm.Model
	Texto         string `json:"texto"`
	OportunidadID uint   `gorm:"not null;index" json:"oportunidadId"`
	MiembroID     *uint  `gorm:"index" json:"miembroId"`
	IsSystem      bool   `gorm:"default:false" json:"isSystem"`
}
