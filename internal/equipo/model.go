package equipo

import "time"

// Roles comerciales del equipo
const (
	RolSDR = "SDR"
	RolAE  = "AE"
)

// Miembro representa a un vendedor del equipo (SDR o AE).
type Miembro struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Nombre    string `gorm:"size:100;not null" json:"nombre"`
	Apellido  string `gorm:"size:100" json:"apellido"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password  string `gorm:"size:255;not null" json:"-"` // no se expone la contraseña en JSON
	Telefono  string `gorm:"size:50" json:"telefono"`
	Foto      string `gorm:"size:255" json:"foto"`
	Rol       string `gorm:"size:10;not null" json:"rol"` // "SDR" | "AE"
	IsAdmin   bool   `gorm:"default:false" json:"isAdmin"`
	Workspace string `gorm:"size:20;not null;index" json:"workspace"`

	// Países asignados (códigos ISO) en JSONB
	Paises []string `gorm:"type:jsonb;serializer:json" json:"paises"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CubrePais indica si el miembro tiene asignado el país dado.
// Sin países asignados se asume cobertura global.
func (m *Miembro) CubrePais(codigo string) bool {
	if len(m.Paises) == 0 {
		return true
	}
	for _, p := range m.Paises {
		if p == codigo {
			return true
		}
	}
	return false
}
