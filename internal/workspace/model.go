package workspace

import "time"

// IDs de los workspaces soportados. Cada registro con alcance de tenant
// lleva una columna `workspace` con uno de estos valores.
const (
	MyWorkIn = "myworkin"
	MKN      = "mkn"
)

// Workspace es la configuración de tenant (tema, nombre visible).
type Workspace struct {
	ID            string    `gorm:"primaryKey;size:20" json:"id"`
	Nombre        string    `gorm:"size:100;not null" json:"nombre"`
	ColorPrimario string    `gorm:"size:20" json:"colorPrimario"`
	ColorAcento   string    `gorm:"size:20" json:"colorAcento"`
	Logo          string    `gorm:"size:255" json:"logo"`
	MonedaDefault string    `gorm:"size:5" json:"monedaDefault"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// EsValido indica si el id corresponde a un workspace conocido.
func EsValido(id string) bool {
	return id == MyWorkIn || id == MKN
}

// Semillas por defecto para el arranque (AutoMigrate + FirstOrCreate).
func Defaults() []Workspace {
	return []Workspace{
		{ID: MyWorkIn, Nombre: "MyWorkIn", ColorPrimario: "#6D28D9", ColorAcento: "#A78BFA", MonedaDefault: "USD"},
		{ID: MKN, Nombre: "MKN", ColorPrimario: "#0F766E", ColorAcento: "#2DD4BF", MonedaDefault: "USD"},
	}
}
