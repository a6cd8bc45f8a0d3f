// internal/equipo/dto.go
package equipo

// LoginRequest se usa en POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateMiembroRequest se usa en POST /equipo
type CreateMiembroRequest struct {
	Nombre   string   `json:"nombre" validate:"required"`
	Apellido string   `json:"apellido"`
	Email    string   `json:"email" validate:"required,email"`
	Telefono string   `json:"telefono"`
	Foto     string   `json:"foto"`
	Password string   `json:"password" validate:"required,min=8"`
	Rol      string   `json:"rol" validate:"required,oneof=SDR AE"`
	IsAdmin  bool     `json:"isAdmin"`
	Paises   []string `json:"paises"`
}

// UpdateMiembroRequest se usa en PUT /equipo/{id}
// Campos como puntero permiten omitirlos en el JSON si no se quieren cambiar
type UpdateMiembroRequest struct {
	Nombre   *string   `json:"nombre,omitempty"`
	Apellido *string   `json:"apellido,omitempty"`
	Foto     *string   `json:"foto,omitempty"`
	Rol      *string   `json:"rol,omitempty" validate:"omitempty,oneof=SDR AE"`
	Paises   *[]string `json:"paises,omitempty"`
}
