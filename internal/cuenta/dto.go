// internal/cuenta/dto.go
package cuenta

// crearCuentaDTO es el payload de POST /cuentas
type crearCuentaDTO struct {
	Nombre       string `json:"nombre" validate:"required"`
	Dominio      string `json:"dominio"`
	Pais         string `json:"pais" validate:"omitempty,len=2"`
	Etapa        string `json:"etapa" validate:"omitempty,oneof=lead sql oportunidad won lost"`
	FitComercial string `json:"fitComercial"`
	OwnerID      *uint  `json:"ownerId"`
	Contacto     string `json:"contacto"`
	Email        string `json:"email" validate:"omitempty,email"`
	Telefono     string `json:"telefono"`
	Notas        string `json:"notas"`
}

// actualizarCuentaDTO es el payload de PUT /cuentas/{id}
type actualizarCuentaDTO struct {
	Nombre       *string `json:"nombre,omitempty"`
	Dominio      *string `json:"dominio,omitempty"`
	Pais         *string `json:"pais,omitempty" validate:"omitempty,len=2"`
	Etapa        *string `json:"etapa,omitempty" validate:"omitempty,oneof=lead sql oportunidad won lost"`
	FitComercial *string `json:"fitComercial,omitempty"`
	OwnerID      *uint   `json:"ownerId,omitempty"`
	Contacto     *string `json:"contacto,omitempty"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Telefono     *string `json:"telefono,omitempty"`
	Notas        *string `json:"notas,omitempty"`
}

// promoverCuentaRequest es el payload de POST /cuentas/{id}/promover
type promoverCuentaRequest struct {
	MRR          float64 `json:"mrr" validate:"gte=0"`
	Probabilidad int     `json:"probabilidad" validate:"gte=0,lte=100"`
	Fuente       string  `json:"fuente" validate:"omitempty,oneof=inbound outbound referido"`
	ICPTier      string  `json:"icpTier" validate:"omitempty,oneof=A B C"`
	OwnerID      *uint   `json:"ownerId"`
}
