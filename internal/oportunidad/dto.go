// internal/oportunidad/dto.go
package oportunidad

import "time"

// crearOportunidadDTO es el payload de POST /oportunidades
type crearOportunidadDTO struct {
	CuentaID     uint       `json:"cuentaId" validate:"required"`
	OwnerID      *uint      `json:"ownerId"`
	Etapa        string     `json:"etapa"`
	MRR          float64    `json:"mrr" validate:"gte=0"`
	Probabilidad int        `json:"probabilidad" validate:"gte=0,lte=100"`
	Fuente       string     `json:"fuente" validate:"omitempty,oneof=inbound outbound referido"`
	ICPTier      string     `json:"icpTier" validate:"omitempty,oneof=A B C"`
	FechaCierre  *time.Time `json:"fechaCierreEstimada"`
}

// actualizarOportunidadDTO es el payload de PUT /oportunidades/{id}.
// No permite tocar etapa/estado: eso va por PATCH /oportunidades/{id}/etapa.
type actualizarOportunidadDTO struct {
	OwnerID      *uint      `json:"ownerId"`
	MRR          *float64   `json:"mrr" validate:"omitempty,gte=0"`
	Probabilidad *int       `json:"probabilidad" validate:"omitempty,gte=0,lte=100"`
	Fuente       *string    `json:"fuente" validate:"omitempty,oneof=inbound outbound referido"`
	ICPTier      *string    `json:"icpTier" validate:"omitempty,oneof=A B C"`
	FechaCierre  *time.Time `json:"fechaCierreEstimada"`
}

// cambiarEtapaRequest es el payload de PATCH /oportunidades/{id}/etapa
type cambiarEtapaRequest struct {
	Etapa         string  `json:"etapa" validate:"required"`
	MotivoPerdida string  `json:"motivoPerdida,omitempty"`
	ProximaAccion *Accion `json:"proximaAccion,omitempty"`
}

// OportunidadDTO agrega los campos derivados que la UI muestra por fila.
type OportunidadDTO struct {
	Oportunidad
	DiasEstancada int `json:"diasEstancada"`
}

func toDTO(o Oportunidad, now time.Time) OportunidadDTO {
	return OportunidadDTO{Oportunidad: o, DiasEstancada: o.DiasEstancada(now)}
}

func toDTOs(list []Oportunidad, now time.Time) []OportunidadDTO {
	out := make([]OportunidadDTO, 0, len(list))
	for _, o := range list {
		out = append(out, toDTO(o, now))
	}
	return out
}
