package nota

import "time"

type AutorDTO struct {
	Tipo string `json:"tipo"` // "miembro" | "system"
	ID   *uint  `json:"id,omitempty"`
}

type NotaDTO struct {
	ID            uint      `json:"id"`
	OportunidadID uint      `json:"oportunidadId"`
	Texto         string    `json:"texto"`
	System        bool      `json:"system"`
	CreatedAt     time.Time `json:"createdAt"`
	Autor         AutorDTO  `json:"autor"`
}

func toDTO(n Nota) NotaDTO {
	out := NotaDTO{
		ID:            n.ID,
		OportunidadID: n.OportunidadID,
		Texto:         n.Texto,
		System:        n.IsSystem,
		CreatedAt:     n.CreatedAt,
	}
	if n.IsSystem {
		out.Autor = AutorDTO{Tipo: "system"}
		return out
	}
	out.Autor = AutorDTO{Tipo: "miembro", ID: n.MiembroID}
	return out
}

func toDTOs(list []Nota) []NotaDTO {
	out := make([]NotaDTO, 0, len(list))
	for _, n := range list {
		out = append(out, toDTO(n))
	}
	return out
}
