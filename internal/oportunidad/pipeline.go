package oportunidad

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Errores de validación del pipeline. Se rechazan antes de mutar nada.
var (
	ErrEtapaInvalida          = errors.New("etapa destino inválida")
	ErrMotivoPerdidaRequerido = errors.New("motivo de pérdida requerido para marcar lost")
	ErrProximaAccionRequerida = errors.New("próxima acción requerida para cambiar de etapa")
)

// PlanTransicion indica qué debe recolectar la UI antes de aplicar el cambio.
type PlanTransicion struct {
	EtapaDestino          string `json:"etapaDestino"`
	RequiereMotivoPerdida bool   `json:"requiereMotivoPerdida"`
	RequiereProximaAccion bool   `json:"requiereProximaAccion"`
}

// PlanearTransicion valida la etapa destino y devuelve el plan: mover a lost
// exige un motivo, mover a won se aplica directo, y cualquier otra etapa
// (incluida nurture) exige una próxima acción.
func PlanearTransicion(etapaDestino string) (PlanTransicion, error) {
	if !EsEtapaValida(etapaDestino) {
		return PlanTransicion{}, fmt.Errorf("%w: %q", ErrEtapaInvalida, etapaDestino)
	}
	plan := PlanTransicion{EtapaDestino: etapaDestino}
	switch etapaDestino {
	case EtapaLost:
		plan.RequiereMotivoPerdida = true
	case EtapaWon:
		// sin input extra
	default:
		plan.RequiereProximaAccion = true
	}
	return plan, nil
}

// DatosTransicion es el input lateral recolectado por la UI.
type DatosTransicion struct {
	MotivoPerdida string  `json:"motivoPerdida,omitempty"`
	ProximaAccion *Accion `json:"proximaAccion,omitempty"`
}

func accionCompleta(a *Accion) bool {
	return a != nil &&
		strings.TrimSpace(a.Tipo) != "" &&
		strings.TrimSpace(a.Fecha) != "" &&
		strings.TrimSpace(a.Descripcion) != ""
}

// AplicarTransicion aplica el cambio de etapa sobre la oportunidad en memoria.
// Si falta el input requerido devuelve error sin tocar nada: cancelar el
// diálogo lateral deja la oportunidad exactamente como estaba.
func AplicarTransicion(o *Oportunidad, etapaDestino string, datos DatosTransicion, now time.Time) error {
	plan, err := PlanearTransicion(etapaDestino)
	if err != nil {
		return err
	}

	if plan.RequiereMotivoPerdida && strings.TrimSpace(datos.MotivoPerdida) == "" {
		return ErrMotivoPerdidaRequerido
	}
	if plan.RequiereProximaAccion && !accionCompleta(datos.ProximaAccion) {
		return ErrProximaAccionRequerida
	}

	o.Etapa = etapaDestino
	o.Estado = EstadoParaEtapa(etapaDestino)
	o.UpdatedAt = now

	switch {
	case plan.RequiereMotivoPerdida:
		// ProximaAccion queda como está (comportamiento histórico, ver DESIGN.md)
		o.MotivoPerdida = strings.TrimSpace(datos.MotivoPerdida)
	case plan.RequiereProximaAccion:
		accion := *datos.ProximaAccion
		o.ProximaAccion = &accion
	}
	// won: no toca ProximaAccion ni MotivoPerdida

	return nil
}

// CompletarAccion limpia la próxima acción y la archiva como última
// actividad con la fecha de hoy. Sin próxima acción es un no-op.
func CompletarAccion(o *Oportunidad, now time.Time) bool {
	if o.ProximaAccion == nil {
		return false
	}
	o.UltimaActividad = &Accion{
		Tipo:        o.ProximaAccion.Tipo,
		Fecha:       now.Format("2006-01-02"),
		Descripcion: fmt.Sprintf("%s completada", o.ProximaAccion.Tipo),
	}
	o.ProximaAccion = nil
	o.UpdatedAt = now
	return true
}
