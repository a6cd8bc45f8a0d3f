package oportunidad

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oportunidadDePrueba() Oportunidad {
	updated := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	return Oportunidad{
		ID:           1,
		CuentaID:     7,
		Workspace:    "myworkin",
		Etapa:        EtapaDemoProgramada,
		Estado:       EstadoActivo,
		MRR:          450,
		Probabilidad: 40,
		Fuente:       FuenteInbound,
		ICPTier:      "A",
		ProximaAccion: &Accion{
			Tipo:        "llamada",
			Fecha:       "2026-01-15",
			Descripcion: "Llamada de seguimiento",
		},
		UpdatedAt: updated,
	}
}

func TestEstadoParaEtapa(t *testing.T) {
	assert.Equal(t, EstadoWon, EstadoParaEtapa(EtapaWon))
	assert.Equal(t, EstadoLost, EstadoParaEtapa(EtapaLost))
	assert.Equal(t, EstadoNurture, EstadoParaEtapa(EtapaNurture))
	assert.Equal(t, EstadoActivo, EstadoParaEtapa(EtapaNegociacion))
	assert.Equal(t, EstadoActivo, EstadoParaEtapa(EtapaPrimeraReunionProgramada))
}

func TestCanonicalizarEtapaLegacy(t *testing.T) {
	assert.Equal(t, EtapaPrimeraReunionRealizada, CanonicalizarEtapa("discovery"))
	assert.Equal(t, EtapaDemoProgramada, CanonicalizarEtapa("demo"))
	assert.Equal(t, EtapaPropuestaEnviada, CanonicalizarEtapa("propuesta"))
	// los nombres canónicos pasan sin tocar
	assert.Equal(t, EtapaNegociacion, CanonicalizarEtapa(EtapaNegociacion))
}

func TestPlanearTransicion(t *testing.T) {
	plan, err := PlanearTransicion(EtapaLost)
	require.NoError(t, err)
	assert.True(t, plan.RequiereMotivoPerdida)
	assert.False(t, plan.RequiereProximaAccion)

	plan, err = PlanearTransicion(EtapaWon)
	require.NoError(t, err)
	assert.False(t, plan.RequiereMotivoPerdida)
	assert.False(t, plan.RequiereProximaAccion)

	plan, err = PlanearTransicion(EtapaNurture)
	require.NoError(t, err)
	assert.True(t, plan.RequiereProximaAccion)

	plan, err = PlanearTransicion(EtapaPropuestaEnviada)
	require.NoError(t, err)
	assert.True(t, plan.RequiereProximaAccion)

	_, err = PlanearTransicion("cerrada")
	assert.ErrorIs(t, err, ErrEtapaInvalida)
}

func TestAplicarTransicionLostSinMotivoNoMuta(t *testing.T) {
	o := oportunidadDePrueba()
	antes := o

	err := AplicarTransicion(&o, EtapaLost, DatosTransicion{}, time.Now())
	assert.ErrorIs(t, err, ErrMotivoPerdidaRequerido)
	assert.Equal(t, antes, o)

	// espacios en blanco tampoco cuentan como motivo
	err = AplicarTransicion(&o, EtapaLost, DatosTransicion{MotivoPerdida: "   "}, time.Now())
	assert.ErrorIs(t, err, ErrMotivoPerdidaRequerido)
	assert.Equal(t, antes, o)
}

func TestAplicarTransicionLostConMotivo(t *testing.T) {
	o := oportunidadDePrueba()
	accionPrevia := *o.ProximaAccion
	now := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)

	err := AplicarTransicion(&o, EtapaLost, DatosTransicion{MotivoPerdida: "sin presupuesto"}, now)
	require.NoError(t, err)

	assert.Equal(t, EtapaLost, o.Etapa)
	assert.Equal(t, EstadoLost, o.Estado)
	assert.Equal(t, "sin presupuesto", o.MotivoPerdida)
	assert.Equal(t, now, o.UpdatedAt)
	// comportamiento histórico: la próxima acción queda intacta
	require.NotNil(t, o.ProximaAccion)
	assert.Equal(t, accionPrevia, *o.ProximaAccion)
}

func TestAplicarTransicionWonDirecta(t *testing.T) {
	o := oportunidadDePrueba()
	accionPrevia := *o.ProximaAccion
	now := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)

	err := AplicarTransicion(&o, EtapaWon, DatosTransicion{}, now)
	require.NoError(t, err)

	assert.Equal(t, EtapaWon, o.Etapa)
	assert.Equal(t, EstadoWon, o.Estado)
	assert.Equal(t, now, o.UpdatedAt)
	assert.Zero(t, o.DiasEstancada(now))
	require.NotNil(t, o.ProximaAccion)
	assert.Equal(t, accionPrevia, *o.ProximaAccion)
	assert.Empty(t, o.MotivoPerdida)
}

func TestAplicarTransicionIntermediaSinAccionNoMuta(t *testing.T) {
	o := oportunidadDePrueba()
	antes := o

	err := AplicarTransicion(&o, EtapaPropuestaEnviada, DatosTransicion{}, time.Now())
	assert.ErrorIs(t, err, ErrProximaAccionRequerida)
	assert.Equal(t, antes, o)

	// acción incompleta tampoco alcanza
	err = AplicarTransicion(&o, EtapaPropuestaEnviada, DatosTransicion{
		ProximaAccion: &Accion{Tipo: "llamada"},
	}, time.Now())
	assert.ErrorIs(t, err, ErrProximaAccionRequerida)
	assert.Equal(t, antes, o)
}

func TestAplicarTransicionIntermediaConAccion(t *testing.T) {
	o := oportunidadDePrueba()
	now := time.Date(2026, 1, 20, 15, 0, 0, 0, time.UTC)
	accion := Accion{
		Tipo:        "enviar_propuesta",
		Fecha:       "2026-02-01",
		Descripcion: "Enviar propuesta",
	}

	err := AplicarTransicion(&o, EtapaPropuestaEnviada, DatosTransicion{ProximaAccion: &accion}, now)
	require.NoError(t, err)

	assert.Equal(t, EtapaPropuestaEnviada, o.Etapa)
	assert.Equal(t, EstadoActivo, o.Estado)
	assert.Equal(t, now, o.UpdatedAt)
	require.NotNil(t, o.ProximaAccion)
	assert.Equal(t, accion, *o.ProximaAccion)
}

func TestAplicarTransicionNurture(t *testing.T) {
	o := oportunidadDePrueba()
	accion := Accion{Tipo: "email", Fecha: "2026-03-01", Descripcion: "Retomar contacto"}

	err := AplicarTransicion(&o, EtapaNurture, DatosTransicion{ProximaAccion: &accion}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, EstadoNurture, o.Estado)
}

func TestAplicarTransicionEtapaInvalidaNoMuta(t *testing.T) {
	o := oportunidadDePrueba()
	antes := o

	err := AplicarTransicion(&o, "qualified", DatosTransicion{}, time.Now())
	assert.ErrorIs(t, err, ErrEtapaInvalida)
	assert.Equal(t, antes, o)
}

func TestCompletarAccion(t *testing.T) {
	o := oportunidadDePrueba()
	now := time.Date(2026, 1, 16, 10, 0, 0, 0, time.UTC)

	require.True(t, CompletarAccion(&o, now))

	assert.Nil(t, o.ProximaAccion)
	require.NotNil(t, o.UltimaActividad)
	assert.Equal(t, "llamada", o.UltimaActividad.Tipo)
	assert.Equal(t, "2026-01-16", o.UltimaActividad.Fecha)
	assert.Equal(t, "llamada completada", o.UltimaActividad.Descripcion)
	assert.Equal(t, now, o.UpdatedAt)
	assert.Equal(t, EtapaDemoProgramada, o.Etapa) // la etapa no cambia
}

func TestCompletarAccionSinAccionEsNoOp(t *testing.T) {
	o := oportunidadDePrueba()
	o.ProximaAccion = nil
	antes := o

	assert.False(t, CompletarAccion(&o, time.Now()))
	assert.Equal(t, antes, o)
}

func TestDiasEstancada(t *testing.T) {
	o := oportunidadDePrueba()
	o.UpdatedAt = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, o.DiasEstancada(time.Date(2026, 1, 15, 18, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, o.DiasEstancada(time.Date(2026, 1, 10, 13, 0, 0, 0, time.UTC)))
	// un reloj atrasado nunca produce días negativos
	assert.Equal(t, 0, o.DiasEstancada(time.Date(2026, 1, 9, 12, 0, 0, 0, time.UTC)))
}
