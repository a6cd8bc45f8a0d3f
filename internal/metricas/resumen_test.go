package metricas

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myworkin/api-crm/internal/cuenta"
	"github.com/myworkin/api-crm/internal/oportunidad"
	"github.com/myworkin/api-crm/internal/reunion"
)

func TestTasaDeCierre(t *testing.T) {
	assert.Equal(t, 0, TasaDeCierre(0, 0))
	assert.Equal(t, 75, TasaDeCierre(3, 1))
	assert.Equal(t, 100, TasaDeCierre(5, 0))
	assert.Equal(t, 0, TasaDeCierre(0, 4))
	assert.Equal(t, 33, TasaDeCierre(1, 2))
}

func TestConversion(t *testing.T) {
	assert.Equal(t, 0, Conversion(10, 0)) // nivel previo en cero nunca divide
	assert.Equal(t, 0, Conversion(0, 0))
	assert.Equal(t, 40, Conversion(40, 100))
	assert.Equal(t, 50, Conversion(20, 40))
	assert.Equal(t, 25, Conversion(2, 8))
}

func TestDelta(t *testing.T) {
	assert.Equal(t, 100, Delta(10, 0))
	assert.Equal(t, 0, Delta(0, 0))
	assert.Equal(t, 3, Delta(103, 100))
	// magnitudes menores a 0.5 quedan clavadas en 0
	assert.Equal(t, 0, Delta(100.4, 100))
	assert.Equal(t, 0, Delta(99.6, 100))
	assert.Equal(t, -20, Delta(80, 100))
}

func TestFunnelConversionesYPuntoDebil(t *testing.T) {
	niveles := []NivelFunnel{
		{Nombre: "Universidades", Cantidad: 100},
		{Nombre: "Leads", Cantidad: 40},
		{Nombre: "SQLs", Cantidad: 20},
		{Nombre: "Oportunidades", Cantidad: 8},
		{Nombre: "Won", Cantidad: 2},
	}

	assert.Equal(t, []int{100, 40, 50, 40, 25}, Conversiones(niveles))

	debil, ok := BuscarPuntoDebil(niveles)
	require.True(t, ok)
	assert.Equal(t, "Oportunidades", debil.De)
	assert.Equal(t, "Won", debil.A)
	assert.Equal(t, 25, debil.Conversion)
}

func TestPuntoDebilIgnoraNivelesPreviosVacios(t *testing.T) {
	niveles := []NivelFunnel{
		{Nombre: "Universidades", Cantidad: 0},
		{Nombre: "Leads", Cantidad: 0},
		{Nombre: "SQLs", Cantidad: 10},
		{Nombre: "Oportunidades", Cantidad: 4},
	}

	debil, ok := BuscarPuntoDebil(niveles)
	require.True(t, ok)
	assert.Equal(t, "SQLs", debil.De)
	assert.Equal(t, "Oportunidades", debil.A)
	assert.Equal(t, 40, debil.Conversion)
}

func TestPuntoDebilSinParesAplicables(t *testing.T) {
	niveles := []NivelFunnel{
		{Nombre: "Universidades", Cantidad: 0},
		{Nombre: "Leads", Cantidad: 0},
	}
	_, ok := BuscarPuntoDebil(niveles)
	assert.False(t, ok)
}

func TestPuntoDebilEmpateGanaElPrimero(t *testing.T) {
	niveles := []NivelFunnel{
		{Nombre: "Universidades", Cantidad: 100},
		{Nombre: "Leads", Cantidad: 50},
		{Nombre: "SQLs", Cantidad: 25},
	}
	// ambos pares convierten al 50; gana el primero en orden de embudo
	debil, ok := BuscarPuntoDebil(niveles)
	require.True(t, ok)
	assert.Equal(t, "Universidades", debil.De)
}

func registrosDePrueba() Registros {
	enero := func(dia int) time.Time {
		return time.Date(2026, 1, dia, 12, 0, 0, 0, time.UTC)
	}
	realizada := enero(12)

	return Registros{
		Cuentas: []cuenta.Cuenta{
			{ID: 1, Pais: "PE", Etapa: cuenta.EtapaLead, CreatedAt: enero(5)},
			{ID: 2, Pais: "PE", Etapa: cuenta.EtapaSQL, CreatedAt: enero(10)},
			{ID: 3, Pais: "MX", Etapa: cuenta.EtapaSQL, CreatedAt: enero(15)},
			{ID: 4, Pais: "PE", Etapa: cuenta.EtapaLead, CreatedAt: enero(25)}, // fuera de rango
		},
		Oportunidades: []oportunidad.Oportunidad{
			{ID: 1, CuentaID: 1, Estado: oportunidad.EstadoActivo, MRR: 300, CreatedAt: enero(6), UpdatedAt: enero(6)},
			{ID: 2, CuentaID: 2, Estado: oportunidad.EstadoWon, MRR: 500, CreatedAt: enero(2), UpdatedAt: enero(14)},
			{ID: 3, CuentaID: 3, Estado: oportunidad.EstadoLost, MRR: 200, CreatedAt: enero(3), UpdatedAt: enero(13)},
			// MRR negativo: se suma como 0
			{ID: 4, CuentaID: 1, Estado: oportunidad.EstadoWon, MRR: -50, CreatedAt: enero(4), UpdatedAt: enero(10)},
		},
		Reuniones: []reunion.Reunion{
			{ID: 1, CuentaID: 1, FechaProgramada: enero(8)},
			{ID: 2, CuentaID: 2, FechaProgramada: enero(9), FechaRealizada: &realizada},
		},
	}
}

func TestResumir(t *testing.T) {
	reg := registrosDePrueba()
	f := Filtro{Rango: Rango{
		Desde: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Hasta: time.Date(2026, 1, 20, 23, 59, 59, 0, time.UTC),
	}}

	res := Resumir(reg, f)

	assert.Equal(t, 3, res.CuentasNuevas) // la cuenta 4 queda fuera del rango
	assert.Equal(t, 1, res.Leads)
	assert.Equal(t, 2, res.SQLs)
	assert.Equal(t, 4, res.OportunidadesNuevas)
	assert.Equal(t, 2, res.Won)
	assert.Equal(t, 1, res.Lost)
	assert.Equal(t, 500.0, res.MRRGanado) // el MRR negativo aporta 0
	assert.Equal(t, 300.0, res.PipelineMRR)
	assert.Equal(t, 2, res.ReunionesProgramadas)
	assert.Equal(t, 1, res.ReunionesRealizadas)
	assert.Equal(t, 67, res.TasaDeCierreVal)
}

func TestResumirFiltraPorPais(t *testing.T) {
	reg := registrosDePrueba()
	f := Filtro{
		Rango: Rango{
			Desde: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			Hasta: time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC),
		},
		Pais: "MX",
	}

	res := Resumir(reg, f)

	assert.Equal(t, 1, res.CuentasNuevas)
	assert.Equal(t, 1, res.SQLs)
	assert.Equal(t, 0, res.Won)
	assert.Equal(t, 1, res.Lost) // la oportunidad 3 pertenece a la cuenta MX
	assert.Equal(t, 0, res.ReunionesProgramadas)
}

func TestResumirRangoInclusivo(t *testing.T) {
	creada := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	reg := Registros{
		Cuentas: []cuenta.Cuenta{{ID: 1, Etapa: cuenta.EtapaLead, CreatedAt: creada}},
	}

	// el borde exacto del rango cuenta
	res := Resumir(reg, Filtro{Rango: Rango{Desde: creada, Hasta: creada}})
	assert.Equal(t, 1, res.CuentasNuevas)
}

func TestResumirEsPuroYRepetible(t *testing.T) {
	reg := registrosDePrueba()
	mrrAntes := reg.Oportunidades[0].MRR
	f := Filtro{Rango: Rango{
		Desde: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Hasta: time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC),
	}}

	primera := Resumir(reg, f)
	segunda := Resumir(reg, f)

	assert.Equal(t, primera, segunda)
	assert.Equal(t, mrrAntes, reg.Oportunidades[0].MRR)
}

func TestRangoAnterior(t *testing.T) {
	r := Rango{
		Desde: time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC),
		Hasta: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	prev := r.Anterior()

	assert.True(t, prev.Hasta.Before(r.Desde))
	assert.Equal(t, r.Hasta.Sub(r.Desde), prev.Hasta.Sub(prev.Desde))
	// sin solapamiento ni hueco: el período previo termina justo antes del actual
	assert.Equal(t, time.Nanosecond, r.Desde.Sub(prev.Hasta))
}
