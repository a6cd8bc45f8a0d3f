// Package metricas calcula los números del dashboard a partir de registros
// ya cargados. Todo es transformación pura: no muta los inputs y el mismo
// input produce siempre el mismo output.
package metricas

import (
	"math"
	"time"

	"github.com/myworkin/api-crm/internal/actividad"
	"github.com/myworkin/api-crm/internal/cuenta"
	"github.com/myworkin/api-crm/internal/oportunidad"
	"github.com/myworkin/api-crm/internal/reunion"
)

// Rango es un intervalo de fechas, inclusivo en ambos extremos.
type Rango struct {
	Desde time.Time `json:"desde"`
	Hasta time.Time `json:"hasta"`
}

// Contiene indica si t cae dentro del rango (bordes incluidos).
func (r Rango) Contiene(t time.Time) bool {
	return !t.Before(r.Desde) && !t.After(r.Hasta)
}

// Anterior devuelve el período inmediatamente previo de igual duración.
func (r Rango) Anterior() Rango {
	d := r.Hasta.Sub(r.Desde)
	return Rango{Desde: r.Desde.Add(-d - time.Nanosecond), Hasta: r.Desde.Add(-time.Nanosecond)}
}

// Filtro acota los registros por rango de fechas y, opcionalmente, por país.
type Filtro struct {
	Rango Rango
	Pais  string // vacío = todos los países
}

// Registros es el set plano de datos del dominio sobre el que se agrega.
type Registros struct {
	Cuentas       []cuenta.Cuenta
	Oportunidades []oportunidad.Oportunidad
	Reuniones     []reunion.Reunion
	Actividades   []actividad.Actividad
}

// Resumen son los contadores y sumas del período.
type Resumen struct {
	CuentasNuevas        int     `json:"cuentasNuevas"`
	Leads                int     `json:"leads"`
	SQLs                 int     `json:"sqls"`
	OportunidadesNuevas  int     `json:"oportunidadesNuevas"`
	Won                  int     `json:"won"`
	Lost                 int     `json:"lost"`
	ReunionesProgramadas int     `json:"reunionesProgramadas"`
	ReunionesRealizadas  int     `json:"reunionesRealizadas"`
	Actividades          int     `json:"actividades"`
	MRRGanado            float64 `json:"mrrGanado"`
	PipelineMRR          float64 `json:"pipelineMrr"`
	TasaDeCierreVal      int     `json:"tasaDeCierre"` // porcentaje entero
}

// sumaMRR trata valores negativos como 0 (input defensivo).
func sumaMRR(total, mrr float64) float64 {
	return total + math.Max(0, mrr)
}

// Resumir agrega los registros del período. No muta los inputs.
func Resumir(reg Registros, f Filtro) Resumen {
	var res Resumen

	// país por cuenta, para filtrar oportunidades y reuniones
	paisPorCuenta := make(map[uint]string, len(reg.Cuentas))
	for _, c := range reg.Cuentas {
		paisPorCuenta[c.ID] = c.Pais
	}
	cuentaPasaFiltro := func(cuentaID uint) bool {
		if f.Pais == "" {
			return true
		}
		return paisPorCuenta[cuentaID] == f.Pais
	}

	for _, c := range reg.Cuentas {
		if f.Pais != "" && c.Pais != f.Pais {
			continue
		}
		if !f.Rango.Contiene(c.CreatedAt) {
			continue
		}
		res.CuentasNuevas++
		switch c.Etapa {
		case cuenta.EtapaLead:
			res.Leads++
		case cuenta.EtapaSQL:
			res.SQLs++
		}
	}

	for _, o := range reg.Oportunidades {
		if !cuentaPasaFiltro(o.CuentaID) {
			continue
		}
		if f.Rango.Contiene(o.CreatedAt) {
			res.OportunidadesNuevas++
			if o.Estado == oportunidad.EstadoActivo {
				res.PipelineMRR = sumaMRR(res.PipelineMRR, o.MRR)
			}
		}
		// cierres: se cuentan por fecha de última actualización
		if f.Rango.Contiene(o.UpdatedAt) {
			switch o.Estado {
			case oportunidad.EstadoWon:
				res.Won++
				res.MRRGanado = sumaMRR(res.MRRGanado, o.MRR)
			case oportunidad.EstadoLost:
				res.Lost++
			}
		}
	}

	for _, re := range reg.Reuniones {
		if !cuentaPasaFiltro(re.CuentaID) {
			continue
		}
		if f.Rango.Contiene(re.FechaProgramada) {
			res.ReunionesProgramadas++
		}
		if re.FechaRealizada != nil && f.Rango.Contiene(*re.FechaRealizada) {
			res.ReunionesRealizadas++
		}
	}

	// las actividades no tienen país; solo filtra la fecha
	for _, a := range reg.Actividades {
		if f.Rango.Contiene(a.Fecha) {
			res.Actividades++
		}
	}

	res.TasaDeCierreVal = TasaDeCierre(res.Won, res.Lost)
	return res
}

// TasaDeCierre es won/(won+lost) como porcentaje entero redondeado.
// Con denominador cero devuelve 0 (nunca divide por cero).
func TasaDeCierre(won, lost int) int {
	total := won + lost
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(won) / float64(total)))
}

// Conversion es la tasa actual/previa como porcentaje entero redondeado.
// Con nivel previo en cero devuelve 0.
func Conversion(actual, previa int) int {
	if previa == 0 {
		return 0
	}
	return int(math.Round(100 * float64(actual) / float64(previa)))
}

// Delta compara un valor contra el período anterior, en porcentaje entero.
// previo==0: 100 si hubo crecimiento, 0 si no. Magnitudes menores a 0.5
// quedan en 0 exacto para no mostrar ruido de "+0%"/"-0%".
func Delta(actual, previo float64) int {
	if previo == 0 {
		if actual > 0 {
			return 100
		}
		return 0
	}
	pct := 100 * (actual - previo) / previo
	if math.Abs(pct) < 0.5 {
		return 0
	}
	return int(math.Round(pct))
}
