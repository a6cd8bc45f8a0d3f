// internal/metricas/handler.go
package metricas

import (
	"encoding/json"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/myworkin/api-crm/internal/actividad"
	"github.com/myworkin/api-crm/internal/cuenta"
	"github.com/myworkin/api-crm/internal/oportunidad"
	"github.com/myworkin/api-crm/internal/reunion"
	"github.com/myworkin/api-crm/internal/workspace"
)

type Handler struct {
	DB            *gorm.DB
	Cuentas       cuenta.Repository
	Oportunidades oportunidad.Repository
	Reuniones     reunion.Repository
	Actividades   actividad.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:            db,
		Cuentas:       cuenta.NewRepository(),
		Oportunidades: oportunidad.NewRepository(),
		Reuniones:     reunion.NewRepository(),
		Actividades:   actividad.NewRepository(),
	}
}

// ResumenComparado agrega los deltas contra el período anterior.
type ResumenComparado struct {
	Actual   Resumen        `json:"actual"`
	Anterior Resumen        `json:"anterior"`
	Deltas   map[string]int `json:"deltas"`
}

func compararResumen(actual, anterior Resumen) map[string]int {
	return map[string]int{
		"cuentasNuevas":       Delta(float64(actual.CuentasNuevas), float64(anterior.CuentasNuevas)),
		"oportunidadesNuevas": Delta(float64(actual.OportunidadesNuevas), float64(anterior.OportunidadesNuevas)),
		"won":                 Delta(float64(actual.Won), float64(anterior.Won)),
		"reunionesRealizadas": Delta(float64(actual.ReunionesRealizadas), float64(anterior.ReunionesRealizadas)),
		"actividades":         Delta(float64(actual.Actividades), float64(anterior.Actividades)),
		"mrrGanado":           Delta(actual.MRRGanado, anterior.MRRGanado),
	}
}

func (h *Handler) cargarRegistros(ws string) (Registros, error) {
	var reg Registros
	var err error

	if reg.Cuentas, err = h.Cuentas.ListarPorWorkspace(h.DB, ws); err != nil {
		return reg, err
	}
	if reg.Oportunidades, err = h.Oportunidades.ListarPorWorkspace(h.DB, ws); err != nil {
		return reg, err
	}
	if reg.Reuniones, err = h.Reuniones.ListarPorWorkspace(h.DB, ws); err != nil {
		return reg, err
	}
	if reg.Actividades, err = h.Actividades.ListarPorWorkspace(h.DB, ws); err != nil {
		return reg, err
	}
	return reg, nil
}

// rangoDesdeQuery arma el filtro a partir de ?desde=&hasta=&pais=.
// Sin parámetros se asumen los últimos 30 días.
func rangoDesdeQuery(r *http.Request) Filtro {
	q := r.URL.Query()
	now := time.Now()

	desde, errDesde := time.Parse("2006-01-02", q.Get("desde"))
	hasta, errHasta := time.Parse("2006-01-02", q.Get("hasta"))
	if errDesde != nil || errHasta != nil {
		hasta = now
		desde = now.AddDate(0, 0, -30)
	} else {
		// hasta inclusive: se extiende al final del día
		hasta = hasta.Add(24*time.Hour - time.Nanosecond)
	}

	return Filtro{
		Rango: Rango{Desde: desde, Hasta: hasta},
		Pais:  q.Get("pais"),
	}
}

// GET /metricas/resumen?desde=&hasta=&pais=&comparar=1
func (h *Handler) Resumen(w http.ResponseWriter, r *http.Request) {
	reg, err := h.cargarRegistros(workspace.Desde(r.Context()))
	if err != nil {
		http.Error(w, "Error al cargar registros", http.StatusInternalServerError)
		return
	}

	f := rangoDesdeQuery(r)
	actual := Resumir(reg, f)

	w.Header().Set("Content-Type", "application/json")

	if r.URL.Query().Get("comparar") != "1" {
		_ = json.NewEncoder(w).Encode(actual)
		return
	}

	anterior := Resumir(reg, Filtro{Rango: f.Rango.Anterior(), Pais: f.Pais})
	_ = json.NewEncoder(w).Encode(ResumenComparado{
		Actual:   actual,
		Anterior: anterior,
		Deltas:   compararResumen(actual, anterior),
	})
}

// GET /metricas/funnel?desde=&hasta=&pais=
func (h *Handler) Funnel(w http.ResponseWriter, r *http.Request) {
	reg, err := h.cargarRegistros(workspace.Desde(r.Context()))
	if err != nil {
		http.Error(w, "Error al cargar registros", http.StatusInternalServerError)
		return
	}

	res := Resumir(reg, rangoDesdeQuery(r))
	niveles := FunnelDelPeriodo(res)

	out := map[string]any{
		"niveles":      niveles,
		"conversiones": Conversiones(niveles),
	}
	if debil, ok := BuscarPuntoDebil(niveles); ok {
		out["puntoDebil"] = debil
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// GET /metricas/semanal?fecha=2026-01-12&pais=
// Resumen de la semana (lunes a domingo) que contiene la fecha dada.
func (h *Handler) Semanal(w http.ResponseWriter, r *http.Request) {
	reg, err := h.cargarRegistros(workspace.Desde(r.Context()))
	if err != nil {
		http.Error(w, "Error al cargar registros", http.StatusInternalServerError)
		return
	}

	ref, err := time.Parse("2006-01-02", r.URL.Query().Get("fecha"))
	if err != nil {
		ref = time.Now()
	}

	// retrocede al lunes de la semana
	diasDesdeLunes := (int(ref.Weekday()) + 6) % 7
	lunes := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location()).
		AddDate(0, 0, -diasDesdeLunes)
	domingo := lunes.AddDate(0, 0, 7).Add(-time.Nanosecond)

	f := Filtro{
		Rango: Rango{Desde: lunes, Hasta: domingo},
		Pais:  r.URL.Query().Get("pais"),
	}
	actual := Resumir(reg, f)
	anterior := Resumir(reg, Filtro{Rango: f.Rango.Anterior(), Pais: f.Pais})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ResumenComparado{
		Actual:   actual,
		Anterior: anterior,
		Deltas:   compararResumen(actual, anterior),
	})
}
