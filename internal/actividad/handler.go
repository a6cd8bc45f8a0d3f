// internal/actividad/handler.go
package actividad

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/myworkin/api-crm/internal/auth"
	"github.com/myworkin/api-crm/internal/workspace"
)

var validate = validator.New()

type crearActividadDTO struct {
	Usuario     string     `json:"usuario"`
	TipoAccion  string     `json:"tipoAccion" validate:"required"`
	Entidad     string     `json:"entidad"`
	TipoEntidad string     `json:"tipoEntidad" validate:"omitempty,oneof=cuenta oportunidad reunion"`
	Canal       string     `json:"canal" validate:"omitempty,oneof=email llamada whatsapp linkedin reunion"`
	Fecha       *time.Time `json:"fecha"`
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// POST /actividades
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var dto crearActividadDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	userID, _ := r.Context().Value(auth.CtxUserID).(uint)
	rol, _ := r.Context().Value(auth.CtxRol).(string)

	fecha := time.Now()
	if dto.Fecha != nil {
		fecha = *dto.Fecha
	}

	a := Actividad{
		MiembroID:   userID,
		Usuario:     dto.Usuario,
		Rol:         rol,
		Workspace:   workspace.Desde(r.Context()),
		TipoAccion:  dto.TipoAccion,
		Entidad:     dto.Entidad,
		TipoEntidad: dto.TipoEntidad,
		Canal:       dto.Canal,
		Fecha:       fecha,
	}

	if err := h.Repository.Guardar(h.DB, &a); err != nil {
		http.Error(w, "Error al guardar actividad", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}

// GET /actividades
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarPorWorkspace(h.DB, workspace.Desde(r.Context()))
	if err != nil {
		http.Error(w, "Error al listar actividades", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /actividades/export?desde=2026-01-01&hasta=2026-01-31
func (h *Handler) Exportar(w http.ResponseWriter, r *http.Request) {
	ws := workspace.Desde(r.Context())

	var (
		list []Actividad
		err  error
	)
	desde, errDesde := time.Parse("2006-01-02", r.URL.Query().Get("desde"))
	hasta, errHasta := time.Parse("2006-01-02", r.URL.Query().Get("hasta"))
	if errDesde == nil && errHasta == nil {
		// hasta inclusive: se extiende al final del día
		hasta = hasta.Add(24*time.Hour - time.Nanosecond)
		list, err = h.Repository.ListarPorRango(h.DB, ws, desde, hasta)
	} else {
		list, err = h.Repository.ListarPorWorkspace(h.DB, ws)
	}
	if err != nil {
		http.Error(w, "Error al exportar actividades", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="actividades.csv"`)
	if err := EscribirCSV(w, list); err != nil {
		http.Error(w, "Error al generar CSV", http.StatusInternalServerError)
		return
	}
}
