// internal/reunion/handler.go
package reunion

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/myworkin/api-crm/internal/workspace"
)

var validate = validator.New()

type crearReunionDTO struct {
	CuentaID        uint       `json:"cuentaId" validate:"required"`
	OportunidadID   *uint      `json:"oportunidadId"`
	MiembroID       *uint      `json:"miembroId"`
	Tipo            string     `json:"tipo" validate:"required,oneof=primera_reunion demo seguimiento"`
	FechaProgramada time.Time  `json:"fechaProgramada" validate:"required"`
	FechaRealizada  *time.Time `json:"fechaRealizada"`
	Resultado       string     `json:"resultado"`
	Notas           string     `json:"notas"`
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

// POST /reuniones
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var dto crearReunionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	re := Reunion{
		CuentaID:        dto.CuentaID,
		OportunidadID:   dto.OportunidadID,
		MiembroID:       dto.MiembroID,
		Workspace:       workspace.Desde(r.Context()),
		Tipo:            dto.Tipo,
		FechaProgramada: dto.FechaProgramada,
		FechaRealizada:  dto.FechaRealizada,
		Resultado:       dto.Resultado,
		Notas:           dto.Notas,
	}

	if err := h.Repository.Guardar(h.DB, &re); err != nil {
		http.Error(w, "Error al guardar reunión", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(re)
}

// GET /reuniones
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarPorWorkspace(h.DB, workspace.Desde(r.Context()))
	if err != nil {
		http.Error(w, "Error al listar reuniones", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /reuniones/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	re, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Reunión no encontrada", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(re)
}

// PUT /reuniones/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Reunión no encontrada", http.StatusNotFound)
		return
	}

	var dto crearReunionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	existente.CuentaID = dto.CuentaID
	existente.OportunidadID = dto.OportunidadID
	existente.MiembroID = dto.MiembroID
	existente.Tipo = dto.Tipo
	existente.FechaProgramada = dto.FechaProgramada
	existente.FechaRealizada = dto.FechaRealizada
	existente.Resultado = dto.Resultado
	existente.Notas = dto.Notas

	if err := h.Repository.Actualizar(h.DB, existente); err != nil {
		http.Error(w, "Error al actualizar reunión", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// DELETE /reuniones/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Repository.Eliminar(h.DB, uint(id)); err != nil {
		http.Error(w, "Error al eliminar reunión", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
