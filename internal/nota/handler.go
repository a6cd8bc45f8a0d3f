package nota

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/myworkin/api-crm/internal/auth"
)

// Handler encapsula DB y repository
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

type crearNotaRequest struct {
	Texto string `json:"texto"`
}

// POST /oportunidades/{id}/notas
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	oppID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de oportunidad inválido", http.StatusBadRequest)
		return
	}

	var req crearNotaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.Texto == "" {
		http.Error(w, "El campo 'texto' es obligatorio", http.StatusBadRequest)
		return
	}

	userVal := r.Context().Value(auth.CtxUserID)
	if userVal == nil {
		http.Error(w, "No autenticado", http.StatusUnauthorized)
		return
	}
	miembroID := userVal.(uint)

	n := Nota{
		Texto:         req.Texto,
		OportunidadID: uint(oppID),
		MiembroID:     &miembroID,
	}

	if err := h.Repository.Crear(h.DB, &n); err != nil {
		http.Error(w, "Error al crear nota", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toDTO(n))
}

// GET /oportunidades/{id}/notas
func (h *Handler) ListarPorOportunidad(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	notas, err := h.Repository.ListarPorOportunidad(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Error al listar notas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toDTOs(notas))
}

// PUT /notas/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Nota no encontrada", http.StatusNotFound)
		return
	}
	if existente.IsSystem {
		http.Error(w, "las notas de sistema no se editan", http.StatusForbidden)
		return
	}

	var req crearNotaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Texto == "" {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Actualizar(h.DB, uint(id), req.Texto); err != nil {
		http.Error(w, "Error al actualizar nota", http.StatusInternalServerError)
		return
	}
	existente.Texto = req.Texto

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toDTO(*existente))
}

// DELETE /notas/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Repository.Eliminar(h.DB, uint(id)); err != nil {
		http.Error(w, "Error al eliminar nota", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RegistrarCambioEtapa deja una nota de sistema cuando el pipeline mueve una
// oportunidad de etapa.
func RegistrarCambioEtapa(db *gorm.DB, oportunidadID uint, etapa string) error {
	n := Nota{
		Texto:         "Etapa actualizada a " + etapa,
		OportunidadID: oportunidadID,
		IsSystem:      true,
	}
	return NewRepository().Crear(db, &n)
}
