// internal/oportunidad/handler.go
package oportunidad

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/myworkin/api-crm/internal/nota"
	"github.com/myworkin/api-crm/internal/notificacion"
	"github.com/myworkin/api-crm/internal/workspace"
)

var validate = validator.New()

// Handler encapsula DB y repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler crea un nuevo handler de oportunidades
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// POST /oportunidades
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var dto crearOportunidadDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	etapa := CanonicalizarEtapa(dto.Etapa)
	if etapa == "" {
		etapa = EtapaPrimeraReunionProgramada
	}
	if !EsEtapaValida(etapa) {
		http.Error(w, "etapa inválida", http.StatusBadRequest)
		return
	}

	o := Oportunidad{
		CuentaID:     dto.CuentaID,
		OwnerID:      dto.OwnerID,
		Workspace:    workspace.Desde(r.Context()),
		Etapa:        etapa,
		Estado:       EstadoParaEtapa(etapa),
		MRR:          dto.MRR,
		Probabilidad: dto.Probabilidad,
		Fuente:       dto.Fuente,
		ICPTier:      dto.ICPTier,
		FechaCierre:  dto.FechaCierre,
	}

	if err := h.Repository.Guardar(h.DB, &o); err != nil {
		http.Error(w, "Error al guardar oportunidad", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toDTO(o, time.Now()))
}

// GET /oportunidades
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarPorWorkspace(h.DB, workspace.Desde(r.Context()))
	if err != nil {
		http.Error(w, "Error al listar oportunidades", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toDTOs(list, time.Now()))
}

// GET /oportunidades/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	o, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Oportunidad no encontrada", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toDTO(*o, time.Now()))
}

// PUT /oportunidades/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Oportunidad no encontrada", http.StatusNotFound)
		return
	}

	var dto actualizarOportunidadDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if dto.OwnerID != nil {
		existente.OwnerID = dto.OwnerID
	}
	if dto.MRR != nil {
		existente.MRR = *dto.MRR
	}
	if dto.Probabilidad != nil {
		existente.Probabilidad = *dto.Probabilidad
	}
	if dto.Fuente != nil {
		existente.Fuente = *dto.Fuente
	}
	if dto.ICPTier != nil {
		existente.ICPTier = *dto.ICPTier
	}
	if dto.FechaCierre != nil {
		existente.FechaCierre = dto.FechaCierre
	}

	if err := h.Repository.Actualizar(h.DB, existente); err != nil {
		http.Error(w, "Error al actualizar oportunidad", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toDTO(*existente, time.Now()))
}

// PATCH /oportunidades/{id}/etapa
// Aplica la política de transición: lost exige motivo, won va directo y el
// resto exige próxima acción. Validación fallida = cero escritura.
func (h *Handler) CambiarEtapa(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req cambiarEtapaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	o, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Oportunidad no encontrada", http.StatusNotFound)
		return
	}

	etapa := CanonicalizarEtapa(req.Etapa)
	datos := DatosTransicion{
		MotivoPerdida: req.MotivoPerdida,
		ProximaAccion: req.ProximaAccion,
	}
	if err := AplicarTransicion(o, etapa, datos, time.Now()); err != nil {
		switch {
		case errors.Is(err, ErrEtapaInvalida),
			errors.Is(err, ErrMotivoPerdidaRequerido),
			errors.Is(err, ErrProximaAccionRequerida):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Error al cambiar etapa", http.StatusInternalServerError)
		}
		return
	}

	if err := h.Repository.Actualizar(h.DB, o); err != nil {
		http.Error(w, "Error al actualizar oportunidad", http.StatusInternalServerError)
		return
	}

	// nota de sistema en el historial del deal; si falla no aborta el cambio
	if err := nota.RegistrarCambioEtapa(h.DB, o.ID, o.Etapa); err != nil {
		logrus.WithError(err).Warn("no se pudo registrar la nota de cambio de etapa")
	}

	if o.Etapa == EtapaLost {
		go notificacion.EnviarAlertaPerdida(o.ID, o.MotivoPerdida)
	}

	logrus.WithFields(logrus.Fields{
		"oportunidad": o.ID,
		"etapa":       o.Etapa,
	}).Info("etapa actualizada")

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toDTO(*o, time.Now()))
}

// POST /oportunidades/{id}/accion/completar
func (h *Handler) CompletarAccion(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	o, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Oportunidad no encontrada", http.StatusNotFound)
		return
	}

	// Sin próxima acción es un no-op: se devuelve el estado actual tal cual
	if CompletarAccion(o, time.Now()) {
		if err := h.Repository.Actualizar(h.DB, o); err != nil {
			http.Error(w, "Error al actualizar oportunidad", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toDTO(*o, time.Now()))
}

// DELETE /oportunidades/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Repository.Eliminar(h.DB, uint(id)); err != nil {
		http.Error(w, "Error al eliminar oportunidad", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
