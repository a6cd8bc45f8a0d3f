// internal/cuenta/handler.go
package cuenta

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/myworkin/api-crm/internal/notificacion"
	"github.com/myworkin/api-crm/internal/oportunidad"
	"github.com/myworkin/api-crm/internal/workspace"
)

var validate = validator.New()

// Handler encapsula DB y repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Deals      oportunidad.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Deals:      oportunidad.NewRepository(),
	}
}

// POST /cuentas
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var dto crearCuentaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ws := workspace.Desde(r.Context())

	if dto.Etapa == "" {
		dto.Etapa = EtapaLead
	}

	// Alerta de dominio duplicado (no bloquea el alta)
	if dto.Dominio != "" {
		if _, err := h.Repository.BuscarPorDominio(h.DB, ws, dto.Dominio); err == nil {
			go notificacion.EnviarAlertaDominioDuplicado(dto.Dominio)
		}
	}

	c := Cuenta{
		Nombre:       dto.Nombre,
		Dominio:      dto.Dominio,
		Pais:         dto.Pais,
		Etapa:        dto.Etapa,
		FitComercial: dto.FitComercial,
		OwnerID:      dto.OwnerID,
		Workspace:    ws,
		Contacto:     dto.Contacto,
		Email:        dto.Email,
		Telefono:     dto.Telefono,
		Notas:        dto.Notas,
	}

	if err := h.Repository.Guardar(h.DB, &c); err != nil {
		http.Error(w, "Error al guardar cuenta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// GET /cuentas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarPorWorkspace(h.DB, workspace.Desde(r.Context()))
	if err != nil {
		http.Error(w, "Error al listar cuentas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /cuentas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Cuenta no encontrada", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// PUT /cuentas/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Cuenta no encontrada", http.StatusNotFound)
		return
	}

	var dto actualizarCuentaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if dto.Nombre != nil {
		existente.Nombre = *dto.Nombre
	}
	if dto.Dominio != nil {
		existente.Dominio = *dto.Dominio
	}
	if dto.Pais != nil {
		existente.Pais = *dto.Pais
	}
	if dto.Etapa != nil {
		existente.Etapa = *dto.Etapa
	}
	if dto.FitComercial != nil {
		existente.FitComercial = *dto.FitComercial
	}
	if dto.OwnerID != nil {
		existente.OwnerID = dto.OwnerID
	}
	if dto.Contacto != nil {
		existente.Contacto = *dto.Contacto
	}
	if dto.Email != nil {
		existente.Email = *dto.Email
	}
	if dto.Telefono != nil {
		existente.Telefono = *dto.Telefono
	}
	if dto.Notas != nil {
		existente.Notas = *dto.Notas
	}

	if err := h.Repository.Actualizar(h.DB, existente); err != nil {
		http.Error(w, "Error al actualizar cuenta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// POST /cuentas/{id}/promover
// Promueve la cuenta a oportunidad y crea el deal inicial del pipeline.
func (h *Handler) Promover(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Cuenta no encontrada", http.StatusNotFound)
		return
	}

	if c.Etapa == EtapaWon || c.Etapa == EtapaLost {
		http.Error(w, "la cuenta ya está cerrada", http.StatusBadRequest)
		return
	}

	var req promoverCuentaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	owner := req.OwnerID
	if owner == nil {
		owner = c.OwnerID
	}

	o := oportunidad.Oportunidad{
		CuentaID:     c.ID,
		OwnerID:      owner,
		Workspace:    c.Workspace,
		Etapa:        oportunidad.EtapaPrimeraReunionProgramada,
		Estado:       oportunidad.EstadoActivo,
		MRR:          req.MRR,
		Probabilidad: req.Probabilidad,
		Fuente:       req.Fuente,
		ICPTier:      req.ICPTier,
	}

	// La promoción toca dos tablas; va en una transacción
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := h.Deals.Guardar(tx, &o); err != nil {
			return err
		}
		c.Etapa = EtapaOportunidad
		return h.Repository.Actualizar(tx, c)
	})
	if err != nil {
		logrus.WithError(err).Error("error al promover cuenta")
		http.Error(w, "Error al promover cuenta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"cuenta":      c,
		"oportunidad": o,
	})
}

// DELETE /cuentas/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Repository.Eliminar(h.DB, uint(id)); err != nil {
		http.Error(w, "Error al eliminar cuenta", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
