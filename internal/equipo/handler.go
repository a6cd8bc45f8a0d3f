package equipo

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/myworkin/api-crm/internal/auth"
	"github.com/myworkin/api-crm/internal/utils"
	"github.com/myworkin/api-crm/internal/workspace"
)

var validate = validator.New()

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

// POST /auth/login
// Valida email/contraseña, emite access token y setea refresh token en cookie httpOnly.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorEmail(h.DB, req.Email)
	if err != nil {
		http.Error(w, "credenciales inválidas", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		http.Error(w, "contraseña incorrecta", http.StatusUnauthorized)
		return
	}

	// Emite access token y setea refresh (httpOnly) en cookie
	access, err := auth.EmitirTokensEnLogin(h.DB, w, user.ID, user.IsAdmin, user.Rol)
	if err != nil {
		logrus.WithError(err).Error("error al generar tokens")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"access_token": access,
		"token_type":   "Bearer",
		"expires_in":   int(auth.AccessTTL.Seconds()),
	})
}

// POST /equipo
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req CreateMiembroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "error al procesar contraseña", http.StatusInternalServerError)
		return
	}

	if req.Paises == nil {
		req.Paises = []string{}
	}

	m := Miembro{
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		Email:     req.Email,
		Telefono:  req.Telefono,
		Foto:      req.Foto,
		Password:  string(hash),
		Rol:       req.Rol,
		IsAdmin:   req.IsAdmin,
		Paises:    req.Paises,
		Workspace: workspace.Desde(r.Context()),
	}

	if err := h.Repository.Guardar(h.DB, &m); err != nil {
		http.Error(w, "error al guardar miembro", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(m)
}

// GET /equipo
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarPorWorkspace(h.DB, workspace.Desde(r.Context()))
	if err != nil {
		http.Error(w, "error al listar equipo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /equipo/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	m, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Miembro no encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}

// PUT /equipo/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	// Permiso: admin o el propio miembro
	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)
	userID, _ := r.Context().Value(auth.CtxUserID).(uint)
	if !isAdmin && uint(id) != userID {
		http.Error(w, "acceso denegado", http.StatusForbidden)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Miembro no encontrado", http.StatusNotFound)
		return
	}

	var req UpdateMiembroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Nombre != nil {
		existente.Nombre = *req.Nombre
	}
	if req.Apellido != nil {
		existente.Apellido = *req.Apellido
	}
	if req.Foto != nil {
		existente.Foto = *req.Foto
	}
	if req.Rol != nil {
		existente.Rol = *req.Rol
	}
	if req.Paises != nil {
		existente.Paises = *req.Paises
	}

	if err := h.Repository.Guardar(h.DB, existente); err != nil {
		http.Error(w, "error al actualizar miembro", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// POST /equipo/{id}/reset-password (solo admin)
// Genera una contraseña temporal y la devuelve una única vez en la respuesta.
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	m, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Miembro no encontrado", http.StatusNotFound)
		return
	}

	temporal, err := utils.GenerarPasswordTemporal()
	if err != nil {
		http.Error(w, "error al generar contraseña", http.StatusInternalServerError)
		return
	}
	hash, err := utils.HashPassword(temporal)
	if err != nil {
		http.Error(w, "error al procesar contraseña", http.StatusInternalServerError)
		return
	}

	m.Password = hash
	if err := h.Repository.Guardar(h.DB, m); err != nil {
		http.Error(w, "error al guardar miembro", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"passwordTemporal": temporal})
}

// DELETE /equipo/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Repository.Eliminar(h.DB, uint(id)); err != nil {
		http.Error(w, "error al eliminar miembro", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
