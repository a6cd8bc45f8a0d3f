package workspace

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// GET /workspaces/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !EsValido(id) {
		http.Error(w, "Workspace desconocido", http.StatusNotFound)
		return
	}

	var ws Workspace
	if err := h.DB.First(&ws, "id = ?", id).Error; err != nil {
		http.Error(w, "Workspace no encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ws)
}

// Seed crea los workspaces por defecto si no existen.
func Seed(db *gorm.DB) error {
	for _, ws := range Defaults() {
		if err := db.Where("id = ?", ws.ID).FirstOrCreate(&ws).Error; err != nil {
			return err
		}
	}
	return nil
}
