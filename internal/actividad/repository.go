package actividad

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Guardar(db *gorm.DB, a *Actividad) error
	ListarPorWorkspace(db *gorm.DB, ws string) ([]Actividad, error)
	ListarPorRango(db *gorm.DB, ws string, desde, hasta time.Time) ([]Actividad, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Guardar(db *gorm.DB, a *Actividad) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) ListarPorWorkspace(db *gorm.DB, ws string) ([]Actividad, error) {
	var list []Actividad
	err := db.Where("workspace = ?", ws).Order("fecha desc").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarPorRango(db *gorm.DB, ws string, desde, hasta time.Time) ([]Actividad, error) {
	var list []Actividad
	err := db.Where("workspace = ? AND fecha BETWEEN ? AND ?", ws, desde, hasta).
		Order("fecha desc").Find(&list).Error
	return list, err
}
