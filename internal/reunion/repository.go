package reunion

import (
	"gorm.io/gorm"
)

type Repository interface {
	Guardar(db *gorm.DB, r *Reunion) error
	BuscarPorID(db *gorm.DB, id uint) (*Reunion, error)
	ListarPorWorkspace(db *gorm.DB, ws string) ([]Reunion, error)
	ListarPorCuenta(db *gorm.DB, cuentaID uint) ([]Reunion, error)
	Actualizar(db *gorm.DB, r *Reunion) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Guardar(db *gorm.DB, re *Reunion) error {
	return db.Create(re).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Reunion, error) {
	var re Reunion
	err := db.First(&re, id).Error
	return &re, err
}

func (r *repositoryImpl) ListarPorWorkspace(db *gorm.DB, ws string) ([]Reunion, error) {
	var list []Reunion
	err := db.Where("workspace = ?", ws).Order("fecha_programada desc").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarPorCuenta(db *gorm.DB, cuentaID uint) ([]Reunion, error) {
	var list []Reunion
	err := db.Where("cuenta_id = ?", cuentaID).Order("fecha_programada desc").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, re *Reunion) error {
	return db.Save(re).Error
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Delete(&Reunion{}, id).Error
}
