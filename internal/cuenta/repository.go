package cuenta

import (
	"gorm.io/gorm"
)

type Repository interface {
	Guardar(db *gorm.DB, c *Cuenta) error
	BuscarPorID(db *gorm.DB, id uint) (*Cuenta, error)
	BuscarPorDominio(db *gorm.DB, ws, dominio string) (*Cuenta, error)
	ListarPorWorkspace(db *gorm.DB, ws string) ([]Cuenta, error)
	Actualizar(db *gorm.DB, c *Cuenta) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Guardar(db *gorm.DB, c *Cuenta) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Cuenta, error) {
	var c Cuenta
	err := db.First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) BuscarPorDominio(db *gorm.DB, ws, dominio string) (*Cuenta, error) {
	var c Cuenta
	err := db.Where("workspace = ? AND dominio = ?", ws, dominio).First(&c).Error
	return &c, err
}

func (r *repositoryImpl) ListarPorWorkspace(db *gorm.DB, ws string) ([]Cuenta, error) {
	var list []Cuenta
	err := db.Where("workspace = ?", ws).Order("nombre").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, c *Cuenta) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Delete(&Cuenta{}, id).Error
}
