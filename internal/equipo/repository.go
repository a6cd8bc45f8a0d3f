package equipo

import (
	"gorm.io/gorm"
)

type Repository interface {
	Guardar(db *gorm.DB, m *Miembro) error
	BuscarPorEmail(db *gorm.DB, email string) (*Miembro, error)
	BuscarPorID(db *gorm.DB, id uint) (*Miembro, error)
	ListarPorWorkspace(db *gorm.DB, ws string) ([]Miembro, error)
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Guardar(db *gorm.DB, m *Miembro) error {
	return db.Save(m).Error
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Miembro, error) {
	var m Miembro
	err := db.Where("email = ?", email).First(&m).Error
	return &m, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Miembro, error) {
	var m Miembro
	err := db.First(&m, id).Error
	return &m, err
}

func (r *repositoryImpl) ListarPorWorkspace(db *gorm.DB, ws string) ([]Miembro, error) {
	var list []Miembro
	err := db.Where("workspace = ?", ws).Order("nombre").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Delete(&Miembro{}, id).Error
}
