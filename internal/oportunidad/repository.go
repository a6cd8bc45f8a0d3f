package oportunidad

import (
	"gorm.io/gorm"
)

type Repository interface {
	Guardar(db *gorm.DB, o *Oportunidad) error
	BuscarPorID(db *gorm.DB, id uint) (*Oportunidad, error)
	ListarPorWorkspace(db *gorm.DB, ws string) ([]Oportunidad, error)
	ListarPorCuenta(db *gorm.DB, cuentaID uint) ([]Oportunidad, error)
	Actualizar(db *gorm.DB, o *Oportunidad) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// canonicalizar normaliza nombres legacy de etapa al leer de la base.
func canonicalizar(o *Oportunidad) {
	o.Etapa = CanonicalizarEtapa(o.Etapa)
	o.Estado = EstadoParaEtapa(o.Etapa)
}

func (r *repositoryImpl) Guardar(db *gorm.DB, o *Oportunidad) error {
	return db.Create(o).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Oportunidad, error) {
	var o Oportunidad
	if err := db.First(&o, id).Error; err != nil {
		return nil, err
	}
	canonicalizar(&o)
	return &o, nil
}

func (r *repositoryImpl) ListarPorWorkspace(db *gorm.DB, ws string) ([]Oportunidad, error) {
	var list []Oportunidad
	err := db.Where("workspace = ?", ws).Find(&list).Error
	for i := range list {
		canonicalizar(&list[i])
	}
	return list, err
}

func (r *repositoryImpl) ListarPorCuenta(db *gorm.DB, cuentaID uint) ([]Oportunidad, error) {
	var list []Oportunidad
	err := db.Where("cuenta_id = ?", cuentaID).Find(&list).Error
	for i := range list {
		canonicalizar(&list[i])
	}
	return list, err
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, o *Oportunidad) error {
	return db.Save(o).Error
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Delete(&Oportunidad{}, id).Error
}
