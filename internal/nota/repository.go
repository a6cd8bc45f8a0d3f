package nota

import "gorm.io/gorm"

type Repository interface {
	Crear(db *gorm.DB, n *Nota) error
	ListarPorOportunidad(db *gorm.DB, oportunidadID uint) ([]Nota, error)
	BuscarPorID(db *gorm.DB, id uint) (*Nota, error)
	Actualizar(db *gorm.DB, id uint, nuevoTexto string) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Crear(db *gorm.DB, n *Nota) error {
	return db.Create(n).Error
}

func (r *repositoryImpl) ListarPorOportunidad(db *gorm.DB, oportunidadID uint) ([]Nota, error) {
	var notas []Nota
	err := db.Where("oportunidad_id = ?", oportunidadID).Order("created_at").Find(&notas).Error
	return notas, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Nota, error) {
	var n Nota
	err := db.First(&n, id).Error
	return &n, err
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, id uint, nuevoTexto string) error {
	return db.Model(&Nota{}).Where("id = ?", id).Update("texto", nuevoTexto).Error
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Delete(&Nota{}, id).Error
}
