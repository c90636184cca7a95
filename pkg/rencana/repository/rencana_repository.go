package repository

import "simpupuk/entities"

type RencanaRepository interface {
	Create(r *entities.Rencana) error
	BulkInsert(rs []entities.Rencana) error
	List(kategori string) ([]entities.Rencana, error)
	FindByID(id uint) (*entities.Rencana, error)
	Update(r *entities.Rencana) error
	Delete(id uint) error
	DeleteByKebun(kode string) error
	DeleteAll() error
}
