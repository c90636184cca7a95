package service

import "simpupuk/entities"

type RencanaService interface {
	Create(r *entities.Rencana) (*entities.Rencana, error)
	CreateBatch(rs []entities.Rencana) ([]entities.Rencana, error)
	List(kategori string) ([]entities.Rencana, error)
	Update(id uint, r *entities.Rencana) (*entities.Rencana, error)
	Delete(id uint) error
	DeleteByKebun(kode string) error
	DeleteAll() error
}
