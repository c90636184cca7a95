package service

import "simpupuk/entities"

type RealisasiService interface {
	Create(r *entities.Realisasi) (*entities.Realisasi, error)
	CreateBatch(rs []entities.Realisasi) ([]entities.Realisasi, error)
	List(kategori string) ([]entities.Realisasi, error)
	Update(id uint, r *entities.Realisasi) (*entities.Realisasi, error)
	Delete(id uint) error
	DeleteByKebun(kode string) error
	DeleteAll() error
	RentangTanggal() (min string, max string, err error)
}
