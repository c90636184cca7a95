package repository

import "simpupuk/entities"

type RealisasiRepository interface {
	Create(r *entities.Realisasi) error
	BulkInsert(rs []entities.Realisasi) error
	List(kategori string) ([]entities.Realisasi, error)
	FindByID(id uint) (*entities.Realisasi, error)
	Update(r *entities.Realisasi) error
	Delete(id uint) error
	DeleteByKebun(kode string) error
	DeleteAll() error
	RentangTanggal() (min string, max string, err error)
}
