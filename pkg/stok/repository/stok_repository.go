package repository

import "simpupuk/entities"

type StokRepository interface {
	Create(s *entities.Stok) error
	List() ([]entities.Stok, error)
	FindByID(id uint) (*entities.Stok, error)
	Update(s *entities.Stok) error
	Delete(id uint) error
	DeleteByKebun(kode string) error
	DeleteAll() error
	// TotalPerKebun sums stock entries per kebun code.
	TotalPerKebun() (map[string]float64, error)
}
