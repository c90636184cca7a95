package service

import "simpupuk/entities"

type StokService interface {
	Create(s *entities.Stok) (*entities.Stok, error)
	List() ([]entities.Stok, error)
	Update(id uint, s *entities.Stok) (*entities.Stok, error)
	Delete(id uint) error
	DeleteByKebun(kode string) error
	TotalPerKebun() (map[string]float64, error)
}
