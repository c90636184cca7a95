package serviceImp

import (
	"errors"
	"math"
	"strings"

	"simpupuk/entities"
	repo "simpupuk/pkg/stok/repository"
	"simpupuk/pkg/stok/service"
)

type stokSvc struct{ r repo.StokRepository }

func NewStokService(r repo.StokRepository) service.StokService { return &stokSvc{r} }

func normalisasi(e *entities.Stok) error {
	e.KodeKebun = strings.ToUpper(strings.TrimSpace(e.KodeKebun))
	if e.KodeKebun == "" {
		return errors.New("kode kebun wajib diisi")
	}
	if math.IsNaN(e.JumlahKg) || math.IsInf(e.JumlahKg, 0) || e.JumlahKg < 0 {
		e.JumlahKg = 0
	}
	if k, ok := entities.KebunByKode(e.KodeKebun); ok && e.KodeIntern == "" {
		e.KodeIntern = k.KodeIntern
	}
	return nil
}

func (s *stokSvc) Create(e *entities.Stok) (*entities.Stok, error) {
	if err := normalisasi(e); err != nil {
		return nil, err
	}
	if err := s.r.Create(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *stokSvc) List() ([]entities.Stok, error) { return s.r.List() }

func (s *stokSvc) Update(id uint, e *entities.Stok) (*entities.Stok, error) {
	cur, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	e.ID = cur.ID
	e.CreatedAt = cur.CreatedAt
	if err := normalisasi(e); err != nil {
		return nil, err
	}
	return e, s.r.Update(e)
}

func (s *stokSvc) Delete(id uint) error { return s.r.Delete(id) }

func (s *stokSvc) DeleteByKebun(kode string) error {
	return s.r.DeleteByKebun(strings.ToUpper(strings.TrimSpace(kode)))
}

func (s *stokSvc) TotalPerKebun() (map[string]float64, error) { return s.r.TotalPerKebun() }
