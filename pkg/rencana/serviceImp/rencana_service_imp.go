package serviceImp

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"simpupuk/entities"
	repo "simpupuk/pkg/rencana/repository"
	"simpupuk/pkg/rencana/service"
)

type rencanaSvc struct{ r repo.RencanaRepository }

func NewRencanaService(r repo.RencanaRepository) service.RencanaService { return &rencanaSvc{r} }

// normalisasi defaults a raw record on ingestion so downstream aggregation
// never needs null-coalescing: codes uppercased, non-finite or negative
// quantities zeroed, jumlah derived from inventaris x dosis when absent.
func normalisasi(e *entities.Rencana) {
	e.KodeKebun = strings.ToUpper(strings.TrimSpace(e.KodeKebun))
	e.Kategori = strings.ToUpper(strings.TrimSpace(e.Kategori))
	e.JenisPupuk = strings.TrimSpace(e.JenisPupuk)
	if math.IsNaN(e.JumlahKg) || math.IsInf(e.JumlahKg, 0) || e.JumlahKg < 0 {
		e.JumlahKg = 0
	}
	if math.IsNaN(e.DosisKgPkk) || math.IsInf(e.DosisKgPkk, 0) || e.DosisKgPkk < 0 {
		e.DosisKgPkk = 0
	}
	if e.JumlahKg == 0 && e.Inventaris > 0 && e.DosisKgPkk > 0 {
		e.JumlahKg = float64(e.Inventaris) * e.DosisKgPkk
	}
	if k, ok := entities.KebunByKode(e.KodeKebun); ok && e.KodeIntern == "" {
		e.KodeIntern = k.KodeIntern
	}
}

func validasi(e *entities.Rencana) error {
	if e.Kategori == "" {
		return errors.New("kategori wajib diisi")
	}
	if e.KodeKebun == "" {
		return errors.New("kode kebun wajib diisi")
	}
	switch e.Kategori {
	case entities.KategoriTM, entities.KategoriTBM, entities.KategoriBibitan:
	default:
		return fmt.Errorf("kategori tidak dikenal: %s", e.Kategori)
	}
	return nil
}

func (s *rencanaSvc) Create(e *entities.Rencana) (*entities.Rencana, error) {
	normalisasi(e)
	if err := validasi(e); err != nil {
		return nil, err
	}
	if err := s.r.Create(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *rencanaSvc) CreateBatch(es []entities.Rencana) ([]entities.Rencana, error) {
	batch := uuid.NewString()
	for i := range es {
		normalisasi(&es[i])
		if err := validasi(&es[i]); err != nil {
			return nil, fmt.Errorf("baris %d: %w", i+1, err)
		}
		es[i].BatchID = batch
	}
	if err := s.r.BulkInsert(es); err != nil {
		return nil, err
	}
	return es, nil
}

func (s *rencanaSvc) List(kategori string) ([]entities.Rencana, error) {
	return s.r.List(strings.ToUpper(strings.TrimSpace(kategori)))
}

func (s *rencanaSvc) Update(id uint, e *entities.Rencana) (*entities.Rencana, error) {
	cur, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	e.ID = cur.ID
	e.BatchID = cur.BatchID
	e.CreatedAt = cur.CreatedAt
	normalisasi(e)
	if err := validasi(e); err != nil {
		return nil, err
	}
	return e, s.r.Update(e)
}

func (s *rencanaSvc) Delete(id uint) error { return s.r.Delete(id) }

func (s *rencanaSvc) DeleteByKebun(kode string) error {
	return s.r.DeleteByKebun(strings.ToUpper(strings.TrimSpace(kode)))
}

func (s *rencanaSvc) DeleteAll() error { return s.r.DeleteAll() }
