package serviceImp

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"simpupuk/entities"
	repo "simpupuk/pkg/realisasi/repository"
	"simpupuk/pkg/realisasi/service"
)

type realisasiSvc struct{ r repo.RealisasiRepository }

func NewRealisasiService(r repo.RealisasiRepository) service.RealisasiService {
	return &realisasiSvc{r}
}

func normalisasi(e *entities.Realisasi) {
	e.KodeKebun = strings.ToUpper(strings.TrimSpace(e.KodeKebun))
	e.Kategori = strings.ToUpper(strings.TrimSpace(e.Kategori))
	e.JenisPupuk = strings.TrimSpace(e.JenisPupuk)
	e.Tanggal = strings.TrimSpace(e.Tanggal)
	if math.IsNaN(e.JumlahKg) || math.IsInf(e.JumlahKg, 0) || e.JumlahKg < 0 {
		e.JumlahKg = 0
	}
	if e.JumlahKg == 0 && e.Inventaris > 0 && e.DosisKgPkk > 0 {
		e.JumlahKg = float64(e.Inventaris) * e.DosisKgPkk
	}
	if k, ok := entities.KebunByKode(e.KodeKebun); ok && e.KodeIntern == "" {
		e.KodeIntern = k.KodeIntern
	}
}

// validasi enforces the manual-entry contract: a realisasi row denotes an
// event that happened, so kategori, kebun, tanggal, afdeling and blok are
// all mandatory.
func validasi(e *entities.Realisasi) error {
	if e.Kategori == "" {
		return errors.New("kategori wajib diisi")
	}
	if e.KodeKebun == "" {
		return errors.New("kode kebun wajib diisi")
	}
	if e.Tanggal == "" {
		return errors.New("tanggal wajib diisi")
	}
	if _, err := time.Parse("2006-01-02", e.Tanggal); err != nil {
		return fmt.Errorf("tanggal tidak valid: %s", e.Tanggal)
	}
	if e.Afdeling == "" {
		return errors.New("afdeling wajib diisi")
	}
	if e.Blok == "" {
		return errors.New("blok wajib diisi")
	}
	switch e.Kategori {
	case entities.KategoriTM, entities.KategoriTBM, entities.KategoriBibitan:
	default:
		return fmt.Errorf("kategori tidak dikenal: %s", e.Kategori)
	}
	return nil
}

func (s *realisasiSvc) Create(e *entities.Realisasi) (*entities.Realisasi, error) {
	normalisasi(e)
	if err := validasi(e); err != nil {
		return nil, err
	}
	if err := s.r.Create(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *realisasiSvc) CreateBatch(es []entities.Realisasi) ([]entities.Realisasi, error) {
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

func (s *realisasiSvc) List(kategori string) ([]entities.Realisasi, error) {
	return s.r.List(strings.ToUpper(strings.TrimSpace(kategori)))
}

func (s *realisasiSvc) Update(id uint, e *entities.Realisasi) (*entities.Realisasi, error) {
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

func (s *realisasiSvc) Delete(id uint) error { return s.r.Delete(id) }

func (s *realisasiSvc) DeleteByKebun(kode string) error {
	return s.r.DeleteByKebun(strings.ToUpper(strings.TrimSpace(kode)))
}

func (s *realisasiSvc) DeleteAll() error { return s.r.DeleteAll() }

func (s *realisasiSvc) RentangTanggal() (string, string, error) { return s.r.RentangTanggal() }
