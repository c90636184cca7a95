package repositoryImp

import (
	"gorm.io/gorm"

	"simpupuk/entities"
	"simpupuk/pkg/realisasi/repository"
)

type realisasiRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RealisasiRepository { return &realisasiRepo{db} }

func (r *realisasiRepo) Create(e *entities.Realisasi) error { return r.db.Create(e).Error }

func (r *realisasiRepo) BulkInsert(es []entities.Realisasi) error {
	if len(es) == 0 {
		return nil
	}
	return r.db.Create(&es).Error
}

func (r *realisasiRepo) List(kategori string) ([]entities.Realisasi, error) {
	var out []entities.Realisasi
	q := r.db.Order("tanggal ASC, id ASC")
	if kategori != "" {
		q = q.Where("kategori = ?", kategori)
	}
	return out, q.Find(&out).Error
}

func (r *realisasiRepo) FindByID(id uint) (*entities.Realisasi, error) {
	var out entities.Realisasi
	if err := r.db.First(&out, id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *realisasiRepo) Update(e *entities.Realisasi) error { return r.db.Save(e).Error }

func (r *realisasiRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Realisasi{}, id).Error
}

func (r *realisasiRepo) DeleteByKebun(kode string) error {
	return r.db.Where("kode_kebun = ?", kode).Delete(&entities.Realisasi{}).Error
}

func (r *realisasiRepo) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&entities.Realisasi{}).Error
}

// RentangTanggal returns the earliest and latest realisasi dates, empty
// strings when there are no rows.
func (r *realisasiRepo) RentangTanggal() (string, string, error) {
	var out struct {
		Min string
		Max string
	}
	err := r.db.Model(&entities.Realisasi{}).
		Select("COALESCE(MIN(tanggal), '') AS min, COALESCE(MAX(tanggal), '') AS max").
		Scan(&out).Error
	return out.Min, out.Max, err
}
