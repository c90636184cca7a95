package repositoryImp

import (
	"gorm.io/gorm"

	"simpupuk/entities"
	"simpupuk/pkg/rencana/repository"
)

type rencanaRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RencanaRepository { return &rencanaRepo{db} }

func (r *rencanaRepo) Create(e *entities.Rencana) error { return r.db.Create(e).Error }

func (r *rencanaRepo) BulkInsert(es []entities.Rencana) error {
	if len(es) == 0 {
		return nil
	}
	return r.db.Create(&es).Error
}

func (r *rencanaRepo) List(kategori string) ([]entities.Rencana, error) {
	var out []entities.Rencana
	q := r.db.Order("kode_kebun ASC, aplikasi_ke ASC, id ASC")
	if kategori != "" {
		q = q.Where("kategori = ?", kategori)
	}
	return out, q.Find(&out).Error
}

func (r *rencanaRepo) FindByID(id uint) (*entities.Rencana, error) {
	var out entities.Rencana
	if err := r.db.First(&out, id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *rencanaRepo) Update(e *entities.Rencana) error { return r.db.Save(e).Error }

func (r *rencanaRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Rencana{}, id).Error
}

func (r *rencanaRepo) DeleteByKebun(kode string) error {
	return r.db.Where("kode_kebun = ?", kode).Delete(&entities.Rencana{}).Error
}

func (r *rencanaRepo) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&entities.Rencana{}).Error
}
