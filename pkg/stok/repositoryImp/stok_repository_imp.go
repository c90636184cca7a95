package repositoryImp

import (
	"gorm.io/gorm"

	"simpupuk/entities"
	"simpupuk/pkg/stok/repository"
)

type stokRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.StokRepository { return &stokRepo{db} }

func (r *stokRepo) Create(e *entities.Stok) error { return r.db.Create(e).Error }

func (r *stokRepo) List() ([]entities.Stok, error) {
	var out []entities.Stok
	return out, r.db.Order("kode_kebun ASC, id ASC").Find(&out).Error
}

func (r *stokRepo) FindByID(id uint) (*entities.Stok, error) {
	var out entities.Stok
	if err := r.db.First(&out, id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *stokRepo) Update(e *entities.Stok) error { return r.db.Save(e).Error }

func (r *stokRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Stok{}, id).Error
}

func (r *stokRepo) DeleteByKebun(kode string) error {
	return r.db.Where("kode_kebun = ?", kode).Delete(&entities.Stok{}).Error
}

func (r *stokRepo) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&entities.Stok{}).Error
}

func (r *stokRepo) TotalPerKebun() (map[string]float64, error) {
	var rows []struct {
		KodeKebun string
		Total     float64
	}
	err := r.db.Model(&entities.Stok{}).
		Select("kode_kebun, SUM(jumlah_kg) AS total").
		Group("kode_kebun").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(rows))
	for _, row := range rows {
		out[row.KodeKebun] = row.Total
	}
	return out, nil
}
