package repositoryImp

import (
	"gorm.io/gorm"

	"simpupuk/entities"
	"simpupuk/pkg/pedoman/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PedomanRepository { return &repo{db} }

func (r *repo) CreateDoc(d *entities.PedomanDoc) error { return r.db.Create(d).Error }

func (r *repo) BulkInsertChunks(cs []entities.PedomanChunk) error {
	if len(cs) == 0 {
		return nil
	}
	return r.db.Create(&cs).Error
}

func (r *repo) ListDocs() ([]entities.PedomanDoc, error) {
	var ds []entities.PedomanDoc
	return ds, r.db.Order("doc_id DESC").Find(&ds).Error
}

func (r *repo) Search(q string, k int) ([]entities.PedomanChunk, error) {
	var cs []entities.PedomanChunk
	err := r.db.Where("teks LIKE ?", "%"+q+"%").
		Order("doc_id DESC, urut ASC").
		Limit(k).
		Find(&cs).Error
	return cs, err
}

func (r *repo) DocsByIDs(ids []uint) (map[uint]entities.PedomanDoc, error) {
	if len(ids) == 0 {
		return map[uint]entities.PedomanDoc{}, nil
	}
	var ds []entities.PedomanDoc
	if err := r.db.Where("doc_id IN ?", ids).Find(&ds).Error; err != nil {
		return nil, err
	}
	m := make(map[uint]entities.PedomanDoc, len(ds))
	for i := range ds {
		m[ds[i].DocID] = ds[i]
	}
	return m, nil
}
