package repository

import "simpupuk/entities"

type PedomanRepository interface {
	CreateDoc(d *entities.PedomanDoc) error
	BulkInsertChunks(cs []entities.PedomanChunk) error
	ListDocs() ([]entities.PedomanDoc, error)
	// Search returns up to k chunks whose text contains q.
	Search(q string, k int) ([]entities.PedomanChunk, error)
	DocsByIDs(ids []uint) (map[uint]entities.PedomanDoc, error)
}
