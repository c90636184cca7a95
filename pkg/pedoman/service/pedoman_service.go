package service

import "simpupuk/entities"

type PedomanService interface {
	UpsertDocument(judul, tags, teks, sourceURL string) (*entities.PedomanDoc, int, error)
	Search(q string, k int) ([]entities.PedomanChunk, error)
	DocsMeta(ids []uint) (map[uint]entities.PedomanDoc, error)
}
