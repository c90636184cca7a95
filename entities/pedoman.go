package entities

import "time"

// PedomanDoc is a fertilizer-guideline document in the knowledge base.
type PedomanDoc struct {
	DocID     uint   `gorm:"primaryKey" json:"doc_id"`
	Judul     string `json:"judul"`
	Tags      string `json:"tags"`
	SourceURL string `json:"source_url"`
	CreatedAt time.Time
}

// PedomanChunk is one searchable slice of a document's text.
type PedomanChunk struct {
	ChunkID uint   `gorm:"primaryKey" json:"chunk_id"`
	DocID   uint   `gorm:"index" json:"doc_id"`
	Urut    int    `json:"urut"`
	Teks    string `json:"teks"`
}
