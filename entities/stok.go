package entities

import "time"

// Stok is a fertilizer stock entry for one kebun. A kebun may have several
// entries; its current stock is the sum.
type Stok struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	KodeKebun  string    `json:"kode_kebun" gorm:"index"`
	KodeIntern string    `json:"kode_intern"`
	JumlahKg   float64   `json:"jumlah_kg"`
	CreatedAt  time.Time `json:"created_at"`
}
