package entities

import "time"

// Realisasi is an executed fertilizer application. Same shape as Rencana but
// Tanggal is mandatory: the row records an event on a specific day.
type Realisasi struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Kategori   string  `json:"kategori" gorm:"index"`
	KodeKebun  string  `json:"kode_kebun" gorm:"index"`
	KodeIntern string  `json:"kode_intern"`
	Afdeling   string  `json:"afdeling"`
	TahunTanam int     `json:"tahun_tanam"`
	Blok       string  `json:"blok"`
	LuasHa     float64 `json:"luas_ha"`
	Inventaris int     `json:"inventaris"`
	JenisPupuk string  `json:"jenis_pupuk"`
	AplikasiKe int     `json:"aplikasi_ke"`
	DosisKgPkk float64 `json:"dosis_kg_pkk"`
	JumlahKg   float64 `json:"jumlah_kg"`
	Tanggal    string  `json:"tanggal" gorm:"index"` // YYYY-MM-DD
	BatchID    string  `json:"batch_id,omitempty" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
