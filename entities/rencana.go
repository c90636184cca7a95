package entities

import "time"

// Kategori tanaman.
const (
	KategoriTM      = "TM"      // tanaman menghasilkan
	KategoriTBM     = "TBM"     // tanaman belum menghasilkan
	KategoriBibitan = "BIBITAN" // pembibitan
)

// Rencana is one planned fertilizer application for a block.
type Rencana struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Kategori   string  `json:"kategori" gorm:"index"` // TM|TBM|BIBITAN
	KodeKebun  string  `json:"kode_kebun" gorm:"index"`
	KodeIntern string  `json:"kode_intern"`
	Afdeling   string  `json:"afdeling"`
	TahunTanam int     `json:"tahun_tanam"`
	Blok       string  `json:"blok"`
	LuasHa     float64 `json:"luas_ha"`
	Inventaris int     `json:"inventaris"` // pokok count
	JenisPupuk string  `json:"jenis_pupuk"`
	AplikasiKe int     `json:"aplikasi_ke"` // 1..3
	DosisKgPkk float64 `json:"dosis_kg_pkk"`
	JumlahKg   float64 `json:"jumlah_kg"`
	Tanggal    string  `json:"tanggal" gorm:"index"` // YYYY-MM-DD, may be empty
	BatchID    string  `json:"batch_id,omitempty" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
