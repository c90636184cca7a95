package types

// Jenis is one of the canonical fertilizer buckets. Free-text jenis pupuk
// strings collapse into these nine via rekap.JenisKanonik.
type Jenis string

const (
	JenisNPK     Jenis = "NPK"
	JenisUrea    Jenis = "UREA"
	JenisTSP     Jenis = "TSP"
	JenisMOP     Jenis = "MOP"
	JenisRP      Jenis = "RP"
	JenisDolomit Jenis = "DOLOMIT"
	JenisBorate  Jenis = "BORATE"
	JenisCuSO4   Jenis = "CUSO4"
	JenisZnSO4   Jenis = "ZNSO4"
)

// SemuaJenis is the fixed bucket order used by reports.
var SemuaJenis = []Jenis{
	JenisNPK, JenisUrea, JenisTSP, JenisMOP, JenisRP,
	JenisDolomit, JenisBorate, JenisCuSO4, JenisZnSO4,
}

// BarisRekap is one derived per-kebun aggregate row. Never persisted; built
// fresh per request and discarded with the response.
type BarisRekap struct {
	KodeKebun string `json:"kode_kebun"`
	NamaKebun string `json:"nama_kebun"`
	Distrik   string `json:"distrik"`

	RencanaKg   float64 `json:"rencana_kg"`
	RealisasiKg float64 `json:"realisasi_kg"`

	RencanaPerJenis   map[Jenis]float64 `json:"rencana_per_jenis"`
	RealisasiPerJenis map[Jenis]float64 `json:"realisasi_per_jenis"`

	RencanaTM        float64 `json:"rencana_tm"`
	RencanaTBM       float64 `json:"rencana_tbm"`
	RencanaBibitan   float64 `json:"rencana_bibitan"`
	RealisasiTM      float64 `json:"realisasi_tm"`
	RealisasiTBM     float64 `json:"realisasi_tbm"`
	RealisasiBibitan float64 `json:"realisasi_bibitan"`

	TanggalTerakhir string  `json:"tanggal_terakhir"` // latest realisasi date seen
	StokKg          float64 `json:"stok_kg"`
	KurangKg        float64 `json:"kurang_kg"` // max(0, rencana-realisasi)
	ProgresPct      float64 `json:"progres_pct"`
}

// RekapDistrik is the per-district rollup of BarisRekap rows.
type RekapDistrik struct {
	Distrik     string  `json:"distrik"`
	RencanaKg   float64 `json:"rencana_kg"`
	RealisasiKg float64 `json:"realisasi_kg"`
	ProgresPct  float64 `json:"progres_pct"`
}

// BarisKomposisi is the per-jenis share of the filtered row set.
type BarisKomposisi struct {
	Jenis       Jenis   `json:"jenis"`
	RencanaKg   float64 `json:"rencana_kg"`
	RealisasiKg float64 `json:"realisasi_kg"`
	SharePct    float64 `json:"share_pct"` // share of total realized kg
	ProgresPct  float64 `json:"progres_pct"`
}

// BarisStokKurang pairs a district's stock with its shortfall.
type BarisStokKurang struct {
	Distrik   string  `json:"distrik"`
	StokKg    float64 `json:"stok_kg"`
	KurangKg  float64 `json:"kurang_kg"`
	StokPct   float64 `json:"stok_pct"`
	KurangPct float64 `json:"kurang_pct"`
}

// AplikasiBucket is one application-sequence column of the schedule report.
type AplikasiBucket struct {
	RencanaKg   float64 `json:"rencana_kg"`
	RealisasiKg float64 `json:"realisasi_kg"` // restricted to the window
	Pct         float64 `json:"pct"`
}

// BarisJadwal is one per-kebun time-window row.
type BarisJadwal struct {
	KodeKebun string `json:"kode_kebun"`
	NamaKebun string `json:"nama_kebun"`

	Aplikasi [3]AplikasiBucket `json:"aplikasi"`

	HariIniRencanaKg   float64 `json:"hari_ini_rencana_kg"`
	HariIniRealisasiKg float64 `json:"hari_ini_realisasi_kg"`
	BesokRencanaKg     float64 `json:"besok_rencana_kg"`

	TotalRencanaKg   float64 `json:"total_rencana_kg"`
	TotalRealisasiKg float64 `json:"total_realisasi_kg"`
	Pct              float64 `json:"pct"`

	// Perkiraan marks rows whose application columns were synthesized with
	// the 40/35/25 split because the source rows carried no aplikasi_ke.
	// Approximate figures; the UI should label them as estimates.
	Perkiraan bool `json:"perkiraan"`
}

// ModeJadwal selects which maturity category feeds the schedule report.
type ModeJadwal string

const (
	ModeTM       ModeJadwal = "tm"
	ModeTBM      ModeJadwal = "tbm"
	ModeGabungan ModeJadwal = "gabungan"
)

// Jendela is the calendar window for the schedule report. All fields are
// YYYY-MM-DD strings; the fixed format makes lexicographic comparison valid.
type Jendela struct {
	HariIni string `json:"hari_ini"`
	Besok   string `json:"besok"`
	Dari    string `json:"dari"`
	Sampai  string `json:"sampai"`
}

// Filter narrows the rekap row set. Empty or "semua" selectors pass
// everything; Dari/Sampai are inclusive YYYY-MM-DD bounds on the latest
// realisasi date.
type Filter struct {
	Distrik string `json:"distrik" query:"distrik"`
	Kebun   string `json:"kebun" query:"kebun"`
	Cari    string `json:"cari" query:"cari"`
	Jenis   string `json:"jenis" query:"jenis"`
	Dari    string `json:"dari" query:"dari"`
	Sampai  string `json:"sampai" query:"sampai"`
}

// HasilRekap is the full payload of the rekapitulasi report.
type HasilRekap struct {
	Baris          []BarisRekap      `json:"baris"`
	Distrik        []RekapDistrik    `json:"distrik"`
	Komposisi      []BarisKomposisi  `json:"komposisi"`
	StokKurang     []BarisStokKurang `json:"stok_kurang"`
	BarisDiabaikan int               `json:"baris_diabaikan"` // rows dropped for unknown kebun codes
}
