package service

import "simpupuk/pkg/laporan/types"

type LaporanService interface {
	// Rekapitulasi runs the full per-kebun aggregation, applies the filter
	// and derives the district, composition and stock-vs-shortfall views
	// from the filtered rows.
	Rekapitulasi(f types.Filter) (*types.HasilRekap, error)
	// Jadwal builds the time-window report for one maturity mode; dari and
	// sampai override the default trailing 5-day window when non-empty.
	Jadwal(mode types.ModeJadwal, dari, sampai string) ([]types.BarisJadwal, error)
	// RentangTanggal reports the earliest and latest realisasi dates, for
	// the UI date pickers.
	RentangTanggal() (min string, max string, err error)
}
