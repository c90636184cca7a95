package rekap

import (
	"math"
	"sort"
	"time"

	"simpupuk/entities"
	"simpupuk/pkg/laporan/types"
)

const formatTanggal = "2006-01-02"

// JendelaBawaan builds the default report window around now: today and
// tomorrow as single days, plus the trailing 5-calendar-day realisasi window
// [today-4, today].
func JendelaBawaan(now time.Time) types.Jendela {
	return types.Jendela{
		HariIni: now.Format(formatTanggal),
		Besok:   now.AddDate(0, 0, 1).Format(formatTanggal),
		Dari:    now.AddDate(0, 0, -4).Format(formatTanggal),
		Sampai:  now.Format(formatTanggal),
	}
}

// BagiAplikasi splits a grand total into the typical 3-application
// distribution (40%/35%/25%) when the source rows carry no per-application
// breakdown. The first two parts round to the nearest integer and the third
// absorbs the remainder, so the parts always sum exactly to the input. An
// approximation for presentation, not a measurement.
func BagiAplikasi(total float64) [3]float64 {
	a1 := math.Round(total * 0.40)
	a2 := math.Round(total * 0.35)
	return [3]float64{a1, a2, total - a1 - a2}
}

func dalamJendela(tanggal string, j types.Jendela) bool {
	if tanggal == "" {
		return false
	}
	if j.Dari != "" && tanggal < j.Dari {
		return false
	}
	if j.Sampai != "" && tanggal > j.Sampai {
		return false
	}
	return true
}

// ikutMode reports whether a record's derived maturity category feeds the
// requested mode. Gabungan combines TM and TBM; bibitan rows stay out of the
// schedule report in every mode.
func ikutMode(mode types.ModeJadwal, kategori string, tahunTanam, tahun int) bool {
	k := kategoriUmur(kategori, tahunTanam, tahun)
	switch mode {
	case types.ModeTM:
		return k == entities.KategoriTM
	case types.ModeTBM:
		return k == entities.KategoriTBM
	default:
		return k == entities.KategoriTM || k == entities.KategoriTBM
	}
}

// Jadwal builds the time-window report: one row per kebun with three
// application-sequence buckets (planned vs window-restricted realized),
// today's planned/realized, tomorrow's planned, and grand totals. Records
// with unknown kebun codes are dropped. tahun drives the TM/TBM age split.
func Jadwal(rencana []entities.Rencana, realisasi []entities.Realisasi, mode types.ModeJadwal, j types.Jendela, tahun int) []types.BarisJadwal {
	baris := map[string]*types.BarisJadwal{}

	bucket := func(kode string) (*types.BarisJadwal, bool) {
		k, ok := entities.KebunByKode(kode)
		if !ok {
			return nil, false
		}
		b, ok := baris[k.Kode]
		if !ok {
			b = &types.BarisJadwal{KodeKebun: k.Kode, NamaKebun: k.Nama}
			baris[k.Kode] = b
		}
		return b, true
	}

	for _, r := range rencana {
		if !ikutMode(mode, r.Kategori, r.TahunTanam, tahun) {
			continue
		}
		b, ok := bucket(r.KodeKebun)
		if !ok {
			continue
		}
		m := massa(r.JumlahKg)
		b.TotalRencanaKg += m
		if r.Tanggal != "" {
			if r.Tanggal == j.HariIni {
				b.HariIniRencanaKg += m
			}
			if r.Tanggal == j.Besok {
				b.BesokRencanaKg += m
			}
		}
		if r.AplikasiKe >= 1 && r.AplikasiKe <= 3 {
			b.Aplikasi[r.AplikasiKe-1].RencanaKg += m
		}
	}

	for _, r := range realisasi {
		if !ikutMode(mode, r.Kategori, r.TahunTanam, tahun) {
			continue
		}
		b, ok := bucket(r.KodeKebun)
		if !ok {
			continue
		}
		m := massa(r.JumlahKg)
		if dalamJendela(r.Tanggal, j) {
			b.TotalRealisasiKg += m
			if r.AplikasiKe >= 1 && r.AplikasiKe <= 3 {
				b.Aplikasi[r.AplikasiKe-1].RealisasiKg += m
			}
		}
		if r.Tanggal != "" && r.Tanggal == j.HariIni {
			b.HariIniRealisasiKg += m
		}
	}

	out := make([]types.BarisJadwal, 0, len(baris))
	for _, b := range baris {
		terapkanFallback(b)
		for i := range b.Aplikasi {
			b.Aplikasi[i].Pct = persen(b.Aplikasi[i].RealisasiKg, b.Aplikasi[i].RencanaKg)
		}
		b.Pct = persen(b.TotalRealisasiKg, b.TotalRencanaKg)
		out = append(out, *b)
	}

	sort.Slice(out, func(i, k int) bool {
		ui, uk := entities.UrutanKebun(out[i].KodeKebun), entities.UrutanKebun(out[k].KodeKebun)
		if ui != uk {
			// kebun outside the master order sort last, alphabetically
			if ui == -1 {
				return false
			}
			if uk == -1 {
				return true
			}
			return ui < uk
		}
		return out[i].NamaKebun < out[k].NamaKebun
	})
	return out
}

// terapkanFallback synthesizes the 40/35/25 split when a kebun has totals
// but no explicit per-application breakdown; the planned and realized sides
// are handled independently.
func terapkanFallback(b *types.BarisJadwal) {
	semuaNol := func(ambil func(types.AplikasiBucket) float64) bool {
		return ambil(b.Aplikasi[0]) == 0 && ambil(b.Aplikasi[1]) == 0 && ambil(b.Aplikasi[2]) == 0
	}
	if b.TotalRencanaKg > 0 && semuaNol(func(a types.AplikasiBucket) float64 { return a.RencanaKg }) {
		bagi := BagiAplikasi(b.TotalRencanaKg)
		for i := range b.Aplikasi {
			b.Aplikasi[i].RencanaKg = bagi[i]
		}
		b.Perkiraan = true
	}
	if b.TotalRealisasiKg > 0 && semuaNol(func(a types.AplikasiBucket) float64 { return a.RealisasiKg }) {
		bagi := BagiAplikasi(b.TotalRealisasiKg)
		for i := range b.Aplikasi {
			b.Aplikasi[i].RealisasiKg = bagi[i]
		}
		b.Perkiraan = true
	}
}
