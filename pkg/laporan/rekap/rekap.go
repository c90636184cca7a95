// Package rekap is the aggregation engine behind every report: pure
// functions over in-memory record slices, no I/O, no shared state. Callers
// fetch records, run a pass, and throw the derived rows away with the
// response.
package rekap

import (
	"math"

	"simpupuk/entities"
	"simpupuk/pkg/laporan/types"
)

// massa defaults a raw quantity before accumulation: NaN, Inf and negative
// masses all become 0 so a single bad row can never poison a sum.
func massa(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// kategoriUmur derives the maturity split for a record: BIBITAN stays as
// recorded, everything else is TM at age >= 4 years, TBM below.
func kategoriUmur(kategori string, tahunTanam, tahun int) string {
	if kategori == entities.KategoriBibitan {
		return entities.KategoriBibitan
	}
	if tahun-tahunTanam >= 4 {
		return entities.KategoriTM
	}
	return entities.KategoriTBM
}

func persen(realisasi, rencana float64) float64 {
	if rencana <= 0 {
		return 0
	}
	return realisasi / rencana * 100
}

// Kumpulkan reduces the full rencana and realisasi sets into one row per
// kebun, in canonical master-list order. stok maps kebun code to current
// stock kg. tahun is the evaluation year for the TM/TBM age split. Records
// whose kebun code is missing from the master list are dropped; the count of
// dropped records is returned so the report can surface data quality.
func Kumpulkan(rencana []entities.Rencana, realisasi []entities.Realisasi, stok map[string]float64, tahun int) ([]types.BarisRekap, int) {
	baris := map[string]*types.BarisRekap{}
	diabaikan := 0

	bucket := func(kode string) (*types.BarisRekap, bool) {
		k, ok := entities.KebunByKode(kode)
		if !ok {
			diabaikan++
			return nil, false
		}
		b, ok := baris[k.Kode]
		if !ok {
			b = &types.BarisRekap{
				KodeKebun:         k.Kode,
				NamaKebun:         k.Nama,
				Distrik:           k.Distrik,
				RencanaPerJenis:   map[types.Jenis]float64{},
				RealisasiPerJenis: map[types.Jenis]float64{},
			}
			baris[k.Kode] = b
		}
		return b, true
	}

	for _, r := range rencana {
		b, ok := bucket(r.KodeKebun)
		if !ok {
			continue
		}
		m := massa(r.JumlahKg)
		b.RencanaKg += m
		b.RencanaPerJenis[JenisKanonik(r.JenisPupuk)] += m
		switch kategoriUmur(r.Kategori, r.TahunTanam, tahun) {
		case entities.KategoriTM:
			b.RencanaTM += m
		case entities.KategoriTBM:
			b.RencanaTBM += m
		default:
			b.RencanaBibitan += m
		}
	}

	for _, r := range realisasi {
		b, ok := bucket(r.KodeKebun)
		if !ok {
			continue
		}
		m := massa(r.JumlahKg)
		b.RealisasiKg += m
		b.RealisasiPerJenis[JenisKanonik(r.JenisPupuk)] += m
		switch kategoriUmur(r.Kategori, r.TahunTanam, tahun) {
		case entities.KategoriTM:
			b.RealisasiTM += m
		case entities.KategoriTBM:
			b.RealisasiTBM += m
		default:
			b.RealisasiBibitan += m
		}
		if r.Tanggal != "" && r.Tanggal > b.TanggalTerakhir {
			b.TanggalTerakhir = r.Tanggal
		}
	}

	out := make([]types.BarisRekap, 0, len(baris))
	for _, k := range entities.MasterKebun {
		b, ok := baris[k.Kode]
		if !ok {
			continue
		}
		b.StokKg = massa(stok[k.Kode])
		b.KurangKg = math.Max(0, b.RencanaKg-b.RealisasiKg)
		b.ProgresPct = persen(b.RealisasiKg, b.RencanaKg)
		out = append(out, *b)
	}
	return out, diabaikan
}

// RekapDistrik rolls per-kebun rows up into one entry per district, in the
// fixed DTM, DBR order. Rows with an unknown district are skipped.
func RekapDistrik(baris []types.BarisRekap) []types.RekapDistrik {
	urutan := []string{entities.DistrikDTM, entities.DistrikDBR}
	total := map[string]*types.RekapDistrik{}
	for _, d := range urutan {
		total[d] = &types.RekapDistrik{Distrik: d}
	}
	for _, b := range baris {
		t, ok := total[b.Distrik]
		if !ok {
			continue
		}
		t.RencanaKg += b.RencanaKg
		t.RealisasiKg += b.RealisasiKg
	}
	out := make([]types.RekapDistrik, 0, len(urutan))
	for _, d := range urutan {
		t := total[d]
		t.ProgresPct = persen(t.RealisasiKg, t.RencanaKg)
		out = append(out, *t)
	}
	return out
}
