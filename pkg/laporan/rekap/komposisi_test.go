package rekap

import (
	"math"
	"testing"

	"simpupuk/entities"
	"simpupuk/pkg/laporan/types"
)

func TestKomposisi(t *testing.T) {
	baris := []types.BarisRekap{
		{
			RencanaPerJenis:   map[types.Jenis]float64{types.JenisUrea: 1000, types.JenisNPK: 500},
			RealisasiPerJenis: map[types.Jenis]float64{types.JenisUrea: 300},
		},
		{
			RencanaPerJenis:   map[types.Jenis]float64{types.JenisUrea: 200},
			RealisasiPerJenis: map[types.Jenis]float64{types.JenisUrea: 100, types.JenisTSP: 100},
		},
	}
	out := Komposisi(baris)
	if len(out) != len(types.SemuaJenis) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(types.SemuaJenis))
	}

	per := map[types.Jenis]types.BarisKomposisi{}
	totalShare := 0.0
	for _, k := range out {
		per[k.Jenis] = k
		totalShare += k.SharePct
	}
	if urea := per[types.JenisUrea]; urea.RencanaKg != 1200 || urea.RealisasiKg != 400 || urea.SharePct != 80 {
		t.Errorf("urea = %+v", urea)
	}
	if tsp := per[types.JenisTSP]; tsp.SharePct != 20 || tsp.ProgresPct != 0 {
		t.Errorf("tsp = %+v", tsp)
	}
	if math.Abs(totalShare-100) > 1e-9 {
		t.Errorf("jumlah share = %v, want 100", totalShare)
	}
}

// No realized mass at all: the denominator floors at 1 and every share is 0.
func TestKomposisiTanpaRealisasi(t *testing.T) {
	baris := []types.BarisRekap{
		{RencanaPerJenis: map[types.Jenis]float64{types.JenisUrea: 100}, RealisasiPerJenis: map[types.Jenis]float64{}},
	}
	for _, k := range Komposisi(baris) {
		if k.SharePct != 0 || math.IsNaN(k.SharePct) {
			t.Fatalf("share tanpa realisasi = %+v", k)
		}
	}
}

func TestStokVsKurang(t *testing.T) {
	baris := []types.BarisRekap{
		{Distrik: entities.DistrikDTM, StokKg: 300, KurangKg: 700},
		{Distrik: entities.DistrikDTM, StokKg: 200, KurangKg: 0},
		{Distrik: entities.DistrikDBR, StokKg: 0, KurangKg: 0},
	}
	out := StokVsKurang(baris)
	if len(out) != 1 {
		t.Fatalf("distrik nol-nol harus dibuang, hasil %+v", out)
	}
	d := out[0]
	if d.Distrik != entities.DistrikDTM || d.StokKg != 500 || d.KurangKg != 700 {
		t.Errorf("DTM = %+v", d)
	}
	if math.Abs(d.StokPct-500.0/1200*100) > 1e-9 || math.Abs(d.StokPct+d.KurangPct-100) > 1e-9 {
		t.Errorf("share = %v/%v", d.StokPct, d.KurangPct)
	}
}
