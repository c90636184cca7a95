package rekap

import (
	"testing"
	"time"

	"simpupuk/entities"
	"simpupuk/pkg/laporan/types"
)

func jendelaUji() types.Jendela {
	return types.Jendela{
		HariIni: "2024-06-10",
		Besok:   "2024-06-11",
		Dari:    "2024-06-06",
		Sampai:  "2024-06-10",
	}
}

func TestJendelaBawaan(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	j := JendelaBawaan(now)
	want := jendelaUji()
	if j != want {
		t.Fatalf("JendelaBawaan = %+v, want %+v", j, want)
	}
}

func TestBagiAplikasi(t *testing.T) {
	cases := []struct {
		total float64
		want  [3]float64
	}{
		{1000, [3]float64{400, 350, 250}},
		{0, [3]float64{0, 0, 0}},
		{1, [3]float64{0, 0, 1}},
		{10, [3]float64{4, 4, 2}}, // 3.5 rounds half away from zero
		{333, [3]float64{133, 117, 83}},
	}
	for _, c := range cases {
		if got := BagiAplikasi(c.total); got != c.want {
			t.Errorf("BagiAplikasi(%v) = %v, want %v", c.total, got, c.want)
		}
	}
}

// The three parts always sum exactly to the input; the remainder lands in
// application 3.
func TestBagiAplikasiJumlahTepat(t *testing.T) {
	for total := 0; total <= 5000; total++ {
		bagi := BagiAplikasi(float64(total))
		if bagi[0]+bagi[1]+bagi[2] != float64(total) {
			t.Fatalf("total %d: bagian %v tidak menjumlah tepat", total, bagi)
		}
	}
}

func TestJadwalAkumulasi(t *testing.T) {
	rencana := []entities.Rencana{
		{KodeKebun: "TJM", Kategori: entities.KategoriTM, TahunTanam: 2015, JumlahKg: 600, AplikasiKe: 1, Tanggal: "2024-06-10"},
		{KodeKebun: "TJM", Kategori: entities.KategoriTM, TahunTanam: 2015, JumlahKg: 300, AplikasiKe: 2, Tanggal: "2024-06-11"},
		{KodeKebun: "TJM", Kategori: entities.KategoriTM, TahunTanam: 2015, JumlahKg: 100, AplikasiKe: 3}, // undated still counts toward the grand total
	}
	realisasi := []entities.Realisasi{
		{KodeKebun: "TJM", Kategori: entities.KategoriTM, TahunTanam: 2015, JumlahKg: 200, AplikasiKe: 1, Tanggal: "2024-06-10"},
		{KodeKebun: "TJM", Kategori: entities.KategoriTM, TahunTanam: 2015, JumlahKg: 150, AplikasiKe: 1, Tanggal: "2024-06-07"},
		{KodeKebun: "TJM", Kategori: entities.KategoriTM, TahunTanam: 2015, JumlahKg: 999, AplikasiKe: 2, Tanggal: "2024-05-01"}, // outside window
	}

	out := Jadwal(rencana, realisasi, types.ModeTM, jendelaUji(), 2024)
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	b := out[0]
	if b.TotalRencanaKg != 1000 {
		t.Errorf("total rencana = %v, want 1000", b.TotalRencanaKg)
	}
	if b.TotalRealisasiKg != 350 {
		t.Errorf("total realisasi (jendela) = %v, want 350", b.TotalRealisasiKg)
	}
	if b.HariIniRencanaKg != 600 || b.HariIniRealisasiKg != 200 {
		t.Errorf("hari ini = %v/%v, want 600/200", b.HariIniRencanaKg, b.HariIniRealisasiKg)
	}
	if b.BesokRencanaKg != 300 {
		t.Errorf("besok = %v, want 300", b.BesokRencanaKg)
	}
	if b.Aplikasi[0].RencanaKg != 600 || b.Aplikasi[0].RealisasiKg != 350 {
		t.Errorf("aplikasi 1 = %+v", b.Aplikasi[0])
	}
	if b.Aplikasi[1].RealisasiKg != 0 {
		t.Errorf("aplikasi 2 realisasi di luar jendela = %v, want 0", b.Aplikasi[1].RealisasiKg)
	}
	if b.Perkiraan {
		t.Error("baris dengan aplikasi eksplisit tidak boleh ditandai perkiraan")
	}
	if b.Pct != 35 {
		t.Errorf("pct = %v, want 35", b.Pct)
	}
}

// Source rows with no aplikasi_ke get the synthesized 40/35/25 columns;
// realized total of 0 keeps percentage at 0.
func TestJadwalFallbackSplit(t *testing.T) {
	rencana := []entities.Rencana{
		{KodeKebun: "TJM", Kategori: entities.KategoriTM, TahunTanam: 2015, JumlahKg: 1000},
	}
	realisasi := []entities.Realisasi{
		{KodeKebun: "TJM", Kategori: entities.KategoriTM, TahunTanam: 2015, JumlahKg: 500, Tanggal: "2023-01-01"}, // outside window
	}
	out := Jadwal(rencana, realisasi, types.ModeTM, jendelaUji(), 2024)
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	b := out[0]
	if !b.Perkiraan {
		t.Error("fallback split harus menandai baris sebagai perkiraan")
	}
	if b.Aplikasi[0].RencanaKg != 400 || b.Aplikasi[1].RencanaKg != 350 || b.Aplikasi[2].RencanaKg != 250 {
		t.Errorf("split = %v/%v/%v, want 400/350/250", b.Aplikasi[0].RencanaKg, b.Aplikasi[1].RencanaKg, b.Aplikasi[2].RencanaKg)
	}
	if b.TotalRealisasiKg != 0 || b.Pct != 0 {
		t.Errorf("realisasi jendela = %v pct = %v, want 0/0", b.TotalRealisasiKg, b.Pct)
	}
}

func TestJadwalMode(t *testing.T) {
	rencana := []entities.Rencana{
		{KodeKebun: "TJM", Kategori: entities.KategoriTM, TahunTanam: 2015, JumlahKg: 700, AplikasiKe: 1},  // umur 9 -> TM
		{KodeKebun: "TJM", Kategori: entities.KategoriTM, TahunTanam: 2022, JumlahKg: 200, AplikasiKe: 1},  // umur 2 -> TBM
		{KodeKebun: "TJM", Kategori: entities.KategoriBibitan, TahunTanam: 0, JumlahKg: 50, AplikasiKe: 1}, // never in jadwal
	}
	cases := []struct {
		mode types.ModeJadwal
		want float64
	}{
		{types.ModeTM, 700},
		{types.ModeTBM, 200},
		{types.ModeGabungan, 900},
	}
	for _, c := range cases {
		out := Jadwal(rencana, nil, c.mode, jendelaUji(), 2024)
		if len(out) != 1 || out[0].TotalRencanaKg != c.want {
			t.Errorf("mode %s: total = %+v, want %v", c.mode, out, c.want)
		}
	}
}

func TestJadwalKebunTakDikenal(t *testing.T) {
	rencana := []entities.Rencana{
		{KodeKebun: "ZZZ", Kategori: entities.KategoriTM, TahunTanam: 2015, JumlahKg: 1000},
	}
	if out := Jadwal(rencana, nil, types.ModeGabungan, jendelaUji(), 2024); len(out) != 0 {
		t.Fatalf("kebun tak dikenal harus dibuang, hasil %+v", out)
	}
}

func TestJadwalUrutan(t *testing.T) {
	rencana := []entities.Rencana{
		{KodeKebun: "SPA", Kategori: entities.KategoriTM, TahunTanam: 2015, JumlahKg: 10},
		{KodeKebun: "TDN", Kategori: entities.KategoriTM, TahunTanam: 2015, JumlahKg: 10},
		{KodeKebun: "TJM", Kategori: entities.KategoriTM, TahunTanam: 2015, JumlahKg: 10},
	}
	out := Jadwal(rencana, nil, types.ModeTM, jendelaUji(), 2024)
	var kode []string
	for _, b := range out {
		kode = append(kode, b.KodeKebun)
	}
	want := []string{"TJM", "TDN", "SPA"}
	for i := range want {
		if kode[i] != want[i] {
			t.Fatalf("urutan = %v, want %v", kode, want)
		}
	}
}
