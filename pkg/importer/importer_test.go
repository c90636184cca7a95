package importer

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/xuri/excelize/v2"
)

func bukuUji(t *testing.T, judul []string, baris [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"
	for i, j := range judul {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, j); err != nil {
			t.Fatal(err)
		}
	}
	for r, rec := range baris {
		for i, v := range rec {
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatal(err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

func TestBacaRencanaXLSX(t *testing.T) {
	buf := bukuUji(t,
		[]string{"Kategori", "Kode Kebun", "Afdeling", "Tahun Tanam", "Blok", "Luas (Ha)", "Inventaris", "Jenis Pupuk", "Aplikasi Ke", "Dosis Kg Pkk", "Jumlah Kg", "Tanggal"},
		[][]any{
			{"TM", "TJM", "AFD1", 2015, "B01", 25.5, 3400, "UREA", 1, 0.75, 2550, "2024-06-10"},
			{"TM", "tjm", "AFD2", 2016, "B02", 10, 1300, "NPK 12.12.17.2", 2, "", 975, ""},
			{"TM", "ZZZ", "AFD1", 2015, "B03", 5, 600, "UREA", 1, 0.5, 300, ""},
		},
	)

	baris, dilewati, err := BacaRencanaXLSX(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(baris) != 2 {
		t.Fatalf("len(baris) = %d, want 2", len(baris))
	}
	if len(dilewati) != 1 {
		t.Fatalf("dilewati = %v, want satu baris ZZZ", dilewati)
	}
	b := baris[0]
	if b.KodeKebun != "TJM" || b.TahunTanam != 2015 || b.JumlahKg != 2550 || b.Tanggal != "2024-06-10" {
		t.Errorf("baris pertama = %+v", b)
	}
	if baris[1].KodeKebun != "TJM" || baris[1].DosisKgPkk != 0 {
		t.Errorf("baris kedua = %+v", baris[1])
	}
}

// Header aliases: shorthand column titles still resolve.
func TestBacaRencanaXLSXAliasJudul(t *testing.T) {
	buf := bukuUji(t,
		[]string{"kebun", "jenis", "tt", "apl", "kg", "tgl"},
		[][]any{{"SPA", "Dolomite", 2020, 3, 480, "2024-05-01"}},
	)
	baris, dilewati, err := BacaRencanaXLSX(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(dilewati) != 0 || len(baris) != 1 {
		t.Fatalf("baris = %v dilewati = %v", baris, dilewati)
	}
	if baris[0].KodeKebun != "SPA" || baris[0].AplikasiKe != 3 || baris[0].JumlahKg != 480 {
		t.Errorf("baris = %+v", baris[0])
	}
	if baris[0].Kategori == "" {
		t.Error("kategori kosong harus diisi bawaan TM")
	}
}

func TestBacaRencanaXLSXTanpaKolomWajib(t *testing.T) {
	buf := bukuUji(t, []string{"apa", "saja"}, [][]any{{"x", "y"}})
	if _, _, err := BacaRencanaXLSX(buf); err == nil {
		t.Fatal("judul tanpa kolom wajib harus gagal")
	}
}

func TestBacaRencanaXLSXAngkaRusak(t *testing.T) {
	buf := bukuUji(t,
		[]string{"kebun", "jenis", "kg"},
		[][]any{{"TJM", "UREA", "bukan-angka"}},
	)
	baris, _, err := BacaRencanaXLSX(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(baris) != 1 || baris[0].JumlahKg != 0 {
		t.Fatalf("angka rusak harus jadi 0, baris = %+v", baris)
	}
}

func TestBacaRencanaXLSXDesimalKoma(t *testing.T) {
	buf := bukuUji(t,
		[]string{"kebun", "jenis", "kg"},
		[][]any{{"TJM", "UREA", "12,5"}},
	)
	baris, _, err := BacaRencanaXLSX(buf)
	if err != nil {
		t.Fatal(err)
	}
	if fmt.Sprintf("%.1f", baris[0].JumlahKg) != "12.5" {
		t.Fatalf("desimal koma = %v, want 12.5", baris[0].JumlahKg)
	}
}
