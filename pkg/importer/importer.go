// Package importer reads rencana rows from uploaded XLSX workbooks. Field
// staff keep their plans in spreadsheets with wandering column titles, so
// headers are matched through a normalized alias table and bad cells default
// to zero instead of failing the upload.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"simpupuk/entities"
)

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "(", "")
	s = strings.ReplaceAll(s, ")", "")
	return s
}

// BacaRencanaXLSX parses the first sheet of an XLSX workbook into rencana
// rows. Rows whose kebun code is not in the master list are skipped and
// reported, not silently lost.
func BacaRencanaXLSX(r io.Reader) ([]entities.Rencana, []string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("buka xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.New("workbook tanpa sheet")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("baca sheet %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, nil, errors.New("sheet kosong atau hanya berisi judul kolom")
	}

	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[norm(h)] = i
	}
	cariKolom := func(alias ...string) int {
		for _, a := range alias {
			if idx, ok := hmap[norm(a)]; ok {
				return idx
			}
		}
		return -1
	}

	cKategori := cariKolom("kategori")
	cKebun := cariKolom("kode kebun", "kebun", "kode")
	cAfd := cariKolom("afdeling", "afd")
	cTT := cariKolom("tahun tanam", "tt", "tahun")
	cBlok := cariKolom("blok", "blok kode")
	cLuas := cariKolom("luas ha", "luas", "ha")
	cInv := cariKolom("inventaris", "pokok", "jumlah pokok")
	cJenis := cariKolom("jenis pupuk", "jenis")
	cApl := cariKolom("aplikasi ke", "aplikasi", "apl")
	cDosis := cariKolom("dosis kg pkk", "dosis")
	cJumlah := cariKolom("jumlah kg", "jumlah", "kg")
	cTanggal := cariKolom("tanggal", "tgl")

	if cKebun == -1 || cJenis == -1 {
		return nil, nil, fmt.Errorf("kolom wajib tidak ditemukan (butuh minimal Kode Kebun dan Jenis Pupuk), judul: %v", rows[0])
	}

	ambil := func(rec []string, idx int) string {
		if idx < 0 || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}
	angka := func(rec []string, idx int) float64 {
		v, err := strconv.ParseFloat(strings.ReplaceAll(ambil(rec, idx), ",", "."), 64)
		if err != nil {
			return 0
		}
		return v
	}
	bulat := func(rec []string, idx int) int {
		v, err := strconv.Atoi(ambil(rec, idx))
		if err != nil {
			return 0
		}
		return v
	}

	var out []entities.Rencana
	var dilewati []string
	for i, rec := range rows[1:] {
		kode := strings.ToUpper(ambil(rec, cKebun))
		if kode == "" {
			continue // blank padding rows at the bottom of a sheet
		}
		if _, ok := entities.KebunByKode(kode); !ok {
			dilewati = append(dilewati, fmt.Sprintf("baris %d: kebun %s tidak dikenal", i+2, kode))
			continue
		}
		kategori := strings.ToUpper(ambil(rec, cKategori))
		if kategori == "" {
			kategori = entities.KategoriTM
		}
		out = append(out, entities.Rencana{
			Kategori:   kategori,
			KodeKebun:  kode,
			Afdeling:   ambil(rec, cAfd),
			TahunTanam: bulat(rec, cTT),
			Blok:       ambil(rec, cBlok),
			LuasHa:     angka(rec, cLuas),
			Inventaris: bulat(rec, cInv),
			JenisPupuk: ambil(rec, cJenis),
			AplikasiKe: bulat(rec, cApl),
			DosisKgPkk: angka(rec, cDosis),
			JumlahKg:   angka(rec, cJumlah),
			Tanggal:    ambil(rec, cTanggal),
		})
	}
	return out, dilewati, nil
}
