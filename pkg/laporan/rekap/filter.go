package rekap

import (
	"strings"

	"simpupuk/pkg/laporan/types"
)

// FilterSemua is the selector value that passes everything. An empty
// selector means the same thing.
const FilterSemua = "semua"

func pilihSemua(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "" || s == FilterSemua
}

// Saring narrows rekap rows to those matching every active criterion,
// preserving the input order. The source slice is never mutated.
//
// The jenis selector is an activity filter: a row passes when it has any
// planned or realized mass in that bucket. The selector must name one of the
// canonical buckets exactly; anything else matches no row. The date bounds
// are inclusive and compare YYYY-MM-DD strings lexicographically; a row with
// no realisasi date fails whenever either bound is active, even if its
// planned side would qualify.
func Saring(baris []types.BarisRekap, f types.Filter) []types.BarisRekap {
	cari := strings.ToLower(strings.TrimSpace(f.Cari))
	jenisAktif := !pilihSemua(f.Jenis)
	jenis, jenisOK := JenisTerpilih(f.Jenis)
	out := make([]types.BarisRekap, 0, len(baris))
	for _, b := range baris {
		if !pilihSemua(f.Distrik) && !strings.EqualFold(f.Distrik, b.Distrik) {
			continue
		}
		if !pilihSemua(f.Kebun) && !strings.EqualFold(f.Kebun, b.KodeKebun) {
			continue
		}
		if cari != "" {
			nama := b.NamaKebun
			if nama == "" {
				nama = b.KodeKebun
			}
			if !strings.Contains(strings.ToLower(nama), cari) {
				continue
			}
		}
		if jenisAktif {
			if !jenisOK || b.RencanaPerJenis[jenis]+b.RealisasiPerJenis[jenis] == 0 {
				continue
			}
		}
		if f.Dari != "" || f.Sampai != "" {
			if b.TanggalTerakhir == "" {
				continue
			}
			if f.Dari != "" && b.TanggalTerakhir < f.Dari {
				continue
			}
			if f.Sampai != "" && b.TanggalTerakhir > f.Sampai {
				continue
			}
		}
		out = append(out, b)
	}
	return out
}
