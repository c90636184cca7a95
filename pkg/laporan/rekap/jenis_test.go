package rekap

import (
	"testing"

	"simpupuk/pkg/laporan/types"
)

func TestJenisKanonik(t *testing.T) {
	cases := []struct {
		in   string
		want types.Jenis
	}{
		{"NPK 12.12.17.2", types.JenisNPK},
		{"npk 13.6.27.4", types.JenisNPK},
		{"NPK", types.JenisNPK},
		{"UREA", types.JenisUrea},
		{"urea", types.JenisUrea},
		{"TSP", types.JenisTSP},
		{"MOP", types.JenisMOP},
		{"RP", types.JenisRP},
		{"Dolomite", types.JenisDolomit},
		{"DOLOMIT", types.JenisDolomit},
		{"HGF Borate", types.JenisBorate},
		{"CuSO4", types.JenisCuSO4},
		{"znso4", types.JenisZnSO4},
		{" urea ", types.JenisUrea},
		{"UNKNOWNTYPE", types.JenisNPK}, // explicit fallback, not an error
		{"", types.JenisNPK},
	}
	for _, c := range cases {
		if got := JenisKanonik(c.in); got != c.want {
			t.Errorf("JenisKanonik(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
