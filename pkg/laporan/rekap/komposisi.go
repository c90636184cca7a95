package rekap

import (
	"math"

	"simpupuk/entities"
	"simpupuk/pkg/laporan/types"
)

// Komposisi sums planned and realized kg per canonical jenis bucket across
// the given (already filtered) rows, then derives each bucket's share of
// total realized mass. The share denominator is floored at 1 so an empty
// period yields zeros instead of NaN.
func Komposisi(baris []types.BarisRekap) []types.BarisKomposisi {
	rencana := map[types.Jenis]float64{}
	realisasi := map[types.Jenis]float64{}
	for _, b := range baris {
		for j, v := range b.RencanaPerJenis {
			rencana[j] += v
		}
		for j, v := range b.RealisasiPerJenis {
			realisasi[j] += v
		}
	}

	totalRealisasi := 0.0
	for _, v := range realisasi {
		totalRealisasi += v
	}
	pembagi := math.Max(1, totalRealisasi)

	out := make([]types.BarisKomposisi, 0, len(types.SemuaJenis))
	for _, j := range types.SemuaJenis {
		out = append(out, types.BarisKomposisi{
			Jenis:       j,
			RencanaKg:   rencana[j],
			RealisasiKg: realisasi[j],
			SharePct:    realisasi[j] / pembagi * 100,
			ProgresPct:  persen(realisasi[j], rencana[j]),
		})
	}
	return out
}

// StokVsKurang pairs each district's current stock with its shortfall
// (planned minus realized, floored at 0 per row upstream). Districts with
// neither stock nor shortfall are dropped; the share denominator is floored
// at 1.
func StokVsKurang(baris []types.BarisRekap) []types.BarisStokKurang {
	type akum struct{ stok, kurang float64 }
	total := map[string]*akum{}
	for _, b := range baris {
		t, ok := total[b.Distrik]
		if !ok {
			t = &akum{}
			total[b.Distrik] = t
		}
		t.stok += b.StokKg
		t.kurang += b.KurangKg
	}

	out := []types.BarisStokKurang{}
	for _, d := range []string{entities.DistrikDTM, entities.DistrikDBR} {
		t, ok := total[d]
		if !ok || (t.stok == 0 && t.kurang == 0) {
			continue
		}
		pembagi := math.Max(1, t.stok+t.kurang)
		out = append(out, types.BarisStokKurang{
			Distrik:   d,
			StokKg:    t.stok,
			KurangKg:  t.kurang,
			StokPct:   t.stok / pembagi * 100,
			KurangPct: t.kurang / pembagi * 100,
		})
	}
	return out
}
