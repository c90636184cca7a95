// Package seed fills the database with a plausible demo dataset so the
// dashboard can be exercised without a real import file.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"simpupuk/entities"
	renRepo "simpupuk/pkg/rencana/repository"
	realRepo "simpupuk/pkg/realisasi/repository"
	stokRepo "simpupuk/pkg/stok/repository"
)

// jenisContoh is the mix of fertilizer names generated per kebun. The raw
// names deliberately vary in casing and spelling the way real imports do.
var jenisContoh = []string{
	"NPK 12.12.17.2",
	"NPK 15.15.6.4",
	"Urea",
	"TSP",
	"MOP",
	"RP",
	"Dolomit",
	"HGF Borate",
	"CuSO4",
}

type Seeder struct {
	rencana   renRepo.RencanaRepository
	realisasi realRepo.RealisasiRepository
	stok      stokRepo.StokRepository
	loc       *time.Location
	now       func() time.Time
}

func New(r renRepo.RencanaRepository, rl realRepo.RealisasiRepository, s stokRepo.StokRepository, loc *time.Location) *Seeder {
	if loc == nil {
		loc = time.Local
	}
	return &Seeder{rencana: r, realisasi: rl, stok: s, loc: loc, now: time.Now}
}

// Populasi wipes the current data and inserts a deterministic dataset derived
// from benih: plans for every kebun, realizations for roughly 60% of them,
// and one stock row per kebun.
func (sd *Seeder) Populasi(benih int64) (nRencana, nRealisasi, nStok int, err error) {
	if err = sd.Bersihkan(); err != nil {
		return 0, 0, 0, err
	}

	rng := rand.New(rand.NewSource(benih))
	hariIni := sd.now().In(sd.loc)
	tahun := hariIni.Year()
	batch := uuid.NewString()

	var rencana []entities.Rencana
	var realisasi []entities.Realisasi

	for _, kb := range entities.MasterKebun {
		for j, jenis := range jenisContoh {
			// not every kebun uses every fertilizer
			if rng.Float64() < 0.25 {
				continue
			}
			tahunTanam := tahun - (2 + rng.Intn(18))
			kategori := entities.KategoriTM
			if tahun-tahunTanam < 4 {
				kategori = entities.KategoriTBM
			}
			if j == len(jenisContoh)-1 && rng.Float64() < 0.3 {
				kategori = entities.KategoriBibitan
			}
			for app := 1; app <= 3; app++ {
				inv := 800 + rng.Intn(2200)
				dosis := 0.5 + rng.Float64()*2.0
				tanggal := hariIni.AddDate(0, 0, rng.Intn(11)-5).Format("2006-01-02")
				r := entities.Rencana{
					Kategori:   kategori,
					KodeKebun:  kb.Kode,
					KodeIntern: kb.KodeIntern,
					Afdeling:   fmt.Sprintf("AFD-%02d", 1+rng.Intn(6)),
					TahunTanam: tahunTanam,
					Blok:       fmt.Sprintf("%s-%02d", kb.Kode, 1+rng.Intn(40)),
					LuasHa:     float64(inv) / 136.0,
					Inventaris: inv,
					JenisPupuk: jenis,
					AplikasiKe: app,
					DosisKgPkk: dosis,
					JumlahKg:   float64(inv) * dosis,
					Tanggal:    tanggal,
					BatchID:    batch,
				}
				rencana = append(rencana, r)

				if rng.Float64() < 0.6 {
					faktor := 0.9 + rng.Float64()*0.2
					realisasi = append(realisasi, entities.Realisasi{
						Kategori:   r.Kategori,
						KodeKebun:  r.KodeKebun,
						KodeIntern: r.KodeIntern,
						Afdeling:   r.Afdeling,
						TahunTanam: r.TahunTanam,
						Blok:       r.Blok,
						LuasHa:     r.LuasHa,
						Inventaris: r.Inventaris,
						JenisPupuk: r.JenisPupuk,
						AplikasiKe: r.AplikasiKe,
						DosisKgPkk: r.DosisKgPkk,
						JumlahKg:   r.JumlahKg * faktor,
						Tanggal:    r.Tanggal,
						BatchID:    batch,
					})
				}
			}
		}
	}

	if err = sd.rencana.BulkInsert(rencana); err != nil {
		return 0, 0, 0, fmt.Errorf("seed rencana: %w", err)
	}
	if err = sd.realisasi.BulkInsert(realisasi); err != nil {
		return 0, 0, 0, fmt.Errorf("seed realisasi: %w", err)
	}

	for _, kb := range entities.MasterKebun {
		s := entities.Stok{
			KodeKebun:  kb.Kode,
			KodeIntern: kb.KodeIntern,
			JumlahKg:   float64(20000 + rng.Intn(180000)),
		}
		if err = sd.stok.Create(&s); err != nil {
			return 0, 0, 0, fmt.Errorf("seed stok: %w", err)
		}
		nStok++
	}

	return len(rencana), len(realisasi), nStok, nil
}

// Bersihkan removes all plan, realization and stock rows.
func (sd *Seeder) Bersihkan() error {
	if err := sd.rencana.DeleteAll(); err != nil {
		return fmt.Errorf("hapus rencana: %w", err)
	}
	if err := sd.realisasi.DeleteAll(); err != nil {
		return fmt.Errorf("hapus realisasi: %w", err)
	}
	if err := sd.stok.DeleteAll(); err != nil {
		return fmt.Errorf("hapus stok: %w", err)
	}
	return nil
}
