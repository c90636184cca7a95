package serviceImp

import (
	"fmt"
	"time"

	"simpupuk/pkg/laporan/rekap"
	"simpupuk/pkg/laporan/service"
	"simpupuk/pkg/laporan/types"
	realisasirepo "simpupuk/pkg/realisasi/repository"
	rencanarepo "simpupuk/pkg/rencana/repository"
	stokrepo "simpupuk/pkg/stok/repository"
)

type laporanSvc struct {
	rencana   rencanarepo.RencanaRepository
	realisasi realisasirepo.RealisasiRepository
	stok      stokrepo.StokRepository
	loc       *time.Location
	now       func() time.Time
}

func NewLaporanService(rc rencanarepo.RencanaRepository, rl realisasirepo.RealisasiRepository, st stokrepo.StokRepository, loc *time.Location) service.LaporanService {
	if loc == nil {
		loc = time.Local
	}
	return &laporanSvc{rencana: rc, realisasi: rl, stok: st, loc: loc, now: time.Now}
}

func (s *laporanSvc) Rekapitulasi(f types.Filter) (*types.HasilRekap, error) {
	rencana, err := s.rencana.List("")
	if err != nil {
		return nil, fmt.Errorf("baca rencana: %w", err)
	}
	realisasi, err := s.realisasi.List("")
	if err != nil {
		return nil, fmt.Errorf("baca realisasi: %w", err)
	}
	stok, err := s.stok.TotalPerKebun()
	if err != nil {
		return nil, fmt.Errorf("baca stok: %w", err)
	}

	tahun := s.now().In(s.loc).Year()
	baris, diabaikan := rekap.Kumpulkan(rencana, realisasi, stok, tahun)
	baris = rekap.Saring(baris, f)

	return &types.HasilRekap{
		Baris:          baris,
		Distrik:        rekap.RekapDistrik(baris),
		Komposisi:      rekap.Komposisi(baris),
		StokKurang:     rekap.StokVsKurang(baris),
		BarisDiabaikan: diabaikan,
	}, nil
}

func (s *laporanSvc) Jadwal(mode types.ModeJadwal, dari, sampai string) ([]types.BarisJadwal, error) {
	switch mode {
	case types.ModeTM, types.ModeTBM, types.ModeGabungan:
	default:
		mode = types.ModeGabungan
	}

	rencana, err := s.rencana.List("")
	if err != nil {
		return nil, fmt.Errorf("baca rencana: %w", err)
	}
	realisasi, err := s.realisasi.List("")
	if err != nil {
		return nil, fmt.Errorf("baca realisasi: %w", err)
	}

	now := s.now().In(s.loc)
	jendela := rekap.JendelaBawaan(now)
	if dari != "" {
		jendela.Dari = dari
	}
	if sampai != "" {
		jendela.Sampai = sampai
	}
	return rekap.Jadwal(rencana, realisasi, mode, jendela, now.Year()), nil
}

func (s *laporanSvc) RentangTanggal() (string, string, error) {
	return s.realisasi.RentangTanggal()
}
