package controllerImp

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"simpupuk/pkg/laporan/service"
	"simpupuk/pkg/laporan/types"
)

type ExportCtrl struct{ s service.LaporanService }

func New(s service.LaporanService) *ExportCtrl { return &ExportCtrl{s} }

// Rekap streams the filtered rekapitulasi as an XLSX workbook.
func (h *ExportCtrl) Rekap(c echo.Context) error {
	hasil, err := h.s.Rekapitulasi(types.Filter{
		Distrik: c.QueryParam("distrik"),
		Kebun:   c.QueryParam("kebun"),
		Cari:    c.QueryParam("cari"),
		Jenis:   c.QueryParam("jenis"),
		Dari:    c.QueryParam("dari"),
		Sampai:  c.QueryParam("sampai"),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Rekapitulasi"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	judul := []string{"Kode Kebun", "Nama Kebun", "Distrik", "Rencana (kg)", "Realisasi (kg)", "Progres (%)", "Stok (kg)", "Kurang (kg)", "Realisasi Terakhir"}
	for _, j := range types.SemuaJenis {
		judul = append(judul, fmt.Sprintf("Rencana %s (kg)", j), fmt.Sprintf("Realisasi %s (kg)", j))
	}
	for i, t := range judul {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, t)
	}

	for r, b := range hasil.Baris {
		kolom := []any{b.KodeKebun, b.NamaKebun, b.Distrik, b.RencanaKg, b.RealisasiKg, b.ProgresPct, b.StokKg, b.KurangKg, b.TanggalTerakhir}
		for _, j := range types.SemuaJenis {
			kolom = append(kolom, b.RencanaPerJenis[j], b.RealisasiPerJenis[j])
		}
		for i, v := range kolom {
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	nama := fmt.Sprintf("rekap_pemupukan_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+nama)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
}
