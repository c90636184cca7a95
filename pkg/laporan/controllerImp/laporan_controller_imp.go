package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"simpupuk/entities"
	"simpupuk/pkg/laporan/controller"
	"simpupuk/pkg/laporan/service"
	"simpupuk/pkg/laporan/types"
)

type LaporanCtrl struct{ s service.LaporanService }

func New(s service.LaporanService) controller.LaporanController { return &LaporanCtrl{s} }

func ambilFilter(c echo.Context) types.Filter {
	return types.Filter{
		Distrik: c.QueryParam("distrik"),
		Kebun:   c.QueryParam("kebun"),
		Cari:    c.QueryParam("cari"),
		Jenis:   c.QueryParam("jenis"),
		Dari:    c.QueryParam("dari"),
		Sampai:  c.QueryParam("sampai"),
	}
}

func (h *LaporanCtrl) Rekap(c echo.Context) error {
	out, err := h.s.Rekapitulasi(ambilFilter(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LaporanCtrl) Jadwal(c echo.Context) error {
	mode := types.ModeJadwal(c.QueryParam("mode"))
	out, err := h.s.Jadwal(mode, c.QueryParam("dari"), c.QueryParam("sampai"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LaporanCtrl) Komposisi(c echo.Context) error {
	out, err := h.s.Rekapitulasi(ambilFilter(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out.Komposisi)
}

func (h *LaporanCtrl) StokKurang(c echo.Context) error {
	out, err := h.s.Rekapitulasi(ambilFilter(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out.StokKurang)
}

func (h *LaporanCtrl) RentangTanggal(c echo.Context) error {
	min, max, err := h.s.RentangTanggal()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"min": min, "max": max})
}

func (h *LaporanCtrl) DaftarKebun(c echo.Context) error {
	return c.JSON(http.StatusOK, entities.MasterKebun)
}
