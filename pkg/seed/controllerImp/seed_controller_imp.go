package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"simpupuk/pkg/seed"
)

type SeedCtrl struct{ s *seed.Seeder }

func New(s *seed.Seeder) *SeedCtrl { return &SeedCtrl{s: s} }

func (h *SeedCtrl) Populasi(c echo.Context) error {
	benih := time.Now().UnixNano()
	if q := c.QueryParam("benih"); q != "" {
		v, err := strconv.ParseInt(q, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "benih harus angka"})
		}
		benih = v
	}
	nRen, nReal, nStok, err := h.s.Populasi(benih)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"rencana":   nRen,
		"realisasi": nReal,
		"stok":      nStok,
	})
}

func (h *SeedCtrl) Bersihkan(c echo.Context) error {
	if err := h.s.Bersihkan(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "bersih"})
}
