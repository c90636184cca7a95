package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"simpupuk/pkg/importer"
	"simpupuk/pkg/rencana/service"
)

type ImportCtrl struct{ s service.RencanaService }

func New(s service.RencanaService) *ImportCtrl { return &ImportCtrl{s} }

// Rencana handles a multipart XLSX upload of planned applications. Parsed
// rows go in as one batch; skipped rows come back in the response so the
// uploader can fix the sheet.
func (h *ImportCtrl) Rencana(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file wajib diunggah"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file tidak terbaca"})
	}
	defer src.Close()

	baris, dilewati, err := importer.BacaRencanaXLSX(src)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}

	var jumlah int
	if len(baris) > 0 {
		masuk, err := h.s.CreateBatch(baris)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
		}
		jumlah = len(masuk)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"jumlah":   jumlah,
		"dilewati": dilewati,
	})
}
