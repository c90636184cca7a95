package controllerImp

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"simpupuk/entities"
	"simpupuk/pkg/realisasi/controller"
	"simpupuk/pkg/realisasi/service"
)

type RealisasiCtrl struct{ s service.RealisasiService }

func New(s service.RealisasiService) controller.RealisasiController { return &RealisasiCtrl{s} }

// Create resolves the single-or-batch body once, at this boundary.
func (h *RealisasiCtrl) Create(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "body tidak terbaca"})
	}
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "body kosong"})
	}

	if trimmed[0] == '[' {
		var in []entities.Realisasi
		if err := json.Unmarshal(trimmed, &in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "json tidak valid"})
		}
		out, err := h.s.CreateBatch(in)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, echo.Map{"jumlah": len(out), "baris": out})
	}

	var in entities.Realisasi
	if err := json.Unmarshal(trimmed, &in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "json tidak valid"})
	}
	out, err := h.s.Create(&in)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *RealisasiCtrl) List(c echo.Context) error {
	out, err := h.s.List(c.QueryParam("kategori"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RealisasiCtrl) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id tidak valid"})
	}
	var in entities.Realisasi
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "json tidak valid"})
	}
	out, err := h.s.Update(uint(id), &in)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RealisasiCtrl) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id tidak valid"})
	}
	if err := h.s.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *RealisasiCtrl) DeleteByKebun(c echo.Context) error {
	if err := h.s.DeleteByKebun(c.Param("kode")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *RealisasiCtrl) DeleteAll(c echo.Context) error {
	if err := h.s.DeleteAll(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
