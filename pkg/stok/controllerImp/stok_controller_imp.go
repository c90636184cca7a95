package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"simpupuk/entities"
	"simpupuk/pkg/stok/controller"
	"simpupuk/pkg/stok/service"
)

type StokCtrl struct{ s service.StokService }

func New(s service.StokService) controller.StokController { return &StokCtrl{s} }

func (h *StokCtrl) Create(c echo.Context) error {
	var in entities.Stok
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "json tidak valid"})
	}
	out, err := h.s.Create(&in)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *StokCtrl) List(c echo.Context) error {
	out, err := h.s.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StokCtrl) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id tidak valid"})
	}
	var in entities.Stok
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "json tidak valid"})
	}
	out, err := h.s.Update(uint(id), &in)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StokCtrl) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id tidak valid"})
	}
	if err := h.s.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *StokCtrl) DeleteByKebun(c echo.Context) error {
	if err := h.s.DeleteByKebun(c.Param("kode")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
