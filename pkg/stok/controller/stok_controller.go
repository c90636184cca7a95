package controller

import "github.com/labstack/echo/v4"

type StokController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	DeleteByKebun(c echo.Context) error
}
