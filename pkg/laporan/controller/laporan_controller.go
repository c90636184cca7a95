package controller

import "github.com/labstack/echo/v4"

type LaporanController interface {
	Rekap(c echo.Context) error
	Jadwal(c echo.Context) error
	Komposisi(c echo.Context) error
	StokKurang(c echo.Context) error
	RentangTanggal(c echo.Context) error
	DaftarKebun(c echo.Context) error
}
