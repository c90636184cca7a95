package router

import (
	"github.com/labstack/echo/v4"

	"simpupuk/pkg/middleware"
)

func New(
	e *echo.Echo,
	jwtSecret string,
	authCtrl interface {
		Login(echo.Context) error
		WhoAmI(echo.Context) error
	},
	rencanaCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		DeleteByKebun(echo.Context) error
		DeleteAll(echo.Context) error
	},
	realisasiCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		DeleteByKebun(echo.Context) error
		DeleteAll(echo.Context) error
	},
	stokCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		DeleteByKebun(echo.Context) error
	},
	laporanCtrl interface {
		Rekap(echo.Context) error
		Jadwal(echo.Context) error
		Komposisi(echo.Context) error
		StokKurang(echo.Context) error
		RentangTanggal(echo.Context) error
		DaftarKebun(echo.Context) error
	},
	exportRekap func(echo.Context) error,
	importRencana func(echo.Context) error,
	pedomanCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
	},
	seedCtrl interface {
		Populasi(echo.Context) error
		Bersihkan(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.POST("/login", authCtrl.Login)
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api", middleware.JWT(jwtSecret))

	api.GET("/whoami", authCtrl.WhoAmI)

	api.POST("/rencana", rencanaCtrl.Create)
	api.GET("/rencana", rencanaCtrl.List)
	api.PUT("/rencana/:id", rencanaCtrl.Update)
	api.DELETE("/rencana/:id", rencanaCtrl.Delete)
	api.DELETE("/rencana/kebun/:kode", rencanaCtrl.DeleteByKebun)
	api.DELETE("/rencana", rencanaCtrl.DeleteAll)
	api.POST("/rencana/import", importRencana)

	api.POST("/realisasi", realisasiCtrl.Create)
	api.GET("/realisasi", realisasiCtrl.List)
	api.PUT("/realisasi/:id", realisasiCtrl.Update)
	api.DELETE("/realisasi/:id", realisasiCtrl.Delete)
	api.DELETE("/realisasi/kebun/:kode", realisasiCtrl.DeleteByKebun)
	api.DELETE("/realisasi", realisasiCtrl.DeleteAll)

	api.POST("/stok", stokCtrl.Create)
	api.GET("/stok", stokCtrl.List)
	api.PUT("/stok/:id", stokCtrl.Update)
	api.DELETE("/stok/:id", stokCtrl.Delete)
	api.DELETE("/stok/kebun/:kode", stokCtrl.DeleteByKebun)

	api.GET("/laporan/rekap", laporanCtrl.Rekap)
	api.GET("/laporan/jadwal", laporanCtrl.Jadwal)
	api.GET("/laporan/komposisi", laporanCtrl.Komposisi)
	api.GET("/laporan/stok-kurang", laporanCtrl.StokKurang)
	api.GET("/laporan/rentang-tanggal", laporanCtrl.RentangTanggal)
	api.GET("/laporan/export", exportRekap)
	api.GET("/kebun", laporanCtrl.DaftarKebun)

	api.POST("/pedoman/ingest", pedomanCtrl.IngestText)
	api.POST("/pedoman/ingest/url", pedomanCtrl.IngestURL)
	api.GET("/pedoman/search", pedomanCtrl.Search)

	api.POST("/seed", seedCtrl.Populasi)
	api.DELETE("/seed", seedCtrl.Bersihkan)

	return e
}
