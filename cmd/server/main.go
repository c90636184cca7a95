package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"simpupuk/config"
	"simpupuk/database"
	"simpupuk/router"

	// Auth
	authCtrlImp "simpupuk/pkg/auth/controllerImp"

	// Rencana
	renCtrlImp "simpupuk/pkg/rencana/controllerImp"
	renRepoImp "simpupuk/pkg/rencana/repositoryImp"
	renSvcImp "simpupuk/pkg/rencana/serviceImp"

	// Realisasi
	realCtrlImp "simpupuk/pkg/realisasi/controllerImp"
	realRepoImp "simpupuk/pkg/realisasi/repositoryImp"
	realSvcImp "simpupuk/pkg/realisasi/serviceImp"

	// Stok
	stokCtrlImp "simpupuk/pkg/stok/controllerImp"
	stokRepoImp "simpupuk/pkg/stok/repositoryImp"
	stokSvcImp "simpupuk/pkg/stok/serviceImp"

	// Laporan + export
	expCtrlImp "simpupuk/pkg/export/controllerImp"
	lapCtrlImp "simpupuk/pkg/laporan/controllerImp"
	lapSvcImp "simpupuk/pkg/laporan/serviceImp"

	// Import
	impCtrlImp "simpupuk/pkg/importer/controllerImp"

	// Pedoman
	pedCtrlImp "simpupuk/pkg/pedoman/controllerImp"
	pedRepoImp "simpupuk/pkg/pedoman/repositoryImp"
	pedSvcImp "simpupuk/pkg/pedoman/serviceImp"

	// Seed
	"simpupuk/pkg/seed"
	seedCtrlImp "simpupuk/pkg/seed/controllerImp"

	// Health
	healthCtrlImp "simpupuk/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("[cfg] timezone %q not found, using local: %v", cfg.Timezone, err)
		loc = time.Local
	}

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())

	// 4) Repos
	renRepo := renRepoImp.New(db)
	realRepo := realRepoImp.New(db)
	stRepo := stokRepoImp.New(db)
	pedRepo := pedRepoImp.New(db)

	// 5) Services
	renSvc := renSvcImp.NewRencanaService(renRepo)
	realSvc := realSvcImp.NewRealisasiService(realRepo)
	stSvc := stokSvcImp.NewStokService(stRepo)
	lapSvc := lapSvcImp.NewLaporanService(renRepo, realRepo, stRepo, loc)
	pedSvc := pedSvcImp.New(pedRepo)
	seeder := seed.New(renRepo, realRepo, stRepo, loc)

	// 6) Controllers
	authCtrl := authCtrlImp.NewAuthController(cfg.AdminUser, cfg.AdminPass, cfg.JWTSecret)
	renCtrl := renCtrlImp.New(renSvc)
	realCtrl := realCtrlImp.New(realSvc)
	stCtrl := stokCtrlImp.New(stSvc)
	lapCtrl := lapCtrlImp.New(lapSvc)
	expCtrl := expCtrlImp.New(lapSvc)
	impCtrl := impCtrlImp.New(renSvc)
	pedCtrl := pedCtrlImp.New(pedSvc, cfg.PedomanDomains)
	seedCtrl := seedCtrlImp.New(seeder)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Router
	r := router.New(
		e,
		cfg.JWTSecret,
		authCtrl,
		renCtrl,
		realCtrl,
		stCtrl,
		lapCtrl,
		expCtrl.Rekap,
		impCtrl.Rencana,
		pedCtrl,
		seedCtrl,
		hCtrl,
	)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
