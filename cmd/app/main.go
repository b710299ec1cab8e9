package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	httpin "github.com/pastoraldigital/mass-schedule-manager/internal/adapters/in/http"
	"github.com/pastoraldigital/mass-schedule-manager/internal/adapters/out/cache"
	"github.com/pastoraldigital/mass-schedule-manager/internal/adapters/out/logger"
	"github.com/pastoraldigital/mass-schedule-manager/internal/adapters/out/memstore"
	"github.com/pastoraldigital/mass-schedule-manager/internal/adapters/out/pdfreport"
	"github.com/pastoraldigital/mass-schedule-manager/internal/adapters/out/pdftext"
	"github.com/pastoraldigital/mass-schedule-manager/internal/adapters/out/sheetstore"
	"github.com/pastoraldigital/mass-schedule-manager/internal/adapters/out/xlsxbook"
	"github.com/pastoraldigital/mass-schedule-manager/internal/config"
	"github.com/pastoraldigital/mass-schedule-manager/internal/core/ports/out"
	"github.com/pastoraldigital/mass-schedule-manager/internal/core/services/export_service"
	"github.com/pastoraldigital/mass-schedule-manager/internal/core/services/roster_service"
	"github.com/pastoraldigital/mass-schedule-manager/internal/core/services/title_service"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	catalog, celebrants, err := cfg.LoadCatalog()
	if err != nil {
		log.Error("app.catalog.invalid", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	log.Info("app.starting", out.LogFields{
		"version":        cfg.App.Version,
		"env":            cfg.App.Env,
		"timezone":       cfg.App.Timezone,
		"year":           cfg.Roster.Year,
		"communities":    len(catalog.Communities),
		"slotsPerSunday": catalog.SlotsPerSunday(),
		"cacheEnabled":   cfg.Cache.Enabled,
	})

	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Backing store: the remote table when configured, the in-memory one for
	// local runs without a remote.
	var storeAdapter out.StorePort
	if cfg.Sheet.URL == "" && cfg.IsLocal() {
		log.Warn("app.store.memory", out.LogFields{
			"message": "SHEET_URL not set, assignments will not survive a restart",
		})
		storeAdapter = memstore.NewMemStoreAdapter(log.WithModule("MemStoreAdapter"))
	} else {
		storeAdapter = sheetstore.NewSheetStoreAdapter(cfg, log.WithModule("SheetStoreAdapter"))
	}

	var cacheAdapter out.CachePort
	if cfg.Cache.Enabled {
		adapter, err := cache.NewTitlesCacheAdapter(cfg, log.WithModule("TitlesCacheAdapter"))
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cacheAdapter = adapter
	}

	pdftextAdapter := pdftext.NewPdfTextAdapter(cfg.Roster.TitlesDocument, log.WithModule("PdfTextAdapter"))

	titleService := title_service.NewTitleService(
		pdftextAdapter,
		cacheAdapter,
		cfg.Roster.Year,
		log,
	)
	rosterService := roster_service.NewRosterService(
		storeAdapter,
		titleService,
		catalog,
		celebrants,
		cfg.Roster.Year,
		log,
	)
	exportService := export_service.NewExportService(
		rosterService,
		pdfreport.NewReportRenderer(log.WithModule("ReportRenderer")),
		xlsxbook.NewWorkbookRenderer(log.WithModule("WorkbookRenderer")),
		log,
	)

	// Startup probe: one full read of the backing table. An unreachable or
	// misconfigured store is fatal here, before anything is served.
	probeCtx, cancelProbe := context.WithTimeout(context.Background(), 15*time.Second)
	rows, err := storeAdapter.ReadAll(probeCtx)
	cancelProbe()
	if err != nil {
		log.Error("app.store.unreachable", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	log.Info("app.store.ready", out.LogFields{
		"rows": len(rows),
	})

	router := gin.Default()
	controller := httpin.NewRosterController(rosterService, exportService, titleService, cfg)
	controller.RegisterRoutes(router)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
