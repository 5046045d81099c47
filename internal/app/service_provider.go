package app

import (
	"context"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	adminAPI "slot_backend/internal/api/admin"
	healthAPI "slot_backend/internal/api/health"
	sessionAPI "slot_backend/internal/api/session"
	slotAPI "slot_backend/internal/api/slot"
	"slot_backend/internal/config"
	"slot_backend/internal/config/env"
	"slot_backend/internal/middleware"
	"slot_backend/internal/paytable"
	"slot_backend/internal/repository"
	"slot_backend/internal/repository/config_file_repo"
	"slot_backend/internal/repository/config_repo"
	"slot_backend/internal/repository/session_repo"
	"slot_backend/internal/service"
	"slot_backend/internal/service/paytable_store"
	sessionServ "slot_backend/internal/service/session"
	slotServ "slot_backend/internal/service/slot"
	statsServ "slot_backend/internal/service/stats"
	"slot_backend/pkg/rng"
	"slot_backend/pkg/sign"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Config bits
	storageCfg config.StorageConfig
	configRepo repository.ConfigRepository
	configServ service.ConfigService

	// Session bits
	sessionRepo repository.SessionRepository
	sessionServ service.SessionService
	sessionHand *sessionAPI.Handler

	// Slot bits
	signCfg   config.SignConfig
	statsServ service.StatsService
	slotServ  service.SlotService
	slotHand  *slotAPI.Handler

	// Admin bits
	adminCfg  config.AdminConfig
	adminHand *adminAPI.Handler

	// Health bits
	started    time.Time
	healthHand *healthAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{started: time.Now()}
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.pgConfig.DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) StorageCfg() config.StorageConfig {
	if sp.storageCfg == nil {
		cfg, err := env.NewStorageConfig()
		if err != nil {
			panic("failed to get storage config: " + err.Error())
		}
		sp.storageCfg = cfg
	}
	return sp.storageCfg
}

// ConfigRepository выбирает хранилище конфигурации по окружению:
// с PG_DSN — Postgres с историей изменений, без него — локальный JSON-файл.
func (sp *ServiceProvider) ConfigRepository(ctx context.Context) repository.ConfigRepository {
	if sp.configRepo == nil {
		pgCfg, err := env.NewPGConfig()
		if err != nil {
			log.Info("PG_DSN is not set, using file config storage")
			sp.configRepo = config_file_repo.NewConfigRepository(sp.StorageCfg().Path())
			return sp.configRepo
		}
		sp.pgConfig = pgCfg

		pgRepo := config_repo.NewConfigRepository(sp.DBClient(ctx))
		if err := pgRepo.Migrate(ctx); err != nil {
			panic("failed to migrate config storage: " + err.Error())
		}
		sp.configRepo = pgRepo
	}
	return sp.configRepo
}

func (sp *ServiceProvider) ConfigService(ctx context.Context) service.ConfigService {
	if sp.configServ == nil {
		defaults, err := env.NewDefaultPaytable()
		if err != nil {
			panic("failed to get default paytable: " + err.Error())
		}
		if err := paytable.Validate(&defaults); err != nil {
			panic("default paytable is invalid: " + err.Error())
		}

		repo := sp.ConfigRepository(ctx)

		// Транзакции есть только у Postgres-хранилища
		var txm trm.Manager
		if sp.dbClient != nil {
			txm = sp.TXManager(ctx)
		}

		sp.configServ = paytable_store.NewPaytableStore(ctx, defaults, repo, txm)
	}
	return sp.configServ
}

func (sp *ServiceProvider) SessionRepository() repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository()
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) SessionService(ctx context.Context) service.SessionService {
	if sp.sessionServ == nil {
		sp.sessionServ = sessionServ.NewSessionService(sp.SessionRepository(), sp.ConfigService(ctx))
	}
	return sp.sessionServ
}

func (sp *ServiceProvider) SessionHandler(ctx context.Context) *sessionAPI.Handler {
	if sp.sessionHand == nil {
		sp.sessionHand = sessionAPI.NewHandler(sessionAPI.HandlerDeps{
			Serv: sp.SessionService(ctx),
		})
	}
	return sp.sessionHand
}

func (sp *ServiceProvider) SignCfg() config.SignConfig {
	if sp.signCfg == nil {
		cfg, err := env.NewSignConfig()
		if err != nil {
			panic("failed to get sign config: " + err.Error())
		}
		sp.signCfg = cfg
	}
	return sp.signCfg
}

func (sp *ServiceProvider) StatsService() service.StatsService {
	if sp.statsServ == nil {
		sp.statsServ = statsServ.NewStatsService()
	}
	return sp.statsServ
}

func (sp *ServiceProvider) SlotService(ctx context.Context) service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slotServ.NewSlotService(
			sp.SessionRepository(),
			sp.ConfigService(ctx),
			sp.StatsService(),
			rng.CryptoPicker{},
			sign.New(sp.SignCfg().Secret()),
		)
	}
	return sp.slotServ
}

func (sp *ServiceProvider) SlotHandler(ctx context.Context) *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{
			Serv: sp.SlotService(ctx),
		})
	}
	return sp.slotHand
}

func (sp *ServiceProvider) AdminCfg() config.AdminConfig {
	if sp.adminCfg == nil {
		cfg, err := env.NewAdminConfig()
		if err != nil {
			panic("failed to get admin config: " + err.Error())
		}
		sp.adminCfg = cfg
	}
	return sp.adminCfg
}

func (sp *ServiceProvider) AdminHandler(ctx context.Context) *adminAPI.Handler {
	if sp.adminHand == nil {
		sp.adminHand = adminAPI.NewHandler(adminAPI.HandlerDeps{
			Configs: sp.ConfigService(ctx),
			Stats:   sp.StatsService(),
		})
	}
	return sp.adminHand
}

func (sp *ServiceProvider) HealthHandler(ctx context.Context) *healthAPI.Handler {
	if sp.healthHand == nil {
		sp.healthHand = healthAPI.NewHandler(healthAPI.HandlerDeps{
			Configs: sp.ConfigService(ctx),
			Started: sp.started,
		})
	}
	return sp.healthHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", middleware.SessionIDHeader, middleware.AdminTokenHeader},
			ExposedHeaders:   []string{slotAPI.SpinSigHeader},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))
		r.Use(middleware.RequestMetrics)

		r.Handle("/metrics", promhttp.Handler())

		sessionHandler := sp.SessionHandler(ctx)
		slotHandler := sp.SlotHandler(ctx)
		adminHandler := sp.AdminHandler(ctx)
		healthHandler := sp.HealthHandler(ctx)

		r.Route("/api/v1", func(rr chi.Router) {
			rr.Get("/health", healthHandler.Check)
			rr.Post("/auth/guest", sessionHandler.Guest)

			// Игровые эндпоинты требуют заголовка сессии
			rr.Group(func(rg chi.Router) {
				rg.Use(middleware.WithSessionID)
				rg.Get("/wallet/balance", sessionHandler.Balance)
				rg.Post("/slot/spin", slotHandler.Spin)
			})

			// Админские эндпоинты закрыты статическим токеном
			rr.Route("/admin", func(ra chi.Router) {
				ra.Use(middleware.AdminGuard(sp.AdminCfg()))
				ra.Get("/config", adminHandler.GetConfig)
				ra.Put("/config", adminHandler.UpdateConfig)
				ra.Post("/config/reset", adminHandler.ResetConfig)
				ra.Post("/config/evaluate", adminHandler.Evaluate)
				ra.Get("/stats", adminHandler.Stats)
			})
		})

		sp.router = r
	}

	return sp.router
}
