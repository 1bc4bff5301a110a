package app

import (
	adminAPI "crash_backend/internal/api/admin"
	authAPI "crash_backend/internal/api/auth"
	gameAPI "crash_backend/internal/api/game"
	historyAPI "crash_backend/internal/api/history"
	"crash_backend/internal/config"
	"crash_backend/internal/config/env"
	"crash_backend/internal/middleware"
	"crash_backend/internal/repository"
	"crash_backend/internal/repository/auth_repo"
	"crash_backend/internal/repository/bet_repo"
	"crash_backend/internal/repository/user_repo"
	"crash_backend/internal/service"
	adminService "crash_backend/internal/service/admin"
	authService "crash_backend/internal/service/auth"
	gameService "crash_backend/internal/service/game"
	historyService "crash_backend/internal/service/history"
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Game bits
	gameCfg  config.GameConfig
	betRepo  repository.BetRepository
	gameServ service.GameService
	gameHand *gameAPI.Handler

	// History bits
	historyServ service.HistoryService
	historyHand *historyAPI.Handler

	// Admin bits
	adminServ service.AdminService
	adminHand *adminAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
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

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) BetRepo(ctx context.Context) repository.BetRepository {
	if sp.betRepo == nil {
		sp.betRepo = bet_repo.NewBetRepository(sp.DBClient(ctx))
	}
	return sp.betRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = authService.NewAuthService(
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.JWTCfg(),
			sp.GameCfg(),
			sp.TXManager(ctx),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(ctx),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = gameService.NewGameService(
			gameService.NewGenerator(sp.GameCfg()),
			sp.UserRepo(ctx),
			sp.BetRepo(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv: sp.GameService(ctx),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) HistoryService(ctx context.Context) service.HistoryService {
	if sp.historyServ == nil {
		sp.historyServ = historyService.NewHistoryService(
			sp.BetRepo(ctx),
			sp.UserRepo(ctx),
			sp.GameCfg(),
		)
	}
	return sp.historyServ
}

func (sp *ServiceProvider) HistoryHandler(ctx context.Context) *historyAPI.Handler {
	if sp.historyHand == nil {
		sp.historyHand = historyAPI.NewHandler(historyAPI.HandlerDeps{
			Serv: sp.HistoryService(ctx),
		})
	}
	return sp.historyHand
}

func (sp *ServiceProvider) AdminService(ctx context.Context) service.AdminService {
	if sp.adminServ == nil {
		sp.adminServ = adminService.NewAdminService(
			sp.UserRepo(ctx),
			sp.BetRepo(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.adminServ
}

func (sp *ServiceProvider) AdminHandler(ctx context.Context) *adminAPI.Handler {
	if sp.adminHand == nil {
		sp.adminHand = adminAPI.NewHandler(adminAPI.HandlerDeps{
			Serv: sp.AdminService(ctx),
		})
	}
	return sp.adminHand
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
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		authMW := middleware.Auth(sp.JWTCfg())

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
			rr.With(authMW).Post("/change-password", authHandler.ChangePassword)
		})

		// Game endpoints
		gameHandler := sp.GameHandler(ctx)
		r.Route("/game", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Post("/place-bet", gameHandler.PlaceBet)
			rr.Post("/tick", gameHandler.Tick)
			rr.Post("/cash-out", gameHandler.CashOut)
			rr.Get("/state", gameHandler.State)
		})

		// History endpoints
		historyHandler := sp.HistoryHandler(ctx)
		r.Route("/history", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Get("/my-bets", historyHandler.MyBets)
			rr.Get("/crashes", historyHandler.CrashHistory)
			rr.Get("/leaderboard", historyHandler.Leaderboard)
			rr.Get("/profile", historyHandler.Profile)
		})

		// Admin endpoints
		adminHandler := sp.AdminHandler(ctx)
		r.Route("/admin", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Use(middleware.AdminOnly)
			rr.Get("/users", adminHandler.Users)
			rr.Put("/users/{id}/balance", adminHandler.SetBalance)
			rr.Put("/users/{id}/admin", adminHandler.SetAdmin)
			rr.Delete("/users/{id}", adminHandler.DeleteUser)
			rr.Get("/stats", adminHandler.Stats)
		})

		sp.router = r
	}

	return sp.router
}
