// Локальный шлюз к клиентскому модулю: те же экраны, что и в CLI,
// но в виде JSON-эндпоинтов. Каждый маршрут проходит через guard.
//
//GET    /api/v1/health             # Состояние шлюза и бэкенда
//GET    /api/v1/session            # Текущая сессия
//DELETE /api/v1/session            # Выход
//GET    /api/v1/login, /register   # Экраны входа и регистрации (anonymous)
//POST   /api/v1/login, /register   # Вход и регистрация (anonymous)
//GET    /api/v1/                   # Перенаправление на дашборд
//GET    /api/v1/user/dashboard     # Дашборд пользователя (user)
//GET    /api/v1/user/transactions  # История (user)
//POST   /api/v1/user/transfer      # Перевод (user)
//POST   /api/v1/user/beneficiaries # Новый получатель (user)
//GET    /api/v1/admin/dashboard    # Дашборд администратора (admin)
//GET    /api/v1/admin/accounts/{id} # Счет по id (admin)
//POST   /api/v1/admin/users        # Новый пользователь со счетом (admin)
//POST   /api/v1/admin/add-money    # Пополнение счета (admin)

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/exp/slog"

	"banker/internal/app/client"
	"banker/internal/app/client/config"
	adminAPI "banker/internal/app/server/api/http/admin"
	dashboardAPI "banker/internal/app/server/api/http/dashboard"
	healthAPI "banker/internal/app/server/api/http/health"
	"banker/internal/app/server/api/http/middleware"
	"banker/internal/app/server/api/http/middleware/guard"
	"banker/internal/app/server/api/http/middleware/logger"
	sessionAPI "banker/internal/app/server/api/http/session"
	"banker/internal/domain/access"
)

type Handlers struct {
	Health    *healthAPI.Handler
	Session   *sessionAPI.Handler
	Dashboard *dashboardAPI.Handler
	Admin     *adminAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(app *client.App, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.Recoverer)
	if len(cfg.AllowedOrigins) > 0 {
		mux.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"Location"},
			MaxAge:         300,
		}))
	}

	humaConfig := huma.DefaultConfig("Banker Gateway", "1.0.0")
	API := humachi.New(mux, humaConfig)

	h := handlers(app, log)
	h.Health.SetupRoutes(API)
	h.Session.SetupRoutes(API)
	h.Dashboard.SetupRoutes(API)
	h.Admin.SetupRoutes(API)

	return mux
}

func handlers(app *client.App, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	guardMW := guard.New(app.Session(), log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(app, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	sessionHandler := sessionAPI.NewHandler(app.Session(), guardMW, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(guardMW.Middleware(access.UserDashboard))
	dashboardHandler := dashboardAPI.NewHandler(app.Accounts(), log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(guardMW.Middleware(access.AdminDashboard))
	adminHandler := adminAPI.NewHandler(app.Admin(), log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:    healthHandler,
		Session:   sessionHandler,
		Dashboard: dashboardHandler,
		Admin:     adminHandler,
	}
}
