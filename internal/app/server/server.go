package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"worktime/internal/domain/workcalendar"
	"worktime/internal/platform/config"
	"worktime/internal/platform/db"
	authhandler "worktime/internal/transport/http/handlers/auth"
	calendarhandler "worktime/internal/transport/http/handlers/calendar"
	reportshandler "worktime/internal/transport/http/handlers/reports"
	salaryhandler "worktime/internal/transport/http/handlers/salary"
	schedulehandler "worktime/internal/transport/http/handlers/schedule"
	"worktime/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	calendar := workcalendar.Default()
	if cfg.CalendarFile != "" {
		calendar, err = workcalendar.Load(cfg.CalendarFile)
		if err != nil {
			log.Fatalf("calendar file %s failed to load: %v", cfg.CalendarFile, err)
		}
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	authHandler := authhandler.NewHandler(pool, cfg.JWTSecret, cfg.TokenTTL)

	router.Route("/api/v1", func(r chi.Router) {
		loginLimit := middleware.RateLimit(10, time.Minute,
			middleware.WithKeyFunc(middleware.AuthUsernameOrIPKey("username")))
		r.With(loginLimit).Post("/auth/login", authHandler.HandleLogin)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTSecret))

			authHandler.RegisterProtectedRoutes(r)

			scheduleHandler := schedulehandler.NewHandler(pool, cfg.StrictClockMode)
			scheduleHandler.RegisterRoutes(r)

			calendarHandler := calendarhandler.NewHandler(pool, calendar)
			calendarHandler.RegisterRoutes(r)

			salaryHandler := salaryhandler.NewHandler(pool, calendar)
			salaryHandler.RegisterRoutes(r)

			reportsHandler := reportshandler.NewHandler(pool, calendar)
			reportsHandler.RegisterRoutes(r)
		})
	})

	log.Printf("worktime server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
