package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/amurpo/userhub/internal/config"
	"github.com/amurpo/userhub/internal/logging"
	"github.com/amurpo/userhub/internal/store"
	"github.com/amurpo/userhub/internal/users"
	"github.com/amurpo/userhub/internal/view"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logging.New("info")
		bootLog.Fatal().Err(err).Msg("load config")
	}
	log := logging.New(cfg.LogLevel)
	ctx := context.Background()

	// ── MongoDB ──────────────────────────────────────────────
	if cfg.MongoTLSInsecure {
		log.Warn().Msg("TLS certificate verification disabled for MongoDB (MONGO_TLS_INSECURE=true)")
	}
	connectCtx, cancelConnect := context.WithTimeout(ctx, 15*time.Second)
	mongoClient, err := store.Connect(connectCtx, cfg.MongoURI, cfg.MongoTLSInsecure)
	cancelConnect()
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect")
	}
	defer mongoClient.Disconnect(ctx)
	userStore := store.NewMongoStore(mongoClient.Database(cfg.MongoDB))
	if err := userStore.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo indexes")
	}

	// ── Views & handlers ─────────────────────────────────────
	views, err := view.New()
	if err != nil {
		log.Fatal().Err(err).Msg("load templates")
	}
	handler := users.NewHandler(userStore, users.BcryptHasher{}, views, log)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(logging.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Mount("/", handler.Routes())

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
