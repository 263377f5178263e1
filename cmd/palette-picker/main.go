package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/palette-dev/palette-picker/db"
	"github.com/palette-dev/palette-picker/internal/config"
	"github.com/palette-dev/palette-picker/internal/router"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	log.SetOutput(os.Stdout)

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using environment as-is")
	}

	cfg := config.Load()

	database, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	if err := db.Migrate(database); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}

	if cfg.Seed {
		if err := db.Seed(database); err != nil {
			log.WithError(err).Fatal("failed to seed database")
		}
		log.Info("database seeded")
	}

	r := router.NewRouter(database)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	go func() {
		log.WithField("addr", srv.Addr).Info("starting http server")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown")
	}

	if err := db.Close(database); err != nil {
		log.WithError(err).Error("closing database")
	}

	log.Info("server stopped")
}
