package main

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"learnhub/config"
	"learnhub/db"
	"learnhub/logger"
	"learnhub/router"
	"learnhub/tools"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(func(conf config.Configuration, log *logger.Logger, database *gorm.DB) error {
			log.Info("schema is up to date")
			return nil
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all data with the sample categories, user and prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(func(conf config.Configuration, log *logger.Logger, database *gorm.DB) error {
			if err := db.Seed(database); err != nil {
				return err
			}
			log.Info("seed data loaded")
			return nil
		})
	},
}

// withDatabase loads configuration, connects (which applies the schema) and
// runs fn.
func withDatabase(fn func(config.Configuration, *logger.Logger, *gorm.DB) error) error {
	conf, err := config.Get(cfgFile)
	if err != nil {
		return err
	}
	log, err := logger.New(conf.LogMode)
	if err != nil {
		return err
	}
	defer log.Sync()

	database, err := db.Connect(conf, log)
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(conf, log, database)
}

func runServe(cmd *cobra.Command, args []string) error {
	return withDatabase(func(conf config.Configuration, log *logger.Logger, database *gorm.DB) error {
		return serve(cmd.Context(), conf, log, database)
	})
}

func serve(ctx context.Context, conf config.Configuration, log *logger.Logger, database *gorm.DB) error {
	if isProd(conf.LogMode) {
		gin.SetMode(gin.ReleaseMode)
	}

	if conf.OpenAI.Enabled() {
		log.Info("lesson generation enabled", "model", conf.OpenAI.Model, "base_url", conf.OpenAI.BaseURL)
	} else {
		log.Warn("no OpenAI API key configured, lessons use the built-in template")
	}

	r := gin.New()
	router.Initialize(r, router.Dependencies{
		DB:        database,
		Generator: tools.NewLessonGenerator(conf.OpenAI, log),
		Config:    conf,
		Log:       log,
	})

	srv := &http.Server{
		Addr:              ":" + conf.ApiPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "port", conf.ApiPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func isProd(mode string) bool {
	mode = strings.ToLower(mode)
	return mode == "prod" || mode == "production"
}
