package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "cabreport/internal/config"
	router "cabreport/internal/http"
	"cabreport/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	env := intconfig.LoadEnv()
	intconfig.SetLogLevel(env.LogLevel)
	logger := intconfig.GetLogger()

	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	audit := openAudit(env)
	defer intconfig.CloseDB()

	r := router.NewRouter(env, audit)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.WithFields(logrus.Fields{"addr": env.AppAddr, "company": env.CompanyName}).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
		return
	}
	logger.Info("server stopped")
}

// openAudit connects the optional upload audit store. Any failure leaves
// auditing off; the dashboard itself never needs the database.
func openAudit(env intconfig.Env) *repositories.UploadAuditRepository {
	if !env.AuditEnabled() {
		intconfig.GetLogger().Info("DB_DSN not set, upload audit disabled")
		return nil
	}
	db, err := intconfig.ConnectDB(env.DBDSN)
	if err != nil {
		intconfig.LogError(intconfig.GetLogger(), "main", "openAudit", "connect audit database", nil, err)
		return nil
	}

	repo := &repositories.UploadAuditRepository{DB: db}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repo.EnsureSchema(ctx); err != nil {
		intconfig.LogError(intconfig.GetLogger(), "main", "openAudit", "ensure audit schema", nil, err)
		return nil
	}
	return repo
}
