package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/youruser/deckapp/internal/api"
	"github.com/youruser/deckapp/internal/cards"
	"github.com/youruser/deckapp/internal/config"
	imagepkg "github.com/youruser/deckapp/internal/image"
	"github.com/youruser/deckapp/internal/util"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := util.NewLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Serve with empty data rather than not at all.
	repo, err := cards.Load(ctx, cfg.DataPath, logger)
	if err != nil {
		logger.Warn("failed to load cards at startup", "path", cfg.DataPath, "error", err)
	}

	srv := api.NewServer(repo, api.Options{
		PerPage: cfg.PerPage,
		ArtURL:  cfg.ArtURL,
		Sheet:   imagepkg.SheetOptions{TileWidth: cfg.Image.TileWidth, QRSize: cfg.Image.QRSize},
		QRSize:  cfg.Image.QRSize,
		Logger:  logger,
	})

	if cfg.WatchData {
		go func() {
			if err := cards.Watch(ctx, cfg.DataPath, logger, srv.SetRepository); err != nil {
				logger.Warn("card data watcher stopped", "error", err)
			}
		}()
	}

	r := gin.Default()
	srv.RegisterRoutes(r)

	httpSrv := &http.Server{Addr: ":" + strconv.Itoa(cfg.Port), Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	logger.Info("starting server", "addr", "http://localhost:"+strconv.Itoa(cfg.Port))
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
