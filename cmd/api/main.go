package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/AB-bunny178/mindease-chatbot/backend/internal/analysis/mood"
	"github.com/AB-bunny178/mindease-chatbot/backend/internal/config"
	"github.com/AB-bunny178/mindease-chatbot/backend/internal/handler"
	"github.com/AB-bunny178/mindease-chatbot/backend/internal/repository/sqlite"
	"github.com/AB-bunny178/mindease-chatbot/backend/internal/service/ai"
	"github.com/AB-bunny178/mindease-chatbot/backend/internal/service/chat"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Warn("failed to load .env file, continuing with system environment only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	chatLog := sqlite.NewChatLog(cfg.Storage.Path)
	if cfg.Storage.LazyInit() {
		log.Info("lazy init mode: storage schema is created via POST /init")
	} else {
		if err := chatLog.Initialize(ctx); err != nil {
			log.WithError(err).Fatal("failed to initialize chat log")
		}
		log.WithField("path", cfg.Storage.Path).Info("chat log initialized")
	}

	responder := ai.NewService(newGenerator(ctx, cfg.AI, log), log)
	analyzer := mood.NewAnalyzer(nil)
	chatSvc := chat.NewService(chatLog, analyzer, responder, log)

	router := handler.NewRouter(chatSvc, cfg.Storage.LazyInit())

	startServer(ctx, cfg.Server, router, log)
}

// newGenerator builds the configured provider. A nil result degrades replies
// to the fixed missing-credential message instead of failing requests.
func newGenerator(ctx context.Context, cfg config.AIConfig, log *logrus.Logger) ai.Generator {
	if !cfg.Enabled() {
		log.Warn("no generative AI credential configured, replies will be degraded")
		return nil
	}

	switch cfg.Provider {
	case config.ProviderArk:
		chatModel, err := cfg.Ark.NewChatModel(ctx)
		if err != nil {
			log.WithError(err).Warn("failed to create ark chat model, replies will be degraded")
			return nil
		}
		gen, err := ai.NewArkGenerator(ctx, chatModel)
		if err != nil {
			log.WithError(err).Warn("failed to build ark generator, replies will be degraded")
			return nil
		}
		log.WithField("model", cfg.Ark.Model).Info("ark generator initialized")
		return gen
	default:
		gen, err := ai.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.WithError(err).Warn("failed to create gemini client, replies will be degraded")
			return nil
		}
		log.WithField("model", cfg.GeminiModel).Info("gemini generator initialized")
		return gen
	}
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler, log *logrus.Logger) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.WithField("addr", serverCfg.Addr).Info("MindEase backend listening")
	if err := runServer(ctx, srv); err != nil {
		log.WithError(err).Fatal("server error")
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
