package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"rev-chat-relay/config"
	_ "rev-chat-relay/docs" // Swagger docs
	chatUC "rev-chat-relay/internal/chat/usecase"
	"rev-chat-relay/internal/httpserver"
	"rev-chat-relay/internal/session"
	"rev-chat-relay/pkg/gemini"
	"rev-chat-relay/pkg/log"
)

// @title       Rev Chat Relay API
// @description Realtime chat relay between browser clients and Gemini.
// @version     1
// @host        localhost:3000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Rev chat relay...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Gemini client
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey,
		gemini.WithModel(cfg.Gemini.Model),
		gemini.WithAPIURL(cfg.Gemini.APIURL),
	)
	if geminiClient.Configured() {
		logger.Infof(ctx, "Gemini API key configured, model %s", geminiClient.Model())
	} else {
		logger.Warnf(ctx, "GEMINI_API_KEY is missing or a placeholder; messages will fail until it is set (model %s)", geminiClient.Model())
	}

	// 4. Sessions & usecase
	sessionCfg := session.RegistryConfig{
		MaxSessions: cfg.Session.MaxSessions,
		IdleTTL:     cfg.Session.IdleTTL,
		MaxTurns:    cfg.Chat.MaxTurns,
	}
	uc := chatUC.New(logger, geminiClient, chatUC.Config{
		SystemInstruction: cfg.Chat.SystemInstruction,
		Timeout:           cfg.Gemini.Timeout,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		StaticDir:      cfg.HTTPServer.StaticDir,
		AllowedOrigins: cfg.HTTPServer.AllowedOrigins,
		ChatUseCase:    uc,
		SocketSessions: session.NewRegistry(logger, sessionCfg),
		HTTPSessions:   session.NewRegistry(logger, sessionCfg),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
