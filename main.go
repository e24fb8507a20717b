package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xiaot623/gogo/agent/internal/adapter/llm"
	"github.com/xiaot623/gogo/agent/internal/adapter/publicip"
	"github.com/xiaot623/gogo/agent/internal/agent"
	"github.com/xiaot623/gogo/agent/internal/config"
	"github.com/xiaot623/gogo/agent/internal/logger"
	"github.com/xiaot623/gogo/agent/internal/repository"
	"github.com/xiaot623/gogo/agent/internal/service"
	handler "github.com/xiaot623/gogo/agent/internal/transport/http"
	"github.com/xiaot623/gogo/agent/internal/transport/ws"
	"github.com/xiaot623/gogo/agent/policy"
)

// @title Agent API
// @version 1.0
// @description Task-executing agent backed by a language-model provider

// @BasePath /
// @schemes http

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("Failed to load config: %v", err)
	}
	logger.SetLevel(cfg.LogLevel)
	logger.SetFormat(cfg.LogFormat)

	ctx := context.Background()

	if cfg.Agent.PublicIP == config.PublicIPAuto {
		cfg.Agent.PublicIP = discoverPublicIP(ctx, cfg.PublicIPURL)
	}

	logger.Log.Info("Starting agent...")
	logger.Log.Infof("Agent ID: %s", cfg.Agent.AgentID)
	logger.Log.Infof("Framework: %s", cfg.Agent.Framework)
	logger.Log.Infof("LLM: %s/%s", cfg.Agent.LLMProvider, cfg.Agent.LLMModel)
	logger.Log.Infof("HTTP Port: %d", cfg.HTTPPort)

	// Initialize agent
	a, err := agent.New(cfg.Agent, clientFactory(cfg))
	if err != nil {
		logger.Log.Fatalf("Failed to initialize agent: %v", err)
	}
	if err := agent.Failure(a); err != nil {
		logger.Log.Fatalf("Agent framework %q is unavailable: %v", cfg.Agent.Framework, err)
	}

	// Initialize task journal
	var journal store.Store
	if cfg.JournalDSN != "" {
		db, err := store.NewSQLiteStore(cfg.JournalDSN)
		if err != nil {
			logger.Log.Fatalf("Failed to initialize task journal: %v", err)
		}
		defer db.Close()
		journal = db
		logger.Log.Infof("Task journal: %s", cfg.JournalDSN)
	}

	// Initialize policy engine
	policyEngine, err := policy.NewEngineFromFile(ctx, cfg.PolicyFile)
	if err != nil {
		logger.Log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Initialize service
	svc := service.New(a, journal, policyEngine)

	// Create server
	wsServer := ws.NewServer(cfg, svc)
	e := handler.NewServer(svc, wsServer)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	logger.Log.Infof("Agent API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down agent...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("Failed to shutdown server gracefully: %v", err)
	}

	logger.Log.Info("Agent stopped")
}

// clientFactory binds provider credentials from cfg into an agent.ClientFactory.
func clientFactory(cfg *config.Config) agent.ClientFactory {
	return func(provider, model string) (llm.ChatClient, error) {
		return llm.NewChatClient(llm.Options{
			Provider:           provider,
			Model:              model,
			Mode:               cfg.Mode,
			OpenAIAPIKey:       cfg.OpenAIAPIKey,
			OpenAIBaseURL:      cfg.OpenAIBaseURL,
			AnthropicAPIKey:    cfg.AnthropicAPIKey,
			AnthropicMaxTokens: cfg.AnthropicMaxTokens,
			OllamaBaseURL:      cfg.OllamaBaseURL,
			Timeout:            cfg.LLMTimeout,
		})
	}
}

func discoverPublicIP(ctx context.Context, url string) string {
	ip, err := publicip.NewClient(url).Lookup(ctx)
	if err != nil {
		logger.Log.Warnf("Public IP discovery failed, falling back to 127.0.0.1: %v", err)
		return "127.0.0.1"
	}
	logger.Log.Infof("Discovered public IP: %s", ip)
	return ip
}
