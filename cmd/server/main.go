package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"polyfaq/backend/internal/cache"
	"polyfaq/backend/internal/config"
	"polyfaq/backend/internal/db"
	"polyfaq/backend/internal/handler"
	transport "polyfaq/backend/internal/http"
	"polyfaq/backend/internal/logger"
	"polyfaq/backend/internal/repository"
	"polyfaq/backend/internal/service"
	"polyfaq/backend/internal/snowflake"
	"polyfaq/backend/internal/translate"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(1); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	pageCache, err := cache.NewRedisCache(cfg.RedisURL, "")
	if err != nil {
		log.Fatalf("connect redis: %v", err)
	}
	defer pageCache.Close()

	// A missing or misconfigured provider is not fatal: the synthesizer
	// degrades to returning source text.
	provider, err := translate.NewProvider(translate.Config{
		Provider: cfg.AI.Provider,
		APIKey:   cfg.AI.APIKey,
		BaseURL:  cfg.AI.BaseURL,
		Model:    cfg.AI.Model,
		QPS:      cfg.AI.QPS,
	})
	if err != nil {
		logger.Warn("translation provider unavailable, serving source text", "module", "main", "action", "init", "resource", "provider", "result", "fallback", "error", err)
		provider = nil
	}
	synth := translate.NewSynthesizer(provider, translate.NewRateLimiter(cfg.AI.QPS))

	faqRepo := repository.NewFAQRepository(dbConn)
	translationRepo := repository.NewTranslationRepository(dbConn)

	faqService := service.NewFAQService(faqRepo, translationRepo, pageCache, synth, cfg.Languages, cfg.CacheTTL)

	faqHandler := handler.NewFAQHandler(faqService)
	router := transport.NewRouter(faqHandler)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		_ = pageCache.Close()
		_ = dbConn.Close()
		os.Exit(0)
	}()

	if err := router.Start(cfg.Addr); err != nil {
		log.Fatalf("start server: %v", err)
	}
}
