package main

import (
	"log"
	"time"

	"github.com/mfluker/aod-onboarding-pdf/config"
	"github.com/mfluker/aod-onboarding-pdf/repositories"
	"github.com/mfluker/aod-onboarding-pdf/routes"
	"github.com/mfluker/aod-onboarding-pdf/services"
	"github.com/mfluker/aod-onboarding-pdf/utils/redislog"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1) Load config from file and/or env.
	cfg := config.Load()
	log.Printf("[boot] %s starting in %s on :%s", cfg.AppName, cfg.Env, cfg.HTTPPort)

	// 2) Initialize infrastructure: the converter must resolve at boot
	//    (operator error, not something to discover on the first request),
	//    Redis is an optional log sink.
	conv := config.InitConverter(cfg)
	rdb := config.InitRedis(cfg) // nil when redis_addr is empty

	// 3) Build the Redis logger (list key: logs:onboarding).
	rlog := redislog.New(rdb, "logs:onboarding", 1000, 7*24*time.Hour)
	rlog.Info("app boot", map[string]string{
		"env":       cfg.Env,
		"port":      cfg.HTTPPort,
		"converter": cfg.ConverterBin,
	})

	// 4) Construct repositories and services (dependency injection).
	repo := repositories.NewTemplateRepository()
	svc := services.NewOnboardingService(repo, conv, cfg.EmailDomain, rlog)

	// 5) Create Gin engine and wire routes.
	r := gin.New() // bare engine, middlewares attached in routes.Setup

	// trust none (safe default)
	_ = r.SetTrustedProxies(nil)
	routes.Setup(r, svc, cfg.Env, conv.Available)

	// 6) Start HTTP server on configured port; fatal if it fails to bind.
	rlog.Info("http server start", map[string]string{"port": cfg.HTTPPort})
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		rlog.Error("http server error", map[string]string{"err": err.Error()})
		log.Fatal(err)
	}
}
