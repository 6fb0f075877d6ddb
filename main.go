package main

import (
	"context"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/prompt-ops/backend/internal/client"
	"github.com/prompt-ops/backend/internal/config"
	"github.com/prompt-ops/backend/internal/db"
	"github.com/prompt-ops/backend/internal/handler"
	"github.com/prompt-ops/backend/internal/model"
	"github.com/prompt-ops/backend/internal/service"
)

// @title prompt-ops API
// @version 1.0
// @description Prompt version tracking, metrics and regression monitoring API
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// .env 파일이 있으면 로드 (없어도 무시)
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	// PostgreSQL 연결
	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("[Main] Failed to connect to postgres: %v", err)
	}
	defer pool.Close()
	store := &db.Postgres{Pool: pool}

	// 스키마 준비
	if err := store.EnsureVersionSchema(ctx); err != nil {
		log.Fatalf("[Main] Failed to ensure version schema: %v", err)
	}
	if err := store.EnsureMetricSchema(ctx); err != nil {
		log.Fatalf("[Main] Failed to ensure metric schema: %v", err)
	}
	if err := store.EnsureAnnotationSchema(ctx); err != nil {
		log.Fatalf("[Main] Failed to ensure annotation schema: %v", err)
	}
	if err := store.EnsureWebhookSchema(ctx); err != nil {
		log.Fatalf("[Main] Failed to ensure webhook schema: %v", err)
	}
	if err := store.EnsureEmbeddingSchema(ctx); err != nil {
		// pgvector 확장이 없는 환경에서도 나머지 기능은 동작해야 함
		log.Printf("[Main] Embedding schema unavailable, similar-search disabled: %v", err)
	}

	// 인증
	authService, err := service.NewAuthService(store, cfg.Auth)
	if err != nil {
		log.Fatalf("[Main] Failed to init auth service: %v", err)
	}
	if err := authService.EnsureSchema(ctx); err != nil {
		log.Fatalf("[Main] Failed to ensure auth schema: %v", err)
	}
	if err := authService.EnsureAdmin(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
		log.Fatalf("[Main] Failed to ensure admin user: %v", err)
	}

	ssoService, err := service.NewSSOService(ctx, cfg.OIDC)
	if err != nil {
		log.Fatalf("[Main] Failed to init SSO: %v", err)
	}
	if ssoService != nil {
		log.Printf("[Main] OIDC SSO enabled (issuer=%s)", cfg.OIDC.IssuerURL)
	}

	// 핵심 서비스
	versionService := service.NewVersionService(store)
	metricsService := service.NewMetricsService(store)
	diffService := service.NewDiffService(store)
	abTestService := service.NewABTestService(store)
	exportService := service.NewExportService(store, versionService)
	webhookService := service.NewWebhookService(store)

	// 회귀 감지 + 알림 전파
	monitor := service.NewRegressionMonitor(store, cfg.Monitor)

	slackClient := client.NewSlackClient(cfg.Slack.BotToken, cfg.Slack.ChannelID, cfg.Server.FrontendURL)
	if slackClient.IsConfigured() {
		monitor.OnAlert(func(alert model.RegressionAlert) {
			if err := slackClient.SendRegressionAlert(alert); err != nil {
				log.Printf("[Main] Slack alert failed: %v", err)
			}
		})
		log.Printf("[Main] Slack alerts enabled (channel=%s)", cfg.Slack.ChannelID)
	}

	deliveryService := service.NewWebhookDeliveryService(store, store)
	monitor.OnAlert(deliveryService.Deliver)

	// 임베딩 / Playground (AI_API_KEY 없으면 비활성)
	var embeddingService *service.EmbeddingService
	if embedClient, err := client.NewEmbeddingClient(cfg.GenAI); err != nil {
		log.Printf("[Main] Embedding disabled: %v", err)
	} else {
		embeddingService = service.NewEmbeddingService(store, embedClient)
		versionService.SetEmbedder(embeddingService)
	}

	var playgroundService *service.PlaygroundService
	if genaiClient, err := client.NewGenAIClient(cfg.GenAI); err != nil {
		log.Printf("[Main] Playground disabled: %v", err)
	} else {
		playgroundService = service.NewPlaygroundService(versionService, metricsService, genaiClient)
	}

	// 핸들러
	authHandler := handler.NewAuthHandler(authService, ssoService)
	versionHandler := handler.NewVersionHandler(versionService)
	metricsHandler := handler.NewMetricsHandler(metricsService)
	diffHandler := handler.NewDiffHandler(diffService)
	monitorHandler := handler.NewMonitorHandler(monitor, abTestService)
	exportHandler := handler.NewExportHandler(exportService)
	webhookHandler := handler.NewWebhookSettingsHandler(webhookService)

	// 라우터
	router := gin.Default()
	router.Use(handler.CORSMiddleware(strings.Split(cfg.Server.AllowedOrigins, ","), cfg.Server.AllowCredentials))

	router.GET("/", handler.Root)
	router.GET("/ping", handler.Ping)
	router.GET("/openapi.json", handler.OpenAPIDoc)

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/config", authHandler.Config)
		auth.GET("/sso/login", authHandler.SSOLogin)
		auth.GET("/sso/callback", authHandler.SSOCallback)
		auth.GET("/me", handler.AuthMiddleware(authService), authHandler.Me)
	}

	api := v1.Group("")
	api.Use(handler.AuthMiddleware(authService))
	{
		api.GET("/prompts", versionHandler.ListPrompts)
		api.POST("/versions", versionHandler.SaveVersion)
		api.GET("/prompts/:name/versions", versionHandler.ListVersions)
		api.GET("/prompts/:name/versions/:version", versionHandler.GetVersion)
		api.DELETE("/prompts/:name/versions/:version", versionHandler.DeleteVersion)
		api.POST("/prompts/:name/rollback", versionHandler.Rollback)
		api.GET("/prompts/:name/versions/:version/annotations", versionHandler.ListAnnotations)
		api.POST("/prompts/:name/versions/:version/annotations", versionHandler.Annotate)

		api.POST("/prompts/:name/versions/:version/metrics", metricsHandler.LogMetrics)
		api.GET("/prompts/:name/versions/:version/metrics", metricsHandler.ListMetrics)
		api.GET("/prompts/:name/versions/:version/metrics/summary", metricsHandler.GetSummary)
		api.GET("/prompts/:name/compare", metricsHandler.Compare)

		api.GET("/prompts/:name/diff", diffHandler.Diff)
		api.GET("/prompts/:name/abtest", monitorHandler.ABTest)
		api.POST("/monitor/check", monitorHandler.CheckRegression)

		api.GET("/prompts/:name/export", exportHandler.Export)
		api.GET("/export", exportHandler.ExportAll)
		api.POST("/prompts/import", exportHandler.Import)

		api.GET("/settings/webhooks", webhookHandler.ListWebhookConfigs)
		api.GET("/settings/webhooks/:id", webhookHandler.GetWebhookConfig)
		api.POST("/settings/webhooks", webhookHandler.CreateWebhookConfig)
		api.PUT("/settings/webhooks/:id", webhookHandler.UpdateWebhookConfig)
		api.DELETE("/settings/webhooks/:id", webhookHandler.DeleteWebhookConfig)

		if embeddingService != nil {
			embeddingHandler := handler.NewEmbeddingHandler(embeddingService)
			api.GET("/search/similar", embeddingHandler.SearchSimilar)
		}
		if playgroundService != nil {
			playgroundHandler := handler.NewPlaygroundHandler(playgroundService)
			api.POST("/playground/run", playgroundHandler.Run)
		}
	}

	log.Printf("[Main] Listening on :%s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("[Main] Server stopped: %v", err)
	}
}
