package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/shared/infrastructure/config"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/shared/infrastructure/db"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/shared/infrastructure/metrics"

	shiftUseCase "github.com/11mayycon/rodil-stock-flow-sub000/src/shift/application/usecase"
	shiftCache "github.com/11mayycon/rodil-stock-flow-sub000/src/shift/infrastructure/cache"
	shiftController "github.com/11mayycon/rodil-stock-flow-sub000/src/shift/infrastructure/controller"
	shiftPersistence "github.com/11mayycon/rodil-stock-flow-sub000/src/shift/infrastructure/persistence"

	inventoryController "github.com/11mayycon/rodil-stock-flow-sub000/src/inventory/infrastructure/controller"
	inventoryPersistence "github.com/11mayycon/rodil-stock-flow-sub000/src/inventory/infrastructure/persistence"

	syncUseCase "github.com/11mayycon/rodil-stock-flow-sub000/src/sync/application/usecase"
	syncClient "github.com/11mayycon/rodil-stock-flow-sub000/src/sync/infrastructure/client"
	syncController "github.com/11mayycon/rodil-stock-flow-sub000/src/sync/infrastructure/controller"
	syncPersistence "github.com/11mayycon/rodil-stock-flow-sub000/src/sync/infrastructure/persistence"
	syncScheduler "github.com/11mayycon/rodil-stock-flow-sub000/src/sync/infrastructure/scheduler"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	log.Println("🚀 POSTO RODOIL - Backend - Iniciando...")

	cfg := config.Load()

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if cfg.PrometheusEnabled {
		log.Println("Registrando endpoint /metrics")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Métricas Prometheus desabilitadas")
	}

	// Conexão única com o Postgres hospedado, injetada em todos os
	// repositórios; o ciclo de vida pertence ao main.
	log.Printf("Conectando ao banco: %s:%s/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)
	conn, err := db.Open(cfg.ConnString())
	if err != nil {
		log.Printf("⚠️  Aviso: erro conectando ao banco: %v", err)
		log.Println("⚠️  Continuando sem DB (somente health check)")
		conn = nil
	} else {
		defer conn.Close()
		log.Println("✅ Conexão com o banco estabelecida")

		if err := db.Migrate(conn); err != nil {
			log.Fatalf("❌ Erro executando migrações: %v", err)
		}
		log.Println("✅ Migrações aplicadas")
	}

	// Health checks (liveness, sem efeitos colaterais)
	healthHandler := func(ctx *gin.Context) {
		status := "ok"
		if conn == nil {
			status = "degraded"
		}
		ctx.JSON(200, gin.H{"status": status})
	}
	router.GET("/health", healthHandler)

	v1 := router.Group("/api/v1")
	v1.GET("/health", healthHandler)

	if conn != nil {
		syncMetrics := metrics.NewSyncMetrics()

		setupShiftModule(v1, conn)
		setupInventoryModule(v1, conn)
		sweeper := setupSyncModule(v1, conn, cfg, syncMetrics)

		sweeper.Start(context.Background())
		defer sweeper.Stop()
	} else {
		log.Println("⚠️  Módulos de negócio desabilitados (sem conexão com o banco)")
	}

	log.Printf("✅ Servidor iniciado em http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Erro no servidor HTTP: %v", err)
	}
}

// setupShiftModule configura o módulo de turnos
func setupShiftModule(router *gin.RouterGroup, conn *sql.DB) {
	log.Println("Configurando módulo Turno...")

	pmCache := shiftCache.NewPaymentMethodCache()
	if err := pmCache.LoadFromDB(conn); err != nil {
		log.Println("⚠️  Relatórios de fechamento usarão os códigos crus das formas de pagamento")
	}

	shiftRepo := shiftPersistence.NewShiftPostgresRepository(conn)
	saleRepo := shiftPersistence.NewSalePostgresRepository(conn)
	closureRepo := shiftPersistence.NewClosurePostgresRepository(conn)

	openShiftUC := shiftUseCase.NewOpenShiftUseCase(shiftRepo)
	closeShiftUC := shiftUseCase.NewCloseShiftUseCase(shiftRepo, saleRepo, closureRepo, pmCache)
	listClosuresUC := shiftUseCase.NewListClosuresUseCase(closureRepo)

	ctrl := shiftController.NewShiftController(openShiftUC, closeShiftUC, listClosuresUC)
	ctrl.RegisterRoutes(router)

	log.Println("Módulo Turno configurado")
}

// setupInventoryModule configura o módulo de estoque
func setupInventoryModule(router *gin.RouterGroup, conn *sql.DB) {
	log.Println("Configurando módulo Estoque...")

	productRepo := inventoryPersistence.NewProductPostgresRepository(conn)

	ctrl := inventoryController.NewProductController(productRepo)
	ctrl.RegisterRoutes(router)

	log.Println("Módulo Estoque configurado")
}

// setupSyncModule configura o bridge Linx e devolve o agendador da
// varredura, pronto para Start.
func setupSyncModule(router *gin.RouterGroup, conn *sql.DB, cfg config.Config, m *metrics.SyncMetrics) *syncScheduler.SweepScheduler {
	log.Println("Configurando módulo Sync (bridge Linx)...")

	linxClient := syncClient.NewLinxClient(cfg.LinxBaseURL, cfg.LinxSalePath, cfg.LinxTimeout)
	pendingRepo := syncPersistence.NewPendingSyncPostgresRepository(conn)
	auditRepo := syncPersistence.NewSyncAuditPostgresRepository(conn)
	productRepo := inventoryPersistence.NewProductPostgresRepository(conn)

	sendSaleUC := syncUseCase.NewSendSaleUseCase(linxClient, pendingRepo, auditRepo, cfg.SyncMaxAttempts, m)
	retrySweepUC := syncUseCase.NewRetrySweepUseCase(linxClient, pendingRepo, auditRepo, cfg.SyncBackoffUnit, m)
	inboundBatchUC := syncUseCase.NewInboundBatchUseCase(productRepo, auditRepo, m)
	syncStatusUC := syncUseCase.NewSyncStatusUseCase(pendingRepo, cfg.SyncMaxAttempts, cfg.SyncBackoffUnit, cfg.SweepInterval)

	ctrl := syncController.NewSyncController(sendSaleUC, inboundBatchUC, syncStatusUC)
	ctrl.RegisterRoutes(router)

	log.Println("Módulo Sync configurado")

	return syncScheduler.NewSweepScheduler(retrySweepUC, cfg.SweepInterval)
}
