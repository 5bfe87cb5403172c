package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ctcsistemas/compras-api/internal/application/auth"
	appdashboard "github.com/ctcsistemas/compras-api/internal/application/dashboard"
	"github.com/ctcsistemas/compras-api/internal/application/pedidos"
	"github.com/ctcsistemas/compras-api/internal/application/relatorios"
	infrapdf "github.com/ctcsistemas/compras-api/internal/infrastructure/pdf"
	"github.com/ctcsistemas/compras-api/internal/infrastructure/postgres"
	httpRouter "github.com/ctcsistemas/compras-api/internal/interfaces/http"
	"github.com/ctcsistemas/compras-api/pkg/config"
	"github.com/ctcsistemas/compras-api/pkg/logger"
)

// @title        Compras API
// @version      1.0
// @description  API de acompanhamento de pedidos de compra (SC/PC): painel filtrado, cadastro e listagem de pedidos, relatórios em PDF e carga única de planilha.
// @BasePath     /

// @securityDefinitions.apikey Bearer
// @in                         header
// @name                       Authorization
// @description                Informe "Bearer <token>" com o token obtido em /api/auth/login.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrar(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migrações do banco")
		}
	}

	pedidoRepo := postgres.NewPedidoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)

	authUC := auth.NewUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	pedidoUC := pedidos.NewUseCase(pedidoRepo)
	dashboardUC := appdashboard.NewUseCase(pedidoRepo)

	// PDF: relatório geral e relatório por equipamento (TAG)
	gerador := infrapdf.NewGeradorMaroto()
	relatorioUC := relatorios.NewUseCase(pedidoRepo, gerador, cfg.Empresa.Nome)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Compras API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		PedidoUC:    pedidoUC,
		DashboardUC: dashboardUC,
		RelatorioUC: relatorioUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
