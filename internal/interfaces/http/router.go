package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ctcsistemas/compras-api/internal/application/auth"
	appdashboard "github.com/ctcsistemas/compras-api/internal/application/dashboard"
	"github.com/ctcsistemas/compras-api/internal/application/pedidos"
	"github.com/ctcsistemas/compras-api/internal/application/relatorios"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	PedidoUC    *pedidos.UseCase
	DashboardUC *appdashboard.UseCase
	RelatorioUC *relatorios.UseCase
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Gerar)

	// Pedidos (protegido)
	pedidosGroup := protected.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	pedidosGroup.Get("/", pedidoHandler.Listar)
	pedidosGroup.Post("/", pedidoHandler.Criar)
	pedidosGroup.Get("/opcoes", pedidoHandler.Opcoes)

	// Relatórios (protegido)
	relatoriosGroup := protected.Group("/relatorios")
	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC)
	relatoriosGroup.Get("/pedidos", relatorioHandler.Geral)
	relatoriosGroup.Get("/pedidos/pdf", relatorioHandler.GeralPDF)
	relatoriosGroup.Get("/equipamentos", relatorioHandler.Equipamentos)
	relatoriosGroup.Get("/equipamentos/pdf", relatorioHandler.EquipamentosPDF)

	// Usuários (protegido; gestão restrita a admin, troca de senha livre)
	usuariosGroup := protected.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.AuthUC)
	usuariosGroup.Post("/", RequireAdmin(), usuarioHandler.Criar)
	usuariosGroup.Get("/", RequireAdmin(), usuarioHandler.Listar)
	usuariosGroup.Put("/senha", usuarioHandler.AlterarSenha)
}
