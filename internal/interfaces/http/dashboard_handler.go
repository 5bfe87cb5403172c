package http

import (
	"github.com/gofiber/fiber/v2"

	appdashboard "github.com/ctcsistemas/compras-api/internal/application/dashboard"
	"github.com/ctcsistemas/compras-api/internal/application/dto"
)

// DashboardHandler trata o endpoint do painel.
type DashboardHandler struct {
	uc *appdashboard.UseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *appdashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Gerar godoc
// @Summary      Painel de pedidos
// @Description  Totais do conjunto filtrado, quebra por status, cartões fixos,
// @Description  pedidos recentes e top de gasto por equipamento. Sem nenhum
// @Description  parâmetro aplica a janela dos últimos 30 dias; com qualquer
// @Description  parâmetro presente vale só o que veio preenchido.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        data_inicio  query  string  false  "Data inicial (YYYY-MM-DD)"
// @Param        data_fim     query  string  false  "Data final (YYYY-MM-DD)"
// @Param        obra         query  string  false  "Obra (igualdade exata)"
// @Param        veiculo      query  string  false  "Equipamento (igualdade exata)"
// @Param        tag          query  string  false  "TAG (forma canônica)"
// @Success      200  {object}  dto.DashboardResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Gerar(c *fiber.Ctx) error {
	in := appdashboard.Filtros{
		DataInicio:    c.Query("data_inicio"),
		DataFim:       c.Query("data_fim"),
		Obra:          c.Query("obra"),
		Veiculo:       c.Query("veiculo"),
		Tag:           c.Query("tag"),
		TemParametros: c.Context().QueryArgs().Len() > 0,
	}

	out, err := h.uc.Gerar(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	return c.JSON(out)
}
