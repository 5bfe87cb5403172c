package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ctcsistemas/compras-api/internal/application/dto"
	"github.com/ctcsistemas/compras-api/internal/application/pedidos"
	"github.com/ctcsistemas/compras-api/internal/domain"
)

// PedidoHandler trata listagem e cadastro de pedidos (protegido).
type PedidoHandler struct {
	uc *pedidos.UseCase
}

// NewPedidoHandler constrói o handler de pedidos.
func NewPedidoHandler(uc *pedidos.UseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar pedidos
// @Description  Pedidos mais recentes primeiro, filtrados por TAGs e status.
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        tags    query  []string  false  "TAGs (parâmetro repetido)"  collectionFormat(multi)
// @Param        status  query  string    false  "Status do pedido"
// @Success      200  {object}  dto.ListaPedidosResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/pedidos [get]
func (h *PedidoHandler) Listar(c *fiber.Ctx) error {
	in := pedidos.FiltroListagem{
		Tags:   queryMulti(c, "tags"),
		Status: c.Query("status"),
	}
	out, err := h.uc.Listar(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Criar godoc
// @Summary      Cadastrar pedido
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarPedidoRequest  true  "tag e descricao_itens obrigatórios; datas DD/MM/YYYY ou YYYY-MM-DD; valor no formato brasileiro"
// @Success      201   {object}  dto.PedidoDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/pedidos [post]
func (h *PedidoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarPedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	pedido, err := h.uc.Criar(c.Context(), in)
	if err != nil {
		if err == domain.ErrCamposObrigatorios {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tag e descrição dos itens são obrigatórios"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(pedido)
}

// Opcoes godoc
// @Summary      Opções dos filtros de pedidos
// @Description  Listas distintas de status e TAGs canônicos para os selects.
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OpcoesPedidosResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/pedidos/opcoes [get]
func (h *PedidoHandler) Opcoes(c *fiber.Ctx) error {
	out, err := h.uc.Opcoes(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// queryMulti lê um parâmetro de query repetido (?tags=a&tags=b).
func queryMulti(c *fiber.Ctx, chave string) []string {
	valores := c.Context().QueryArgs().PeekMulti(chave)
	out := make([]string, 0, len(valores))
	for _, v := range valores {
		out = append(out, string(v))
	}
	return out
}
