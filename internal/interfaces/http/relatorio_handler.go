package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ctcsistemas/compras-api/internal/application/dto"
	"github.com/ctcsistemas/compras-api/internal/application/relatorios"
)

// RelatorioHandler trata os relatórios em JSON e as exportações em PDF.
type RelatorioHandler struct {
	uc *relatorios.UseCase
}

// NewRelatorioHandler constrói o handler de relatórios.
func NewRelatorioHandler(uc *relatorios.UseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// Geral godoc
// @Summary      Relatório geral de pedidos
// @Description  Linhas ordenadas por data da SC (mais recente primeiro) e
// @Description  equipamento, com total geral e resumo por status.
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        data_inicio  query  string    false  "Data inicial (YYYY-MM-DD)"
// @Param        data_fim     query  string    false  "Data final (YYYY-MM-DD)"
// @Param        status       query  string    false  "Status do pedido"
// @Param        fornecedor   query  string    false  "Trecho do nome do fornecedor"
// @Param        obra         query  string    false  "Trecho do nome da obra"
// @Param        tags         query  []string  false  "TAGs (parâmetro repetido)"  collectionFormat(multi)
// @Success      200  {object}  dto.RelatorioPedidosResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/relatorios/pedidos [get]
func (h *RelatorioHandler) Geral(c *fiber.Ctx) error {
	out, err := h.uc.Geral(c.Context(), filtrosGerais(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GeralPDF godoc
// @Summary      Relatório geral de pedidos em PDF
// @Description  Mesmos filtros do relatório geral; devolve o arquivo para download.
// @Tags         relatorios
// @Security     Bearer
// @Produce      application/pdf
// @Param        data_inicio  query  string    false  "Data inicial (YYYY-MM-DD)"
// @Param        data_fim     query  string    false  "Data final (YYYY-MM-DD)"
// @Param        status       query  string    false  "Status do pedido"
// @Param        fornecedor   query  string    false  "Trecho do nome do fornecedor"
// @Param        obra         query  string    false  "Trecho do nome da obra"
// @Param        tags         query  []string  false  "TAGs (parâmetro repetido)"  collectionFormat(multi)
// @Success      200  {file}    file
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/relatorios/pedidos/pdf [get]
func (h *RelatorioHandler) GeralPDF(c *fiber.Ctx) error {
	conteudo, nome, err := h.uc.GeralPDF(c.Context(), filtrosGerais(c), GetUsername(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return enviarPDF(c, conteudo, nome)
}

// Equipamentos godoc
// @Summary      Relatório por equipamento (TAG)
// @Description  Pedidos agrupados por TAG, com total por grupo e total geral.
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        tags    query  []string  false  "TAGs (parâmetro repetido)"  collectionFormat(multi)
// @Param        tag     query  string    false  "Trecho de TAG (vale só sem tags)"
// @Param        status  query  string    false  "Status do pedido"
// @Success      200  {object}  dto.RelatorioEquipamentosResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/relatorios/equipamentos [get]
func (h *RelatorioHandler) Equipamentos(c *fiber.Ctx) error {
	out, err := h.uc.Equipamentos(c.Context(), filtrosEquipamentos(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// EquipamentosPDF godoc
// @Summary      Relatório por equipamento em PDF
// @Description  Mesmos filtros do relatório por equipamento; devolve o arquivo para download.
// @Tags         relatorios
// @Security     Bearer
// @Produce      application/pdf
// @Param        tags    query  []string  false  "TAGs (parâmetro repetido)"  collectionFormat(multi)
// @Param        tag     query  string    false  "Trecho de TAG (vale só sem tags)"
// @Param        status  query  string    false  "Status do pedido"
// @Success      200  {file}    file
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/relatorios/equipamentos/pdf [get]
func (h *RelatorioHandler) EquipamentosPDF(c *fiber.Ctx) error {
	conteudo, nome, err := h.uc.EquipamentosPDF(c.Context(), filtrosEquipamentos(c), GetUsername(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return enviarPDF(c, conteudo, nome)
}

func filtrosGerais(c *fiber.Ctx) relatorios.FiltrosGerais {
	return relatorios.FiltrosGerais{
		DataInicio: c.Query("data_inicio"),
		DataFim:    c.Query("data_fim"),
		Status:     c.Query("status"),
		Fornecedor: c.Query("fornecedor"),
		Obra:       c.Query("obra"),
		Tags:       queryMulti(c, "tags"),
	}
}

func filtrosEquipamentos(c *fiber.Ctx) relatorios.FiltrosEquipamentos {
	return relatorios.FiltrosEquipamentos{
		Tags:   queryMulti(c, "tags"),
		Tag:    c.Query("tag"),
		Status: c.Query("status"),
	}
}

// enviarPDF responde o arquivo como download com o nome sugerido.
func enviarPDF(c *fiber.Ctx, conteudo []byte, nome string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nome+`"`)
	return c.Send(conteudo)
}
