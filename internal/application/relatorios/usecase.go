// Package relatorios monta o relatório geral de pedidos e o relatório por
// equipamento (TAG), em JSON e em PDF. A consulta canonicaliza TAG e status;
// a apresentação preserva o texto gravado, com os rótulos sintéticos
// "SEM TAG"/"SEM STATUS" para valores em branco.
package relatorios

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ctcsistemas/compras-api/internal/application/dto"
	"github.com/ctcsistemas/compras-api/internal/domain/entity"
	"github.com/ctcsistemas/compras-api/internal/domain/normalizar"
	"github.com/ctcsistemas/compras-api/internal/domain/relatorio"
	"github.com/ctcsistemas/compras-api/internal/domain/repository"
)

// responsavelVazio aparece no PDF quando o token não traz username.
const responsavelVazio = "________________"

// FiltrosGerais entrada crua do relatório geral, como chegou na URL.
type FiltrosGerais struct {
	DataInicio string
	DataFim    string
	Status     string
	Fornecedor string
	Obra       string
	Tags       []string
}

// FiltrosEquipamentos entrada crua do relatório por equipamento.
type FiltrosEquipamentos struct {
	Tags   []string
	Tag    string // busca por trecho de TAG, usada só quando Tags vem vazio
	Status string
}

// UseCase casos de uso dos relatórios.
type UseCase struct {
	pedidos repository.PedidoRepository
	gerador GeradorRelatorioPDF
	empresa string
}

// NewUseCase constrói o caso de uso de relatórios. empresa é o nome exibido
// no cabeçalho dos PDFs.
func NewUseCase(pedidos repository.PedidoRepository, gerador GeradorRelatorioPDF, empresa string) *UseCase {
	return &UseCase{pedidos: pedidos, gerador: gerador, empresa: empresa}
}

// ── relatório geral ───────────────────────────────────────────────────────────

// Geral devolve o relatório geral em JSON: linhas ordenadas por data da SC
// (mais recente primeiro) e nome do equipamento, total geral e resumo por
// status.
func (uc *UseCase) Geral(ctx context.Context, in FiltrosGerais) (*dto.RelatorioPedidosResponse, error) {
	filtros, f := uc.filtroGeral(in)

	linhas, err := uc.pedidos.ListarPorDataSC(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("relatorios: geral: %w", err)
	}

	return &dto.RelatorioPedidosResponse{
		Filtros:      filtros,
		Pedidos:      paraLinhasRelatorio(linhas),
		TotalGeral:   relatorio.TotalGeral(linhas),
		ResumoStatus: paraResumoStatus(relatorio.ResumoPorStatus(linhas)),
	}, nil
}

// GeralPDF gera o PDF do relatório geral. responsavel vem do token da
// requisição e é impresso no cabeçalho.
func (uc *UseCase) GeralPDF(ctx context.Context, in FiltrosGerais, responsavel string) ([]byte, string, error) {
	filtros, f := uc.filtroGeral(in)

	linhas, err := uc.pedidos.ListarPorDataSC(ctx, f)
	if err != nil {
		return nil, "", fmt.Errorf("relatorios: geral pdf: %w", err)
	}

	pdf, err := uc.gerador.RelatorioGeral(DadosRelatorioGeral{
		Empresa:      uc.empresa,
		Periodo:      periodoTexto(filtros.DataInicio, filtros.DataFim),
		Responsavel:  nomeResponsavel(responsavel),
		EmitidoEm:    time.Now(),
		Linhas:       paraLinhasRelatorio(linhas),
		TotalGeral:   relatorio.TotalGeral(linhas),
		ResumoStatus: paraResumoStatus(relatorio.ResumoPorStatus(linhas)),
	})
	if err != nil {
		return nil, "", fmt.Errorf("relatorios: geral pdf: %w", err)
	}
	return pdf, "relatorio_pedidos.pdf", nil
}

func (uc *UseCase) filtroGeral(in FiltrosGerais) (dto.FiltrosRelatorio, repository.PedidoFiltro) {
	filtros := dto.FiltrosRelatorio{
		DataInicio: strings.TrimSpace(in.DataInicio),
		DataFim:    strings.TrimSpace(in.DataFim),
		Status:     normalizar.Status(in.Status),
		Fornecedor: strings.TrimSpace(in.Fornecedor),
		Obra:       strings.TrimSpace(in.Obra),
		Tags:       normalizarTags(in.Tags),
	}
	f := repository.PedidoFiltro{
		DataInicio:       normalizar.DataISO(filtros.DataInicio),
		DataFim:          normalizar.DataISO(filtros.DataFim),
		Status:           filtros.Status,
		FornecedorContem: filtros.Fornecedor,
		ObraContem:       filtros.Obra,
		Tags:             filtros.Tags,
	}
	return filtros, f
}

// ── relatório por equipamento ─────────────────────────────────────────────────

// Equipamentos devolve o relatório por equipamento em JSON: grupos por TAG em
// ordem crescente, total geral e as listas para os selects de filtro.
func (uc *UseCase) Equipamentos(ctx context.Context, in FiltrosEquipamentos) (*dto.RelatorioEquipamentosResponse, error) {
	filtros, f := filtroEquipamentos(in)

	linhas, err := uc.pedidos.ListarPorTag(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("relatorios: equipamentos: %w", err)
	}
	listaStatus, err := uc.pedidos.StatusDistintos(ctx)
	if err != nil {
		return nil, fmt.Errorf("relatorios: equipamentos: %w", err)
	}
	listaTags, err := uc.pedidos.TagsDistintas(ctx)
	if err != nil {
		return nil, fmt.Errorf("relatorios: equipamentos: %w", err)
	}

	grupos, total := relatorio.AgruparPorTag(linhas)

	return &dto.RelatorioEquipamentosResponse{
		Filtros:     filtros,
		Grupos:      paraGruposDTO(grupos),
		TotalGeral:  total,
		ListaStatus: listaStatus,
		ListaTags:   listaTags,
	}, nil
}

// EquipamentosPDF gera o PDF do relatório por equipamento.
func (uc *UseCase) EquipamentosPDF(ctx context.Context, in FiltrosEquipamentos, responsavel string) ([]byte, string, error) {
	filtros, f := filtroEquipamentos(in)

	linhas, err := uc.pedidos.ListarPorTag(ctx, f)
	if err != nil {
		return nil, "", fmt.Errorf("relatorios: equipamentos pdf: %w", err)
	}

	grupos, total := relatorio.AgruparPorTag(linhas)

	pdf, err := uc.gerador.RelatorioEquipamentos(DadosRelatorioEquipamentos{
		Empresa:     uc.empresa,
		Filtros:     filtrosEquipamentosTexto(filtros),
		Responsavel: nomeResponsavel(responsavel),
		EmitidoEm:   time.Now(),
		Grupos:      paraGruposDTO(grupos),
		TotalGeral:  total,
	})
	if err != nil {
		return nil, "", fmt.Errorf("relatorios: equipamentos pdf: %w", err)
	}
	return pdf, "relatorio_equipamentos.pdf", nil
}

func filtroEquipamentos(in FiltrosEquipamentos) (dto.FiltrosRelatorio, repository.PedidoFiltro) {
	filtros := dto.FiltrosRelatorio{
		Tags:   normalizarTags(in.Tags),
		Status: normalizar.Status(in.Status),
	}
	f := repository.PedidoFiltro{
		Tags:   filtros.Tags,
		Status: filtros.Status,
	}
	// campo de texto só vale quando não há seleção múltipla
	if len(filtros.Tags) == 0 {
		filtros.Tag = strings.TrimSpace(in.Tag)
		f.TagContem = normalizar.Tag(in.Tag)
	}
	return filtros, f
}

// ── apresentação ──────────────────────────────────────────────────────────────

// periodoTexto monta a linha de período do cabeçalho do PDF.
func periodoTexto(dataInicio, dataFim string) string {
	switch {
	case dataInicio != "" && dataFim != "":
		return fmt.Sprintf("Período: %s a %s", normalizar.FormatDataBR(dataInicio), normalizar.FormatDataBR(dataFim))
	case dataInicio != "":
		return fmt.Sprintf("Período: a partir de %s", normalizar.FormatDataBR(dataInicio))
	case dataFim != "":
		return fmt.Sprintf("Período: até %s", normalizar.FormatDataBR(dataFim))
	default:
		return "Período: todos os registros"
	}
}

// filtrosEquipamentosTexto monta a linha de filtros do cabeçalho do PDF.
func filtrosEquipamentosTexto(filtros dto.FiltrosRelatorio) string {
	partes := make([]string, 0, 2)
	if len(filtros.Tags) > 0 {
		partes = append(partes, "TAGS: "+strings.Join(filtros.Tags, ", "))
	} else if filtros.Tag != "" {
		partes = append(partes, "TAG contém: "+filtros.Tag)
	}
	if filtros.Status != "" {
		partes = append(partes, "Status: "+filtros.Status)
	}
	if len(partes) == 0 {
		return "Sem filtros (todos os registros)"
	}
	return strings.Join(partes, " | ")
}

func nomeResponsavel(responsavel string) string {
	if r := strings.TrimSpace(responsavel); r != "" {
		return r
	}
	return responsavelVazio
}

func paraLinhasRelatorio(pedidos []*entity.Pedido) []dto.LinhaRelatorioDTO {
	out := make([]dto.LinhaRelatorioDTO, 0, len(pedidos))
	for _, p := range pedidos {
		valor := decimal.Zero
		if p.ValorPedido.Valid {
			valor = p.ValorPedido.Decimal
		}
		dataSC := ""
		if p.DataCriacaoSC != nil {
			dataSC = p.DataCriacaoSC.Format("2006-01-02")
		}
		out = append(out, dto.LinhaRelatorioDTO{
			ID:             p.ID,
			DataCriacaoSC:  dataSC,
			NomeVeiculo:    p.NomeVeiculo,
			Tag:            normalizar.Tag(p.Tag),
			NumeroSC:       p.NumeroSC,
			NumeroPC:       p.NumeroPC,
			DescricaoItens: p.DescricaoItens,
			NomeFornecedor: p.NomeFornecedor,
			Obra:           p.Obra,
			StatusPedido:   relatorio.StatusExibicao(p.StatusPedido),
			ValorPedido:    valor,
		})
	}
	return out
}

func paraResumoStatus(resumo []relatorio.TotalStatus) []dto.TotalStatusDTO {
	out := make([]dto.TotalStatusDTO, 0, len(resumo))
	for _, r := range resumo {
		out = append(out, dto.TotalStatusDTO{Status: r.Status, Total: r.Total})
	}
	return out
}

func paraGruposDTO(grupos []relatorio.GrupoEquipamento) []dto.GrupoEquipamentoDTO {
	out := make([]dto.GrupoEquipamentoDTO, 0, len(grupos))
	for _, g := range grupos {
		out = append(out, dto.GrupoEquipamentoDTO{
			Tag:         g.Tag,
			NomeVeiculo: g.NomeVeiculo,
			Total:       g.Total,
			Pedidos:     dto.PedidosParaDTO(g.Pedidos),
		})
	}
	return out
}

// normalizarTags canonicaliza e descarta entradas em branco.
func normalizarTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if tag := normalizar.Tag(t); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
