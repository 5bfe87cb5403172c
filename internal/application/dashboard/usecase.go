// Package dashboard monta o painel de acompanhamento de pedidos: totais,
// quebra por status, cartões fixos, últimos pedidos e ranking de gasto por
// equipamento, tudo sobre o mesmo conjunto filtrado.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ctcsistemas/compras-api/internal/application/dto"
	"github.com/ctcsistemas/compras-api/internal/domain/entity"
	"github.com/ctcsistemas/compras-api/internal/domain/normalizar"
	"github.com/ctcsistemas/compras-api/internal/domain/repository"
)

const (
	topEquipamentos = 5  // linhas do ranking de gasto
	ultimosPedidos  = 10 // linhas da tabela de pedidos recentes
	padraoDias      = 30 // janela aplicada quando a chamada vem sem parâmetros
)

// Filtros entrada crua de GET /api/dashboard, como chegou na URL.
// TemParametros distingue "nenhum parâmetro" (aplica a janela padrão) de
// "parâmetros presentes mas vazios" (não aplica nada).
type Filtros struct {
	DataInicio    string
	DataFim       string
	Obra          string
	Veiculo       string
	Tag           string
	TemParametros bool
}

// UseCase monta o dashboard. As consultas rodam em sequência sobre o pool;
// cada requisição é atendida de ponta a ponta sem fan-out.
type UseCase struct {
	pedidos repository.PedidoRepository
}

// NewUseCase constrói o caso de uso do dashboard.
func NewUseCase(pedidos repository.PedidoRepository) *UseCase {
	return &UseCase{pedidos: pedidos}
}

// Gerar produz o dashboard completo para os filtros dados.
func (uc *UseCase) Gerar(ctx context.Context, in Filtros) (*dto.DashboardResponse, error) {
	aplicados := dto.FiltrosDashboard{
		DataInicio: strings.TrimSpace(in.DataInicio),
		DataFim:    strings.TrimSpace(in.DataFim),
		Obra:       strings.TrimSpace(in.Obra),
		Veiculo:    strings.TrimSpace(in.Veiculo),
		Tag:        strings.TrimSpace(in.Tag),
	}
	if !in.TemParametros {
		hoje := time.Now()
		aplicados.DataInicio = hoje.AddDate(0, 0, -padraoDias).Format("2006-01-02")
		aplicados.DataFim = hoje.Format("2006-01-02")
	}

	f := repository.PedidoFiltro{
		DataInicio: normalizar.DataISO(aplicados.DataInicio),
		DataFim:    normalizar.DataISO(aplicados.DataFim),
		Obra:       aplicados.Obra,
		Veiculo:    aplicados.Veiculo,
	}
	if tag := normalizar.Tag(aplicados.Tag); tag != "" {
		f.Tags = []string{tag}
	}

	totais, err := uc.pedidos.Totais(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("dashboard: totais: %w", err)
	}
	porStatus, err := uc.pedidos.AgregadoPorStatus(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("dashboard: por status: %w", err)
	}
	ultima, err := uc.pedidos.UltimaAtualizacao(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("dashboard: última atualização: %w", err)
	}
	ultimos, err := uc.pedidos.UltimosPedidos(ctx, f, ultimosPedidos)
	if err != nil {
		return nil, fmt.Errorf("dashboard: últimos pedidos: %w", err)
	}
	top, err := uc.pedidos.TopEquipamentos(ctx, f, topEquipamentos)
	if err != nil {
		return nil, fmt.Errorf("dashboard: top equipamentos: %w", err)
	}
	obras, err := uc.pedidos.ObrasDistintas(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: obras: %w", err)
	}
	veiculos, err := uc.pedidos.VeiculosDistintos(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: veículos: %w", err)
	}
	tags, err := uc.pedidos.TagsDistintas(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: tags: %w", err)
	}

	resp := &dto.DashboardResponse{
		Filtros:         aplicados,
		TotalPedidos:    totais.Quantidade,
		ValorTotal:      totais.ValorTotal,
		PorStatus:       paraStatusResumo(porStatus),
		Cartoes:         montarCartoes(porStatus),
		UltimosPedidos:  dto.PedidosParaDTO(ultimos),
		TopEquipamentos: paraEquipamentoResumo(top),
		ListaObras:      obras,
		ListaVeiculos:   veiculos,
		ListaTags:       tags,
	}
	if ultima != nil {
		resp.UltimaAtualizacao = ultima.Format("2006-01-02 15:04:05")
	}
	if len(ultimos) > 0 {
		primeiro := dto.PedidoParaDTO(ultimos[0])
		resp.UltimoPedido = &primeiro
	}
	return resp, nil
}

// montarCartoes distribui a quebra por status nos quatro cartões fixos.
// Status fora dos quatro rótulos não ganham cartão; cartão sem grupo fica
// zerado.
func montarCartoes(porStatus []repository.StatusAgregado) dto.CartoesStatus {
	var c dto.CartoesStatus
	for _, s := range porStatus {
		cartao := dto.CartaoStatus{Qtd: s.Quantidade, ValorTotal: s.ValorTotal}
		switch s.Status {
		case entity.StatusEmAberto:
			c.EmAberto = cartao
		case entity.StatusAguardandoPagamento:
			c.AguardandoPagamento = cartao
		case entity.StatusPago:
			c.Pago = cartao
		case entity.StatusCancelado:
			c.Cancelado = cartao
		}
	}
	return c
}

func paraStatusResumo(porStatus []repository.StatusAgregado) []dto.StatusResumoDTO {
	out := make([]dto.StatusResumoDTO, 0, len(porStatus))
	for _, s := range porStatus {
		out = append(out, dto.StatusResumoDTO{
			StatusPedido: s.Status,
			Qtd:          s.Quantidade,
			ValorTotal:   s.ValorTotal,
		})
	}
	return out
}

func paraEquipamentoResumo(top []repository.EquipamentoAgregado) []dto.EquipamentoResumoDTO {
	out := make([]dto.EquipamentoResumoDTO, 0, len(top))
	for _, e := range top {
		out = append(out, dto.EquipamentoResumoDTO{
			NomeVeiculo: e.NomeVeiculo,
			ValorTotal:  e.ValorTotal,
		})
	}
	return out
}
