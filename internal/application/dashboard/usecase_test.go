package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctcsistemas/compras-api/internal/application/dashboard"
	"github.com/ctcsistemas/compras-api/internal/domain/entity"
	"github.com/ctcsistemas/compras-api/internal/domain/repository"
)

// fakePedidoRepo devolve valores fixos e captura o filtro recebido, para os
// testes verificarem o que o caso de uso pediu ao banco.
type fakePedidoRepo struct {
	repository.PedidoRepository

	ultimoFiltro repository.PedidoFiltro

	totais    repository.TotaisPedidos
	porStatus []repository.StatusAgregado
	ultima    *time.Time
	ultimos   []*entity.Pedido
	top       []repository.EquipamentoAgregado
	obras     []string
	veiculos  []string
	tags      []string
}

func (f *fakePedidoRepo) Totais(_ context.Context, filtro repository.PedidoFiltro) (repository.TotaisPedidos, error) {
	f.ultimoFiltro = filtro
	return f.totais, nil
}

func (f *fakePedidoRepo) AgregadoPorStatus(_ context.Context, _ repository.PedidoFiltro) ([]repository.StatusAgregado, error) {
	return f.porStatus, nil
}

func (f *fakePedidoRepo) UltimaAtualizacao(_ context.Context, _ repository.PedidoFiltro) (*time.Time, error) {
	return f.ultima, nil
}

func (f *fakePedidoRepo) UltimosPedidos(_ context.Context, _ repository.PedidoFiltro, limite int) ([]*entity.Pedido, error) {
	if len(f.ultimos) > limite {
		return f.ultimos[:limite], nil
	}
	return f.ultimos, nil
}

func (f *fakePedidoRepo) TopEquipamentos(_ context.Context, _ repository.PedidoFiltro, _ int) ([]repository.EquipamentoAgregado, error) {
	return f.top, nil
}

func (f *fakePedidoRepo) ObrasDistintas(_ context.Context) ([]string, error)    { return f.obras, nil }
func (f *fakePedidoRepo) VeiculosDistintos(_ context.Context) ([]string, error) { return f.veiculos, nil }
func (f *fakePedidoRepo) TagsDistintas(_ context.Context) ([]string, error)     { return f.tags, nil }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ── janela padrão de 30 dias ──────────────────────────────────────────────────

func TestGerar_SemParametrosAplicaJanelaDe30Dias(t *testing.T) {
	repo := &fakePedidoRepo{}
	uc := dashboard.NewUseCase(repo)

	resp, err := uc.Gerar(context.Background(), dashboard.Filtros{TemParametros: false})
	require.NoError(t, err)

	hoje := time.Now()
	assert.Equal(t, hoje.Format("2006-01-02"), resp.Filtros.DataFim)
	assert.Equal(t, hoje.AddDate(0, 0, -30).Format("2006-01-02"), resp.Filtros.DataInicio)

	require.NotNil(t, repo.ultimoFiltro.DataInicio, "a consulta deve receber a janela padrão")
	require.NotNil(t, repo.ultimoFiltro.DataFim)
	assert.Equal(t, resp.Filtros.DataInicio, repo.ultimoFiltro.DataInicio.Format("2006-01-02"))
	assert.Equal(t, resp.Filtros.DataFim, repo.ultimoFiltro.DataFim.Format("2006-01-02"))
}

func TestGerar_ComQualquerParametroNaoAplicaJanelaPadrao(t *testing.T) {
	repo := &fakePedidoRepo{}
	uc := dashboard.NewUseCase(repo)

	// parâmetro presente porém vazio: sem janela padrão, sem limites de data
	resp, err := uc.Gerar(context.Background(), dashboard.Filtros{
		Obra:          "",
		TemParametros: true,
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Filtros.DataInicio)
	assert.Empty(t, resp.Filtros.DataFim)
	assert.Nil(t, repo.ultimoFiltro.DataInicio, "sem parâmetro de data, a consulta sai sem limite")
	assert.Nil(t, repo.ultimoFiltro.DataFim)
}

func TestGerar_DatasExplicitasChegamNaConsulta(t *testing.T) {
	repo := &fakePedidoRepo{}
	uc := dashboard.NewUseCase(repo)

	_, err := uc.Gerar(context.Background(), dashboard.Filtros{
		DataInicio:    "2024-01-01",
		DataFim:       "2024-01-31",
		TemParametros: true,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.ultimoFiltro.DataInicio)
	assert.Equal(t, "2024-01-01", repo.ultimoFiltro.DataInicio.Format("2006-01-02"))
	require.NotNil(t, repo.ultimoFiltro.DataFim)
	assert.Equal(t, "2024-01-31", repo.ultimoFiltro.DataFim.Format("2006-01-02"))
}

func TestGerar_DataIlegivelNaoRestringe(t *testing.T) {
	repo := &fakePedidoRepo{}
	uc := dashboard.NewUseCase(repo)

	resp, err := uc.Gerar(context.Background(), dashboard.Filtros{
		DataInicio:    "ontem",
		TemParametros: true,
	})
	require.NoError(t, err)

	assert.Nil(t, repo.ultimoFiltro.DataInicio, "data ilegível é tratada como não informada")
	assert.Equal(t, "ontem", resp.Filtros.DataInicio, "o eco dos filtros preserva o que veio")
}

func TestGerar_TagCanonicaViraFiltroUnico(t *testing.T) {
	repo := &fakePedidoRepo{}
	uc := dashboard.NewUseCase(repo)

	_, err := uc.Gerar(context.Background(), dashboard.Filtros{
		Tag:           " cam-01 ",
		TemParametros: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"CAM-01"}, repo.ultimoFiltro.Tags)
}

// ── cartões ───────────────────────────────────────────────────────────────────

func TestGerar_DistribuiCartoesPelosQuatroStatus(t *testing.T) {
	repo := &fakePedidoRepo{
		porStatus: []repository.StatusAgregado{
			{Status: "AGUARDANDO PAGAMENTO", Quantidade: 2, ValorTotal: dec("200")},
			{Status: "CANCELADO", Quantidade: 1, ValorTotal: dec("50")},
			{Status: "EM ABERTO", Quantidade: 3, ValorTotal: dec("300")},
			{Status: "ENTREGUE", Quantidade: 7, ValorTotal: dec("700")},
			{Status: "PAGO", Quantidade: 4, ValorTotal: dec("400")},
		},
	}
	uc := dashboard.NewUseCase(repo)

	resp, err := uc.Gerar(context.Background(), dashboard.Filtros{TemParametros: true})
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.Cartoes.EmAberto.Qtd)
	assert.True(t, resp.Cartoes.EmAberto.ValorTotal.Equal(dec("300")))
	assert.Equal(t, int64(2), resp.Cartoes.AguardandoPagamento.Qtd)
	assert.Equal(t, int64(4), resp.Cartoes.Pago.Qtd)
	assert.Equal(t, int64(1), resp.Cartoes.Cancelado.Qtd)

	require.Len(t, resp.PorStatus, 5, "status fora dos cartões continua na quebra")
	assert.Equal(t, "ENTREGUE", resp.PorStatus[3].StatusPedido)
}

func TestGerar_StatusAusenteDeixaCartaoZerado(t *testing.T) {
	repo := &fakePedidoRepo{
		porStatus: []repository.StatusAgregado{
			{Status: "PAGO", Quantidade: 1, ValorTotal: dec("10")},
		},
	}
	uc := dashboard.NewUseCase(repo)

	resp, err := uc.Gerar(context.Background(), dashboard.Filtros{TemParametros: true})
	require.NoError(t, err)

	assert.Zero(t, resp.Cartoes.EmAberto.Qtd)
	assert.True(t, resp.Cartoes.EmAberto.ValorTotal.IsZero())
	assert.Equal(t, int64(1), resp.Cartoes.Pago.Qtd)
}

// ── conjunto vazio e recentes ─────────────────────────────────────────────────

func TestGerar_ConjuntoVazio(t *testing.T) {
	repo := &fakePedidoRepo{}
	uc := dashboard.NewUseCase(repo)

	resp, err := uc.Gerar(context.Background(), dashboard.Filtros{TemParametros: true})
	require.NoError(t, err)

	assert.Zero(t, resp.TotalPedidos)
	assert.Empty(t, resp.UltimaAtualizacao, "sem pedidos não há última atualização")
	assert.Nil(t, resp.UltimoPedido)
	assert.NotNil(t, resp.UltimosPedidos)
	assert.Empty(t, resp.UltimosPedidos)
}

func TestGerar_UltimoPedidoEOPrimeiroDosRecentes(t *testing.T) {
	agora := time.Date(2024, 5, 10, 16, 30, 0, 0, time.UTC)
	repo := &fakePedidoRepo{
		ultima: &agora,
		ultimos: []*entity.Pedido{
			{ID: 9, Tag: "CAM-01", DataCadastro: agora},
			{ID: 8, Tag: "ESC-02", DataCadastro: agora.Add(-time.Hour)},
		},
	}
	uc := dashboard.NewUseCase(repo)

	resp, err := uc.Gerar(context.Background(), dashboard.Filtros{TemParametros: true})
	require.NoError(t, err)

	require.NotNil(t, resp.UltimoPedido)
	assert.Equal(t, int64(9), resp.UltimoPedido.ID)
	assert.Len(t, resp.UltimosPedidos, 2)
	assert.Equal(t, "2024-05-10 16:30:00", resp.UltimaAtualizacao)
}

func TestGerar_CarregaListasDeOpcoes(t *testing.T) {
	repo := &fakePedidoRepo{
		obras:    []string{"Obra Norte", "Obra Sul"},
		veiculos: []string{"Caminhão", "Escavadeira"},
		tags:     []string{"CAM-01", "ESC-02"},
	}
	uc := dashboard.NewUseCase(repo)

	resp, err := uc.Gerar(context.Background(), dashboard.Filtros{TemParametros: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"Obra Norte", "Obra Sul"}, resp.ListaObras)
	assert.Equal(t, []string{"Caminhão", "Escavadeira"}, resp.ListaVeiculos)
	assert.Equal(t, []string{"CAM-01", "ESC-02"}, resp.ListaTags)
}

func TestGerar_TopEquipamentos(t *testing.T) {
	repo := &fakePedidoRepo{
		top: []repository.EquipamentoAgregado{
			{NomeVeiculo: "Escavadeira", ValorTotal: dec("900")},
			{NomeVeiculo: "Caminhão", ValorTotal: dec("350")},
		},
	}
	uc := dashboard.NewUseCase(repo)

	resp, err := uc.Gerar(context.Background(), dashboard.Filtros{TemParametros: true})
	require.NoError(t, err)

	require.Len(t, resp.TopEquipamentos, 2)
	assert.Equal(t, "Escavadeira", resp.TopEquipamentos[0].NomeVeiculo)
	assert.True(t, resp.TopEquipamentos[0].ValorTotal.Equal(dec("900")))
}
