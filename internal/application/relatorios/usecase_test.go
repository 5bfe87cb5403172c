package relatorios_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctcsistemas/compras-api/internal/application/relatorios"
	"github.com/ctcsistemas/compras-api/internal/domain/entity"
	"github.com/ctcsistemas/compras-api/internal/domain/repository"
)

const testEmpresa = "Construtora Teste LTDA"

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakePedidoRepo struct {
	repository.PedidoRepository

	ultimoFiltro repository.PedidoFiltro
	linhas       []*entity.Pedido
	listaStatus  []string
	listaTags    []string
}

func (f *fakePedidoRepo) ListarPorDataSC(_ context.Context, filtro repository.PedidoFiltro) ([]*entity.Pedido, error) {
	f.ultimoFiltro = filtro
	return f.linhas, nil
}

func (f *fakePedidoRepo) ListarPorTag(_ context.Context, filtro repository.PedidoFiltro) ([]*entity.Pedido, error) {
	f.ultimoFiltro = filtro
	return f.linhas, nil
}

func (f *fakePedidoRepo) StatusDistintos(_ context.Context) ([]string, error) {
	return f.listaStatus, nil
}

func (f *fakePedidoRepo) TagsDistintas(_ context.Context) ([]string, error) {
	return f.listaTags, nil
}

type fakeGerador struct {
	geral        *relatorios.DadosRelatorioGeral
	equipamentos *relatorios.DadosRelatorioEquipamentos
}

func (f *fakeGerador) RelatorioGeral(d relatorios.DadosRelatorioGeral) ([]byte, error) {
	f.geral = &d
	return []byte("%PDF-fake"), nil
}

func (f *fakeGerador) RelatorioEquipamentos(d relatorios.DadosRelatorioEquipamentos) ([]byte, error) {
	f.equipamentos = &d
	return []byte("%PDF-fake"), nil
}

func buildUseCase(linhas ...*entity.Pedido) (*relatorios.UseCase, *fakePedidoRepo, *fakeGerador) {
	repo := &fakePedidoRepo{
		linhas:      linhas,
		listaStatus: []string{"EM ABERTO", "PAGO"},
		listaTags:   []string{"CAM-01", "ESC-02"},
	}
	ger := &fakeGerador{}
	return relatorios.NewUseCase(repo, ger, testEmpresa), repo, ger
}

func pedidoCompleto() *entity.Pedido {
	dataSC := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	return &entity.Pedido{
		ID:             1,
		NomeVeiculo:    "Caminhão Munck",
		Tag:            " cam-01 ",
		DescricaoItens: "óleo hidráulico",
		DataCriacaoSC:  &dataSC,
		NumeroSC:       "SC-10",
		NumeroPC:       "PC-20",
		NomeFornecedor: "Fornecedora Alfa",
		StatusPedido:   "pago",
		Obra:           "Obra Norte",
		ValorPedido:    decimal.NullDecimal{Decimal: decimal.RequireFromString("1234.56"), Valid: true},
		DataCadastro:   time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC),
	}
}

// ── relatório geral ───────────────────────────────────────────────────────────

func TestGeral_CanonicalizaFiltros(t *testing.T) {
	uc, repo, _ := buildUseCase()

	_, err := uc.Geral(context.Background(), relatorios.FiltrosGerais{
		DataInicio: " 2024-03-01 ",
		DataFim:    "2024-03-31",
		Status:     " em  aberto ",
		Fornecedor: " Alfa ",
		Obra:       " Norte ",
		Tags:       []string{" cam-01 ", ""},
	})

	require.NoError(t, err)
	require.NotNil(t, repo.ultimoFiltro.DataInicio)
	assert.Equal(t, "2024-03-01", repo.ultimoFiltro.DataInicio.Format("2006-01-02"))
	assert.Equal(t, "EM ABERTO", repo.ultimoFiltro.Status)
	assert.Equal(t, "Alfa", repo.ultimoFiltro.FornecedorContem, "fornecedor filtra por trecho")
	assert.Equal(t, "Norte", repo.ultimoFiltro.ObraContem, "obra filtra por trecho")
	assert.Equal(t, []string{"CAM-01"}, repo.ultimoFiltro.Tags)
}

func TestGeral_LinhasSaemProntasParaExibicao(t *testing.T) {
	uc, _, _ := buildUseCase(pedidoSemValor(), pedidoCompleto())

	resp, err := uc.Geral(context.Background(), relatorios.FiltrosGerais{})

	require.NoError(t, err)
	require.Len(t, resp.Pedidos, 2)

	comValor := resp.Pedidos[1]
	assert.Equal(t, "CAM-01", comValor.Tag, "TAG sai canônica no relatório geral")
	assert.Equal(t, "PAGO", comValor.StatusPedido)
	assert.Equal(t, "2024-03-05", comValor.DataCriacaoSC)
	assert.True(t, comValor.ValorPedido.Equal(decimal.RequireFromString("1234.56")))

	semValor := resp.Pedidos[0]
	assert.Equal(t, "SEM STATUS", semValor.StatusPedido, "status em branco vira SEM STATUS")
	assert.True(t, semValor.ValorPedido.IsZero(), "valor ausente sai zerado na linha")
	assert.Empty(t, semValor.DataCriacaoSC)
}

func TestGeral_TotalEResumoPorStatus(t *testing.T) {
	uc, _, _ := buildUseCase(pedidoSemValor(), pedidoCompleto())

	resp, err := uc.Geral(context.Background(), relatorios.FiltrosGerais{})

	require.NoError(t, err)
	assert.True(t, resp.TotalGeral.Equal(decimal.RequireFromString("1234.56")))
	require.Len(t, resp.ResumoStatus, 2)
	assert.Equal(t, "PAGO", resp.ResumoStatus[0].Status, "resumo ordenado por status")
	assert.Equal(t, "SEM STATUS", resp.ResumoStatus[1].Status)
}

func TestGeralPDF_MontaCabecalhoEDevolveArquivo(t *testing.T) {
	uc, _, ger := buildUseCase(pedidoCompleto())

	pdf, nome, err := uc.GeralPDF(context.Background(), relatorios.FiltrosGerais{
		DataInicio: "2024-03-01",
		DataFim:    "2024-03-31",
	}, "maria")

	require.NoError(t, err)
	assert.Equal(t, "relatorio_pedidos.pdf", nome)
	assert.NotEmpty(t, pdf)

	require.NotNil(t, ger.geral)
	assert.Equal(t, testEmpresa, ger.geral.Empresa)
	assert.Equal(t, "Período: 01/03/2024 a 31/03/2024", ger.geral.Periodo)
	assert.Equal(t, "maria", ger.geral.Responsavel)
	assert.Len(t, ger.geral.Linhas, 1)
}

func TestGeralPDF_VariantesDePeriodo(t *testing.T) {
	uc, _, ger := buildUseCase()

	_, _, err := uc.GeralPDF(context.Background(), relatorios.FiltrosGerais{DataInicio: "2024-03-01"}, "x")
	require.NoError(t, err)
	assert.Equal(t, "Período: a partir de 01/03/2024", ger.geral.Periodo)

	_, _, err = uc.GeralPDF(context.Background(), relatorios.FiltrosGerais{DataFim: "2024-03-31"}, "x")
	require.NoError(t, err)
	assert.Equal(t, "Período: até 31/03/2024", ger.geral.Periodo)

	_, _, err = uc.GeralPDF(context.Background(), relatorios.FiltrosGerais{}, "x")
	require.NoError(t, err)
	assert.Equal(t, "Período: todos os registros", ger.geral.Periodo)
}

func TestGeralPDF_ResponsavelVazioGanhaTraco(t *testing.T) {
	uc, _, ger := buildUseCase()

	_, _, err := uc.GeralPDF(context.Background(), relatorios.FiltrosGerais{}, "  ")
	require.NoError(t, err)
	assert.Equal(t, "________________", ger.geral.Responsavel)
}

// ── relatório por equipamento ─────────────────────────────────────────────────

func TestEquipamentos_AgrupaEDevolveListas(t *testing.T) {
	outro := pedidoCompleto()
	outro.ID = 2
	outro.Tag = "ESC-02"
	outro.NomeVeiculo = "Escavadeira"
	outro.ValorPedido = decimal.NullDecimal{Decimal: decimal.RequireFromString("100"), Valid: true}

	uc, repo, _ := buildUseCase(pedidoCompleto(), outro)

	resp, err := uc.Equipamentos(context.Background(), relatorios.FiltrosEquipamentos{
		Tags:   []string{"cam-01", "esc-02"},
		Status: "pago",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"CAM-01", "ESC-02"}, repo.ultimoFiltro.Tags)
	assert.Equal(t, "PAGO", repo.ultimoFiltro.Status)

	require.Len(t, resp.Grupos, 2)
	assert.Equal(t, "ESC-02", resp.Grupos[0].Tag, "grupos em ordem crescente de TAG")
	assert.Equal(t, "cam-01", resp.Grupos[1].Tag)
	assert.True(t, resp.TotalGeral.Equal(decimal.RequireFromString("1334.56")))
	assert.Equal(t, []string{"EM ABERTO", "PAGO"}, resp.ListaStatus)
	assert.Equal(t, []string{"CAM-01", "ESC-02"}, resp.ListaTags)
}

func TestEquipamentos_TrechoDeTagSoValeSemSelecao(t *testing.T) {
	uc, repo, _ := buildUseCase()

	_, err := uc.Equipamentos(context.Background(), relatorios.FiltrosEquipamentos{
		Tags: []string{"CAM-01"},
		Tag:  "esc",
	})
	require.NoError(t, err)
	assert.Empty(t, repo.ultimoFiltro.TagContem, "com seleção múltipla o trecho é ignorado")

	_, err = uc.Equipamentos(context.Background(), relatorios.FiltrosEquipamentos{Tag: " esc "})
	require.NoError(t, err)
	assert.Equal(t, "ESC", repo.ultimoFiltro.TagContem, "sem seleção, o trecho filtra canônico")
}

func TestEquipamentosPDF_LinhaDeFiltros(t *testing.T) {
	uc, _, ger := buildUseCase()

	_, _, err := uc.EquipamentosPDF(context.Background(), relatorios.FiltrosEquipamentos{
		Tags: []string{"CAM-01", "ESC-02"}, Status: "pago",
	}, "joao")
	require.NoError(t, err)
	assert.Equal(t, "TAGS: CAM-01, ESC-02 | Status: PAGO", ger.equipamentos.Filtros)

	_, _, err = uc.EquipamentosPDF(context.Background(), relatorios.FiltrosEquipamentos{Tag: "esc"}, "joao")
	require.NoError(t, err)
	assert.Equal(t, "TAG contém: esc", ger.equipamentos.Filtros)

	_, _, err = uc.EquipamentosPDF(context.Background(), relatorios.FiltrosEquipamentos{}, "joao")
	require.NoError(t, err)
	assert.Equal(t, "Sem filtros (todos os registros)", ger.equipamentos.Filtros)
}

func TestEquipamentosPDF_DevolveArquivo(t *testing.T) {
	uc, _, ger := buildUseCase(pedidoCompleto())

	pdf, nome, err := uc.EquipamentosPDF(context.Background(), relatorios.FiltrosEquipamentos{}, "maria")

	require.NoError(t, err)
	assert.Equal(t, "relatorio_equipamentos.pdf", nome)
	assert.NotEmpty(t, pdf)
	require.NotNil(t, ger.equipamentos)
	assert.Equal(t, testEmpresa, ger.equipamentos.Empresa)
	require.Len(t, ger.equipamentos.Grupos, 1)
	assert.Equal(t, "cam-01", ger.equipamentos.Grupos[0].Tag,
		"a TAG do grupo preserva a grafia gravada, só aparada")
}

// ── helper ────────────────────────────────────────────────────────────────────

func pedidoSemValor() *entity.Pedido {
	return &entity.Pedido{
		ID:           3,
		NomeVeiculo:  "Betoneira",
		Tag:          "BET-01",
		StatusPedido: "  ",
		DataCadastro: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}
