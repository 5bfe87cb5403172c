package importacao_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctcsistemas/compras-api/internal/application/importacao"
	"github.com/ctcsistemas/compras-api/internal/domain/entity"
	"github.com/ctcsistemas/compras-api/internal/domain/repository"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakeFonte struct {
	linhas    [][]string
	pos       int
	erroFinal error
}

func (f *fakeFonte) ProximaLinha() ([]string, error) {
	if f.pos < len(f.linhas) {
		l := f.linhas[f.pos]
		f.pos++
		return l, nil
	}
	if f.erroFinal != nil {
		return nil, f.erroFinal
	}
	return nil, io.EOF
}

func (f *fakeFonte) Close() error { return nil }

type fakePedidoRepo struct {
	repository.PedidoRepository

	existentes map[string]bool
	criados    []*entity.Pedido
	consultas  int
}

func (f *fakePedidoRepo) ExistePorNumeroPCSC(_ context.Context, numeroPC, numeroSC string) (bool, error) {
	f.consultas++
	return f.existentes[numeroPC+"|"+numeroSC], nil
}

func (f *fakePedidoRepo) Criar(_ context.Context, p *entity.Pedido) error {
	p.ID = int64(len(f.criados) + 1)
	f.criados = append(f.criados, p)
	return nil
}

// ── testes ────────────────────────────────────────────────────────────────────

func TestImportar_PulaCabecalhoEGravaDados(t *testing.T) {
	repo := &fakePedidoRepo{}
	fonte := &fakeFonte{linhas: append(cabecalho(), linhaCompleta(), linhaCompleta2())}

	res, err := importacao.NewUseCase(repo).Importar(context.Background(), fonte)

	require.NoError(t, err)
	assert.Equal(t, 2, res.Inseridos)
	assert.Equal(t, 0, res.Pulados)
	assert.Len(t, repo.criados, 2)
}

func TestImportar_MapeiaColunasSoAparando(t *testing.T) {
	repo := &fakePedidoRepo{}
	fonte := &fakeFonte{linhas: append(cabecalho(), linhaCompleta())}

	_, err := importacao.NewUseCase(repo).Importar(context.Background(), fonte)

	require.NoError(t, err)
	require.Len(t, repo.criados, 1)
	p := repo.criados[0]

	assert.Equal(t, "Caminhão Munck", p.NomeVeiculo)
	assert.Equal(t, "cam-01", p.Tag, "a carga não canoniza a TAG")
	assert.Equal(t, "óleo hidráulico", p.DescricaoItens)
	require.NotNil(t, p.DataCriacaoSC)
	assert.Equal(t, "2024-03-05", p.DataCriacaoSC.Format("2006-01-02"))
	assert.Equal(t, "SC-10", p.NumeroSC)
	assert.Equal(t, "PC-20", p.NumeroPC)
	assert.Equal(t, "Fornecedora Alfa", p.NomeFornecedor)
	assert.Equal(t, "pago", p.StatusPedido, "a carga não canoniza o status")
	require.NotNil(t, p.DataPagamento)
	assert.Equal(t, "2024-03-20", p.DataPagamento.Format("2006-01-02"))
	assert.Equal(t, "15/04/2024 NF 123", p.NumeroNotaFiscal, "a coluna de NF entra como texto completo")
	require.True(t, p.ValorPedido.Valid)
	assert.True(t, p.ValorPedido.Decimal.Equal(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "Porto Alegre", p.Local)
	assert.Equal(t, "SIM", p.EntregaFinanceiro)
	assert.Equal(t, "urgente", p.Observacao)
	assert.Equal(t, "Obra Norte", p.Obra)
	assert.Equal(t, "Manutenção", p.Departamento)
}

func TestImportar_ValorDeCelulaNumerica(t *testing.T) {
	l := linhaCompleta()
	l[10] = "1234.56"

	repo := &fakePedidoRepo{}
	fonte := &fakeFonte{linhas: append(cabecalho(), l)}

	_, err := importacao.NewUseCase(repo).Importar(context.Background(), fonte)

	require.NoError(t, err)
	require.Len(t, repo.criados, 1)
	require.True(t, repo.criados[0].ValorPedido.Valid)
	assert.True(t, repo.criados[0].ValorPedido.Decimal.Equal(decimal.RequireFromString("1234.56")))
}

func TestImportar_ValorIlegivelViraZero(t *testing.T) {
	l := linhaCompleta()
	l[10] = "a combinar"

	repo := &fakePedidoRepo{}
	fonte := &fakeFonte{linhas: append(cabecalho(), l)}

	_, err := importacao.NewUseCase(repo).Importar(context.Background(), fonte)

	require.NoError(t, err)
	require.Len(t, repo.criados, 1)
	require.True(t, repo.criados[0].ValorPedido.Valid)
	assert.True(t, repo.criados[0].ValorPedido.Decimal.IsZero())
}

func TestImportar_DataIlegivelFicaSemData(t *testing.T) {
	l := linhaCompleta()
	l[3] = "ver com o setor"

	repo := &fakePedidoRepo{}
	fonte := &fakeFonte{linhas: append(cabecalho(), l)}

	_, err := importacao.NewUseCase(repo).Importar(context.Background(), fonte)

	require.NoError(t, err)
	require.Len(t, repo.criados, 1)
	assert.Nil(t, repo.criados[0].DataCriacaoSC)
}

func TestImportar_LinhaSemDadosNasDezesseisColunasNaoConta(t *testing.T) {
	vazia16 := make([]string, 16)
	alemDaJanela := append(make([]string, 16), "anotação na coluna 17")
	soEspaco := make([]string, 16)
	soEspaco[0] = " "

	repo := &fakePedidoRepo{}
	fonte := &fakeFonte{linhas: append(cabecalho(), vazia16, []string{}, alemDaJanela, soEspaco)}

	res, err := importacao.NewUseCase(repo).Importar(context.Background(), fonte)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Inseridos, "célula só com espaço ainda é conteúdo")
	assert.Equal(t, 0, res.Pulados, "linha vazia não conta como pulada")
}

func TestImportar_DuplicadaPorPCeSCEPulada(t *testing.T) {
	repo := &fakePedidoRepo{existentes: map[string]bool{"PC-20|SC-10": true}}
	fonte := &fakeFonte{linhas: append(cabecalho(), linhaCompleta())}

	res, err := importacao.NewUseCase(repo).Importar(context.Background(), fonte)

	require.NoError(t, err)
	assert.Equal(t, 0, res.Inseridos)
	assert.Equal(t, 1, res.Pulados)
	assert.Empty(t, repo.criados)
}

func TestImportar_SemPCNemSCEntraSemConsultarDuplicidade(t *testing.T) {
	l := linhaCompleta()
	l[4] = ""
	l[5] = " "

	repo := &fakePedidoRepo{existentes: map[string]bool{"|": true}}
	fonte := &fakeFonte{linhas: append(cabecalho(), l)}

	res, err := importacao.NewUseCase(repo).Importar(context.Background(), fonte)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Inseridos)
	assert.Equal(t, 0, repo.consultas)
}

func TestImportar_LinhaCurtaCompletaComVazio(t *testing.T) {
	repo := &fakePedidoRepo{}
	fonte := &fakeFonte{linhas: append(cabecalho(), []string{"Betoneira", "BET-01", "correia"})}

	_, err := importacao.NewUseCase(repo).Importar(context.Background(), fonte)

	require.NoError(t, err)
	require.Len(t, repo.criados, 1)
	p := repo.criados[0]
	assert.Equal(t, "Betoneira", p.NomeVeiculo)
	assert.Empty(t, p.NumeroSC)
	assert.Nil(t, p.DataCriacaoSC)
	require.True(t, p.ValorPedido.Valid)
	assert.True(t, p.ValorPedido.Decimal.IsZero())
}

func TestImportar_ErroDeLeituraInterrompeComContagemParcial(t *testing.T) {
	repo := &fakePedidoRepo{}
	fonte := &fakeFonte{
		linhas:    append(cabecalho(), linhaCompleta()),
		erroFinal: errors.New("célula corrompida"),
	}

	res, err := importacao.NewUseCase(repo).Importar(context.Background(), fonte)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ler linha 5")
	assert.Equal(t, 1, res.Inseridos)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// cabecalho devolve as três linhas de título e rótulos da aba COMPRAS.
func cabecalho() [][]string {
	return [][]string{
		{"CONTROLE DE COMPRAS"},
		{},
		{"EQUIP / DEPART", "TAG", "DESCRIÇÃO", "DATA DA SC", "SOLICITAÇÃO", "PEDIDO DE COMPRA"},
	}
}

func linhaCompleta() []string {
	return []string{
		" Caminhão Munck ", " cam-01 ", "óleo hidráulico", "05/03/2024",
		"SC-10", "PC-20", "Fornecedora Alfa", " pago ",
		"2024-03-20", "15/04/2024 NF 123", "1.234,56", "Porto Alegre",
		"SIM", "urgente", "Obra Norte", "Manutenção",
	}
}

func linhaCompleta2() []string {
	l := linhaCompleta()
	l[4] = "SC-11"
	l[5] = "PC-21"
	return l
}
