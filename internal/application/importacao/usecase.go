// Package importacao faz a carga única da planilha histórica de compras.
//
// As linhas entram como estão na planilha, apenas aparadas. A base histórica
// é suja (TAG e status com grafias variadas) e a canonização acontece na
// leitura, nunca na carga.
package importacao

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ctcsistemas/compras-api/internal/domain/entity"
	"github.com/ctcsistemas/compras-api/internal/domain/normalizar"
	"github.com/ctcsistemas/compras-api/internal/domain/repository"
)

const (
	// O cabeçalho da aba COMPRAS ocupa as três primeiras linhas; os dados
	// começam na linha 4.
	linhasCabecalho = 3

	// Só as 16 primeiras colunas carregam dados do pedido.
	colunasPlanilha = 16
)

// FonteLinhas abstrai a leitura sequencial de uma planilha (XLSX ou CSV).
// ProximaLinha devolve as células da linha seguinte e io.EOF ao terminar.
// Quem abre a fonte fecha a fonte.
type FonteLinhas interface {
	ProximaLinha() ([]string, error)
	Close() error
}

// Resultado resume a carga: linhas gravadas e linhas puladas por duplicidade.
type Resultado struct {
	Inseridos int
	Pulados   int
}

type UseCase struct {
	pedidos repository.PedidoRepository
}

func NewUseCase(pedidos repository.PedidoRepository) *UseCase {
	return &UseCase{pedidos: pedidos}
}

// Importar percorre a fonte linha a linha e grava cada pedido novo.
// Uma linha é duplicada quando já existe pedido com o mesmo par PC/SC;
// linhas sem PC e sem SC entram sempre, não há chave para comparar.
func (uc *UseCase) Importar(ctx context.Context, fonte FonteLinhas) (Resultado, error) {
	var res Resultado

	linha := 0
	for {
		celulas, err := fonte.ProximaLinha()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("importacao: ler linha %d: %w", linha+1, err)
		}
		linha++

		if linha <= linhasCabecalho {
			continue
		}
		if linhaVazia(celulas) {
			continue
		}

		pedido := montarPedido(celulas)

		if pedido.NumeroPC != "" || pedido.NumeroSC != "" {
			existe, err := uc.pedidos.ExistePorNumeroPCSC(ctx, pedido.NumeroPC, pedido.NumeroSC)
			if err != nil {
				return res, fmt.Errorf("importacao: verificar duplicidade na linha %d: %w", linha, err)
			}
			if existe {
				res.Pulados++
				continue
			}
		}

		if err := uc.pedidos.Criar(ctx, pedido); err != nil {
			return res, fmt.Errorf("importacao: gravar linha %d: %w", linha, err)
		}
		res.Inseridos++
	}

	return res, nil
}

// linhaVazia ignora linhas sem nada nas 16 colunas de dados. Célula só com
// espaços ainda conta como conteúdo.
func linhaVazia(celulas []string) bool {
	n := len(celulas)
	if n > colunasPlanilha {
		n = colunasPlanilha
	}
	for i := 0; i < n; i++ {
		if celulas[i] != "" {
			return false
		}
	}
	return true
}

// montarPedido mapeia as colunas da aba COMPRAS, na ordem da planilha:
//
//	 1 EQUIP / DEPART        -> nome_veiculo
//	 2 TAG                   -> tag
//	 3 DESCRIÇÃO             -> descricao_itens
//	 4 DATA DA SC            -> data_criacao_sc
//	 5 SOLICITAÇÃO           -> numero_sc
//	 6 PEDIDO DE COMPRA      -> numero_pc
//	 7 FORNECEDOR            -> nome_fornecedor
//	 8 STATUS DO PEDIDO      -> status_pedido
//	 9 DATA DO PAGAMENTO     -> data_pagamento
//	10 DATA ENTREGA / NF     -> numero_nota_fiscal (texto completo)
//	11 VALOR DO PEDIDO       -> valor_pedido
//	12 CIDADE                -> local
//	13 ENTREGA NO FINANCEIRO -> entrega_financeiro
//	14 OBSERVAÇÃO RELEVANTE  -> observacao
//	15 OBRA                  -> obra
//	16 DEPART.               -> departamento
func montarPedido(celulas []string) *entity.Pedido {
	celula := func(i int) string {
		if i < len(celulas) {
			return strings.TrimSpace(celulas[i])
		}
		return ""
	}

	return &entity.Pedido{
		NomeVeiculo:       celula(0),
		Tag:               celula(1),
		DescricaoItens:    celula(2),
		DataCriacaoSC:     normalizar.DataISO(normalizar.ParseDataPlanilha(celula(3))),
		NumeroSC:          celula(4),
		NumeroPC:          celula(5),
		NomeFornecedor:    celula(6),
		StatusPedido:      celula(7),
		DataPagamento:     normalizar.DataISO(normalizar.ParseDataPlanilha(celula(8))),
		NumeroNotaFiscal:  celula(9),
		ValorPedido:       decimal.NullDecimal{Decimal: normalizar.ParseValorPlanilha(celula(10)), Valid: true},
		Local:             celula(11),
		EntregaFinanceiro: celula(12),
		Observacao:        celula(13),
		Obra:              celula(14),
		Departamento:      celula(15),
	}
}
