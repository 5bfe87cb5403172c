package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ctcsistemas/compras-api/internal/domain/entity"
)

// CriarPedidoRequest corpo de POST /api/pedidos. Campos de texto chegam como
// digitados; datas aceitam "DD/MM/YYYY" ou "YYYY-MM-DD"; valor aceita o
// formato brasileiro ("1.234,56", "R$" opcional).
type CriarPedidoRequest struct {
	NomeVeiculo       string `json:"nome_veiculo"`
	Tag               string `json:"tag"`             // obrigatório
	DescricaoItens    string `json:"descricao_itens"` // obrigatório
	DataCriacaoSC     string `json:"data_criacao_sc"`
	NumeroSC          string `json:"numero_sc"`
	NumeroPC          string `json:"numero_pc"`
	NomeFornecedor    string `json:"nome_fornecedor"`
	StatusPedido      string `json:"status_pedido"`
	DataPagamento     string `json:"data_pagamento"`
	NumeroNotaFiscal  string `json:"numero_nf"`
	ValorPedido       string `json:"valor_pedido"`
	Local             string `json:"local"`
	EntregaFinanceiro string `json:"entrega_financeiro"`
	Observacao        string `json:"observacao"`
	Obra              string `json:"obra"`
	Departamento      string `json:"departamento"`
}

// PedidoDTO linha de pedido nas respostas. Datas saem em ISO "YYYY-MM-DD"
// (vazias quando nulas); valor sai nulo quando ausente.
type PedidoDTO struct {
	ID                int64               `json:"id"`
	NomeVeiculo       string              `json:"nome_veiculo"`
	Tag               string              `json:"tag"`
	DescricaoItens    string              `json:"descricao_itens"`
	DataCriacaoSC     string              `json:"data_criacao_sc"`
	NumeroSC          string              `json:"numero_sc"`
	NumeroPC          string              `json:"numero_pc"`
	NomeFornecedor    string              `json:"nome_fornecedor"`
	StatusPedido      string              `json:"status_pedido"`
	DataPagamento     string              `json:"data_pagamento"`
	NumeroNotaFiscal  string              `json:"numero_nf"`
	ValorPedido       decimal.NullDecimal `json:"valor_pedido"`
	Local             string              `json:"local"`
	EntregaFinanceiro string              `json:"entrega_financeiro"`
	Observacao        string              `json:"observacao"`
	Obra              string              `json:"obra"`
	Departamento      string              `json:"departamento"`
	DataCadastro      time.Time           `json:"data_cadastro"`
}

// ListaPedidosResponse corpo de GET /api/pedidos: linhas filtradas, total do
// conjunto e as listas para os selects de filtro.
type ListaPedidosResponse struct {
	Pedidos     []PedidoDTO      `json:"pedidos"`
	ValorTotal  decimal.Decimal  `json:"valor_total"`
	Filtros     FiltrosPedidos   `json:"filtros"`
	ListaStatus []string         `json:"lista_status"`
	ListaTags   []string         `json:"lista_tags"`
}

// FiltrosPedidos ecoa os filtros aplicados, já na forma canônica.
type FiltrosPedidos struct {
	Tags   []string `json:"tags"`
	Status string   `json:"status"`
}

// OpcoesPedidosResponse corpo de GET /api/pedidos/opcoes.
type OpcoesPedidosResponse struct {
	ListaStatus []string `json:"lista_status"`
	ListaTags   []string `json:"lista_tags"`
}

// PedidoParaDTO converte a entidade para o formato de resposta. Compartilhado
// pelos casos de uso de pedidos, dashboard e relatórios.
func PedidoParaDTO(p *entity.Pedido) PedidoDTO {
	return PedidoDTO{
		ID:                p.ID,
		NomeVeiculo:       p.NomeVeiculo,
		Tag:               p.Tag,
		DescricaoItens:    p.DescricaoItens,
		DataCriacaoSC:     dataISO(p.DataCriacaoSC),
		NumeroSC:          p.NumeroSC,
		NumeroPC:          p.NumeroPC,
		NomeFornecedor:    p.NomeFornecedor,
		StatusPedido:      p.StatusPedido,
		DataPagamento:     dataISO(p.DataPagamento),
		NumeroNotaFiscal:  p.NumeroNotaFiscal,
		ValorPedido:       p.ValorPedido,
		Local:             p.Local,
		EntregaFinanceiro: p.EntregaFinanceiro,
		Observacao:        p.Observacao,
		Obra:              p.Obra,
		Departamento:      p.Departamento,
		DataCadastro:      p.DataCadastro,
	}
}

// PedidosParaDTO converte uma lista, devolvendo slice vazio (nunca nil) para
// serializar como [] em JSON.
func PedidosParaDTO(pedidos []*entity.Pedido) []PedidoDTO {
	out := make([]PedidoDTO, 0, len(pedidos))
	for _, p := range pedidos {
		out = append(out, PedidoParaDTO(p))
	}
	return out
}

func dataISO(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
