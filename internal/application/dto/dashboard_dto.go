package dto

import "github.com/shopspring/decimal"

// DashboardResponse corpo de GET /api/dashboard. Reúne os totais do conjunto
// filtrado, a quebra por status, os quatro cartões fixos, os pedidos mais
// recentes, o ranking de equipamentos e as listas para os filtros.
type DashboardResponse struct {
	Filtros FiltrosDashboard `json:"filtros"`

	TotalPedidos int64           `json:"total_pedidos"`
	ValorTotal   decimal.Decimal `json:"valor_total"`

	PorStatus []StatusResumoDTO `json:"por_status"`
	Cartoes   CartoesStatus     `json:"cartoes"`

	UltimaAtualizacao string                 `json:"ultima_atualizacao"` // vazio quando o conjunto é vazio
	UltimoPedido      *PedidoDTO             `json:"ultimo_pedido"`
	UltimosPedidos    []PedidoDTO            `json:"ultimos_pedidos"`
	TopEquipamentos   []EquipamentoResumoDTO `json:"top_equipamentos"`

	ListaObras    []string `json:"lista_obras"`
	ListaVeiculos []string `json:"lista_veiculos"`
	ListaTags     []string `json:"lista_tags"`
}

// FiltrosDashboard ecoa os filtros efetivamente aplicados. Quando a chamada
// vem sem nenhum parâmetro, carrega o padrão dos últimos 30 dias.
type FiltrosDashboard struct {
	DataInicio string `json:"data_inicio"`
	DataFim    string `json:"data_fim"`
	Obra       string `json:"obra"`
	Veiculo    string `json:"veiculo"`
	Tag        string `json:"tag"`
}

// StatusResumoDTO uma linha da quebra por status canônico.
type StatusResumoDTO struct {
	StatusPedido string          `json:"status_pedido"`
	Qtd          int64           `json:"qtd"`
	ValorTotal   decimal.Decimal `json:"valor_total"`
}

// CartoesStatus os quatro cartões fixos do dashboard. Status fora desses
// quatro contam apenas nos totais e na quebra por status.
type CartoesStatus struct {
	EmAberto            CartaoStatus `json:"em_aberto"`
	AguardandoPagamento CartaoStatus `json:"aguardando_pagamento"`
	Pago                CartaoStatus `json:"pago"`
	Cancelado           CartaoStatus `json:"cancelado"`
}

// CartaoStatus quantidade e valor acumulado de um cartão.
type CartaoStatus struct {
	Qtd        int64           `json:"qtd"`
	ValorTotal decimal.Decimal `json:"valor_total"`
}

// EquipamentoResumoDTO uma linha do top de gasto por equipamento.
type EquipamentoResumoDTO struct {
	NomeVeiculo string          `json:"nome_veiculo"`
	ValorTotal  decimal.Decimal `json:"valor_total"`
}
