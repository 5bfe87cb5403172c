package dto

import "github.com/shopspring/decimal"

// FiltrosRelatorio ecoa os filtros do relatório geral e do relatório por
// equipamento. Tags e Status já saem na forma canônica.
type FiltrosRelatorio struct {
	DataInicio string   `json:"data_inicio,omitempty"`
	DataFim    string   `json:"data_fim,omitempty"`
	Status     string   `json:"status,omitempty"`
	Fornecedor string   `json:"fornecedor,omitempty"`
	Obra       string   `json:"obra,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Tag        string   `json:"tag,omitempty"` // busca por trecho, usada só sem Tags
}

// RelatorioPedidosResponse corpo de GET /api/relatorios/pedidos.
type RelatorioPedidosResponse struct {
	Filtros      FiltrosRelatorio    `json:"filtros"`
	Pedidos      []LinhaRelatorioDTO `json:"pedidos"`
	TotalGeral   decimal.Decimal     `json:"total_geral"`
	ResumoStatus []TotalStatusDTO    `json:"resumo_status"`
}

// LinhaRelatorioDTO linha do relatório geral. TAG e status saem canônicos
// (status vazio vira "SEM STATUS") e o valor ausente vale zero, espelhando o
// PDF.
type LinhaRelatorioDTO struct {
	ID             int64           `json:"id"`
	DataCriacaoSC  string          `json:"data_criacao_sc"`
	NomeVeiculo    string          `json:"nome_veiculo"`
	Tag            string          `json:"tag"`
	NumeroSC       string          `json:"numero_sc"`
	NumeroPC       string          `json:"numero_pc"`
	DescricaoItens string          `json:"descricao_itens"`
	NomeFornecedor string          `json:"nome_fornecedor"`
	Obra           string          `json:"obra"`
	StatusPedido   string          `json:"status_pedido"`
	ValorPedido    decimal.Decimal `json:"valor_pedido"`
}

// TotalStatusDTO linha do resumo por status do relatório geral.
type TotalStatusDTO struct {
	Status string          `json:"status"`
	Total  decimal.Decimal `json:"total"`
}

// RelatorioEquipamentosResponse corpo de GET /api/relatorios/equipamentos.
type RelatorioEquipamentosResponse struct {
	Filtros     FiltrosRelatorio      `json:"filtros"`
	Grupos      []GrupoEquipamentoDTO `json:"grupos"`
	TotalGeral  decimal.Decimal       `json:"total_geral"`
	ListaStatus []string              `json:"lista_status"`
	ListaTags   []string              `json:"lista_tags"`
}

// GrupoEquipamentoDTO um bloco do relatório por equipamento: a TAG como
// gravada (vazia vira "SEM TAG"), o nome da primeira linha vista e o total do
// grupo.
type GrupoEquipamentoDTO struct {
	Tag         string          `json:"tag"`
	NomeVeiculo string          `json:"nome_veiculo"`
	Total       decimal.Decimal `json:"total"`
	Pedidos     []PedidoDTO     `json:"pedidos"`
}
