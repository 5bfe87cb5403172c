package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status canônicos de pedido (forma normalizada: maiúsculas, espaços colapsados).
// A coluna status_pedido guarda o texto como veio; a comparação usa a forma canônica.
const (
	StatusEmAberto             = "EM ABERTO"
	StatusAguardandoPagamento  = "AGUARDANDO PAGAMENTO"
	StatusPago                 = "PAGO"
	StatusCancelado            = "CANCELADO"
)

// Pedido representa um pedido de compra (PC) rastreado pelo setor de compras.
type Pedido struct {
	ID                int64
	NomeVeiculo       string // equipamento/veículo associado à TAG
	Tag               string
	DescricaoItens    string
	DataCriacaoSC     *time.Time // data da solicitação de compra, nula quando desconhecida
	NumeroSC          string
	NumeroPC          string
	NomeFornecedor    string
	StatusPedido      string
	DataPagamento     *time.Time
	NumeroNotaFiscal  string // também usado para anotações de entrega/NF na planilha
	ValorPedido       decimal.NullDecimal // nulo quando o valor nunca foi informado
	Local             string
	EntregaFinanceiro string
	Observacao        string
	Obra              string
	Departamento      string
	DataCadastro      time.Time
}
