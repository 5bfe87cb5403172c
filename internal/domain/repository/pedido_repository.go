package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ctcsistemas/compras-api/internal/domain/entity"
)

// PedidoFiltro reúne os critérios opcionais de consulta. Campo zero não
// restringe nada; critérios presentes combinam sempre por E.
// Tags e Status carregam formas canônicas; a comparação no banco passa por
// norm_tag/norm_status para que linhas históricas fora do padrão também casem.
type PedidoFiltro struct {
	DataInicio       *time.Time // inclusivo, sobre data_criacao_sc
	DataFim          *time.Time // inclusivo
	Obra             string     // igualdade exata (trilha do dashboard)
	ObraContem       string     // substring, trilha de relatórios
	Veiculo          string     // igualdade exata
	FornecedorContem string     // substring
	Tags             []string   // IN sobre norm_tag(tag)
	TagContem        string     // substring sobre norm_tag(tag), usado só quando Tags está vazio
	Status           string     // igualdade sobre norm_status(status_pedido)
}

// TotaisPedidos é o resumo de um conjunto filtrado. Valores ausentes contam
// zero na soma.
type TotaisPedidos struct {
	Quantidade int64
	ValorTotal decimal.Decimal
}

// StatusAgregado é uma linha do agrupamento por status canônico. Status vazio
// permanece vazio aqui; rótulos como "SEM STATUS" são decisão de apresentação.
type StatusAgregado struct {
	Status     string
	Quantidade int64
	ValorTotal decimal.Decimal
}

// EquipamentoAgregado é uma linha do ranking de gasto por equipamento.
type EquipamentoAgregado struct {
	NomeVeiculo string
	ValorTotal  decimal.Decimal
}

// PedidoRepository define o porto de persistência e consulta de pedidos.
// Pedidos são imutáveis após a criação; não há Update nem Delete.
type PedidoRepository interface {
	Criar(ctx context.Context, p *entity.Pedido) error

	// ExistePorNumeroPCSC diz se já há pedido com o mesmo par
	// (numero_pc, numero_sc). Usado pela importação para pular duplicados.
	ExistePorNumeroPCSC(ctx context.Context, numeroPC, numeroSC string) (bool, error)

	// Listar devolve o conjunto filtrado por data_cadastro DESC.
	Listar(ctx context.Context, f PedidoFiltro) ([]*entity.Pedido, error)

	// ListarPorDataSC ordena por data_criacao_sc DESC e nome_veiculo
	// (ordem do relatório geral).
	ListarPorDataSC(ctx context.Context, f PedidoFiltro) ([]*entity.Pedido, error)

	// ListarPorTag ordena por TAG aparada e data_cadastro DESC (ordem do
	// relatório por equipamento).
	ListarPorTag(ctx context.Context, f PedidoFiltro) ([]*entity.Pedido, error)

	// UltimosPedidos devolve os `limite` mais recentes por data_cadastro.
	UltimosPedidos(ctx context.Context, f PedidoFiltro, limite int) ([]*entity.Pedido, error)

	Totais(ctx context.Context, f PedidoFiltro) (TotaisPedidos, error)
	AgregadoPorStatus(ctx context.Context, f PedidoFiltro) ([]StatusAgregado, error)
	TopEquipamentos(ctx context.Context, f PedidoFiltro, limite int) ([]EquipamentoAgregado, error)

	// UltimaAtualizacao devolve MAX(data_cadastro) do conjunto filtrado,
	// nil quando o conjunto é vazio.
	UltimaAtualizacao(ctx context.Context, f PedidoFiltro) (*time.Time, error)

	// Listas distintas para os dropdowns de filtro (não vazias, ordenadas).
	ObrasDistintas(ctx context.Context) ([]string, error)
	VeiculosDistintos(ctx context.Context) ([]string, error)
	TagsDistintas(ctx context.Context) ([]string, error)
	StatusDistintos(ctx context.Context) ([]string, error)
}
