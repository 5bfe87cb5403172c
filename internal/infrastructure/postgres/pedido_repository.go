package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ctcsistemas/compras-api/internal/domain/entity"
	"github.com/ctcsistemas/compras-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// colunasPedido lista as colunas na ordem em que os métodos de consulta fazem
// o Scan. Manter em sincronia com consultarPedidos.
const colunasPedido = `
	id, nome_veiculo, tag, descricao_itens, data_criacao_sc, numero_sc, numero_pc,
	nome_fornecedor, status_pedido, data_pagamento, numero_nota_fiscal, valor_pedido,
	local, entrega_financeiro, observacao, obra, departamento, data_cadastro`

// PedidoRepo implementação do porto PedidoRepository sobre PostgreSQL.
type PedidoRepo struct {
	pool *pgxpool.Pool
}

// NewPedidoRepository constrói o adaptador de persistência de pedidos.
func NewPedidoRepository(pool *pgxpool.Pool) *PedidoRepo {
	return &PedidoRepo{pool: pool}
}

// Criar persiste um pedido novo. id e data_cadastro são gerados pelo banco e
// voltam preenchidos na entidade.
func (r *PedidoRepo) Criar(ctx context.Context, p *entity.Pedido) error {
	const query = `
		INSERT INTO pedidos (
			nome_veiculo, tag, descricao_itens, data_criacao_sc, numero_sc, numero_pc,
			nome_fornecedor, status_pedido, data_pagamento, numero_nota_fiscal, valor_pedido,
			local, entrega_financeiro, observacao, obra, departamento
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, data_cadastro`

	err := r.pool.QueryRow(ctx, query,
		p.NomeVeiculo, p.Tag, p.DescricaoItens, p.DataCriacaoSC, p.NumeroSC, p.NumeroPC,
		p.NomeFornecedor, p.StatusPedido, p.DataPagamento, p.NumeroNotaFiscal, p.ValorPedido,
		p.Local, p.EntregaFinanceiro, p.Observacao, p.Obra, p.Departamento,
	).Scan(&p.ID, &p.DataCadastro)
	if err != nil {
		return fmt.Errorf("pedidos.Criar: %w", err)
	}
	return nil
}

// ExistePorNumeroPCSC diz se já existe pedido com o mesmo par PC/SC.
func (r *PedidoRepo) ExistePorNumeroPCSC(ctx context.Context, numeroPC, numeroSC string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM pedidos WHERE numero_pc = $1 AND numero_sc = $2)`

	var existe bool
	if err := r.pool.QueryRow(ctx, query, numeroPC, numeroSC).Scan(&existe); err != nil {
		return false, fmt.Errorf("pedidos.ExistePorNumeroPCSC: %w", err)
	}
	return existe, nil
}

// Listar devolve o conjunto filtrado, cadastro mais recente primeiro.
func (r *PedidoRepo) Listar(ctx context.Context, f repository.PedidoFiltro) ([]*entity.Pedido, error) {
	where, args := montarWhere(f)
	query := `SELECT ` + colunasPedido + ` FROM pedidos` + where +
		` ORDER BY data_cadastro DESC, id DESC`
	return r.consultarPedidos(ctx, query, args, "pedidos.Listar")
}

// ListarPorDataSC segue a ordem do relatório geral: data da SC mais recente
// primeiro, linhas sem data por último, nome do equipamento como desempate.
func (r *PedidoRepo) ListarPorDataSC(ctx context.Context, f repository.PedidoFiltro) ([]*entity.Pedido, error) {
	where, args := montarWhere(f)
	query := `SELECT ` + colunasPedido + ` FROM pedidos` + where +
		` ORDER BY data_criacao_sc DESC NULLS LAST, nome_veiculo`
	return r.consultarPedidos(ctx, query, args, "pedidos.ListarPorDataSC")
}

// ListarPorTag devolve as linhas contíguas por TAG aparada, cadastro mais
// recente primeiro dentro de cada TAG (ordem do relatório por equipamento).
func (r *PedidoRepo) ListarPorTag(ctx context.Context, f repository.PedidoFiltro) ([]*entity.Pedido, error) {
	where, args := montarWhere(f)
	query := `SELECT ` + colunasPedido + ` FROM pedidos` + where +
		` ORDER BY btrim(tag), data_cadastro DESC`
	return r.consultarPedidos(ctx, query, args, "pedidos.ListarPorTag")
}

// UltimosPedidos devolve os `limite` cadastros mais recentes do conjunto.
func (r *PedidoRepo) UltimosPedidos(ctx context.Context, f repository.PedidoFiltro, limite int) ([]*entity.Pedido, error) {
	where, args := montarWhere(f)
	args = append(args, limite)
	query := fmt.Sprintf(`SELECT %s FROM pedidos%s ORDER BY data_cadastro DESC, id DESC LIMIT $%d`,
		colunasPedido, where, len(args))
	return r.consultarPedidos(ctx, query, args, "pedidos.UltimosPedidos")
}

// Totais conta e soma o conjunto filtrado. Valor ausente soma zero.
func (r *PedidoRepo) Totais(ctx context.Context, f repository.PedidoFiltro) (repository.TotaisPedidos, error) {
	where, args := montarWhere(f)
	query := `SELECT COUNT(*), COALESCE(SUM(valor_pedido), 0) FROM pedidos` + where

	var t repository.TotaisPedidos
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&t.Quantidade, &t.ValorTotal); err != nil {
		return repository.TotaisPedidos{}, fmt.Errorf("pedidos.Totais: %w", err)
	}
	return t, nil
}

// AgregadoPorStatus agrupa o conjunto pelo status canônico, em ordem
// crescente. Grafias diferentes do mesmo status caem no mesmo grupo.
func (r *PedidoRepo) AgregadoPorStatus(ctx context.Context, f repository.PedidoFiltro) ([]repository.StatusAgregado, error) {
	where, args := montarWhere(f)
	query := `
		SELECT
		    norm_status(status_pedido)      AS status,
		    COUNT(*)                        AS quantidade,
		    COALESCE(SUM(valor_pedido), 0)  AS valor_total
		FROM pedidos` + where + `
		GROUP BY norm_status(status_pedido)
		ORDER BY norm_status(status_pedido)`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pedidos.AgregadoPorStatus: %w", err)
	}
	defer rows.Close()

	var resultados []repository.StatusAgregado
	for rows.Next() {
		var linha repository.StatusAgregado
		if err := rows.Scan(&linha.Status, &linha.Quantidade, &linha.ValorTotal); err != nil {
			return nil, fmt.Errorf("pedidos.AgregadoPorStatus scan: %w", err)
		}
		resultados = append(resultados, linha)
	}
	return resultados, rows.Err()
}

// TopEquipamentos devolve os `limite` equipamentos de maior gasto no conjunto.
// Empates seguem a ordem de inserção (menor id primeiro).
func (r *PedidoRepo) TopEquipamentos(ctx context.Context, f repository.PedidoFiltro, limite int) ([]repository.EquipamentoAgregado, error) {
	where, args := montarWhere(f)
	args = append(args, limite)
	query := fmt.Sprintf(`
		SELECT nome_veiculo, COALESCE(SUM(valor_pedido), 0) AS valor_total
		FROM pedidos%s
		GROUP BY nome_veiculo
		ORDER BY valor_total DESC, MIN(id)
		LIMIT $%d`, where, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pedidos.TopEquipamentos: %w", err)
	}
	defer rows.Close()

	var resultados []repository.EquipamentoAgregado
	for rows.Next() {
		var linha repository.EquipamentoAgregado
		if err := rows.Scan(&linha.NomeVeiculo, &linha.ValorTotal); err != nil {
			return nil, fmt.Errorf("pedidos.TopEquipamentos scan: %w", err)
		}
		resultados = append(resultados, linha)
	}
	return resultados, rows.Err()
}

// UltimaAtualizacao devolve o MAX(data_cadastro) do conjunto filtrado, nil
// quando não há linhas.
func (r *PedidoRepo) UltimaAtualizacao(ctx context.Context, f repository.PedidoFiltro) (*time.Time, error) {
	where, args := montarWhere(f)
	query := `SELECT MAX(data_cadastro) FROM pedidos` + where

	var ultima *time.Time
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&ultima); err != nil {
		return nil, fmt.Errorf("pedidos.UltimaAtualizacao: %w", err)
	}
	return ultima, nil
}

// ObrasDistintas lista as obras não vazias em ordem crescente.
func (r *PedidoRepo) ObrasDistintas(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT obra FROM pedidos WHERE btrim(obra) <> '' ORDER BY obra`
	return r.consultarLista(ctx, query, "pedidos.ObrasDistintas")
}

// VeiculosDistintos lista os equipamentos não vazios em ordem crescente.
func (r *PedidoRepo) VeiculosDistintos(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT nome_veiculo FROM pedidos WHERE btrim(nome_veiculo) <> '' ORDER BY nome_veiculo`
	return r.consultarLista(ctx, query, "pedidos.VeiculosDistintos")
}

// TagsDistintas lista as TAGs canônicas não vazias em ordem crescente.
func (r *PedidoRepo) TagsDistintas(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT norm_tag(tag) AS tag FROM pedidos WHERE btrim(tag) <> '' ORDER BY tag`
	return r.consultarLista(ctx, query, "pedidos.TagsDistintas")
}

// StatusDistintos lista os status canônicos não vazios em ordem crescente.
func (r *PedidoRepo) StatusDistintos(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT norm_status(status_pedido) AS status FROM pedidos WHERE btrim(status_pedido) <> '' ORDER BY status`
	return r.consultarLista(ctx, query, "pedidos.StatusDistintos")
}

func (r *PedidoRepo) consultarPedidos(ctx context.Context, query string, args []any, rotulo string) ([]*entity.Pedido, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rotulo, err)
	}
	defer rows.Close()

	var pedidos []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(
			&p.ID, &p.NomeVeiculo, &p.Tag, &p.DescricaoItens, &p.DataCriacaoSC, &p.NumeroSC, &p.NumeroPC,
			&p.NomeFornecedor, &p.StatusPedido, &p.DataPagamento, &p.NumeroNotaFiscal, &p.ValorPedido,
			&p.Local, &p.EntregaFinanceiro, &p.Observacao, &p.Obra, &p.Departamento, &p.DataCadastro,
		); err != nil {
			return nil, fmt.Errorf("%s scan: %w", rotulo, err)
		}
		pedidos = append(pedidos, &p)
	}
	return pedidos, rows.Err()
}

func (r *PedidoRepo) consultarLista(ctx context.Context, query, rotulo string) ([]string, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rotulo, err)
	}
	defer rows.Close()

	var lista []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("%s scan: %w", rotulo, err)
		}
		lista = append(lista, s)
	}
	return lista, rows.Err()
}
