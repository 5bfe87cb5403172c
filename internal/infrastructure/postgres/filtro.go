package postgres

import (
	"fmt"
	"strings"

	"github.com/ctcsistemas/compras-api/internal/domain/repository"
)

// montarWhere traduz PedidoFiltro para uma cláusula WHERE com argumentos
// posicionais. Devolve "" quando nenhum critério está presente.
//
// TAG e status comparam via norm_tag/norm_status para alcançar linhas
// históricas gravadas fora do padrão; os índices de expressão criados na
// migração cobrem as duas funções.
func montarWhere(f repository.PedidoFiltro) (string, []any) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.DataInicio != nil {
		conds = append(conds, "data_criacao_sc >= "+arg(*f.DataInicio))
	}
	if f.DataFim != nil {
		conds = append(conds, "data_criacao_sc <= "+arg(*f.DataFim))
	}
	if f.Obra != "" {
		conds = append(conds, "obra = "+arg(f.Obra))
	}
	if f.ObraContem != "" {
		conds = append(conds, "obra ILIKE '%' || "+arg(f.ObraContem)+" || '%'")
	}
	if f.Veiculo != "" {
		conds = append(conds, "nome_veiculo = "+arg(f.Veiculo))
	}
	if f.FornecedorContem != "" {
		conds = append(conds, "nome_fornecedor ILIKE '%' || "+arg(f.FornecedorContem)+" || '%'")
	}
	if len(f.Tags) > 0 {
		marcadores := make([]string, len(f.Tags))
		for i, tag := range f.Tags {
			marcadores[i] = arg(tag)
		}
		conds = append(conds, "norm_tag(tag) IN ("+strings.Join(marcadores, ", ")+")")
	}
	if f.TagContem != "" {
		conds = append(conds, "norm_tag(tag) LIKE '%' || "+arg(f.TagContem)+" || '%'")
	}
	if f.Status != "" {
		conds = append(conds, "norm_status(status_pedido) = "+arg(f.Status))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
