// Package pdf gera os relatórios de pedidos em PDF com Maroto v2.
//
// Layout da página A4 dos dois relatórios:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  EMPRESA (centrado) + título do relatório                    │
//	│  Período ou filtros / Responsável / Emitido em               │
//	│  ─────────────────────────────────────────────────────────── │
//	│  GERAL: tabela de 11 colunas, TOTAL GERAL à direita,         │
//	│         resumo por status                                    │
//	│  EQUIPAMENTOS: total geral e um bloco por TAG                │
//	│         (título, total da TAG, tabela SC | PC | Itens |      │
//	│          Valor)                                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/ctcsistemas/compras-api/internal/application/dto"
	"github.com/ctcsistemas/compras-api/internal/application/relatorios"
	"github.com/ctcsistemas/compras-api/internal/domain/normalizar"
	"github.com/ctcsistemas/compras-api/internal/domain/relatorio"
)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	corTitulo = &props.Color{Red: 0, Green: 70, Blue: 127}
	corCinza  = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Gerador ───────────────────────────────────────────────────────────────────

var _ relatorios.GeradorRelatorioPDF = (*GeradorMaroto)(nil)

// GeradorMaroto implementa relatorios.GeradorRelatorioPDF usando Maroto v2.
type GeradorMaroto struct{}

// NewGeradorMaroto constrói o gerador.
func NewGeradorMaroto() *GeradorMaroto { return &GeradorMaroto{} }

// RelatorioGeral gera o PDF do relatório geral de pedidos.
func (g *GeradorMaroto) RelatorioGeral(d relatorios.DadosRelatorioGeral) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório geral de pedidos", true).
		WithAuthor(d.Empresa, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(tituloRows(d.Empresa, "Relatório geral de pedidos")...)
	m.AddRows(
		infoRow(d.Periodo),
		infoRow("Responsável: "+d.Responsavel),
		infoRow("Emitido em: "+d.EmitidoEm.Format("02/01/2006 15:04")),
		line.NewRow(3, props.Line{Color: corTitulo, Thickness: 0.5}),
	)

	if len(d.Linhas) == 0 {
		m.AddRows(avisoSemRegistros())
	} else {
		m.AddRows(cabecalhoGeral())
		for _, l := range d.Linhas {
			m.AddRows(linhaGeral(l))
		}
		m.AddRows(
			line.NewRow(2, props.Line{Color: corCinza, Thickness: 0.3}),
			totalDireita("TOTAL GERAL: R$ "+brl(d.TotalGeral)),
		)
		if len(d.ResumoStatus) > 0 {
			m.AddRows(subtituloRow("Resumo por status:"))
			m.AddRows(cabecalhoResumo())
			for _, t := range d.ResumoStatus {
				m.AddRows(linhaResumo(t))
			}
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar relatório geral: %w", err)
	}
	return doc.GetBytes(), nil
}

// RelatorioEquipamentos gera o PDF do relatório por equipamento (TAG).
func (g *GeradorMaroto) RelatorioEquipamentos(d relatorios.DadosRelatorioEquipamentos) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório por equipamento (TAG)", true).
		WithAuthor(d.Empresa, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(tituloRows(d.Empresa, "Relatório por equipamento (TAG)")...)
	m.AddRows(
		infoRow(d.Filtros),
		infoRow("Responsável: "+d.Responsavel),
		infoRow("Emitido em: "+d.EmitidoEm.Format("02/01/2006 15:04")),
		totalDireita("Total geral: R$ "+brl(d.TotalGeral)),
		line.NewRow(3, props.Line{Color: corTitulo, Thickness: 0.5}),
	)

	if len(d.Grupos) == 0 {
		m.AddRows(avisoSemRegistros())
	}
	for _, grupo := range d.Grupos {
		m.AddRows(blocoEquipamento(grupo)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar relatório por equipamento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// tituloRows: nome da empresa e título do relatório, centrados.
func tituloRows(empresa, titulo string) []core.Row {
	return []core.Row{
		row.New(12).Add(col.New(12).Add(
			text.New(empresa, props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center, Color: corTitulo, Top: 2,
			}),
		)),
		row.New(9).Add(col.New(12).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 1,
			}),
		)),
	}
}

// infoRow: linha informativa centrada (período, responsável, emissão).
func infoRow(texto string) core.Row {
	return row.New(5).Add(col.New(12).Add(
		text.New(texto, props.Text{Size: 9, Align: align.Center, Color: corCinza}),
	))
}

func subtituloRow(texto string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(texto, props.Text{Style: fontstyle.Bold, Size: 10, Color: corTitulo, Top: 3}),
	))
}

func avisoSemRegistros() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Nenhum registro encontrado com esses filtros.", props.Text{Size: 9, Top: 3}),
	))
}

func totalDireita(texto string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(texto, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: corTitulo, Top: 2, Right: 1,
		}),
	))
}

// cabecalhoGeral: rótulos da tabela do relatório geral. Na grade de 12
// colunas do Maroto a descrição ocupa 2 e as demais 1.
func cabecalhoGeral() core.Row {
	h := func(tam int, rotulo string, a align.Type) core.Col {
		return col.New(tam).Add(text.New(rotulo, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Color: corTitulo, Top: 1,
		}))
	}
	return row.New(6).Add(
		h(1, "ID", align.Center),
		h(1, "Data SC", align.Left),
		h(1, "Equipamento", align.Left),
		h(1, "TAG", align.Left),
		h(1, "SC", align.Left),
		h(1, "PC", align.Left),
		h(2, "Itens", align.Left),
		h(1, "Fornecedor", align.Left),
		h(1, "Obra", align.Left),
		h(1, "Status", align.Left),
		h(1, "Valor (R$)", align.Right),
	)
}

func linhaGeral(l dto.LinhaRelatorioDTO) core.Row {
	c := func(tam int, valor string, a align.Type) core.Col {
		return col.New(tam).Add(text.New(valor, props.Text{Size: 7, Align: a, Top: 0.5}))
	}
	return row.New(6).Add(
		c(1, strconv.FormatInt(l.ID, 10), align.Center),
		c(1, l.DataCriacaoSC, align.Left),
		c(1, l.NomeVeiculo, align.Left),
		c(1, l.Tag, align.Left),
		c(1, l.NumeroSC, align.Left),
		c(1, l.NumeroPC, align.Left),
		c(2, l.DescricaoItens, align.Left),
		c(1, l.NomeFornecedor, align.Left),
		c(1, l.Obra, align.Left),
		c(1, l.StatusPedido, align.Left),
		c(1, brl(l.ValorPedido), align.Right),
	)
}

func cabecalhoResumo() core.Row {
	return row.New(6).Add(
		col.New(3).Add(text.New("Status", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: corTitulo, Top: 1,
		})),
		col.New(2).Add(text.New("Total (R$)", props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: corTitulo, Top: 1,
		})),
		col.New(7),
	)
}

func linhaResumo(t dto.TotalStatusDTO) core.Row {
	return row.New(5).Add(
		col.New(3).Add(text.New(t.Status, props.Text{Size: 8, Top: 0.5})),
		col.New(2).Add(text.New(brl(t.Total), props.Text{Size: 8, Align: align.Right, Top: 0.5})),
		col.New(7),
	)
}

// blocoEquipamento: bloco de uma TAG no relatório por equipamento. Não há
// quebra de página por TAG; os blocos preenchem a página na sequência.
func blocoEquipamento(g dto.GrupoEquipamentoDTO) []core.Row {
	nome := g.NomeVeiculo
	if nome == "" {
		nome = relatorio.NomeSemNome
	}

	rows := []core.Row{
		row.New(9).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%s - TAG: %s", nome, g.Tag), props.Text{
				Style: fontstyle.Bold, Size: 10, Color: corTitulo, Top: 3,
			}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New("Total da TAG: R$ "+brl(g.Total), props.Text{Size: 9}),
		)),
		cabecalhoBloco(),
	}

	for _, p := range g.Pedidos {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(p.NumeroSC, props.Text{Size: 8, Top: 0.5})),
			col.New(2).Add(text.New(p.NumeroPC, props.Text{Size: 8, Top: 0.5})),
			col.New(6).Add(text.New(p.DescricaoItens, props.Text{Size: 8, Top: 0.5})),
			col.New(2).Add(text.New(brlOuZero(p.ValorPedido), props.Text{
				Size: 8, Align: align.Right, Top: 0.5, Right: 1,
			})),
		))
	}

	rows = append(rows, row.New(4))
	return rows
}

func cabecalhoBloco() core.Row {
	h := func(tam int, rotulo string, a align.Type) core.Col {
		return col.New(tam).Add(text.New(rotulo, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a, Color: corTitulo, Top: 1,
		}))
	}
	return row.New(7).Add(
		h(2, "SC", align.Left),
		h(2, "PC", align.Left),
		h(6, "Itens", align.Left),
		h(2, "Valor (R$)", align.Right),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// brl formata um decimal no padrão brasileiro ("1.234,56").
func brl(v decimal.Decimal) string {
	return normalizar.FormatValorBRL(decimal.NullDecimal{Decimal: v, Valid: true})
}

// brlOuZero exibe valor ausente como zero, como nas telas.
func brlOuZero(v decimal.NullDecimal) string {
	if !v.Valid {
		return brl(decimal.Zero)
	}
	return brl(v.Decimal)
}
