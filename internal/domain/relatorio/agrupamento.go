// Package relatorio contém as regras puras de montagem dos relatórios
// (agrupamento por equipamento, resumo por status e totais), independentes
// de banco e de PDF.
package relatorio

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ctcsistemas/compras-api/internal/domain/entity"
	"github.com/ctcsistemas/compras-api/internal/domain/normalizar"
)

// Rótulos sintéticos para valores ausentes na apresentação.
const (
	TagSemTag       = "SEM TAG"
	StatusSemStatus = "SEM STATUS"
	NomeSemNome     = "SEM NOME"
)

// GrupoEquipamento reúne os pedidos de uma mesma TAG no relatório por
// equipamento. A TAG exibida é a gravada (aparada), não a canônica; quem
// canonicaliza é o filtro, nunca a apresentação.
type GrupoEquipamento struct {
	Tag         string
	NomeVeiculo string
	Pedidos     []*entity.Pedido
	Total       decimal.Decimal
}

// AgruparPorTag agrupa pedidos pela TAG aparada, com vazia virando "SEM TAG".
// O nome do equipamento do grupo é o da primeira linha vista, então a ordem
// de entrada importa (as consultas entregam TAG crescente, cadastro mais
// recente primeiro). Grupos saem em ordem crescente de TAG; o segundo retorno
// é o total geral.
func AgruparPorTag(pedidos []*entity.Pedido) ([]GrupoEquipamento, decimal.Decimal) {
	indice := make(map[string]int, len(pedidos))
	grupos := make([]GrupoEquipamento, 0, len(pedidos))

	for _, p := range pedidos {
		tag := strings.TrimSpace(p.Tag)
		if tag == "" {
			tag = TagSemTag
		}

		i, ok := indice[tag]
		if !ok {
			i = len(grupos)
			indice[tag] = i
			grupos = append(grupos, GrupoEquipamento{
				Tag:         tag,
				NomeVeiculo: strings.TrimSpace(p.NomeVeiculo),
			})
		}

		grupos[i].Pedidos = append(grupos[i].Pedidos, p)
		if p.ValorPedido.Valid {
			grupos[i].Total = grupos[i].Total.Add(p.ValorPedido.Decimal)
		}
	}

	sort.Slice(grupos, func(a, b int) bool { return grupos[a].Tag < grupos[b].Tag })

	total := decimal.Zero
	for _, g := range grupos {
		total = total.Add(g.Total)
	}
	return grupos, total
}

// TotalStatus é uma linha do resumo por status do relatório geral.
type TotalStatus struct {
	Status string
	Total  decimal.Decimal
}

// StatusExibicao devolve o status canônico de um pedido para exibição,
// com vazio virando "SEM STATUS".
func StatusExibicao(raw string) string {
	if s := normalizar.Status(raw); s != "" {
		return s
	}
	return StatusSemStatus
}

// ResumoPorStatus soma os valores por status canônico (vazio conta em
// "SEM STATUS"), em ordem crescente de status.
func ResumoPorStatus(pedidos []*entity.Pedido) []TotalStatus {
	somas := make(map[string]decimal.Decimal)
	for _, p := range pedidos {
		st := StatusExibicao(p.StatusPedido)
		v := decimal.Zero
		if p.ValorPedido.Valid {
			v = p.ValorPedido.Decimal
		}
		somas[st] = somas[st].Add(v)
	}

	resumo := make([]TotalStatus, 0, len(somas))
	for st, total := range somas {
		resumo = append(resumo, TotalStatus{Status: st, Total: total})
	}
	sort.Slice(resumo, func(a, b int) bool { return resumo[a].Status < resumo[b].Status })
	return resumo
}

// TotalGeral soma os valores dos pedidos, com ausentes valendo zero.
func TotalGeral(pedidos []*entity.Pedido) decimal.Decimal {
	total := decimal.Zero
	for _, p := range pedidos {
		if p.ValorPedido.Valid {
			total = total.Add(p.ValorPedido.Decimal)
		}
	}
	return total
}
