// Package pedidos implementa a listagem filtrada e o cadastro de pedidos de
// compra. A regra central é a assimetria entre escrita e leitura: o cadastro
// via formulário grava TAG e status já canônicos, enquanto a leitura
// canonicaliza na consulta para alcançar também as linhas históricas
// importadas fora do padrão.
package pedidos

import (
	"context"
	"strings"

	"github.com/ctcsistemas/compras-api/internal/application/dto"
	"github.com/ctcsistemas/compras-api/internal/domain"
	"github.com/ctcsistemas/compras-api/internal/domain/entity"
	"github.com/ctcsistemas/compras-api/internal/domain/normalizar"
	"github.com/ctcsistemas/compras-api/internal/domain/repository"
)

// UseCase casos de uso de pedidos.
type UseCase struct {
	pedidos repository.PedidoRepository
}

// NewUseCase constrói o caso de uso de pedidos.
func NewUseCase(pedidos repository.PedidoRepository) *UseCase {
	return &UseCase{pedidos: pedidos}
}

// FiltroListagem filtros crus da listagem, como chegam da URL.
type FiltroListagem struct {
	Tags   []string
	Status string
}

// Listar devolve os pedidos filtrados por TAGs e status (formas canônicas),
// mais recentes primeiro, com o total do conjunto e as listas dos selects.
func (uc *UseCase) Listar(ctx context.Context, in FiltroListagem) (*dto.ListaPedidosResponse, error) {
	f := repository.PedidoFiltro{
		Tags:   normalizarTags(in.Tags),
		Status: normalizar.Status(in.Status),
	}

	pedidos, err := uc.pedidos.Listar(ctx, f)
	if err != nil {
		return nil, err
	}
	totais, err := uc.pedidos.Totais(ctx, f)
	if err != nil {
		return nil, err
	}
	listaStatus, err := uc.pedidos.StatusDistintos(ctx)
	if err != nil {
		return nil, err
	}
	listaTags, err := uc.pedidos.TagsDistintas(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ListaPedidosResponse{
		Pedidos:    dto.PedidosParaDTO(pedidos),
		ValorTotal: totais.ValorTotal,
		Filtros: dto.FiltrosPedidos{
			Tags:   f.Tags,
			Status: f.Status,
		},
		ListaStatus: listaStatus,
		ListaTags:   listaTags,
	}, nil
}

// Opcoes devolve as listas distintas de status e TAGs canônicos para montar
// os selects de filtro.
func (uc *UseCase) Opcoes(ctx context.Context) (*dto.OpcoesPedidosResponse, error) {
	listaStatus, err := uc.pedidos.StatusDistintos(ctx)
	if err != nil {
		return nil, err
	}
	listaTags, err := uc.pedidos.TagsDistintas(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.OpcoesPedidosResponse{ListaStatus: listaStatus, ListaTags: listaTags}, nil
}

// Criar cadastra um pedido vindo do formulário. TAG e descrição dos itens são
// obrigatórios; TAG e status são gravados já na forma canônica; valor e datas
// ilegíveis viram ausentes, nunca erro.
func (uc *UseCase) Criar(ctx context.Context, in dto.CriarPedidoRequest) (*dto.PedidoDTO, error) {
	tag := normalizar.Tag(in.Tag)
	descricao := strings.TrimSpace(in.DescricaoItens)
	if tag == "" || descricao == "" {
		return nil, domain.ErrCamposObrigatorios
	}

	p := &entity.Pedido{
		NomeVeiculo:       strings.TrimSpace(in.NomeVeiculo),
		Tag:               tag,
		DescricaoItens:    descricao,
		DataCriacaoSC:     normalizar.DataISO(normalizar.ParseDataPlanilha(in.DataCriacaoSC)),
		NumeroSC:          strings.TrimSpace(in.NumeroSC),
		NumeroPC:          strings.TrimSpace(in.NumeroPC),
		NomeFornecedor:    strings.TrimSpace(in.NomeFornecedor),
		StatusPedido:      normalizar.Status(in.StatusPedido),
		DataPagamento:     normalizar.DataISO(normalizar.ParseDataPlanilha(in.DataPagamento)),
		NumeroNotaFiscal:  strings.TrimSpace(in.NumeroNotaFiscal),
		ValorPedido:       normalizar.ParseValorBRL(in.ValorPedido),
		Local:             strings.TrimSpace(in.Local),
		EntregaFinanceiro: strings.TrimSpace(in.EntregaFinanceiro),
		Observacao:        strings.TrimSpace(in.Observacao),
		Obra:              strings.TrimSpace(in.Obra),
		Departamento:      strings.TrimSpace(in.Departamento),
	}

	if err := uc.pedidos.Criar(ctx, p); err != nil {
		return nil, err
	}

	out := dto.PedidoParaDTO(p)
	return &out, nil
}

// normalizarTags canonicaliza e descarta entradas em branco, preservando a
// ordem de chegada.
func normalizarTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if tag := normalizar.Tag(t); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
