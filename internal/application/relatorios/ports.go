package relatorios

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ctcsistemas/compras-api/internal/application/dto"
)

// GeradorRelatorioPDF porto para a renderização dos relatórios em PDF.
// Recebe dados prontos para exibição; não consulta nada.
type GeradorRelatorioPDF interface {
	RelatorioGeral(d DadosRelatorioGeral) ([]byte, error)
	RelatorioEquipamentos(d DadosRelatorioEquipamentos) ([]byte, error)
}

// DadosRelatorioGeral conteúdo completo do PDF do relatório geral.
type DadosRelatorioGeral struct {
	Empresa      string
	Periodo      string // "Período: 01/03/2024 a 31/03/2024"
	Responsavel  string
	EmitidoEm    time.Time
	Linhas       []dto.LinhaRelatorioDTO
	TotalGeral   decimal.Decimal
	ResumoStatus []dto.TotalStatusDTO
}

// DadosRelatorioEquipamentos conteúdo completo do PDF do relatório por
// equipamento.
type DadosRelatorioEquipamentos struct {
	Empresa     string
	Filtros     string // "TAGS: CAM-01, ESC-02 | Status: PAGO"
	Responsavel string
	EmitidoEm   time.Time
	Grupos      []dto.GrupoEquipamentoDTO
	TotalGeral  decimal.Decimal
}
