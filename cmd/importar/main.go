// importar faz a carga única da planilha histórica de compras para o banco.
// Linhas já existentes (mesmo par PC/SC) são puladas, então rodar de novo
// sobre a mesma planilha não duplica nada.
//
// Uso: go run ./cmd/importar -arquivo planilha.xlsx [-aba COMPRAS]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ctcsistemas/compras-api/internal/application/importacao"
	"github.com/ctcsistemas/compras-api/internal/infrastructure/planilha"
	"github.com/ctcsistemas/compras-api/internal/infrastructure/postgres"
	"github.com/ctcsistemas/compras-api/pkg/config"
)

func main() {
	arquivo := flag.String("arquivo", "", "planilha de compras (.xlsx ou .csv)")
	aba := flag.String("aba", planilha.AbaPadrao, "aba da planilha XLSX")
	flag.Parse()

	if *arquivo == "" {
		fmt.Fprintln(os.Stderr, "uso: importar -arquivo <planilha.xlsx|planilha.csv> [-aba COMPRAS]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("carregar configuração", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fatal("conexão ao PostgreSQL", err)
	}
	defer pool.Close()

	if err := postgres.Migrar(ctx, pool); err != nil {
		fatal("migrações do banco", err)
	}

	fonte, err := abrirFonte(*arquivo, *aba)
	if err != nil {
		fatal("abrir planilha", err)
	}
	defer fonte.Close()

	inicio := time.Now()
	res, err := importacao.NewUseCase(postgres.NewPedidoRepository(pool)).Importar(ctx, fonte)
	if err != nil {
		fatal("importar", err)
	}

	fmt.Printf("Importação concluída em %s: %d inseridos, %d pulados (duplicados)\n",
		time.Since(inicio).Round(time.Millisecond), res.Inseridos, res.Pulados)
}

// abrirFonte escolhe o leitor pela extensão do arquivo.
func abrirFonte(caminho, aba string) (importacao.FonteLinhas, error) {
	switch strings.ToLower(filepath.Ext(caminho)) {
	case ".xlsx":
		return planilha.AbrirXLSX(caminho, aba)
	case ".csv":
		return planilha.AbrirCSV(caminho)
	default:
		return nil, fmt.Errorf("extensão não suportada em %s (use .xlsx ou .csv)", caminho)
	}
}

func fatal(etapa string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", etapa, err)
	os.Exit(1)
}
