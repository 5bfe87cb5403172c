// Package planilha adapta arquivos XLSX e CSV à leitura sequencial que a
// carga de pedidos consome. Cada leitor entrega as células cruas da linha
// seguinte e io.EOF quando o arquivo termina.
package planilha

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ctcsistemas/compras-api/internal/application/importacao"
)

// AbaPadrao é a aba da planilha de compras usada pela CTC.
const AbaPadrao = "COMPRAS"

// LeitorXLSX percorre uma aba de arquivo XLSX linha a linha, sem carregar
// a planilha inteira em memória.
type LeitorXLSX struct {
	arquivo *excelize.File
	linhas  *excelize.Rows
}

var _ importacao.FonteLinhas = (*LeitorXLSX)(nil)

// AbrirXLSX abre a aba informada do arquivo. Aba inexistente interrompe a
// carga na hora, antes de qualquer gravação.
func AbrirXLSX(caminho, aba string) (*LeitorXLSX, error) {
	f, err := excelize.OpenFile(caminho)
	if err != nil {
		return nil, fmt.Errorf("planilha: abrir %s: %w", caminho, err)
	}

	linhas, err := f.Rows(aba)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("planilha: aba %s: %w", aba, err)
	}

	return &LeitorXLSX{arquivo: f, linhas: linhas}, nil
}

func (l *LeitorXLSX) ProximaLinha() ([]string, error) {
	if !l.linhas.Next() {
		if err := l.linhas.Error(); err != nil {
			return nil, fmt.Errorf("planilha: percorrer linhas: %w", err)
		}
		return nil, io.EOF
	}

	celulas, err := l.linhas.Columns()
	if err != nil {
		return nil, fmt.Errorf("planilha: ler células: %w", err)
	}
	return celulas, nil
}

func (l *LeitorXLSX) Close() error {
	if err := l.linhas.Close(); err != nil {
		l.arquivo.Close()
		return err
	}
	return l.arquivo.Close()
}
