package planilha

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/ctcsistemas/compras-api/internal/application/importacao"
)

// LeitorCSV lê um CSV exportado da planilha de compras. Exportações antigas
// do Excel brasileiro vêm em ISO-8859-1 e separadas por ponto e vírgula;
// ambos os casos são detectados pelo conteúdo.
type LeitorCSV struct {
	leitor *csv.Reader
}

var _ importacao.FonteLinhas = (*LeitorCSV)(nil)

func AbrirCSV(caminho string) (*LeitorCSV, error) {
	dados, err := os.ReadFile(caminho)
	if err != nil {
		return nil, fmt.Errorf("planilha: abrir %s: %w", caminho, err)
	}

	var origem io.Reader = bytes.NewReader(dados)
	if !utf8.Valid(dados) {
		origem = transform.NewReader(origem, charmap.ISO8859_1.NewDecoder())
	}

	leitor := csv.NewReader(origem)
	leitor.Comma = separadorCSV(dados)
	leitor.FieldsPerRecord = -1
	leitor.LazyQuotes = true

	return &LeitorCSV{leitor: leitor}, nil
}

func (l *LeitorCSV) ProximaLinha() ([]string, error) {
	registro, err := l.leitor.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("planilha: ler registro: %w", err)
	}
	return registro, nil
}

// Close não guarda recursos abertos; o arquivo inteiro já foi lido na
// abertura.
func (l *LeitorCSV) Close() error { return nil }

// separadorCSV decide entre ';' e ',' contando as ocorrências na primeira
// linha. Os dois separadores são ASCII, então a contagem vale sobre os
// bytes crus, antes da conversão de charset.
func separadorCSV(dados []byte) rune {
	linha := dados
	if i := bytes.IndexByte(dados, '\n'); i >= 0 {
		linha = dados[:i]
	}
	if bytes.Count(linha, []byte{';'}) >= bytes.Count(linha, []byte{','}) {
		return ';'
	}
	return ','
}
