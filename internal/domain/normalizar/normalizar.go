// Package normalizar concentra as regras de canonicalização de status, TAG,
// dinheiro e datas. A base histórica guarda texto como foi digitado; toda
// comparação e agrupamento passa pela forma canônica definida aqui, e o
// banco espelha Status/Tag nas funções SQL norm_status/norm_tag.
package normalizar

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status devolve a forma canônica de um status de pedido: pontas aparadas,
// maiúsculas e runs internos de espaço colapsados em um só.
// É idempotente: Status(Status(s)) == Status(s).
func Status(raw string) string {
	return strings.Join(strings.Fields(strings.ToUpper(raw)), " ")
}

// Tag devolve a forma canônica de uma TAG de equipamento: pontas aparadas e
// maiúsculas. Espaços internos são preservados.
func Tag(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// ParseValorBRL interpreta um valor monetário em formato brasileiro
// ("1.234,56", prefixo "R$" opcional, espaços tolerados). Vazio ou ilegível
// vira ausente (Valid=false); nunca retorna erro.
func ParseValorBRL(raw string) decimal.NullDecimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.NullDecimal{}
	}
	s = strings.NewReplacer("R$", "", " ", "").Replace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: v, Valid: true}
}

// ParseValorPlanilha interpreta o valor de uma célula de planilha. Células
// numéricas chegam como "1234.56"; células de texto podem vir em formato
// brasileiro ("1.234,56", com "R$"). O ponto só é tratado como separador de
// milhar quando há vírgula decimal. Vazio ou ilegível vira zero.
func ParseValorPlanilha(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	s = strings.NewReplacer("R$", "", " ", "").Replace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return v
}

// FormatValorBRL formata um valor com duas casas decimais no padrão
// brasileiro ("1.234,56"). Valor ausente vira string vazia.
func FormatValorBRL(v decimal.NullDecimal) string {
	if !v.Valid {
		return ""
	}
	s := v.Decimal.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	inteiro, fracao, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, d := range inteiro {
		if i > 0 && (len(inteiro)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	out := b.String() + "," + fracao
	if neg {
		out = "-" + out
	}
	return out
}

// FormatDataBR converte "YYYY-MM-DD" em "DD/MM/YYYY". Qualquer outro texto
// passa inalterado, preservando o que a base histórica tiver guardado.
func FormatDataBR(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02/01/2006")
}

// ParseDataPlanilha aceita datas em "DD/MM/YYYY" ou "YYYY-MM-DD" e devolve a
// forma ISO "YYYY-MM-DD". Texto irreconhecível volta aparado, sem erro.
func ParseDataPlanilha(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	for _, layout := range [...]string{"02/01/2006", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// DataISO converte "YYYY-MM-DD" em data. Qualquer outro texto vira nil, que
// as colunas DATE gravam como NULL.
func DataISO(s string) *time.Time {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &t
}
