// resetadmin cria ou redefine um usuário administrador direto no banco.
// Sem -senha, gera uma senha aleatória e a imprime uma única vez.
//
// Uso: go run ./cmd/resetadmin [-usuario admin] [-senha nova-senha]
package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/ctcsistemas/compras-api/internal/domain/entity"
	"github.com/ctcsistemas/compras-api/internal/infrastructure/postgres"
	"github.com/ctcsistemas/compras-api/pkg/config"
)

func main() {
	usuario := flag.String("usuario", "admin", "username do administrador")
	senha := flag.String("senha", "", "senha nova (vazio gera uma aleatória)")
	flag.Parse()

	novaSenha := *senha
	gerada := false
	if novaSenha == "" {
		var err error
		novaSenha, err = senhaAleatoria()
		if err != nil {
			fatal("gerar senha", err)
		}
		gerada = true
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(novaSenha), bcrypt.DefaultCost)
	if err != nil {
		fatal("gerar hash", err)
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

	u := &entity.Usuario{Username: *usuario, SenhaHash: string(hash), IsAdmin: true}
	if err := postgres.NewUsuarioRepository(pool).Redefinir(ctx, u); err != nil {
		fatal("redefinir usuário", err)
	}

	fmt.Printf("Usuário %q redefinido como administrador (id %d)\n", u.Username, u.ID)
	if gerada {
		fmt.Printf("Senha gerada (guarde agora, não será mostrada de novo): %s\n", novaSenha)
	}
}

// senhaAleatoria devolve 24 caracteres URL-safe de origem criptográfica.
func senhaAleatoria() (string, error) {
	b := make([]byte, 18)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func fatal(etapa string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", etapa, err)
	os.Exit(1)
}
