package repository

import (
	"context"

	"github.com/ctcsistemas/compras-api/internal/domain/entity"
)

// UsuarioRepository define o porto de persistência para Usuario.
type UsuarioRepository interface {
	Criar(ctx context.Context, u *entity.Usuario) error
	BuscarPorID(ctx context.Context, id int64) (*entity.Usuario, error)
	BuscarPorUsername(ctx context.Context, username string) (*entity.Usuario, error)
	Listar(ctx context.Context) ([]*entity.Usuario, error)
	AtualizarSenha(ctx context.Context, id int64, senhaHash string) error

	// Redefinir cria o usuário ou, se o username já existir, substitui o
	// hash e a flag de admin (uso do cmd/resetadmin).
	Redefinir(ctx context.Context, u *entity.Usuario) error
}
