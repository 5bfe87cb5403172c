package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ctcsistemas/compras-api/internal/domain"
	"github.com/ctcsistemas/compras-api/internal/domain/entity"
	"github.com/ctcsistemas/compras-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação do porto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository constrói o adaptador de persistência de usuários.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

// Criar persiste um usuário novo. Username repetido devolve ErrUsuarioJaExiste.
func (r *UsuarioRepo) Criar(ctx context.Context, u *entity.Usuario) error {
	const query = `
		INSERT INTO usuarios (username, senha_hash, is_admin)
		VALUES ($1, $2, $3)
		RETURNING id, criado_em`

	err := r.pool.QueryRow(ctx, query, u.Username, u.SenhaHash, u.IsAdmin).Scan(&u.ID, &u.CriadoEm)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsuarioJaExiste
		}
		return fmt.Errorf("usuarios.Criar: %w", err)
	}
	return nil
}

// BuscarPorID devolve nil sem erro quando o usuário não existe.
func (r *UsuarioRepo) BuscarPorID(ctx context.Context, id int64) (*entity.Usuario, error) {
	const query = `
		SELECT id, username, senha_hash, is_admin, criado_em
		FROM usuarios WHERE id = $1`
	return r.buscar(ctx, query, id)
}

// BuscarPorUsername devolve nil sem erro quando o usuário não existe.
func (r *UsuarioRepo) BuscarPorUsername(ctx context.Context, username string) (*entity.Usuario, error) {
	const query = `
		SELECT id, username, senha_hash, is_admin, criado_em
		FROM usuarios WHERE username = $1`
	return r.buscar(ctx, query, username)
}

// Listar devolve todos os usuários em ordem de criação.
func (r *UsuarioRepo) Listar(ctx context.Context) ([]*entity.Usuario, error) {
	const query = `
		SELECT id, username, senha_hash, is_admin, criado_em
		FROM usuarios ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("usuarios.Listar: %w", err)
	}
	defer rows.Close()

	var usuarios []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Username, &u.SenhaHash, &u.IsAdmin, &u.CriadoEm); err != nil {
			return nil, fmt.Errorf("usuarios.Listar scan: %w", err)
		}
		usuarios = append(usuarios, &u)
	}
	return usuarios, rows.Err()
}

// AtualizarSenha troca o hash de senha do usuário.
func (r *UsuarioRepo) AtualizarSenha(ctx context.Context, id int64, senhaHash string) error {
	const query = `UPDATE usuarios SET senha_hash = $2 WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id, senhaHash); err != nil {
		return fmt.Errorf("usuarios.AtualizarSenha: %w", err)
	}
	return nil
}

// Redefinir cria o usuário ou, se o username já existir, substitui o hash e a
// flag de admin. A senha anterior não é preservada.
func (r *UsuarioRepo) Redefinir(ctx context.Context, u *entity.Usuario) error {
	const query = `
		INSERT INTO usuarios (username, senha_hash, is_admin)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE
		SET senha_hash = EXCLUDED.senha_hash, is_admin = EXCLUDED.is_admin
		RETURNING id, criado_em`

	err := r.pool.QueryRow(ctx, query, u.Username, u.SenhaHash, u.IsAdmin).Scan(&u.ID, &u.CriadoEm)
	if err != nil {
		return fmt.Errorf("usuarios.Redefinir: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) buscar(ctx context.Context, query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Username, &u.SenhaHash, &u.IsAdmin, &u.CriadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("usuarios.buscar: %w", err)
	}
	return &u, nil
}
