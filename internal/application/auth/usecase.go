package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ctcsistemas/compras-api/internal/application/dto"
	"github.com/ctcsistemas/compras-api/internal/domain"
	"github.com/ctcsistemas/compras-api/internal/domain/entity"
	"github.com/ctcsistemas/compras-api/internal/domain/repository"
	"github.com/ctcsistemas/compras-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticação e gestão de usuários.
type UseCase struct {
	usuarios repository.UsuarioRepository
	jwtCfg   JWTConfig
}

// NewUseCase constrói o caso de uso de auth.
func NewUseCase(usuarios repository.UsuarioRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{usuarios: usuarios, jwtCfg: jwtCfg}
}

// Login verifica username/senha contra o hash bcrypt e devolve token JWT e
// usuário. Credenciais inválidas viram ErrCredenciaisInvalidas sem distinguir
// usuário inexistente de senha errada.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	senha := strings.TrimSpace(in.Senha)
	if username == "" || senha == "" {
		return nil, domain.ErrCredenciaisInvalidas
	}

	u, err := uc.usuarios.BuscarPorUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(senha)); err != nil {
		return nil, domain.ErrCredenciaisInvalidas
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Username, u.IsAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: paraUsuarioResponse(u),
	}, nil
}

// CriarUsuario cadastra um usuário com hash bcrypt. Username e senha são
// obrigatórios; username duplicado vira ErrUsuarioJaExiste.
func (uc *UseCase) CriarUsuario(ctx context.Context, in dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error) {
	username := strings.TrimSpace(in.Username)
	senha := strings.TrimSpace(in.Senha)
	if username == "" || senha == "" {
		return nil, domain.ErrCamposObrigatorios
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &entity.Usuario{
		Username:  username,
		SenhaHash: string(hash),
		IsAdmin:   in.IsAdmin,
	}
	if err := uc.usuarios.Criar(ctx, u); err != nil {
		return nil, err
	}

	resp := paraUsuarioResponse(u)
	return &resp, nil
}

// ListarUsuarios devolve todos os usuários ordenados por username.
func (uc *UseCase) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := uc.usuarios.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, paraUsuarioResponse(u))
	}
	return out, nil
}

// AlterarSenha troca a senha do próprio usuário: exige a senha atual correta
// e a confirmação igual à nova.
func (uc *UseCase) AlterarSenha(ctx context.Context, usuarioID int64, in dto.AlterarSenhaRequest) error {
	atual := strings.TrimSpace(in.SenhaAtual)
	nova := strings.TrimSpace(in.SenhaNova)
	conf := strings.TrimSpace(in.SenhaConfirmacao)

	if atual == "" || nova == "" {
		return domain.ErrCamposObrigatorios
	}
	if nova != conf {
		return domain.ErrSenhasNaoConferem
	}

	u, err := uc.usuarios.BuscarPorID(ctx, usuarioID)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUsuarioNaoEncontrado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(atual)); err != nil {
		return domain.ErrSenhaAtualIncorreta
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(nova), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.usuarios.AtualizarSenha(ctx, usuarioID, string(hash))
}

func paraUsuarioResponse(u *entity.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:       u.ID,
		Username: u.Username,
		IsAdmin:  u.IsAdmin,
		CriadoEm: u.CriadoEm,
	}
}
