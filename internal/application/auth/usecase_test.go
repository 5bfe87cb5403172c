package auth_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ctcsistemas/compras-api/internal/application/auth"
	"github.com/ctcsistemas/compras-api/internal/application/dto"
	"github.com/ctcsistemas/compras-api/internal/domain"
	"github.com/ctcsistemas/compras-api/internal/domain/entity"
	pkgjwt "github.com/ctcsistemas/compras-api/pkg/jwt"
)

const (
	testSecret = "segredo-de-teste"
	testIssuer = "compras-api-test"
)

// ── fake do repositório ───────────────────────────────────────────────────────

type fakeUsuarioRepo struct {
	usuarios map[string]*entity.Usuario // por username
	proximo  int64
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[string]*entity.Usuario), proximo: 1}
}

func (f *fakeUsuarioRepo) Criar(_ context.Context, u *entity.Usuario) error {
	if _, existe := f.usuarios[u.Username]; existe {
		return domain.ErrUsuarioJaExiste
	}
	u.ID = f.proximo
	f.proximo++
	copia := *u
	f.usuarios[u.Username] = &copia
	return nil
}

func (f *fakeUsuarioRepo) BuscarPorID(_ context.Context, id int64) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.ID == id {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) BuscarPorUsername(_ context.Context, username string) (*entity.Usuario, error) {
	u, ok := f.usuarios[username]
	if !ok {
		return nil, nil
	}
	copia := *u
	return &copia, nil
}

func (f *fakeUsuarioRepo) Listar(_ context.Context) ([]*entity.Usuario, error) {
	out := make([]*entity.Usuario, 0, len(f.usuarios))
	for _, u := range f.usuarios {
		copia := *u
		out = append(out, &copia)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Username < out[b].Username })
	return out, nil
}

func (f *fakeUsuarioRepo) AtualizarSenha(_ context.Context, id int64, senhaHash string) error {
	for _, u := range f.usuarios {
		if u.ID == id {
			u.SenhaHash = senhaHash
			return nil
		}
	}
	return domain.ErrUsuarioNaoEncontrado
}

func (f *fakeUsuarioRepo) Redefinir(_ context.Context, u *entity.Usuario) error {
	if atual, ok := f.usuarios[u.Username]; ok {
		atual.SenhaHash = u.SenhaHash
		atual.IsAdmin = u.IsAdmin
		u.ID = atual.ID
		return nil
	}
	return f.Criar(context.Background(), u)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func buildUseCase(t *testing.T) (*auth.UseCase, *fakeUsuarioRepo) {
	t.Helper()
	repo := newFakeUsuarioRepo()
	uc := auth.NewUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: testIssuer})
	return uc, repo
}

func seedUsuario(t *testing.T, repo *fakeUsuarioRepo, username, senha string, admin bool) *entity.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.Usuario{Username: username, SenhaHash: string(hash), IsAdmin: admin}
	require.NoError(t, repo.Criar(context.Background(), u))
	return u
}

// ── Login ─────────────────────────────────────────────────────────────────────

func TestLogin_CredenciaisValidasGeramToken(t *testing.T) {
	uc, repo := buildUseCase(t)
	seedUsuario(t, repo, "maria", "senha-forte", true)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "maria", Senha: "senha-forte"})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "maria", resp.Usuario.Username)
	assert.True(t, resp.Usuario.IsAdmin)

	userID, username, isAdmin, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err, "o token devolvido deve ser válido")
	assert.Equal(t, resp.Usuario.ID, userID)
	assert.Equal(t, "maria", username)
	assert.True(t, isAdmin)
}

func TestLogin_AparaEspacosDasCredenciais(t *testing.T) {
	uc, repo := buildUseCase(t)
	seedUsuario(t, repo, "joao", "minha-senha", false)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "  joao ", Senha: " minha-senha "})
	assert.NoError(t, err)
}

func TestLogin_SenhaErradaRecusa(t *testing.T) {
	uc, repo := buildUseCase(t)
	seedUsuario(t, repo, "maria", "senha-forte", false)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "maria", Senha: "errada"})
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)
}

func TestLogin_UsuarioInexistenteRecusa(t *testing.T) {
	uc, _ := buildUseCase(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "fantasma", Senha: "qualquer"})
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas,
		"usuário inexistente e senha errada devem dar o mesmo erro")
}

func TestLogin_CamposVaziosRecusam(t *testing.T) {
	uc, _ := buildUseCase(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)
}

func TestLogin_AdminAdminNaoEntraSemCadastro(t *testing.T) {
	// não existe credencial embutida: admin/admin só entra se o usuário
	// estiver cadastrado com essa senha
	uc, repo := buildUseCase(t)
	seedUsuario(t, repo, "admin", "senha-de-verdade", true)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Senha: "admin"})
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)
}

// ── CriarUsuario ──────────────────────────────────────────────────────────────

func TestCriarUsuario_GuardaHashENuncaASenha(t *testing.T) {
	uc, repo := buildUseCase(t)

	resp, err := uc.CriarUsuario(context.Background(), dto.CriarUsuarioRequest{
		Username: "carlos", Senha: "segredo123", IsAdmin: false,
	})

	require.NoError(t, err)
	assert.Equal(t, "carlos", resp.Username)

	guardado := repo.usuarios["carlos"]
	require.NotNil(t, guardado)
	assert.NotEqual(t, "segredo123", guardado.SenhaHash, "a senha nunca é persistida em claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.SenhaHash), []byte("segredo123")),
		"o hash gravado deve conferir com a senha original")
}

func TestCriarUsuario_CamposObrigatorios(t *testing.T) {
	uc, _ := buildUseCase(t)

	_, err := uc.CriarUsuario(context.Background(), dto.CriarUsuarioRequest{Username: "", Senha: "x"})
	assert.ErrorIs(t, err, domain.ErrCamposObrigatorios)

	_, err = uc.CriarUsuario(context.Background(), dto.CriarUsuarioRequest{Username: "x", Senha: "  "})
	assert.ErrorIs(t, err, domain.ErrCamposObrigatorios)
}

func TestCriarUsuario_DuplicadoRecusa(t *testing.T) {
	uc, repo := buildUseCase(t)
	seedUsuario(t, repo, "carlos", "abc", false)

	_, err := uc.CriarUsuario(context.Background(), dto.CriarUsuarioRequest{Username: "carlos", Senha: "outra"})
	assert.ErrorIs(t, err, domain.ErrUsuarioJaExiste)
}

// ── AlterarSenha ──────────────────────────────────────────────────────────────

func TestAlterarSenha_TrocaComSenhaAtualCorreta(t *testing.T) {
	uc, repo := buildUseCase(t)
	u := seedUsuario(t, repo, "maria", "antiga", false)

	err := uc.AlterarSenha(context.Background(), u.ID, dto.AlterarSenhaRequest{
		SenhaAtual: "antiga", SenhaNova: "nova-senha", SenhaConfirmacao: "nova-senha",
	})

	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(repo.usuarios["maria"].SenhaHash), []byte("nova-senha")))
}

func TestAlterarSenha_SenhaAtualErradaRecusa(t *testing.T) {
	uc, repo := buildUseCase(t)
	u := seedUsuario(t, repo, "maria", "antiga", false)

	err := uc.AlterarSenha(context.Background(), u.ID, dto.AlterarSenhaRequest{
		SenhaAtual: "errada", SenhaNova: "nova", SenhaConfirmacao: "nova",
	})
	assert.ErrorIs(t, err, domain.ErrSenhaAtualIncorreta)
}

func TestAlterarSenha_ConfirmacaoDiferenteRecusa(t *testing.T) {
	uc, repo := buildUseCase(t)
	u := seedUsuario(t, repo, "maria", "antiga", false)

	err := uc.AlterarSenha(context.Background(), u.ID, dto.AlterarSenhaRequest{
		SenhaAtual: "antiga", SenhaNova: "nova", SenhaConfirmacao: "diferente",
	})
	assert.ErrorIs(t, err, domain.ErrSenhasNaoConferem)
}

func TestAlterarSenha_CamposVaziosRecusam(t *testing.T) {
	uc, repo := buildUseCase(t)
	u := seedUsuario(t, repo, "maria", "antiga", false)

	err := uc.AlterarSenha(context.Background(), u.ID, dto.AlterarSenhaRequest{})
	assert.ErrorIs(t, err, domain.ErrCamposObrigatorios)
}

// ── ListarUsuarios ────────────────────────────────────────────────────────────

func TestListarUsuarios_OrdenadosPorUsername(t *testing.T) {
	uc, repo := buildUseCase(t)
	seedUsuario(t, repo, "zeca", "x", false)
	seedUsuario(t, repo, "ana", "x", true)

	lista, err := uc.ListarUsuarios(context.Background())

	require.NoError(t, err)
	require.Len(t, lista, 2)
	assert.Equal(t, "ana", lista[0].Username)
	assert.True(t, lista[0].IsAdmin)
	assert.Equal(t, "zeca", lista[1].Username)
}
