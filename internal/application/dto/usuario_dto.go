package dto

import "time"

// LoginRequest corpo de POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Senha    string `json:"senha"`
}

// LoginResponse token JWT mais os dados do usuário autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// CriarUsuarioRequest corpo de POST /api/usuarios (senha em claro, o caso de
// uso gera o hash).
type CriarUsuarioRequest struct {
	Username string `json:"username"`
	Senha    string `json:"senha"`
	IsAdmin  bool   `json:"is_admin"`
}

// AlterarSenhaRequest corpo de PUT /api/usuarios/senha.
type AlterarSenhaRequest struct {
	SenhaAtual       string `json:"senha_atual"`
	SenhaNova        string `json:"senha_nova"`
	SenhaConfirmacao string `json:"senha_confirmacao"`
}

// UsuarioResponse saída de um usuário (nunca carrega hash de senha).
type UsuarioResponse struct {
	ID       int64     `json:"id"`
	Username string    `json:"username"`
	IsAdmin  bool      `json:"is_admin"`
	CriadoEm time.Time `json:"criado_em"`
}
