package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado        = errors.New("recurso não encontrado")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrUsuarioJaExiste      = errors.New("usuário já cadastrado")
	ErrEntradaInvalida      = errors.New("entrada inválida")
	ErrNaoAutorizado        = errors.New("não autorizado")
	ErrAcessoNegado         = errors.New("acesso negado")
	ErrCredenciaisInvalidas = errors.New("usuário ou senha inválidos")
	ErrSenhaAtualIncorreta  = errors.New("senha atual incorreta")
	ErrSenhasNaoConferem    = errors.New("senha nova e confirmação não conferem")
	ErrCamposObrigatorios   = errors.New("campos obrigatórios ausentes")
)
