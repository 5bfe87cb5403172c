package entity

import "time"

// Usuario representa um usuário interno do sistema de compras.
type Usuario struct {
	ID        int64
	Username  string
	SenhaHash string // hash bcrypt, nunca a senha em claro após persistir
	IsAdmin   bool
	CriadoEm  time.Time
}
