package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ctcsistemas/compras-api/internal/application/auth"
	"github.com/ctcsistemas/compras-api/internal/application/dto"
	"github.com/ctcsistemas/compras-api/internal/domain"
)

// UsuarioHandler trata a gestão de usuários (rotas de admin) e a troca de
// senha do próprio usuário.
type UsuarioHandler struct {
	uc *auth.UseCase
}

// NewUsuarioHandler constrói o handler de usuários.
func NewUsuarioHandler(uc *auth.UseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Criar godoc
// @Summary      Cadastrar usuário
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarUsuarioRequest  true  "username, senha, is_admin"
// @Success      201   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/usuarios [post]
func (h *UsuarioHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	usuario, err := h.uc.CriarUsuario(c.Context(), in)
	if err != nil {
		if err == domain.ErrCamposObrigatorios {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username e senha são obrigatórios"})
		}
		if err == domain.ErrUsuarioJaExiste {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "USER_EXISTS", Message: "username já cadastrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(usuario)
}

// Listar godoc
// @Summary      Listar usuários
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.UsuarioResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/usuarios [get]
func (h *UsuarioHandler) Listar(c *fiber.Ctx) error {
	usuarios, err := h.uc.ListarUsuarios(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(usuarios)
}

// AlterarSenha godoc
// @Summary      Trocar a própria senha
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AlterarSenhaRequest  true  "senha_atual, senha_nova, senha_confirmacao"
// @Success      200   {object}  dto.MensagemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/usuarios/senha [put]
func (h *UsuarioHandler) AlterarSenha(c *fiber.Ctx) error {
	usuarioID := GetUserID(c)
	if usuarioID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id não encontrado no token"})
	}
	var in dto.AlterarSenhaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.AlterarSenha(c.Context(), usuarioID, in); err != nil {
		if err == domain.ErrCamposObrigatorios {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "senha atual e senha nova são obrigatórias"})
		}
		if err == domain.ErrSenhasNaoConferem {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PASSWORD_MISMATCH", Message: "senha nova e confirmação não conferem"})
		}
		if err == domain.ErrSenhaAtualIncorreta {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "WRONG_PASSWORD", Message: "senha atual incorreta"})
		}
		if err == domain.ErrUsuarioNaoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuário não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "senha alterada"})
}
