package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-marketplace/internal/dto"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
	"github.com/BruksfildServices01/barber-marketplace/internal/usecase/account"
)

type AuthHandler struct {
	register *account.Register
	auth     *identity.Authenticator
	provider identity.Provider
}

func NewAuthHandler(
	register *account.Register,
	auth *identity.Authenticator,
	provider identity.Provider,
) *AuthHandler {
	return &AuthHandler{register: register, auth: auth, provider: provider}
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	id, err := h.register.Execute(c.Request.Context(), account.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		Role:            req.Role,
		ShopName:        req.ShopName,
		ShopDescription: req.ShopDescription,
		ShopAddress:     req.ShopAddress,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	h.respondWithCredential(c, http.StatusCreated, id)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	id, err := h.auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, identity.ErrInvalidCredentials) {
		httperr.Unauthorized(c, "invalid_credentials", "Email or password is incorrect.")
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}

	h.respondWithCredential(c, http.StatusOK, id)
}

// Logout revokes server side sessions. Tokens simply expire.
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie, err := h.provider.Revoke(c.Request.Context(), c.Request)
	if err != nil && !errors.Is(err, identity.ErrNoIdentity) && !errors.Is(err, identity.ErrInvalidCredentials) {
		writeError(c, err)
		return
	}
	if cookie != nil {
		http.SetCookie(c.Writer, cookie)
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	httpresp.OK(c, who)
}

func (h *AuthHandler) respondWithCredential(c *gin.Context, status int, id identity.Identity) {
	cred, err := h.provider.Issue(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	body := gin.H{"user": id}
	if cred.Token != "" {
		body["token"] = cred.Token
	}
	if cred.Cookie != nil {
		http.SetCookie(c.Writer, cred.Cookie)
	}
	c.JSON(status, body)
}
