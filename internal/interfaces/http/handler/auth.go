package handler

import (
	"github.com/bizdash/backend/internal/application/identity"
	"github.com/bizdash/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identity.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SignUp godoc
// @ID           signUp
// @Summary      Create an account
// @Description  Registers a business owner. The account cannot sign in until it is approved.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identity.SignUpRequest true "Account details"
// @Success      201 {object} APIResponse[identity.UserResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      429 {object} ErrorResponse
// @Router       /identity/auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req identity.SignUpRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.authService.SignUp(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, user)
}

// SignIn godoc
// @ID           signIn
// @Summary      Sign in
// @Description  Exchanges email and password for an access and refresh token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identity.SignInRequest true "Credentials"
// @Success      200 {object} APIResponse[identity.SignInResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      429 {object} ErrorResponse
// @Router       /identity/auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req identity.SignInRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.authService.SignIn(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Refresh godoc
// @ID           refreshToken
// @Summary      Refresh tokens
// @Description  Rotates a refresh token. The submitted token cannot be used again.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identity.RefreshRequest true "Refresh token"
// @Success      200 {object} APIResponse[identity.SignInResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /identity/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req identity.RefreshRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Refresh(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SignOut godoc
// @ID           signOut
// @Summary      Sign out
// @Description  Revokes the access token used for this request
// @Tags         auth
// @Produce      json
// @Success      204
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /identity/auth/signout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.authService.SignOut(c.Request.Context(), claims); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Me godoc
// @ID           getCurrentUser
// @Summary      Current user
// @Description  Returns the profile of the signed-in owner
// @Tags         auth
// @Produce      json
// @Success      200 {object} APIResponse[identity.UserResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /identity/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	ownerID, ok := h.Owner(c)
	if !ok {
		return
	}

	user, err := h.authService.Me(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}
