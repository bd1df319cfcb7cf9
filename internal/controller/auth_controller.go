package controller

import (
	"pengasuh_backend/internal/service"
	"pengasuh_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// SignUp godoc
// @Summary Daftar akun pengasuh
// @Description Membuat akun baru dengan peran pengasuh
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body service.SignUpRequest true "Data pendaftaran"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "Email sudah terdaftar"
// @Router /auth/sign-up [post]
func (c *AuthController) SignUp(ctx *gin.Context) {
	var req service.SignUpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.SignUp(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, user)
}

// swagger:model SignInRequest
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignIn godoc
// @Summary Masuk
// @Description Memverifikasi email dan kata sandi lalu mengembalikan token JWT
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body SignInRequest true "Kredensial"
// @Success 200 {object} util.Response{data=service.Session}
// @Failure 401 {object} util.Response "Email atau kata sandi salah"
// @Router /auth/sign-in [post]
func (c *AuthController) SignIn(ctx *gin.Context) {
	var req SignInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.AuthService.SignIn(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// SignOut godoc
// @Summary Keluar
// @Description Mencabut token yang sedang dipakai
// @Tags Auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /auth/sign-out [post]
func (c *AuthController) SignOut(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	if err := c.AuthService.SignOut(ctx.Request.Context(), claims); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Me godoc
// @Summary Pengguna saat ini
// @Tags Auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	user, err := c.AuthService.CurrentUser(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, user)
}
