package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/coding-online/certexam/config"
	"github.com/coding-online/certexam/internal/dto"
	"github.com/coding-online/certexam/internal/middleware"
	"github.com/coding-online/certexam/internal/model"
	"github.com/coding-online/certexam/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	examService service.ExamDataService
	cfg         *config.Config
}

func NewAuthController(examService service.ExamDataService, cfg *config.Config) *AuthController {
	return &AuthController{examService: examService, cfg: cfg}
}

// Login godoc
// @Summary Authenticate an existing user
// @Description Exchange email and password for a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Unknown email or wrong password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	user, err := c.examService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuth) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "User not found or password incorrect."})
			return
		}
		log.Error().Err(err).Msg("Login: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Login failed"})
		return
	}

	c.respondWithToken(ctx, user)
}

// Signup godoc
// @Summary Register a new user
// @Description Create an account and return a bearer token for it.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registration body dto.SignupRequest true "Registration data"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	user, err := c.examService.Signup(ctx.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "User with this email already exists."})
			return
		}
		log.Error().Err(err).Msg("Signup: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Signup failed"})
		return
	}

	c.respondWithToken(ctx, user)
}

func (c *AuthController) respondWithToken(ctx *gin.Context, user *model.User) {
	ttl := time.Duration(c.cfg.Auth.TokenTTLHours) * time.Hour
	token, err := middleware.GenerateToken(user, c.cfg.Auth.JWTSecret, ttl)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Issuing token failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Could not issue token"})
		return
	}

	var resp dto.AuthResponse
	resp.Token = token
	if err := copier.Copy(&resp.User, user); err != nil {
		log.Error().Err(err).Msg("Copying user to response DTO failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error preparing response"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
