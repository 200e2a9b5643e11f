package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskhive/server/internal/domain"
	"github.com/taskhive/server/internal/dto"
	"github.com/taskhive/server/internal/service/authservice"
	"github.com/taskhive/server/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, name, email, password, role, profilePic string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GenerateToken(email, role string) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new account
//	@Description	Create a buyer or worker account with the role-dependent starting coin balance and return a token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Registration payload"
//	@Success		201		{object}	dto.AuthResponseDTO		"Account created"
//	@Failure		400		{object}	utils.Response			"Invalid request body or email taken"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password, req.Role, req.ProfilePic)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrEmailTaken), errors.Is(err, authservice.ErrInvalidRole):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	token, err := h.authService.GenerateToken(user.Email, user.Role)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.AuthResponseDTO{
		Token: token,
		User: dto.UserDTO{
			Name:       user.Name,
			Email:      user.Email,
			Role:       user.Role,
			ProfilePic: user.ProfilePic,
			Coins:      user.Coins,
		},
	})
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Authenticate by email and password and return a token with the account profile.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login payload"
//	@Success		200		{object}	dto.AuthResponseDTO	"Authenticated"
//	@Failure		400		{object}	utils.Response		"Invalid credentials"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidCredentials):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	token, err := h.authService.GenerateToken(user.Email, user.Role)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Token: token,
		User: dto.UserDTO{
			Name:       user.Name,
			Email:      user.Email,
			Role:       user.Role,
			ProfilePic: user.ProfilePic,
			Coins:      user.Coins,
		},
	})
}
