package handler

import (
	"fmt"
	"net/http"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/stpnv0/StayBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	input := domain.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
	// only staff may mint staff accounts
	if req.IsStaff {
		if !actor(c).IsStaff {
			h.handleError(c, domain.ErrForbidden)
			return
		}
		input.IsStaff = true
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	tok, err := middleware.IssueToken(h.tokens.Secret, user.ID, user.IsStaff, h.tokens.TTL)
	if err != nil {
		h.handleError(c, fmt.Errorf("issue token: %w", err))
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: tok,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.tokens.TTL.Seconds()),
	})
}

func (h *Handler) CurrentUser(c *ginext.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), actor(c).UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListUsers exposes account emails, so it is staff only.
func (h *Handler) ListUsers(c *ginext.Context) {
	if !actor(c).IsStaff {
		h.handleError(c, domain.ErrForbidden)
		return
	}

	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}
