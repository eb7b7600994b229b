package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/Sidsmartz/SkillTag/config"
	"github.com/Sidsmartz/SkillTag/dto"
	"github.com/Sidsmartz/SkillTag/internal/authctx"
	"github.com/Sidsmartz/SkillTag/services"
)

const stateCookie = "oauth_state"

// OAuthHandler runs the Google sign-in flow for students: consent redirect,
// code exchange, then resolve-or-create the student and issue a session JWT.
type OAuthHandler struct {
	oauth            *oauth2.Config
	jwtKey           []byte
	students         *services.StudentService
	frontendLoginURL string
}

func NewOAuthHandler(cfg config.Config, students *services.StudentService) *OAuthHandler {
	return &OAuthHandler{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.OAuthRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		jwtKey:           []byte(cfg.JWTSecret),
		students:         students,
		frontendLoginURL: cfg.FrontendLoginURL,
	}
}

// @Summary Start Google sign-in
// @Tags auth
// @Router /auth/google/login [get]
func (h *OAuthHandler) Login(c *fiber.Ctx) error {
	state := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     stateCookie,
		Value:    state,
		HTTPOnly: true,
		MaxAge:   600,
	})
	return c.Redirect(h.oauth.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
}

// @Summary Google sign-in callback
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LoginResponse
// @Router /auth/google/callback [get]
func (h *OAuthHandler) Callback(c *fiber.Ctx) error {
	if c.Query("state") == "" || c.Query("state") != c.Cookies(stateCookie) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid oauth state"})
	}

	code := c.Query("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "missing code"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	token, err := h.oauth.Exchange(ctx, code)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "code exchange failed"})
	}

	resp, err := h.oauth.Client(ctx, token).Get("https://www.googleapis.com/oauth2/v3/userinfo")
	if err != nil {
		return fail(c, err, "Failed to fetch user info")
	}
	defer resp.Body.Close()

	var info struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return fail(c, err, "Failed to decode user info")
	}

	student, err := h.students.ResolveByEmail(ctx, info.Email, info.Name)
	if err != nil {
		return fail(c, err, "Failed to sign in")
	}

	signed, err := signSession(h.jwtKey, student.ID.Hex(), student.Email, student.Name, authctx.RoleStudent, 7*24*time.Hour)
	if err != nil {
		return fail(c, err, "Failed to sign token")
	}

	if h.frontendLoginURL != "" {
		return c.Redirect(h.frontendLoginURL+"?token="+signed, fiber.StatusTemporaryRedirect)
	}
	return c.JSON(dto.LoginResponse{AccessToken: signed})
}
