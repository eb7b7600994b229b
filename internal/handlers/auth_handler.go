package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sidsmartz/SkillTag/dto"
	"github.com/Sidsmartz/SkillTag/internal/apperr"
	"github.com/Sidsmartz/SkillTag/internal/authctx"
	"github.com/Sidsmartz/SkillTag/internal/repository"
	"github.com/Sidsmartz/SkillTag/model"
)

type AuthHandler struct {
	companies *repository.CompanyRepository
	jwtKey    []byte
}

func NewAuthHandler(companies *repository.CompanyRepository, key []byte) *AuthHandler {
	return &AuthHandler{companies: companies, jwtKey: key}
}

// @Summary Register a company account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Company fields"
// @Success 201 {object} map[string]interface{}
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" || strings.TrimSpace(req.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "name, email and password required"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, err, "Failed to register")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = h.companies.Insert(ctx, model.Company{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if errors.Is(err, apperr.ErrEmailTaken) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "email already registered"})
	}
	if err != nil {
		return fail(c, err, "Failed to register")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

// @Summary Company login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "email and password required"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	co, err := h.companies.FindByEmail(ctx, email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid credentials"})
	}
	if bcrypt.CompareHashAndPassword([]byte(co.PasswordHash), []byte(req.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid credentials"})
	}

	signed, err := signSession(h.jwtKey, co.ID.Hex(), co.Email, co.Name, authctx.RoleCompany, 24*time.Hour)
	if err != nil {
		return fail(c, err, "Failed to sign token")
	}
	return c.JSON(dto.LoginResponse{AccessToken: signed})
}

// @Summary Echo the authenticated principal
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	email, ok := authctx.EmailFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}
	return c.JSON(fiber.Map{
		"email": email,
		"name":  authctx.NameFrom(c),
		"role":  authctx.RoleFrom(c),
	})
}

// signSession issues the HS256 session token both login flows share.
func signSession(key []byte, sub, email, name, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   sub,
		"email": email,
		"name":  name,
		"role":  role,
		"exp":   time.Now().Add(ttl).Unix(),
		"iat":   time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}
