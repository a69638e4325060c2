package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/courseify/course-api/internal/api/metrics"
	"github.com/courseify/course-api/internal/core/domain"
	"github.com/courseify/course-api/internal/core/ports"
)

// AuthHandler exposes signup and login for both account variants. Signup
// credentials arrive in the JSON body; login credentials arrive in the
// username/password request headers, as in the original API.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// AdminSignup creates an admin account.
//
// @Summary      Register a new admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Desired credentials"
// @Success      200   {object}  authResponse
// @Failure      403   {object}  messageResponse
// @Router       /admin/signup [post]
func (h *AuthHandler) AdminSignup(c echo.Context) error {
	return h.signup(c, domain.RoleAdmin, "Admin already exists!")
}

// UserSignup creates a user account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Desired credentials"
// @Success      200   {object}  authResponse
// @Failure      403   {object}  messageResponse
// @Router       /users/signup [post]
func (h *AuthHandler) UserSignup(c echo.Context) error {
	return h.signup(c, domain.RoleUser, "User already exists")
}

// AdminLogin authenticates an admin from the credential headers.
//
// @Summary      Admin login
// @Tags         admin
// @Produce      json
// @Param        username  header    string  true  "Username"
// @Param        password  header    string  true  "Password"
// @Success      200       {object}  authResponse
// @Failure      403       {object}  messageResponse
// @Router       /admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	return h.login(c, domain.RoleAdmin, "Invalid username and password!")
}

// UserLogin authenticates a user from the credential headers.
//
// @Summary      User login
// @Tags         users
// @Produce      json
// @Param        username  header    string  true  "Username"
// @Param        password  header    string  true  "Password"
// @Success      200       {object}  authResponse
// @Failure      403       {object}  messageResponse
// @Router       /users/login [post]
func (h *AuthHandler) UserLogin(c echo.Context) error {
	return h.login(c, domain.RoleUser, "Invalid username or password")
}

func (h *AuthHandler) signup(c echo.Context, role, existsMessage string) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	result, err := h.authService.Signup(c.Request().Context(), role, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			return c.JSON(http.StatusForbidden, messageResponse{Message: existsMessage})
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "username and password are required"})
		}
		return err
	}

	metrics.SignupsTotal.WithLabelValues(role).Inc()

	return c.JSON(http.StatusOK, authResponse{Message: result.Message, Token: result.Token})
}

func (h *AuthHandler) login(c echo.Context, role, invalidMessage string) error {
	username := c.Request().Header.Get("username")
	password := c.Request().Header.Get("password")

	result, err := h.authService.Login(c.Request().Context(), role, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues(role, "failure").Inc()
			return c.JSON(http.StatusForbidden, messageResponse{Message: invalidMessage})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues(role, "success").Inc()

	return c.JSON(http.StatusOK, authResponse{Message: result.Message, Token: result.Token})
}
