package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/quillsign/quillsign/internal/application"
	"github.com/quillsign/quillsign/internal/domain/user"
	"github.com/quillsign/quillsign/pkg/response"
	"github.com/quillsign/quillsign/pkg/utils"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func bindingErrorMessage(err error) string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		lbl := strings.ToLower(fe.StructField())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", lbl))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", lbl))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", lbl))
		}
	}
	return strings.Join(msgs, "; ")
}

// Register godoc
// @Summary User registration
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.RegisterDTO true "User registration info"
// @Success 201 {object} response.MessageResponse "User registered successfully"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.RegisterDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	if err := h.svc.Register(input); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "register", "user", input.Email, nil, nil, "user registered", h.svc.Repos.Audit)
	c.JSON(http.StatusCreated, response.MessageResponse{Message: "User registered successfully"})
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginDTO true "Login credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	usr, token, err := h.svc.Login(input.Email, input.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.SetCookie("token", token, 24*60*60, "/", "", false, true)
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UID:      usr.ID,
		Username: usr.Username,
	})
}

func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logged out"})
}

// Me returns the authenticated user's profile.
func (h *UserHandler) Me(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	usr, err := h.svc.FindUserByID(uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// AuthStatusHandler reports whether the presented token is still valid.
func AuthStatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
