// Package httpapi exposes the credential lifecycle over HTTP with gin.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/acquisitions/internal/logging"
	"github.com/dmitrijs2005/acquisitions/internal/server/auth"
	"github.com/dmitrijs2005/acquisitions/internal/server/models"
	"github.com/dmitrijs2005/acquisitions/internal/server/services"
)

// CredentialService is the part of services.UserService the handlers use.
type CredentialService interface {
	Register(ctx context.Context, w http.ResponseWriter, in services.RegisterInput) (*models.PublicUser, error)
	Authenticate(ctx context.Context, w http.ResponseWriter, in services.CredentialsInput) (*models.PublicUser, error)
	Terminate(ctx context.Context, w http.ResponseWriter) error
	Session(r *http.Request) (*auth.Claims, error)
}

type handler struct {
	users    CredentialService
	validate *validator.Validate
	logger   logging.Logger
	started  time.Time
	now      func() time.Time
}

func newHandler(users CredentialService, logger logging.Logger) *handler {
	now := time.Now
	return &handler{
		users:    users,
		validate: newValidator(),
		logger:   logger,
		started:  now(),
		now:      now,
	}
}

func (h *handler) signUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBind(&req); err != nil {
		writeValidationError(c, msgMalformedBody)
		return
	}
	req.normalize()
	if err := h.validate.Struct(&req); err != nil {
		writeValidationError(c, formatValidationError(err))
		return
	}

	user, err := h.users.Register(c.Request.Context(), c.Writer, req.input())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered", "user": user})
}

func (h *handler) signIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBind(&req); err != nil {
		writeValidationError(c, msgMalformedBody)
		return
	}
	req.normalize()
	if err := h.validate.Struct(&req); err != nil {
		writeValidationError(c, formatValidationError(err))
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), c.Writer, req.input())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User signed in successfully", "user": user})
}

func (h *handler) signOut(c *gin.Context) {
	if err := h.users.Terminate(c.Request.Context(), c.Writer); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User signed out successfully"})
}

func (h *handler) me(c *gin.Context) {
	claims := claimsFrom(c)
	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":    claims.ID,
		"email": claims.Email,
		"role":  claims.Role,
	}})
}

func (h *handler) root(c *gin.Context) {
	c.String(http.StatusOK, "Hello from Acquisitions API!")
}

func (h *handler) health(c *gin.Context) {
	now := h.now()
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": now.UTC().Format(time.RFC3339Nano),
		"uptime":    now.Sub(h.started).Seconds(),
	})
}

func (h *handler) apiBanner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Acquisitions API is running!"})
}
