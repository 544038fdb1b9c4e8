package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/admission/internal/dto"
	"github.com/lshigami/admission/internal/service"
	"github.com/lshigami/admission/internal/upload"
	"github.com/rs/zerolog/log"
)

const (
	ctxUserID = "user_id"
	ctxEmail  = "email"
	ctxRole   = "role"
)

// TokenAuth accepts "Authorization: Token <jwt>" and the Bearer form.
func TokenAuth(tokens service.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		scheme, raw, found := strings.Cut(header, " ")
		if !found || (!strings.EqualFold(scheme, "Token") && !strings.EqualFold(scheme, "Bearer")) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Status: dto.StatusError, Message: "Authentication credentials were not provided"})
			return
		}
		claims, err := tokens.Parse(strings.TrimSpace(raw))
		if err != nil {
			log.Debug().Err(err).Str("path", c.FullPath()).Msg("Rejected token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Status: dto.StatusError, Message: "Invalid or expired token"})
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// RequireRole must run after TokenAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Status: dto.StatusError, Message: "You do not have permission to perform this action"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user set by TokenAuth.
func UserID(c *gin.Context) uint {
	return c.GetUint(ctxUserID)
}

// RespondError maps service errors onto status codes and the error envelope.
func RespondError(c *gin.Context, err error, fallback string) {
	var verr *service.ValidationFailedError
	var rej *upload.RejectedError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Status: dto.StatusError, Message: "Validation failed", Errors: verr.Errors})
	case errors.As(err, &rej):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Status: dto.StatusError, Message: rej.Reason})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Status: dto.StatusError, Message: "Not found"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Status: dto.StatusError, Message: err.Error()})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Status: dto.StatusError, Message: err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg(fallback)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Status: dto.StatusError, Message: fallback})
	}
}
