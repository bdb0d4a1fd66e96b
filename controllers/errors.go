package controllers

import (
	"errors"

	"github.com/pratik117-dev/restaurant-site-backend/pkg/resp"
	"github.com/pratik117-dev/restaurant-site-backend/services"

	"github.com/gin-gonic/gin"
)

// fail maps service errors onto the response envelope.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDuplicateAccount),
		errors.Is(err, services.ErrInvalidCode),
		errors.Is(err, services.ErrExpiredCode),
		errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrAccountNotFound):
		resp.NotFound(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
