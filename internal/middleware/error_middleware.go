package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oztrk/teacherhub/internal/app/models/dto"
	"github.com/oztrk/teacherhub/internal/pkg/apperrors"
	"github.com/oztrk/teacherhub/internal/pkg/logger"
)

// HandleAPIError maps a taxonomy error to its transport status and the
// standard error body. Unclassified errors are logged and reported as an
// internal error without leaking detail.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDBError):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unclassified error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
