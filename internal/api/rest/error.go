package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pokebro/launchpad/internal/domain"
	"github.com/pokebro/launchpad/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest       ErrorCode = "bad_request"
	errCodeNotFound         ErrorCode = "not_found"
	errCodeValidationFailed ErrorCode = "validation_failed"
	errCodeConflict         ErrorCode = "conflict"
	errCodePaymentRequired  ErrorCode = "payment_required"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
	errCodeServiceError  ErrorCode = "service_error"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, errCodeNotFound, message, details...)
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", details)
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, fields...)
	respondWithError(c, http.StatusInternalServerError, errCodeInternalError, message)
}

// respondDomainError maps a ledger error to its HTTP representation.
// Unrecognized errors fall through to 500.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrZeroMint),
		errors.Is(err, domain.ErrBatchTooLarge),
		errors.Is(err, domain.ErrZeroAddress),
		errors.Is(err, domain.ErrZeroAmount),
		errors.Is(err, domain.ErrArrayLengthMismatch),
		errors.Is(err, domain.ErrInvalidFee):
		respondWithError(c, http.StatusBadRequest, errCodeBadRequest, err.Error())

	case errors.Is(err, domain.ErrSetNotFound):
		respondWithError(c, http.StatusNotFound, errCodeNotFound, err.Error())

	case errors.Is(err, domain.ErrPokeBroNotSet),
		errors.Is(err, domain.ErrSaleNotOpen),
		errors.Is(err, domain.ErrSaleAlreadyOpen),
		errors.Is(err, domain.ErrSaleAlreadyClosed),
		errors.Is(err, domain.ErrMaxSetsReached),
		errors.Is(err, domain.ErrMaxBelowMinted),
		errors.Is(err, domain.ErrExceedsSetSupply),
		errors.Is(err, domain.ErrExceedsGlobalSupply),
		errors.Is(err, domain.ErrPlatformPaused),
		errors.Is(err, domain.ErrAlreadyPaused),
		errors.Is(err, domain.ErrNotPaused),
		errors.Is(err, domain.ErrReentrantCall):
		respondWithError(c, http.StatusConflict, errCodeConflict, err.Error())

	case errors.Is(err, domain.ErrInsufficientPayment),
		errors.Is(err, domain.ErrInsufficientBalance):
		respondWithError(c, http.StatusPaymentRequired, errCodePaymentRequired, err.Error())

	case errors.Is(err, domain.ErrTransferFailed):
		logger.Error(err)
		respondWithError(c, http.StatusBadGateway, errCodeServiceError, "payout transfer failed")

	default:
		respondInternalError(c, err, "Internal server error")
	}
}
