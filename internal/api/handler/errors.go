package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/domain"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/pkg/logger"
)

type ErrorCode string

const (
	CodeProjectExists  ErrorCode = "PROJECT_EXISTS"
	CodeMRExists       ErrorCode = "MR_EXISTS"
	CodeReviewExists   ErrorCode = "REVIEW_EXISTS"
	CodePipelineExists ErrorCode = "PIPELINE_EXISTS"
	CodeNotFound       ErrorCode = "NOT_FOUND"
	CodeInvalidArg     ErrorCode = "INVALID_ARGUMENT"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func WriteError(w http.ResponseWriter, err error, logger *logger.Logger) {
	status, response := mapError(err)

	if isDomainError(err) {
		logger.Warn("domain error",
			"error", err.Error(),
			"code", response.Error.Code,
		)
	} else {
		logger.Error("unexpected error",
			"error", err.Error(),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

func mapError(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, domain.ErrProjectExists):
		return http.StatusConflict, errorResponse(CodeProjectExists, err)

	case errors.Is(err, domain.ErrMRExists):
		return http.StatusConflict, errorResponse(CodeMRExists, err)

	case errors.Is(err, domain.ErrReviewExists):
		return http.StatusConflict, errorResponse(CodeReviewExists, err)

	case errors.Is(err, domain.ErrPipelineExists):
		return http.StatusConflict, errorResponse(CodePipelineExists, err)

	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest, errorResponse(CodeInvalidArg, err)

	case errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrMRNotFound),
		errors.Is(err, domain.ErrPipelineNotFound):
		return http.StatusNotFound, errorResponse(CodeNotFound, err)

	default:
		return http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: "internal server error",
			},
		}
	}
}

func errorResponse(code ErrorCode, err error) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	}
}

func isDomainError(err error) bool {
	return errors.Is(err, domain.ErrProjectExists) ||
		errors.Is(err, domain.ErrProjectNotFound) ||
		errors.Is(err, domain.ErrMRExists) ||
		errors.Is(err, domain.ErrMRNotFound) ||
		errors.Is(err, domain.ErrReviewExists) ||
		errors.Is(err, domain.ErrPipelineExists) ||
		errors.Is(err, domain.ErrPipelineNotFound) ||
		errors.Is(err, domain.ErrInvalidArgument)
}
