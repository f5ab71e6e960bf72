package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// usecaseのkindをHTTPステータスに写す
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if ue, ok := usecase.AsError(err); ok {
		return c.JSON(statusOf(ue.Kind), ErrorResponse{Error: ue.Message})
	}

	// 500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func statusOf(kind usecase.ErrorKind) int {
	switch kind {
	case usecase.KindValidation, usecase.KindInvalidStatus:
		return http.StatusBadRequest
	case usecase.KindProductNotFound, usecase.KindOrderNotFound:
		return http.StatusNotFound
	case usecase.KindUnauthorized:
		return http.StatusUnauthorized
	case usecase.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
