package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// DB疎通確認
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.root)
}

type healthResponse struct {
	Time time.Time `json:"time"`
}

func (h *HealthHandler) root(c echo.Context) error {
	var now time.Time
	err := h.db.WithContext(c.Request().Context()).
		Raw("SELECT NOW()").
		Scan(&now).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "db error"})
	}
	return c.JSON(http.StatusOK, healthResponse{Time: now})
}
