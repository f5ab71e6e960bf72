package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc       *usecase.OrderUsecase
	statusUC *usecase.OrderStatusUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase, statusUC *usecase.OrderStatusUsecase) *OrderHandler {
	return &OrderHandler{uc: uc, statusUC: statusUC}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/orders")
	// トークン提示があれば検証してactorを確定する（無ければ素通し）
	g.Use(middleware.OptionalIdentity(cfg.JWTSecret))

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/customer/:id", h.listForCustomer)
	g.GET("/vendor/:id", h.listForVendor)
	g.PATCH("/:id", h.updateStatus)
}

type orderResponse struct {
	Order model.Order `json:"order"`
}

type orderListResponse struct {
	Orders []repo.OrderDetail `json:"orders"`
}

type countedOrderListResponse struct {
	Count  int                `json:"count"`
	Orders []repo.OrderDetail `json:"orders"`
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) create(c echo.Context) error {
	var req usecase.PlaceOrderInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), middleware.AuthUserID(c), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, orderResponse{Order: out})
}

func (h *OrderHandler) list(c echo.Context) error {
	out, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orderListResponse{Orders: out})
}

func (h *OrderHandler) listForCustomer(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.ListForCustomer(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, countedOrderListResponse{Count: len(out), Orders: out})
}

func (h *OrderHandler) listForVendor(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.ListForVendor(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, countedOrderListResponse{Count: len(out), Orders: out})
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req statusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.statusUC.SetStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orderResponse{Order: out})
}
