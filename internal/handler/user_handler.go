package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/vendors", h.vendors)
	api.GET("/customers", h.customers)
}

type vendorsResponse struct {
	Vendors []usecase.VendorDTO `json:"vendors"`
}

type customersResponse struct {
	Customers []usecase.CustomerDTO `json:"customers"`
}

func (h *UserHandler) vendors(c echo.Context) error {
	out, err := h.uc.ListVendors(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, vendorsResponse{Vendors: out})
}

func (h *UserHandler) customers(c echo.Context) error {
	out, err := h.uc.ListCustomers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, customersResponse{Customers: out})
}
