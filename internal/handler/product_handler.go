package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	uc        *usecase.ProductUsecase
	uploadDir string
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase, uploadDir string) *ProductHandler {
	return &ProductHandler{uc: uc, uploadDir: uploadDir}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.POST("/products", h.create)
	api.GET("/products", h.list)
	api.DELETE("/products/:id", h.remove)
}

type productResponse struct {
	Product model.Product `json:"product"`
}

type productListResponse struct {
	Products []repo.ProductWithOwner `json:"products"`
}

type productDeleteResponse struct {
	Message string        `json:"message"`
	Product model.Product `json:"product"`
}

// multipart/form-dataで受ける。写真は任意。
func (h *ProductHandler) create(c echo.Context) error {
	in := usecase.CreateProductInput{
		Name:        c.FormValue("name"),
		Price:       c.FormValue("price"),
		Qty:         c.FormValue("qty"),
		Location:    c.FormValue("location"),
		Category:    c.FormValue("category"),
		PhoneNumber: c.FormValue("phone_number"),
		VendorName:  c.FormValue("vendor_name"),
	}

	if v := c.FormValue("user_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
		}
		in.UserID = &id
	}

	// 写真はファイル名だけ保存して中身は解釈しない
	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		name, err := h.savePhoto(fh)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "upload failed"})
		}
		in.Photo = name
	}

	out, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, productResponse{Product: out})
}

func (h *ProductHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, productListResponse{Products: out})
}

func (h *ProductHandler) remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.Delete(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, productDeleteResponse{
		Message: "Product deleted successfully",
		Product: out,
	})
}

// uuidのファイル名で保存し、その名前を返す
func (h *ProductHandler) savePhoto(fh *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}
