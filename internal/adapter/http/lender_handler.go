package http

import (
	"net/http"

	"lendhub-backend/internal/usecase/lender"

	"github.com/labstack/echo/v4"
)

type LenderHandler struct{ uc *lender.Usecase }

func NewLenderHandler(uc *lender.Usecase) *LenderHandler { return &LenderHandler{uc: uc} }

func (h *LenderHandler) ListActive(c echo.Context) error {
	out, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LenderHandler) GetBySlug(c echo.Context) error {
	l, err := h.uc.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LenderHandler) GetByID(c echo.Context) error {
	l, err := h.uc.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}
