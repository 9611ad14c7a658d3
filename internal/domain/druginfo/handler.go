package druginfo

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/drugs/search", h.SearchDrugs)
	api.POST("/drugs/check-interactions", h.CheckInteractions)
	api.GET("/drugs/:name", h.GetDrug)
}

func (h *Handler) SearchDrugs(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}

	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = n
	}

	drugs := h.svc.Search(query, limit)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    drugs,
		"count":   len(drugs),
	})
}

func (h *Handler) GetDrug(c echo.Context) error {
	d, ok := h.svc.Lookup(c.Param("name"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "drug not found")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    d,
	})
}

func (h *Handler) CheckInteractions(c echo.Context) error {
	var names []string
	if err := c.Bind(&names); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(names) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one drug name is required")
	}

	findings := h.svc.CheckInteractions(names)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"drugs_checked":     names,
			"interactions":      findings,
			"interaction_count": len(findings),
		},
	})
}
