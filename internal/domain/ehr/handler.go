package ehr

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medscribe/medscribe/internal/platform/auth"
	"github.com/medscribe/medscribe/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/ehr/providers", h.ListProviders)
	api.POST("/ehr/configure", h.Configure)
	api.GET("/ehr/configurations", h.ListConfigurations)
	api.DELETE("/ehr/configurations/:id", h.DeleteConfiguration)
	api.POST("/ehr/test-connection", h.TestConnection)
	api.GET("/ehr/test-history", h.ConnectionTestHistory)
	api.POST("/ehr/submit-prescription", h.SubmitPrescription)
	api.GET("/ehr/submissions", h.ListSubmissions)
	api.GET("/ehr/submissions/:id", h.GetSubmission)
}

func (h *Handler) ListProviders(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    map[string]interface{}{"providers": SupportedProviders()},
	})
}

func (h *Handler) Configure(c echo.Context) error {
	doctorID, ok := auth.DoctorIDFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var cfg Configuration
	if err := c.Bind(&cfg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.SaveConfiguration(c.Request().Context(), doctorID, &cfg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "EHR configuration saved successfully",
		"data": map[string]interface{}{
			"config_id": cfg.ID,
			"provider":  cfg.Provider,
		},
	})
}

func (h *Handler) ListConfigurations(c echo.Context) error {
	doctorID, ok := auth.DoctorIDFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	configs, err := h.svc.ListConfigurations(c.Request().Context(), doctorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    map[string]interface{}{"configurations": configs},
	})
}

func (h *Handler) DeleteConfiguration(c echo.Context) error {
	doctorID, ok := auth.DoctorIDFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	configID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.svc.DeleteConfiguration(c.Request().Context(), doctorID, configID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "configuration not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "EHR configuration deleted successfully",
	})
}

func (h *Handler) TestConnection(c echo.Context) error {
	doctorID, ok := auth.DoctorIDFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var cfg Configuration
	if err := c.Bind(&cfg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	test, err := h.svc.TestConnection(c.Request().Context(), doctorID, &cfg)
	if err != nil {
		if errors.Is(err, ErrInvalidProvider) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": test.Status == StatusConnected,
		"message": test.Message,
		"data": map[string]interface{}{
			"status":        test.Status,
			"response_time": test.ResponseTime,
			"capabilities":  test.Capabilities,
			"fhir_version":  test.FHIRVersion,
		},
	})
}

func (h *Handler) ConnectionTestHistory(c echo.Context) error {
	doctorID, ok := auth.DoctorIDFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	provider := Provider(c.QueryParam("provider"))
	limit := 10
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = n
	}

	tests, err := h.svc.ConnectionTestHistory(c.Request().Context(), doctorID, provider, limit)
	if err != nil {
		if errors.Is(err, ErrInvalidProvider) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    map[string]interface{}{"tests": tests},
	})
}

type submitRequest struct {
	PrescriptionID uuid.UUID `json:"prescription_id"`
	Provider       Provider  `json:"provider"`
}

func (h *Handler) SubmitPrescription(c echo.Context) error {
	doctorID, ok := auth.DoctorIDFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sub, result, err := h.svc.SubmitPrescription(c.Request().Context(), doctorID, req.PrescriptionID, req.Provider)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "prescription not found")
		case errors.Is(err, ErrConfigurationMissing):
			return echo.NewHTTPError(http.StatusBadRequest,
				"EHR configuration not found for "+string(req.Provider))
		case errors.Is(err, ErrInvalidProvider):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	if !result.Success {
		return echo.NewHTTPError(http.StatusBadGateway,
			"EHR submission failed: "+result.Error)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Prescription submitted to EHR successfully",
		"data": map[string]interface{}{
			"submission_id":   sub.ID,
			"ehr_provider":    sub.Provider,
			"patient_fhir_id": result.PatientFHIRID,
			"status_code":     result.StatusCode,
		},
	})
}

func (h *Handler) ListSubmissions(c echo.Context) error {
	doctorID, ok := auth.DoctorIDFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	pg := pagination.FromContext(c)
	status := SubmissionStatus(c.QueryParam("status"))

	subs, total, err := h.svc.ListSubmissions(c.Request().Context(), doctorID, status, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(subs, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetSubmission(c echo.Context) error {
	doctorID, ok := auth.DoctorIDFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	sub, err := h.svc.GetSubmission(c.Request().Context(), id, doctorID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "submission not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    map[string]interface{}{"submission": sub},
	})
}
