package rest

import (
	"context"
	"net/http"
	"time"

	"insureai/business/report"
	"insureai/domain"
	"insureai/pkg/logger"
	"insureai/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	PremiumService interface {
		Predict(ctx context.Context, in domain.RawInput) domain.Prediction
		Status(ctx context.Context) domain.ArtifactStatus
	}

	PremiumHandler struct {
		premiumService PremiumService
		validate       *validator.Validate
		appName        string
		timeout        time.Duration
	}

	ResponseError struct {
		Message string `json:"message"`
	}

	// PageData feeds the index template.
	PageData struct {
		AppName string
		Input   domain.RawInput
		Sexes   []domain.Sex
		Regions []domain.Region
		Report  domain.Report
		Error   string
	}

	PredictionResponse struct {
		Input      domain.RawInput   `json:"input"`
		Prediction domain.Prediction `json:"prediction"`
		Report     domain.Report     `json:"report"`
	}

	HealthResponse struct {
		Status    string                `json:"status"`
		Artifacts domain.ArtifactStatus `json:"artifacts"`
	}
)

const indexTemplate = "index"

func NewPremiumHandler(premiumService PremiumService, appName string, timeout time.Duration) *PremiumHandler {
	return &PremiumHandler{
		premiumService: premiumService,
		validate:       validator.New(),
		appName:        appName,
		timeout:        timeout,
	}
}

func (h *PremiumHandler) page(in domain.RawInput, r domain.Report, errMsg string) PageData {
	return PageData{
		AppName: h.appName,
		Input:   in,
		Sexes:   []domain.Sex{domain.SexMale, domain.SexFemale},
		Regions: domain.Regions,
		Report:  r,
		Error:   errMsg,
	}
}

// GET /
func (h *PremiumHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, indexTemplate, h.page(domain.DefaultInput(), report.Idle(), ""))
}

// POST /predict (form submission)
func (h *PremiumHandler) Submit(c echo.Context) error {
	// unchecked checkboxes are absent from the form, so start from zero
	// values rather than the defaults
	var in domain.RawInput
	if err := c.Bind(&in); err != nil {
		logger.Error("Failed to bind prediction form", "error", err)
		return c.Render(http.StatusBadRequest, indexTemplate, h.page(domain.DefaultInput(), report.Idle(), "Invalid input: "+bindMessage(err)))
	}
	if err := h.validate.Struct(&in); err != nil {
		logger.Error("Failed to validate prediction form", "error", err)
		return c.Render(http.StatusBadRequest, indexTemplate, h.page(in, report.Idle(), "Invalid input: "+err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	p := h.premiumService.Predict(ctx, in)
	return c.Render(http.StatusOK, indexTemplate, h.page(in, present(p), ""))
}

// POST /api/v1/predictions
func (h *PremiumHandler) Predict(c echo.Context) error {
	var in domain.RawInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: bindMessage(err)})
	}
	if err := h.validate.Struct(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	p := h.premiumService.Predict(ctx, in)

	return c.JSON(http.StatusOK, fres.Response.StatusOK(PredictionResponse{
		Input:      in,
		Prediction: p,
		Report:     present(p),
	}))
}

// GET /healthz
func (h *PremiumHandler) Health(c echo.Context) error {
	st := h.premiumService.Status(c.Request().Context())

	status := "ok"
	if !st.Model || !st.Scaler {
		status = "degraded"
	}

	return c.JSON(http.StatusOK, HealthResponse{Status: status, Artifacts: st})
}

// present builds the report and counts its risk level.
func present(p domain.Prediction) domain.Report {
	r := report.Build(p)
	if r.State == domain.ReportResult {
		metrics.RiskLevelTotal.WithLabelValues(string(r.Risk)).Inc()
	}
	return r
}

func bindMessage(err error) string {
	if he, ok := err.(*echo.HTTPError); ok {
		if msg, ok := he.Message.(string); ok {
			return msg
		}
	}
	return err.Error()
}
