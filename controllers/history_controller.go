package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Irex777/bolt-popcorn-pos/models"
	"github.com/Irex777/bolt-popcorn-pos/services"
)

// HistoryAPI is the slice of the history service the controller needs.
type HistoryAPI interface {
	Query(ctx context.Context, period models.Period) (*services.HistoryResult, error)
}

// ReportAPI renders a history window as a printable document.
type ReportAPI interface {
	Render(sales []models.Sale, rng models.PeriodRange, total decimal.Decimal) ([]byte, error)
}

// HistoryController serves aggregated sales history and its PDF export.
type HistoryController struct {
	history HistoryAPI
	report  ReportAPI
	logger  *zap.Logger
}

// NewHistoryController creates a new HistoryController.
func NewHistoryController(history HistoryAPI, report ReportAPI, logger *zap.Logger) *HistoryController {
	return &HistoryController{history: history, report: report, logger: logger}
}

func (hc *HistoryController) queryPeriod(c *gin.Context) (*services.HistoryResult, models.Period, bool) {
	period, err := models.ParsePeriod(c.DefaultQuery("period", string(models.PeriodDaily)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, "", false
	}

	result, err := hc.history.Query(c.Request.Context(), period)
	if err != nil {
		var load *services.HistoryLoadError
		if errors.As(err, &load) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load sales history"})
			return nil, "", false
		}
		hc.logger.Error("Unexpected history error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load sales history"})
		return nil, "", false
	}

	return result, period, true
}

// GetHistory returns the sales in the requested period, newest first, with
// the aggregate total and the resolved range.
func (hc *HistoryController) GetHistory(c *gin.Context) {
	result, _, ok := hc.queryPeriod(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, result)
}

// ExportReport renders the period's sales as a PDF attachment.
func (hc *HistoryController) ExportReport(c *gin.Context) {
	result, period, ok := hc.queryPeriod(c)
	if !ok {
		return
	}

	doc, err := hc.report.Render(result.Sales, result.Range, result.Total)
	if err != nil {
		hc.logger.Error("Report rendering failed",
			zap.String("period", string(period)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render report"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+services.Filename(period)+`"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}
