// controllers/report.go
package controllers

import (
	"net/http"

	"laundrypos-backend/services"
	"laundrypos-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

// GetDailyBreakdown returns today's released revenue per payment method
func (rc *ReportController) GetDailyBreakdown(c *gin.Context) {
	report, err := rc.reports.DailyBreakdown(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build daily report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetStats returns today's order counts per board column
func (rc *ReportController) GetStats(c *gin.Context) {
	stats, err := rc.reports.StatsToday(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetExport returns released orders for ?range=today or ?range=month
func (rc *ReportController) GetExport(c *gin.Context) {
	var (
		orders interface{}
		err    error
	)

	switch c.DefaultQuery("range", "today") {
	case "today":
		orders, err = rc.reports.ExportToday(c.Request.Context())
	case "month":
		orders, err = rc.reports.ExportThisMonth(c.Request.Context())
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "range must be 'today' or 'month'")
		return
	}

	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build export")
		return
	}

	c.JSON(http.StatusOK, orders)
}
