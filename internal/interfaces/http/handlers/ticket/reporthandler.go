package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/back-informatica/chamados/internal/application/ticket/usecases"
	"github.com/back-informatica/chamados/internal/shared/utils"
)

// ReportHandler serves the aggregate endpoints.
type ReportHandler struct {
	getReportUC    usecases.GetReportExecutor
	getDashboardUC usecases.GetDashboardExecutor
}

func NewReportHandler(getReportUC usecases.GetReportExecutor, getDashboardUC usecases.GetDashboardExecutor) *ReportHandler {
	return &ReportHandler{
		getReportUC:    getReportUC,
		getDashboardUC: getDashboardUC,
	}
}

// GetReport handles GET /api/relatorios
func (h *ReportHandler) GetReport(c *gin.Context) {
	result, err := h.getReportUC.Execute(c.Request.Context(), usecases.GetReportQuery{EmpresaID: c.Query("empresa_id")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetDashboard handles GET /api/dashboard
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	result, err := h.getDashboardUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
