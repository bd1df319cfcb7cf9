package controller

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"pengasuh_backend/internal/service"
	"pengasuh_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	HistoryService *service.HistoryService
	AuthService    *service.AuthService
}

func NewHistoryController(historyService *service.HistoryService, authService *service.AuthService) *HistoryController {
	return &HistoryController{HistoryService: historyService, AuthService: authService}
}

// List godoc
// @Summary Riwayat tes dan kuis
// @Description Gabungan hasil tes stres dan kuis, terbaru lebih dulu
// @Tags Riwayat
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Jumlah maksimum" default(50)
// @Success 200 {object} util.Response{data=[]service.HistoryEntry}
// @Router /history [get]
func (c *HistoryController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	limit := util.ParseLimit(ctx.Query("limit"), util.DefaultHistoryLimit, util.MaxHistoryLimit)
	entries, err := c.HistoryService.List(ctx.Request.Context(), userID, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// Latest godoc
// @Summary Hasil terakhir
// @Tags Riwayat
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.LatestResults}
// @Router /history/latest [get]
func (c *HistoryController) Latest(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	latest, err := c.HistoryService.Latest(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, latest)
}

// Export godoc
// @Summary Unduh riwayat (PDF)
// @Tags Riwayat
// @Produce application/pdf
// @Security ApiKeyAuth
// @Success 200 {file} file
// @Router /history/export [get]
func (c *HistoryController) Export(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	user, err := c.AuthService.CurrentUser(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var buf bytes.Buffer
	if err := c.HistoryService.ExportPDF(ctx.Request.Context(), user, &buf); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	filename := fmt.Sprintf("riwayat_%s.pdf", time.Now().Format("20060102"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
