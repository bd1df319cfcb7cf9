package controller

import (
	"pengasuh_backend/internal/service"
	"pengasuh_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StressController struct {
	StressService *service.StressService
}

func NewStressController(stressService *service.StressService) *StressController {
	return &StressController{StressService: stressService}
}

// GetQuestions godoc
// @Summary Daftar pertanyaan tes stres
// @Description Pertanyaan skala Likert 0 sampai 4, urut sesuai tampilan
// @Tags Tes Stres
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.StressQuestionView}
// @Router /stress/questions [get]
func (c *StressController) GetQuestions(ctx *gin.Context) {
	views, err := c.StressService.ListQuestions(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

// Submit godoc
// @Summary Kirim jawaban tes stres
// @Description Menghitung skor total dan tingkat stres. Hasil tetap dikembalikan walau gagal disimpan (saved=false).
// @Tags Tes Stres
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.StressSubmitRequest true "Jawaban per pertanyaan"
// @Success 200 {object} util.Response{data=service.StressSubmission}
// @Failure 400 {object} util.Response "Jawaban tidak lengkap atau di luar rentang"
// @Router /stress/submit [post]
func (c *StressController) Submit(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req service.StressSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.StressService.Submit(ctx.Request.Context(), userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, submission)
}
