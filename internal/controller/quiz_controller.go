package controller

import (
	"pengasuh_backend/internal/model"
	"pengasuh_backend/internal/service"
	"pengasuh_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// GetQuestions godoc
// @Summary Daftar pertanyaan kuis pengetahuan
// @Description Kunci jawaban tidak ikut dikirim
// @Tags Kuis
// @Produce json
// @Security ApiKeyAuth
// @Param set query string true "Jenis kuis" Enums(pasien, umum)
// @Success 200 {object} util.Response{data=[]service.QuizQuestionView}
// @Failure 400 {object} util.Response
// @Router /quiz/questions [get]
func (c *QuizController) GetQuestions(ctx *gin.Context) {
	set := model.QuizSet(ctx.DefaultQuery("set", string(model.GeneralQuiz)))
	views, err := c.QuizService.ListQuestions(ctx.Request.Context(), set)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

// Submit godoc
// @Summary Kirim jawaban kuis
// @Description Menghitung persentase benar dan kategori pengetahuan (baik, cukup, kurang)
// @Tags Kuis
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.QuizSubmitRequest true "Jawaban per pertanyaan"
// @Success 200 {object} util.Response{data=service.QuizSubmission}
// @Failure 400 {object} util.Response
// @Router /quiz/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req service.QuizSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.QuizService.Submit(ctx.Request.Context(), userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, submission)
}
