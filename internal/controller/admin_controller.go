package controller

import (
	"pengasuh_backend/internal/service"
	"pengasuh_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminController manages the question banks.
type AdminController struct {
	QuestionService *service.QuestionService
}

func NewAdminController(questionService *service.QuestionService) *AdminController {
	return &AdminController{QuestionService: questionService}
}

// CreateStressQuestion godoc
// @Summary Tambah pertanyaan tes stres
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.QuestionRequest true "Pertanyaan dengan lima pilihan Likert"
// @Success 201 {object} util.Response{data=model.StressQuestion}
// @Failure 400 {object} util.Response
// @Router /admin/stress/questions [post]
func (c *AdminController) CreateStressQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	q, err := c.QuestionService.CreateStressQuestion(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

// CreateQuizQuestion godoc
// @Summary Tambah pertanyaan kuis
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.KnowledgeQuestionRequest true "Pertanyaan kuis"
// @Success 201 {object} util.Response{data=model.KnowledgeQuestion}
// @Failure 400 {object} util.Response
// @Router /admin/quiz/questions [post]
func (c *AdminController) CreateQuizQuestion(ctx *gin.Context) {
	var req service.KnowledgeQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	q, err := c.QuestionService.CreateKnowledgeQuestion(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, q)
}
