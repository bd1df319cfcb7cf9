package controller

import (
	"pengasuh_backend/internal/service"
	"pengasuh_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MediaController struct {
	MediaService *service.MediaService
}

func NewMediaController(mediaService *service.MediaService) *MediaController {
	return &MediaController{MediaService: mediaService}
}

// List godoc
// @Summary Media edukasi per topik
// @Tags Media
// @Produce json
// @Param topic query string true "Topik" Enums(perawatan_pasien, stres, skizofrenia)
// @Param kind query string false "Jenis media" Enums(artikel, gambar, video)
// @Success 200 {object} util.Response{data=[]model.MediaContent}
// @Failure 400 {object} util.Response
// @Router /media [get]
func (c *MediaController) List(ctx *gin.Context) {
	items, err := c.MediaService.List(ctx.Request.Context(), ctx.Query("topic"), ctx.Query("kind"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// Create godoc
// @Summary Tambah tautan media
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.MediaRequest true "Data media"
// @Success 201 {object} util.Response{data=model.MediaContent}
// @Router /admin/media [post]
func (c *MediaController) Create(ctx *gin.Context) {
	var req service.MediaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	item, err := c.MediaService.Create(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, item)
}

// Upload godoc
// @Summary Unggah berkas media
// @Description Gambar untuk jenis gambar, video untuk jenis video, PDF untuk artikel
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "Berkas"
// @Param topic formData string true "Topik"
// @Param kind formData string true "Jenis media"
// @Param title formData string false "Judul"
// @Param displayOrder formData int false "Urutan"
// @Success 201 {object} util.Response{data=model.MediaContent}
// @Failure 400 {object} util.Response
// @Failure 413 {object} util.Response
// @Router /admin/media/upload [post]
func (c *MediaController) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "berkas wajib diunggah")
		return
	}
	var req service.MediaRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	item, err := c.MediaService.Upload(ctx.Request.Context(), file, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, item)
}
