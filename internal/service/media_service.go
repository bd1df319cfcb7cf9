package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"pengasuh_backend/internal/model"
	"pengasuh_backend/internal/util"

	"go.uber.org/zap"
)

type MediaService struct {
	Repo    MediaRepositoryI
	Storage *StorageService
	log     *zap.Logger
}

func NewMediaService(repo MediaRepositoryI, storage *StorageService, log *zap.Logger) *MediaService {
	return &MediaService{Repo: repo, Storage: storage, log: log}
}

// List returns a topic's media. An empty kind means all kinds.
func (s *MediaService) List(ctx context.Context, topic, kind string) ([]model.MediaContent, error) {
	t := model.MediaTopic(topic)
	if !t.Valid() {
		return nil, util.ErrInvalidTopic
	}
	k := model.MediaKind(kind)
	if k != "" && !k.Valid() {
		return nil, util.ErrInvalidMediaKind
	}
	items, err := s.Repo.ListByTopic(ctx, t, k)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.MediaContent{}
	}
	return items, nil
}

type MediaRequest struct {
	Topic        string `json:"topic" form:"topic" binding:"required"`
	Kind         string `json:"kind" form:"kind" binding:"required"`
	Title        string `json:"title" form:"title" binding:"max=255"`
	Link         string `json:"link" form:"link"`
	DisplayOrder int    `json:"displayOrder" form:"displayOrder"`
}

func (r MediaRequest) validate() error {
	if !model.MediaTopic(r.Topic).Valid() {
		return util.ErrInvalidTopic
	}
	if !model.MediaKind(r.Kind).Valid() {
		return util.ErrInvalidMediaKind
	}
	return nil
}

func (s *MediaService) Create(ctx context.Context, req MediaRequest) (*model.MediaContent, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Link) == "" {
		return nil, util.ErrInvalidMediaLink
	}
	item := &model.MediaContent{
		Topic:        model.MediaTopic(req.Topic),
		Kind:         model.MediaKind(req.Kind),
		Title:        strings.TrimSpace(req.Title),
		Link:         strings.TrimSpace(req.Link),
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Upload stores the file and creates a media row pointing at it. Images and
// videos must match the declared kind; articles accept PDF.
func (s *MediaService) Upload(ctx context.Context, file *multipart.FileHeader, req MediaRequest) (*model.MediaContent, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	if file.Size > util.MaxUploadSize {
		return nil, util.ErrFileTooLarge
	}

	allowed := map[model.MediaKind][]string{
		model.Image:   {util.MimeImage},
		model.Video:   {util.MimeVideo},
		model.Article: {util.MimePDF},
	}[model.MediaKind(req.Kind)]

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, allowed)
	if err != nil {
		return nil, util.ErrInvalidFileType
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := fmt.Sprintf("media/%s/%s_%s%s", req.Topic, time.Now().Format("20060102150405"), util.GenerateRandomString(8), ext)
	url, err := s.Storage.Upload(ctx, filename, src, file.Size, mimeType)
	if err != nil {
		return nil, fmt.Errorf("store media: %w", err)
	}

	if req.Title == "" {
		req.Title = strings.TrimSuffix(file.Filename, filepath.Ext(file.Filename))
	}
	req.Link = url
	item, err := s.Create(ctx, req)
	if err != nil {
		if derr := s.Storage.Delete(ctx, filename); derr != nil {
			s.log.Warn("orphaned media file", zap.String("file", filename), zap.Error(derr))
		}
		return nil, err
	}
	s.log.Info("media uploaded", zap.String("topic", req.Topic), zap.String("url", url))
	return item, nil
}
