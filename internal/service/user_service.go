package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"pengasuh_backend/internal/model"
	"pengasuh_backend/internal/util"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService manages the caller's own profile.
type UserService struct {
	UserRepo UserRepositoryI
	Storage  *StorageService
	log      *zap.Logger
}

func NewUserService(userRepo UserRepositoryI, storage *StorageService, log *zap.Logger) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Storage:  storage,
		log:      log,
	}
}

func (s *UserService) Profile(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

type UpdateProfileRequest struct {
	FullName string `json:"fullName" binding:"required,max=100"`
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, req UpdateProfileRequest) (*model.User, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.FullName = strings.TrimSpace(req.FullName)
	if err := s.UserRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

func (s *UserService) ChangePassword(ctx context.Context, userID uint, req ChangePasswordRequest) error {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return util.ErrInvalidCredentials
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return s.UserRepo.Update(ctx, user)
}

// UploadAvatar stores an image and points the user's avatar at it. The
// previous avatar file is left in place.
func (s *UserService) UploadAvatar(ctx context.Context, userID uint, file *multipart.FileHeader) (*model.User, error) {
	if file.Size > util.MaxUploadSize {
		return nil, util.ErrFileTooLarge
	}

	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, []string{util.MimeImage})
	if err != nil {
		return nil, util.ErrInvalidFileType
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := fmt.Sprintf("avatars/%d_%s_%s%s", userID, time.Now().Format("20060102150405"), util.GenerateRandomString(6), ext)

	url, err := s.Storage.Upload(ctx, filename, src, file.Size, mimeType)
	if err != nil {
		return nil, fmt.Errorf("store avatar: %w", err)
	}

	user.Avatar = url
	if err := s.UserRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info("avatar updated", zap.Uint("user_id", userID), zap.String("url", url))
	return user, nil
}
