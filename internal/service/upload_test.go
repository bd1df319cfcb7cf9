package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pengasuh_backend/internal/config"
	"pengasuh_backend/internal/model"
	mock_service "pengasuh_backend/internal/service/mock"
	"pengasuh_backend/internal/util"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

// fileHeader builds a *multipart.FileHeader the way gin would hand it over.
func fileHeader(t *testing.T, field, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File[field][0]
}

func localStorage(t *testing.T) (*StorageService, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.StorageConfig{Type: util.StorageLocal, LocalPath: dir}
	return NewStorageService(cfg, zap.NewNop()), dir
}

func TestUserService_UploadAvatar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage, dir := localStorage(t)
	users := mock_service.NewMockUserRepositoryI(ctrl)
	user := &model.User{FullName: "Sari"}
	user.ID = 2
	users.EXPECT().FindByID(gomock.Any(), uint(2)).Return(user, nil)
	users.EXPECT().Update(gomock.Any(), user).Return(nil)

	svc := NewUserService(users, storage, zap.NewNop())
	got, err := svc.UploadAvatar(context.Background(), 2, fileHeader(t, "avatar", "me.png", pngHeader))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(got.Avatar, "/uploads/avatars/2_"))
	assert.True(t, strings.HasSuffix(got.Avatar, ".png"))

	stored, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(got.Avatar, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, stored)
}

func TestUserService_UploadAvatarRejectsNonImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage, _ := localStorage(t)
	users := mock_service.NewMockUserRepositoryI(ctrl)
	users.EXPECT().FindByID(gomock.Any(), uint(2)).Return(&model.User{}, nil)

	svc := NewUserService(users, storage, zap.NewNop())
	_, err := svc.UploadAvatar(context.Background(), 2, fileHeader(t, "avatar", "me.png", []byte("just some text")))
	assert.ErrorIs(t, err, util.ErrInvalidFileType)
}

func TestUserService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock_service.NewMockUserRepositoryI(ctrl)
	users.EXPECT().FindByID(gomock.Any(), uint(4)).Return(hashedUser(t, "lama12345"), nil).Times(2)
	users.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewUserService(users, nil, zap.NewNop())

	err := svc.ChangePassword(context.Background(), 4, ChangePasswordRequest{OldPassword: "keliru", NewPassword: "baru12345"})
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	err = svc.ChangePassword(context.Background(), 4, ChangePasswordRequest{OldPassword: "lama12345", NewPassword: "baru12345"})
	assert.NoError(t, err)
}

func TestMediaService_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		topic   string
		kind    string
		f       func(*mock_service.MockMediaRepositoryI)
		wantErr error
		wantLen int
	}{
		{
			name:  "topic only",
			topic: "stres",
			f: func(m *mock_service.MockMediaRepositoryI) {
				m.EXPECT().ListByTopic(gomock.Any(), model.TopicStress, model.MediaKind("")).
					Return([]model.MediaContent{{ID: 1}, {ID: 2}}, nil)
			},
			wantLen: 2,
		},
		{
			name:  "empty result is not nil",
			topic: "skizofrenia",
			kind:  "video",
			f: func(m *mock_service.MockMediaRepositoryI) {
				m.EXPECT().ListByTopic(gomock.Any(), model.TopicSchizophrenia, model.Video).Return(nil, nil)
			},
			wantLen: 0,
		},
		{name: "unknown topic", topic: "olahraga", wantErr: util.ErrInvalidTopic},
		{name: "unknown kind", topic: "stres", kind: "podcast", wantErr: util.ErrInvalidMediaKind},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_service.NewMockMediaRepositoryI(ctrl)
			if tt.f != nil {
				tt.f(repo)
			}
			items, err := NewMediaService(repo, nil, zap.NewNop()).List(context.Background(), tt.topic, tt.kind)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, items)
			assert.Len(t, items, tt.wantLen)
		})
	}
}

func TestMediaService_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage, dir := localStorage(t)
	repo := mock_service.NewMockMediaRepositoryI(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, item *model.MediaContent) error {
		item.ID = 11
		return nil
	})

	svc := NewMediaService(repo, storage, zap.NewNop())
	item, err := svc.Upload(context.Background(), fileHeader(t, "file", "poster.png", pngHeader), MediaRequest{
		Topic: "perawatan_pasien",
		Kind:  "gambar",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(11), item.ID)
	assert.Equal(t, "poster", item.Title)
	assert.True(t, strings.HasPrefix(item.Link, "/uploads/media/perawatan_pasien/"))

	_, err = os.Stat(filepath.Join(dir, strings.TrimPrefix(item.Link, "/uploads/")))
	assert.NoError(t, err)
}

func TestMediaService_UploadKindMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage, _ := localStorage(t)
	svc := NewMediaService(mock_service.NewMockMediaRepositoryI(ctrl), storage, zap.NewNop())
	_, err := svc.Upload(context.Background(), fileHeader(t, "file", "clip.png", pngHeader), MediaRequest{
		Topic: "stres",
		Kind:  "video",
	})
	assert.ErrorIs(t, err, util.ErrInvalidFileType)
}

func TestMediaService_CreateRequiresLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMediaService(mock_service.NewMockMediaRepositoryI(ctrl), nil, zap.NewNop())
	_, err := svc.Create(context.Background(), MediaRequest{Topic: "stres", Kind: "artikel"})
	assert.ErrorIs(t, err, util.ErrInvalidMediaLink)
}
