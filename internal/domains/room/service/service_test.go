package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	s3Mocks "innkeep/infras/s3/mocks"
	roomMocks "innkeep/internal/domains/room/mocks"
	"innkeep/internal/domains/room/model"
	"innkeep/internal/domains/room/model/dto"
	"innkeep/internal/domains/room/service"
	cacheMocks "innkeep/shared/cache/mocks"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
)

func TestRoomService_UploadImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockS3)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	req := dto.UploadRoomImageRequest{
		Image: &multipart.FileHeader{Filename: "room.png"},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
		wantURL   string
	}{
		{
			name: "success replaces the previous image",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: "room-1", Image: "https://bucket/room/old.png"}, nil)
				mockS3.EXPECT().
					UploadFile(gomock.Any(), model.EntityName, gomock.Any(), req.Image, gomock.Any()).
					Return("https://bucket/room/new.png", nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, fields map[string]any, _ any) {
						assert.Equal(t, "https://bucket/room/new.png", fields[model.FieldImage])
					}).
					Return(nil)
				mockS3.EXPECT().
					GetObjectNameFromURL("https://bucket/room/old.png").
					Return("old.png")
				mockS3.EXPECT().
					DeleteFile(gomock.Any(), model.EntityName, "old.png").
					Return(nil)
			},
			wantURL: "https://bucket/room/new.png",
		},
		{
			name: "unknown room is a 404",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "upload failure surfaces",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: "room-1"}, nil)
				mockS3.EXPECT().
					UploadFile(gomock.Any(), model.EntityName, gomock.Any(), req.Image, gomock.Any()).
					Return("", errors.New("storage error"))
			},
			wantErr: true,
		},
		{
			name: "failed row update removes the uploaded object",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: "room-1"}, nil)
				mockS3.EXPECT().
					UploadFile(gomock.Any(), model.EntityName, gomock.Any(), req.Image, gomock.Any()).
					Return("https://bucket/room/new.png", nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
				mockS3.EXPECT().
					DeleteFile(gomock.Any(), model.EntityName, gomock.Any()).
					Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			url, err := svc.UploadImage(ctx, req, "room-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantURL, url)
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockS3)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	t.Run("success removes the stored image", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-1", Image: "https://bucket/room/old.png"}, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)
		mockS3.EXPECT().
			GetObjectNameFromURL("https://bucket/room/old.png").
			Return("old.png")
		mockS3.EXPECT().
			DeleteFile(gomock.Any(), model.EntityName, "old.png").
			Return(nil)

		err := svc.Delete(context.Background(), "room-1")

		assert.NoError(t, err)
	})

	t.Run("unknown room is a 404", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{}, nil)

		err := svc.Delete(context.Background(), "room-2")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
