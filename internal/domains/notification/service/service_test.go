package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	notificationMocks "innkeep/internal/domains/notification/mocks"
	"innkeep/internal/domains/notification/model"
	"innkeep/internal/domains/notification/model/dto"
	"innkeep/internal/domains/notification/service"
	"innkeep/shared/cache"
	cacheMocks "innkeep/shared/cache/mocks"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
)

func TestNotificationService_GetByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notificationMocks.NewMockNotification(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	t.Run("defaults to newest first", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, req gDto.QueryParams, _ gDto.FilterGroup, _ ...string) {
				assert.Equal(t, "notifications.created_at", req.SortBy)
				assert.Equal(t, gDto.SortDirDesc, req.SortDir)
			}).
			Return([]model.Notification{
				{ID: "notification-2", UserID: "user-1", Message: "Booking confirmed", Type: model.TypeBooking},
				{ID: "notification-1", UserID: "user-1", Message: "Welcome", Type: model.TypeSystem},
			}, nil)

		res, err := svc.GetByUser(context.Background(), "user-1", gDto.QueryParams{})

		assert.NoError(t, err)
		assert.Len(t, res.Notifications, 2)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, "notification-2", res.Notifications[0].ID)
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := svc.GetByUser(context.Background(), "user-1", gDto.QueryParams{})

		assert.Error(t, err)
	})
}

func TestNotificationService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notificationMocks.NewMockNotification(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	t.Run("marking read writes is_read", func(t *testing.T) {
		read := true
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Notification{ID: "notification-1", UserID: "user-1"}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, fields map[string]any, _ any) {
				assert.Equal(t, true, fields[model.FieldIsRead])
			}).
			Return(nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
		err := svc.Update(ctx, dto.UpdateNotificationRequest{IsRead: &read}, "notification-1")

		assert.NoError(t, err)
	})

	t.Run("unknown notification is a 404", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Notification{}, nil)

		err := svc.Update(context.Background(), dto.UpdateNotificationRequest{}, "notification-2")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
