package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	reviewMocks "innkeep/internal/domains/review/mocks"
	"innkeep/internal/domains/review/model"
	"innkeep/internal/domains/review/model/dto"
	"innkeep/internal/domains/review/service"
	cacheMocks "innkeep/shared/cache/mocks"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
)

func TestReviewService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reviewMocks.NewMockReview(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	req := dto.CreateReviewRequest{
		UserID:    "user-1",
		BookingID: "booking-1",
		RoomID:    "room-1",
		Rating:    5,
		Comment:   "Great stay",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "success",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, review model.Review) {
						assert.Equal(t, "booking-1", review.BookingID)
						assert.Equal(t, 5, review.Rating)
					}).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "second review for the same booking is a conflict",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "insert error surfaces",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
			res, err := svc.Create(ctx, req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "booking-1", res.BookingID)
		})
	}
}

func TestReviewService_GetByBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reviewMocks.NewMockReview(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		bookingID string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:      "success",
			bookingID: "booking-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Review{ID: "review-1", BookingID: "booking-1", Rating: 4}, nil)
			},
			wantErr: false,
		},
		{
			name:      "booking without a review is a 404",
			bookingID: "booking-2",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Review{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetByBooking(context.Background(), tt.bookingID)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.bookingID, res.BookingID)
		})
	}
}
