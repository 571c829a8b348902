package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	"innkeep/infras/ws"
	wsMocks "innkeep/infras/ws/mocks"
	bookingMocks "innkeep/internal/domains/booking/mocks"
	"innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/booking/model/dto"
	"innkeep/internal/domains/booking/service"
	notificationModel "innkeep/internal/domains/notification/model"
	paymentModel "innkeep/internal/domains/payment/model"
	roomMocks "innkeep/internal/domains/room/mocks"
	roomModel "innkeep/internal/domains/room/model"
	cacheMocks "innkeep/shared/cache/mocks"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
)

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := wsMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockPublisher, nil)

	room := roomModel.Room{
		ID:         "room-1",
		RoomNumber: "101",
		Type:       "Deluxe",
		Price:      10000,
	}

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		check     func(t *testing.T, res dto.BookingResponse)
	}{
		{
			name: "two nights at 10000 yields a 20000 unpaid card payment",
			req: dto.CreateBookingRequest{
				UserID:       "user-1",
				RoomID:       "room-1",
				CheckInDate:  "2025-01-01",
				CheckOutDate: "2025-01-03",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockRepo.EXPECT().
					InsertWithEffects(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, booking model.Booking, payment paymentModel.Payment, notification notificationModel.Notification) {
						assert.Equal(t, model.StatusBooked, booking.Status)
						assert.Equal(t, booking.ID, payment.BookingID)
						assert.Equal(t, float64(20000), payment.Amount)
						assert.Equal(t, paymentModel.MethodCard, payment.PaymentMethod)
						assert.Equal(t, paymentModel.StatusNotPaid, payment.PaymentStatus)
						assert.Equal(t, "user-1", notification.UserID)
						assert.Equal(t, notificationModel.TypeBooking, notification.Type)
						assert.False(t, notification.IsRead)
						assert.Contains(t, notification.Message, "LKR 20,000")
						assert.Contains(t, notification.Message, "2025-01-01")
						assert.Contains(t, notification.Message, "2025-01-03")
					}).
					Return(nil)

				mockPublisher.EXPECT().
					Publish(gomock.Any(), "user-1", ws.EventNewNotification, gomock.Any())
			},
			wantErr: false,
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, model.StatusBooked, res.Status)
				assert.Equal(t, "101", res.RoomNumber)
				assert.Equal(t, float64(10000), res.RoomPrice)
			},
		},
		{
			name: "partial night rounds up to a full night",
			req: dto.CreateBookingRequest{
				UserID:       "user-1",
				RoomID:       "room-1",
				CheckInDate:  "2025-01-01",
				CheckOutDate: "2025-01-02",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockRepo.EXPECT().
					InsertWithEffects(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, _ model.Booking, payment paymentModel.Payment, _ notificationModel.Notification) {
						assert.Equal(t, float64(10000), payment.Amount)
					}).
					Return(nil)

				mockPublisher.EXPECT().
					Publish(gomock.Any(), "user-1", ws.EventNewNotification, gomock.Any())
			},
			wantErr: false,
		},
		{
			name: "missing room is rejected with a bad request",
			req: dto.CreateBookingRequest{
				UserID:       "user-1",
				RoomID:       "no-such-room",
				CheckInDate:  "2025-01-01",
				CheckOutDate: "2025-01-03",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "check-out before check-in is rejected",
			req: dto.CreateBookingRequest{
				UserID:       "user-1",
				RoomID:       "room-1",
				CheckInDate:  "2025-01-03",
				CheckOutDate: "2025-01-01",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "malformed dates are rejected",
			req: dto.CreateBookingRequest{
				UserID:       "user-1",
				RoomID:       "room-1",
				CheckInDate:  "01/01/2025",
				CheckOutDate: "2025-01-03",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "room lookup error surfaces",
			req: dto.CreateBookingRequest{
				UserID:       "user-1",
				RoomID:       "room-1",
				CheckInDate:  "2025-01-01",
				CheckOutDate: "2025-01-03",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "transaction failure persists nothing and publishes nothing",
			req: dto.CreateBookingRequest{
				UserID:       "user-1",
				RoomID:       "room-1",
				CheckInDate:  "2025-01-01",
				CheckOutDate: "2025-01-03",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockRepo.EXPECT().
					InsertWithEffects(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("transaction error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)

			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := wsMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockPublisher, nil)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "booking with a deleted room reads back without room fields",
			id:   "booking-1",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{
						ID:     "booking-1",
						UserID: "user-1",
						Status: model.StatusBooked,
					}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "unknown booking is a 404",
			id:   "nonexistent-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.id, res.ID)
			assert.Empty(t, res.RoomID)
			assert.Empty(t, res.RoomNumber)
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := wsMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockPublisher, nil)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{{ID: "b1"}, {ID: "b2"}}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Bookings, 2)
}

func TestBookingService_CreateClearsEffectCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := wsMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockPublisher, nil)

	mockRoomRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(roomModel.Room{ID: "room-1", RoomNumber: "101", Price: 10000}, nil)

	mockRepo.EXPECT().
		InsertWithEffects(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	mockPublisher.EXPECT().
		Publish(gomock.Any(), "user-1", ws.EventNewNotification, gomock.Any())

	cleared := make(chan string, 16)
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prefix string) error {
			cleared <- prefix

			return nil
		}).
		AnyTimes()

	_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		UserID:       "user-1",
		RoomID:       "room-1",
		CheckInDate:  "2025-01-01",
		CheckOutDate: "2025-01-03",
	})

	assert.NoError(t, err)

	// The insert also wrote payment and notification rows, so those list
	// caches must be cleared along with the booking ones.
	want := map[string]bool{
		"booking:gets*":       false,
		"booking:count*":      false,
		"payment:gets*":       false,
		"payment:count*":      false,
		"notification:gets*":  false,
		"notification:count*": false,
		"notification:user*":  false,
	}

	deadline := time.After(2 * time.Second)

	for remaining := len(want); remaining > 0; {
		select {
		case prefix := <-cleared:
			if seen, ok := want[prefix]; ok && !seen {
				want[prefix] = true
				remaining--
			}
		case <-deadline:
			for prefix, seen := range want {
				assert.True(t, seen, "cache prefix %s was not cleared", prefix)
			}

			return
		}
	}
}
