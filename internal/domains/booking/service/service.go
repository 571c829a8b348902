package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"innkeep/config"
	"innkeep/infras/kafka"
	"innkeep/infras/otel"
	"innkeep/infras/ws"
	"innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/booking/model/dto"
	"innkeep/internal/domains/booking/repository"
	notificationModel "innkeep/internal/domains/notification/model"
	notificationDto "innkeep/internal/domains/notification/model/dto"
	notificationService "innkeep/internal/domains/notification/service"
	paymentModel "innkeep/internal/domains/payment/model"
	paymentService "innkeep/internal/domains/payment/service"
	roomModel "innkeep/internal/domains/room/model"
	roomRepository "innkeep/internal/domains/room/repository"
	"innkeep/shared"
	"innkeep/shared/cache"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	hoursPerNight = 24
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepository.Room
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher ws.Publisher
	events    kafka.Client
}

func New(
	repo repository.Booking,
	roomRepo roomRepository.Room,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher ws.Publisher,
	events kafka.Client,
) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
		events:    events,
	}
}

// Create persists the booking together with its derived payment and
// notification in one transaction, then delivers the notification over the
// realtime channel and emits a booking-created event. Delivery and event
// emission are best effort, a failure there never fails the request.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	createdBy, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		return res, failure.BadRequestFromString("dates must use the format 2006-01-02") //nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return res, failure.BadRequestFromString("check-out date must be after check-in date") //nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up room")

		return res, fmt.Errorf("failed to look up room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.BadRequestFromString("room does not exist") //nolint:wrapcheck
	}

	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / hoursPerNight))
	amount := float64(nights) * room.Price

	booking := req.ToModel(createdBy, checkIn, checkOut)

	payment := paymentModel.Payment{
		ID:            uuid.NewString(),
		BookingID:     booking.ID,
		UserID:        req.UserID,
		Amount:        amount,
		PaymentMethod: paymentModel.MethodCard,
		PaymentStatus: paymentModel.StatusNotPaid,
		Metadata:      newMetadata(createdBy),
	}

	notification := notificationModel.Notification{
		ID:     uuid.NewString(),
		UserID: req.UserID,
		Message: fmt.Sprintf(
			"Your booking has been confirmed! Check-in: %s, Check-out: %s. Total amount: %s %s.",
			checkIn.Format(constant.BookingDateFormat),
			checkOut.Format(constant.BookingDateFormat),
			constant.CurrencyPrefix,
			shared.FormatAmount(amount),
		),
		Type:     notificationModel.TypeBooking,
		IsRead:   false,
		Metadata: newMetadata(createdBy),
	}

	if err = s.repo.InsertWithEffects(ctx, booking, payment, notification); err != nil {
		return res, err
	}

	event := notificationDto.NotificationEvent{}
	event.FromModel(notification)
	s.publisher.Publish(ctx, req.UserID, ws.EventNewNotification, event)

	s.emitBookingCreated(ctx, booking, nights, amount)
	s.invalidateWithEffects(ctx)

	res.FromModel(booking)
	res.RoomNumber = room.RoomNumber
	res.RoomType = room.Type
	res.RoomPrice = room.Price

	return res, nil
}

func newMetadata(createdBy string) gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  createdBy,
		ModifiedBy: createdBy,
	}
}

func (s *serviceImpl) emitBookingCreated(ctx context.Context, booking model.Booking, nights int, amount float64) {
	if !s.cfg.Event.Kafka.Enable {
		return
	}

	event := dto.BookingCreatedEvent{
		BookingID:    booking.ID,
		UserID:       booking.UserID,
		RoomID:       booking.RoomID.String,
		CheckInDate:  booking.CheckInDate.Format(constant.BookingDateFormat),
		CheckOutDate: booking.CheckOutDate.Format(constant.BookingDateFormat),
		Nights:       nights,
		Amount:       amount,
		CreatedAt:    booking.CreatedAt.Format(constant.DateFormat),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.events.SendMessages(c, s.cfg.Event.Kafka.BookingTopic, kafka.Message{
			Key:   booking.ID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to emit booking created event")
		}
	}()
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	modifiedBy, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking existence")

		return fmt.Errorf("failed to check booking existence: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	fields := shared.TransformFields(req, modifiedBy)

	if req.CheckInDate != constant.Empty {
		checkIn, err := timezone.Parse(constant.BookingDateFormat, req.CheckInDate)
		if err != nil {
			return failure.BadRequestFromString("dates must use the format 2006-01-02") //nolint:wrapcheck
		}

		fields[model.FieldCheckInDate] = checkIn
	}

	if req.CheckOutDate != constant.Empty {
		checkOut, err := timezone.Parse(constant.BookingDateFormat, req.CheckOutDate)
		if err != nil {
			return failure.BadRequestFromString("dates must use the format 2006-01-02") //nolint:wrapcheck
		}

		fields[model.FieldCheckOutDate] = checkOut
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking existence")

		return fmt.Errorf("failed to check booking existence: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete booking cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

// invalidateWithEffects also clears the payment and notification list caches,
// the booking insert writes rows into those tables in the same transaction.
func (s *serviceImpl) invalidateWithEffects(ctx context.Context) {
	s.invalidate(ctx, constant.Empty)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, paymentService.CacheGetAllPayment)
		shared.InvalidateCaches(c, s.cache, paymentService.CacheCountPayment)
		shared.InvalidateCaches(c, s.cache, notificationService.CacheGetAllNotification)
		shared.InvalidateCaches(c, s.cache, notificationService.CacheCountNotification)
		shared.InvalidateCaches(c, s.cache, notificationService.CacheGetUserNotification)
	}()
}
