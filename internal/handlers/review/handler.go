package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"innkeep/infras/otel"
	"innkeep/internal/domains/review/model"
	"innkeep/internal/domains/review/model/dto"
	"innkeep/internal/domains/review/service"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/validator"
	"innkeep/transport/http/response"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReview)
		routerGroup.Get("/", handler.GetReviews)
		routerGroup.Get("/booking/{bookingId}", handler.GetReviewByBooking)
		routerGroup.Get("/user/{userId}", handler.GetUserReviews)
		routerGroup.Delete("/{id}", handler.DeleteReview)
	})
}

// CreateReview creates a review for a booking.
// @Summary Create a new review
// @Description Create a review for a booking. A booking can only be reviewed once.
// @Tags Review
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} response.Data[dto.ReviewResponse] "Review created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/reviews [post]
// @Security BearerAuth
func (handler *Handler) CreateReview(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReview")
	defer scope.End()

	req := dto.CreateReviewRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	review, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create review")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Review created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, review)
}

// GetReviews retrieves all reviews, newest first.
// @Summary Get all reviews
// @Description Retrieve all reviews with optional filtering and pagination, newest first.
// @Tags Review
// @Accept json
// @Produce json
// @Param room_id query string false "Filter by room ID"
// @Param rating query string false "Filter by rating"
// @Success 200 {object} dto.GetReviewsResponse "List of reviews"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/reviews [get]
func (handler *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	roomID := r.URL.Query().Get(model.FieldRoomID)
	rating := r.URL.Query().Get(model.FieldRating)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if roomID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		})
	}

	if rating != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRating,
			Operator: gDto.FilterOperatorEq,
			Value:    rating,
			Table:    model.TableName,
		})
	}

	reviews, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reviews")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reviews retrieved successfully")

	response.WithJSON(w, http.StatusOK, reviews)
}

// GetReviewByBooking retrieves the review attached to a booking.
// @Summary Get a booking's review
// @Description Retrieve the single review written for a booking.
// @Tags Review
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response.Data[dto.ReviewResponse] "Review details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/reviews/booking/{bookingId} [get]
func (handler *Handler) GetReviewByBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviewByBooking")
	defer scope.End()

	bookingID := chi.URLParam(r, constant.RequestParamBookingID)

	review, err := handler.service.GetByBooking(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get review by booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review retrieved successfully for booking " + bookingID)

	response.WithJSON(w, http.StatusOK, review)
}

// GetUserReviews retrieves all reviews written by a user.
// @Summary Get a user's reviews
// @Description Retrieve all reviews written by a user, newest first.
// @Tags Review
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.GetReviewsResponse "List of the user's reviews"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/reviews/user/{userId} [get]
func (handler *Handler) GetUserReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserReviews")
	defer scope.End()

	userID := chi.URLParam(r, constant.RequestParamUserID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	reviews, err := handler.service.GetByUser(ctx, userID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user reviews")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User reviews retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, reviews)
}

// DeleteReview deletes a review by its ID.
// @Summary Delete a review by ID
// @Description Delete a review using its unique identifier.
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Message "Review deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/reviews/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReview")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete review")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Review deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Review deleted successfully")
}
