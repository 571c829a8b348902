package notification

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"innkeep/infras/otel"
	"innkeep/internal/domains/notification/model"
	"innkeep/internal/domains/notification/model/dto"
	"innkeep/internal/domains/notification/service"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/validator"
	"innkeep/transport/http/response"
)

type Handler struct {
	service service.Notification
	otel    otel.Otel
}

func New(service service.Notification, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notifications", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateNotification)
		routerGroup.Get("/", handler.GetNotifications)
		routerGroup.Get("/user/{userId}", handler.GetUserNotifications)
		routerGroup.Get("/{id}", handler.GetNotificationByID)
		routerGroup.Put("/{id}", handler.UpdateNotification)
		routerGroup.Delete("/{id}", handler.DeleteNotification)
	})
}

// CreateNotification handles the creation of a new notification.
// @Summary Create a new notification
// @Description Create a notification addressed to a user.
// @Tags Notification
// @Accept json
// @Produce json
// @Param request body dto.CreateNotificationRequest true "Create Notification Request"
// @Success 201 {object} response.Message "Notification created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/notifications [post]
// @Security BearerAuth
func (handler *Handler) CreateNotification(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateNotification")
	defer scope.End()

	req := dto.CreateNotificationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create notification")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Notification created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Notification created successfully")
}

// GetNotifications retrieves all notifications based on query parameters.
// @Summary Get all notifications
// @Description Retrieve all notifications with optional filtering and pagination.
// @Tags Notification
// @Accept json
// @Produce json
// @Param user_id query string false "Filter by user ID"
// @Param type query string false "Filter by type (BOOKING, PAYMENT, SYSTEM)"
// @Success 200 {object} dto.GetNotificationsResponse "List of notifications"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/notifications [get]
// @Security BearerAuth
func (handler *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	userID := r.URL.Query().Get(model.FieldUserID)
	notificationType := r.URL.Query().Get(model.FieldType)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if userID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldUserID,
			Operator: gDto.FilterOperatorEq,
			Value:    userID,
			Table:    model.TableName,
		})
	}

	if notificationType != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    notificationType,
			Table:    model.TableName,
		})
	}

	notifications, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get notifications")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notifications retrieved successfully")

	response.WithJSON(w, http.StatusOK, notifications)
}

// GetUserNotifications retrieves a user's notifications, newest first.
// @Summary Get a user's notifications
// @Description Retrieve all notifications for a user, newest first. Used to backfill events missed while offline.
// @Tags Notification
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.GetNotificationsResponse "List of the user's notifications"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/notifications/user/{userId} [get]
// @Security BearerAuth
func (handler *Handler) GetUserNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserNotifications")
	defer scope.End()

	userID := chi.URLParam(r, constant.RequestParamUserID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	notifications, err := handler.service.GetByUser(ctx, userID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user notifications")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User notifications retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, notifications)
}

// GetNotificationByID retrieves a notification by its ID.
// @Summary Get a notification by ID
// @Description Retrieve a notification by its unique identifier.
// @Tags Notification
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Data[dto.NotificationResponse] "Notification details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/notifications/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetNotificationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotificationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	notification, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get notification by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notification retrieved successfully")

	response.WithJSON(w, http.StatusOK, notification)
}

// UpdateNotification updates an existing notification by its ID.
// @Summary Update a notification by ID
// @Description Update a notification, typically to mark it read or unread.
// @Tags Notification
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Param request body dto.UpdateNotificationRequest true "Update Notification Request"
// @Success 200 {object} response.Message "Notification updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/notifications/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateNotification(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateNotification")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateNotificationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update notification")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Notification updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Notification updated successfully")
}

// DeleteNotification deletes a notification by its ID.
// @Summary Delete a notification by ID
// @Description Delete a notification using its unique identifier.
// @Tags Notification
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Message "Notification deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/notifications/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteNotification")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete notification")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Notification deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Notification deleted successfully")
}
