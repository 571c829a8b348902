package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"innkeep/infras/otel"
	"innkeep/internal/domains/contact/model"
	"innkeep/internal/domains/contact/model/dto"
	"innkeep/internal/domains/contact/service"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	"innkeep/shared/validator"
	"innkeep/transport/http/response"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contacts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateContact)
		routerGroup.Get("/", handler.GetContacts)
		routerGroup.Get("/{id}", handler.GetContactByID)
		routerGroup.Put("/{id}/status", handler.UpdateContactStatus)
		routerGroup.Delete("/{id}", handler.DeleteContact)
	})
}

// CreateContact handles a public contact form submission.
// @Summary Submit a contact message
// @Description Submit a contact form message. No authentication required.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Create Contact Request"
// @Success 201 {object} response.Data[dto.ContactResponse] "Contact submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/contacts [post]
func (handler *Handler) CreateContact(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContact")
	defer scope.End()

	req := dto.CreateContactRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, failure.BadRequestFromString("Please provide all required fields"))

		return
	}

	contact, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create contact")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Contact submitted successfully")

	response.WithJSON(writer, http.StatusCreated, contact)
}

// GetContacts retrieves all contact submissions, newest first.
// @Summary Get all contact messages
// @Description Retrieve all contact submissions with optional filtering, newest first.
// @Tags Contact
// @Accept json
// @Produce json
// @Param status query string false "Filter by status (pending, read, replied)"
// @Success 200 {object} dto.GetContactsResponse "List of contact messages"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/contacts [get]
// @Security BearerAuth
func (handler *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContacts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	status := r.URL.Query().Get(model.FieldStatus)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	contacts, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contacts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contacts retrieved successfully")

	response.WithJSON(w, http.StatusOK, contacts)
}

// GetContactByID retrieves a contact submission by its ID.
// @Summary Get a contact message by ID
// @Description Retrieve a contact submission by its unique identifier.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} response.Data[dto.ContactResponse] "Contact details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/contacts/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetContactByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContactByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	contact, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact retrieved successfully")

	response.WithJSON(w, http.StatusOK, contact)
}

// UpdateContactStatus updates the status of a contact submission.
// @Summary Update a contact message's status
// @Description Mark a contact submission as pending, read or replied.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param request body dto.UpdateContactStatusRequest true "Update Contact Status Request"
// @Success 200 {object} response.Message "Contact status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/contacts/{id}/status [put]
// @Security BearerAuth
func (handler *Handler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateContactStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateContactStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update contact status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Contact status updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Contact status updated successfully")
}

// DeleteContact deletes a contact submission by its ID.
// @Summary Delete a contact message by ID
// @Description Delete a contact submission using its unique identifier.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} response.Message "Contact deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/contacts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteContact")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete contact")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Contact deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Contact deleted successfully")
}
