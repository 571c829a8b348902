package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"innkeep/shared/failure"
	"innkeep/shared/validator"
)

type contactForm struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func TestValidate_ValidBody(t *testing.T) {
	body := strings.NewReader(`{"name":"Jo","email":"jo@example.com","subject":"Hi","message":"Hello"}`)

	form := contactForm{}
	assert.NoError(t, validator.Validate(body, &form))
	assert.Equal(t, "Jo", form.Name)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	body := strings.NewReader(`{"name":"Jo","email":"jo@example.com","message":"Hello"}`)

	form := contactForm{}
	err := validator.Validate(body, &form)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.ErrorContains(t, err, "Subject is required")
}

func TestValidate_MalformedJSON(t *testing.T) {
	body := strings.NewReader(`{"name":`)

	form := contactForm{}
	err := validator.Validate(body, &form)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidate_BadEmail(t *testing.T) {
	body := strings.NewReader(`{"name":"Jo","email":"nope","subject":"Hi","message":"Hello"}`)

	form := contactForm{}
	err := validator.Validate(body, &form)

	assert.Error(t, err)
	assert.ErrorContains(t, err, "Email must be a valid email address")
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("booked", "oneof=booked cancelled completed"))
	assert.Error(t, validator.ValidateVar("pending", "oneof=booked cancelled completed"))
}
