package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"innkeep/permissions"
	"innkeep/shared/constant"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	if assert.NotNil(t, data) {
		assert.False(t, data.Skip)
		assert.NotEmpty(t, data.Endpoints)
	}
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()

	tests := []struct {
		name    string
		path    string
		method  string
		skip    bool
		allowed []string
	}{
		{
			name:   "registration is public",
			path:   "/api/auth/register",
			method: http.MethodPost,
			skip:   true,
		},
		{
			name:   "room reads are public",
			path:   "/api/rooms/{id}",
			method: http.MethodGet,
			skip:   true,
		},
		{
			name:    "user management is admin only",
			path:    "/api/users/{id}",
			method:  http.MethodDelete,
			allowed: []string{constant.RoleAdmin},
		},
		{
			name:    "review deletion is admin only",
			path:    "/api/reviews/{id}",
			method:  http.MethodDelete,
			allowed: []string{constant.RoleAdmin},
		},
		{
			name:    "booking creation is open to users",
			path:    "/api/bookings/",
			method:  http.MethodPost,
			allowed: []string{constant.RoleUser, constant.RoleAdmin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.skip, permission.Skip)
			assert.Equal(t, tt.allowed, permission.Permissions)
		})
	}
}

func TestFindPermissions_UnknownRoute(t *testing.T) {
	data := permissions.Get()

	permission := data.FindPermissions("/api/unknown", http.MethodGet)

	assert.False(t, permission.Skip)
	assert.Empty(t, permission.Permissions)
}
