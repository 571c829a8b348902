package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"innkeep/shared"
	"innkeep/shared/constant"
	"innkeep/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{"empty result is one page", 0, 10, 1},
		{"exact division", 20, 10, 2},
		{"remainder rounds up", 21, 10, 3},
		{"no limit means one page", 5, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateReq struct {
		Status  string `db:"status"`
		Comment string `db:"comment"`
		Skipped string
	}

	fields := shared.TransformFields(updateReq{Status: "cancelled"}, "admin-1")

	assert.Equal(t, "cancelled", fields["status"])
	assert.NotContains(t, fields, "comment")
	assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("abc", "id", "rooms")

	where, args := group.GetWhereClause()
	assert.Equal(t, "(rooms.id = :id)", where)
	assert.Equal(t, "abc", args["id"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:get", shared.BuildCacheKey("room:get"))
	assert.Equal(t, "room:get:42", shared.BuildCacheKey("room:get", "42"))
}

func TestBuildCacheKeyWithQuery_DiffersByFilter(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}

	plain := shared.BuildCacheKeyWithQuery("booking:gets", params, dto.FilterGroup{})
	filtered := shared.BuildCacheKeyWithQuery("booking:gets", params, dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "booked", Table: "bookings"},
		},
	})

	assert.NotEqual(t, plain, filtered)
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"two nights at ten thousand", 20000, "20,000"},
		{"below a thousand", 950, "950"},
		{"millions", 1250000, "1,250,000"},
		{"fractional", 1234.5, "1,234.50"},
		{"fraction rounds up and carries", 1234.999, "1,235.00"},
		{"carry crosses a grouping boundary", 999.995, "1,000.00"},
		{"fraction rounds down", 950.004, "950.00"},
		{"zero", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.FormatAmount(tt.amount))
		})
	}
}

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("not-a-bool"))

	parsed := shared.ConvertStringToBool("true")
	if assert.NotNil(t, parsed) {
		assert.True(t, *parsed)
	}
}
