package httpx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required,max=5"`
	Kind  string `query:"kind" validate:"oneof=a b"`
	Date  string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Count int    `json:"count" validate:"gt=0"`
}

func TestValidationDetails(t *testing.T) {
	v := NewValidator()

	err := v.Struct(sampleRequest{Name: "toolong", Kind: "c", Date: "2024/01/01"})
	require.Error(t, err)

	got := map[string]string{}
	for _, d := range ValidationDetails(err) {
		got[d.Field] = d.Message
	}
	assert.Equal(t, map[string]string{
		"name":  "name must be at most 5 characters",
		"kind":  "kind must be one of: a, b",
		"date":  "date must be a date formatted as 2006-01-02",
		"count": "count must be greater than 0",
	}, got)
}

func TestValidationDetails_OtherError(t *testing.T) {
	details := ValidationDetails(errors.New("bad"))
	require.Len(t, details, 1)
	assert.Equal(t, "bad", details[0].Message)
}
