package author

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound     = errors.New("author not found")
	ErrInvalidInput = errors.New("invalid author input")
)

type Author struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birth_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateInput struct {
	Name      string
	BirthDate time.Time
}

func (in CreateInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" || in.BirthDate.IsZero() {
		return ErrInvalidInput
	}
	return nil
}
