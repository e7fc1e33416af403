package validator

import (
	"errors"
	"io"
	"testing"

	"tixbox/pkg/logger"
)

type createEventPayload struct {
	Title    string `validate:"required,min=2,max=200"`
	External bool
}

func newTestValidator() *RequestValidator {
	return New(logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.JSON,
		Output:  io.Discard,
		Service: "test",
	}))
}

func TestValidate_OK(t *testing.T) {
	v := newTestValidator()

	if err := v.Validate(createEventPayload{Title: "Rock Night"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_FieldErrors(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name    string
		payload createEventPayload
		field   string
	}{
		{"missing title", createEventPayload{}, "Title"},
		{"too short", createEventPayload{Title: "x"}, "Title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.payload)
			if err == nil {
				t.Fatal("expected a validation error")
			}

			var errs ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			if len(errs) != 1 || errs[0].Field != tt.field {
				t.Errorf("unexpected errors: %v", errs)
			}
		})
	}
}
