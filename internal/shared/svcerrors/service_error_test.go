package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("ING_1000", "validation failed", nil),
			wantErr: NewInvalidArgumentError("ING_1000", "validation failed", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("ING_9000", nil)),
			wantErr: NewInternalError("ING_9000", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped not found",
			err:     fmt.Errorf("lookup: %w", NewNotFoundError("HTTP_4040", "trace result not found", nil)),
			wantErr: NewNotFoundError("HTTP_4040", "trace result not found", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_StatusAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	tests := []struct {
		name         string
		err          *ServiceError
		wantStatus   int
		wantInternal bool
		wantConflict bool
	}{
		{name: "invalid argument", err: NewInvalidArgumentError("ING_1000", "bad", cause), wantStatus: 400},
		{name: "conflict", err: NewResourceConflictError("ING_1001", "exists", cause), wantStatus: 409, wantConflict: true},
		{name: "not found", err: NewNotFoundError("HTTP_4040", "missing", cause), wantStatus: 404},
		{name: "internal", err: NewInternalError("ING_9000", cause), wantStatus: 500, wantInternal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantStatus, tt.err.HttpStatusCode)
			assert.Equal(t, tt.wantInternal, tt.err.IsInternalError())
			assert.Equal(t, tt.wantConflict, tt.err.IsResourceConflict())
			assert.ErrorIs(t, tt.err, cause)
			assert.Equal(t, tt.err.Code+": "+tt.err.Message, tt.err.Error())
		})
	}
}
