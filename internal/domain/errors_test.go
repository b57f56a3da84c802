package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorKind
	}{
		{"nil", nil, KindUnexpected},
		{"validação", NewValidationError("productQty", "must be greater than zero"), KindValidation},
		{"produto inexistente", ErrProductNotFound, KindNotFound},
		{"cliente inexistente embrulhado", fmt.Errorf("record sale: %w", ErrCustomerNotFound), KindNotFound},
		{"estoque insuficiente", ErrInsufficientStock, KindConflict},
		{"registro referenciado com pkg/errors", pkgerrors.Wrap(ErrInUse, "delete customer"), KindConflict},
		{"falha temporária", fmt.Errorf("%w: %v", ErrTransient, context.DeadlineExceeded), KindTransient},
		{"erro desconhecido", errors.New("boom"), KindUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := NewValidationError("customerName", "is required")
	assert.Equal(t, "customerName is required", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
}
