package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/mesto-api/internal/domain"
)

func TestNewID(t *testing.T) {
	t.Parallel()

	id := domain.NewID()
	assert.Len(t, id.String(), 24)
	assert.False(t, id.IsZero())

	// Round-trips through ParseID.
	parsed, err := domain.ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	// Two IDs generated back to back must differ.
	assert.NotEqual(t, id, domain.NewID())
}

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid lowercase hex", input: "507f1f77bcf86cd799439011", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "too short", input: "507f1f77bcf86cd79943901", wantErr: true},
		{name: "too long", input: "507f1f77bcf86cd7994390111", wantErr: true},
		{name: "uppercase hex rejected", input: "507F1F77BCF86CD799439011", wantErr: true},
		{name: "non-hex characters", input: "507f1f77bcf86cd79943901z", wantErr: true},
		{name: "whitespace", input: " 507f1f77bcf86cd79943901", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			id, err := domain.ParseID(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidID)
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.True(t, id.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, id.String())
		})
	}
}
