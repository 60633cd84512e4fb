package validation

import (
	"strings"
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/calmcp/credvault/internal/errors"
)

func TestHexMasterKey(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid lowercase key", value: strings.Repeat("ab", 32)},
		{name: "valid uppercase key", value: strings.Repeat("AB", 32)},
		{name: "too short", value: strings.Repeat("ab", 31), wantErr: true},
		{name: "too long", value: strings.Repeat("ab", 33), wantErr: true},
		{name: "non-hex characters", value: strings.Repeat("zz", 32), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, HexMasterKey)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProvider(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "simple provider", value: "google"},
		{name: "hyphenated provider", value: "azure-ad"},
		{name: "underscored provider", value: "custom_idp"},
		{name: "uppercase rejected", value: "Google", wantErr: true},
		{name: "leading hyphen rejected", value: "-google", wantErr: true},
		{name: "spaces rejected", value: "my provider", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, Provider)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEncryptionAlgorithm(t *testing.T) {
	assert.NoError(t, validation.Validate("aes-gcm", EncryptionAlgorithm))
	assert.NoError(t, validation.Validate("chacha20-poly1305", EncryptionAlgorithm))
	assert.Error(t, validation.Validate("rot13", EncryptionAlgorithm))
}

func TestWrapValidationError(t *testing.T) {
	t.Run("nil is passthrough", func(t *testing.T) {
		assert.Nil(t, WrapValidationError(nil))
	})

	t.Run("wraps as invalid input", func(t *testing.T) {
		err := WrapValidationError(assert.AnError)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}
