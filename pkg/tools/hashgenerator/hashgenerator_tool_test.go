package hashgenerator

import (
	"context"
	"testing"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, actionType domain.ToolActionType, item domain.Item) (domain.Item, error) {
	t.Helper()

	tool := NewHashGeneratorTool(domain.ToolDeps{ParameterBinder: domain.NewJSONParameterBinder()})

	output, err := tool.Execute(context.Background(), domain.ToolInput{
		ToolID:     Schema.ID,
		ActionType: actionType,
		Items:      []domain.Item{item},
	})
	if err != nil {
		return nil, err
	}

	return output.First(), nil
}

func TestHashGenerator_Hash(t *testing.T) {
	tests := []struct {
		name     string
		item     domain.Item
		expected string
		bits     int
	}{
		{
			name:     "default sha-256",
			item:     domain.Item{"text": "abc"},
			expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
			bits:     256,
		},
		{
			name:     "empty text",
			item:     domain.Item{},
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			bits:     256,
		},
		{
			name:     "sha-1",
			item:     domain.Item{"text": "abc", "algorithm": "SHA-1"},
			expected: "a9993e364706816aba3e25717850c26c9cd0d89d",
			bits:     160,
		},
		{
			name:     "sha-384",
			item:     domain.Item{"text": "abc", "algorithm": "SHA-384"},
			expected: "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7",
			bits:     384,
		},
		{
			name:     "sha3-256",
			item:     domain.Item{"text": "abc", "algorithm": "SHA3-256"},
			expected: "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
			bits:     256,
		},
		{
			name:     "base64 encoding",
			item:     domain.Item{"text": "abc", "encoding": "base64"},
			expected: "ungWv48Bz+pBQUDeXa4iI7ADYaOWF3qctBD/YfIAFa0=",
			bits:     256,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := run(t, ToolActionType_Hash, tt.item)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result["output"])
			assert.Equal(t, tt.bits, result["bits"])
		})
	}
}

func TestHashGenerator_MD5IsUnsupported(t *testing.T) {
	for _, actionType := range []domain.ToolActionType{ToolActionType_Hash, ToolActionType_HMAC} {
		_, err := run(t, actionType, domain.Item{"text": "abc", "key": "k", "algorithm": "MD5"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnsupportedOperation)
		assert.Contains(t, err.Error(), "MD5 is not supported")
	}
}

func TestHashGenerator_HMAC(t *testing.T) {
	result, err := run(t, ToolActionType_HMAC, domain.Item{
		"text": "The quick brown fox jumps over the lazy dog",
		"key":  "key",
	})
	require.NoError(t, err)
	assert.Equal(t, "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8", result["output"])
	assert.Equal(t, "HMAC-SHA-256", result["algorithm"])

	_, err = run(t, ToolActionType_HMAC, domain.Item{"text": "abc"})
	assert.EqualError(t, err, "Key is required")
}
