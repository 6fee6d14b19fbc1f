package keygenerator

import (
	"context"
	"strings"
	"testing"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, creator domain.ToolCreator, item domain.Item) (domain.Item, error) {
	t.Helper()

	tool := creator(domain.ToolDeps{ParameterBinder: domain.NewJSONParameterBinder()})

	output, err := tool.Execute(context.Background(), domain.ToolInput{
		ActionType: ToolActionType_Generate,
		Items:      []domain.Item{item},
	})
	if err != nil {
		return nil, err
	}

	return output.First(), nil
}

func values(t *testing.T, result domain.Item) []string {
	t.Helper()

	list, ok := result["values"].([]string)
	require.True(t, ok)

	return list
}

func onlyFrom(s, alphabet string) bool {
	for _, r := range s {
		if !strings.ContainsRune(alphabet, r) {
			return false
		}
	}
	return true
}

func TestAPIKeyGenerator(t *testing.T) {
	result, err := run(t, NewAPIKeyTool, domain.Item{"length": 40, "prefix": "sk_live_", "count": 5})
	require.NoError(t, err)

	keys := values(t, result)
	require.Len(t, keys, 5)

	for _, key := range keys {
		require.True(t, strings.HasPrefix(key, "sk_live_"))

		body := strings.TrimPrefix(key, "sk_live_")
		assert.Len(t, body, 40)
		assert.True(t, onlyFrom(body, AlphabetAlphanumeric), body)
	}

	result, err = run(t, NewAPIKeyTool, domain.Item{})
	require.NoError(t, err)
	assert.Len(t, result["output"], 32)
}

func TestPasswordGenerator(t *testing.T) {
	tests := []struct {
		name    string
		item    domain.Item
		length  int
		classes []string
	}{
		{
			name:    "defaults use every class",
			item:    domain.Item{},
			length:  16,
			classes: []string{AlphabetUppercase, AlphabetLowercase, AlphabetDigits, AlphabetSymbols},
		},
		{
			name:    "digits only",
			item:    domain.Item{"uppercase": false, "lowercase": false, "symbols": false, "length": 6},
			length:  6,
			classes: []string{AlphabetDigits},
		},
		{
			name:    "length equal to class count",
			item:    domain.Item{"digits": false, "length": 4, "symbols": "true"},
			length:  4,
			classes: []string{AlphabetUppercase, AlphabetLowercase, AlphabetSymbols},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.item["count"] = 20

			result, err := run(t, NewPasswordTool, tt.item)
			require.NoError(t, err)

			union := strings.Join(tt.classes, "")
			for _, password := range values(t, result) {
				assert.Len(t, password, tt.length)
				assert.True(t, onlyFrom(password, union), password)

				for _, class := range tt.classes {
					assert.True(t, strings.ContainsAny(password, class), "%q lacks a character of %q", password, class)
				}
			}
		})
	}
}

func TestPasswordGenerator_InvalidSettings(t *testing.T) {
	_, err := run(t, NewPasswordTool, domain.Item{"uppercase": false, "lowercase": false, "digits": false, "symbols": false})
	assert.EqualError(t, err, "Select at least one character set")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = run(t, NewPasswordTool, domain.Item{"length": 3})
	assert.EqualError(t, err, "Length must be between 4 and 256")
}
