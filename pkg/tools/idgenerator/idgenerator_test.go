package idgenerator

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, creator domain.ToolCreator, toolID domain.ToolType, actionType domain.ToolActionType, item domain.Item) (domain.Item, error) {
	t.Helper()

	tool := creator(domain.ToolDeps{ParameterBinder: domain.NewJSONParameterBinder()})

	output, err := tool.Execute(context.Background(), domain.ToolInput{
		ToolID:     toolID,
		ActionType: actionType,
		Items:      []domain.Item{item},
	})
	if err != nil {
		return nil, err
	}

	return output.First(), nil
}

func ids(t *testing.T, result domain.Item) []string {
	t.Helper()

	list, ok := result["ids"].([]string)
	require.True(t, ok)
	assert.Equal(t, strings.Join(list, "\n"), result["output"])

	return list
}

func TestUUIDGenerator(t *testing.T) {
	v4 := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	v7 := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

	result, err := run(t, NewUUIDTool, UUIDSchema.ID, ToolActionType_Generate, domain.Item{"count": 5})
	require.NoError(t, err)

	list := ids(t, result)
	require.Len(t, list, 5)
	for _, id := range list {
		assert.Regexp(t, v4, id)
	}

	result, err = run(t, NewUUIDTool, UUIDSchema.ID, ToolActionType_Generate, domain.Item{"version": "7", "count": 3})
	require.NoError(t, err)
	for _, id := range ids(t, result) {
		assert.Regexp(t, v7, id)
	}

	result, err = run(t, NewUUIDTool, UUIDSchema.ID, ToolActionType_Generate, domain.Item{"uppercase": true, "hyphens": false})
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9A-F]{32}$`, result["output"])
}

func TestUUIDGenerator_Inspect(t *testing.T) {
	result, err := run(t, NewUUIDTool, UUIDSchema.ID, ToolActionType_Inspect, domain.Item{"id": "017F22E2-79B0-7CC3-98C4-DC0C0C07398F"})
	require.NoError(t, err)
	assert.Equal(t, "017f22e2-79b0-7cc3-98c4-dc0c0c07398f", result["output"])
	assert.Equal(t, 7, result["version"])
	assert.Equal(t, "RFC4122", result["variant"])
	assert.Equal(t, "2022-02-22T19:22:22Z", result["timestamp"])

	_, err = run(t, NewUUIDTool, UUIDSchema.ID, ToolActionType_Inspect, domain.Item{"id": "not-a-uuid"})
	assert.EqualError(t, err, "Invalid UUID")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUUIDGenerator_CountOutOfRange(t *testing.T) {
	_, err := run(t, NewUUIDTool, UUIDSchema.ID, ToolActionType_Generate, domain.Item{"count": 0})
	assert.EqualError(t, err, "Count must be between 1 and 500")
}

func TestULIDGenerator(t *testing.T) {
	result, err := run(t, NewULIDTool, ULIDSchema.ID, ToolActionType_Generate, domain.Item{"count": 10})
	require.NoError(t, err)

	list := ids(t, result)
	require.Len(t, list, 10)
	for i, id := range list {
		assert.Regexp(t, `^[0-9A-HJKMNP-TV-Z]{26}$`, id)
		if i > 0 {
			assert.Less(t, list[i-1], id)
		}
	}

	inspected, err := run(t, NewULIDTool, ULIDSchema.ID, ToolActionType_Inspect, domain.Item{"id": "01aryz6s41tsv4rrffq69g5fav"})
	require.NoError(t, err)
	assert.Equal(t, "01ARYZ6S41TSV4RRFFQ69G5FAV", inspected["output"])
	assert.Equal(t, uint64(1469918176385), inspected["timestamp_ms"])
	assert.Equal(t, "2016-07-30T22:36:16.385Z", inspected["timestamp"])

	_, err = run(t, NewULIDTool, ULIDSchema.ID, ToolActionType_Inspect, domain.Item{"id": "too-short"})
	assert.EqualError(t, err, "Invalid ULID")
}

func TestNanoIDGenerator(t *testing.T) {
	tests := []struct {
		name     string
		item     domain.Item
		size     int
		alphabet string
	}{
		{name: "defaults", item: domain.Item{}, size: 21, alphabet: DefaultNanoIDAlphabet},
		{name: "custom size", item: domain.Item{"size": 8}, size: 8, alphabet: DefaultNanoIDAlphabet},
		{name: "hex alphabet", item: domain.Item{"size": 32, "alphabet": "0123456789abcdef"}, size: 32, alphabet: "0123456789abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.item["count"] = 4

			result, err := run(t, NewNanoIDTool, NanoIDSchema.ID, ToolActionType_Generate, tt.item)
			require.NoError(t, err)

			for _, id := range ids(t, result) {
				assert.Len(t, id, tt.size)
				for _, r := range id {
					assert.True(t, strings.ContainsRune(tt.alphabet, r), "unexpected %q", r)
				}
			}
		})
	}
}

func TestNanoIDGenerator_InvalidSettings(t *testing.T) {
	_, err := run(t, NewNanoIDTool, NanoIDSchema.ID, ToolActionType_Generate, domain.Item{"size": 1})
	assert.EqualError(t, err, "Size must be between 2 and 256")

	_, err = run(t, NewNanoIDTool, NanoIDSchema.ID, ToolActionType_Generate, domain.Item{"alphabet": strings.Repeat("a", 256)})
	assert.EqualError(t, err, "Alphabet must not be longer than 255 bytes")
}

func TestXIDGenerator(t *testing.T) {
	result, err := run(t, NewXIDTool, XIDSchema.ID, ToolActionType_Generate, domain.Item{"count": 3})
	require.NoError(t, err)

	list := ids(t, result)
	require.Len(t, list, 3)
	for _, id := range list {
		assert.Regexp(t, `^[0-9a-v]{20}$`, id)
	}

	inspected, err := run(t, NewXIDTool, XIDSchema.ID, ToolActionType_Inspect, domain.Item{"id": list[0]})
	require.NoError(t, err)
	assert.Equal(t, list[0], inspected["output"])
	assert.Len(t, inspected["machine"], 6)

	_, err = run(t, NewXIDTool, XIDSchema.ID, ToolActionType_Inspect, domain.Item{"id": "xyz"})
	assert.EqualError(t, err, "Invalid XID")
}
