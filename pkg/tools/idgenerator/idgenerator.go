// Package idgenerator produces unique identifiers in the common formats and
// decodes the metadata carried by the time-based ones.
package idgenerator

import (
	"strings"
	"time"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

type CountParams struct {
	Count int `json:"count"`
}

type InspectParams struct {
	ID string `json:"id"`
}

// generateItems calls next count times and shapes the result item: one id
// per output line plus the list itself.
func generateItems(count int, next func() (string, error)) (domain.Item, error) {
	if count < 1 {
		count = 1
	}

	ids := make([]string, 0, count)
	for range count {
		id, err := next()
		if err != nil {
			return nil, domain.NewComputationError(err, "Failed to generate identifier: %s", err)
		}

		ids = append(ids, id)
	}

	return domain.Item{
		"output": strings.Join(ids, "\n"),
		"ids":    ids,
		"count":  len(ids),
	}, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
