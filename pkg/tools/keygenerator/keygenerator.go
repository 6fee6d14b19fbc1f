// Package keygenerator builds secrets from cryptographically secure
// randomness: prefixed API keys and passwords drawn from character classes.
package keygenerator

import (
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

func generateItems(count int, next func() (string, error)) (domain.Item, error) {
	values := make([]string, 0, count)
	for range max(count, 1) {
		value, err := next()
		if err != nil {
			return nil, domain.NewComputationError(err, "Failed to generate value: %s", err)
		}

		values = append(values, value)
	}

	return domain.Item{
		"output": strings.Join(values, "\n"),
		"values": values,
		"count":  len(values),
	}, nil
}

// pick returns one random character of alphabet.
func pick(alphabet string) (byte, error) {
	s, err := gonanoid.Generate(alphabet, 1)
	if err != nil {
		return 0, err
	}

	return s[0], nil
}
