package pagination

import (
	"fmt"
)

type Params struct {
	Limit  int
	Offset int
}

type Metadata struct {
	Offset     int  `json:"offset"`
	Limit      int  `json:"limit"`
	NextOffset int  `json:"next_offset,omitempty"`
	TotalCount int  `json:"total_count"`
	HasMore    bool `json:"has_more"`
}

// OffsetHandler fills in and bounds limit/offset pagination parameters.
type OffsetHandler struct {
	DefaultLimit int
	MaxLimit     int
}

func NewOffsetHandler(defaultLimit, maxLimit int) *OffsetHandler {
	return &OffsetHandler{
		DefaultLimit: defaultLimit,
		MaxLimit:     maxLimit,
	}
}

func (h *OffsetHandler) ValidateParams(params Params) error {
	if params.Limit < 0 {
		return fmt.Errorf("limit cannot be negative")
	}
	if params.Offset < 0 {
		return fmt.Errorf("offset cannot be negative")
	}
	if h.MaxLimit > 0 && params.Limit > h.MaxLimit {
		return fmt.Errorf("limit %d exceeds maximum %d", params.Limit, h.MaxLimit)
	}
	return nil
}

// Normalize validates params and replaces a zero limit with the default.
func (h *OffsetHandler) Normalize(params Params) (Params, error) {
	if err := h.ValidateParams(params); err != nil {
		return Params{}, err
	}

	if params.Limit == 0 {
		params.Limit = h.DefaultLimit
	}

	return params, nil
}

// Page returns the window of items params selects together with the
// metadata a client needs to ask for the next one.
func Page[T any](items []T, params Params) ([]T, Metadata) {
	total := len(items)

	start := min(params.Offset, total)
	end := total
	if params.Limit > 0 {
		end = min(start+params.Limit, total)
	}

	metadata := Metadata{
		Offset:     params.Offset,
		Limit:      params.Limit,
		TotalCount: total,
		HasMore:    end < total,
	}

	if metadata.HasMore {
		metadata.NextOffset = end
	}

	return items[start:end], metadata
}
