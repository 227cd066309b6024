package easybill

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"strings"

	"github.com/andyle182810/easybill/pagination"
)

// ListOptions selects a page of a list endpoint.
type ListOptions struct {
	Limit int `json:"limit,omitempty" validate:"gte=0,lte=1000"`
	Page  int `json:"page,omitempty"  validate:"gte=0"`
}

func (o ListOptions) query() map[string]any {
	page, limit := pagination.Normalize(o.Page, o.Limit)

	return map[string]any{
		"page":  page,
		"limit": limit,
	}
}

func (o *ListOptions) setPage(page int) {
	o.Page = page
}

// toQuery flattens a filter struct into query parameters using its json
// tags. Empty values are skipped when the tags carry omitempty.
func toQuery(filters any) (map[string]any, error) {
	raw, err := json.Marshal(filters)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var query map[string]any
	if err := decoder.Decode(&query); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}

	for key, value := range query {
		if nested, ok := value.(map[string]any); ok {
			return nil, fmt.Errorf("%w: filter %q is an object (%d keys)", ErrInvalidParams, key, len(nested))
		}
	}

	return query, nil
}

func mergeQuery(dst map[string]any, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}

	maps.Copy(dst, src)

	return dst
}

// dateOnly cuts a timestamp such as 2026-10-19T00:00:00.000Z down to its
// date part. Values without a time part are returned unchanged.
func dateOnly(value string) string {
	date, _, _ := strings.Cut(value, "T")

	return date
}
