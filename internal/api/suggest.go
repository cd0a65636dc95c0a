package api

import (
	"context"
	"strconv"
	"strings"

	"golang.org/x/sync/singleflight"
)

// SuggestionSource wraps the client's Suggest call so that identical
// in-flight lookups share a single request. Rapid typing plus focus events
// can schedule the same prefix twice before the first response lands; the
// collapse keeps that to one round trip.
type SuggestionSource struct {
	client *Client
	group  singleflight.Group
}

// NewSuggestionSource creates a suggestion source over client.
func NewSuggestionSource(client *Client) *SuggestionSource {
	return &SuggestionSource{client: client}
}

// Suggest fetches candidate ingredient tokens for a query prefix, excluding
// tokens the caller already holds.
func (s *SuggestionSource) Suggest(ctx context.Context, query string, exclude []string, limit int) ([]string, error) {
	key := query + "\x00" + strings.Join(exclude, "\x00") + "\x00" + strconv.Itoa(limit)
	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.client.Suggest(ctx, query, exclude, limit)
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}
