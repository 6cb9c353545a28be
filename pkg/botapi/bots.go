package botapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListBots returns the bots known to the backend.
// The backend may answer with a bare array or with {"data": [...]}.
func (c *Client) ListBots(ctx context.Context, opts ListOptions) ([]Bot, error) {
	query := url.Values{}
	if opts.Skip > 0 {
		query.Set("skip", strconv.Itoa(opts.Skip))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/bots", query, nil, &raw); err != nil {
		return nil, err
	}
	return decodeBotList(raw)
}

func decodeBotList(raw json.RawMessage) ([]Bot, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var bots []Bot
		if err := json.Unmarshal(raw, &bots); err != nil {
			return nil, fmt.Errorf("%w: bot list: %w", ErrDecode, err)
		}
		return bots, nil
	}

	var wrapped struct {
		Data []Bot `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("%w: bot list: %w", ErrDecode, err)
	}
	return wrapped.Data, nil
}

// GetBot finds a bot by id in the list endpoint.
// It returns a 404 *APIError when no bot matches.
func (c *Client) GetBot(ctx context.Context, botID string) (*Bot, error) {
	want, err := escapeID(botID)
	if err != nil {
		return nil, err
	}
	bots, err := c.ListBots(ctx, ListOptions{})
	if err != nil {
		return nil, err
	}
	for i := range bots {
		if got, err := escapeID(bots[i].ID); err == nil && got == want {
			return &bots[i], nil
		}
	}
	return nil, &APIError{StatusCode: http.StatusNotFound, Detail: "Bot not found"}
}

// CreateBot creates a bot. Any 2xx status is success.
func (c *Client) CreateBot(ctx context.Context, in BotInput) error {
	return c.do(ctx, http.MethodPost, "/api/bots", nil, in, nil)
}

// UpdateBot replaces the editable fields of a bot.
func (c *Client) UpdateBot(ctx context.Context, botID string, in BotInput) error {
	seg, err := escapeID(botID)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPatch, "/api/bots/"+seg, nil, in, nil)
}

// DeleteBot deletes a bot. Only 204 is success.
func (c *Client) DeleteBot(ctx context.Context, botID string) error {
	seg, err := escapeID(botID)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/api/bots/"+seg, nil, nil, nil, http.StatusNoContent)
}

// CheckSlug asks the backend whether slug is already used.
// A response carrying "detail" means taken; one without means available.
// Server errors and unreadable bodies are returned as errors.
func (c *Client) CheckSlug(ctx context.Context, slug string) (SlugStatus, error) {
	resp, err := c.send(ctx, http.MethodGet, "/api/bots/slug", url.Values{"q": {slug}}, nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return 0, readAPIError(resp)
	}

	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("%w: slug check: %w", ErrDecode, err)
	}
	if parseDetail(body.Detail) != "" {
		return SlugTaken, nil
	}
	return SlugAvailable, nil
}
