package botapi

import (
	"encoding/json"
	"strings"
	"time"
)

// Bot is a chatbot record as returned by the backend.
type Bot struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug,omitempty"`
	SystemPrompt string    `json:"system_prompt"`
	Model        string    `json:"model"`
	Adapter      string    `json:"adapter,omitempty"`
	DataSource   string    `json:"data_source,omitempty"`
	CreatedAt    Timestamp `json:"created_at"`
	UpdatedAt    Timestamp `json:"updated_at"`
}

// DataSources splits the comma-joined data source field.
func (b Bot) DataSources() []string {
	return SplitDataSources(b.DataSource)
}

// BotInput is the body of create and update requests.
type BotInput struct {
	Name         string `json:"name"`
	SystemPrompt string `json:"system_prompt"`
	Model        string `json:"model"`
	Adapter      string `json:"adapter"`
	Slug         string `json:"slug,omitempty"`
	DataSource   string `json:"data_source,omitempty"`
}

// JoinDataSources builds the comma-joined wire form of a multi-select value.
func JoinDataSources(values []string) string {
	return strings.Join(values, ",")
}

// SplitDataSources is the inverse of JoinDataSources. Empty parts are dropped.
func SplitDataSources(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ListOptions pages the bot list. Zero values use the backend defaults.
type ListOptions struct {
	Skip  int
	Limit int
}

// SlugStatus is the outcome of a successful slug check.
type SlugStatus int

const (
	SlugAvailable SlugStatus = iota + 1
	SlugTaken
)

func (s SlugStatus) String() string {
	switch s {
	case SlugAvailable:
		return "available"
	case SlugTaken:
		return "taken"
	default:
		return "unknown"
	}
}

// UserAccessInput is the body of an access level update.
// Fields holds any extra form values; they are sent alongside access_level.
// A "user_id" entry is never sent because the id travels in the path.
type UserAccessInput struct {
	AccessLevel int
	Fields      map[string]string
}

func (in UserAccessInput) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, len(in.Fields)+1)
	for k, v := range in.Fields {
		body[k] = v
	}
	delete(body, "user_id")
	body["access_level"] = in.AccessLevel
	return json.Marshal(body)
}

// Timestamp accepts RFC 3339 and the zone-less ISO form the backend emits
// for naive datetimes.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}
	return lastErr
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.Format(time.RFC3339Nano))
}
