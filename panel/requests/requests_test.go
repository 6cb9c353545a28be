package requests_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapujagad-id/botpanel/panel/requests"
	"github.com/sapujagad-id/botpanel/pkg/botapi"
	"github.com/sapujagad-id/botpanel/pkg/slugsync"
	"github.com/sapujagad-id/botpanel/pkg/validator"
)

var formOpts = requests.BotFormOptions{
	SlugEnabled: true,
	Models:      []string{"OpenAI", "Anthropic"},
	Adapters:    []string{"Slack"},
	DataSources: []string{"confluence", "drive"},
}

func validBot() *requests.BotRequest {
	r := requests.NewBotRequest(formOpts)
	r.Name = "Support Bot"
	r.Slug = "support-bot"
	r.SystemPrompt = "You answer support questions"
	r.Model = "OpenAI"
	r.Adapter = "Slack"
	r.DataSources = []string{"drive"}
	return r
}

func TestBotRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(r *requests.BotRequest)
		wantFields []string
	}{
		{"valid", func(*requests.BotRequest) {}, nil},
		{"missing name", func(r *requests.BotRequest) { r.Name = "" }, []string{"name"}},
		{"missing system prompt", func(r *requests.BotRequest) { r.SystemPrompt = "" }, []string{"system_prompt"}},
		{"missing model and adapter", func(r *requests.BotRequest) { r.Model, r.Adapter = "", "" }, []string{"model", "adapter"}},
		{"missing slug", func(r *requests.BotRequest) { r.Slug = "" }, []string{"slug"}},
		{"blank slug after trim", func(r *requests.BotRequest) { r.Slug = "   "; r.Sanitize() }, []string{"slug"}},
		{"hand-typed slug is kept as is", func(r *requests.BotRequest) { r.Slug = "My_Custom Slug" }, nil},
		{"quote in name", func(r *requests.BotRequest) { r.Name = "Bob's bot" }, []string{"name"}},
		{"hyphen in prompt", func(r *requests.BotRequest) { r.SystemPrompt = "be terse - always" }, []string{"system_prompt"}},
		{"semicolon and double quote", func(r *requests.BotRequest) {
			r.Name = `say "hi"`
			r.SystemPrompt = "a; b"
		}, []string{"name", "system_prompt"}},
		{"unknown model", func(r *requests.BotRequest) { r.Model = "Llama" }, []string{"model"}},
		{"unknown adapter", func(r *requests.BotRequest) { r.Adapter = "Teams" }, []string{"adapter"}},
		{"unknown data source", func(r *requests.BotRequest) { r.DataSources = []string{"drive", "s3"} }, []string{"data_source"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := validBot()
			tt.mutate(r)
			err := r.Validate()

			if tt.wantFields == nil {
				require.NoError(t, err)
				return
			}
			require.True(t, validator.IsValidationError(err))
			errs := validator.ExtractValidationErrors(err)
			for _, f := range tt.wantFields {
				assert.True(t, errs.Has(f), "expected error on %s, got %v", f, errs)
			}
			assert.Len(t, errs, len(tt.wantFields))
		})
	}
}

func TestBotRequest_WithoutSlugField(t *testing.T) {
	t.Parallel()

	opts := formOpts
	opts.SlugEnabled = false
	r := requests.NewBotRequest(opts)
	r.Name = "Support Bot"
	r.SystemPrompt = "prompt"
	r.Model = "Anthropic"
	r.Adapter = "Slack"
	r.Slug = "ignored"
	r.DataSources = []string{"anything"}

	require.NoError(t, r.Validate())

	body, err := json.Marshal(r.Input())
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Support Bot","system_prompt":"prompt","model":"Anthropic","adapter":"Slack"}`, string(body))
}

func TestBotRequest_Input(t *testing.T) {
	t.Parallel()

	r := validBot()
	r.DataSources = []string{"confluence", "drive"}

	assert.Equal(t, botapi.BotInput{
		Name:         "Support Bot",
		SystemPrompt: "You answer support questions",
		Model:        "OpenAI",
		Adapter:      "Slack",
		Slug:         "support-bot",
		DataSource:   "confluence,drive",
	}, r.Input())
}

func TestBotRequest_Sanitize(t *testing.T) {
	t.Parallel()

	r := validBot()
	r.Name = "  <b>Support</b> Bot  "
	r.SystemPrompt = "<script>alert(1)</script>Be helpful"
	r.Slug = " support-bot "
	r.DataSources = []string{"", "drive", " "}

	r.Sanitize()

	assert.Equal(t, "Support Bot", r.Name)
	assert.Equal(t, "Be helpful", r.SystemPrompt)
	assert.Equal(t, "support-bot", r.Slug)
	assert.Equal(t, []string{"drive"}, r.DataSources)
}

func TestBotRequestFrom(t *testing.T) {
	t.Parallel()

	r := requests.BotRequestFrom(botapi.Bot{
		ID:           "3f0e7e43-4b6b-4c3a-9a57-3f1f0f7f8f10",
		Name:         "Beta Bot",
		Slug:         "",
		SystemPrompt: "prompt",
		Model:        "OpenAI",
		Adapter:      "Slack",
		DataSource:   "confluence,drive",
	}, formOpts)

	assert.Equal(t, "beta-bot", r.Slug)
	assert.Equal(t, "false", r.UserEdited)
	assert.Equal(t, []string{"confluence", "drive"}, r.DataSources)
	assert.Equal(t, formOpts, r.Options())
}

func TestBotRequest_SlugState(t *testing.T) {
	t.Parallel()

	r := validBot()
	r.UserEdited = "true"
	assert.Equal(t, slugsync.State{Name: "Support Bot", Slug: "support-bot", UserEdited: true}, r.SlugState())

	r.SetSlugState(slugsync.State{Name: "X", Slug: "x"})
	assert.Equal(t, "false", r.UserEdited)
	assert.Equal(t, "x", r.Slug)
}

func TestSlugEvent(t *testing.T) {
	t.Parallel()

	e := &requests.SlugEvent{Name: "Hello World", Slug: "custom", UserEdited: "yes"}

	assert.Equal(t, slugsync.State{Name: "Hello World", Slug: "custom"}, e.State())
	assert.Equal(t, slugsync.Event{Kind: slugsync.EventNameChanged, Value: "Hello World"}, e.Event(slugsync.EventNameChanged))
	assert.Equal(t, slugsync.Event{Kind: slugsync.EventSlugEdited, Value: "custom"}, e.Event(slugsync.EventSlugEdited))
	assert.Equal(t, slugsync.Event{Kind: slugsync.EventSlugBlurred}, e.Event(slugsync.EventSlugBlurred))
}

func TestUserAccessRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     string
		wantLevel int
		wantErr   string
	}{
		{"zero", "0", 0, ""},
		{"max", "2", 2, ""},
		{"padded", " 1 ", 1, ""},
		{"empty", "", 0, "is required"},
		{"not a number", "admin", 0, "must be a whole number"},
		{"fraction", "1.5", 0, "must be a whole number"},
		{"above max", "3", 0, "must be between 0 and 2"},
		{"negative", "-1", 0, "must be between 0 and 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := requests.NewUserAccessRequest(2)
			r.AccessLevel = tt.level
			r.Sanitize()
			err := r.Validate()

			if tt.wantErr != "" {
				errs := validator.ExtractValidationErrors(err)
				require.NotNil(t, errs)
				assert.Equal(t, tt.wantErr, errs.Get("access_level"))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, r.Level())
		})
	}
}

func TestUserAccessRequest_Input(t *testing.T) {
	t.Parallel()

	r := requests.NewUserAccessRequest(2)
	r.AccessLevel = "1"
	r.CollectFields(url.Values{
		"access_level": {"1"},
		"user_id":      {"u-1"},
		"note":         {"promoted"},
	})
	require.NoError(t, r.Validate())

	body, err := json.Marshal(r.Input())
	require.NoError(t, err)
	assert.JSONEq(t, `{"access_level":1,"note":"promoted"}`, string(body))
	assert.Equal(t, 2, r.MaxLevel())
}
