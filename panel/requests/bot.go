package requests

import (
	"slices"
	"strings"

	"github.com/sapujagad-id/botpanel/pkg/botapi"
	"github.com/sapujagad-id/botpanel/pkg/sanitizer"
	"github.com/sapujagad-id/botpanel/pkg/slugsync"
	"github.com/sapujagad-id/botpanel/pkg/validator"
)

// BotFormOptions shapes the chatbot form.
type BotFormOptions struct {
	// SlugEnabled adds the slug and data source fields.
	SlugEnabled bool
	Models      []string
	Adapters    []string
	// DataSources restricts data_source when non-empty.
	DataSources []string
}

// BotRequest is the chatbot create/update form.
type BotRequest struct {
	Name         string   `form:"name"`
	Slug         string   `form:"slug"`
	UserEdited   string   `form:"user_edited"`
	SystemPrompt string   `form:"system_prompt"`
	Model        string   `form:"model"`
	Adapter      string   `form:"adapter"`
	DataSources  []string `form:"data_source"`

	opts BotFormOptions
}

// NewBotRequest returns an empty form using opts.
func NewBotRequest(opts BotFormOptions) *BotRequest {
	return &BotRequest{opts: opts}
}

// BotRequestFrom pre-fills the form from a stored bot and regenerates the
// slug from the name, as the edit page does on load.
func BotRequestFrom(b botapi.Bot, opts BotFormOptions) *BotRequest {
	r := &BotRequest{
		Name:         b.Name,
		Slug:         b.Slug,
		SystemPrompt: b.SystemPrompt,
		Model:        b.Model,
		Adapter:      b.Adapter,
		DataSources:  b.DataSources(),
		opts:         opts,
	}
	sync := slugsync.New(r.SlugState())
	sync.Load()
	r.SetSlugState(sync.State())
	return r
}

// Options returns the form options.
func (r *BotRequest) Options() BotFormOptions {
	return r.opts
}

// Sanitize strips markup from the free-text fields and trims the rest.
func (r *BotRequest) Sanitize() {
	sanitizer.Strings(&r.Name, &r.SystemPrompt)
	r.Slug = strings.TrimSpace(r.Slug)
	r.Model = strings.TrimSpace(r.Model)
	r.Adapter = strings.TrimSpace(r.Adapter)
	r.DataSources = slices.DeleteFunc(r.DataSources, func(s string) bool {
		return strings.TrimSpace(s) == ""
	})
}

// Validate runs the pre-submit checks. A failure means no backend call.
func (r *BotRequest) Validate() error {
	return validator.Apply(
		validator.RequiredString("name", r.Name),
		validator.NoForbiddenChars("name", r.Name, validator.CosmeticForbiddenChars),
		validator.When(r.opts.SlugEnabled, validator.RequiredString("slug", r.Slug)),
		validator.RequiredString("system_prompt", r.SystemPrompt),
		validator.NoForbiddenChars("system_prompt", r.SystemPrompt, validator.CosmeticForbiddenChars),
		validator.RequiredString("model", r.Model),
		validator.OneOf("model", r.Model, r.opts.Models...),
		validator.RequiredString("adapter", r.Adapter),
		validator.OneOf("adapter", r.Adapter, r.opts.Adapters...),
		validator.When(r.opts.SlugEnabled && len(r.opts.DataSources) > 0,
			validator.AllOf("data_source", r.DataSources, r.opts.DataSources...),
		),
	)
}

// Input converts the form into the backend payload. Slug and data source are
// left out when the form has no slug field.
func (r *BotRequest) Input() botapi.BotInput {
	in := botapi.BotInput{
		Name:         r.Name,
		SystemPrompt: r.SystemPrompt,
		Model:        r.Model,
		Adapter:      r.Adapter,
	}
	if r.opts.SlugEnabled {
		in.Slug = r.Slug
		in.DataSource = botapi.JoinDataSources(r.DataSources)
	}
	return in
}

// SlugState returns the slug field state carried by the form.
func (r *BotRequest) SlugState() slugsync.State {
	return slugsync.State{
		Name:       r.Name,
		Slug:       r.Slug,
		UserEdited: slugsync.ParseUserEdited(r.UserEdited),
	}
}

// SetSlugState writes a synchronizer state back into the form.
func (r *BotRequest) SetSlugState(s slugsync.State) {
	r.Name = s.Name
	r.Slug = s.Slug
	r.UserEdited = FormatUserEdited(s.UserEdited)
}

// FormatUserEdited is the form representation of the manual-override flag.
func FormatUserEdited(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
