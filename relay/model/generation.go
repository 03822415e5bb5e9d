package model

import (
	"github.com/Laisky/errors/v2"
	"github.com/jinzhu/copier"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"

	// DefaultMediaType is the content type and accept value applied by RequestBuilder.
	DefaultMediaType = "application/json"
)

// IsValidRole reports whether role is one of system, user or assistant.
func IsValidRole(role string) bool {
	switch role {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	default:
		return false
	}
}

// GenerationRequest is the vendor-neutral description of a single
// "generate text from a prompt" call. An empty string means the field is absent.
type GenerationRequest struct {
	ModelID string `json:"model_id"`
	Prompt  string `json:"prompt"`
	// InferenceParameters override existing keys of the vendor's default body.
	// Keys the vendor schema does not declare are dropped.
	InferenceParameters map[string]any `json:"inference_parameters,omitempty"`
	System              string         `json:"system,omitempty"`
	Role                string         `json:"role"`
	ContentType         string         `json:"content_type"`
	Accept              string         `json:"accept"`
}

// Validate checks the required fields in a fixed order and returns the first failure.
// Model support is checked later, during dispatch.
func (r *GenerationRequest) Validate() error {
	if r == nil {
		return errors.New("request is nil")
	}
	if r.ModelID == "" {
		return &MissingFieldError{Field: "modelId"}
	}
	if r.Prompt == "" {
		return &MissingFieldError{Field: "prompt"}
	}
	if r.Role == "" {
		return &MissingFieldError{Field: "role"}
	}
	if !IsValidRole(r.Role) {
		return &InvalidValueError{
			Field:  "role",
			Value:  r.Role,
			Reason: "must be one of 'system', 'user', or 'assistant'",
		}
	}
	if r.ContentType == "" {
		return &MissingFieldError{Field: "contentType"}
	}
	if r.Accept == "" {
		return &MissingFieldError{Field: "accept"}
	}
	return nil
}

// RequestBuilder assembles a GenerationRequest fluently.
// ContentType and Accept start as application/json.
type RequestBuilder struct {
	req GenerationRequest
}

// NewRequestBuilder returns a builder with the default media types.
func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		req: GenerationRequest{
			ContentType: DefaultMediaType,
			Accept:      DefaultMediaType,
		},
	}
}

func (b *RequestBuilder) WithModelID(modelID string) *RequestBuilder {
	b.req.ModelID = modelID
	return b
}

func (b *RequestBuilder) WithPrompt(prompt string) *RequestBuilder {
	b.req.Prompt = prompt
	return b
}

// WithInferenceParameter sets one override; repeated names keep the last value.
func (b *RequestBuilder) WithInferenceParameter(name string, value any) *RequestBuilder {
	if b.req.InferenceParameters == nil {
		b.req.InferenceParameters = make(map[string]any)
	}
	b.req.InferenceParameters[name] = value
	return b
}

// WithInferenceParameters merges every entry of params into the overrides.
func (b *RequestBuilder) WithInferenceParameters(params map[string]any) *RequestBuilder {
	for name, value := range params {
		b.WithInferenceParameter(name, value)
	}
	return b
}

func (b *RequestBuilder) WithSystem(system string) *RequestBuilder {
	b.req.System = system
	return b
}

func (b *RequestBuilder) WithRole(role string) *RequestBuilder {
	b.req.Role = role
	return b
}

func (b *RequestBuilder) WithContentType(contentType string) *RequestBuilder {
	b.req.ContentType = contentType
	return b
}

func (b *RequestBuilder) WithAccept(accept string) *RequestBuilder {
	b.req.Accept = accept
	return b
}

// Build validates the accumulated fields and returns an independent copy,
// so later builder calls never touch a request that was already built.
func (b *RequestBuilder) Build() (*GenerationRequest, error) {
	if err := b.req.Validate(); err != nil {
		return nil, err
	}

	built := new(GenerationRequest)
	if err := copier.CopyWithOption(built, &b.req, copier.Option{DeepCopy: true}); err != nil {
		return nil, errors.Wrap(err, "copy request")
	}
	return built, nil
}
