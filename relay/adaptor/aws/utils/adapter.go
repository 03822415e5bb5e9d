package utils

// BuildInput is what the assembler hands to a vendor payload builder.
// ContentType and Accept are only carried for the Anthropic family.
type BuildInput struct {
	Prompt              string
	InferenceParameters map[string]any
	System              string
	Role                string
	ContentType         string
	Accept              string
}

// AwsAdapter is implemented by every Bedrock vendor family.
type AwsAdapter interface {
	// ConvertRequest returns the vendor's serialized request body.
	ConvertRequest(input BuildInput) (string, error)
	// ExtractText pulls the generated text out of a vendor response body.
	// It never fails; parse problems are carried in the result.
	ExtractText(body []byte) ExtractResult
}
