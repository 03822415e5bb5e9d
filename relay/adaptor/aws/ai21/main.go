package aws

import (
	"github.com/Laisky/bedrock-contentgen/relay/adaptor/aws/utils"
)

// AwsModelIDMap lists the AI21 Jurassic-2 models served by this adaptor.
var AwsModelIDMap = map[string]string{
	"ai21.j2-mid-v1":   "ai21.j2-mid-v1",
	"ai21.j2-ultra-v1": "ai21.j2-ultra-v1",
}

func DefaultRequest(prompt string) *Request {
	return &Request{
		Prompt:        prompt,
		MaxTokens:     200,
		Temperature:   0.7,
		TopP:          1,
		StopSequences: []string{},
	}
}

// ConvertRequest builds the serialized Jurassic-2 payload.
func ConvertRequest(input utils.BuildInput) (string, error) {
	return utils.BuildPayload(DefaultRequest(input.Prompt), input.InferenceParameters)
}

// ExtractText concatenates the text of every completion.
func ExtractText(body []byte) utils.ExtractResult {
	return utils.ExtractArrayField(body, "completions", "data.text", "")
}
