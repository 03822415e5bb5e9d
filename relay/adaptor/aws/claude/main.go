package aws

import (
	"github.com/Laisky/bedrock-contentgen/relay/adaptor/aws/utils"
	"github.com/Laisky/bedrock-contentgen/relay/model"
)

// AwsModelIDMap lists the Claude models served by this adaptor.
var AwsModelIDMap = map[string]string{
	"anthropic.claude-instant-v1":             "anthropic.claude-instant-v1",
	"anthropic.claude-v1":                     "anthropic.claude-v1",
	"anthropic.claude-v2":                     "anthropic.claude-v2",
	"anthropic.claude-3-sonnet-20240229-v1:0": "anthropic.claude-3-sonnet-20240229-v1:0",
	"anthropic.claude-3-haiku-20240307-v1:0":  "anthropic.claude-3-haiku-20240307-v1:0",
}

func DefaultRequest(prompt, role string) *Request {
	return &Request{
		AnthropicVersion: AnthropicVersion,
		MaxTokens:        1000,
		Messages: []Message{{
			Role:    role,
			Content: []ContentBlock{{Type: "text", Text: prompt}},
		}},
	}
}

// ConvertRequest builds the serialized Claude Messages payload.
// Prompt and role are checked again here so the builder can be used on its own.
func ConvertRequest(input utils.BuildInput) (string, error) {
	if input.Prompt == "" {
		return "", &model.MissingFieldError{Field: "prompt"}
	}
	if input.Role == "" {
		return "", &model.MissingFieldError{Field: "role"}
	}

	return utils.BuildPayload(DefaultRequest(input.Prompt, input.Role), input.InferenceParameters)
}

// ExtractText concatenates the text content blocks of a Messages response.
func ExtractText(body []byte) utils.ExtractResult {
	return utils.ExtractContentBlocks(body)
}
