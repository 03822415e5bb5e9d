package aws

import (
	"github.com/Laisky/bedrock-contentgen/relay/adaptor/aws/utils"
)

// AwsModelIDMap lists the Titan text models served by this adaptor.
var AwsModelIDMap = map[string]string{
	"amazon.titan-tg1-large":       "amazon.titan-tg1-large",
	"amazon.titan-text-express-v1": "amazon.titan-text-express-v1",
}

// DefaultRequest returns the Titan body used before overrides are applied.
func DefaultRequest(prompt string) *Request {
	return &Request{
		InputText: prompt,
		TextGenerationConfig: TextGenerationConfig{
			MaxTokenCount: 512,
			StopSequences: []string{},
			Temperature:   0,
			TopP:          0.9,
		},
	}
}

// ConvertRequest builds the serialized Titan payload.
func ConvertRequest(input utils.BuildInput) (string, error) {
	return utils.BuildPayload(DefaultRequest(input.Prompt), input.InferenceParameters)
}

// ExtractText concatenates the output text of every result.
func ExtractText(body []byte) utils.ExtractResult {
	return utils.ExtractArrayField(body, "results", "outputText", "")
}
