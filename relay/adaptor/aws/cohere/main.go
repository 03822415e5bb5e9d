package aws

import (
	"github.com/Laisky/bedrock-contentgen/relay/adaptor/aws/utils"
)

// AwsModelIDMap lists the Cohere Command models served by this adaptor.
var AwsModelIDMap = map[string]string{
	"cohere.command-text-v14": "cohere.command-text-v14",
}

func DefaultRequest(prompt string) *Request {
	return &Request{
		Prompt:            prompt,
		MaxTokens:         400,
		Temperature:       0.75,
		P:                 0.01,
		K:                 0,
		StopSequences:     []string{},
		ReturnLikelihoods: "NONE",
	}
}

// ConvertRequest builds the serialized Cohere Command payload.
func ConvertRequest(input utils.BuildInput) (string, error) {
	return utils.BuildPayload(DefaultRequest(input.Prompt), input.InferenceParameters)
}

// ExtractText concatenates the text of every generation.
func ExtractText(body []byte) utils.ExtractResult {
	return utils.ExtractArrayField(body, "generations", "text", "")
}
