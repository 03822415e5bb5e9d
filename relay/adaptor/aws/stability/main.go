package aws

import (
	"github.com/Laisky/bedrock-contentgen/relay/adaptor/aws/utils"
)

// AwsModelIDMap lists the Stability AI models served by this adaptor.
var AwsModelIDMap = map[string]string{
	"stability.stable-diffusion-xl-v0": "stability.stable-diffusion-xl-v0",
}

func DefaultRequest(prompt string) *Request {
	return &Request{
		TextPrompts: []TextPrompt{{Text: prompt}},
		CfgScale:    10,
		Seed:        0,
		Steps:       50,
	}
}

// ConvertRequest builds the serialized SDXL payload. The prompt sits inside
// an array, so no override can reach it.
func ConvertRequest(input utils.BuildInput) (string, error) {
	return utils.BuildPayload(DefaultRequest(input.Prompt), input.InferenceParameters)
}

// ExtractText returns the base64 image of every artifact, one per line.
func ExtractText(body []byte) utils.ExtractResult {
	return utils.ExtractArrayField(body, "artifacts", "base64", "\n")
}
