package aws

import (
	"github.com/Laisky/bedrock-contentgen/relay/adaptor/aws/utils"
)

var _ utils.AwsAdapter = new(Adaptor)

// Adaptor builds payloads for Anthropic Claude models.
//
// ContentType and Accept travel with the request to InvokeModel; the Messages
// body itself never carries them.
type Adaptor struct{}

func (a *Adaptor) ConvertRequest(input utils.BuildInput) (string, error) {
	return ConvertRequest(input)
}

func (a *Adaptor) ExtractText(body []byte) utils.ExtractResult {
	return ExtractText(body)
}
