package aws

import (
	"github.com/Laisky/bedrock-contentgen/relay/adaptor/aws/utils"
)

var _ utils.AwsAdapter = new(Adaptor)

// Adaptor builds payloads for AI21 Jurassic-2 models.
type Adaptor struct{}

func (a *Adaptor) ConvertRequest(input utils.BuildInput) (string, error) {
	return ConvertRequest(input)
}

func (a *Adaptor) ExtractText(body []byte) utils.ExtractResult {
	return ExtractText(body)
}
