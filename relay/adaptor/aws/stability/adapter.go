package aws

import (
	"github.com/Laisky/bedrock-contentgen/relay/adaptor/aws/utils"
)

var _ utils.AwsAdapter = new(Adaptor)

// Adaptor builds payloads for Stability AI image models.
type Adaptor struct{}

func (a *Adaptor) ConvertRequest(input utils.BuildInput) (string, error) {
	return ConvertRequest(input)
}

func (a *Adaptor) ExtractText(body []byte) utils.ExtractResult {
	return ExtractText(body)
}
