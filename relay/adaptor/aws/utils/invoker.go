package utils

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// Invoker sends a serialized payload to Bedrock and returns the raw response.
// *bedrockruntime.Client satisfies it.
type Invoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

var _ Invoker = (*bedrockruntime.Client)(nil)
