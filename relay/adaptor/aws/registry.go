package aws

import (
	"slices"

	ai21 "github.com/Laisky/bedrock-contentgen/relay/adaptor/aws/ai21"
	claude "github.com/Laisky/bedrock-contentgen/relay/adaptor/aws/claude"
	cohere "github.com/Laisky/bedrock-contentgen/relay/adaptor/aws/cohere"
	stability "github.com/Laisky/bedrock-contentgen/relay/adaptor/aws/stability"
	titan "github.com/Laisky/bedrock-contentgen/relay/adaptor/aws/titan"
	"github.com/Laisky/bedrock-contentgen/relay/adaptor/aws/utils"
)

// VendorFamily is the closed set of Bedrock backends a payload can be built for.
type VendorFamily int

const (
	VendorUnknown VendorFamily = iota
	VendorTitan
	VendorAI21
	VendorAnthropic
	VendorCohere
	VendorStabilityAI
)

func (v VendorFamily) String() string {
	switch v {
	case VendorTitan:
		return "Titan"
	case VendorAI21:
		return "AI21"
	case VendorAnthropic:
		return "Anthropic"
	case VendorCohere:
		return "Cohere"
	case VendorStabilityAI:
		return "StabilityAI"
	default:
		return "Unknown"
	}
}

// Vendors lists every supported family in declaration order.
var Vendors = []VendorFamily{VendorTitan, VendorAI21, VendorAnthropic, VendorCohere, VendorStabilityAI}

// adaptors maps exact model ids to their family. Lookups are case sensitive
// and never match on prefixes.
var adaptors = map[string]VendorFamily{}

func init() {
	for model := range titan.AwsModelIDMap {
		adaptors[model] = VendorTitan
	}
	for model := range ai21.AwsModelIDMap {
		adaptors[model] = VendorAI21
	}
	for model := range claude.AwsModelIDMap {
		adaptors[model] = VendorAnthropic
	}
	for model := range cohere.AwsModelIDMap {
		adaptors[model] = VendorCohere
	}
	for model := range stability.AwsModelIDMap {
		adaptors[model] = VendorStabilityAI
	}
}

// LookupVendor returns the family serving modelID.
func LookupVendor(modelID string) (VendorFamily, bool) {
	v, ok := adaptors[modelID]
	return v, ok
}

// AdaptorFor returns the payload adapter of a family, or nil for VendorUnknown.
func AdaptorFor(vendor VendorFamily) utils.AwsAdapter {
	switch vendor {
	case VendorTitan:
		return &titan.Adaptor{}
	case VendorAI21:
		return &ai21.Adaptor{}
	case VendorAnthropic:
		return &claude.Adaptor{}
	case VendorCohere:
		return &cohere.Adaptor{}
	case VendorStabilityAI:
		return &stability.Adaptor{}
	default:
		return nil
	}
}

// GetAdaptor returns the adapter serving modelID, or nil when it is not supported.
func GetAdaptor(modelID string) utils.AwsAdapter {
	return AdaptorFor(adaptors[modelID])
}

// SupportedModels returns every supported model id, sorted.
func SupportedModels() []string {
	models := make([]string, 0, len(adaptors))
	for model := range adaptors {
		models = append(models, model)
	}
	slices.Sort(models)
	return models
}

// IsClaudeModel reports whether modelID is served by the Anthropic family.
func IsClaudeModel(modelID string) bool {
	return adaptors[modelID] == VendorAnthropic
}
