package utils

import (
	"context"
	"strings"
)

// RegionMapping lists, per source region, the inference profile prefixes to try in order.
var RegionMapping = map[string][]string{
	"us-east-1":      {"us"},
	"us-east-2":      {"us"},
	"us-west-1":      {"us"},
	"us-west-2":      {"us"},
	"ca-central-1":   {"us"},
	"sa-east-1":      {"us"},
	"us-gov-east-1":  {"us-gov"},
	"us-gov-west-1":  {"us-gov"},
	"eu-west-1":      {"eu"},
	"eu-west-2":      {"eu"},
	"eu-west-3":      {"eu"},
	"eu-central-1":   {"eu"},
	"eu-north-1":     {"eu"},
	"ap-northeast-1": {"jp", "apac"},
	"ap-northeast-2": {"apac"},
	"ap-south-1":     {"apac"},
	"ap-southeast-1": {"apac"},
	"ap-southeast-2": {"au", "apac"},
}

// CrossRegionInferences holds the inference profile ids available for the supported models.
var CrossRegionInferences = []string{
	"us.anthropic.claude-3-haiku-20240307-v1:0",
	"us.anthropic.claude-3-sonnet-20240229-v1:0",
	"us-gov.anthropic.claude-3-haiku-20240307-v1:0",
	"eu.anthropic.claude-3-haiku-20240307-v1:0",
	"eu.anthropic.claude-3-sonnet-20240229-v1:0",
	"apac.anthropic.claude-3-haiku-20240307-v1:0",
	"apac.anthropic.claude-3-sonnet-20240229-v1:0",
}

var crossRegionSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(CrossRegionInferences))
	for _, id := range CrossRegionInferences {
		set[id] = struct{}{}
	}
	return set
}()

// ConvertModelID2CrossRegionProfile returns the inference profile id for modelID
// when one exists for region, trying the region's prefixes in order.
// Otherwise modelID is returned unchanged.
func ConvertModelID2CrossRegionProfile(_ context.Context, modelID, region string) string {
	for _, prefix := range RegionMapping[strings.ToLower(region)] {
		candidate := prefix + "." + modelID
		if _, ok := crossRegionSet[candidate]; ok {
			return candidate
		}
	}
	return modelID
}
