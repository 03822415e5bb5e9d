package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"

	"github.com/Laisky/bedrock-contentgen/relay/adaptor/aws"
	"github.com/Laisky/bedrock-contentgen/relay/model"
)

func TestParamFlags(t *testing.T) {
	p := paramFlags{}
	require.NoError(t, p.Set("temperature=0.5"))
	require.NoError(t, p.Set("stopSequences=[\"END\"]"))
	require.NoError(t, p.Set("return_likelihoods=ALL"))
	require.NoError(t, p.Set("note=a=b"))

	require.Equal(t, 0.5, p["temperature"])
	require.Equal(t, []any{"END"}, p["stopSequences"])
	require.Equal(t, "ALL", p["return_likelihoods"])
	require.Equal(t, "a=b", p["note"])

	require.Error(t, p.Set("novalue"))
	require.Error(t, p.Set("=1"))
}

func TestRunSingleModel(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-model", "cohere.command-text-v14", "-prompt", "hi", "-param", "k=5"}, &out, io.Discard)
	require.NoError(t, err)

	require.Contains(t, out.String(), "cohere.command-text-v14")
	require.Contains(t, out.String(), "Cohere")
	require.Contains(t, out.String(), `"k":5`)
	require.NotContains(t, out.String(), "amazon.titan-tg1-large")
}

func TestRunEveryModel(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, &out, io.Discard))
	for _, modelID := range aws.SupportedModels() {
		require.Contains(t, out.String(), modelID)
	}
}

func TestRunValidationFailures(t *testing.T) {
	err := run([]string{"-model", "unknown.model"}, io.Discard, io.Discard)
	require.True(t, errors.Is(err, model.ErrUnsupportedModel))

	err = run([]string{"-role", "narrator"}, io.Discard, io.Discard)
	require.True(t, errors.Is(err, model.ErrInvalidValue))

	err = run([]string{"-undefined"}, io.Discard, io.Discard)
	require.Error(t, err)
}
