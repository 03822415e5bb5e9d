// Command payloads prints the Bedrock request bodies built for a prompt,
// one row per supported model, without calling Bedrock.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v5/log"
	"github.com/Laisky/zap"
	"github.com/olekukonko/tablewriter"

	"github.com/Laisky/bedrock-contentgen/relay/adaptor/aws"
	"github.com/Laisky/bedrock-contentgen/relay/model"
)

// paramFlags collects repeated -param key=value overrides.
type paramFlags map[string]any

func (p paramFlags) String() string {
	pairs := make([]string, 0, len(p))
	for k, v := range p {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(pairs, ",")
}

// Set parses value as JSON and falls back to the raw string.
func (p paramFlags) Set(raw string) error {
	key, value, ok := strings.Cut(raw, "=")
	if !ok || key == "" {
		return errors.Errorf("invalid parameter %q, want key=value", raw)
	}

	var parsed any
	if err := json.Unmarshal([]byte(value), &parsed); err != nil {
		parsed = value
	}
	p[key] = parsed
	return nil
}

type options struct {
	prompt string
	role   string
	model  string
	params paramFlags
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{params: paramFlags{}}
	fs := flag.NewFlagSet("payloads", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.prompt, "prompt", "hello", "prompt to build payloads for")
	fs.StringVar(&opts.role, "role", model.RoleUser, "message role: system, user or assistant")
	fs.StringVar(&opts.model, "model", "", "only build for this model id (default: every supported model)")
	fs.Var(opts.params, "param", "inference parameter override key=value, repeatable")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func main() {
	logger, err := glog.NewConsoleWithName("payloads", glog.LevelInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %+v\n", err)
		os.Exit(1)
	}

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		logger.Error("build payloads", zap.Error(err))
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return errors.Wrap(err, "parse flags")
	}

	models := aws.SupportedModels()
	if opts.model != "" {
		models = []string{opts.model}
	}

	adaptor := aws.New()
	table := tablewriter.NewWriter(stdout)
	table.SetHeader([]string{"Model", "Vendor", "Payload"})
	table.SetAutoWrapText(false)
	table.SetRowLine(true)

	for _, modelID := range models {
		req, err := model.NewRequestBuilder().
			WithModelID(modelID).
			WithPrompt(opts.prompt).
			WithRole(opts.role).
			WithInferenceParameters(opts.params).
			Build()
		if err != nil {
			return err
		}

		payload, err := adaptor.ConvertRequest(req)
		if err != nil {
			return err
		}

		vendor, _ := aws.LookupVendor(modelID)
		table.Append([]string{modelID, vendor.String(), payload})
	}

	table.Render()
	return nil
}
