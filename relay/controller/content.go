package controller

import (
	"context"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v5/log"
	"github.com/Laisky/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Laisky/bedrock-contentgen/common/config"
	"github.com/Laisky/bedrock-contentgen/common/logger"
	"github.com/Laisky/bedrock-contentgen/relay/model"
)

// Generator runs one text generation request. *aws.Adaptor satisfies it.
type Generator interface {
	Generate(ctx context.Context, req *model.GenerationRequest) (string, error)
}

// summaryParameters are sent with every summarization call. The overlay keeps
// only the keys the model's body declares.
var summaryParameters = map[string]any{
	"max_tokens_to_sample": 2048,
	"temperature":          0.5,
	"top_k":                250,
	"top_p":                1,
}

// ContentGenerator summarizes a long dated record segment by segment and then
// summarizes the summaries.
type ContentGenerator struct {
	cfg    config.ContentConfig
	gen    Generator
	logger glog.Logger
}

type ContentOption func(*ContentGenerator)

func WithContentLogger(lg glog.Logger) ContentOption {
	return func(g *ContentGenerator) {
		g.logger = lg
	}
}

func NewContentGenerator(cfg config.ContentConfig, gen Generator, opts ...ContentOption) *ContentGenerator {
	g := &ContentGenerator{cfg: cfg, gen: gen}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = logger.Logger.Named("content")
	}
	return g
}

// GenerateContent returns the overall summary of input followed by the
// per-segment summaries, each under its heading.
func (g *ContentGenerator) GenerateContent(ctx context.Context, input string) (string, error) {
	finalInstructions, err := os.ReadFile(g.cfg.PromptFile)
	if err != nil {
		return "", errors.Wrapf(err, "read prompt file %q", g.cfg.PromptFile)
	}
	prePrompt, err := os.ReadFile(g.cfg.PrePromptFile)
	if err != nil {
		return "", errors.Wrapf(err, "read pre-prompt file %q", g.cfg.PrePromptFile)
	}

	segments := SplitIntoSegments(input, g.cfg.SegmentSize)
	summaries := make([]string, len(segments))

	pool, poolCtx := errgroup.WithContext(ctx)
	pool.SetLimit(max(g.cfg.Concurrency, 1))
	for i, segment := range segments {
		pool.Go(func() error {
			segment = RemoveSections(segment, g.cfg.ExcludedSectionMarker)
			segment = RemoveAllWhitespace(segment)
			prompt := string(prePrompt) + segment

			g.logger.Info("summarize segment",
				zap.Int("segment", i),
				zap.Int("prompt_length", utf8.RuneCountInString(prompt)))

			summary, err := g.summarize(poolCtx, prompt)
			if err != nil {
				return errors.Wrapf(err, "summarize segment %d", i)
			}
			summaries[i] = summary
			return nil
		})
	}
	if err = pool.Wait(); err != nil {
		return "", err
	}

	details := strings.Join(summaries, "")
	finalPrompt := details + string(finalInstructions)
	if g.cfg.ProcessedPromptPath != "" {
		if err = os.WriteFile(g.cfg.ProcessedPromptPath, []byte(finalPrompt), 0o644); err != nil {
			return "", errors.Wrapf(err, "save processed prompt to %q", g.cfg.ProcessedPromptPath)
		}
	}

	overall, err := g.summarize(ctx, finalPrompt)
	if err != nil {
		return "", errors.Wrap(err, "summarize record")
	}

	var sb strings.Builder
	sb.WriteString(g.cfg.SummaryHeading)
	sb.WriteString("\n")
	sb.WriteString(overall)
	sb.WriteString("\n")
	sb.WriteString(g.cfg.DetailHeading)
	sb.WriteString("\n")
	sb.WriteString(details)
	return sb.String(), nil
}

func (g *ContentGenerator) summarize(ctx context.Context, prompt string) (string, error) {
	req, err := model.NewRequestBuilder().
		WithModelID(g.cfg.ModelName).
		WithPrompt(prompt).
		WithInferenceParameters(summaryParameters).
		WithRole(model.RoleUser).
		WithContentType(config.DefaultContentType).
		WithAccept(config.DefaultContentType).
		Build()
	if err != nil {
		return "", err
	}
	return g.gen.Generate(ctx, req)
}
