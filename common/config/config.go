package config

import (
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/go-playground/validator/v10"

	"github.com/Laisky/bedrock-contentgen/common/env"
)

const (
	// DefaultContentType is used for both the Content-Type and Accept of Bedrock invocations.
	DefaultContentType = "application/json"
	// DefaultModelName is the model used by the content generator when MODEL_NAME is unset.
	DefaultModelName = "anthropic.claude-3-haiku-20240307-v1:0"
	// DefaultMaxConnections mirrors the connection ceiling of the original deployment.
	DefaultMaxConnections = 10000
	// DefaultSegmentSize is how many dated entries are summarized per Bedrock call.
	DefaultSegmentSize = 20
)

// Config is the fully resolved process configuration. It is loaded once in main
// and handed to every component explicitly.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Bedrock BedrockConfig
	Content ContentConfig

	// EnablePrometheusMetrics exposes the /metrics endpoint for Prometheus scrapers when true.
	EnablePrometheusMetrics bool
}

// ServerConfig controls the HTTP front end.
type ServerConfig struct {
	// Port is the listening port.
	Port int `validate:"gte=1,lte=65535"`
	// GinMode allows forcing Gin into release mode (or other modes) without recompiling.
	GinMode string
}

// LogConfig controls the process logger.
type LogConfig struct {
	// DebugEnabled toggles verbose structured logging when DEBUG=true.
	DebugEnabled bool
	// Dir, when set, tees gin output into a log file inside this directory.
	Dir string
	// OnlyOneLogFile writes to a single file instead of one file per day.
	OnlyOneLogFile bool
	// PushAPI defines the webhook endpoint for escalated log alerts.
	PushAPI string
	// PushType labels outbound log alerts so downstream processors can route them.
	PushType string
	// PushToken authenticates outbound log alert requests.
	PushToken string
}

// BedrockConfig describes how to reach the Bedrock runtime.
type BedrockConfig struct {
	Region          string `validate:"required"`
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	// MaxConnections caps concurrent connections per Bedrock host.
	MaxConnections int `validate:"gte=1"`
	// Timeout bounds a single invocation; zero disables the client timeout.
	Timeout time.Duration `validate:"gte=0"`
	// CrossRegionInference rewrites model ids to regional inference profiles when one exists.
	CrossRegionInference bool
}

// StaticCredentials reports whether an explicit key pair was configured.
func (c BedrockConfig) StaticCredentials() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}

// ContentConfig drives the segmenting summarizer behind /api/generate.
type ContentConfig struct {
	ModelName string `validate:"required"`
	// PromptFile holds the instructions appended after the concatenated segment summaries.
	PromptFile string `validate:"required"`
	// PrePromptFile holds the instructions prepended to every segment.
	PrePromptFile string `validate:"required"`
	// ProcessedPromptPath, when set, receives a copy of the final prompt for inspection.
	ProcessedPromptPath string
	SegmentSize         int `validate:"gte=1"`
	// Concurrency bounds how many segments are summarized at the same time.
	Concurrency int `validate:"gte=1"`
	// ExcludedSectionMarker starts a section that is dropped up to the next dated entry.
	ExcludedSectionMarker string
	SummaryHeading        string
	DetailHeading         string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:    env.Int("PORT", 3000),
			GinMode: strings.TrimSpace(env.String("GIN_MODE", "")),
		},
		Log: LogConfig{
			DebugEnabled:   env.Bool("DEBUG", false),
			Dir:            env.String("LOG_DIR", ""),
			OnlyOneLogFile: env.Bool("ONLY_ONE_LOG_FILE", false),
			PushAPI:        env.String("LOG_PUSH_API", ""),
			PushType:       env.String("LOG_PUSH_TYPE", ""),
			PushToken:      env.String("LOG_PUSH_TOKEN", ""),
		},
		Bedrock: BedrockConfig{
			Region:          env.String("AWS_REGION", ""),
			AccessKeyID:     env.String("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: env.String("AWS_SECRET_ACCESS_KEY", ""),
			SessionToken:    env.String("AWS_SESSION_TOKEN", ""),
			MaxConnections:  env.Int("BEDROCK_MAX_CONNECTIONS", DefaultMaxConnections),
			Timeout:         env.Seconds("RELAY_TIMEOUT", 0),

			CrossRegionInference: env.Bool("BEDROCK_CROSS_REGION_INFERENCE", false),
		},
		Content: ContentConfig{
			ModelName:             env.String("MODEL_NAME", DefaultModelName),
			PromptFile:            env.String("PROMPT_FILE", "resources/prompt.txt"),
			PrePromptFile:         env.String("PREPROMPT_FILE", "resources/preprompt.txt"),
			ProcessedPromptPath:   env.String("PROCESSED_PROMPT_PATH", ""),
			SegmentSize:           env.Int("SEGMENT_SIZE", DefaultSegmentSize),
			Concurrency:           env.Int("SUMMARY_CONCURRENCY", 1),
			ExcludedSectionMarker: env.String("EXCLUDED_SECTION_MARKER", "衛教指導"),
			SummaryHeading:        env.String("SUMMARY_HEADING", "摘要檢視："),
			DetailHeading:         env.String("DETAIL_HEADING", "詳細日期摘要："),
		},
		EnablePrometheusMetrics: env.Bool("ENABLE_PROMETHEUS_METRICS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks the struct constraints of every section.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if (c.Bedrock.AccessKeyID == "") != (c.Bedrock.SecretAccessKey == "") {
		return errors.New("invalid config: AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set together")
	}
	return nil
}
