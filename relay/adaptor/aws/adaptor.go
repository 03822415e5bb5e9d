package aws

import (
	"context"
	"net/http"
	"time"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v5/log"
	"github.com/Laisky/zap"
	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/Laisky/bedrock-contentgen/common/config"
	"github.com/Laisky/bedrock-contentgen/common/helper"
	"github.com/Laisky/bedrock-contentgen/common/logger"
	"github.com/Laisky/bedrock-contentgen/monitor"
	"github.com/Laisky/bedrock-contentgen/relay/adaptor/aws/utils"
	"github.com/Laisky/bedrock-contentgen/relay/model"
)

// Adaptor assembles vendor payloads and relays them to Bedrock.
// Payload assembly works without Init; invocation needs a client.
type Adaptor struct {
	logger      glog.Logger
	client      utils.Invoker
	metrics     *monitor.Metrics
	region      string
	crossRegion bool
}

type Option func(*Adaptor)

// WithLogger sets the logger, default to logger.Logger.Named("bedrock")
func WithLogger(lg glog.Logger) Option {
	return func(a *Adaptor) {
		a.logger = lg
	}
}

// WithInvoker uses client instead of the one Init would create.
func WithInvoker(client utils.Invoker) Option {
	return func(a *Adaptor) {
		a.client = client
	}
}

func WithMetrics(m *monitor.Metrics) Option {
	return func(a *Adaptor) {
		a.metrics = m
	}
}

func New(opts ...Option) *Adaptor {
	a := &Adaptor{}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = logger.Logger.Named("bedrock")
	}
	return a
}

// Init creates the Bedrock runtime client from cfg. It keeps an invoker
// supplied through WithInvoker.
func (a *Adaptor) Init(ctx context.Context, cfg config.BedrockConfig) error {
	a.region = cfg.Region
	a.crossRegion = cfg.CrossRegionInference
	if a.client != nil {
		return nil
	}

	httpClient := awshttp.NewBuildableClient().
		WithTransportOptions(func(tr *http.Transport) {
			tr.MaxConnsPerHost = cfg.MaxConnections
			tr.MaxIdleConnsPerHost = cfg.MaxConnections
		})
	if cfg.Timeout > 0 {
		httpClient = httpClient.WithTimeout(cfg.Timeout)
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithHTTPClient(httpClient),
	}
	if cfg.StaticCredentials() {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return errors.Wrap(err, "load aws config")
	}

	a.client = bedrockruntime.NewFromConfig(awsCfg)
	a.logger.Info("bedrock client initialized",
		zap.String("region", cfg.Region),
		zap.Int("max_connections", cfg.MaxConnections),
		zap.Duration("timeout", cfg.Timeout),
		zap.Bool("static_credentials", cfg.StaticCredentials()),
		zap.Bool("cross_region", cfg.CrossRegionInference),
	)
	return nil
}

// ConvertRequest validates req and returns the serialized payload of its vendor.
func (a *Adaptor) ConvertRequest(req *model.GenerationRequest) (string, error) {
	if req == nil {
		return "", errors.New("request is nil")
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	vendor, ok := LookupVendor(req.ModelID)
	if !ok {
		return "", &model.UnsupportedModelError{ModelID: req.ModelID}
	}

	input := utils.BuildInput{
		Prompt:              req.Prompt,
		InferenceParameters: req.InferenceParameters,
		System:              req.System,
		Role:                req.Role,
	}
	if vendor == VendorAnthropic {
		input.ContentType = req.ContentType
		input.Accept = req.Accept
	}

	payload, err := AdaptorFor(vendor).ConvertRequest(input)
	a.metrics.ObservePayloadBuild(vendor.String(), err)
	if err != nil {
		return "", errors.Wrapf(err, "build %s payload", vendor)
	}

	a.logger.Debug("payload built",
		zap.String("model", req.ModelID),
		zap.String("vendor", vendor.String()),
		zap.Int("payload_bytes", len(payload)))
	return payload, nil
}

// DoRequest sends payload to the model of req and returns the raw response body.
func (a *Adaptor) DoRequest(ctx context.Context, req *model.GenerationRequest, payload string) ([]byte, error) {
	if a.client == nil {
		return nil, errors.New("bedrock client is not initialized")
	}

	modelID := req.ModelID
	if a.crossRegion {
		modelID = utils.ConvertModelID2CrossRegionProfile(ctx, modelID, a.region)
	}

	startedAt := time.Now()
	out, err := a.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(modelID),
		Body:        []byte(payload),
		ContentType: aws.String(req.ContentType),
		Accept:      aws.String(req.Accept),
	})
	a.metrics.ObserveInvocation(req.ModelID, time.Since(startedAt), err)
	if err != nil {
		return nil, errors.Wrapf(err, "invoke model %s", modelID)
	}

	a.logger.Debug("bedrock invocation finished",
		zap.String("model", modelID),
		zap.Int64("elapsed_ms", helper.CalcElapsedTime(startedAt)),
		zap.Int("response_bytes", len(out.Body)))
	return out.Body, nil
}

// DoResponse extracts the generated text from a response body of modelID.
func (a *Adaptor) DoResponse(modelID string, body []byte) utils.ExtractResult {
	vendor, ok := LookupVendor(modelID)
	if !ok {
		return utils.ExtractResult{Err: &model.UnsupportedModelError{ModelID: modelID}}
	}

	res := AdaptorFor(vendor).ExtractText(body)
	if !res.OK() {
		a.metrics.ObserveExtractionFailure(vendor.String())
		a.logger.Warn("cannot extract response text",
			zap.String("model", modelID),
			zap.String("vendor", vendor.String()),
			zap.Error(res.Err))
	}
	return res
}

// Generate builds, sends and extracts one request. Build and invocation
// errors are returned; an unreadable response yields its diagnostic string.
func (a *Adaptor) Generate(ctx context.Context, req *model.GenerationRequest) (string, error) {
	payload, err := a.ConvertRequest(req)
	if err != nil {
		return "", err
	}

	body, err := a.DoRequest(ctx, req, payload)
	if err != nil {
		return "", err
	}

	return a.DoResponse(req.ModelID, body).String(), nil
}

func (a *Adaptor) GetModelList() []string {
	return SupportedModels()
}

func (a *Adaptor) GetChannelName() string {
	return "aws"
}
