package controller

import (
	"context"
	"net/http"

	"github.com/Laisky/errors/v2"
	gmw "github.com/Laisky/gin-middlewares/v6"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/Laisky/bedrock-contentgen/common/ctxkey"
	"github.com/Laisky/bedrock-contentgen/common/tracing"
	"github.com/Laisky/bedrock-contentgen/relay/adaptor/aws"
	"github.com/Laisky/bedrock-contentgen/relay/model"
)

// RelayService builds vendor payloads and runs single generations.
// *aws.Adaptor satisfies it.
type RelayService interface {
	ConvertRequest(req *model.GenerationRequest) (string, error)
	Generate(ctx context.Context, req *model.GenerationRequest) (string, error)
	GetModelList() []string
}

// Controller serves the HTTP API.
type Controller struct {
	content ContentService
	relay   RelayService
}

func New(content ContentService, relay RelayService) *Controller {
	return &Controller{content: content, relay: relay}
}

type InvokeResponse struct {
	ModelID string `json:"model_id"`
	Text    string `json:"text"`
}

type ModelInfo struct {
	ID     string `json:"id"`
	Object string `json:"object"`
	Vendor string `json:"owned_by"`
}

// bindGenerationRequest decodes the JSON body. Content type and accept
// default to application/json when the body leaves them out.
func bindGenerationRequest(c *gin.Context) (*model.GenerationRequest, bool) {
	req := &model.GenerationRequest{
		ContentType: model.DefaultMediaType,
		Accept:      model.DefaultMediaType,
	}
	if err := c.ShouldBindJSON(req); err != nil {
		abortWithError(c, &model.ErrorWithStatusCode{
			StatusCode: http.StatusBadRequest,
			Error: model.Error{
				Message:  errors.Wrap(err, "decode request body").Error(),
				Type:     "invalid_request_error",
				Code:     "invalid_body",
				RawError: err,
			},
		})
		return nil, false
	}

	c.Set(ctxkey.RequestModel, req.ModelID)
	return req, true
}

func abortWithError(c *gin.Context, errResp *model.ErrorWithStatusCode) {
	lg := gmw.GetLogger(c)
	if errResp.StatusCode >= http.StatusInternalServerError {
		lg.Error("request failed", tracing.WithTraceID(c,
			zap.String("model", c.GetString(ctxkey.RequestModel)),
			zap.Error(errResp.RawError))...)
	} else {
		lg.Debug("request rejected",
			zap.String("model", c.GetString(ctxkey.RequestModel)),
			zap.String("reason", errResp.Message))
	}
	c.AbortWithStatusJSON(errResp.StatusCode, gin.H{
		"error":       errResp.Error,
		"status_code": errResp.StatusCode,
	})
}

// BuildPayload returns the vendor payload for the posted request without calling Bedrock.
func (ctl *Controller) BuildPayload(c *gin.Context) {
	req, ok := bindGenerationRequest(c)
	if !ok {
		return
	}

	payload, err := ctl.relay.ConvertRequest(req)
	if err != nil {
		abortWithError(c, model.NewErrorWithStatusCode(err))
		return
	}

	c.Set(ctxkey.ConvertedRequest, payload)
	c.Data(http.StatusOK, "application/json", []byte(payload))
}

// Invoke runs one Bedrock generation for the posted request.
func (ctl *Controller) Invoke(c *gin.Context) {
	req, ok := bindGenerationRequest(c)
	if !ok {
		return
	}

	text, err := ctl.relay.Generate(gmw.Ctx(c), req)
	if err != nil {
		abortWithError(c, model.NewErrorWithStatusCode(err))
		return
	}

	c.JSON(http.StatusOK, InvokeResponse{ModelID: req.ModelID, Text: text})
}

// ListModels returns the supported model ids, sorted, with their vendor family.
func (ctl *Controller) ListModels(c *gin.Context) {
	models := ctl.relay.GetModelList()
	data := make([]ModelInfo, 0, len(models))
	for _, id := range models {
		vendor, _ := aws.LookupVendor(id)
		data = append(data, ModelInfo{ID: id, Object: "model", Vendor: vendor.String()})
	}

	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   data,
	})
}
