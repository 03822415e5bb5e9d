package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Laisky/errors/v2"
	gmw "github.com/Laisky/gin-middlewares/v6"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Laisky/bedrock-contentgen/common/logger"
	"github.com/Laisky/bedrock-contentgen/relay/adaptor/aws"
	"github.com/Laisky/bedrock-contentgen/relay/model"
)

type fakeContent struct {
	inputs []string
	err    error
}

func (f *fakeContent) GenerateContent(_ context.Context, input string) (string, error) {
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return "", f.err
	}
	return "summary of " + input, nil
}

// fakeRelay builds real payloads and answers generations with a canned text.
type fakeRelay struct {
	*aws.Adaptor
	text string
	err  error
}

func (f *fakeRelay) Generate(_ context.Context, req *model.GenerationRequest) (string, error) {
	if _, err := f.ConvertRequest(req); err != nil {
		return "", err
	}
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func newEngine(content ContentService, relay RelayService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		gmw.SetLogger(c, logger.Logger)
		c.Next()
	})

	ctl := New(content, relay)
	api := engine.Group("/api")
	api.POST("/generate", ctl.GenerateContent)
	api.GET("/test", ctl.TestContent)
	api.POST("/payload", ctl.BuildPayload)
	api.POST("/invoke", ctl.Invoke)
	api.GET("/models", ctl.ListModels)
	return engine
}

func do(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestGenerateContentEndpoint(t *testing.T) {
	content := &fakeContent{}
	engine := newEngine(content, &fakeRelay{Adaptor: aws.New()})

	w := do(engine, httptest.NewRequest(http.MethodPost, "/api/generate?prompt=record", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "summary of record", w.Body.String())

	form := url.Values{"prompt": {"form record"}}
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = do(engine, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "summary of form record", w.Body.String())

	w = do(engine, httptest.NewRequest(http.MethodPost, "/api/generate", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "'prompt' is a required parameter", w.Body.String())
	require.Len(t, content.inputs, 2)
}

func TestGenerateContentFailure(t *testing.T) {
	engine := newEngine(&fakeContent{err: errors.New("throttled")}, &fakeRelay{Adaptor: aws.New()})

	w := do(engine, httptest.NewRequest(http.MethodPost, "/api/generate?prompt=x", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "Error generating content: throttled", w.Body.String())

	w = do(engine, httptest.NewRequest(http.MethodGet, "/api/test", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "Error in test endpoint: throttled", w.Body.String())
}

func TestTestContentEndpoint(t *testing.T) {
	content := &fakeContent{}
	engine := newEngine(content, &fakeRelay{Adaptor: aws.New()})

	w := do(engine, httptest.NewRequest(http.MethodGet, "/api/test", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"hello"}, content.inputs)
}

func TestBuildPayloadEndpoint(t *testing.T) {
	engine := newEngine(&fakeContent{}, &fakeRelay{Adaptor: aws.New()})

	w := do(engine, postJSON("/api/payload",
		`{"model_id":"amazon.titan-tg1-large","prompt":"hello","role":"user","inference_parameters":{"temperature":0.3}}`))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.Equal(t,
		`{"inputText":"hello","textGenerationConfig":{"maxTokenCount":512,"stopSequences":[],"temperature":0.3,"topP":0.9}}`,
		w.Body.String())
}

func TestBuildPayloadEndpointErrors(t *testing.T) {
	engine := newEngine(&fakeContent{}, &fakeRelay{Adaptor: aws.New()})

	cases := []struct {
		name  string
		body  string
		code  string
		param string
	}{
		{"unsupported model", `{"model_id":"unknown.model","prompt":"hi","role":"user"}`, "unsupported_model", "modelId"},
		{"bad role", `{"model_id":"anthropic.claude-v2","prompt":"hi","role":"narrator"}`, "invalid_value", "role"},
		{"missing prompt", `{"model_id":"anthropic.claude-v2","role":"user"}`, "missing_field", "prompt"},
		{"blank accept", `{"model_id":"anthropic.claude-v2","prompt":"hi","role":"user","accept":""}`, "missing_field", "accept"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(engine, postJSON("/api/payload", tc.body))
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp struct {
				Error      model.Error `json:"error"`
				StatusCode int         `json:"status_code"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Equal(t, tc.code, resp.Error.Code)
			require.Equal(t, tc.param, resp.Error.Param)
			require.Equal(t, "invalid_request_error", resp.Error.Type)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}

	w := do(engine, postJSON("/api/payload", `{"model_id":`))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "invalid_body")
}

func TestInvokeEndpoint(t *testing.T) {
	engine := newEngine(&fakeContent{}, &fakeRelay{Adaptor: aws.New(), text: "Hello world"})

	w := do(engine, postJSON("/api/invoke", `{"model_id":"cohere.command-text-v14","prompt":"hi","role":"user"}`))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"model_id":"cohere.command-text-v14","text":"Hello world"}`, w.Body.String())

	engine = newEngine(&fakeContent{}, &fakeRelay{Adaptor: aws.New(), err: errors.New("access denied")})
	w = do(engine, postJSON("/api/invoke", `{"model_id":"cohere.command-text-v14","prompt":"hi","role":"user"}`))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "access denied")
	require.Contains(t, w.Body.String(), "internal_error")
}

func TestListModelsEndpoint(t *testing.T) {
	engine := newEngine(&fakeContent{}, &fakeRelay{Adaptor: aws.New()})

	w := do(engine, httptest.NewRequest(http.MethodGet, "/api/models", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Object string      `json:"object"`
		Data   []ModelInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "list", resp.Object)
	require.Len(t, resp.Data, len(aws.SupportedModels()))
	require.Equal(t, ModelInfo{ID: "ai21.j2-mid-v1", Object: "model", Vendor: "AI21"}, resp.Data[0])
}
