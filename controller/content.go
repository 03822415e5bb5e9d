package controller

import (
	"context"
	"net/http"

	gmw "github.com/Laisky/gin-middlewares/v6"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/Laisky/bedrock-contentgen/relay/model"
)

// testPrompt is the input of the smoke-test endpoint.
const testPrompt = "hello"

// ContentService produces the summarized content of a record.
// *relay/controller.ContentGenerator satisfies it.
type ContentService interface {
	GenerateContent(ctx context.Context, input string) (string, error)
}

// GenerateContent summarizes the "prompt" query or form value and returns plain text.
func (ctl *Controller) GenerateContent(c *gin.Context) {
	prompt := c.Query("prompt")
	if prompt == "" {
		prompt = c.PostForm("prompt")
	}
	if prompt == "" {
		c.String(http.StatusBadRequest, (&model.MissingFieldError{Field: "prompt"}).Error())
		return
	}

	ctl.respondContent(c, prompt, "Error generating content: ")
}

// TestContent runs the content pipeline on a fixed prompt.
func (ctl *Controller) TestContent(c *gin.Context) {
	ctl.respondContent(c, testPrompt, "Error in test endpoint: ")
}

func (ctl *Controller) respondContent(c *gin.Context, prompt, errPrefix string) {
	lg := gmw.GetLogger(c)
	content, err := ctl.content.GenerateContent(gmw.Ctx(c), prompt)
	if err != nil {
		lg.Error("generate content", zap.Error(err))
		c.String(http.StatusInternalServerError, errPrefix+err.Error())
		return
	}

	c.String(http.StatusOK, content)
}
