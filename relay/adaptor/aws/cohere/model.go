package aws

// Request is the Cohere Command text generation body.
//
// https://docs.aws.amazon.com/bedrock/latest/userguide/model-parameters-cohere-command.html
type Request struct {
	Prompt            string   `json:"prompt"`
	MaxTokens         int      `json:"max_tokens"`
	Temperature       float64  `json:"temperature"`
	P                 float64  `json:"p"`
	K                 int      `json:"k"`
	StopSequences     []string `json:"stop_sequences"`
	ReturnLikelihoods string   `json:"return_likelihoods"`
}

type Response struct {
	ID          string       `json:"id"`
	Prompt      string       `json:"prompt"`
	Generations []Generation `json:"generations"`
}

type Generation struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	FinishReason string `json:"finish_reason"`
}
