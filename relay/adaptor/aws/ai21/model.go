package aws

// Request is the Jurassic-2 completion body.
type Request struct {
	Prompt           string   `json:"prompt"`
	MaxTokens        int      `json:"maxTokens"`
	Temperature      float64  `json:"temperature"`
	TopP             float64  `json:"topP"`
	StopSequences    []string `json:"stopSequences"`
	CountPenalty     Penalty  `json:"countPenalty"`
	PresencePenalty  Penalty  `json:"presencePenalty"`
	FrequencyPenalty Penalty  `json:"frequencyPenalty"`
}

// Penalty shares one shape across the three penalty knobs, so a "scale"
// override lands on countPenalty, the first of them.
type Penalty struct {
	Scale float64 `json:"scale"`
}

type Response struct {
	ID          any          `json:"id"`
	Completions []Completion `json:"completions"`
}

type Completion struct {
	Data         CompletionData `json:"data"`
	FinishReason struct {
		Reason string `json:"reason"`
	} `json:"finishReason"`
}

type CompletionData struct {
	Text string `json:"text"`
}
