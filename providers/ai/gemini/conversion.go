package gemini

import (
	"errors"
	"strings"

	"github.com/Himasnhu-AT/ai-go/internal/utils"
	"github.com/Himasnhu-AT/ai-go/providers/ai"
)

// requestToWire converts an ai.Request to the Gemini wire format. The
// internal schema mirrors the wire shape closely, so this stays a thin,
// field-by-field mapping; it exists so that provider dialect changes never
// leak into the generic types.
func requestToWire(request ai.Request) generateContentRequest {
	wireRequest := generateContentRequest{
		Contents: make([]content, len(request.Contents)),
	}

	for i, turn := range request.Contents {
		wireRequest.Contents[i] = contentToWire(turn)
	}

	if cfg := request.GenerationConfig; cfg != nil {
		wireRequest.GenerationConfig = &generationConfig{
			Temperature:     cfg.Temperature,
			TopK:            cfg.TopK,
			TopP:            cfg.TopP,
			MaxOutputTokens: cfg.MaxOutputTokens,
			CandidateCount:  cfg.CandidateCount,
			StopSequences:   cfg.StopSequences,
		}
	}

	for _, setting := range request.SafetySettings {
		wireRequest.SafetySettings = append(wireRequest.SafetySettings, safetySetting{
			Category:  setting.Category,
			Threshold: setting.Threshold,
		})
	}

	for _, t := range request.Tools {
		wireTool := tool{}
		for _, declaration := range t.FunctionDeclarations {
			wireTool.FunctionDeclarations = append(wireTool.FunctionDeclarations, functionDeclaration{
				Name:        declaration.Name,
				Description: declaration.Description,
				Parameters:  declaration.Parameters,
			})
		}
		wireRequest.Tools = append(wireRequest.Tools, wireTool)
	}

	return wireRequest
}

func contentToWire(turn ai.Content) content {
	wireContent := content{
		Role:  turn.Role,
		Parts: make([]part, len(turn.Parts)),
	}
	for i, p := range turn.Parts {
		wireContent.Parts[i] = part{Text: p.Text}
		if p.InlineData != nil {
			wireContent.Parts[i].InlineData = &inlineData{
				MimeType: p.InlineData.MIMEType,
				Data:     p.InlineData.Data,
			}
		}
	}
	return wireContent
}

// responseFromWire converts a Gemini response body to the generic format.
// A body that carries neither candidates, nor prompt feedback, nor an error
// object is structurally invalid and reported as a server error. An embedded
// API error object (possible even on 2xx) is mapped through its status code.
func responseFromWire(wireResponse *generateContentResponse) (*ai.Response, error) {
	if wireResponse.Error != nil {
		apiErr := ai.ErrorFromStatus(wireResponse.Error.Code, wireResponse.Error.Message, 0)
		if wireResponse.Error.Status != "" {
			apiErr.Message = wireResponse.Error.Status + ": " + apiErr.Message
		}
		return nil, apiErr
	}

	if wireResponse.Candidates == nil && wireResponse.PromptFeedback == nil {
		return nil, ai.NewError(ai.KindServer, "malformed response body: missing candidates")
	}

	response := &ai.Response{
		Candidates:     candidatesFromWire(wireResponse.Candidates),
		PromptFeedback: promptFeedbackFromWire(wireResponse.PromptFeedback),
		UsageMetadata:  usageFromWire(wireResponse.UsageMetadata),
	}
	return response, nil
}

// chunkFromWire converts one decoded streaming object to a StreamChunk.
// Chunks have no structural requirement on candidates: a final object may
// legitimately carry only usage metadata.
func chunkFromWire(wireResponse *generateContentResponse) *ai.StreamChunk {
	return &ai.StreamChunk{
		Candidates:     candidatesFromWire(wireResponse.Candidates),
		PromptFeedback: promptFeedbackFromWire(wireResponse.PromptFeedback),
		UsageMetadata:  usageFromWire(wireResponse.UsageMetadata),
	}
}

func candidatesFromWire(wireCandidates []candidate) []ai.Candidate {
	if wireCandidates == nil {
		return nil
	}
	candidates := make([]ai.Candidate, len(wireCandidates))
	for i, wireCandidate := range wireCandidates {
		candidates[i] = ai.Candidate{
			FinishReason: finishReasonFromWire(wireCandidate.FinishReason),
			Index:        wireCandidate.Index,
		}
		if wireCandidate.Content != nil {
			candidates[i].Content = contentFromWire(*wireCandidate.Content)
		}
		for _, rating := range wireCandidate.SafetyRatings {
			candidates[i].SafetyRatings = append(candidates[i].SafetyRatings, ai.SafetyRating{
				Category:    rating.Category,
				Probability: rating.Probability,
				Blocked:     rating.Blocked,
			})
		}
	}
	return candidates
}

func contentFromWire(wireContent content) ai.Content {
	turn := ai.Content{
		Role:  wireContent.Role,
		Parts: make([]ai.Part, len(wireContent.Parts)),
	}
	for i, wirePart := range wireContent.Parts {
		turn.Parts[i] = ai.Part{Text: wirePart.Text}
		if wirePart.InlineData != nil {
			turn.Parts[i].InlineData = &ai.InlineData{
				MIMEType: wirePart.InlineData.MimeType,
				Data:     wirePart.InlineData.Data,
			}
		}
	}
	return turn
}

func promptFeedbackFromWire(wireFeedback *promptFeedback) *ai.PromptFeedback {
	if wireFeedback == nil {
		return nil
	}
	feedback := &ai.PromptFeedback{BlockReason: wireFeedback.BlockReason}
	for _, rating := range wireFeedback.SafetyRatings {
		feedback.SafetyRatings = append(feedback.SafetyRatings, ai.SafetyRating{
			Category:    rating.Category,
			Probability: rating.Probability,
			Blocked:     rating.Blocked,
		})
	}
	return feedback
}

func usageFromWire(wireUsage *usageMetadata) *ai.UsageMetadata {
	if wireUsage == nil {
		return nil
	}
	return &ai.UsageMetadata{
		PromptTokenCount:     wireUsage.PromptTokenCount,
		CandidatesTokenCount: wireUsage.CandidatesTokenCount,
		TotalTokenCount:      wireUsage.TotalTokenCount,
	}
}

// finishReasonFromWire maps Gemini's finish-reason vocabulary onto the
// generic one.
func finishReasonFromWire(wireReason string) string {
	switch wireReason {
	case "":
		return ""
	case "STOP":
		return ai.FinishReasonStop
	case "MAX_TOKENS":
		return ai.FinishReasonMaxTokens
	case "SAFETY", "RECITATION":
		return ai.FinishReasonSafety
	case "OTHER":
		return ai.FinishReasonOther
	default:
		return strings.ToLower(wireReason)
	}
}

// mapTransportError classifies a transport-layer failure: non-2xx statuses
// map through the taxonomy's status table, already-typed errors pass through,
// an undecodable 2xx body is a server error, and everything else (dial
// failures, timeouts, TLS) becomes a network error.
func mapTransportError(err error) error {
	var statusErr *utils.StatusError
	if errors.As(err, &statusErr) {
		return ai.ErrorFromStatus(statusErr.StatusCode, statusErr.Body, statusErr.RetryAfter)
	}
	var aiErr *ai.Error
	if errors.As(err, &aiErr) {
		return aiErr
	}
	if errors.Is(err, utils.ErrDecodeResponse) {
		return ai.WrapError(ai.KindServer, "malformed response body", err)
	}
	return ai.WrapError(ai.KindNetwork, "request failed", err)
}
