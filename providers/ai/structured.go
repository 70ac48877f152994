package ai

import (
	"fmt"

	"github.com/Himasnhu-AT/ai-go/internal/utils"
)

// DecodeFirstText parses the first-candidate text of a response into a typed
// value. Models frequently emit almost-JSON; malformed output is run through
// a JSON repair pass before the decode is abandoned.
//
// Example:
//
//	type Answer struct {
//	    City string `json:"city"`
//	}
//	answer, err := ai.DecodeFirstText[Answer](response)
func DecodeFirstText[T any](response *Response) (T, error) {
	var zero T
	text, ok := response.FirstText()
	if !ok {
		return zero, fmt.Errorf("response carries no text to decode")
	}
	return utils.ParseStringAs[T](text)
}
