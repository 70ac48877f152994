package ai

// Roles used in conversation turns.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// TextPart creates a Part holding a text fragment.
func TextPart(text string) Part {
	return Part{Text: text}
}

// DataPart creates a Part holding inline binary data (base64-encoded) with
// its MIME type.
func DataPart(mimeType, data string) Part {
	return Part{InlineData: &InlineData{MIMEType: mimeType, Data: data}}
}

// NewContent creates a Content turn with the given role and parts.
func NewContent(role string, parts ...Part) Content {
	return Content{Role: role, Parts: parts}
}

// UserContent creates a user-role Content turn with the given parts.
func UserContent(parts ...Part) Content {
	return NewContent(RoleUser, parts...)
}

// ModelContent creates a model-role Content turn with the given parts.
func ModelContent(parts ...Part) Content {
	return NewContent(RoleModel, parts...)
}

// Ptr returns a pointer to v. GenerationConfig uses pointer fields to
// distinguish "unset" from zero values; Ptr avoids a temporary variable when
// setting them from literals.
//
// Example:
//
//	cfg := ai.GenerationConfig{Temperature: ai.Ptr(float32(0.7))}
func Ptr[T any](v T) *T {
	return &v
}

// SimpleRequest wraps a single text prompt into a Request with one user turn
// and no generation config. This is the convenience path for plain text
// prompting.
func SimpleRequest(prompt string) Request {
	return Request{
		Contents: []Content{UserContent(TextPart(prompt))},
	}
}
