package reply

// Confidence indicates which parsing stage produced a Reply
type Confidence int

const (
	// ConfidenceStrict means the whole input decoded as structured JSON
	ConfidenceStrict Confidence = iota
	// ConfidenceRecoveredJSON means a JSON object was recovered from inside noise
	ConfidenceRecoveredJSON
	// ConfidenceRecoveredLabeled means labeled text blocks were recovered
	ConfidenceRecoveredLabeled
	// ConfidenceUnstructured means the raw text was taken as-is
	ConfidenceUnstructured
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceStrict:
		return "strict"
	case ConfidenceRecoveredJSON:
		return "recovered_json"
	case ConfidenceRecoveredLabeled:
		return "recovered_labeled"
	case ConfidenceUnstructured:
		return "unstructured"
	default:
		return "unknown"
	}
}

// Reply is the structured record extracted from one raw model turn.
// It is constructed once by Parse and not mutated afterwards.
type Reply struct {
	// What the character actually says, shown to the user
	DialogueText string

	// Short English tags describing the scene, de-duplicated and ordered
	Tags []string

	// Cinematic description of the scene for image generation
	VisualDescription string

	// Optional control string such as "request_image"; empty when absent
	FollowUpAction string

	// Which parsing stage produced this reply
	Confidence Confidence
}
