package magic

// Confidence qualifies how a detection was made: HIGH when a signature
// matched, NONE when the content is unclassified.
type Confidence string

const (
	ConfidenceHigh Confidence = "HIGH"
	ConfidenceNone Confidence = "NONE"
)

// UnknownTypeDescription is the description reported when no signature
// matches.
const UnknownTypeDescription = "Unknown file type"

// Result is the outcome of analyzing a single file. It is pure data:
// rendering belongs to the report package.
type Result struct {
	Path         string
	DetectedType string // empty when no signature matched
	ClaimedExt   string // empty when the filename has no extension
	Mismatch     bool
	Confidence   Confidence
	MIMEType     string
	Description  string
	Size         int64
}
