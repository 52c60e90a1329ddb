package twcanon

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "twcanon"
	Text        string       `json:"Text"`        // "non-canonical class \"p-[4px]\": use \"p-1\""
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos     `json:"Pos"`         // File location
	Replacement *Replacement `json:"Replacement"` // Canonical rewrite for the flagged token
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based, exact start of the flagged token
}

// Replacement carries the canonical spelling for the flagged token
type Replacement struct {
	NewText      string // "p-1"
	InlineLength int    // Length of the non-canonical spelling being replaced
}

// Rewrite is a byte-exact substitution the fixer can apply to a file.
// Offset addresses the start of OldText within the file content.
type Rewrite struct {
	File    string
	Offset  int
	OldText string
	NewText string
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue message formats
const (
	IssueNonCanonical = "non-canonical class %q: use %q"
)
