package markup

// Issue classifies a Warning.
type Issue int

const (
	// IssueUnterminatedTag: a '<' had no closing '>'; the rest of the input
	// was dropped.
	IssueUnterminatedTag Issue = iota + 1

	// IssueMalformedColor: a col= value was not six characters long; the
	// tag was dropped.
	IssueMalformedColor

	// IssueInvalidHexDigit: a col= value had six characters but some were
	// not hex digits. The color was still used.
	IssueInvalidHexDigit

	// IssueUnmatchedClose: a closing tag had no open tag of its kind.
	IssueUnmatchedClose

	// IssueUnclosedTag: an opening tag was still open at the end of input.
	IssueUnclosedTag
)

// String returns a short name for the issue.
func (i Issue) String() string {
	switch i {
	case IssueUnterminatedTag:
		return "unterminated tag"
	case IssueMalformedColor:
		return "malformed color"
	case IssueInvalidHexDigit:
		return "invalid hex digit"
	case IssueUnmatchedClose:
		return "unmatched closing tag"
	case IssueUnclosedTag:
		return "unclosed tag"
	default:
		return "unknown issue"
	}
}

// Warning describes input Parse accepted but could not fully honor.
type Warning struct {
	Issue Issue

	// Pos is the byte offset in the raw input where the offending tag starts.
	Pos int

	// Description is a human-readable account of what happened.
	Description string
}
