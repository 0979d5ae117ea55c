package showdown

import "fmt"

// ErrorPolicy decides what a batch does with a line that fails to parse.
type ErrorPolicy string

const (
	// Abort stops the batch at the first bad line.
	Abort ErrorPolicy = "abort"
	// Skip logs the bad line and leaves it out of the output.
	Skip ErrorPolicy = "skip"
	// Report passes the failed result on to the output.
	Report ErrorPolicy = "report"
)

// ParseErrorPolicy validates a policy name.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch p := ErrorPolicy(s); p {
	case Abort, Skip, Report:
		return p, nil
	default:
		return "", fmt.Errorf("unknown error policy %q (want abort, skip or report)", s)
	}
}
