package models

// DiagnosticKind classifies a non-fatal data-quality finding.
type DiagnosticKind string

const (
	// DiagnosticUnknownDirection marks a matched line that is neither DL nor UL; the line is skipped.
	DiagnosticUnknownDirection DiagnosticKind = "unknown_direction"
	// DiagnosticMCSAnomaly marks a corrupted transmission sent at or above the requested MCS.
	DiagnosticMCSAnomaly DiagnosticKind = "mcs_anomaly"
	// DiagnosticDuplicateByteCount marks a second byte counter for the same key within one file.
	DiagnosticDuplicateByteCount DiagnosticKind = "duplicate_byte_count"
)

type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind"`
	Line    int            `json:"line"`
	Raw     string         `json:"raw"`
	Message string         `json:"message"`
}
