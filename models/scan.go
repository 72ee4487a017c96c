package models

// ScanResult is the outcome of scanning one fetched page for episode
// headings.
type ScanResult struct {
	// LatestReady is the highest episode number found in a heading
	// without an embedded image. Nil when no such heading exists.
	LatestReady *int
	// MaxFound is the highest episode number found in any heading,
	// image or not. Nil when no heading carried a number.
	MaxFound *int
	// Failure carries a human-readable description when the page could
	// not be scanned or yielded no episode headings at all.
	Failure string
}

// Failed reports whether the scan produced no usable numbers.
func (r *ScanResult) Failed() bool {
	return r.Failure != ""
}

// LatestReadyOrZero returns LatestReady, treating absent as zero.
func (r *ScanResult) LatestReadyOrZero() int {
	if r.LatestReady == nil {
		return 0
	}
	return *r.LatestReady
}

// MaxFoundOrZero returns MaxFound, treating absent as zero.
func (r *ScanResult) MaxFoundOrZero() int {
	if r.MaxFound == nil {
		return 0
	}
	return *r.MaxFound
}
