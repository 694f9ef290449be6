// Package scan walks a GRIB2 byte stream section by section and assembles
// spec.Message values according to the repeated-section rule, replacing the
// two divergent section-walking implementations the original reader package
// carried (one for io.Reader, one for io.ReaderAt) with a single state
// machine shared by both.
package scan

// SectionInfo records a section's position within the containing message,
// used to answer byte-range questions (e.g. for HTTP range requests) without
// re-reading the stream.
type SectionInfo struct {
	Number uint8
	Offset int64
	Length uint32
}

// MessageInfo is the summary view of a message a caller gets without walking
// into its full section tree: enough to decide whether to read the message
// at all.
type MessageInfo struct {
	Index         int
	Offset        int64
	Length        uint32
	Discipline    uint8
	Edition       uint8
	NumDataFields int
	Sections      []SectionInfo
}
