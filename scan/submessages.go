package scan

import "github.com/scorix/grib2/spec"

// Submessages flattens every message's repeated-section tree into the flat
// sequence of 7-slot views the decode and grid packages consume, in the
// order the fields were read.
func (s *Scanner) Submessages() ([]spec.SubmessageView, error) {
	messages, _, err := s.Messages()
	if err != nil {
		return nil, err
	}

	var views []spec.SubmessageView
	for _, msg := range messages {
		views = append(views, msg.Submessages()...)
	}
	return views, nil
}
