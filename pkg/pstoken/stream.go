package pstoken

// Stream identifies the source stream of a redirection.
type Stream int

// Redirection streams. Output is the default stream; its indicator is omitted
// from rendered redirections.
const (
	StreamOutput Stream = iota + 1
	StreamError
	StreamWarning
	StreamVerbose
	StreamDebug
	StreamInformation
	StreamAll
)

// streamCodes maps each stream to its single-character indicator.
var streamCodes = map[Stream]string{
	StreamOutput:      "1",
	StreamError:       "2",
	StreamWarning:     "3",
	StreamVerbose:     "4",
	StreamDebug:       "5",
	StreamInformation: "6",
	StreamAll:         "*",
}

// Code returns the stream's indicator character, or the empty string when the
// stream is the default output stream (whose indicator is always omitted).
func (stream Stream) Code() string {
	if stream == StreamOutput {
		return ""
	}

	return streamCodes[stream]
}

// Indicator returns the stream's indicator character with no omission. The
// target of a merging redirection always spells its stream, even the default
// output stream (2>&1).
func (stream Stream) Indicator() string {
	return streamCodes[stream]
}

// Valid reports whether the stream is one of the enumerated redirection
// streams.
func (stream Stream) Valid() bool {
	_, ok := streamCodes[stream]

	return ok
}
