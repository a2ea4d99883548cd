package ffi

import "fmt"

// Status is the result code returned across the C boundary.
// Zero is success; every negative value names exactly one cause.
type Status int8

const (
	StatusOK Status = 0

	// StatusLengthMismatch: the declared phrase length differs from the
	// NUL-terminated length.
	StatusLengthMismatch Status = -1

	// StatusWordCount: the requested or supplied word count is not 12, 18
	// or 24.
	StatusWordCount Status = -2

	// StatusInternalLength: a produced phrase or seed had an unexpected size.
	StatusInternalLength Status = -3

	// StatusCapacity: the phrase output buffer cannot hold phrase plus NUL.
	StatusCapacity Status = -4

	// StatusDecode: the phrase is not valid UTF-8, holds an unknown word or
	// fails its checksum.
	StatusDecode Status = -5

	// StatusNullPointer: a required pointer argument was NULL.
	StatusNullPointer Status = -6

	// StatusEntropy: the system entropy source failed.
	StatusEntropy Status = -7

	// StatusInternalFault: a panic was recovered inside the library.
	StatusInternalFault Status = -8
)

var statusText = map[Status]string{
	StatusOK:             "ok",
	StatusLengthMismatch: "length mismatch",
	StatusWordCount:      "unsupported word count",
	StatusInternalLength: "internal length inconsistency",
	StatusCapacity:       "capacity too small",
	StatusDecode:         "decode failure",
	StatusNullPointer:    "null pointer",
	StatusEntropy:        "entropy source failure",
	StatusInternalFault:  "internal fault",
}

func (s Status) String() string {
	if t, ok := statusText[s]; ok {
		return t
	}
	return fmt.Sprintf("Status(%d)", int8(s))
}
