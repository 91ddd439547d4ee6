// Package sqerr provides the one structured error kind squaremap ever
// returns in its own right.
//
// It layers github.com/ansel1/merry under a small Kind enum the same way
// github.com/NVIDIA/proxyfs's blunder package layers merry under its
// FsError enum: callers that only want an error string get one from
// Error(), callers that want to distinguish "key absent" from any other
// failure can do so with KindOf(err) without string-matching the message.
package sqerr

import (
	"fmt"

	"github.com/ansel1/merry"
)

// Kind identifies why a squaremap operation failed.
type Kind int

const (
	// None is the zero value; Kind(nil) and Kind(err-without-a-kind) both
	// return it.
	None Kind = iota
	// KeyAbsent is returned by At when the requested key is not present.
	// It is the only error kind squaremap's public surface raises; every
	// other operation is total modulo allocation failure.
	KeyAbsent
)

func (k Kind) String() string {
	switch k {
	case KeyAbsent:
		return "KeyAbsent"
	default:
		return "None"
	}
}

const kindValueKey = "sqerr.kind"

// NewKeyAbsent builds the error At returns for a missing key. The key is
// attached as a merry value so callers can recover it with
// merry.Value(err, "key") instead of parsing the message.
func NewKeyAbsent(key any) error {
	return merry.WrapSkipping(fmt.Errorf("key %v not present", key), 1).
		WithValue(kindValueKey, KeyAbsent).
		WithValue("key", key)
}

// KindOf extracts the Kind previously attached by this package, or None
// if err is nil or carries no such value.
func KindOf(err error) Kind {
	if err == nil {
		return None
	}
	if k, ok := merry.Value(err, kindValueKey).(Kind); ok {
		return k
	}
	return None
}

// IsKeyAbsent reports whether err (or any error it wraps) is the
// KeyAbsent condition raised by At.
func IsKeyAbsent(err error) bool {
	return KindOf(err) == KeyAbsent
}
