package uqpack

import (
	"fmt"

	"github.com/jontey/uqpack/pkg/compress"
	"github.com/jontey/uqpack/pkg/frame"
	"github.com/jontey/uqpack/pkg/radix"
	"github.com/jontey/uqpack/pkg/serialize"
	"github.com/pkg/errors"
)

// Error kinds re-exported from the underlying packages so callers only
// need to import this one package to match against errors.Is.
var (
	ErrInvalidFormat        = frame.ErrInvalidFormat
	ErrInvalidHeader        = frame.ErrInvalidHeader
	ErrConflictingFlags     = frame.ErrConflictingFlags
	ErrInvalidBody          = frame.ErrInvalidBody
	ErrInvalidCharacter     = radix.ErrInvalidCharacter
	ErrDecompressionFailed  = compress.ErrDecompressionFailed
	ErrTruncatedLz4Prefix   = compress.ErrTruncatedLz4Prefix
	ErrZstdSizeUnknown      = compress.ErrZstdSizeUnknown
	ErrLengthMismatch       = compress.ErrLengthMismatch
	ErrDeserializationFailed = serialize.ErrDeserializationFailed
	ErrUnsupportedType      = serialize.ErrUnsupportedType
	ErrChecksumMismatch     = errors.New("uqpack: checksum mismatch")
)

// ChecksumMismatchError reports both the expected and the actual tag, per
// spec §7's explicit debuggability requirement.
type ChecksumMismatchError struct {
	Expected string
	Actual   string
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("uqpack: checksum mismatch: expected %q, got %q", e.Expected, e.Actual)
}

func (e *ChecksumMismatchError) Unwrap() error {
	return ErrChecksumMismatch
}
