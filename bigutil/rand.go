package bigutil

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/bigintio/go-bigint"
)

// ErrRandomSource is reported when the random byte source fails or
// runs dry. Return sites wrap it with context; classify with
// errors.Is.
var ErrRandomSource = errors.New("random source failure")

// Random returns a uniformly random non-negative value of sizeBytes
// bytes, drawn from the platform CSPRNG. The bytes are interpreted as
// a big-endian unsigned magnitude, so the result is below
// 256^sizeBytes.
func Random(sizeBytes int) (bigint.Int, error) {
	return RandomFrom(rand.Reader, sizeBytes)
}

// RandomFrom is Random with the byte source supplied by the caller.
func RandomFrom(r io.Reader, sizeBytes int) (bigint.Int, error) {
	if sizeBytes < 0 {
		return bigint.Int{}, fmt.Errorf("bigutil: random size %d: %w", sizeBytes, bigint.ErrDomain)
	}
	b := make([]byte, sizeBytes)
	if _, err := io.ReadFull(r, b); err != nil {
		return bigint.Int{}, fmt.Errorf("bigutil: reading %d random bytes: %v: %w", sizeBytes, err, ErrRandomSource)
	}
	return bigint.FromBytes(b, false), nil
}
