// Package probe provides stateless helpers over byte buffers: content
// digests, MIME sniffing, and character-encoding detection and decoding.
package probe

import "errors"

var (
	// ErrMime indicates the MIME sniffer could not classify the buffer
	ErrMime = errors.New("probe: mime detection failed")

	// ErrEncoding indicates encoding detection produced no usable result
	ErrEncoding = errors.New("probe: encoding detection failed")
)
