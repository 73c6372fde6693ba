package probe

import (
	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/ianaindex"
)

// EncodingResult is one candidate character encoding for a buffer
type EncodingResult struct {
	Name       string
	Confidence int // 0-100
}

// DetectEncodings returns up to max candidate encodings for data,
// highest confidence first. An empty or undetectable buffer yields an
// ErrEncoding.
func DetectEncodings(data []byte, max int) ([]EncodingResult, error) {
	if len(data) == 0 {
		return nil, ErrEncoding
	}

	detector := chardet.NewTextDetector()
	results, err := detector.DetectAll(data)
	if err != nil || len(results) == 0 {
		return nil, ErrEncoding
	}

	if max > 0 && len(results) > max {
		results = results[:max]
	}

	out := make([]EncodingResult, len(results))
	for i, r := range results {
		out[i] = EncodingResult{Name: r.Charset, Confidence: r.Confidence}
	}
	return out, nil
}

// Decode converts data from the named encoding to a UTF-8 string.
// Returns the empty string when the encoding is unknown or the buffer
// does not decode.
func Decode(data []byte, name string) string {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return ""
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return ""
	}
	return string(decoded)
}

// DecodeAuto detects the buffer's encoding and decodes with the top
// candidate when its confidence is at least 10. Everything else yields
// the empty string.
func DecodeAuto(data []byte) string {
	results, err := DetectEncodings(data, 1)
	if err != nil || len(results) == 0 {
		return ""
	}
	if results[0].Confidence < 10 {
		return ""
	}
	return Decode(data, results[0].Name)
}
