package probe

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MimeType sniffs the media type of data. The returned string is the
// bare type with any parameters stripped, so text buffers come back as
// "text/plain" rather than "text/plain; charset=utf-8".
func MimeType(data []byte) (string, error) {
	mt := mimetype.Detect(data)
	if mt == nil {
		return "", ErrMime
	}

	s := mt.String()
	if i := strings.IndexByte(s, ';'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return s, nil
}

// Extension returns the file extension for name without the leading dot
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return ""
	}
	// a dot inside the last path element only
	if strings.ContainsAny(name[i+1:], "/\\") {
		return ""
	}
	return name[i+1:]
}
