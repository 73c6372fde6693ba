// ABOUTME: Archive extractor with ordered password trial
// ABOUTME: Dispatches on the sniffed MIME type: zip, 7z, rar, tar, and streams

package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/filewhisper/whisper/pkg/tree"
)

// archiveEntry is one leaf entry pulled out of an archive, in the
// archive's natural iteration order.
type archiveEntry struct {
	Name string
	Data []byte
}

// ExtractArchive lists and extracts the node's bytes as an archive.
// Each leaf entry becomes a File child with path and name set to the
// entry path; directories are skipped. Candidate passwords are tried in
// order per the password trial protocol, and the winning non-empty
// password is recorded in the node's meta.
func ExtractArchive(node *tree.Node) ([]*tree.Node, error) {
	file, ok := node.Content.(*tree.File)
	if !ok {
		return nil, nil
	}

	attachArchiveStats(node, file.MimeType, file.Content)

	entries, password, err := tryPasswords(file.MimeType, file.Name, file.Content, node.Passwords)
	if err != nil {
		return nil, err
	}
	if password != "" {
		node.Meta.MapString["correct_password"] = password
	}

	nodes := make([]*tree.Node, 0, len(entries))
	for _, entry := range entries {
		nodes = append(nodes, &tree.Node{
			Content: &tree.File{
				Path:    entry.Name,
				Name:    entry.Name,
				Content: entry.Data,
			},
		})
	}
	return nodes, nil
}

// tryPasswords implements the serialized password trial: with no
// candidates, a single attempt with the empty password; otherwise each
// candidate in order, where a wrong-password failure moves on and any
// other failure short-circuits.
func tryPasswords(mime, name string, data []byte, passwords []string) ([]archiveEntry, string, error) {
	if len(passwords) == 0 {
		entries, err := extractFiles(mime, name, data, "")
		return entries, "", err
	}

	for _, p := range passwords {
		entries, err := extractFiles(mime, name, data, p)
		if err == nil {
			return entries, p, nil
		}
		if IsWrongPassword(err) {
			continue
		}
		return nil, "", err
	}
	return nil, "", ErrPasswordExhausted
}

// wrongPasswordMarkers are the substrings the underlying readers use to
// signal a failed password. The libraries wrap the condition in generic
// errors, so this stays a substring match until they expose codes.
var wrongPasswordMarkers = []string{
	"wrong password",
	"invalid password",
	"incorrect password",
	"bad password",
	"password required",
	"checksum error",
	"crc mismatch",
	"crc error",
}

// IsWrongPassword reports whether err looks like a failed password
// attempt rather than a corrupt or unsupported archive.
func IsWrongPassword(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range wrongPasswordMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// extractFiles dispatches on the sniffed MIME type
func extractFiles(mime, name string, data []byte, password string) ([]archiveEntry, error) {
	switch mime {
	case "application/zip":
		return extractZip(data, password)
	case "application/x-7z-compressed":
		return extract7z(data, password)
	case "application/x-rar-compressed", "application/vnd.rar":
		return extractRar(data, password)
	case "application/x-tar":
		return extractTar(bytes.NewReader(data))
	case "application/gzip", "application/x-gzip":
		return extractGzip(name, data)
	case "application/x-bzip2":
		return extractBzip2(name, data)
	case "application/x-xz":
		return extractXz(name, data)
	case "application/zstd":
		return extractZstd(name, data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedArchive, mime)
	}
}
