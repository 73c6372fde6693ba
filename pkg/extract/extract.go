// ABOUTME: Extractor plugin contract and the flavor dispatch registry
// ABOUTME: Each extractor consumes one node and returns zero or more children

package extract

import (
	"errors"

	"github.com/filewhisper/whisper/pkg/flavor"
	"github.com/filewhisper/whisper/pkg/tree"
)

// Func is the single extractor contract: given a node, produce zero or
// more child nodes. Extractors never mutate the input node's content.
type Func func(*tree.Node) ([]*tree.Node, error)

// Extractor is one registry entry
type Extractor struct {
	Name string
	Fn   Func
}

// Registry maps a flavor to its ordered extractor list. New extractors
// are added by editing the registry, not by subclassing anything.
type Registry map[flavor.Flavor][]Extractor

var (
	// ErrPasswordExhausted indicates every candidate password failed
	ErrPasswordExhausted = errors.New("extract: all passwords failed")

	// ErrUnsupportedArchive indicates an archive format without a reader
	ErrUnsupportedArchive = errors.New("extract: unsupported archive format")
)

// DefaultRegistry returns the standard dispatch table:
//
//	TEXT_PLAIN      url
//	TEXT_HTML       html
//	IMAGE           qrcode, ocr
//	COMPRESSED_FILE archive
//	OTHER           (none)
func DefaultRegistry() Registry {
	return Registry{
		flavor.TextPlain: {
			{Name: "url_extractor", Fn: ExtractURLs},
		},
		flavor.TextHTML: {
			{Name: "html_extractor", Fn: ExtractHTML},
		},
		flavor.Image: {
			{Name: "qrcode_extractor", Fn: ExtractQRCode},
			{Name: "ocr_extractor", Fn: ExtractOCR},
		},
		flavor.CompressedFile: {
			{Name: "compressed_file_extractor", Fn: ExtractArchive},
		},
	}
}

// contentBytes returns the raw payload of either content variant
func contentBytes(n *tree.Node) []byte {
	switch c := n.Content.(type) {
	case *tree.File:
		return c.Content
	case *tree.Data:
		return c.Content
	default:
		return nil
	}
}
