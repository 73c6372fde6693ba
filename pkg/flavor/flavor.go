// ABOUTME: Flavor classification for inspected artifacts
// ABOUTME: Maps sniffed MIME types and data tags onto a closed category set

package flavor

// Flavor is the coarse category of a node's content. It selects which
// extractors run during a digest.
type Flavor int

const (
	Other Flavor = iota
	TextPlain
	TextHTML
	Image
	CompressedFile
)

// String returns the canonical name of the flavor
func (f Flavor) String() string {
	switch f {
	case TextPlain:
		return "TEXT_PLAIN"
	case TextHTML:
		return "TEXT_HTML"
	case Image:
		return "IMAGE"
	case CompressedFile:
		return "COMPRESSED_FILE"
	default:
		return "OTHER"
	}
}

// mimeFlavors is the constant MIME → flavor table. Anything absent
// classifies as Other. Image types are an exact-match list, not a prefix
// match.
var mimeFlavors = map[string]Flavor{
	"text/plain": TextPlain,

	"text/html": TextHTML,

	"image/jpeg": Image,
	"image/png":  Image,
	"image/gif":  Image,
	"image/bmp":  Image,
	"image/webp": Image,
	"image/tiff": Image,

	"application/zip":              CompressedFile,
	"application/x-rar-compressed": CompressedFile,
	"application/vnd.rar":          CompressedFile,
	"application/x-7z-compressed":  CompressedFile,
	"application/x-tar":            CompressedFile,
	"application/gzip":             CompressedFile,
	"application/x-gzip":           CompressedFile,
	"application/x-bzip2":          CompressedFile,
	"application/x-xz":             CompressedFile,
	"application/zstd":             CompressedFile,
}

// Classify maps a MIME type (for file nodes) or a data tag (for data
// nodes) to its flavor. The match is exact and case-sensitive; unknown
// keys classify as Other.
func Classify(key string) Flavor {
	if f, ok := mimeFlavors[key]; ok {
		return f
	}
	return Other
}
