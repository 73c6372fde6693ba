// ABOUTME: In-memory tree of inspected artifacts
// ABOUTME: Defines Node, the File/Data content union, and per-node metadata

package tree

import "github.com/filewhisper/whisper/pkg/flavor"

// Content is the closed content union of a node. The two variants are
// File (an on-disk or supplied-as-bytes artifact) and Data (an
// extractor-produced payload). Access always branches on the concrete
// type.
type Content interface {
	isContent()
}

// File represents a filesystem-style artifact. Size, digests and
// MimeType are filled in during the digest step, not at construction.
type File struct {
	Path      string // original path, or the synthetic name for buffers
	Name      string // base name
	Size      int64  // len(Content), set by the digest step
	MimeType  string // sniffed media type
	Extension string // extension without the leading dot
	MD5       string // lowercase hex
	SHA1      string // lowercase hex
	SHA256    string // lowercase hex
	Content   []byte
}

func (*File) isContent() {}

// Data represents an extractor-produced payload such as a discovered
// URL or decoded QR code text. Type is the extractor-defined tag
// ("URL", "QRCODE", "OCR", "TEXT").
type Data struct {
	Type    string
	Content []byte
}

func (*Data) isContent() {}

// Meta holds extractor- and driver-produced metadata as three disjoint
// maps keyed by string.
type Meta struct {
	MapString map[string]string
	MapNumber map[string]int64
	MapBool   map[string]bool
}

// NewMeta returns a Meta with all three maps allocated
func NewMeta() Meta {
	return Meta{
		MapString: make(map[string]string),
		MapNumber: make(map[string]int64),
		MapBool:   make(map[string]bool),
	}
}

// AppendError concatenates an extractor failure onto the error_message
// entry, keeping earlier failures.
func (m Meta) AppendError(name, msg string) {
	m.MapString["error_message"] += name + ": " + msg + ";"
}

// Node is one artifact in the tree. Parent is a non-owning
// back-reference; the root's Parent is nil. Children are owned and
// ordered.
type Node struct {
	ID        uint64
	UUID      string
	Parent    *Node
	Children  []*Node
	Content   Content
	Flavor    flavor.Flavor
	Passwords []string
	Meta      Meta
}

// AddChild appends child to the node's children and sets the
// back-reference. The child also inherits the candidate password list.
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	child.Passwords = n.Passwords
	n.Children = append(n.Children, child)
}

// SetFlavor classifies the node from the given key (a MIME type for
// File content, a data tag for Data content).
func (n *Node) SetFlavor(key string) {
	n.Flavor = flavor.Classify(key)
}
