// ABOUTME: The recursion driver: classify a node, run its extractors, recurse
// ABOUTME: Extractor failures are isolated per node; probe failures propagate

package whisper

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/filewhisper/whisper/pkg/extract"
	"github.com/filewhisper/whisper/pkg/identity"
	"github.com/filewhisper/whisper/pkg/probe"
	"github.com/filewhisper/whisper/pkg/tree"
)

// encodingCandidates is how many detected encodings land in node meta
const encodingCandidates = 3

// Digester walks an artifact tree depth-first, filling in identity,
// digests, classification, and extractor output for every node. A
// digester is single-threaded; concurrent requests each use their own
// tree and may share one digester only through its thread-safe parts
// (the identity generator and the registry, which is read-only).
type Digester struct {
	ids      *identity.Generator
	registry extract.Registry
	log      zerolog.Logger
	recorder Recorder
}

// Recorder receives per-extractor run observations. The server wires
// its Prometheus metrics in through this; a nil recorder is a no-op.
type Recorder interface {
	RecordExtractorRun(extractor string, status string, duration time.Duration)
}

// NewDigester creates a driver over the given identity generator and
// extractor registry. A nil registry means the default dispatch table.
func NewDigester(ids *identity.Generator, registry extract.Registry, log zerolog.Logger) *Digester {
	if registry == nil {
		registry = extract.DefaultRegistry()
	}
	return &Digester{ids: ids, registry: registry, log: log}
}

// WithRecorder attaches a run recorder and returns the digester
func (d *Digester) WithRecorder(r Recorder) *Digester {
	d.recorder = r
	return d
}

// Digest processes node and every node derived from it. The node
// becomes the tree's root when the tree is empty. After Digest returns,
// the node and all its descendants are immutable.
func (d *Digester) Digest(t *tree.Tree, node *tree.Node) error {
	if t.Root == nil {
		t.Root = node
	}

	node.UUID = identity.NewUUID()
	if node.ID == 0 {
		id, err := d.ids.NextID()
		if err != nil {
			return err
		}
		node.ID = id
	}

	node.Meta = tree.NewMeta()

	if err := d.classify(node); err != nil {
		return err
	}

	children := d.runExtractors(node)

	for _, child := range children {
		node.AddChild(child)
	}

	for _, child := range children {
		if err := d.Digest(t, child); err != nil {
			return err
		}
	}
	return nil
}

// classify fills in digests, MIME type, and flavor for File content, or
// flavor from the tag for Data content. Both variants get encoding
// candidates recorded in meta.
func (d *Digester) classify(node *tree.Node) error {
	switch c := node.Content.(type) {
	case *tree.File:
		c.Size = int64(len(c.Content))
		c.MD5 = probe.MD5(c.Content)
		c.SHA1 = probe.SHA1(c.Content)
		c.SHA256 = probe.SHA256(c.Content)
		if c.Extension == "" {
			c.Extension = probe.Extension(c.Name)
		}

		mime, err := probe.MimeType(c.Content)
		if err != nil {
			return err
		}
		c.MimeType = mime
		node.SetFlavor(mime)
		d.metaDetectEncoding(node.Meta, c.Content)

		d.log.Debug().
			Uint64("node", node.ID).
			Str("mime", mime).
			Str("flavor", node.Flavor.String()).
			Int64("size", c.Size).
			Msg("classified file node")

	case *tree.Data:
		d.metaDetectEncoding(node.Meta, c.Content)
		node.SetFlavor(c.Type)

		d.log.Debug().
			Uint64("node", node.ID).
			Str("type", c.Type).
			Str("flavor", node.Flavor.String()).
			Msg("classified data node")

	default:
		return fmt.Errorf("whisper: node %d has no content", node.ID)
	}
	return nil
}

// metaDetectEncoding writes the top encoding candidates into meta as
// encoding / encoding2 / encoding3 with matching confidence keys.
// Undetectable buffers record encoding=NONE with the reason.
func (d *Digester) metaDetectEncoding(meta tree.Meta, data []byte) {
	results, err := probe.DetectEncodings(data, encodingCandidates)
	if err != nil {
		meta.MapString["encoding"] = "NONE"
		meta.MapString["encoding_detect_msg"] = err.Error()
		return
	}

	for i, r := range results {
		suffix := ""
		if i > 0 {
			suffix = fmt.Sprintf("%d", i+1)
		}
		meta.MapString["encoding"+suffix] = r.Name
		meta.MapNumber["encoding_confidence"+suffix] = int64(r.Confidence)
	}
}

// runExtractors runs every extractor registered for the node's flavor,
// in order, against the original node. Each run is timed in
// microseconds; a failure is recorded in meta and does not stop the
// remaining extractors.
func (d *Digester) runExtractors(node *tree.Node) []*tree.Node {
	var children []*tree.Node
	for _, ex := range d.registry[node.Flavor] {
		start := time.Now()
		extracted, err := d.callExtractor(ex, node)
		elapsed := time.Since(start)

		node.Meta.MapNumber["microsecond_"+ex.Name] = elapsed.Microseconds()
		if d.recorder != nil {
			status := "success"
			if err != nil {
				status = "error"
			}
			d.recorder.RecordExtractorRun(ex.Name, status, elapsed)
		}

		if err != nil {
			node.Meta.AppendError(ex.Name, err.Error())
			d.log.Error().
				Uint64("node", node.ID).
				Str("extractor", ex.Name).
				Err(err).
				Msg("extractor failed")
			continue
		}
		children = append(children, extracted...)
	}
	return children
}

// callExtractor invokes one plugin with panic isolation. A panicking
// plugin is reported as an ordinary extractor failure.
func (d *Digester) callExtractor(ex extract.Extractor, node *tree.Node) (children []*tree.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			children = nil
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return ex.Fn(node)
}
