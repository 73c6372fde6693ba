// Package server implements the gRPC Whisper service
package server

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/exp/mmap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/filewhisper/whisper/internal/logger"
	"github.com/filewhisper/whisper/internal/metrics"
	"github.com/filewhisper/whisper/pkg/extract"
	"github.com/filewhisper/whisper/pkg/identity"
	"github.com/filewhisper/whisper/pkg/tree"
	"github.com/filewhisper/whisper/pkg/whisper"
	pb "github.com/filewhisper/whisper/proto"
)

// OutputDirEnv names the optional directory for debug copies of every
// file node's bytes, written during serialization under the node UUID.
const OutputDirEnv = "WHISPER_OUTPUT_DIR"

// Server implements the WhisperServer interface
type Server struct {
	pb.UnimplementedWhisperServer

	digester *whisper.Digester
	log      *logger.Logger
	metrics  *metrics.Metrics
}

// NewServer creates a new gRPC server instance. The identity generator
// is shared process-wide; a nil registry means the default dispatch
// table.
func NewServer(ids *identity.Generator, registry extract.Registry, log *logger.Logger, m *metrics.Metrics) *Server {
	digester := whisper.NewDigester(ids, registry, log.DigestLogger())
	if m != nil {
		digester = digester.WithRecorder(m)
	}
	return &Server{
		digester: digester,
		log:      log,
		metrics:  m,
	}
}

// Whispering inspects one root artifact and replies with the derived
// tree in breadth-first order.
func (s *Server) Whispering(ctx context.Context, req *pb.WhisperRequest) (*pb.WhisperReply, error) {
	node := &tree.Node{
		Passwords: req.GetPasswords(),
	}
	if req.RootId != nil {
		node.ID = req.GetRootId()
	}

	switch target := req.GetTarget().(type) {
	case *pb.WhisperRequest_FilePath:
		content, err := readMapped(target.FilePath)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "failed to read %s: %v", target.FilePath, err)
		}
		node.Content = &tree.File{
			Path:    target.FilePath,
			Name:    filepath.Base(target.FilePath),
			Content: content,
		}

	case *pb.WhisperRequest_FileContent:
		node.Content = &tree.File{
			Path:    "memory_file",
			Name:    "memory_file",
			Content: target.FileContent,
		}

	default:
		return nil, status.Error(codes.InvalidArgument, "no file data provided")
	}

	start := time.Now()
	t := &tree.Tree{}
	err := s.digester.Digest(t, node)
	duration := time.Since(start)

	if err != nil {
		s.log.LogDigest(node.ID, 0, duration, err)
		if s.metrics != nil {
			s.metrics.RecordDigest("error", 0, 0, duration)
		}
		return nil, status.Errorf(codes.Internal, "error processing request: %v", err)
	}

	nodeCount := t.Count()
	s.log.LogDigest(t.Root.ID, nodeCount, duration, nil)
	if s.metrics != nil {
		s.metrics.RecordDigest("success", nodeCount, treeDepth(t), duration)
	}

	reply, err := makeWhisperReply(t)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "error serializing reply: %v", err)
	}
	return reply, nil
}

// readMapped reads a file through a memory mapping
func readMapped(path string) ([]byte, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	content := make([]byte, r.Len())
	if r.Len() > 0 {
		if _, err := r.ReadAt(content, 0); err != nil {
			return nil, err
		}
	}
	return content, nil
}

// treeDepth returns the number of levels in the tree
func treeDepth(t *tree.Tree) int {
	if t.Root == nil {
		return 0
	}
	var depth func(*tree.Node) int
	depth = func(n *tree.Node) int {
		deepest := 0
		for _, child := range n.Children {
			if d := depth(child); d > deepest {
				deepest = d
			}
		}
		return deepest + 1
	}
	return depth(t.Root)
}

// writeDebugCopy writes a file node's bytes under the output directory
// when WHISPER_OUTPUT_DIR is set. Serialization fails when the
// directory is configured but not writable.
func writeDebugCopy(uuid string, content []byte) error {
	outputDir := os.Getenv(OutputDirEnv)
	if outputDir == "" {
		return nil
	}

	path := filepath.Join(outputDir, uuid)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("debug copy: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("debug copy: %w", err)
	}
	return nil
}
