// Breadth-first serialization of a digested tree into the wire form
package server

import (
	"github.com/filewhisper/whisper/pkg/tree"
	pb "github.com/filewhisper/whisper/proto"
)

// makeWhisperReply flattens the tree into BFS order. File content is
// carried inline; the wire path of a file node is its UUID so callers
// can address debug copies without the original filesystem layout.
func makeWhisperReply(t *tree.Tree) (*pb.WhisperReply, error) {
	reply := &pb.WhisperReply{}

	var failure error
	t.Walk(func(n *tree.Node) bool {
		pbNode, err := serializeNode(n)
		if err != nil {
			failure = err
			return false
		}
		reply.Tree = append(reply.Tree, pbNode)
		return true
	})
	if failure != nil {
		return nil, failure
	}
	return reply, nil
}

func serializeNode(n *tree.Node) (*pb.Node, error) {
	pbNode := &pb.Node{
		Id: n.ID,
	}
	if n.Parent != nil {
		pbNode.ParentId = n.Parent.ID
	}
	for _, child := range n.Children {
		pbNode.Children = append(pbNode.Children, child.ID)
	}

	switch c := n.Content.(type) {
	case *tree.File:
		pbNode.Content = &pb.Node_File{File: &pb.File{
			Path:      n.UUID,
			Name:      c.Name,
			Size:      c.Size,
			MimeType:  c.MimeType,
			Extension: c.Extension,
			Md5:       c.MD5,
			Sha1:      c.SHA1,
			Sha256:    c.SHA256,
			Content:   c.Content,
		}}
		if err := writeDebugCopy(n.UUID, c.Content); err != nil {
			return nil, err
		}

	case *tree.Data:
		pbNode.Content = &pb.Node_Data{Data: &pb.Data{
			Type:    c.Type,
			Content: c.Content,
		}}
	}

	pbNode.Meta = &pb.Meta{
		MapString: n.Meta.MapString,
		MapNumber: n.Meta.MapNumber,
		MapBool:   n.Meta.MapBool,
	}
	return pbNode, nil
}
