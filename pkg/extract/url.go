// ABOUTME: URL extractor for plain-text nodes
// ABOUTME: Finds http/https URLs and emits one Data{URL} child per match

package extract

import (
	"regexp"

	"github.com/filewhisper/whisper/pkg/probe"
	"github.com/filewhisper/whisper/pkg/tree"
)

var urlPattern = regexp.MustCompile(`https?://[^\s"<>{}]+`)

// ExtractURLs decodes the node's bytes and emits a Data{"URL"} child
// for every non-overlapping URL match, preserving discovery order.
func ExtractURLs(node *tree.Node) ([]*tree.Node, error) {
	text := probe.DecodeAuto(contentBytes(node))

	var nodes []*tree.Node
	for _, url := range urlPattern.FindAllString(text, -1) {
		nodes = append(nodes, &tree.Node{
			Content: &tree.Data{Type: "URL", Content: []byte(url)},
		})
	}
	return nodes, nil
}
