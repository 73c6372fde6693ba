// ABOUTME: HTML extractor producing the document text plus referenced URLs
// ABOUTME: Inline base64 images become File children for further inspection

package extract

import (
	"encoding/base64"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/filewhisper/whisper/pkg/probe"
	"github.com/filewhisper/whisper/pkg/tree"
)

// attributes that carry URLs, checked on every element
var urlAttrs = map[string]bool{
	"href":       true,
	"src":        true,
	"srcset":     true,
	"action":     true,
	"poster":     true,
	"data":       true,
	"data-src":   true,
	"data-main":  true,
	"xlink:href": true,
}

var metaRefreshURL = regexp.MustCompile(`(?i)url=([^;]+)`)

// ExtractHTML parses the node's bytes as HTML and emits, in order: one
// Data{"TEXT"} child holding the document text (text nodes joined with
// single spaces), one Data{"URL"} child per URL referenced from markup,
// and one File child per inline base64 image.
func ExtractHTML(node *tree.Node) ([]*tree.Node, error) {
	text := probe.DecodeAuto(contentBytes(node))

	doc := parseHTML(text)

	nodes := []*tree.Node{{
		Content: &tree.Data{Type: "TEXT", Content: []byte(doc.text)},
	}}
	for _, url := range doc.urls {
		nodes = append(nodes, &tree.Node{
			Content: &tree.Data{Type: "URL", Content: []byte(url)},
		})
	}
	for _, img := range doc.images {
		nodes = append(nodes, &tree.Node{
			Content: &tree.File{Content: img},
		})
	}
	return nodes, nil
}

type htmlDoc struct {
	text   string
	urls   []string
	images [][]byte
}

func parseHTML(src string) htmlDoc {
	var doc htmlDoc
	var parts []string
	seen := make(map[string]bool)

	addURL := func(raw string) {
		u := strings.TrimSpace(raw)
		if u == "" || seen[u] {
			return
		}
		seen[u] = true
		doc.urls = append(doc.urls, u)
	}

	z := html.NewTokenizer(strings.NewReader(src))
	var skipDepth int // inside script/style
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}

		switch tt {
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			if s := strings.TrimSpace(string(z.Text())); s != "" {
				parts = append(parts, strings.Join(strings.Fields(s), " "))
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			name := tok.Data
			if tt == html.StartTagToken && (name == "script" || name == "style") {
				skipDepth++
			}

			var metaProperty, metaHTTPEquiv, metaContent string
			for _, attr := range tok.Attr {
				key := strings.ToLower(attr.Key)
				switch {
				case name == "img" && key == "src" && strings.Contains(attr.Val, "base64"):
					if img := decodeInlineImage(attr.Val); img != nil {
						doc.images = append(doc.images, img)
					}
				case key == "srcset":
					for _, part := range strings.Split(attr.Val, ",") {
						if fields := strings.Fields(strings.TrimSpace(part)); len(fields) > 0 {
							addURL(fields[0])
						}
					}
				case urlAttrs[key]:
					addURL(attr.Val)
				case name == "meta" && key == "property":
					metaProperty = strings.ToLower(strings.TrimSpace(attr.Val))
				case name == "meta" && key == "http-equiv":
					metaHTTPEquiv = strings.ToLower(attr.Val)
				case name == "meta" && key == "content":
					metaContent = attr.Val
				}
			}
			if metaProperty == "og:image" && metaContent != "" {
				addURL(metaContent)
			}
			if metaHTTPEquiv == "refresh" {
				if m := metaRefreshURL.FindStringSubmatch(metaContent); m != nil {
					addURL(m[1])
				}
			}

		case html.EndTagToken:
			tok := z.Token()
			if (tok.Data == "script" || tok.Data == "style") && skipDepth > 0 {
				skipDepth--
			}
		}
	}

	doc.text = strings.Join(parts, " ")
	return doc
}

// decodeInlineImage decodes a data: URI of the form
// data:image/png;base64,<payload>. Returns nil when the payload is not
// base64 or does not decode.
func decodeInlineImage(src string) []byte {
	semi := strings.SplitN(src, ";", 2)
	if len(semi) != 2 {
		return nil
	}
	comma := strings.SplitN(semi[1], ",", 2)
	if len(comma) != 2 || comma[0] != "base64" {
		return nil
	}

	img, err := base64.StdEncoding.DecodeString(comma[1])
	if err != nil {
		return nil
	}
	return img
}
