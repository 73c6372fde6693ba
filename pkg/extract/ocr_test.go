// ABOUTME: Tests for the OCR extractor boundaries
// ABOUTME: Full OCR runs need tessdata, so only the cheap paths are covered

package extract

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/filewhisper/whisper/pkg/tree"
)

func blankPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExtractOCRSkipsDataNodes(t *testing.T) {
	node := &tree.Node{Content: &tree.Data{Type: "QRCODE", Content: []byte("http://x")}}
	nodes, err := ExtractOCR(node)
	if err != nil || nodes != nil {
		t.Errorf("Data node should be a no-op, got %v, %v", nodes, err)
	}
}
