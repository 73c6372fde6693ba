// ABOUTME: QR code extractor for image nodes
// ABOUTME: Scans with rotation/retry enabled, one Data{QRCODE} child per symbol

package extract

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/makiuchi-d/gozxing"
	mqr "github.com/makiuchi-d/gozxing/multi/qrcode"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/filewhisper/whisper/pkg/tree"
)

// ExtractQRCode decodes the node bytes as an image and scans it for QR
// codes. Each decoded symbol becomes a Data{"QRCODE"} child. Scan
// failures and images without symbols emit nothing; only Data-typed
// nodes are skipped outright.
func ExtractQRCode(node *tree.Node) ([]*tree.Node, error) {
	file, ok := node.Content.(*tree.File)
	if !ok {
		return nil, nil
	}

	img, _, err := image.Decode(bytes.NewReader(file.Content))
	if err != nil {
		return nil, nil
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, nil
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}

	results, err := mqr.NewQRCodeMultiReader().DecodeMultiple(bmp, hints)
	if err != nil {
		return nil, nil
	}

	var nodes []*tree.Node
	for _, result := range results {
		nodes = append(nodes, &tree.Node{
			Content: &tree.Data{Type: "QRCODE", Content: []byte(result.GetText())},
		})
	}
	return nodes, nil
}
