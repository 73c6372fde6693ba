// ABOUTME: OCR extractor backed by Tesseract
// ABOUTME: Fixed language set (Traditional Chinese + English), lazy model check

package extract

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"

	"github.com/filewhisper/whisper/pkg/tree"
)

// TessdataEnv names the environment variable pointing at the Tesseract
// model directory. When unset the library default applies.
const TessdataEnv = "WHISPER_TESSDATA_PREFIX"

var ocrLanguages = []string{"chi_tra", "eng"}

var (
	ocrSetupOnce sync.Once
	ocrSetupErr  error
)

// ocrSetup verifies once per process that the language models load at
// all. Missing tessdata is a setup failure, not a per-node failure.
func ocrSetup() error {
	ocrSetupOnce.Do(func() {
		client := gosseract.NewClient()
		defer client.Close()
		if dir := os.Getenv(TessdataEnv); dir != "" {
			if err := client.SetTessdataPrefix(dir); err != nil {
				ocrSetupErr = fmt.Errorf("ocr setup: %w", err)
				return
			}
		}
		if err := client.SetLanguage(ocrLanguages...); err != nil {
			ocrSetupErr = fmt.Errorf("ocr setup: %w", err)
		}
	})
	return ocrSetupErr
}

// ExtractOCR runs OCR over the node's image bytes and emits a single
// Data{"OCR"} child with the recognized UTF-8 text. Images that yield
// no text emit nothing.
func ExtractOCR(node *tree.Node) ([]*tree.Node, error) {
	file, ok := node.Content.(*tree.File)
	if !ok {
		return nil, nil
	}

	if err := ocrSetup(); err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if dir := os.Getenv(TessdataEnv); dir != "" {
		if err := client.SetTessdataPrefix(dir); err != nil {
			return nil, err
		}
	}
	if err := client.SetLanguage(ocrLanguages...); err != nil {
		return nil, err
	}
	if err := client.SetImageFromBytes(file.Content); err != nil {
		return nil, err
	}

	text, err := client.Text()
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	return []*tree.Node{{
		Content: &tree.Data{Type: "OCR", Content: []byte(text)},
	}}, nil
}
