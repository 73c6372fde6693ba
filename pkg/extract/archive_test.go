// ABOUTME: Tests for the archive extractor and password trial
// ABOUTME: Builds zip/tar/gzip/xz/zstd fixtures in memory; 7z and rar come from testdata

package extract

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	yekazip "github.com/yeka/zip"

	"github.com/filewhisper/whisper/pkg/tree"
)

// loadFixture reads a pre-built archive from testdata. The 7z and rar
// fixtures live there because neither format has a Go writer; see
// DESIGN.md for how they were produced and validated.
func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("fixture %s: %v", name, err)
	}
	return data
}

func archiveNode(name, mime string, data []byte, passwords []string) *tree.Node {
	n := &tree.Node{
		Content:   &tree.File{Path: name, Name: name, MimeType: mime, Content: data},
		Passwords: passwords,
	}
	n.Meta = tree.NewMeta()
	return n
}

func zipFixture(t *testing.T, files [][2]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, f := range files {
		fw, err := w.Create(f[0])
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte(f[1])); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExtractArchiveZip(t *testing.T) {
	data := zipFixture(t, [][2]string{
		{"docs/", ""},
		{"docs/a.txt", "alpha"},
		{"b.txt", "bravo"},
	})

	node := archiveNode("fixture.zip", "application/zip", data, nil)
	nodes, err := ExtractArchive(node)
	if err != nil {
		t.Fatalf("ExtractArchive: %v", err)
	}

	if len(nodes) != 2 {
		t.Fatalf("got %d children, want 2 (directories skipped)", len(nodes))
	}
	first := nodes[0].Content.(*tree.File)
	if first.Path != "docs/a.txt" || first.Name != "docs/a.txt" || string(first.Content) != "alpha" {
		t.Errorf("first entry = %q (%q)", first.Name, first.Content)
	}
	second := nodes[1].Content.(*tree.File)
	if second.Name != "b.txt" || string(second.Content) != "bravo" {
		t.Errorf("second entry = %q (%q)", second.Name, second.Content)
	}
}

func TestExtractArchiveZipStats(t *testing.T) {
	data := zipFixture(t, [][2]string{
		{"docs/", ""},
		{"docs/a.txt", "alpha"},
		{"b.txt", "bravo"},
	})

	node := archiveNode("fixture.zip", "application/zip", data, nil)
	if _, err := ExtractArchive(node); err != nil {
		t.Fatal(err)
	}

	if node.Meta.MapNumber["items_count"] != 3 {
		t.Errorf("items_count = %d, want 3", node.Meta.MapNumber["items_count"])
	}
	if node.Meta.MapNumber["files_count"] != 2 {
		t.Errorf("files_count = %d, want 2", node.Meta.MapNumber["files_count"])
	}
	if node.Meta.MapNumber["folders_count"] != 1 {
		t.Errorf("folders_count = %d, want 1", node.Meta.MapNumber["folders_count"])
	}
	if node.Meta.MapNumber["size"] != int64(len("alpha")+len("bravo")) {
		t.Errorf("size = %d", node.Meta.MapNumber["size"])
	}
	if node.Meta.MapBool["is_multi_volume"] {
		t.Error("is_multi_volume set for a single file")
	}
}

func encryptedZipFixture(t *testing.T, password string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := yekazip.NewWriter(&buf)
	fw, err := w.Encrypt("secret.txt", password, yekazip.AES256Encryption)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte("classified")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExtractArchivePasswordTrial(t *testing.T) {
	data := encryptedZipFixture(t, "hunter2")

	node := archiveNode("enc.zip", "application/zip", data, []string{"first-guess", "hunter2"})
	nodes, err := ExtractArchive(node)
	if err != nil {
		t.Fatalf("ExtractArchive: %v", err)
	}

	if node.Meta.MapString["correct_password"] != "hunter2" {
		t.Errorf("correct_password = %q", node.Meta.MapString["correct_password"])
	}
	if len(nodes) != 1 || string(nodes[0].Content.(*tree.File).Content) != "classified" {
		t.Fatalf("unexpected extraction result: %d nodes", len(nodes))
	}
}

func TestExtractArchivePasswordExhausted(t *testing.T) {
	data := encryptedZipFixture(t, "hunter2")

	node := archiveNode("enc.zip", "application/zip", data, []string{"nope", "still-nope"})
	_, err := ExtractArchive(node)
	if !errors.Is(err, ErrPasswordExhausted) {
		t.Fatalf("err = %v, want ErrPasswordExhausted", err)
	}
	if _, ok := node.Meta.MapString["correct_password"]; ok {
		t.Error("correct_password recorded despite failure")
	}
}

func TestExtractArchiveEncryptedNoPasswords(t *testing.T) {
	data := encryptedZipFixture(t, "hunter2")

	node := archiveNode("enc.zip", "application/zip", data, nil)
	_, err := ExtractArchive(node)
	if err == nil {
		t.Fatal("expected failure extracting encrypted zip without a password")
	}
	if errors.Is(err, ErrPasswordExhausted) {
		t.Error("empty-password attempt must propagate the raw failure, not exhaustion")
	}
}

func TestExtractArchiveTar(t *testing.T) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	if err := tw.WriteHeader(&tar.Header{Name: "dir/", Typeflag: tar.TypeDir, Mode: 0755}); err != nil {
		t.Fatal(err)
	}
	body := []byte("tar body")
	if err := tw.WriteHeader(&tar.Header{Name: "dir/file.txt", Typeflag: tar.TypeReg, Mode: 0644, Size: int64(len(body))}); err != nil {
		t.Fatal(err)
	}
	if _, err := tw.Write(body); err != nil {
		t.Fatal(err)
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}

	node := archiveNode("fixture.tar", "application/x-tar", buf.Bytes(), nil)
	nodes, err := ExtractArchive(node)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 1 {
		t.Fatalf("got %d children, want 1", len(nodes))
	}
	file := nodes[0].Content.(*tree.File)
	if file.Name != "dir/file.txt" || !bytes.Equal(file.Content, body) {
		t.Errorf("entry = %q (%q)", file.Name, file.Content)
	}
}

func TestExtractArchiveGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte("stream body")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	node := archiveNode("notes.txt.gz", "application/gzip", buf.Bytes(), nil)
	nodes, err := ExtractArchive(node)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 1 {
		t.Fatalf("got %d children, want 1", len(nodes))
	}
	file := nodes[0].Content.(*tree.File)
	if file.Name != "notes.txt" {
		t.Errorf("member name = %q, want notes.txt", file.Name)
	}
	if string(file.Content) != "stream body" {
		t.Errorf("member content = %q", file.Content)
	}
}

func TestExtractArchive7z(t *testing.T) {
	data := loadFixture(t, "test_archive.7z")

	node := archiveNode("fixture.7z", "application/x-7z-compressed", data, nil)
	nodes, err := ExtractArchive(node)
	if err != nil {
		t.Fatalf("ExtractArchive: %v", err)
	}

	if len(nodes) != 2 {
		t.Fatalf("got %d children, want 2 (directories skipped)", len(nodes))
	}
	first := nodes[0].Content.(*tree.File)
	if first.Name != "docs/a.txt" || string(first.Content) != "alpha https://sevenz.example/a" {
		t.Errorf("first entry = %q (%q)", first.Name, first.Content)
	}
	second := nodes[1].Content.(*tree.File)
	if second.Name != "b.bin" || !bytes.Equal(second.Content, []byte{0x00, 0xff, 0x13, 0x37, 0xfe, 0x01, 0x80, 0x7f}) {
		t.Errorf("second entry = %q (%x)", second.Name, second.Content)
	}

	if node.Meta.MapNumber["files_count"] != 2 {
		t.Errorf("files_count = %d, want 2", node.Meta.MapNumber["files_count"])
	}
	if node.Meta.MapNumber["folders_count"] != 1 {
		t.Errorf("folders_count = %d, want 1", node.Meta.MapNumber["folders_count"])
	}
	if node.Meta.MapNumber["items_count"] != 3 {
		t.Errorf("items_count = %d, want 3", node.Meta.MapNumber["items_count"])
	}
	if node.Meta.MapNumber["size"] != 38 {
		t.Errorf("size = %d, want 38", node.Meta.MapNumber["size"])
	}
}

func TestExtractArchive7zPasswordTrial(t *testing.T) {
	data := loadFixture(t, "encrypted.7z")

	node := archiveNode("enc.7z", "application/x-7z-compressed", data, []string{"first-guess", "hunter2"})
	nodes, err := ExtractArchive(node)
	if err != nil {
		t.Fatalf("ExtractArchive: %v", err)
	}

	if node.Meta.MapString["correct_password"] != "hunter2" {
		t.Errorf("correct_password = %q", node.Meta.MapString["correct_password"])
	}
	if len(nodes) != 1 {
		t.Fatalf("got %d children, want 1", len(nodes))
	}
	inner := nodes[0].Content.(*tree.File)
	if inner.Name != "secret.txt" || string(inner.Content) != "7z classified payload" {
		t.Errorf("entry = %q (%q)", inner.Name, inner.Content)
	}
}

func TestExtractArchive7zPasswordFailure(t *testing.T) {
	data := loadFixture(t, "encrypted.7z")

	node := archiveNode("enc.7z", "application/x-7z-compressed", data, []string{"nope", "still-nope"})
	_, err := ExtractArchive(node)
	if err == nil {
		t.Fatal("expected failure when no candidate opens the archive")
	}
	if _, ok := node.Meta.MapString["correct_password"]; ok {
		t.Error("correct_password recorded despite failure")
	}
}

func TestExtractArchiveRar(t *testing.T) {
	data := loadFixture(t, "plain.rar")

	node := archiveNode("fixture.rar", "application/x-rar-compressed", data, nil)
	nodes, err := ExtractArchive(node)
	if err != nil {
		t.Fatalf("ExtractArchive: %v", err)
	}

	if len(nodes) != 2 {
		t.Fatalf("got %d children, want 2", len(nodes))
	}
	first := nodes[0].Content.(*tree.File)
	if first.Name != "a.txt" || string(first.Content) != "see https://rar.example inside" {
		t.Errorf("first entry = %q (%q)", first.Name, first.Content)
	}
	second := nodes[1].Content.(*tree.File)
	if second.Name != "b.bin" || !bytes.Equal(second.Content, []byte{0x00, 0xff, 0x13, 0x37, 0xfe, 0x01, 0x80, 0x7f}) {
		t.Errorf("second entry = %q (%x)", second.Name, second.Content)
	}

	if node.Meta.MapNumber["files_count"] != 2 {
		t.Errorf("files_count = %d, want 2", node.Meta.MapNumber["files_count"])
	}
	if node.Meta.MapNumber["size"] != 38 {
		t.Errorf("size = %d, want 38", node.Meta.MapNumber["size"])
	}
}

func TestExtractArchiveRarPasswordTrial(t *testing.T) {
	data := loadFixture(t, "encrypted.rar")

	node := archiveNode("enc.rar", "application/x-rar-compressed", data, []string{"wrong", "hunter2"})
	nodes, err := ExtractArchive(node)
	if err != nil {
		t.Fatalf("ExtractArchive: %v", err)
	}

	if node.Meta.MapString["correct_password"] != "hunter2" {
		t.Errorf("correct_password = %q", node.Meta.MapString["correct_password"])
	}
	if len(nodes) != 1 {
		t.Fatalf("got %d children, want 1", len(nodes))
	}
	inner := nodes[0].Content.(*tree.File)
	if inner.Name != "secret.txt" || string(inner.Content) != "rar classified payload" {
		t.Errorf("entry = %q (%q)", inner.Name, inner.Content)
	}
}

func TestExtractArchiveRarPasswordExhausted(t *testing.T) {
	data := loadFixture(t, "encrypted.rar")

	node := archiveNode("enc.rar", "application/x-rar-compressed", data, []string{"nope", "still-nope"})
	_, err := ExtractArchive(node)
	if !errors.Is(err, ErrPasswordExhausted) {
		t.Fatalf("err = %v, want ErrPasswordExhausted", err)
	}
	if _, ok := node.Meta.MapString["correct_password"]; ok {
		t.Error("correct_password recorded despite failure")
	}
}

func TestExtractArchiveXz(t *testing.T) {
	var buf bytes.Buffer
	xw, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := xw.Write([]byte("xz stream body")); err != nil {
		t.Fatal(err)
	}
	if err := xw.Close(); err != nil {
		t.Fatal(err)
	}

	node := archiveNode("notes.txt.xz", "application/x-xz", buf.Bytes(), nil)
	nodes, err := ExtractArchive(node)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 1 {
		t.Fatalf("got %d children, want 1", len(nodes))
	}
	file := nodes[0].Content.(*tree.File)
	if file.Name != "notes.txt" || string(file.Content) != "xz stream body" {
		t.Errorf("member = %q (%q)", file.Name, file.Content)
	}
}

func TestExtractArchiveZstd(t *testing.T) {
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := zw.Write([]byte("zstd stream body")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	node := archiveNode("notes.txt.zst", "application/zstd", buf.Bytes(), nil)
	nodes, err := ExtractArchive(node)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 1 {
		t.Fatalf("got %d children, want 1", len(nodes))
	}
	file := nodes[0].Content.(*tree.File)
	if file.Name != "notes.txt" || string(file.Content) != "zstd stream body" {
		t.Errorf("member = %q (%q)", file.Name, file.Content)
	}
}

func TestExtractArchiveTarStats(t *testing.T) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	if err := tw.WriteHeader(&tar.Header{Name: "dir/", Typeflag: tar.TypeDir, Mode: 0755}); err != nil {
		t.Fatal(err)
	}
	body := []byte("tar stats body")
	if err := tw.WriteHeader(&tar.Header{Name: "dir/file.txt", Typeflag: tar.TypeReg, Mode: 0644, Size: int64(len(body))}); err != nil {
		t.Fatal(err)
	}
	if _, err := tw.Write(body); err != nil {
		t.Fatal(err)
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}

	node := archiveNode("fixture.tar", "application/x-tar", buf.Bytes(), nil)
	if _, err := ExtractArchive(node); err != nil {
		t.Fatal(err)
	}

	if node.Meta.MapNumber["items_count"] != 2 {
		t.Errorf("items_count = %d, want 2", node.Meta.MapNumber["items_count"])
	}
	if node.Meta.MapNumber["files_count"] != 1 {
		t.Errorf("files_count = %d, want 1", node.Meta.MapNumber["files_count"])
	}
	if node.Meta.MapNumber["folders_count"] != 1 {
		t.Errorf("folders_count = %d, want 1", node.Meta.MapNumber["folders_count"])
	}
	if node.Meta.MapNumber["size"] != int64(len(body)) {
		t.Errorf("size = %d, want %d", node.Meta.MapNumber["size"], len(body))
	}
	if node.Meta.MapNumber["pack_size"] != int64(buf.Len()) {
		t.Errorf("pack_size = %d, want %d", node.Meta.MapNumber["pack_size"], buf.Len())
	}
}

func TestExtractArchiveUnsupported(t *testing.T) {
	node := archiveNode("odd.bin", "application/x-unheard-of", []byte{1, 2, 3}, nil)
	_, err := ExtractArchive(node)
	if !errors.Is(err, ErrUnsupportedArchive) {
		t.Fatalf("err = %v, want ErrUnsupportedArchive", err)
	}
}

func TestExtractArchiveSkipsDataNodes(t *testing.T) {
	node := &tree.Node{Content: &tree.Data{Type: "TEXT", Content: []byte("not an archive")}}
	nodes, err := ExtractArchive(node)
	if err != nil || nodes != nil {
		t.Errorf("Data node should be a no-op, got %v, %v", nodes, err)
	}
}

func TestIsWrongPassword(t *testing.T) {
	wrong := []error{
		errors.New("zip: invalid password"),
		errors.New("Wrong password supplied"),
		errors.New("rardecode: incorrect password"),
		errors.New("zip: checksum error"),
	}
	for _, err := range wrong {
		if !IsWrongPassword(err) {
			t.Errorf("IsWrongPassword(%v) = false", err)
		}
	}

	other := []error{
		nil,
		errors.New("unexpected EOF"),
		errors.New("zip: not a valid zip file"),
		io.ErrUnexpectedEOF,
	}
	for _, err := range other {
		if IsWrongPassword(err) {
			t.Errorf("IsWrongPassword(%v) = true", err)
		}
	}
}

func TestStreamMemberName(t *testing.T) {
	cases := []struct{ name, suffix, want string }{
		{"notes.txt.gz", ".gz", "notes.txt"},
		{"UPPER.GZ", ".gz", "UPPER"},
		{"plain", ".gz", "plain"},
		{"", ".xz", "data"},
	}
	for _, c := range cases {
		if got := streamMemberName(c.name, c.suffix); got != c.want {
			t.Errorf("streamMemberName(%q, %q) = %q, want %q", c.name, c.suffix, got, c.want)
		}
	}
}
