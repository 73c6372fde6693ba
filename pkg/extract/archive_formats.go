// ABOUTME: Per-format archive readers behind the extractFiles dispatch
// ABOUTME: Container formats yield entry lists, stream formats one member

package extract

import (
	"archive/tar"
	"bytes"
	"compress/bzip2"
	"errors"
	"io"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/nwaples/rardecode/v2"
	"github.com/ulikunitz/xz"
	"github.com/yeka/zip"

	"github.com/filewhisper/whisper/pkg/tree"
)

func extractZip(data []byte, password string) ([]archiveEntry, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	var entries []archiveEntry
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if f.IsEncrypted() && password != "" {
			f.SetPassword(password)
		}

		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		body, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
		entries = append(entries, archiveEntry{Name: f.Name, Data: body})
	}
	return entries, nil
}

func extract7z(data []byte, password string) ([]archiveEntry, error) {
	r, err := sevenzip.NewReaderWithPassword(bytes.NewReader(data), int64(len(data)), password)
	if err != nil {
		return nil, err
	}

	var entries []archiveEntry
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		body, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
		entries = append(entries, archiveEntry{Name: f.Name, Data: body})
	}
	return entries, nil
}

func extractRar(data []byte, password string) ([]archiveEntry, error) {
	var opts []rardecode.Option
	if password != "" {
		opts = append(opts, rardecode.Password(password))
	}

	rr, err := rardecode.NewReader(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, err
	}

	var entries []archiveEntry
	for {
		hdr, err := rr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if hdr.IsDir {
			continue
		}

		body, err := io.ReadAll(rr)
		if err != nil {
			return nil, err
		}
		entries = append(entries, archiveEntry{Name: hdr.Name, Data: body})
	}
	return entries, nil
}

func extractTar(r io.Reader) ([]archiveEntry, error) {
	tr := tar.NewReader(r)

	var entries []archiveEntry
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		body, err := io.ReadAll(tr)
		if err != nil {
			return nil, err
		}
		entries = append(entries, archiveEntry{Name: hdr.Name, Data: body})
	}
	return entries, nil
}

func extractGzip(name string, data []byte) ([]archiveEntry, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	body, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}

	member := zr.Name
	if member == "" {
		member = streamMemberName(name, ".gz")
	}
	return []archiveEntry{{Name: member, Data: body}}, nil
}

func extractBzip2(name string, data []byte) ([]archiveEntry, error) {
	body, err := io.ReadAll(bzip2.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, err
	}
	return []archiveEntry{{Name: streamMemberName(name, ".bz2"), Data: body}}, nil
}

func extractXz(name string, data []byte) ([]archiveEntry, error) {
	xr, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	body, err := io.ReadAll(xr)
	if err != nil {
		return nil, err
	}
	return []archiveEntry{{Name: streamMemberName(name, ".xz"), Data: body}}, nil
}

func extractZstd(name string, data []byte) ([]archiveEntry, error) {
	zr, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	body, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	return []archiveEntry{{Name: streamMemberName(name, ".zst"), Data: body}}, nil
}

// streamMemberName names the single member of a stream-compressed file
// by stripping the compression suffix from the container's name.
func streamMemberName(name, suffix string) string {
	if name == "" {
		return "data"
	}
	if strings.HasSuffix(strings.ToLower(name), suffix) {
		return name[:len(name)-len(suffix)]
	}
	return name
}

// archiveStats is one listing pass over a container, without
// extracting entry bodies.
type archiveStats struct {
	folders   int64
	files     int64
	size      int64
	packSize  int64
	encrypted bool
}

// attachArchiveStats records listing statistics on the node for
// formats whose readers expose a listing without extraction (zip, 7z,
// rar, tar). Listing failures leave the meta untouched; the extraction
// attempt reports them. Only the zip reader exposes an encryption
// flag; the other formats report is_encrypted=false here and rely on
// correct_password to mark a successful encrypted extraction.
func attachArchiveStats(node *tree.Node, mime string, data []byte) {
	var stats *archiveStats
	switch mime {
	case "application/zip":
		stats = zipStats(data)
	case "application/x-7z-compressed":
		stats = sevenZipStats(data)
	case "application/x-rar-compressed", "application/vnd.rar":
		stats = rarStats(data)
	case "application/x-tar":
		stats = tarStats(bytes.NewReader(data), int64(len(data)))
	}
	if stats == nil {
		return
	}

	node.Meta.MapNumber["items_count"] = stats.folders + stats.files
	node.Meta.MapNumber["folders_count"] = stats.folders
	node.Meta.MapNumber["files_count"] = stats.files
	node.Meta.MapNumber["size"] = stats.size
	node.Meta.MapNumber["pack_size"] = stats.packSize
	node.Meta.MapNumber["volumes_count"] = 1
	node.Meta.MapBool["is_encrypted"] = stats.encrypted
	node.Meta.MapBool["is_multi_volume"] = false
}

func zipStats(data []byte) *archiveStats {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil
	}

	var stats archiveStats
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			stats.folders++
			continue
		}
		stats.files++
		stats.size += int64(f.UncompressedSize64)
		stats.packSize += int64(f.CompressedSize64)
		if f.IsEncrypted() {
			stats.encrypted = true
		}
	}
	return &stats
}

func sevenZipStats(data []byte) *archiveStats {
	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil
	}

	stats := archiveStats{packSize: int64(len(data))}
	for _, f := range r.File {
		fi := f.FileInfo()
		if fi.IsDir() {
			stats.folders++
			continue
		}
		stats.files++
		stats.size += fi.Size()
	}
	return &stats
}

// rarStats walks the headers only, never the entry bodies. A header
// error after some entries keeps the partial counts.
func rarStats(data []byte) *archiveStats {
	rr, err := rardecode.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil
	}

	stats := archiveStats{packSize: int64(len(data))}
	seen := false
	for {
		hdr, err := rr.Next()
		if err != nil {
			break
		}
		seen = true
		if hdr.IsDir {
			stats.folders++
			continue
		}
		stats.files++
		stats.size += hdr.UnPackedSize
	}
	if !seen {
		return nil
	}
	return &stats
}

func tarStats(r io.Reader, packSize int64) *archiveStats {
	tr := tar.NewReader(r)

	stats := archiveStats{packSize: packSize}
	seen := false
	for {
		hdr, err := tr.Next()
		if err != nil {
			break
		}
		seen = true
		switch hdr.Typeflag {
		case tar.TypeDir:
			stats.folders++
		case tar.TypeReg:
			stats.files++
			stats.size += hdr.Size
		}
	}
	if !seen {
		return nil
	}
	return &stats
}
