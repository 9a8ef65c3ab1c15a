package filets

import (
	"archive/tar"
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"
)

// Compression modes for CreateTar.
const (
	CompressionNone = "none"
	CompressionGzip = "gzip"
	CompressionZstd = "zstd"
)

// ArchiveEntry describes one member of an archive listing.
type ArchiveEntry struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	IsDir    bool      `json:"is_dir"`
	Modified time.Time `json:"modified"`
}

// CreateZip packs the tree rooted at srcDir into a ZIP archive at outPath,
// creating outPath's parent directory if needed. Entry names are relative
// to srcDir; per-entry read failures are skipped.
func CreateZip(srcDir, outPath string) error {
	if !DirExists(srcDir) {
		return wrap(KindArchiveCreate, srcDir, ErrSourceDirNotExist)
	}
	if err := ensureParent(outPath); err != nil {
		return wrap(KindArchiveCreate, outPath, err)
	}

	zipFile, err := os.Create(outPath)
	if err != nil {
		return wrap(KindArchiveCreate, outPath, err)
	}
	defer zipFile.Close()

	zw := zip.NewWriter(zipFile)

	// zip.Writer is not safe for concurrent use; the walk runs on multiple
	// goroutines, so each entry is written under the lock.
	var mu sync.Mutex
	conf := fastwalk.Config{Follow: false}

	err = fastwalk.Walk(&conf, srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || p == srcDir {
			return nil
		}
		relPath, err := filepath.Rel(srcDir, p)
		if err != nil {
			return nil
		}

		mu.Lock()
		defer mu.Unlock()

		if d.IsDir() {
			_, err := zw.Create(relPath + "/")
			return err
		}

		w, err := zw.Create(relPath)
		if err != nil {
			return err
		}
		f, err := os.Open(p)
		if err != nil {
			return nil
		}
		defer f.Close()
		_, err = io.Copy(w, f)
		return err
	})
	if err != nil {
		zw.Close()
		return wrap(KindArchiveCreate, srcDir, err)
	}
	if err := zw.Close(); err != nil {
		return wrap(KindArchiveCreate, outPath, err)
	}
	log.Debug("created zip archive", zap.String("source", srcDir), zap.String("output", outPath))
	return nil
}

// ExtractZip unpacks the ZIP archive into dest. Entries that would escape
// dest are skipped, as are entries failing mid-extraction.
func ExtractZip(archive, dest string) error {
	reader, err := zip.OpenReader(archive)
	if err != nil {
		return wrap(KindArchiveExtract, archive, err)
	}
	defer reader.Close()

	for _, file := range reader.File {
		destPath, ok := securePath(dest, file.Name)
		if !ok {
			continue
		}

		if file.FileInfo().IsDir() {
			os.MkdirAll(destPath, dirMode)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(destPath), dirMode); err != nil {
			continue
		}

		src, err := file.Open()
		if err != nil {
			continue
		}
		dst, err := os.OpenFile(destPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, fileMode)
		if err != nil {
			src.Close()
			continue
		}
		io.Copy(dst, src)
		src.Close()
		dst.Close()
	}
	return nil
}

// ListZip returns the member entries of a ZIP archive.
func ListZip(archive string) ([]ArchiveEntry, error) {
	reader, err := zip.OpenReader(archive)
	if err != nil {
		return nil, wrap(KindArchiveList, archive, err)
	}
	defer reader.Close()

	entries := make([]ArchiveEntry, 0, len(reader.File))
	for _, file := range reader.File {
		info := file.FileInfo()
		entries = append(entries, ArchiveEntry{
			Name:     file.Name,
			Size:     info.Size(),
			IsDir:    info.IsDir(),
			Modified: info.ModTime(),
		})
	}
	return entries, nil
}

// CreateTar packs the tree rooted at srcDir into a TAR archive at outPath
// with the given compression (CompressionNone, CompressionGzip or
// CompressionZstd).
func CreateTar(srcDir, outPath, compression string) error {
	if !DirExists(srcDir) {
		return wrap(KindArchiveCreate, srcDir, ErrSourceDirNotExist)
	}
	if err := ensureParent(outPath); err != nil {
		return wrap(KindArchiveCreate, outPath, err)
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return wrap(KindArchiveCreate, outPath, err)
	}
	defer outFile.Close()

	var tw *tar.Writer
	var closers []io.Closer

	switch compression {
	case CompressionGzip:
		gz := gzip.NewWriter(outFile)
		closers = append(closers, gz)
		tw = tar.NewWriter(gz)
	case CompressionZstd:
		zw, err := zstd.NewWriter(outFile)
		if err != nil {
			return wrap(KindArchiveCreate, outPath, err)
		}
		closers = append(closers, zw)
		tw = tar.NewWriter(zw)
	default:
		tw = tar.NewWriter(outFile)
	}

	var mu sync.Mutex
	conf := fastwalk.Config{Follow: false}

	walkErr := fastwalk.Walk(&conf, srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || p == srcDir {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		relPath, err := filepath.Rel(srcDir, p)
		if err != nil {
			return nil
		}

		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return nil
		}
		header.Name = relPath

		mu.Lock()
		defer mu.Unlock()

		if err := tw.WriteHeader(header); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		f, err := os.Open(p)
		if err != nil {
			return nil
		}
		defer f.Close()
		_, err = io.Copy(tw, f)
		return err
	})
	if walkErr != nil {
		tw.Close()
		closeAll(closers)
		return wrap(KindArchiveCreate, srcDir, walkErr)
	}
	if err := tw.Close(); err != nil {
		closeAll(closers)
		return wrap(KindArchiveCreate, outPath, err)
	}
	if err := closeAll(closers); err != nil {
		return wrap(KindArchiveCreate, outPath, err)
	}
	log.Debug("created tar archive",
		zap.String("source", srcDir),
		zap.String("output", outPath),
		zap.String("compression", compression))
	return nil
}

// ExtractTar unpacks a TAR archive into dest, auto-detecting gzip and zstd
// compression from the archive suffix. Entries that would escape dest are
// skipped.
func ExtractTar(archive, dest string) error {
	file, err := os.Open(archive)
	if err != nil {
		return wrap(KindArchiveExtract, archive, err)
	}
	defer file.Close()

	tr, closeReader, err := tarReaderFor(archive, file)
	if err != nil {
		return wrap(KindArchiveExtract, archive, err)
	}
	defer closeReader()

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return wrap(KindArchiveExtract, archive, err)
		}

		destPath, ok := securePath(dest, header.Name)
		if !ok {
			continue
		}

		switch header.Typeflag {
		case tar.TypeDir:
			os.MkdirAll(destPath, dirMode)
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(destPath), dirMode); err != nil {
				continue
			}
			out, err := os.OpenFile(destPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, fileMode)
			if err != nil {
				continue
			}
			io.Copy(out, tr)
			out.Close()
		}
	}
	return nil
}

// ListTar returns the member entries of a TAR archive, auto-detecting
// compression from the archive suffix.
func ListTar(archive string) ([]ArchiveEntry, error) {
	file, err := os.Open(archive)
	if err != nil {
		return nil, wrap(KindArchiveList, archive, err)
	}
	defer file.Close()

	tr, closeReader, err := tarReaderFor(archive, file)
	if err != nil {
		return nil, wrap(KindArchiveList, archive, err)
	}
	defer closeReader()

	entries := []ArchiveEntry{}
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrap(KindArchiveList, archive, err)
		}
		entries = append(entries, ArchiveEntry{
			Name:     header.Name,
			Size:     header.Size,
			IsDir:    header.Typeflag == tar.TypeDir,
			Modified: header.ModTime,
		})
	}
	return entries, nil
}

// ExtractArchive auto-detects the archive format from its extension and
// extracts it into dest.
func ExtractArchive(archive, dest string) error {
	switch strings.ToLower(filepath.Ext(archive)) {
	case ".zip":
		return ExtractZip(archive, dest)
	case ".tar", ".tgz", ".gz", ".zst":
		return ExtractTar(archive, dest)
	default:
		return wrap(KindArchiveExtract, archive, ErrUnsupportedArchive)
	}
}

// tarReaderFor wraps file in the decompressor matching the archive suffix.
func tarReaderFor(archive string, file *os.File) (*tar.Reader, func(), error) {
	switch {
	case strings.HasSuffix(archive, ".gz") || strings.HasSuffix(archive, ".tgz"):
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, nil, err
		}
		return tar.NewReader(gz), func() { gz.Close() }, nil
	case strings.HasSuffix(archive, ".zst"):
		zr, err := zstd.NewReader(file)
		if err != nil {
			return nil, nil, err
		}
		return tar.NewReader(zr), zr.Close, nil
	default:
		return tar.NewReader(file), func() {}, nil
	}
}

// securePath joins name under dest and rejects entries escaping it
// (zip-slip guard).
func securePath(dest, name string) (string, bool) {
	destPath := filepath.Join(dest, name)
	if !strings.HasPrefix(destPath, filepath.Clean(dest)+string(os.PathSeparator)) {
		return "", false
	}
	return destPath, true
}

func closeAll(closers []io.Closer) error {
	var firstErr error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
