package lexicon

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// SnapshotCache keeps compiled msgpack snapshots of YAML corpora in a directory.
// A snapshot is keyed by the source file name and modification time, so editing
// the source invalidates it.
type SnapshotCache struct {
	rootDir string
}

func NewSnapshotCache(cacheDirectory string) *SnapshotCache {
	return &SnapshotCache{
		rootDir: cacheDirectory,
	}
}

func (c *SnapshotCache) filePath(key string) string {
	return filepath.Join(c.rootDir, key+".msgpack")
}

func snapshotKey(source string, info os.FileInfo) string {
	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return fmt.Sprintf("%s-%d", name, info.ModTime().UnixNano())
}

// Load returns the corpus at source, building and storing its snapshot on a miss.
// A snapshot that cannot be decoded is rebuilt.
func (c *SnapshotCache) Load(source string) (*MemoryCorpus, error) {
	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("os.Stat > %w", err)
	}

	key := snapshotKey(source, info)
	build := func() ([]byte, error) {
		raw, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("os.ReadFile > %w", err)
		}
		synsets, err := decodeYAML(raw)
		if err != nil {
			return nil, fmt.Errorf("decodeYAML > %w", err)
		}
		return encodeSnapshot(synsets)
	}

	contents, err := c.cache(key, build)
	if err != nil {
		return nil, fmt.Errorf("c.cache > %w", err)
	}
	synsets, err := decodeSnapshot(contents)
	if err == nil {
		return NewMemoryCorpus(synsets), nil
	}

	slog.Default().Warn("corpus snapshot is corrupt, rebuilding it", "path", c.filePath(key), "error", err)
	if err := os.Remove(c.filePath(key)); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("os.Remove > %w", err)
	}
	contents, err = c.cache(key, build)
	if err != nil {
		return nil, fmt.Errorf("c.cache > %w", err)
	}
	synsets, err = decodeSnapshot(contents)
	if err != nil {
		return nil, fmt.Errorf("decodeSnapshot > %w", err)
	}
	return NewMemoryCorpus(synsets), nil
}

// cache returns the stored snapshot for key, or builds and stores it. Storing
// is best effort: a snapshot that cannot be written is still returned.
func (c *SnapshotCache) cache(key string, build func() ([]byte, error)) ([]byte, error) {
	localFilePath := c.filePath(key)
	if _, err := os.Stat(localFilePath); err == nil {
		contents, err := c.read(key)
		if err != nil {
			return nil, fmt.Errorf("c.read > %w", err)
		}
		return contents, nil
	}

	contents, err := build()
	if err != nil {
		return nil, fmt.Errorf("build snapshot > %w", err)
	}
	if err := c.write(localFilePath, contents); err != nil {
		slog.Default().Warn("failed to store the corpus snapshot", "path", localFilePath, "error", err)
	}
	return contents, nil
}

// write stores contents through a temporary file so that a reader never sees
// a partially written snapshot.
func (c *SnapshotCache) write(path string, contents []byte) error {
	if err := os.MkdirAll(c.rootDir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	file, err := os.CreateTemp(c.rootDir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	tmpPath := file.Name()

	if _, err := file.Write(contents); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("file.Write > %w", err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("file.Close > %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("os.Rename > %w", err)
	}
	return nil
}

func (c *SnapshotCache) read(key string) ([]byte, error) {
	file, err := os.Open(c.filePath(key))
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	return contents, nil
}
