package filesystem

import (
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return false }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryFile struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements Provider for in-memory testing.
// Safe for concurrent use.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string]*memoryFile
}

// NewMemoryFileSystem creates an empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{files: make(map[string]*memoryFile)}
}

func normalize(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}

// AddFile adds a file to the in-memory filesystem.
func (m *MemoryFileSystem) AddFile(filePath string, content string) {
	_ = m.WriteFile(filePath, []byte(content), 0o644)
}

// Paths returns every stored path in sorted order.
func (m *MemoryFileSystem) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (m *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[normalize(filePath)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(f.content))
	copy(out, f.content)
	return out, nil
}

func (m *MemoryFileSystem) WriteFile(filePath string, data []byte, perm fs.FileMode) error {
	key := normalize(filePath)
	content := make([]byte, len(data))
	copy(content, data)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key] = &memoryFile{
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(key),
			size:    int64(len(content)),
			mode:    perm,
			modTime: time.Now(),
		},
	}
	return nil
}

func (m *MemoryFileSystem) Stat(filePath string) (FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[normalize(filePath)]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: filePath, Err: fs.ErrNotExist}
	}
	return f.info, nil
}

var _ Provider = (*MemoryFileSystem)(nil)
