// Package engine runs the rule catalog over staged files and the staged
// diff and turns the findings into a gate decision.
package engine

import (
	"bytes"
	"io"
	"os"
	"sync"
)

// maxReadBytes caps how much of a file the scanners look at. Generated
// bundles and lockfiles past this size are not worth regexing in full.
const maxReadBytes = 512 * 1024

// ContentStore reads file contents lazily and caches them for the life of
// one invocation, so a file matched by many rules is read once. Unreadable
// and binary files are remembered as absent and produce no findings.
type ContentStore struct {
	mu    sync.Mutex
	cache map[string]entry
}

type entry struct {
	content string
	ok      bool
}

func NewContentStore() *ContentStore {
	return &ContentStore{cache: make(map[string]entry)}
}

// Get returns the cached content of path. ok is false when the file does
// not exist, cannot be read, or does not look like text.
func (s *ContentStore) Get(path string) (string, bool) {
	s.mu.Lock()
	e, hit := s.cache[path]
	s.mu.Unlock()
	if hit {
		return e.content, e.ok
	}

	e = read(path)

	s.mu.Lock()
	s.cache[path] = e
	s.mu.Unlock()
	return e.content, e.ok
}

func read(path string) entry {
	f, err := os.Open(path)
	if err != nil {
		return entry{}
	}
	defer f.Close()

	buf := make([]byte, maxReadBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return entry{}
	}
	data := buf[:n]
	if !isLikelyText(data) {
		return entry{}
	}
	return entry{content: string(data), ok: true}
}

// isLikelyText rejects content with NUL bytes in its first kilobyte, the
// same quick check git itself uses to classify binaries.
func isLikelyText(data []byte) bool {
	probe := data
	if len(probe) > 1024 {
		probe = probe[:1024]
	}
	return !bytes.ContainsRune(probe, 0)
}
