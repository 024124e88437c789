package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/LeleooAlves/personal-plan-creator/internal/store"
)

// blobFile is one durable JSON blob on disk. Every write replaces the whole
// blob atomically (write to a temp file, then rename), so a failed write
// never leaves a half-written store behind.
type blobFile struct {
	mu       sync.Mutex
	path     string
	maxBytes int64
}

func newBlobFile(path string, maxBytes int64) *blobFile {
	return &blobFile{path: path, maxBytes: maxBytes}
}

// ensure creates the blob with the given default content if it does not
// exist yet.
func (b *blobFile) ensure(defaultValue any) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := os.Stat(b.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return b.write(defaultValue)
}

func (b *blobFile) load(v any) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			// Treat a missing blob like an empty one.
			return nil
		}
		return fmt.Errorf("read %s: %w", b.path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", b.path, err)
	}
	return nil
}

func (b *blobFile) save(v any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.write(v)
}

func (b *blobFile) write(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", b.path, err)
	}
	if b.maxBytes > 0 && int64(len(data)) > b.maxBytes {
		return store.ErrQuotaExceeded
	}

	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return err
	}
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return fmt.Errorf("replace %s: %w", b.path, err)
	}
	return nil
}
