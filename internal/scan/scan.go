package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// File is one document read from the corpus directory. Name is the base
// file name, which is also the identity link targets resolve against.
type File struct {
	Name string
	Data []byte
}

// Dir walks root recursively and reads every regular file. Unreadable files
// are logged and skipped so one bad document does not stop the run; an
// unreadable root (or any directory traversal failure) is fatal and aborts
// the walk.
func Dir(root string) ([]File, error) {
	var files []File
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			log.Warn().Err(rerr).Str("path", path).Msg("unreadable file; skipping")
			return nil
		}
		files = append(files, File{Name: filepath.Base(path), Data: data})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, nil
}
