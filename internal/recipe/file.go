package recipe

import (
	"os"
	"path/filepath"

	"golang.org/x/xerrors"
)

// FileNames are the recipe file names Find recognizes, in preference order.
var FileNames = []string{"Jibfile", "jibfile"}

// Load parses the recipe file at path.
func Load(path string) (*Set, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("read recipe file: %w", err)
	}
	set, err := Parse(src)
	if err != nil {
		return nil, xerrors.Errorf("parse %v: %w", path, err)
	}
	return set, nil
}

// Find walks from dir up to the filesystem root and returns the first
// recipe file it sees. names overrides FileNames when non-empty.
// Discovery never changes where recipes run; commands always execute in
// the invoking working directory.
func Find(dir string, names ...string) (string, error) {
	if len(names) == 0 {
		names = FileNames
	}

	start, err := filepath.Abs(dir)
	if err != nil {
		return "", xerrors.Errorf("resolve %v: %w", dir, err)
	}

	for dir = start; ; {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", xerrors.Errorf("no %v found in %v or any parent directory",
				names[0], start)
		}
		dir = parent
	}
}
