package corpus

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// WalkDir returns the regular files under dir whose extension is in extensions.
// Hidden files and directories are skipped, as are the directories in skip.
func WalkDir(dir string, extensions []string, skip ...string) ([]string, error) {
	var files []string

	skipped := make([]string, 0, len(skip))
	for _, s := range skip {
		abs, err := filepath.Abs(s)
		if err != nil {
			return nil, err
		}
		skipped = append(skipped, abs)
	}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() && len(skipped) > 0 {
			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}
			if path != dir && slices.Contains(skipped, abs) {
				return filepath.SkipDir
			}
		}

		// Skip the directory itself and the parent directory
		if path == dir || path == "." || path == ".." {
			return nil
		}

		if d.Name()[0] == '.' {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(strings.ToLower(path))
		if d.Type().IsRegular() && slices.Contains(extensions, ext) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return files, nil
}
