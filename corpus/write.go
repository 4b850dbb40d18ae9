package corpus

import (
	"bufio"
	"fmt"
	"os"
)

// WriteLines writes every line followed by a newline to path.
// The file is created or truncated.
func WriteLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("error writing %s: %w", path, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return f.Close()
}

// WriteText overwrites path with text.
func WriteText(path string, text string) error {
	return os.WriteFile(path, []byte(text), 0644)
}
