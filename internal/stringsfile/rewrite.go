package stringsfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RemoveDuplicateLines drops every entry line whose key was already seen
// earlier in the same line sequence. Comments, section markers, blank lines,
// and malformed lines pass through unchanged. Running it on its own output
// removes nothing further.
func RemoveDuplicateLines(lines []string) (kept []string, removed int) {
	seen := make(map[string]struct{})
	kept = make([]string, 0, len(lines))

	for _, line := range lines {
		if key, ok := IsEntryLine(line); ok {
			if _, dup := seen[key]; dup {
				removed++
				continue
			}
			seen[key] = struct{}{}
		}
		kept = append(kept, line)
	}
	return kept, removed
}

// RemoveKeyLines drops every line containing one of the given keys in quoted
// form (substring containment, not a grammar match), and suppresses a single
// blank line immediately following a removed entry so gaps do not accumulate.
func RemoveKeyLines(lines []string, keys []string) (kept []string, removed int) {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = "\"" + k + "\""
	}

	kept = make([]string, 0, len(lines))
	skipNextBlank := false

	for _, line := range lines {
		matched := false
		for _, q := range quoted {
			if strings.Contains(line, q) {
				matched = true
				break
			}
		}

		if matched {
			removed++
			skipNextBlank = true
			continue
		}

		if skipNextBlank && strings.TrimSpace(line) == "" {
			skipNextBlank = false
			continue
		}
		skipNextBlank = false
		kept = append(kept, line)
	}
	return kept, removed
}

// WriteAtomic replaces the file at path with the given lines via a temporary
// file and rename, so a crash mid-write cannot leave a truncated file. A
// trailing newline is always emitted.
func WriteAtomic(path string, lines []string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	content := strings.Join(lines, "\n") + "\n"
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
