package stringsfile

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// SectionPrefix is the sentinel that marks a section grouping comment.
const SectionPrefix = "// MARK:"

// entryPattern matches `"key" = "value";` on a trimmed line. The value group
// is greedy: everything between the second and the last quote. Escaped
// internal quotes are therefore not detected; that matches the established
// file convention and is an accepted limitation.
var entryPattern = regexp.MustCompile(`^"([^"]+)"\s*=\s*"(.*)";$`)

// ParseFile reads and parses a .strings file from disk.
func ParseFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open strings file: %w", err)
	}
	defer fh.Close()

	scanner := bufio.NewScanner(fh)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan strings file: %w", err)
	}

	f := Parse(lines)
	f.Path = path
	return f, nil
}

// Parse builds a File from raw lines. Blank lines, comments, and section
// markers produce no entries but are retained in RawLines. Lines containing
// "=" that fail the entry grammar are recorded as malformed; anything else
// that fails to match is plain pass-through text.
func Parse(lines []string) *File {
	f := &File{
		RawLines:   lines,
		Duplicates: make(map[string][]int),
		index:      make(map[string]int),
	}

	currentSection := ""

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, SectionPrefix) {
			currentSection = trimmed
			continue
		}

		if trimmed == "" || strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") || strings.HasPrefix(trimmed, "*/") {
			continue
		}

		m := entryPattern.FindStringSubmatch(trimmed)
		if m == nil {
			if strings.Contains(trimmed, "=") {
				f.Malformed = append(f.Malformed, MalformedLine{Line: i, Text: trimmed})
			}
			continue
		}

		key, value := m[1], m[2]

		if prev, seen := f.index[key]; seen {
			if len(f.Duplicates[key]) == 0 {
				f.Duplicates[key] = append(f.Duplicates[key], f.Entries[prev].Line)
			}
			f.Duplicates[key] = append(f.Duplicates[key], i)
			continue // first occurrence wins
		}

		f.index[key] = len(f.Entries)
		f.Entries = append(f.Entries, Entry{
			Key:     key,
			Value:   value,
			Section: currentSection,
			Line:    i,
		})
	}

	return f
}

// IsEntryLine reports whether a raw line matches the entry grammar and, if
// so, returns its key.
func IsEntryLine(line string) (string, bool) {
	m := entryPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// RenderEntry formats a key/value pair as a canonical entry line. The value
// is written as-is; any escaping is already part of the stored value.
func RenderEntry(key, value string) string {
	return fmt.Sprintf("\"%s\" = \"%s\";", key, value)
}
