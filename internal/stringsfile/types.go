package stringsfile

// Entry is one localization record parsed from a .strings file.
type Entry struct {
	// Key is the stable identifier, unique within a file.
	Key string
	// Value is the localized text; may contain %@ / %d placeholders and
	// escaped quotes.
	Value string
	// Section is the text of the most recent "// MARK:" comment preceding
	// this entry, empty if none.
	Section string
	// Line is the zero-based line offset in the original file, used only
	// for diagnostics.
	Line int
}

// MalformedLine is a line that looks like an assignment but does not match
// the entry grammar.
type MalformedLine struct {
	// Line is the zero-based line offset.
	Line int
	// Text is the trimmed line content.
	Text string
}

// File is a parsed .strings resource file. Entries keep the order of first
// appearance; RawLines preserve the original content verbatim so that
// comments, blank lines, and malformed lines survive a rewrite.
type File struct {
	// Path is where the file was read from, empty when parsed from memory.
	Path string
	// Entries in order of first appearance. A duplicated key appears once;
	// the first occurrence wins.
	Entries []Entry
	// RawLines is the original line sequence without trailing newlines.
	RawLines []string
	// Duplicates maps a key seen more than once to every line offset where
	// it appeared, the first occurrence included.
	Duplicates map[string][]int
	// Malformed lists assignment-shaped lines that failed the grammar.
	Malformed []MalformedLine

	index map[string]int // key → position in Entries
}

// Keys returns the keys in order of first appearance.
func (f *File) Keys() []string {
	keys := make([]string, len(f.Entries))
	for i, e := range f.Entries {
		keys[i] = e.Key
	}
	return keys
}

// HasKey reports whether the file defines the given key.
func (f *File) HasKey(key string) bool {
	_, ok := f.index[key]
	return ok
}

// Lookup returns the entry for a key, if present.
func (f *File) Lookup(key string) (Entry, bool) {
	i, ok := f.index[key]
	if !ok {
		return Entry{}, false
	}
	return f.Entries[i], true
}
