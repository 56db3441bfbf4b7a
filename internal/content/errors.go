package content

import (
	"sort"
	"strings"
)

// ValidationError collects messages keyed by field path, e.g. "blocks",
// "blocks[2].items[0]". The root value uses the empty path.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "invalid content"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, path := range e.Paths() {
		label := path
		if label == "" {
			label = "(root)"
		}
		parts = append(parts, label+": "+strings.Join(e.Fields[path], ", "))
	}
	return "invalid content: " + strings.Join(parts, "; ")
}

// Add records msg at path.
func (e *ValidationError) Add(path, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[path] = append(e.Fields[path], msg)
}

// Merge copies every message of other under prefix.
func (e *ValidationError) Merge(prefix string, other *ValidationError) {
	if other == nil {
		return
	}
	for path, msgs := range other.Fields {
		for _, msg := range msgs {
			e.Add(JoinPath(prefix, path), msg)
		}
	}
}

// Paths returns the failing paths in lexical order.
func (e *ValidationError) Paths() []string {
	if e == nil {
		return nil
	}
	paths := make([]string, 0, len(e.Fields))
	for path := range e.Fields {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func (e *ValidationError) Messages(path string) []string {
	if e == nil {
		return nil
	}
	return e.Fields[path]
}

// Has reports whether path carries at least one message.
func (e *ValidationError) Has(path string) bool {
	return len(e.Messages(path)) > 0
}

func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

// Err returns e as an error, or nil when nothing was recorded.
func (e *ValidationError) Err() error {
	if e.Empty() {
		return nil
	}
	return e
}

// JoinPath appends a relative field path to prefix.
func JoinPath(prefix, path string) string {
	switch {
	case prefix == "":
		return path
	case path == "":
		return prefix
	case strings.HasPrefix(path, "["):
		return prefix + path
	}
	return prefix + "." + path
}
