// Package publish holds the post lifecycle states and the rule that derives
// the first-publication timestamp from them.
package publish

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a post.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusArchived  Status = "ARCHIVED"
)

// Statuses lists every state in display order.
var Statuses = []Status{StatusDraft, StatusPublished, StatusArchived}

// Valid reports whether s is one of the known states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus accepts the exact upper-case state names only.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown post status %q", raw)
	}
	return s, nil
}

// Apply returns the publishedAt value a post must carry after being saved
// with status next. Any state may move to any other; only the timestamp is
// affected. The first publication time is sticky while the post stays
// published, and leaving PUBLISHED clears it.
func Apply(current *time.Time, next Status, now time.Time) *time.Time {
	if next != StatusPublished {
		return nil
	}
	if current != nil {
		return current
	}
	stamped := now
	return &stamped
}

// Visible reports whether a post may be shown to anonymous readers.
func Visible(status Status, isPublic bool) bool {
	return isPublic && status == StatusPublished
}
