package storage

import (
	"errors"
	"sort"
	"sync"
)

// Outcome is the result of one best-effort cleanup step.
type Outcome string

const (
	OutcomeRemoved Outcome = "removed"
	OutcomeMissing Outcome = "missing"
	OutcomeKept    Outcome = "kept"
	OutcomeFailed  Outcome = "failed"
)

// EntryKind tells files and folders apart in a CleanupReport.
type EntryKind string

const (
	KindFile EntryKind = "file"
	KindDir  EntryKind = "dir"
)

// CleanupEntry records what happened to one path.
type CleanupEntry struct {
	Path    string
	Kind    EntryKind
	Outcome Outcome
	Err     error
}

// CleanupReport collects the filesystem side of a cascade. It never decides
// whether the cascade succeeds; it is only logged and counted.
// Add is safe for concurrent use.
type CleanupReport struct {
	mu      sync.Mutex
	entries []CleanupEntry
}

// Classify maps the error of a removal to its outcome.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeRemoved
	case errors.Is(err, ErrNotExist):
		return OutcomeMissing
	case errors.Is(err, ErrDirNotEmpty):
		return OutcomeKept
	default:
		return OutcomeFailed
	}
}

// Record classifies err and appends the entry. It returns the outcome.
func (r *CleanupReport) Record(kind EntryKind, p string, err error) Outcome {
	o := Classify(err)
	e := CleanupEntry{Path: p, Kind: kind, Outcome: o}
	if o == OutcomeFailed || o == OutcomeKept {
		e.Err = err
	}
	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()
	return o
}

// Entries returns a copy sorted by kind (files first) then path.
func (r *CleanupReport) Entries() []CleanupEntry {
	r.mu.Lock()
	out := append([]CleanupEntry(nil), r.entries...)
	r.mu.Unlock()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind == KindFile
		}
		return out[i].Path < out[j].Path
	})
	return out
}

// Count returns how many entries of kind ended with outcome o.
func (r *CleanupReport) Count(kind EntryKind, o Outcome) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.Kind == kind && e.Outcome == o {
			n++
		}
	}
	return n
}
