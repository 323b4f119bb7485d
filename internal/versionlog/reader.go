package versionlog

import "github.com/backbone81/versioned-list/internal/utils"

// Reader iterates over the entries of a log which are visible at a given version.
//
// The reader only sees the entries which existed when it was created. Entries appended afterward are never returned,
// even if their version would match.
//
// Instances of this struct are NOT safe for concurrent use. Either use it on a single Go routine or provide your own
// external synchronization.
type Reader struct {
	noCopy utils.NoCopy

	// The entries available when the reader was created. Appending to the log either writes behind the length of this
	// slice or re-allocates, so this view never changes.
	entries []Entry

	// The version up to which entries are returned.
	version uint64

	// The index of the entry Next() looks at.
	offset int

	// The value the reader returns. Only contains useful data after Next() returned true.
	value Entry
}

// NewReader creates a new Reader returning all entries with a version lower than or equal to the given version.
func (l *Log) NewReader(version uint64) *Reader {
	return &Reader{
		entries: l.entries[:len(l.entries):len(l.entries)],
		version: version,
	}
}

// Next reports if another entry is available. When it returns true, Value() contains the entry. When it returns
// false, all visible entries have been read.
func (r *Reader) Next() bool {
	for r.offset < len(r.entries) {
		entry := r.entries[r.offset]
		r.offset++
		if entry.VisibleAt(r.version) {
			r.value = entry
			return true
		}
	}
	return false
}

// Value returns the last entry read. The value is only valid after Next() returned true.
func (r *Reader) Value() Entry {
	return r.value
}

// Version returns the version this reader was created for.
func (r *Reader) Version() uint64 {
	return r.version
}
