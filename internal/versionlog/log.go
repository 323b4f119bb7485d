package versionlog

import (
	"time"

	"github.com/backbone81/versioned-list/internal/utils"
)

// DefaultInitialCapacity is the number of entries a new log can hold before the backing slice needs to grow.
const DefaultInitialCapacity = 10

// Log is an append-only list of integers where every entry is stamped with the version at which it was appended.
//
// Instances of Log are NOT safe for concurrent use. Snapshots can be taken from several Go routines at the same time,
// but not while an Append is in progress. Use SyncLog or provide your own external synchronization when you need to
// append from multiple Go routines.
type Log struct {
	noCopy utils.NoCopy

	// The entries in append order. As versions are handed out in strictly increasing order, this is also the order
	// of increasing versions.
	entries []Entry

	// The version of the last appended entry. Zero as long as the log is empty.
	currentVersion uint64
}

// Option describes the function signature which all log options need to implement.
type Option func(l *Log)

// WithInitialCapacity overwrites the default initial capacity of the log.
func WithInitialCapacity(initialCapacity int) Option {
	return func(l *Log) {
		l.entries = make([]Entry, 0, max(initialCapacity, 0))
	}
}

// New creates a new empty log with version 0.
func New(options ...Option) *Log {
	newLog := Log{
		entries: make([]Entry, 0, DefaultInitialCapacity),
	}
	for _, option := range options {
		option(&newLog)
	}
	return &newLog
}

// Append adds the value as a new entry to the log. The version of the log is incremented first and the new entry is
// stamped with it. The new version is returned.
func (l *Log) Append(value int) uint64 {
	l.currentVersion++
	l.entries = append(l.entries, Entry{
		Value:   value,
		Version: l.currentVersion,
	})
	AppendTotal.Inc()
	return l.currentVersion
}

// SnapshotAsOf returns the values of all entries with a version lower than or equal to the given version, in the
// order they were appended. A version of 0 returns an empty slice, a version at or above the current version returns
// all values.
//
// The returned slice is a copy. Later calls to Append never change it.
func (l *Log) SnapshotAsOf(version uint64) []int {
	SnapshotTotal.Inc()
	start := time.Now()
	defer func() {
		SnapshotDuration.Observe(time.Since(start).Seconds())
	}()

	result := make([]int, 0, l.visibleCount(version))
	for _, entry := range l.entries {
		if entry.VisibleAt(version) {
			result = append(result, entry.Value)
		}
	}
	return result
}

// visibleCount provides the number of entries which are part of the snapshot for the given version. Versions are
// dense, so this is the smaller one of version and the number of entries.
func (l *Log) visibleCount(version uint64) int {
	if version >= uint64(len(l.entries)) {
		return len(l.entries)
	}
	return int(version)
}

// Latest returns a copy of all values currently stored in the log.
func (l *Log) Latest() []int {
	return l.SnapshotAsOf(l.currentVersion)
}

// History returns the content of the log at every version, from the empty list at version 0 up to the current
// version. The element at index v equals SnapshotAsOf(v).
func (l *Log) History() [][]int {
	result := make([][]int, 0, l.currentVersion+1)
	for version := uint64(0); version <= l.currentVersion; version++ {
		result = append(result, l.SnapshotAsOf(version))
	}
	return result
}

// CurrentVersion returns the version of the last appended entry, or 0 if nothing was appended yet.
func (l *Log) CurrentVersion() uint64 {
	return l.currentVersion
}

// Len returns the number of entries in the log.
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns a copy of all entries in append order.
func (l *Log) Entries() []Entry {
	result := make([]Entry, len(l.entries))
	copy(result, l.entries)
	return result
}
