package versionlog

import "sync"

// SyncLog wraps a Log and makes it safe to use from multiple Go routines concurrently.
//
// Appends are serialized, so incrementing the version and stamping the new entry happen as one step. Snapshots can run
// concurrently with each other.
type SyncLog struct {
	mutex sync.RWMutex
	log   *Log
}

// NewSyncLog creates a new empty log which is safe for concurrent use.
func NewSyncLog(options ...Option) *SyncLog {
	return &SyncLog{
		log: New(options...),
	}
}

// Append adds the value as a new entry to the log and returns the version the entry was stamped with.
func (s *SyncLog) Append(value int) uint64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.log.Append(value)
}

// SnapshotAsOf returns a copy of the values of all entries with a version lower than or equal to the given version.
func (s *SyncLog) SnapshotAsOf(version uint64) []int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.log.SnapshotAsOf(version)
}

// Latest returns a copy of all values currently stored in the log.
func (s *SyncLog) Latest() []int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.log.Latest()
}

// History returns the content of the log at every version from 0 up to the current version.
func (s *SyncLog) History() [][]int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.log.History()
}

// CurrentVersion returns the version of the last appended entry.
func (s *SyncLog) CurrentVersion() uint64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.log.CurrentVersion()
}

// Len returns the number of entries in the log.
func (s *SyncLog) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.log.Len()
}

// Entries returns a copy of all entries in append order.
func (s *SyncLog) Entries() []Entry {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.log.Entries()
}
