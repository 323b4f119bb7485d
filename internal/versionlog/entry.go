package versionlog

// Entry is a single value stored in the log together with the version it was appended at.
//
// Entries are created by Log.Append and never change afterward.
type Entry struct {
	// Value is the value which was appended.
	Value int

	// Version is the version the log had directly after the value was appended.
	Version uint64
}

// VisibleAt reports if the entry is part of the snapshot for the given version.
func (e Entry) VisibleAt(version uint64) bool {
	return e.Version <= version
}
