package versionlog

import intversionlog "github.com/backbone81/versioned-list/internal/versionlog"

// Log is an append-only list of integers where every entry is stamped with the version at which it was appended.
//
// Instances of Log are NOT safe for concurrent use. Use SyncLog or provide your own external synchronization.
type Log = intversionlog.Log

// Entry is a single value stored in the log together with the version it was appended at.
type Entry = intversionlog.Entry

// Option describes the function signature which all log options need to implement.
type Option = intversionlog.Option

// New creates a new empty log with version 0.
var New = intversionlog.New

// WithInitialCapacity overwrites the default initial capacity of the log.
var WithInitialCapacity = intversionlog.WithInitialCapacity
