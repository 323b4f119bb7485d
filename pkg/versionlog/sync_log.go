package versionlog

import intversionlog "github.com/backbone81/versioned-list/internal/versionlog"

// SyncLog wraps a Log and makes it safe to use from multiple Go routines concurrently.
type SyncLog = intversionlog.SyncLog

// NewSyncLog creates a new empty log which is safe for concurrent use.
var NewSyncLog = intversionlog.NewSyncLog
