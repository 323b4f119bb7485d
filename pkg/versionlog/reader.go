package versionlog

import intversionlog "github.com/backbone81/versioned-list/internal/versionlog"

// Reader iterates over the entries of a log which are visible at a given version. Create it with Log.NewReader.
//
// Instances of this struct are NOT safe for concurrent use.
type Reader = intversionlog.Reader
