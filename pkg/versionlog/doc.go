// Package versionlog provides an append-only list of integers which remembers every version it went through.
//
//   - Every append stamps the new entry with the next version. The first append receives version 1. Versions are
//     dense and monotonically increasing unsigned 64-bit integers.
//   - A snapshot reconstructs the list as it was at any version. Snapshots are independent copies, later appends never
//     change them. Log.History lists the snapshots of all versions at once.
//   - Log is meant for a single Go routine. SyncLog adds the locking required to append from several Go routines.
package versionlog
