// Package versionlog provides an append-only list of integers where every appended value is stamped with a version.
//
//   - Versions are unsigned 64-bit integers. The first append receives version 1, every further append receives the
//     next higher version. There are no gaps.
//   - The state of the list as of any earlier version can be reconstructed with a snapshot. A snapshot contains the
//     values of all entries with a version lower than or equal to the requested version, in append order.
//   - Snapshots are computed by scanning all entries. This is not a structurally shared persistent data structure,
//     it is a version stamped log.
package versionlog
