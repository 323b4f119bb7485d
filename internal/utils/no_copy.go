package utils

import "sync"

// NoCopy marks a struct as not to be copied after first use. go vet reports copies of structs which contain a
// sync.Locker by value, so embedding NoCopy as a field turns an accidental copy of a Log or Reader into a vet error.
// It mirrors the unexported sync.noCopy from the standard library.
type NoCopy struct{}

// NoCopy implements sync.Locker.
var _ sync.Locker = (*NoCopy)(nil)

// Lock is a no-op used by the copylocks check.
func (*NoCopy) Lock() {}

// Unlock is a no-op used by the copylocks check.
func (*NoCopy) Unlock() {}
