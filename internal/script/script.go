// Package script describes a run against a versioned log in YAML: the values to append and the versions to take
// snapshots of.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/backbone81/versioned-list/internal/render"
	"github.com/backbone81/versioned-list/internal/versionlog"
)

var ErrScriptEmpty = errors.New("the script does not contain any values")

// Script is a list of values to append to a versioned log, followed by the versions to take snapshots of.
type Script struct {
	// Values are appended to the log in the given order.
	Values []int `yaml:"values"`

	// Versions are the versions to take snapshots of after all values have been appended. When empty, a snapshot of
	// every version from 1 up to the number of values is taken.
	Versions []uint64 `yaml:"versions"`
}

// Load decodes a script from the reader.
func Load(reader io.Reader) (Script, error) {
	var result Script
	if err := yaml.NewDecoder(reader, yaml.DisallowUnknownField()).Decode(&result); err != nil {
		if errors.Is(err, io.EOF) {
			// A document without any content, or with comments only.
			return Script{}, ErrScriptEmpty
		}
		return Script{}, fmt.Errorf("decoding script: %w", err)
	}
	if len(result.Values) == 0 {
		return Script{}, ErrScriptEmpty
	}
	return result, nil
}

// LoadFile decodes the script stored at the given file path.
func LoadFile(filePath string) (result Script, err error) {
	file, err := os.Open(filePath)
	if err != nil {
		return Script{}, fmt.Errorf("opening script: %w", err)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	result, err = Load(file)
	if err != nil {
		return Script{}, fmt.Errorf("the script file %q: %w", filePath, err)
	}
	return result, nil
}

// SnapshotVersions returns the versions to take snapshots of.
func (s Script) SnapshotVersions() []uint64 {
	if len(s.Versions) != 0 {
		return s.Versions
	}
	result := make([]uint64, 0, len(s.Values))
	for i := range s.Values {
		result = append(result, uint64(i+1))
	}
	return result
}

// Run appends all values to the log and takes the requested snapshots afterward.
func (s Script) Run(log *versionlog.Log) []render.Snapshot {
	for _, value := range s.Values {
		log.Append(value)
	}

	versions := s.SnapshotVersions()
	result := make([]render.Snapshot, 0, len(versions))
	for _, version := range versions {
		result = append(result, render.Snapshot{
			Version: version,
			Values:  log.SnapshotAsOf(version),
		})
	}
	return result
}
