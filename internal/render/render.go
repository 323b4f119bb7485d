// Package render turns list contents and snapshots into human-readable output.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Snapshot is the content of a versioned log as of a single version.
type Snapshot struct {
	Version uint64 `yaml:"version"`
	Values  []int  `yaml:"values,flow"`
}

// FormatValues renders the values comma and space separated and wrapped in square brackets, e.g. "[1, 2, 3]". An
// empty slice renders as "[]".
func FormatValues(values []int) string {
	var builder strings.Builder
	builder.WriteByte('[')
	for i, value := range values {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(strconv.Itoa(value))
	}
	builder.WriteByte(']')
	return builder.String()
}

// WriteText writes one "Version N: [..]" line per snapshot.
func WriteText(writer io.Writer, snapshots []Snapshot) error {
	for _, snapshot := range snapshots {
		if _, err := fmt.Fprintf(writer, "Version %d: %s\n", snapshot.Version, FormatValues(snapshot.Values)); err != nil {
			return fmt.Errorf("writing snapshot of version %d: %w", snapshot.Version, err)
		}
	}
	return nil
}

// WriteYAML writes the snapshots as a YAML sequence.
func WriteYAML(writer io.Writer, snapshots []Snapshot) error {
	data, err := yaml.Marshal(snapshots)
	if err != nil {
		return fmt.Errorf("encoding snapshots as YAML: %w", err)
	}
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("writing snapshots: %w", err)
	}
	return nil
}
