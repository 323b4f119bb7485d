package versionlog

import "github.com/backbone81/versioned-list/internal/render"

// FormatValues renders the values comma and space separated and wrapped in square brackets, e.g. "[1, 2, 3]".
var FormatValues = render.FormatValues
