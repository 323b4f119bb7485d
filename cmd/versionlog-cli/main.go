package main

import "github.com/backbone81/versioned-list/cmd/versionlog-cli/cmd"

func main() {
	cmd.Execute()
}
