// Package main is the entry point for the taskdeck terminal client.
package main

import "taskdeck/internal/cmd"

func main() {
	cmd.Execute()
}
