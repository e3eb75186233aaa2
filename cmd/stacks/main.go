// Command stacks measures, places and renders YAML scenes of column and row
// layouts.
package main

import (
	"log"

	"github.com/go-drift/stacks/cmd/stacks/cmd"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("stacks: ")
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
