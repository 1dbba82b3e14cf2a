// Command dotstow-manpage writes one man page per dotstow command into a
// directory (default "man").
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/dotstow/internal/cli"
	"github.com/arthur-debert/dotstow/internal/version"
)

func main() {
	dir := "man"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", dir, err)
		os.Exit(1)
	}

	header := &doc.GenManHeader{
		Title:   "DOTSTOW",
		Section: "1",
		Source:  "dotstow " + version.Version,
		Manual:  "dotstow manual",
	}

	if err := doc.GenManTree(cli.NewRootCmd(), header, dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man pages: %v\n", err)
		os.Exit(1)
	}
}
