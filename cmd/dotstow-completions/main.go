// Command dotstow-completions writes shell completion scripts for every
// supported shell into a directory (default "completions").
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotstow/internal/cli"
)

var generators = []struct {
	file string
	gen  func(*cobra.Command, io.Writer) error
}{
	{"dotstow.bash", func(c *cobra.Command, w io.Writer) error { return c.GenBashCompletionV2(w, true) }},
	{"_dotstow", func(c *cobra.Command, w io.Writer) error { return c.GenZshCompletion(w) }},
	{"dotstow.fish", func(c *cobra.Command, w io.Writer) error { return c.GenFishCompletion(w, true) }},
	{"dotstow.ps1", func(c *cobra.Command, w io.Writer) error { return c.GenPowerShellCompletionWithDesc(w) }},
}

func main() {
	dir := "completions"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", dir, err)
		os.Exit(1)
	}

	rootCmd := cli.NewRootCmd()
	for _, g := range generators {
		if err := write(filepath.Join(dir, g.file), rootCmd, g.gen); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", g.file, err)
			os.Exit(1)
		}
	}
}

func write(path string, rootCmd *cobra.Command, gen func(*cobra.Command, io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gen(rootCmd, f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
