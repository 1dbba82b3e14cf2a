// Package report renders run progress and outcomes for humans.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dotstow/pkg/errors"
	"github.com/arthur-debert/dotstow/pkg/orchestration"
	"github.com/arthur-debert/dotstow/pkg/packs"
	"github.com/arthur-debert/dotstow/pkg/types"
	"github.com/arthur-debert/dotstow/pkg/ui/styles"
)

const (
	markOK   = "✓"
	markFail = "✗"
)

// Reporter writes report lines to an output stream
type Reporter struct {
	out io.Writer
}

// New creates a Reporter writing to out
func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Start announces the packages about to be restowed
func (r *Reporter) Start(mode types.Mode, hostname string, dryRun bool, pkgs []packs.Package) {
	if dryRun {
		r.println(styles.Render("DryRunBanner", "DRY RUN: stow will simulate only, nothing is changed"))
	}
	r.println(styles.Render("Header", fmt.Sprintf("Restowing %d %s:", len(pkgs), title(mode, hostname))))
}

// PackResult prints one line for a finished package
func (r *Reporter) PackResult(pr orchestration.PackResult) {
	name := styles.Render("Package", pr.Package.Name)
	if pr.Status == orchestration.StatusSucceeded {
		r.println(fmt.Sprintf("  %s %s", styles.Render("Success", markOK), name))
		return
	}

	detail := fmt.Sprintf("exit status %d", pr.ExitCode)
	if pr.ExitCode < 0 && pr.Error != nil {
		detail = pr.Error.Error()
	}
	r.println(fmt.Sprintf("  %s %s %s", styles.Render("Error", markFail), name, styles.Render("Muted", "("+detail+")")))
}

// Summary prints the partial-failure warning, if any, and the final tally
func (r *Reporter) Summary(result orchestration.Result) {
	failed := result.FailedNames()
	succeeded := len(result.Succeeded())

	if result.Partial() {
		r.println(styles.Render("Warning",
			fmt.Sprintf("Warning: %d package(s) failed: %s", len(failed), strings.Join(failed, ", "))))
	}

	line := fmt.Sprintf("%d succeeded, %d failed", succeeded, len(failed))
	if result.DryRun {
		line += " (dry run)"
	}
	r.println(styles.Render("Summary", line))
}

// Packages prints discovered package names, one per line, as used by list
func (r *Reporter) Packages(mode types.Mode, hostname string, pkgs []packs.Package) {
	if len(pkgs) == 0 {
		r.println(styles.Render("Muted", fmt.Sprintf("No %s found", title(mode, hostname))))
		return
	}
	r.println(styles.Render("Header", fmt.Sprintf("%s:", capitalize(title(mode, hostname)))))
	for _, p := range pkgs {
		r.println(fmt.Sprintf("  %s %s", p.Name, styles.Render("FilePath", p.Path)))
	}
}

// Error prints err in the error style, without the error code prefix
func (r *Reporter) Error(err error) {
	r.println(styles.Render("Error", "Error:") + " " + errors.UserMessage(err))
}

func (r *Reporter) println(line string) {
	_, _ = fmt.Fprintln(r.out, line)
}

func title(mode types.Mode, hostname string) string {
	if mode == types.ModeHost {
		return fmt.Sprintf("host packages for %s", hostname)
	}
	return "base packages"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
