package paths

import (
	"strings"

	"github.com/arthur-debert/dotstow/pkg/errors"
)

// ValidatePackageName ensures a name can be handed to stow as a package
// identifier. stow rejects path separators inside package names.
func ValidatePackageName(name string) error {
	return validateSegment("package name", name)
}

// ValidateHostname ensures a hostname selects exactly one directory under
// the hosts root.
func ValidateHostname(name string) error {
	return validateSegment("hostname", name)
}

func validateSegment(what, name string) error {
	if name == "" {
		return errors.Newf(errors.ErrInvalidInput, "%s cannot be empty", what)
	}

	if strings.ContainsAny(name, "/\\") {
		return errors.Newf(errors.ErrInvalidInput, "%s cannot contain path separators", what).
			WithDetail("name", name)
	}

	if name == "." || name == ".." {
		return errors.Newf(errors.ErrInvalidInput, "%s cannot be '.' or '..'", what)
	}

	for _, r := range name {
		if r < 32 {
			return errors.Newf(errors.ErrInvalidInput, "%s contains control characters", what).
				WithDetail("name", name)
		}
	}

	return nil
}

// NormalizePackageName strips trailing slashes added by shell completion
func NormalizePackageName(name string) string {
	return strings.TrimRight(name, "/")
}
