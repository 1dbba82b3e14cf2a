package packs

import (
	"strings"

	"github.com/arthur-debert/dotstow/pkg/errors"
	"github.com/arthur-debert/dotstow/pkg/logging"
	"github.com/arthur-debert/dotstow/pkg/paths"
)

// Select filters discovered packages by name, keeping discovery order.
// No names means all packages.
func Select(all []Package, names []string) ([]Package, error) {
	logger := logging.GetLogger("packs.selection")

	if len(names) == 0 {
		return all, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		normalized := paths.NormalizePackageName(name)
		if err := paths.ValidatePackageName(normalized); err != nil {
			return nil, err
		}
		wanted[normalized] = true
	}

	var selected []Package
	for _, p := range all {
		if wanted[p.Name] {
			selected = append(selected, p)
			delete(wanted, p.Name)
		}
	}

	if len(wanted) > 0 {
		var notFound []string
		for _, name := range names {
			if n := paths.NormalizePackageName(name); wanted[n] {
				notFound = append(notFound, n)
				delete(wanted, n)
			}
		}
		return nil, errors.Newf(errors.ErrPackageNotFound, "package(s) not found: %s", strings.Join(notFound, ", ")).
			WithDetail("notFound", notFound).
			WithDetail("available", Names(all))
	}

	logger.Info().
		Int("selected", len(selected)).
		Int("total", len(all)).
		Msg("Selected packages")

	return selected, nil
}
