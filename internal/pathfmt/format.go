package pathfmt

import "strings"

const (
	DefaultMaxLength   = 6
	DefaultPlaceholder = "..."
	DefaultHomeIcon    = "~"
)

// Options controls how a path is shortened.
type Options struct {
	MaxLength   int    // longest non-leaf component kept as is
	Placeholder string // replaces components longer than MaxLength
	HomeIcon    string // replaces the home directory prefix
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		MaxLength:   DefaultMaxLength,
		Placeholder: DefaultPlaceholder,
		HomeIcon:    DefaultHomeIcon,
	}
}

// Format returns pwd shortened for display. When pwd is home or lies under it,
// the home prefix is replaced by opts.HomeIcon. Every component except the leaf
// is replaced by opts.Placeholder when longer than opts.MaxLength bytes.
func Format(pwd, home string, opts Options) (string, error) {
	components, inHome := Rel(pwd, home)

	return formatComponents(components, inHome, opts)
}

// formatComponents shortens already decomposed components. inHome reports
// whether they are relative to the home directory.
func formatComponents(components []Component, inHome bool, opts Options) (string, error) {
	parts := make([]string, 0, len(components)+1)
	for i, c := range components {
		s, err := c.Render()
		if err != nil {
			return "", err
		}

		// The leaf is always shown in full.
		if i < len(components)-1 && len(s) > opts.MaxLength {
			s = opts.Placeholder
		}

		parts = append(parts, s)
	}

	if inHome {
		parts = append([]string{opts.HomeIcon}, parts...)
	} else if len(parts) == 1 {
		parts = []string{"/"}
	}

	return strings.Join(parts, "/"), nil
}
