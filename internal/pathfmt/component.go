// Package pathfmt provides functionality for shortening directory paths for display in shell prompts.
package pathfmt

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	ErrUnsupportedComponent = errors.New("unsupported path component")
	ErrInvalidEncoding      = errors.New("path component is not valid text")
)

// Kind classifies a single path component.
type Kind int

const (
	Normal Kind = iota
	RootDir
	CurDir
	ParentDir
	Prefix // volume name, only produced on non-POSIX platforms
)

func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case RootDir:
		return "root"
	case CurDir:
		return "current"
	case ParentDir:
		return "parent"
	case Prefix:
		return "prefix"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Component is one element of a decomposed path. Name is only set for Normal and Prefix components.
type Component struct {
	Kind Kind
	Name string
}

// Render returns the display text of the component.
func (c Component) Render() (string, error) {
	switch c.Kind {
	case RootDir:
		return "", nil
	case CurDir:
		return ".", nil
	case ParentDir:
		return "..", nil
	case Normal:
		if !utf8.ValidString(c.Name) {
			return "", fmt.Errorf("%w: %q", ErrInvalidEncoding, c.Name)
		}
		return c.Name, nil
	default:
		return "", fmt.Errorf("%w: %s %q, only POSIX paths are supported", ErrUnsupportedComponent, c.Kind, c.Name)
	}
}

// Split decomposes a slash-separated path into its components.
// Repeated separators collapse, a trailing separator is ignored and "." is
// only kept when it leads a relative path.
func Split(path string) []Component {
	var components []Component

	if volume := filepath.VolumeName(path); volume != "" {
		components = append(components, Component{Kind: Prefix, Name: volume})
		path = path[len(volume):]
	}

	rooted := strings.HasPrefix(path, "/")
	if rooted {
		components = append(components, Component{Kind: RootDir})
	}

	for i, part := range strings.Split(path, "/") {
		switch part {
		case "":
			continue
		case ".":
			if i == 0 && !rooted {
				components = append(components, Component{Kind: CurDir})
			}
		case "..":
			components = append(components, Component{Kind: ParentDir})
		default:
			components = append(components, Component{Kind: Normal, Name: part})
		}
	}

	return components
}

// Rel strips the components of base from the front of path. The boolean is
// false when path is neither equal to nor nested under base, in which case
// the full components of path are returned.
func Rel(path, base string) ([]Component, bool) {
	pathComponents := Split(path)
	baseComponents := Split(base)

	if len(baseComponents) == 0 || len(baseComponents) > len(pathComponents) {
		return pathComponents, false
	}

	for i, c := range baseComponents {
		if pathComponents[i] != c {
			return pathComponents, false
		}
	}

	return pathComponents[len(baseComponents):], true
}
