package shell

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pkgenv/pkg/errors"
)

// Format is a commit script format
type Format string

const (
	FormatBash Format = "bash"
	FormatZsh  Format = "zsh"
	FormatFish Format = "fish"
	FormatJSON Format = "json"
)

// Formats lists the supported formats
var Formats = []Format{FormatBash, FormatZsh, FormatFish, FormatJSON}

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidArgument, "unsupported shell %q", s).
		WithDetail("supported", Formats)
}

// DetectShell returns the format matching $SHELL, defaulting to bash
func DetectShell() Format {
	switch filepath.Base(os.Getenv("SHELL")) {
	case "zsh":
		return FormatZsh
	case "fish":
		return FormatFish
	default:
		return FormatBash
	}
}

// Render commits the plan by writing it in format to w. The caller's shell
// applies it, typically with eval.
func (p *Plan) Render(w io.Writer, format Format) error {
	format, err := ParseFormat(string(format))
	if err != nil {
		return err
	}
	if err := p.markCommitted(); err != nil {
		return err
	}

	switch format {
	case FormatBash, FormatZsh:
		err = renderPosix(w, p.Changes)
	case FormatFish:
		err = renderFish(w, p.Changes)
	case FormatJSON:
		err = renderJSON(w, p.Changes)
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write activation script")
	}
	return nil
}

func renderPosix(w io.Writer, changes []Change) error {
	for _, c := range changes {
		var err error
		if c.Unset {
			_, err = fmt.Fprintf(w, "unset %s\n", c.Name)
		} else {
			_, err = fmt.Fprintf(w, "export %s=%s\n", c.Name, quotePosix(c.Value()))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func renderFish(w io.Writer, changes []Change) error {
	for _, c := range changes {
		var err error
		if c.Unset {
			_, err = fmt.Fprintf(w, "set -e %s\n", c.Name)
		} else {
			quoted := make([]string, len(c.Entries))
			for i, e := range c.Entries {
				quoted[i] = quoteFish(e)
			}
			if len(quoted) == 0 {
				quoted = []string{"''"}
			}
			_, err = fmt.Fprintf(w, "set -gx %s %s\n", c.Name, strings.Join(quoted, " "))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// renderJSON writes {"NAME": "value", "GONE": null}
func renderJSON(w io.Writer, changes []Change) error {
	out := make(map[string]*string, len(changes))
	for _, c := range changes {
		if c.Unset {
			out[c.Name] = nil
			continue
		}
		v := c.Value()
		out[c.Name] = &v
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func quotePosix(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func quoteFish(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return "'" + s + "'"
}
