package descriptor

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/arthur-debert/pkgenv/pkg/logging"
	"github.com/arthur-debert/pkgenv/pkg/semver"
	"github.com/arthur-debert/pkgenv/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"
)

// descriptorFile is the wire form shared by all formats
type descriptorFile struct {
	Name          string        `toml:"name" yaml:"name" json:"name"`
	Version       string        `toml:"version" yaml:"version" json:"version"`
	Authors       []string      `toml:"authors,omitempty" yaml:"authors,omitempty" json:"authors,omitempty"`
	Description   string        `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
	BuildRequires []string      `toml:"build_requires,omitempty" yaml:"build_requires,omitempty" json:"build_requires,omitempty"`
	Requires      []string      `toml:"requires,omitempty" yaml:"requires,omitempty" json:"requires,omitempty"`
	Tools         []string      `toml:"tools,omitempty" yaml:"tools,omitempty" json:"tools,omitempty"`
	Variants      [][]string    `toml:"variants,omitempty" yaml:"variants,omitempty" json:"variants,omitempty"`
	UUID          string        `toml:"uuid" yaml:"uuid" json:"uuid"`
	BuildCommand  string        `toml:"build_command,omitempty" yaml:"build_command,omitempty" json:"build_command,omitempty"`
	Commands      []commandFile `toml:"commands,omitempty" yaml:"commands,omitempty" json:"commands,omitempty"`
}

type commandFile struct {
	Op    string `toml:"op" yaml:"op" json:"op"`
	Var   string `toml:"var" yaml:"var" json:"var"`
	Value string `toml:"value,omitempty" yaml:"value,omitempty" json:"value,omitempty"`
}

// Load reads and validates the descriptor at path
func Load(path string) (*types.PackageDescriptor, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDescriptorRead, "failed to read descriptor").
			WithDetail("path", path)
	}

	desc, err := Parse(data, format, path)
	if err != nil {
		return nil, err
	}
	desc.Source = path
	return desc, nil
}

// Parse validates and decodes descriptor data. source is only used in
// error details and may be empty.
func Parse(data []byte, format Format, source string) (*types.PackageDescriptor, error) {
	logger := logging.GetLogger("descriptor").With().Str("source", source).Str("format", string(format)).Logger()

	doc, err := toJSONDocument(data, format)
	if err != nil {
		return nil, parseError(err, source, "invalid %s syntax", format)
	}

	schema, err := Schema()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "descriptor schema is unusable")
	}
	if err := schema.Validate(doc); err != nil {
		return nil, parseError(err, source, "descriptor does not match schema")
	}

	var file descriptorFile
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &file)
	case FormatYAML:
		err = yaml.Unmarshal(data, &file)
	case FormatJSON:
		err = json.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, parseError(err, source, "failed to decode descriptor")
	}

	desc, err := file.toDescriptor()
	if err != nil {
		return nil, parseError(err, source, "invalid descriptor")
	}

	logger.Debug().
		Str("package", desc.QualifiedName()).
		Int("commands", len(desc.Commands)).
		Msg("descriptor loaded")
	return desc, nil
}

// toJSONDocument converts any supported format into the generic value the
// schema validator expects.
func toJSONDocument(data []byte, format Format) (interface{}, error) {
	var jsonBytes []byte
	switch format {
	case FormatTOML:
		var raw map[string]interface{}
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		b, err := json.Marshal(raw)
		if err != nil {
			return nil, err
		}
		jsonBytes = b
	case FormatYAML:
		b, err := sigsyaml.YAMLToJSON(data)
		if err != nil {
			return nil, err
		}
		jsonBytes = b
	case FormatJSON:
		jsonBytes = data
	default:
		return nil, errors.Newf(errors.ErrInvalidArgument, "unsupported descriptor format %q", format)
	}

	var doc interface{}
	if err := json.Unmarshal(jsonBytes, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (f *descriptorFile) toDescriptor() (*types.PackageDescriptor, error) {
	if _, err := semver.ParseVersion(f.Version); err != nil {
		return nil, err
	}

	desc := types.NewPackageDescriptor(f.Name, f.Version, f.UUID)
	desc.Authors = f.Authors
	desc.Description = dedent(f.Description)
	desc.BuildRequirements = f.BuildRequires
	desc.RuntimeRequirements = f.Requires
	desc.ProvidedTools = f.Tools
	desc.BuildCommand = f.BuildCommand
	for _, v := range f.Variants {
		desc.Variants = append(desc.Variants, types.Variant(v))
	}

	for i, c := range f.Commands {
		op, err := parseCommand(c)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrDescriptorParse, "command %d", i)
		}
		desc.Commands = append(desc.Commands, op)
	}
	return desc, nil
}

func parseCommand(c commandFile) (types.EnvOp, error) {
	kind := types.EnvOpKind(c.Op)
	if !kind.Valid() {
		return types.EnvOp{}, errors.Newf(errors.ErrDescriptorParse, "unknown op %q", c.Op)
	}
	op := types.EnvOp{Kind: kind, Var: c.Var}

	switch kind {
	case types.OpUnset:
		if c.Value != "" {
			return types.EnvOp{}, errors.New(errors.ErrDescriptorParse, "unset takes no value")
		}
		return op, nil
	case types.OpAppend, types.OpPrepend:
		if c.Value == "" {
			return types.EnvOp{}, errors.Newf(errors.ErrDescriptorParse, "%s requires a value", kind)
		}
	}

	value, err := ParseValue(c.Value)
	if err != nil {
		return types.EnvOp{}, err
	}
	op.Value = value
	return op, nil
}

// ParseValue turns descriptor text into a typed value. The {root} token is
// only accepted as the whole value or as a leading "{root}/" segment.
func ParseValue(s string) (types.Value, error) {
	if rest, ok := strings.CutPrefix(s, types.RootToken); ok {
		if strings.Contains(rest, types.RootToken) {
			return types.Value{}, errors.Newf(errors.ErrDescriptorParse, "%s may appear only once", types.RootToken)
		}
		if rest == "" {
			return types.RootPath(""), nil
		}
		if rest[0] != '/' {
			return types.Value{}, errors.Newf(errors.ErrDescriptorParse,
				"%s must be followed by a path separator in %q", types.RootToken, s)
		}
		return types.RootPath(strings.TrimLeft(rest, "/")), nil
	}
	if strings.Contains(s, types.RootToken) {
		return types.Value{}, errors.Newf(errors.ErrDescriptorParse,
			"%s must lead the value in %q", types.RootToken, s)
	}
	return types.Literal(s), nil
}

// dedent trims surrounding blank lines and per-line indentation, which
// descriptor authors add when writing multi-line descriptions.
func dedent(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

func parseError(err error, source, format string, args ...interface{}) error {
	return errors.Wrapf(err, errors.ErrDescriptorParse, format, args...).
		WithDetail("source", source)
}
