package descriptor

import (
	"encoding/json"
	"os"

	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/arthur-debert/pkgenv/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Marshal encodes a descriptor in the given format
func Marshal(desc *types.PackageDescriptor, format Format) ([]byte, error) {
	file := fromDescriptor(desc)
	switch format {
	case FormatTOML:
		return toml.Marshal(file)
	case FormatYAML:
		return yaml.Marshal(file)
	case FormatJSON:
		return json.MarshalIndent(file, "", "  ")
	}
	return nil, errors.Newf(errors.ErrInvalidArgument, "unsupported descriptor format %q", format)
}

// Write encodes desc into path, choosing the format from the extension.
// Existing files are not overwritten.
func Write(path string, desc *types.PackageDescriptor) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return errors.New(errors.ErrAlreadyExists, "descriptor already exists").
			WithDetail("path", path)
	}

	data, err := Marshal(desc, format)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode descriptor")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write descriptor").
			WithDetail("path", path)
	}
	return nil
}

func fromDescriptor(desc *types.PackageDescriptor) descriptorFile {
	file := descriptorFile{
		Name:          desc.Name(),
		Version:       desc.Version(),
		UUID:          desc.UUID(),
		Authors:       desc.Authors,
		Description:   desc.Description,
		BuildRequires: desc.BuildRequirements,
		Requires:      desc.RuntimeRequirements,
		Tools:         desc.ProvidedTools,
		BuildCommand:  desc.BuildCommand,
	}
	for _, v := range desc.Variants {
		file.Variants = append(file.Variants, []string(v))
	}
	for _, op := range desc.Commands {
		c := commandFile{Op: string(op.Kind), Var: op.Var}
		if op.Kind != types.OpUnset {
			c.Value = op.Value.String()
		}
		file.Commands = append(file.Commands, c)
	}
	return file
}
