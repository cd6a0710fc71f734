package repository

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/pkgenv/pkg/descriptor"
	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/arthur-debert/pkgenv/pkg/logging"
	"github.com/arthur-debert/pkgenv/pkg/semver"
	"github.com/arthur-debert/pkgenv/pkg/types"
	"github.com/rs/zerolog"
)

// Repository reads installed packages from search roots
type Repository struct {
	roots           []string
	descriptorNames []string
	logger          zerolog.Logger
}

// New creates a Repository over roots. An empty descriptorNames uses
// descriptor.DefaultFileNames.
func New(roots []string, descriptorNames []string) *Repository {
	return &Repository{
		roots:           append([]string(nil), roots...),
		descriptorNames: descriptorNames,
		logger:          logging.GetLogger("repository"),
	}
}

// Roots returns the search roots in lookup order
func (r *Repository) Roots() []string {
	return append([]string(nil), r.roots...)
}

// Names returns every package name found under any root, sorted
func (r *Repository) Names() ([]string, error) {
	seen := make(map[string]bool)
	for _, root := range r.roots {
		entries, err := readDirs(root)
		if err != nil {
			return nil, err
		}
		for _, name := range entries {
			seen[name] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Versions returns the installed versions of name, highest first. Broken
// or mismatched descriptors are logged and skipped.
func (r *Repository) Versions(name string) ([]*types.InstalledPackage, error) {
	var found []*types.InstalledPackage
	seen := make(map[string]bool)

	for _, root := range r.roots {
		nameDir := filepath.Join(root, name)
		versions, err := readDirs(nameDir)
		if err != nil {
			return nil, err
		}

		for _, version := range versions {
			if seen[version] {
				r.logger.Debug().
					Str("package", name).
					Str("version", version).
					Str("root", root).
					Msg("Version shadowed by an earlier root")
				continue
			}

			pkg, ok := r.load(name, version, filepath.Join(nameDir, version))
			if !ok {
				continue
			}
			seen[version] = true
			found = append(found, pkg)
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		vi := semver.MustParseVersion(found[i].Descriptor.Version())
		vj := semver.MustParseVersion(found[j].Descriptor.Version())
		return semver.Compare(vi, vj) > 0
	})
	return found, nil
}

// All returns every installed package, sorted by name then highest
// version first
func (r *Repository) All() ([]*types.InstalledPackage, error) {
	names, err := r.Names()
	if err != nil {
		return nil, err
	}

	var all []*types.InstalledPackage
	for _, name := range names {
		versions, err := r.Versions(name)
		if err != nil {
			return nil, err
		}
		all = append(all, versions...)
	}

	r.logger.Info().Int("count", len(all)).Msg("Loaded installed packages")
	return all, nil
}

// Find returns the highest installed version satisfying req
func (r *Repository) Find(req Request) (*types.InstalledPackage, error) {
	versions, err := r.Versions(req.Name)
	if err != nil {
		return nil, err
	}

	for _, pkg := range versions {
		v := semver.MustParseVersion(pkg.Descriptor.Version())
		if semver.Satisfies(v, req.Constraint) {
			r.logger.Debug().
				Str("request", req.String()).
				Str("selected", pkg.Descriptor.QualifiedName()).
				Msg("Selected package")
			return pkg, nil
		}
	}

	available := make([]string, len(versions))
	for i, pkg := range versions {
		available[i] = pkg.Descriptor.Version()
	}
	return nil, errors.Newf(errors.ErrPackageNotFound, "no installed package matches %s", req.String()).
		WithDetail("request", req.String()).
		WithDetail("available", available).
		WithDetail("roots", r.roots)
}

// FindString parses raw as a request and finds it
func (r *Repository) FindString(raw string) (*types.InstalledPackage, error) {
	req, err := ParseRequest(raw)
	if err != nil {
		return nil, err
	}
	return r.Find(req)
}

func (r *Repository) load(name, version, dir string) (*types.InstalledPackage, bool) {
	path, ok := descriptor.Find(dir, r.descriptorNames)
	if !ok {
		r.logger.Trace().Str("dir", dir).Msg("No descriptor, skipping")
		return nil, false
	}

	desc, err := descriptor.Load(path)
	if err != nil {
		r.logger.Warn().
			Err(err).
			Str("path", path).
			Msg("Failed to load descriptor, skipping")
		return nil, false
	}

	if desc.Name() != name || desc.Version() != version {
		r.logger.Warn().
			Str("path", path).
			Str("descriptor", desc.QualifiedName()).
			Str("directory", name+"-"+version).
			Msg("Descriptor does not match its directory, skipping")
		return nil, false
	}

	return &types.InstalledPackage{Descriptor: desc, Dir: dir}, true
}

// readDirs lists visible subdirectories of dir. A missing dir is empty.
func readDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read package directory").
			WithDetail("path", dir)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
