package twconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrPluginNotFound is returned by resolvers that cannot locate a plugin.
var ErrPluginNotFound = errors.New("plugin not found")

// Resolver locates plugin references.
type Resolver interface {
	Resolve(name string) (Plugin, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) (Plugin, error)

// Resolve calls f(name).
func (f ResolverFunc) Resolve(name string) (Plugin, error) {
	return f(name)
}

// bundledPlugins are the first-party plugins shipped inside the standalone CLI,
// keyed by short name.
var bundledPlugins = map[string]string{
	"aspect-ratio":      "@tailwindcss/aspect-ratio",
	"container-queries": "@tailwindcss/container-queries",
	"forms":             "@tailwindcss/forms",
	"line-clamp":        "@tailwindcss/line-clamp",
	"typography":        "@tailwindcss/typography",
}

// DefaultResolver resolves bundled plugins by name, local plugin files
// relative to Root and everything else from Root/node_modules.
type DefaultResolver struct {
	Root string
}

// Resolve implements Resolver.
func (r DefaultResolver) Resolve(name string) (Plugin, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Plugin{}, errors.New("plugin name is empty")
	}

	if module, ok := bundledModule(name); ok {
		return Plugin{Name: module, Source: PluginBuiltin}, nil
	}

	root := r.Root
	if root == "" {
		root = "."
	}

	if strings.HasPrefix(name, "./") || strings.HasPrefix(name, "../") {
		path := filepath.Join(root, filepath.FromSlash(name))
		for _, candidate := range []string{path, path + ".js", path + ".cjs"} {
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return Plugin{Name: name, Source: PluginLocal, Path: candidate}, nil
			}
		}
		return Plugin{}, fmt.Errorf("%w: no file at %s", ErrPluginNotFound, path)
	}

	dir := filepath.Join(root, "node_modules", filepath.FromSlash(name))
	if _, err := os.Stat(filepath.Join(dir, "package.json")); err != nil {
		return Plugin{}, fmt.Errorf("%w: %s is not bundled and not installed in %s",
			ErrPluginNotFound, name, filepath.Join(root, "node_modules"))
	}
	return Plugin{Name: name, Source: PluginNodeModules, Path: dir}, nil
}

// bundledModule maps short and scoped names of bundled plugins to the scoped name.
func bundledModule(name string) (string, bool) {
	if module, ok := bundledPlugins[name]; ok {
		return module, true
	}
	short := strings.TrimPrefix(name, "@tailwindcss/")
	if short == name {
		return "", false
	}
	module, ok := bundledPlugins[short]
	return module, ok
}

func resolvePlugins(source string, names []string, resolver Resolver) ([]Plugin, error) {
	plugins := make([]Plugin, 0, len(names))
	for i, name := range names {
		p, err := resolver.Resolve(name)
		if err != nil {
			return nil, newError(KindUnresolvedPlugin, source, fmt.Sprintf("plugins[%d]", i), name, err)
		}
		plugins = append(plugins, p)
	}
	return plugins, nil
}
