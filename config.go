package twconfig

import (
	"maps"
	"slices"
)

// BuildConfiguration is the validated configuration handed to the build tool.
// It is built once per invocation and never mutated afterwards.
type BuildConfiguration struct {
	ContentGlobs        []string        // ["./templates/**/*.html"]
	ClassPrefix         string          // "tw-" or "" for no prefix
	CorePluginOverrides map[string]bool // {"preflight": false}
	Plugins             []Plugin        // resolved plugin references, in declaration order
}

// PluginSource tells where a plugin reference was found.
type PluginSource string

// Plugin sources
const (
	PluginBuiltin     PluginSource = "builtin"      // bundled with the standalone CLI
	PluginNodeModules PluginSource = "node_modules" // installed package
	PluginLocal       PluginSource = "local"        // ./path/to/plugin.js
)

// Plugin is a resolved plugin reference.
type Plugin struct {
	Name   string       // canonical module name: "@tailwindcss/line-clamp"
	Source PluginSource // PluginBuiltin
	Path   string       // package directory or file, empty for builtin plugins
}

// document is the declarative shape shared by every source format.
// Field order is the order used when encoding.
type document struct {
	Content     []string        `koanf:"content" json:"content" toml:"content"`
	Prefix      string          `koanf:"prefix" json:"prefix,omitempty" toml:"prefix,omitempty"`
	Plugins     []string        `koanf:"plugins" json:"plugins" toml:"plugins"`
	CorePlugins map[string]bool `koanf:"corePlugins" json:"corePlugins" toml:"corePlugins"`
}

// PluginNames returns the canonical names of all plugins in order.
func (c *BuildConfiguration) PluginNames() []string {
	names := make([]string, len(c.Plugins))
	for i, p := range c.Plugins {
		names[i] = p.Name
	}
	return names
}

// CorePluginEnabled reports whether a core plugin is enabled.
// Core plugins are enabled unless an override disables them.
func (c *BuildConfiguration) CorePluginEnabled(name string) bool {
	enabled, ok := c.CorePluginOverrides[name]
	if !ok {
		return IsCorePlugin(name)
	}
	return enabled
}

// Clone returns a deep copy.
func (c *BuildConfiguration) Clone() *BuildConfiguration {
	clone := &BuildConfiguration{
		ContentGlobs:        slices.Clone(c.ContentGlobs),
		ClassPrefix:         c.ClassPrefix,
		CorePluginOverrides: maps.Clone(c.CorePluginOverrides),
		Plugins:             slices.Clone(c.Plugins),
	}
	clone.normalize()
	return clone
}

// normalize replaces nil collections with empty ones so that equal
// configurations compare equal regardless of how they were built.
func (c *BuildConfiguration) normalize() {
	if c.ContentGlobs == nil {
		c.ContentGlobs = []string{}
	}
	if c.CorePluginOverrides == nil {
		c.CorePluginOverrides = map[string]bool{}
	}
	if c.Plugins == nil {
		c.Plugins = []Plugin{}
	}
}

// toDocument converts the configuration back to its declarative shape.
func (c *BuildConfiguration) toDocument() document {
	doc := document{
		Content:     slices.Clone(c.ContentGlobs),
		Prefix:      c.ClassPrefix,
		Plugins:     c.PluginNames(),
		CorePlugins: maps.Clone(c.CorePluginOverrides),
	}
	if doc.Content == nil {
		doc.Content = []string{}
	}
	if doc.CorePlugins == nil {
		doc.CorePlugins = map[string]bool{}
	}
	return doc
}
