package twconfig

import "maps"

// Merge overlays override on base and returns a new configuration.
//
//   - ClassPrefix: override wins when it is non-empty
//   - CorePluginOverrides: union, override wins per key
//   - ContentGlobs, Plugins: concatenated, duplicates dropped, first-seen order kept
//
// Neither input is modified. Merge is idempotent:
// Merge(Merge(b, o), o) equals Merge(b, o).
func Merge(base, override *BuildConfiguration) *BuildConfiguration {
	if base == nil {
		base = &BuildConfiguration{}
	}
	if override == nil {
		override = &BuildConfiguration{}
	}

	merged := &BuildConfiguration{
		ContentGlobs:        dedupe(base.ContentGlobs, override.ContentGlobs, func(s string) string { return s }),
		ClassPrefix:         base.ClassPrefix,
		CorePluginOverrides: maps.Clone(base.CorePluginOverrides),
		Plugins:             dedupe(base.Plugins, override.Plugins, func(p Plugin) string { return p.Name }),
	}
	if override.ClassPrefix != "" {
		merged.ClassPrefix = override.ClassPrefix
	}
	if merged.CorePluginOverrides == nil {
		merged.CorePluginOverrides = make(map[string]bool, len(override.CorePluginOverrides))
	}
	maps.Copy(merged.CorePluginOverrides, override.CorePluginOverrides)

	merged.normalize()
	return merged
}

// MergeAll folds Merge over cfgs from left to right.
func MergeAll(cfgs ...*BuildConfiguration) *BuildConfiguration {
	merged := Merge(nil, nil)
	for _, cfg := range cfgs {
		merged = Merge(merged, cfg)
	}
	return merged
}

// dedupe concatenates a and b keeping the first occurrence of each key.
func dedupe[T any](a, b []T, key func(T) string) []T {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]T, 0, len(a)+len(b))
	for _, list := range [][]T{a, b} {
		for _, item := range list {
			k := key(item)
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, item)
		}
	}
	return out
}
