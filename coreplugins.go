package twconfig

import (
	"slices"
	"sort"
)

// corePlugins lists the built-in features of the build tool that can be
// toggled through corePlugins. Keys outside this set are configuration errors.
var corePlugins = []string{
	"accentColor",
	"accessibility",
	"alignContent",
	"alignItems",
	"alignSelf",
	"animation",
	"appearance",
	"aspectRatio",
	"backdropBlur",
	"backdropBrightness",
	"backdropContrast",
	"backdropFilter",
	"backdropGrayscale",
	"backdropHueRotate",
	"backdropInvert",
	"backdropOpacity",
	"backdropSaturate",
	"backdropSepia",
	"backgroundAttachment",
	"backgroundBlendMode",
	"backgroundClip",
	"backgroundColor",
	"backgroundImage",
	"backgroundOpacity",
	"backgroundOrigin",
	"backgroundPosition",
	"backgroundRepeat",
	"backgroundSize",
	"blur",
	"borderCollapse",
	"borderColor",
	"borderOpacity",
	"borderRadius",
	"borderSpacing",
	"borderStyle",
	"borderWidth",
	"boxDecorationBreak",
	"boxShadow",
	"boxShadowColor",
	"boxSizing",
	"breakAfter",
	"breakBefore",
	"breakInside",
	"brightness",
	"captionSide",
	"caretColor",
	"clear",
	"columns",
	"container",
	"content",
	"contrast",
	"cursor",
	"display",
	"divideColor",
	"divideOpacity",
	"divideStyle",
	"divideWidth",
	"dropShadow",
	"fill",
	"filter",
	"flex",
	"flexBasis",
	"flexDirection",
	"flexGrow",
	"flexShrink",
	"flexWrap",
	"float",
	"fontFamily",
	"fontSize",
	"fontSmoothing",
	"fontStyle",
	"fontVariantNumeric",
	"fontWeight",
	"forcedColorAdjust",
	"gap",
	"gradientColorStops",
	"grayscale",
	"gridAutoColumns",
	"gridAutoFlow",
	"gridAutoRows",
	"gridColumn",
	"gridColumnEnd",
	"gridColumnStart",
	"gridRow",
	"gridRowEnd",
	"gridRowStart",
	"gridTemplateColumns",
	"gridTemplateRows",
	"height",
	"hueRotate",
	"hyphens",
	"inset",
	"invert",
	"isolation",
	"justifyContent",
	"justifyItems",
	"justifySelf",
	"letterSpacing",
	"lineClamp",
	"lineHeight",
	"listStyleImage",
	"listStylePosition",
	"listStyleType",
	"margin",
	"maxHeight",
	"maxWidth",
	"minHeight",
	"minWidth",
	"mixBlendMode",
	"objectFit",
	"objectPosition",
	"opacity",
	"order",
	"outlineColor",
	"outlineOffset",
	"outlineStyle",
	"outlineWidth",
	"overflow",
	"overscrollBehavior",
	"padding",
	"placeContent",
	"placeItems",
	"placeSelf",
	"placeholderColor",
	"placeholderOpacity",
	"pointerEvents",
	"position",
	"preflight",
	"resize",
	"ringColor",
	"ringOffsetColor",
	"ringOffsetWidth",
	"ringOpacity",
	"ringWidth",
	"rotate",
	"saturate",
	"scale",
	"scrollBehavior",
	"scrollMargin",
	"scrollPadding",
	"scrollSnapAlign",
	"scrollSnapStop",
	"scrollSnapType",
	"sepia",
	"size",
	"skew",
	"space",
	"stroke",
	"strokeWidth",
	"tableLayout",
	"textAlign",
	"textColor",
	"textDecoration",
	"textDecorationColor",
	"textDecorationStyle",
	"textDecorationThickness",
	"textIndent",
	"textOpacity",
	"textOverflow",
	"textTransform",
	"textUnderlineOffset",
	"textWrap",
	"touchAction",
	"transform",
	"transformOrigin",
	"transitionDelay",
	"transitionDuration",
	"transitionProperty",
	"transitionTimingFunction",
	"translate",
	"userSelect",
	"verticalAlign",
	"visibility",
	"whitespace",
	"width",
	"willChange",
	"wordBreak",
	"zIndex",
}

var corePluginSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(corePlugins))
	for _, name := range corePlugins {
		set[name] = struct{}{}
	}
	return set
}()

// CorePlugins returns the sorted names of all built-in core plugins.
func CorePlugins() []string {
	names := slices.Clone(corePlugins)
	sort.Strings(names)
	return names
}

// IsCorePlugin reports whether name is a built-in core plugin.
func IsCorePlugin(name string) bool {
	_, ok := corePluginSet[name]
	return ok
}
