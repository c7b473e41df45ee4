// Package image renders optimized <img> elements with fill sizing and blur placeholders.
package image

import (
	"fmt"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

type Placeholder string

const (
	PlaceholderEmpty Placeholder = "empty"
	PlaceholderBlur  Placeholder = "blur"
)

type Props struct {
	Src         string
	Alt         string
	Class       string
	Fill        bool // Absolutely fill the nearest positioned parent
	Width       int  // Ignored when Fill is set
	Height      int  // Ignored when Fill is set
	Placeholder Placeholder
	BlurDataURL string // Low-resolution image shown until Src loads
	Priority    bool   // Eager load above-the-fold images
}

var cssURLReplacer = strings.NewReplacer(`"`, "%22", `\`, "%5C", "\n", "", "\r", "")

func sized(p Props) bool {
	return !p.Fill && p.Width > 0 && p.Height > 0
}

// optionalAttrs holds the attributes that are omitted entirely when empty.
func optionalAttrs(p Props) templ.Attributes {
	attrs := templ.Attributes{}
	if class := classes(p); class != "" {
		attrs["class"] = class
	}
	if style := styles(p); style != "" {
		attrs["style"] = style
	}
	if blurred(p) {
		attrs["data-placeholder"] = string(PlaceholderBlur)
	}
	return attrs
}

func classes(p Props) string {
	base := ""
	if p.Fill {
		base = "absolute inset-0 h-full w-full object-cover"
	}
	return twmerge.Merge(base, p.Class)
}

func styles(p Props) string {
	var parts []string
	if p.Fill {
		parts = append(parts, "position:absolute", "height:100%", "width:100%", "inset:0", "color:transparent")
	}
	if blurred(p) {
		src := string(templ.URL(p.BlurDataURL))
		parts = append(parts,
			"background-size:cover",
			"background-position:50% 50%",
			"background-repeat:no-repeat",
			fmt.Sprintf(`background-image:url("%s")`, cssURLReplacer.Replace(src)),
		)
	}
	return strings.Join(parts, ";")
}

func blurred(p Props) bool {
	return p.Placeholder == PlaceholderBlur && p.BlurDataURL != ""
}
