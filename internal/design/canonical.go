package design

import (
	"math"
	"strconv"
	"strings"
)

// spacingRoots lists utility namespaces whose value is a multiple of the base
// spacing step. Arbitrary or bare-unit lengths in these namespaces
// canonicalize to the bare scale number.
var spacingRoots = map[string]bool{
	"p": true, "px": true, "py": true, "ps": true, "pe": true,
	"pt": true, "pr": true, "pb": true, "pl": true,
	"m": true, "mx": true, "my": true, "ms": true, "me": true,
	"mt": true, "mr": true, "mb": true, "ml": true,
	"gap": true, "gap-x": true, "gap-y": true,
	"space-x": true, "space-y": true,
	"w": true, "h": true, "size": true,
	"min-w": true, "min-h": true, "max-w": true, "max-h": true,
	"inset": true, "inset-x": true, "inset-y": true,
	"top": true, "right": true, "bottom": true, "left": true,
	"start": true, "end": true,
	"translate": true, "translate-x": true, "translate-y": true,
	"indent": true, "basis": true,
	"scroll-m": true, "scroll-mx": true, "scroll-my": true,
	"scroll-ms": true, "scroll-me": true, "scroll-mt": true,
	"scroll-mr": true, "scroll-mb": true, "scroll-ml": true,
	"scroll-p": true, "scroll-px": true, "scroll-py": true,
	"scroll-ps": true, "scroll-pe": true, "scroll-pt": true,
	"scroll-pr": true, "scroll-pb": true, "scroll-pl": true,
}

// colorRoots lists utility namespaces whose arbitrary color values
// canonicalize to palette names. Membership alone is not enough: the value
// must also look like a color, so text-[14px] stays untouched.
var colorRoots = map[string]bool{
	"bg": true, "text": true, "ring": true, "fill": true, "stroke": true,
	"accent": true, "caret": true, "divide": true, "outline": true,
	"border": true, "border-t": true, "border-r": true, "border-b": true,
	"border-l": true, "border-x": true, "border-y": true,
	"decoration": true, "placeholder": true, "from": true, "via": true, "to": true,
}

// radiusRoots lists the border-radius namespaces.
var radiusRoots = map[string]bool{
	"rounded": true,
	"rounded-t": true, "rounded-r": true, "rounded-b": true, "rounded-l": true,
	"rounded-tl": true, "rounded-tr": true, "rounded-bl": true, "rounded-br": true,
	"rounded-s": true, "rounded-e": true,
	"rounded-ss": true, "rounded-se": true, "rounded-es": true, "rounded-ee": true,
}

// CanonicalizeClasses resolves the canonical spelling for each candidate.
// The result has one entry per input, in order. Tokens that are already
// canonical, unrecognized, or malformed come back unchanged.
func (s *System) CanonicalizeClasses(tokens []string, opts Options) []string {
	out := make([]string, len(tokens))
	for i, token := range tokens {
		out[i] = s.CanonicalizeClass(token, opts)
	}
	return out
}

// CanonicalizeClass resolves the canonical spelling for a single candidate.
func (s *System) CanonicalizeClass(token string, opts Options) string {
	cand, ok := parseCandidate(token)
	if !ok {
		return token
	}

	canonical, ok := s.canonicalValue(cand, opts)
	if !ok || canonical == cand.value {
		return token
	}

	return cand.rebuild(canonical)
}

// candidate is a decomposed class token: variants and markers around a
// root/value core.
type candidate struct {
	variants  string // "hover:focus:" including trailing colon
	important string // "!" when marked important
	bang      bangPos
	negative  bool
	root      string // "p", "bg", "rounded-tl"
	value     string // "4", "[4px]", "red-500", "" for bare roots
	arbitrary bool   // value was bracketed
	modifier  string // "/50" including slash
}

type bangPos int

const (
	bangNone bangPos = iota
	bangLeading
	bangTrailing
)

// parseCandidate splits a token into its grammar parts. Returns false when
// the token has no recognizable root, which the caller treats as
// "leave unchanged".
func parseCandidate(token string) (candidate, bool) {
	var c candidate
	rest := token

	// Variants: everything up to the last top-level colon. Colons inside
	// brackets (e.g. supports-[display:grid]) do not count.
	if idx := lastTopLevelColon(rest); idx >= 0 {
		c.variants = rest[:idx+1]
		rest = rest[idx+1:]
	}

	// Important marker, leading (v3 style) or trailing (v4 style). The
	// original position is preserved on rebuild.
	if strings.HasPrefix(rest, "!") {
		c.important = "!"
		c.bang = bangLeading
		rest = rest[1:]
	} else if strings.HasSuffix(rest, "!") {
		c.important = "!"
		c.bang = bangTrailing
		rest = strings.TrimSuffix(rest, "!")
	}

	if strings.HasPrefix(rest, "-") {
		c.negative = true
		rest = rest[1:]
	}

	if rest == "" {
		return candidate{}, false
	}

	// Opacity / arbitrary modifier after the value: bg-red-500/50.
	if idx := lastTopLevelSlash(rest); idx >= 0 {
		c.modifier = rest[idx:]
		rest = rest[:idx]
	}

	// Bracketed arbitrary value: root-[value].
	if idx := strings.Index(rest, "-["); idx >= 0 && strings.HasSuffix(rest, "]") {
		c.root = rest[:idx]
		c.value = rest[idx+1:]
		c.arbitrary = true
		return c, c.root != ""
	}

	// Plain value: find the longest known root prefix so gap-x-4 splits as
	// gap-x / 4 rather than gap / x-4.
	root, value := splitKnownRoot(rest)
	if root == "" {
		return candidate{}, false
	}
	c.root = root
	c.value = value
	return c, true
}

// lastTopLevelColon returns the index of the last ':' outside brackets.
func lastTopLevelColon(s string) int {
	depth := 0
	last := -1
	for i, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case ':':
			if depth == 0 {
				last = i
			}
		}
	}
	return last
}

// lastTopLevelSlash returns the index of the last '/' outside brackets.
func lastTopLevelSlash(s string) int {
	depth := 0
	last := -1
	for i, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case '/':
			if depth == 0 {
				last = i
			}
		}
	}
	return last
}

// splitKnownRoot finds the longest root in any namespace table such that the
// remainder is a value separated by '-'.
func splitKnownRoot(s string) (root, value string) {
	for i := len(s); i > 0; i-- {
		if i < len(s) && s[i] != '-' {
			continue
		}
		prefix := s[:i]
		if spacingRoots[prefix] || colorRoots[prefix] || radiusRoots[prefix] {
			if i == len(s) {
				return prefix, ""
			}
			return prefix, s[i+1:]
		}
	}
	return "", ""
}

// rebuild reassembles the token around a new canonical value.
func (c candidate) rebuild(value string) string {
	var b strings.Builder
	b.WriteString(c.variants)
	if c.bang == bangLeading {
		b.WriteString("!")
	}
	if c.negative {
		b.WriteString("-")
	}
	b.WriteString(c.root)
	if value != "" {
		b.WriteString("-")
		b.WriteString(value)
	}
	b.WriteString(c.modifier)
	if c.bang == bangTrailing {
		b.WriteString("!")
	}
	return b.String()
}

// canonicalValue resolves the canonical value for one candidate. The second
// return is false when the candidate is not a canonicalization target.
func (s *System) canonicalValue(c candidate, opts Options) (string, bool) {
	raw := c.value
	if raw == "" {
		return "", false
	}
	if c.arbitrary {
		raw = strings.TrimSuffix(strings.TrimPrefix(raw, "["), "]")
	}

	if spacingRoots[c.root] {
		if v, ok := s.canonicalSpacing(raw, c.arbitrary, opts); ok {
			return v, true
		}
	}
	if colorRoots[c.root] && c.arbitrary {
		if v, ok := s.canonicalColor(raw); ok {
			return v, true
		}
	}
	if radiusRoots[c.root] && c.arbitrary {
		if v, ok := s.canonicalRadius(raw, opts); ok {
			return v, true
		}
	}

	return "", false
}

// canonicalSpacing maps a length spelling to its bare scale number. Both the
// arbitrary form ([16px]) and the bare-unit form (16px) land here; a bare
// number is already canonical and is rejected so the caller leaves it alone.
func (s *System) canonicalSpacing(raw string, arbitrary bool, opts Options) (string, bool) {
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		// A bare number is already a scale spelling. The bracketed zero
		// ([0]) still canonicalizes to the plain 0.
		if arbitrary && v == 0 {
			return "0", true
		}
		return "", false
	}

	l, err := parseLength(raw)
	if err != nil {
		return "", false
	}
	if l.Value == 0 {
		return "0", true
	}
	if l.Value < 0 {
		// Negative lengths are spelled with the root sign (-m-4), not a
		// negative value.
		return "", false
	}

	root := opts.rootFontSize()
	units := l.Rem(root) / s.Spacing.Rem(root)

	// Only clean quarter steps have a scale spelling.
	q := units * 4
	if math.Abs(q-math.Round(q)) > 1e-9 {
		return "", false
	}

	return strconv.FormatFloat(units, 'f', -1, 64), true
}

// canonicalColor maps an arbitrary color value to its palette name.
func (s *System) canonicalColor(raw string) (string, bool) {
	decoded := decodeArbitrary(raw)
	if !looksLikeColor(decoded) {
		return "", false
	}

	name, ok := s.colorsByValue[NormalizeColor(decoded)]
	return name, ok
}

// canonicalRadius maps an arbitrary length to a named radius.
func (s *System) canonicalRadius(raw string, opts Options) (string, bool) {
	l, err := parseLength(raw)
	if err != nil {
		return "", false
	}

	root := opts.rootFontSize()
	rem := l.Rem(root)

	var best string
	found := false
	for name, rl := range s.Radii {
		if math.Abs(rl.Rem(root)-rem) < 1e-9 {
			if !found || name < best {
				best = name
				found = true
			}
		}
	}
	return best, found
}

// decodeArbitrary undoes the underscore-for-space encoding used inside
// bracketed values.
func decodeArbitrary(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == '_':
			b.WriteByte('_')
			i++
		case s[i] == '_':
			b.WriteByte(' ')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

var colorFunctions = []string{"rgb(", "rgba(", "hsl(", "hsla(", "oklch(", "oklab(", "lab(", "lch(", "color("}

func looksLikeColor(s string) bool {
	if strings.HasPrefix(s, "#") {
		return true
	}
	lower := strings.ToLower(s)
	for _, fn := range colorFunctions {
		if strings.HasPrefix(lower, fn) {
			return true
		}
	}
	return false
}

// NormalizeColor rewrites a color value into a comparable form: lowercase,
// collapsed whitespace, short hex expanded.
func NormalizeColor(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), " ")

	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		switch len(hex) {
		case 3, 4:
			var b strings.Builder
			b.WriteByte('#')
			for i := 0; i < len(hex); i++ {
				b.WriteByte(hex[i])
				b.WriteByte(hex[i])
			}
			return b.String()
		}
	}

	return s
}
