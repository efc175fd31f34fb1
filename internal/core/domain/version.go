package domain

import (
	"strings"
)

// parsedVersion is the internal form of a version string: the numeric core
// padded to at least three components, plus optional prerelease identifiers.
type parsedVersion struct {
	core []int
	pre  []string // nil means no prerelease suffix
}

// parseVersion parses a version under the grammar: build metadata after "+" is
// stripped, a prerelease suffix follows the first "-", and the remaining
// numeric core is dot-separated all-digit components right-padded with zeros
// to length 3. ok is false when the string does not fit the grammar.
func parseVersion(version string) (parsedVersion, bool) {
	raw := strings.TrimSpace(version)
	if raw == "" {
		return parsedVersion{}, false
	}

	raw, _, _ = strings.Cut(raw, "+")

	var pre []string
	main := raw
	if idx := strings.Index(raw, "-"); idx >= 0 {
		main = raw[:idx]
		pre = []string{}
		for _, p := range strings.Split(raw[idx+1:], ".") {
			if p != "" {
				pre = append(pre, p)
			}
		}
	}

	parts := strings.Split(main, ".")
	core := make([]int, 0, max(len(parts), 3))
	for _, p := range parts {
		n, ok := parseAllDigits(p)
		if !ok {
			return parsedVersion{}, false
		}
		core = append(core, n)
	}
	for len(core) < 3 {
		core = append(core, 0)
	}

	return parsedVersion{core: core, pre: pre}, true
}

// parseAllDigits converts a non-empty all-digit string to an int.
func parseAllDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// CompareVersions totally orders two version strings. A release with no
// prerelease suffix is greater than the same release with one; prerelease
// identifiers compare pairwise with numeric identifiers ordered before
// non-numeric ones. If either input fails to parse under the version grammar,
// both are compared as plain strings instead. This lexical fallback is part of
// the contract and must never be replaced with an error.
func CompareVersions(a, b string) int {
	va, okA := parseVersion(a)
	vb, okB := parseVersion(b)
	if !okA || !okB {
		return strings.Compare(a, b)
	}

	if c := compareCores(va.core, vb.core); c != 0 {
		return c
	}

	switch {
	case va.pre == nil && vb.pre == nil:
		return 0
	case va.pre == nil:
		return 1
	case vb.pre == nil:
		return -1
	}

	return comparePrereleases(va.pre, vb.pre)
}

func compareCores(a, b []int) int {
	n := max(len(a), len(b))
	for i := 0; i < n; i++ {
		if i >= len(a) {
			return -1
		}
		if i >= len(b) {
			return 1
		}
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func comparePrereleases(a, b []string) int {
	n := max(len(a), len(b))
	for i := 0; i < n; i++ {
		if i >= len(a) {
			return -1
		}
		if i >= len(b) {
			return 1
		}

		x, y := a[i], b[i]
		xn, xNum := parseAllDigits(x)
		yn, yNum := parseAllDigits(y)
		switch {
		case xNum && yNum:
			if xn != yn {
				if xn < yn {
					return -1
				}
				return 1
			}
		case xNum:
			// A numeric identifier is always less than a non-numeric one.
			return -1
		case yNum:
			return 1
		default:
			if c := strings.Compare(x, y); c != 0 {
				return c
			}
		}
	}
	return 0
}
