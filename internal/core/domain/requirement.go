package domain

import (
	"fmt"
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// RequirementLatest is the normalized form of an empty or absent specifier.
const RequirementLatest = "latest"

// SourceDirect labels a requirement coming from the manifest's direct map.
// Transitive requirements are labeled "<key>@<version>" of the declaring release.
const SourceDirect = "direct"

// Requirement is a version constraint together with a label identifying its
// origin. The source is used only for diagnostics.
type Requirement struct {
	Specifier string
	Source    string
}

var comparatorRe = regexp.MustCompile(`^(>=|<=|>|<|==|=)?\s*([0-9A-Za-z][0-9A-Za-z.\-+]*)$`)

// NormalizeRequirement maps an empty or blank specifier to "latest".
func NormalizeRequirement(value string) string {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return RequirementLatest
	}
	return raw
}

// SplitSpecifier expands a specifier into its comparator tokens. Tokens are
// separated by whitespace or commas; caret and tilde shorthands expand to a
// lower and an upper comparator bound. An empty specifier yields ["latest"].
func SplitSpecifier(specifier string) ([]string, error) {
	s := strings.TrimSpace(specifier)
	if s == "" {
		return []string{RequirementLatest}, nil
	}
	s = strings.ReplaceAll(s, ",", " ")
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return []string{RequirementLatest}, nil
	}

	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		switch {
		case strings.HasPrefix(token, "^"):
			expanded, err := expandCaret(token)
			if err != nil {
				return nil, err
			}
			out = append(out, expanded...)
		case strings.HasPrefix(token, "~"):
			expanded, err := expandTilde(token)
			if err != nil {
				return nil, err
			}
			out = append(out, expanded...)
		default:
			out = append(out, token)
		}
	}
	return out, nil
}

// expandCaret turns ^X.Y.Z into a >= lower bound and a < upper bound at the
// next major (or minor, or patch when the leading components are zero).
func expandCaret(token string) ([]string, error) {
	base := strings.TrimSpace(token[1:])
	v, ok := parseVersion(base)
	if !ok {
		return nil, zerr.With(ErrInvalidRequirement, "requirement", token)
	}
	major, minor, patch := v.core[0], v.core[1], v.core[2]
	lower := fmt.Sprintf(">=%d.%d.%d", major, minor, patch)
	var upper string
	switch {
	case major > 0:
		upper = fmt.Sprintf("<%d.0.0", major+1)
	case minor > 0:
		upper = fmt.Sprintf("<0.%d.0", minor+1)
	default:
		upper = fmt.Sprintf("<0.0.%d", patch+1)
	}
	return []string{lower, upper}, nil
}

// expandTilde turns ~X.Y.Z into >=X.Y.Z and <X.(Y+1).0.
func expandTilde(token string) ([]string, error) {
	base := strings.TrimSpace(token[1:])
	v, ok := parseVersion(base)
	if !ok {
		return nil, zerr.With(ErrInvalidRequirement, "requirement", token)
	}
	major, minor, patch := v.core[0], v.core[1], v.core[2]
	return []string{
		fmt.Sprintf(">=%d.%d.%d", major, minor, patch),
		fmt.Sprintf("<%d.%d.0", major, minor+1),
	}, nil
}

// Satisfies reports whether a version satisfies the logical AND of every token
// of the specifier. It errors only when a caret or tilde token has a malformed
// base; a token that merely fails the comparator grammar is unsatisfiable.
func Satisfies(version, specifier string) (bool, error) {
	tokens, err := SplitSpecifier(specifier)
	if err != nil {
		return false, err
	}

	for _, token := range tokens {
		t := strings.ToLower(strings.TrimSpace(token))
		if t == RequirementLatest || t == "*" {
			continue
		}

		m := comparatorRe.FindStringSubmatch(strings.TrimSpace(token))
		if m == nil {
			return false, nil
		}
		op := m[1]
		if op == "" {
			op = "="
		}
		rhs := m[2]
		cmp := CompareVersions(version, rhs)

		switch op {
		case "=", "==":
			if cmp != 0 {
				return false, nil
			}
		case ">":
			if cmp <= 0 {
				return false, nil
			}
		case ">=":
			if cmp < 0 {
				return false, nil
			}
		case "<":
			if cmp >= 0 {
				return false, nil
			}
		case "<=":
			if cmp > 0 {
				return false, nil
			}
		default:
			return false, nil
		}
	}
	return true, nil
}

// SatisfiesAll reports whether a version satisfies every requirement.
func SatisfiesAll(version string, requirements []Requirement) (bool, error) {
	for _, r := range requirements {
		ok, err := Satisfies(version, r.Specifier)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// ExtractExactVersion returns the version a specifier pins, or "" when the
// specifier does not reduce to a single =/== token. It backs the resolver's
// point-lookup fast path and its exact-pin conflict detection.
func ExtractExactVersion(specifier string) string {
	tokens, err := SplitSpecifier(specifier)
	if err != nil || len(tokens) != 1 {
		return ""
	}
	token := strings.TrimSpace(tokens[0])
	if token == "" {
		return ""
	}
	lower := strings.ToLower(token)
	if lower == RequirementLatest || lower == "*" {
		return ""
	}
	switch token[0] {
	case '^', '~', '>', '<':
		return ""
	}

	m := comparatorRe.FindStringSubmatch(token)
	if m == nil {
		return ""
	}
	if m[1] == "" || m[1] == "=" || m[1] == "==" {
		return m[2]
	}
	return ""
}

// FormatRequirements renders a constraint list for diagnostics, one
// "specifier (from source)" entry per requirement.
func FormatRequirements(requirements []Requirement) string {
	if len(requirements) == 0 {
		return "<none>"
	}
	parts := make([]string, len(requirements))
	for i, r := range requirements {
		parts[i] = fmt.Sprintf("%s (from %s)", r.Specifier, r.Source)
	}
	return strings.Join(parts, ", ")
}
