// Package domain holds the core types and version logic for skilldock.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// SkillRef identifies a skill package by namespace and slug.
// The pair is globally unique.
type SkillRef struct {
	Namespace string
	Slug      string
}

// Key returns the canonical "namespace/slug" identity of the skill.
func (r SkillRef) Key() string {
	return r.Namespace + "/" + r.Slug
}

// String implements fmt.Stringer.
func (r SkillRef) String() string {
	return r.Key()
}

// ParseSkillRef parses a "namespace/slug" identifier into a SkillRef.
func ParseSkillRef(value string) (SkillRef, error) {
	raw := strings.TrimSpace(value)
	namespace, slug, found := strings.Cut(raw, "/")
	if !found {
		return SkillRef{}, zerr.With(ErrInvalidSkillRef, "identifier", value)
	}
	namespace = strings.TrimSpace(namespace)
	slug = strings.TrimSpace(slug)
	if namespace == "" || slug == "" {
		return SkillRef{}, zerr.With(ErrInvalidSkillRef, "identifier", value)
	}
	return SkillRef{Namespace: namespace, Slug: slug}, nil
}

// SplitInstallArg splits an install argument of the form "namespace/slug@spec"
// into the skill identifier and the version requirement. A requirement passed
// separately (for example via a --version flag) may not be combined with the
// @spec shorthand.
func SplitInstallArg(skill, requirement string) (string, string, error) {
	value := strings.TrimSpace(skill)
	if value == "" {
		return "", "", zerr.With(ErrInvalidSkillRef, "identifier", skill)
	}

	if at := strings.LastIndex(value, "@"); at > 0 {
		shorthandSkill := strings.TrimSpace(value[:at])
		shorthandReq := strings.TrimSpace(value[at+1:])
		if strings.Contains(shorthandSkill, "/") && shorthandReq != "" {
			if requirement != "" {
				return "", "", ErrAmbiguousVersionArg
			}
			return shorthandSkill, shorthandReq, nil
		}
	}

	return value, requirement, nil
}
