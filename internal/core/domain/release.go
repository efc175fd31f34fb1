package domain

// DependencySpec is an edge declared by a release. ReleaseVersion is an exact
// pin, VersionRequirement a range; when both are empty the dependency is
// unconstrained ("latest").
type DependencySpec struct {
	Ref                SkillRef
	VersionRequirement string
	ReleaseVersion     string
}

// Release is one published version of a skill, together with its declared
// dependency edges. ContentHash and DownloadLocator are optional: a list
// response may omit the locator, in which case the resolver re-fetches the
// release by exact version to hydrate it.
type Release struct {
	Ref             SkillRef
	Version         string
	Dependencies    []DependencySpec
	ContentHash     string
	DownloadLocator string
}

// HasDownloadLocator reports whether the release has a retrievable archive.
func (r Release) HasDownloadLocator() bool {
	return r.DownloadLocator != ""
}

// Requirements converts the dependency edges of a release into requirements
// tagged with the release as source. An exact ReleaseVersion takes precedence
// as an "=" constraint; a missing constraint means "latest". A spec that pins
// an exact version and also carries a range contributes both.
func (r Release) Requirements(dep DependencySpec) []Requirement {
	source := r.Ref.Key() + "@" + r.Version
	var reqs []Requirement
	if dep.ReleaseVersion != "" {
		reqs = append(reqs, Requirement{Specifier: "=" + dep.ReleaseVersion, Source: source})
	}
	if dep.VersionRequirement != "" {
		reqs = append(reqs, Requirement{Specifier: dep.VersionRequirement, Source: source})
	}
	if len(reqs) == 0 {
		reqs = append(reqs, Requirement{Specifier: RequirementLatest, Source: source})
	}
	return reqs
}
