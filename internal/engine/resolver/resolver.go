// Package resolver implements backtracking dependency resolution over the
// release catalog: a depth-first search that selects exactly one release per
// skill key satisfying every accumulated version requirement.
package resolver

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sort"

	"go.skilldock.io/skilldock/internal/core/domain"
	"go.skilldock.io/skilldock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver resolves a set of direct requirements into a consistent graph.
// It holds no per-call state; every Resolve invocation carries its own search
// state so callers may reuse one Resolver across reconciles.
type Resolver struct {
	repo ports.ReleaseRepository
}

// New creates a Resolver backed by the given release repository. Callers that
// resolve repeatedly should hand in a memoizing repository scoped to the call.
func New(repo ports.ReleaseRepository) *Resolver {
	return &Resolver{repo: repo}
}

// Solution is a successful resolution: exactly one release per reachable key,
// plus the constraints accumulated for each key (kept for diagnostics).
type Solution struct {
	Selected    map[string]domain.Release
	Constraints map[string][]domain.Requirement
}

// state is one branch of the search. Branches never share mutable state:
// taking a candidate clones the maps and slices it will touch, so a failed
// branch cannot leak partial mutations into its siblings.
type state struct {
	selected    map[string]domain.Release
	constraints map[string][]domain.Requirement
	pending     []string
}

func (s state) clone() state {
	constraints := make(map[string][]domain.Requirement, len(s.constraints))
	for k, v := range s.constraints {
		constraints[k] = slices.Clone(v)
	}
	return state{
		selected:    maps.Clone(s.selected),
		constraints: constraints,
		pending:     slices.Clone(s.pending),
	}
}

// Resolve runs the search for the given direct requirement map (skill key to
// specifier). The returned error is structured: *domain.ConflictError is
// fatal and never backtracked around, while candidate failures
// (*domain.NotFoundError, *domain.NoCandidateError, *domain.NoDownloadableError)
// surface as the most recent failure once the search space is exhausted.
func (r *Resolver) Resolve(ctx context.Context, direct map[string]string) (*Solution, error) {
	root := state{
		selected:    map[string]domain.Release{},
		constraints: map[string][]domain.Requirement{},
	}

	for _, key := range sortedKeys(direct) {
		ref, err := domain.ParseSkillRef(key)
		if err != nil {
			return nil, err
		}
		root.constraints[ref.Key()] = append(root.constraints[ref.Key()], domain.Requirement{
			Specifier: domain.NormalizeRequirement(direct[key]),
			Source:    domain.SourceDirect,
		})
		if !slices.Contains(root.pending, ref.Key()) {
			root.pending = append(root.pending, ref.Key())
		}
	}

	search := &search{repo: r.repo}
	solution, err := search.run(ctx, root)
	if err != nil {
		return nil, err
	}
	if solution == nil {
		if search.lastErr != nil {
			return nil, zerr.Wrap(search.lastErr, domain.ErrUnresolvable.Error())
		}
		return nil, domain.ErrUnresolvable
	}
	return solution, nil
}

// search carries the cross-branch bookkeeping of one Resolve call: the most
// recent candidate failure, reported when the whole space is exhausted.
type search struct {
	repo    ports.ReleaseRepository
	lastErr error
}

// run performs one depth-first step. A nil, nil return means this branch is
// exhausted; a non-nil error aborts the entire search.
func (s *search) run(ctx context.Context, st state) (*Solution, error) {
	selected := maps.Clone(st.selected)
	pending := dedupe(st.pending)

	// Constraints may have tightened since a key was selected. Re-validate
	// every selection and re-queue the ones that no longer fit.
	for _, key := range sortedKeys(selected) {
		ok, err := domain.SatisfiesAll(selected[key].Version, st.constraints[key])
		if err != nil {
			return nil, err
		}
		if ok {
			continue
		}
		delete(selected, key)
		if !slices.Contains(pending, key) {
			pending = append([]string{key}, pending...)
		}
	}

	if len(pending) == 0 {
		return &Solution{Selected: selected, Constraints: st.constraints}, nil
	}

	key := pending[0]
	rest := pending[1:]
	ref, err := domain.ParseSkillRef(key)
	if err != nil {
		return nil, err
	}
	reqs := st.constraints[key]

	candidates, err := s.candidates(ctx, ref, reqs)
	if err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			// Irreconcilable exact pins are never backtracked around.
			return nil, err
		}
		s.lastErr = err
		return nil, nil
	}

	for _, candidate := range candidates {
		next := state{selected: selected, constraints: st.constraints, pending: rest}.clone()
		next.selected[key] = candidate

		for _, dep := range candidate.Dependencies {
			depKey := dep.Ref.Key()
			next.constraints[depKey] = append(next.constraints[depKey], candidate.Requirements(dep)...)

			if sel, found := next.selected[depKey]; found {
				ok, err := domain.SatisfiesAll(sel.Version, next.constraints[depKey])
				if err != nil {
					return nil, err
				}
				if !ok {
					delete(next.selected, depKey)
				}
			}
			if _, found := next.selected[depKey]; !found && !slices.Contains(next.pending, depKey) {
				next.pending = append(next.pending, depKey)
			}
		}

		solution, err := s.run(ctx, next)
		if err != nil {
			return nil, err
		}
		if solution != nil {
			return solution, nil
		}
	}

	return nil, nil
}

// candidates computes the ordered candidate releases for a key: exact-pin
// conflict detection first, then the point-lookup fast path, then the full
// list sorted by version descending, filtered by the constraints, and
// hydrated so that every returned candidate has a download locator.
func (s *search) candidates(ctx context.Context, ref domain.SkillRef, reqs []domain.Requirement) ([]domain.Release, error) {
	exact := exactVersions(reqs)
	if len(exact) > 1 {
		return nil, &domain.ConflictError{Key: ref.Key(), Versions: exact, Constraints: reqs}
	}

	// Fast path: a single exact pin prefers a direct point lookup. Some
	// catalogs expose GET /releases/{version} but no usable list endpoint.
	if len(exact) == 1 {
		rel, found, err := s.repo.GetRelease(ctx, ref, exact[0])
		if err != nil {
			return nil, err
		}
		if found {
			ok, err := domain.SatisfiesAll(rel.Version, reqs)
			if err != nil {
				return nil, err
			}
			if ok && rel.HasDownloadLocator() {
				return []domain.Release{rel}, nil
			}
		}
	}

	releases, err := s.repo.ListReleases(ctx, ref)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(releases, func(i, j int) bool {
		return domain.CompareVersions(releases[i].Version, releases[j].Version) > 0
	})

	var matched []domain.Release
	for _, rel := range releases {
		ok, err := domain.SatisfiesAll(rel.Version, reqs)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, rel)
		}
	}

	var filtered []domain.Release
	for _, rel := range matched {
		hydrated, err := s.hydrate(ctx, rel)
		if err != nil {
			return nil, err
		}
		if hydrated.HasDownloadLocator() {
			filtered = append(filtered, hydrated)
		}
	}
	if len(filtered) > 0 {
		return filtered, nil
	}

	if len(matched) > 0 {
		versions := make([]string, 0, len(matched))
		for _, rel := range matched {
			if !slices.Contains(versions, rel.Version) {
				versions = append(versions, rel.Version)
			}
		}
		return nil, &domain.NoDownloadableError{Key: ref.Key(), Versions: versions, Constraints: reqs}
	}

	return nil, &domain.NoCandidateError{Key: ref.Key(), Constraints: reqs}
}

// hydrate re-fetches a release by exact version when the list response omitted
// its download locator. The hydrated release is kept only when it clearly
// describes the same release.
func (s *search) hydrate(ctx context.Context, rel domain.Release) (domain.Release, error) {
	if rel.HasDownloadLocator() {
		return rel, nil
	}
	hydrated, found, err := s.repo.GetRelease(ctx, rel.Ref, rel.Version)
	if err != nil {
		return domain.Release{}, err
	}
	if !found {
		return rel, nil
	}
	if hydrated.Ref.Key() != rel.Ref.Key() {
		return rel, nil
	}
	if domain.CompareVersions(hydrated.Version, rel.Version) != 0 {
		return rel, nil
	}
	return hydrated, nil
}

// exactVersions collects the distinct exact pins in a constraint list, sorted.
func exactVersions(reqs []domain.Requirement) []string {
	var versions []string
	for _, r := range reqs {
		if v := domain.ExtractExactVersion(r.Specifier); v != "" && !slices.Contains(versions, v) {
			versions = append(versions, v)
		}
	}
	slices.Sort(versions)
	return versions
}

func sortedKeys[V any](m map[string]V) []string {
	keys := slices.Collect(maps.Keys(m))
	slices.Sort(keys)
	return keys
}

func dedupe(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if !slices.Contains(out, k) {
			out = append(out, k)
		}
	}
	return out
}
