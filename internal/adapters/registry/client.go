// Package registry implements the release repository against the skilldock
// registry HTTP API.
package registry

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.skilldock.io/skilldock/internal/core/domain"
	"go.skilldock.io/skilldock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReleaseRepository = (*Client)(nil)

const defaultPerPage = 100

// archiveFileKinds are the release file kinds treated as installable
// archives, in order of preference within a file list.
var archiveFileKinds = map[string]bool{
	"archive": true,
	"source":  true,
	"zip":     true,
}

// Client talks to a skilldock registry. Every API response is wrapped in a
// {success, data, error} envelope; a 404 maps to domain.NotFoundError.
type Client struct {
	base    *url.URL
	token   string
	client  *http.Client
	perPage int
}

// NewClient creates a Client for the given registry base URL. A nil
// httpClient falls back to a client with a sane timeout.
func NewClient(baseURL, token string, httpClient *http.Client) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error())
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, zerr.With(domain.ErrRegistryRequestFailed, "url", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{base: base, token: token, client: httpClient, perPage: defaultPerPage}, nil
}

// ListReleases fetches every release of a skill, following pagination.
func (c *Client) ListReleases(ctx context.Context, ref domain.SkillRef) ([]domain.Release, error) {
	var out []domain.Release
	for page := 1; ; page++ {
		endpoint := fmt.Sprintf("%s/v1/skills/%s/%s/releases?page=%d&per_page=%d",
			c.base, url.PathEscape(ref.Namespace), url.PathEscape(ref.Slug), page, c.perPage)

		var pageData releasePage
		if err := c.getJSON(ctx, endpoint, ref.Key(), &pageData); err != nil {
			return nil, err
		}
		for _, payload := range pageData.Releases {
			if rel, ok := payload.toRelease(ref); ok {
				out = append(out, rel)
			}
		}
		if !pageData.HasMore {
			return out, nil
		}
	}
}

// GetRelease fetches one release by exact version. Registries without a point
// lookup endpoint answer 404; the client then falls back to scanning the list.
func (c *Client) GetRelease(ctx context.Context, ref domain.SkillRef, version string) (domain.Release, bool, error) {
	endpoint := fmt.Sprintf("%s/v1/skills/%s/%s/releases/%s",
		c.base, url.PathEscape(ref.Namespace), url.PathEscape(ref.Slug), url.PathEscape(version))

	var payload releasePayload
	if err := c.getJSON(ctx, endpoint, ref.Key(), &payload); err != nil {
		var notFound *domain.NotFoundError
		if !errors.As(err, &notFound) {
			return domain.Release{}, false, err
		}
		releases, lerr := c.ListReleases(ctx, ref)
		if lerr != nil {
			return domain.Release{}, false, lerr
		}
		for _, rel := range releases {
			if domain.CompareVersions(rel.Version, version) == 0 {
				return rel, true, nil
			}
		}
		return domain.Release{}, false, nil
	}

	rel, ok := payload.toRelease(ref)
	if !ok {
		return domain.Release{}, false, nil
	}
	return rel, true, nil
}

// DownloadArchive fetches the release archive and verifies its checksum when
// the release carries one. A release without a locator is refreshed once
// before giving up.
func (c *Client) DownloadArchive(ctx context.Context, release domain.Release) ([]byte, error) {
	rel := release
	if !rel.HasDownloadLocator() {
		fresh, found, err := c.GetRelease(ctx, rel.Ref, rel.Version)
		if err != nil {
			return nil, err
		}
		if found {
			rel = fresh
		}
	}
	if !rel.HasDownloadLocator() {
		return nil, &domain.NoLocatorError{Key: rel.Ref.Key(), Version: rel.Version}
	}

	target, err := c.base.Parse(rel.DownloadLocator)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error())
	}
	// The token is only ever presented to the registry itself, never to a
	// third-party download host.
	if c.token != "" && target.Scheme == c.base.Scheme && target.Host == c.base.Host {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, zerr.With(zerr.With(domain.ErrRegistryRequestFailed,
			"status", strconv.Itoa(resp.StatusCode)), "url", target.String())
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error())
	}

	if rel.ContentHash != "" {
		sum := sha256.Sum256(data)
		actual := hex.EncodeToString(sum[:])
		if !strings.EqualFold(actual, rel.ContentHash) {
			return nil, zerr.With(zerr.With(zerr.With(domain.ErrChecksumMismatch,
				"skill", rel.Ref.Key()), "expected", rel.ContentHash), "actual", actual)
		}
	}
	return data, nil
}

// getJSON performs an authenticated GET against the registry API, unwraps the
// response envelope and decodes the data payload into dst.
func (c *Client) getJSON(ctx context.Context, endpoint, key string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error())
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return &domain.NotFoundError{Key: key}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error())
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return zerr.Wrap(err, domain.ErrRegistryDecodeFailed.Error())
	}
	if resp.StatusCode != http.StatusOK || !env.Success {
		return zerr.With(zerr.With(domain.ErrRegistryAPIError,
			"status", strconv.Itoa(resp.StatusCode)), "message", env.Error)
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		return zerr.Wrap(err, domain.ErrRegistryDecodeFailed.Error())
	}
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type releasePage struct {
	Releases []releasePayload `json:"releases"`
	HasMore  bool             `json:"has_more"`
}

type releasePayload struct {
	Version      string            `json:"version"`
	Dependencies []json.RawMessage `json:"dependencies"`
	Files        []filePayload     `json:"files"`
	DownloadURL  string            `json:"download_url"`
	SHA256       string            `json:"sha256"`
}

type filePayload struct {
	Kind        string `json:"kind"`
	DownloadURL string `json:"download_url"`
	SHA256      string `json:"sha256"`
}

type dependencyPayload struct {
	Skill              string `json:"skill"`
	Namespace          string `json:"namespace"`
	Slug               string `json:"slug"`
	VersionRequirement string `json:"version_requirement"`
	ReleaseVersion     string `json:"release_version"`
}

// toRelease converts an API payload into a domain release. Payloads without a
// version are dropped rather than surfaced as broken releases.
func (p releasePayload) toRelease(ref domain.SkillRef) (domain.Release, bool) {
	if p.Version == "" {
		return domain.Release{}, false
	}

	rel := domain.Release{Ref: ref, Version: p.Version}

	locator, hash := p.DownloadURL, p.SHA256
	if file, ok := pickArchiveFile(p.Files); ok {
		locator, hash = file.DownloadURL, file.SHA256
	}
	rel.DownloadLocator = locator
	rel.ContentHash = hash

	for _, raw := range p.Dependencies {
		if dep, ok := parseDependency(raw); ok {
			rel.Dependencies = append(rel.Dependencies, dep)
		}
	}
	return rel, true
}

// pickArchiveFile selects the downloadable file of a release: the first entry
// with an archive kind, else the first entry carrying a download URL at all.
func pickArchiveFile(files []filePayload) (filePayload, bool) {
	for _, f := range files {
		if archiveFileKinds[strings.ToLower(f.Kind)] && f.DownloadURL != "" {
			return f, true
		}
	}
	for _, f := range files {
		if f.DownloadURL != "" {
			return f, true
		}
	}
	return filePayload{}, false
}

// parseDependency accepts both dependency encodings used by the API: a bare
// string "ns/slug@requirement" or a structured object.
func parseDependency(raw json.RawMessage) (domain.DependencySpec, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		key, requirement := s, ""
		if at := strings.LastIndex(s, "@"); at > 0 {
			key, requirement = s[:at], s[at+1:]
		}
		ref, err := domain.ParseSkillRef(key)
		if err != nil {
			return domain.DependencySpec{}, false
		}
		return domain.DependencySpec{Ref: ref, VersionRequirement: requirement}, true
	}

	var obj dependencyPayload
	if err := json.Unmarshal(raw, &obj); err != nil {
		return domain.DependencySpec{}, false
	}
	key := obj.Skill
	if key == "" && obj.Namespace != "" && obj.Slug != "" {
		key = obj.Namespace + "/" + obj.Slug
	}
	ref, err := domain.ParseSkillRef(key)
	if err != nil {
		return domain.DependencySpec{}, false
	}
	return domain.DependencySpec{
		Ref:                ref,
		VersionRequirement: obj.VersionRequirement,
		ReleaseVersion:     obj.ReleaseVersion,
	}, true
}
