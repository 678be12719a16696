package git

import (
	"fmt"
	"regexp"

	gogit "github.com/go-git/go-git/v5"

	"git.home.luguber.info/inful/readmepin/internal/errors"
)

// RepoInfo identifies a repository snapshot. Resolved once per
// invocation and read-only thereafter.
type RepoInfo struct {
	Repo string // "owner/name" pair parsed from the remote URL
	Ref  string // commit hash of the checked-out HEAD
}

// Locate resolves RepoInfo from the repository enclosing dir.
func Locate(dir, remoteName, host string) (*RepoInfo, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, unavailable(err, "not inside a git repository")
	}

	remote, err := repo.Remote(remoteName)
	if err != nil {
		return nil, unavailable(err, "remote not configured").WithContext("remote", remoteName)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return nil, unavailable(nil, "remote has no URL").WithContext("remote", remoteName)
	}

	repoPath, ok := ParseRemoteURL(urls[0], host)
	if !ok {
		return nil, unavailable(nil, "remote URL does not match host").
			WithContext("url", urls[0]).
			WithContext("host", host)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, unavailable(err, "no revision to pin (repository has no commits?)")
	}

	return &RepoInfo{Repo: repoPath, Ref: head.Hash().String()}, nil
}

// ParseRemoteURL extracts the "owner/name" pair from a remote URL
// anchored on host. Both transport forms are accepted:
//
//	https://host/owner/repo(.git)
//	user@host:owner/repo(.git)
func ParseRemoteURL(remoteURL, host string) (string, bool) {
	re := regexp.MustCompile(regexp.QuoteMeta(host) + `[:/](.+?)(?:\.git)?$`)
	m := re.FindStringSubmatch(remoteURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func unavailable(cause error, detail string) *errors.HookError {
	msg := fmt.Sprintf("repository info unavailable: %s", detail)
	if cause != nil {
		return errors.Wrap(cause, errors.CategoryGit, errors.SeverityWarning, msg)
	}
	return errors.New(errors.CategoryGit, errors.SeverityWarning, msg)
}
