// Package git resolves the identity of the enclosing repository: the
// owner/name pair parsed from the configured remote URL and the commit
// hash of the checked-out HEAD.
//
// All failures (not a repository, remote missing or not matching the
// recognized host, no commits yet) are reported uniformly as a
// "repository info unavailable" error so callers can decide whether the
// condition is fatal for the run.
package git
