// Package git answers the two questions wut asks about the current directory:
// where is the repository root, and which repository is it.
//
// All operations call the git CLI directly rather than using Go git
// libraries, so user configuration (insteadOf rewrites, includes, safe
// directories) is honoured exactly as the user's shell would see it.
//
//   - [RepoRoot]: absolute path of the work tree root
//   - [OriginURL]: the origin remote URL
//   - [ParseRepoKey]: "owner/project" from an SSH, ssh:// or HTTP(S) URL
//   - [Detect]: all of the above in one call
package git
