// Package domain contains the core record model for recordsort.
//
// The domain is transport- and persistence-agnostic: it does not depend on net/http,
// YAML parsing, or the filesystem. Parsing a single line lives here because it is
// pure; reading files is an infra concern (see infra/recordfile).
package domain
