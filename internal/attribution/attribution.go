// Package attribution maps inbound GitHub commits to known developer
// profiles and classifies commit messages into change types. Both are
// pure functions over declarative data so the matching rules can be
// tested without any I/O.
package attribution

import (
	"fmt"
	"strings"
)

// Commit is the author metadata of one inbound commit.
type Commit struct {
	AuthorName     string
	AuthorUsername string
	Message        string
}

// Profile is the subset of a developer profile the matcher needs.
type Profile struct {
	ID            uint
	Username      string
	DeveloperType string
}

// AliasTable maps a developer tag to the substrings that identify that
// developer in commit author metadata, beyond the username itself.
type AliasTable map[string][]string

// DefaultAliases returns the built-in alias table: each developer's
// nickname plus the first name they commit under.
func DefaultAliases() AliasTable {
	return AliasTable{
		"astro":  {"astro", "mp"},
		"bungee": {"bungee", "max"},
	}
}

// ParseAliases parses an alias specification of the form
// "tag:alias|alias;tag:alias". An empty spec yields the defaults.
func ParseAliases(spec string) (AliasTable, error) {
	if strings.TrimSpace(spec) == "" {
		return DefaultAliases(), nil
	}

	table := AliasTable{}
	for _, entry := range strings.Split(spec, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		tag, rawAliases, found := strings.Cut(entry, ":")
		tag = strings.TrimSpace(strings.ToLower(tag))
		if !found || tag == "" {
			return nil, fmt.Errorf("attribution: malformed alias entry %q", entry)
		}

		var aliases []string
		for _, a := range strings.Split(rawAliases, "|") {
			a = strings.TrimSpace(strings.ToLower(a))
			if a != "" {
				aliases = append(aliases, a)
			}
		}
		if len(aliases) == 0 {
			return nil, fmt.Errorf("attribution: no aliases for tag %q", tag)
		}
		table[tag] = aliases
	}

	return table, nil
}

// IsMergeCommit reports whether the commit is a merge commit, which is
// always skipped regardless of author match.
func IsMergeCommit(message string) bool {
	return strings.HasPrefix(message, "Merge branch")
}

// Match returns the first profile, in slice order, that the commit's
// author metadata matches. A profile matches when the author name or
// username contains the profile's username, or when the author name
// contains one of the aliases registered for the profile's developer
// tag. Matching is case-insensitive literal substring containment; ties
// are broken by enumeration order. Returns (nil, false) when nothing
// matches, in which case the caller is expected to skip the commit.
func Match(commit Commit, profiles []Profile, aliases AliasTable) (*Profile, bool) {
	if IsMergeCommit(commit.Message) {
		return nil, false
	}

	name := strings.ToLower(commit.AuthorName)
	username := strings.ToLower(commit.AuthorUsername)

	for i := range profiles {
		p := &profiles[i]

		pu := strings.ToLower(p.Username)
		if pu != "" && (strings.Contains(name, pu) || strings.Contains(username, pu)) {
			return p, true
		}

		for _, alias := range aliases[strings.ToLower(p.DeveloperType)] {
			if strings.Contains(name, alias) {
				return p, true
			}
		}
	}

	return nil, false
}
