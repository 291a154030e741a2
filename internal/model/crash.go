package model

import "sort"

// CrashSnapshot is the set of crash report identifiers present at one point in time:
// host file paths for simulators, report names for devices.
type CrashSnapshot map[string]struct{}

// NewCrashSnapshot builds a snapshot from a list of identifiers. Blank entries are skipped.
func NewCrashSnapshot(ids ...string) CrashSnapshot {
	s := make(CrashSnapshot, len(ids))
	for _, id := range ids {
		if id != "" {
			s[id] = struct{}{}
		}
	}

	return s
}

// Contains reports whether id is part of the snapshot.
func (s CrashSnapshot) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Subtract returns the identifiers in s that are not in before, sorted.
func (s CrashSnapshot) Subtract(before CrashSnapshot) []string {
	var added []string

	for id := range s {
		if !before.Contains(id) {
			added = append(added, id)
		}
	}

	sort.Strings(added)

	return added
}
