package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedVersion is returned when a version string is not dotted numeric.
var ErrMalformedVersion = errors.New("malformed version")

// Version is a parsed dotted numeric version such as 14.2 or 10.3.1.
type Version []int

// ParseVersion parses a dotted numeric version. Missing components compare as zero.
func ParseVersion(value string) (Version, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("%w: empty", ErrMalformedVersion)
	}

	parts := strings.Split(value, ".")
	version := make(Version, 0, len(parts))

	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedVersion, value)
		}

		version = append(version, n)
	}

	return version, nil
}

// MustParseVersion is like ParseVersion but panics on error. Intended for constants and tests.
func MustParseVersion(value string) Version {
	v, err := ParseVersion(value)
	if err != nil {
		panic(err)
	}

	return v
}

// Compare returns -1, 0 or 1.
func (v Version) Compare(other Version) int {
	n := max(len(v), len(other))
	for i := range n {
		a, b := v.at(i), other.at(i)
		if a < b {
			return -1
		}

		if a > b {
			return 1
		}
	}

	return 0
}

// Equal reports whether both versions denote the same release ("14.2" equals "14.2.0").
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Canonical is the version without trailing zero components, so that versions that are
// Equal have the same Canonical form ("14.2.0" gives "14.2").
func (v Version) Canonical() string {
	n := len(v)
	for n > 1 && v[n-1] == 0 {
		n--
	}

	return v[:n].String()
}

func (v Version) at(i int) int {
	if i < len(v) {
		return v[i]
	}

	return 0
}

func (v Version) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, ".")
}
