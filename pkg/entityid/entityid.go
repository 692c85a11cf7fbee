// Copyright (c) 2026 F3 Nation. All rights reserved.

// Package entityid generates and inspects prefixed entity identifiers.
//
// # Format
//
// Every entity ID is "<prefix>_<uuid>", e.g. "pax_0191c2ae-…". The prefix
// identifies the entity type at a glance and survives renames; it is purely
// informational and is re-derived by string matching, never cryptographically
// enforced.
package entityid

import (
	"strings"

	"github.com/google/uuid"
)

// Standard prefixes for entity IDs.
const (
	PrefixOrg           = "org"
	PrefixPerson        = "per"
	PrefixPax           = "pax"
	PrefixLocation      = "loc"
	PrefixEventSeries   = "evs"
	PrefixEventInstance = "evt"
	PrefixAttendance    = "att"
	PrefixTaxonomyTerm  = "tax"
)

// knownPrefixes is the closed table used by [Prefix] and [EntityType].
var knownPrefixes = map[string]string{
	PrefixOrg:           "org",
	PrefixPerson:        "person",
	PrefixPax:           "pax",
	PrefixLocation:      "location",
	PrefixEventSeries:   "eventSeries",
	PrefixEventInstance: "eventInstance",
	PrefixAttendance:    "attendance",
	PrefixTaxonomyTerm:  "taxonomyTerm",
}

// New generates a prefixed entity ID.
//
// # Safety
//
// The UUID source panics only if the OS random source is unavailable, which
// is an unrecoverable system-level condition.
func New(prefix string) string {
	base, err := uuid.NewV7()
	if err != nil {
		// Extremely rare; fall back to the v4 generator which panics itself
		// if entropy is truly exhausted.
		return prefix + "_" + uuid.NewString()
	}
	return prefix + "_" + base.String()
}

// NewOrgID generates a new Organization ID.
func NewOrgID() string { return New(PrefixOrg) }

// NewPersonID generates a new Person ID (non-PAX contact).
func NewPersonID() string { return New(PrefixPerson) }

// NewPaxID generates a new PAX ID.
func NewPaxID() string { return New(PrefixPax) }

// NewLocationID generates a new Location ID.
func NewLocationID() string { return New(PrefixLocation) }

// NewEventSeriesID generates a new Event Series ID.
func NewEventSeriesID() string { return New(PrefixEventSeries) }

// NewEventInstanceID generates a new Event Instance ID.
func NewEventInstanceID() string { return New(PrefixEventInstance) }

// NewAttendanceID generates a new Attendance ID.
func NewAttendanceID() string { return New(PrefixAttendance) }

// NewTaxonomyTermID generates a new Taxonomy Term ID.
func NewTaxonomyTermID() string { return New(PrefixTaxonomyTerm) }

// Prefix extracts the entity prefix from an ID.
// It returns "" if the ID has no underscore or an unrecognized prefix.
func Prefix(id string) string {
	head, _, found := strings.Cut(id, "_")
	if !found {
		return ""
	}
	if _, known := knownPrefixes[head]; !known {
		return ""
	}
	return head
}

// EntityType returns the entity type name for an ID ("org", "pax",
// "eventInstance", …) or "unknown" when the prefix is not recognized.
func EntityType(id string) string {
	if name, ok := knownPrefixes[Prefix(id)]; ok {
		return name
	}
	return "unknown"
}

// Is reports whether id carries the given prefix.
func Is(id, prefix string) bool {
	return strings.HasPrefix(id, prefix+"_")
}

// IsOrgID reports whether id is an Organization ID.
func IsOrgID(id string) bool { return Is(id, PrefixOrg) }

// IsPaxID reports whether id is a PAX ID.
func IsPaxID(id string) bool { return Is(id, PrefixPax) }

// IsEventInstanceID reports whether id is an Event Instance ID.
func IsEventInstanceID(id string) bool { return Is(id, PrefixEventInstance) }

// IsAttendanceID reports whether id is an Attendance ID.
func IsAttendanceID(id string) bool { return Is(id, PrefixAttendance) }
