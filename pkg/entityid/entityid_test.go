// Copyright (c) 2026 F3 Nation. All rights reserved.

package entityid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3nation/f3api/pkg/entityid"
)

/*
TestNew_PrefixAndUniqueness verifies the "<prefix>_<uuid>" format and that
consecutive IDs never collide.
*/
func TestNew_PrefixAndUniqueness(t *testing.T) {
	first := entityid.NewPaxID()
	second := entityid.NewPaxID()

	assert.True(t, strings.HasPrefix(first, "pax_"))
	assert.NotEqual(t, first, second)

	// The suffix must be a plausible UUID (36 chars).
	require.Len(t, first, len("pax_")+36)
}

/*
TestPrefix_Table checks prefix extraction against the closed prefix table.
*/
func TestPrefix_Table(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{"org", entityid.NewOrgID(), "org"},
		{"pax", entityid.NewPaxID(), "pax"},
		{"event_instance", entityid.NewEventInstanceID(), "evt"},
		{"attendance", entityid.NewAttendanceID(), "att"},
		{"taxonomy", entityid.NewTaxonomyTermID(), "tax"},
		{"no_underscore", "abcdef", ""},
		{"unknown_prefix", "zzz_123", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entityid.Prefix(tt.id))
		})
	}
}

/*
TestEntityType verifies the human-readable type derivation.
*/
func TestEntityType(t *testing.T) {
	assert.Equal(t, "org", entityid.EntityType(entityid.NewOrgID()))
	assert.Equal(t, "eventSeries", entityid.EntityType(entityid.NewEventSeriesID()))
	assert.Equal(t, "person", entityid.EntityType(entityid.NewPersonID()))
	assert.Equal(t, "location", entityid.EntityType(entityid.NewLocationID()))
	assert.Equal(t, "unknown", entityid.EntityType("paxton_1"))
	assert.Equal(t, "unknown", entityid.EntityType("not-an-id"))
}

/*
TestIs_Checks verifies the per-type boolean guards.
*/
func TestIs_Checks(t *testing.T) {
	paxID := entityid.NewPaxID()

	assert.True(t, entityid.IsPaxID(paxID))
	assert.False(t, entityid.IsOrgID(paxID))
	assert.False(t, entityid.IsPaxID("pax-nounderscore"))

	// "pax_" must match as a full prefix, not a substring.
	assert.False(t, entityid.IsPaxID("prepax_123"))
}
