package attribution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfiles() []Profile {
	return []Profile{
		{ID: 1, Username: "astro", DeveloperType: "astro"},
		{ID: 2, Username: "bungee", DeveloperType: "bungee"},
	}
}

func TestMatch(t *testing.T) {
	aliases := DefaultAliases()

	t.Run("matches author name by username", func(t *testing.T) {
		commit := Commit{AuthorName: "Astro MP", Message: "fix: rotation"}

		p, ok := Match(commit, testProfiles(), aliases)
		require.True(t, ok)
		assert.Equal(t, uint(1), p.ID)
	})

	t.Run("matches author username", func(t *testing.T) {
		commit := Commit{AuthorName: "Somebody", AuthorUsername: "bungee-dev", Message: "feat: cc"}

		p, ok := Match(commit, testProfiles(), aliases)
		require.True(t, ok)
		assert.Equal(t, uint(2), p.ID)
	})

	t.Run("matches alias in author name", func(t *testing.T) {
		commit := Commit{AuthorName: "Max Power", Message: "tweak cooldowns"}

		p, ok := Match(commit, testProfiles(), aliases)
		require.True(t, ok)
		assert.Equal(t, "bungee", p.Username)
	})

	t.Run("no match for bot author", func(t *testing.T) {
		commit := Commit{AuthorName: "dependabot[bot]", AuthorUsername: "dependabot[bot]", Message: "chore: bump deps"}

		p, ok := Match(commit, testProfiles(), aliases)
		assert.False(t, ok)
		assert.Nil(t, p)
	})

	t.Run("merge commits never match", func(t *testing.T) {
		commit := Commit{AuthorName: "Astro MP", Message: "Merge branch 'main' into dev"}

		p, ok := Match(commit, testProfiles(), aliases)
		assert.False(t, ok)
		assert.Nil(t, p)
	})

	t.Run("first profile in order wins ties", func(t *testing.T) {
		// Author name containing both usernames resolves by slice order.
		commit := Commit{AuthorName: "astro and bungee pairing", Message: "update docs"}

		p, ok := Match(commit, testProfiles(), aliases)
		require.True(t, ok)
		assert.Equal(t, uint(1), p.ID)
	})

	t.Run("case insensitive", func(t *testing.T) {
		commit := Commit{AuthorName: "ASTRO", Message: "update"}

		_, ok := Match(commit, testProfiles(), aliases)
		assert.True(t, ok)
	})
}

func TestParseAliases(t *testing.T) {
	t.Run("empty spec yields defaults", func(t *testing.T) {
		table, err := ParseAliases("")
		require.NoError(t, err)
		assert.Equal(t, DefaultAliases(), table)
	})

	t.Run("parses spec", func(t *testing.T) {
		table, err := ParseAliases("astro:astro|mp; bungee:bungee|max")
		require.NoError(t, err)
		assert.Equal(t, []string{"astro", "mp"}, table["astro"])
		assert.Equal(t, []string{"bungee", "max"}, table["bungee"])
	})

	t.Run("rejects entry without tag", func(t *testing.T) {
		_, err := ParseAliases("justaliases")
		assert.Error(t, err)
	})

	t.Run("rejects empty alias list", func(t *testing.T) {
		_, err := ParseAliases("astro:")
		assert.Error(t, err)
	})
}

func TestClassifyChangeType(t *testing.T) {
	tests := []struct {
		message string
		want    ChangeType
	}{
		{"fix: correct rogue rotation timing", ChangeFix},
		{"Bugfix for stealth opener", ChangeFix},
		{"feat: add new hunter CC logic", ChangeFeature},
		{"Added paladin support", ChangeFeature},
		{"remove dead spell ids", ChangeDelete},
		{"delete legacy profiles", ChangeDelete},
		{"create warlock module", ChangeCreate},
		{"initial druid skeleton", ChangeCreate},
		{"chore: bump deps", ChangeUpdate},
		{"", ChangeUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyChangeType(tt.message))
		})
	}
}

func TestClassifyChangeType_PriorityOrder(t *testing.T) {
	// "fix" outranks "add" when both keywords appear.
	assert.Equal(t, ChangeFix, ClassifyChangeType("fix: add missing nil check"))
}
