package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"headphones", "headphone"},
		{"running", "runn"}, // naive stemming, kept on purpose
		{"cooked", "cook"},
		{"baker", "bak"},
		{"parties", "partie"}, // "s" rule wins before "ies"
		{"happiness", "happines"},
		{"Coffee", "coffee"},
		{"  Yoga  ", "yoga"},
		{"zen", "zen"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeAppliesOnlyFirstRule(t *testing.T) {
	// "workings" only matches the "s" rule. Rules do not cascade, so the
	// trailing "ing" of the result survives.
	assert.Equal(t, "working", Normalize("workings"))
	assert.NotEqual(t, "work", Normalize("workings"))
}

func TestRelatedTermsReflexive(t *testing.T) {
	for _, w := range []string{"yoga", "gaming", "headphones", "automobile", "running", "xyzzy"} {
		assert.Contains(t, RelatedTerms(w), Normalize(w), "related terms of %q must include its normalized form", w)
	}
}

func TestRelatedTermsSymmetricClosure(t *testing.T) {
	// "wellness" appears only inside yoga's synonym list, yet looking up
	// "yoga" must surface it.
	related := RelatedTerms("yoga")
	assert.Contains(t, related, "wellness")
	assert.Contains(t, related, "pilates")

	// Reverse direction: "zen" is listed under yoga and meditation, so its
	// class pulls in both keys and their full lists.
	related = RelatedTerms("zen")
	assert.Contains(t, related, "yoga")
	assert.Contains(t, related, "meditation")
	assert.Contains(t, related, "mindfulness")
}

func TestRelatedTermsDeterministic(t *testing.T) {
	first := RelatedTerms("fitness")
	second := RelatedTerms("fitness")
	require.Equal(t, first, second)
}

func TestFuzzyMatchCommutative(t *testing.T) {
	pairs := [][2]string{
		{"yoga", "wellness"},
		{"gaming", "video games"},
		{"coffee", "espresso"},
		{"yoga", "automobile"},
		{"baby", "baby-shower"},
	}
	for _, p := range pairs {
		assert.Equal(t, FuzzyMatch(p[0], p[1]), FuzzyMatch(p[1], p[0]), "fuzzyMatch(%q,%q)", p[0], p[1])
	}
}

func TestFuzzyMatch(t *testing.T) {
	assert.True(t, FuzzyMatch("yoga", "wellness"))
	assert.True(t, FuzzyMatch("gym", "fitness"))
	assert.True(t, FuzzyMatch("baby", "baby-shower"))
	assert.False(t, FuzzyMatch("yoga", "automobile"))
}

func TestMatchScoreBands(t *testing.T) {
	t.Run("identity is 5", func(t *testing.T) {
		for _, w := range []string{"yoga", "gaming", "chess", "qwerty"} {
			assert.Equal(t, 5, MatchScore(w, w))
		}
	})

	t.Run("containment is 4", func(t *testing.T) {
		assert.Equal(t, 4, MatchScore("baby-shower", "baby"))
	})

	t.Run("synonym intersection is 3", func(t *testing.T) {
		assert.Equal(t, 3, MatchScore("yoga", "wellness"))
	})

	t.Run("unrelated is 0", func(t *testing.T) {
		assert.Equal(t, 0, MatchScore("yoga", "automobile"))
	})

	t.Run("commutative", func(t *testing.T) {
		pairs := [][2]string{
			{"yoga", "wellness"},
			{"baby-shower", "baby"},
			{"gaming", "esports"},
			{"yoga", "automobile"},
		}
		for _, p := range pairs {
			assert.Equal(t, MatchScore(p[0], p[1]), MatchScore(p[1], p[0]), "matchScore(%q,%q)", p[0], p[1])
		}
	})

	t.Run("score 1 is never produced", func(t *testing.T) {
		words := []string{"yoga", "gym", "coffee", "gaming", "travel", "dog", "automobile", "chess", "wine", "zzz"}
		for _, a := range words {
			for _, b := range words {
				assert.NotEqual(t, 1, MatchScore(a, b), "matchScore(%q,%q)", a, b)
			}
		}
	})
}

func TestExpandTerms(t *testing.T) {
	expanded := ExpandTerms([]string{"yoga"})
	assert.Contains(t, expanded, "yoga")
	assert.Contains(t, expanded, "wellness")

	// Input order is preserved ahead of expansions.
	assert.Equal(t, "yoga", expanded[0])

	// No duplicates.
	seen := map[string]int{}
	for _, term := range expanded {
		seen[term]++
		assert.Equal(t, 1, seen[term], "duplicate term %q", term)
	}
}
