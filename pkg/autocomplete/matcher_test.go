package autocomplete

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCorpus = []string{
	"Amoxicillin 250mg",
	"Lisinopril 5mg",
	"Lisinopril 10mg",
	"Losartan 25mg",
	"Metformin 500mg",
	"Amlodipine 5mg",
}

func TestMatch_PreservesCorpusOrder(t *testing.T) {
	got := Match("lisinopril", []string{"Lisinopril 5mg", "Lisinopril 10mg", "Losartan 25mg"})
	assert.Equal(t, []string{"Lisinopril 5mg", "Lisinopril 10mg"}, got)
}

func TestMatch_SubstringNotPrefix(t *testing.T) {
	got := Match("5mg", testCorpus)
	assert.Equal(t, []string{"Lisinopril 5mg", "Losartan 25mg", "Amlodipine 5mg"}, got)
}

func TestMatch_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Match("AMLO", testCorpus), Match("amlo", testCorpus))
	assert.Equal(t, []string{"Amlodipine 5mg"}, Match("aMlO", testCorpus))
}

func TestMatch_NoMatchIsEmptyNotNil(t *testing.T) {
	got := Match("warfarin", testCorpus)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatch_EmptyCorpus(t *testing.T) {
	assert.Empty(t, Match("lisinopril", nil))
}

func TestMatch_ShortQueriesAreNotGated(t *testing.T) {
	// The matcher matches unconditionally; the editor owns the length gate.
	assert.Len(t, Match("i", testCorpus), 5)
	assert.Len(t, Match("", testCorpus), len(testCorpus))
}

func TestMatch_IsExactContainingSubsequence(t *testing.T) {
	queries := []string{"li", "mg", "in", "Metformin 500mg", "10", "zz"}
	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			var want []string
			for _, c := range testCorpus {
				if strings.Contains(strings.ToLower(c), strings.ToLower(q)) {
					want = append(want, c)
				}
			}
			got := Match(q, testCorpus)
			if len(want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestMatch_Idempotent(t *testing.T) {
	first := Match("mg", testCorpus)
	second := Match("mg", testCorpus)
	assert.Equal(t, first, second)
}

func TestMatch_DoesNotMutateCorpus(t *testing.T) {
	corpus := append([]string(nil), testCorpus...)
	_ = Match("lis", corpus)
	assert.Equal(t, testCorpus, corpus)
}

func TestMatchLimit(t *testing.T) {
	assert.Equal(t, []string{"Lisinopril 5mg", "Losartan 25mg"}, MatchLimit("5mg", testCorpus, 2))
	assert.Len(t, MatchLimit("5mg", testCorpus, 0), 3)
	assert.Len(t, MatchLimit("5mg", testCorpus, 10), 3)
}
