package ulf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"ulfdata.com/udl/types"
)

func TestSegments(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		expected []string
	}{
		{"single group", "(PRES run.v)", []string{"PRES run.v"}},
		{"adjacent groups", "(a)(b)", []string{"a", "b"}},
		{"whitespace around delimiters", " ( a ) ( b c ) ", []string{"a", "b c"}},
		{"no parentheses", "just words", []string{"just words"}},
		{"empty", "", []string{}},
		{"whitespace only", "   ", []string{}},
		{"nested style", "((PAST eat.v))", []string{"PAST eat.v"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Segments(tc.raw)
			require.Equal(t, tc.expected, got)
			for _, seg := range got {
				require.NotContains(t, seg, "(")
				require.NotContains(t, seg, ")")
				require.NotEmpty(t, seg)
			}
		})
	}
}

func TestStripMultiSentMarker(t *testing.T) {
	segs, multi := StripMultiSentMarker([]string{"MULTI-SENT", "PAST eat.v"})
	require.True(t, multi)
	require.Equal(t, []string{"PAST eat.v"}, segs)

	// the marker is positional, never recognized later
	segs, multi = StripMultiSentMarker([]string{"PAST eat.v", "MULTI-SENT"})
	require.False(t, multi)
	require.Len(t, segs, 2)

	_, multi = StripMultiSentMarker([]string{"MULTI-SENTENCE"})
	require.False(t, multi)

	segs, multi = StripMultiSentMarker(nil)
	require.False(t, multi)
	require.Empty(t, segs)
}

func TestExpand(t *testing.T) {
	cases := []struct {
		name     string
		segs     []string
		expected []string
	}{
		{
			"two dots trigger expansion",
			[]string{"PRES perf.aux look.v"},
			[]string{"PRES", "perf.aux", "look.v"},
		},
		{
			"TO substring triggers expansion",
			[]string{"PRES want.v TO go.v"},
			[]string{"PRES", "want.v", "TO", "go.v"},
		},
		{
			"embedded TO still triggers",
			[]string{"TOGETHER.adv more"},
			[]string{"TOGETHER.adv", "more"},
		},
		{
			"one dot with space stays one token",
			[]string{"PRES run.v"},
			[]string{"PRES run.v"},
		},
		{
			"no trigger, no split",
			[]string{"the.d dog"},
			[]string{"the.d dog"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Expand(tc.segs))
		})
	}
}

func TestDecompose(t *testing.T) {
	cases := []struct {
		name     string
		token    string
		expected types.AnnotatedToken
	}{
		{
			"tense word class",
			"PRES run.v",
			types.AnnotatedToken{Word: "run", Tense: "PRES", Class: "v"},
		},
		{
			"word class only",
			"jump.v",
			types.AnnotatedToken{Word: "jump", Tense: types.NoTenseToken, Class: "v"},
		},
		{
			"bare word",
			"dog",
			types.AnnotatedToken{Word: "dog", Tense: types.NoTenseToken, Class: types.NoClassToken},
		},
		{
			"first space only, rest kept verbatim",
			"PAST want.v more",
			types.AnnotatedToken{Word: "want", Tense: "PAST", Class: "v more"},
		},
		{
			"first dot only, rest kept verbatim",
			"name.of.thing",
			types.AnnotatedToken{Word: "name", Tense: types.NoTenseToken, Class: "of.thing"},
		},
		{
			"empty token",
			"",
			types.AnnotatedToken{Word: "", Tense: types.NoTenseToken, Class: types.NoClassToken},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Decompose(tc.token))
		})
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		expected types.ParsedAnnotation
	}{
		{
			"tensed verb",
			"(PRES run.v)",
			types.ParsedAnnotation{
				Tokens:  []string{"PRES run.v"},
				Words:   []string{"run"},
				Tenses:  []string{"PRES"},
				Classes: []string{"v"},
			},
		},
		{
			"untensed verb",
			"(jump.v)",
			types.ParsedAnnotation{
				Tokens:  []string{"jump.v"},
				Words:   []string{"jump"},
				Tenses:  []string{types.NoTenseToken},
				Classes: []string{"v"},
			},
		},
		{
			"bare word",
			"(dog)",
			types.ParsedAnnotation{
				Tokens:  []string{"dog"},
				Words:   []string{"dog"},
				Tenses:  []string{types.NoTenseToken},
				Classes: []string{types.NoClassToken},
			},
		},
		{
			"multi-sentence marker",
			"(MULTI-SENT) (PAST eat.v)",
			types.ParsedAnnotation{
				Tokens:          []string{"PAST eat.v"},
				Words:           []string{"eat"},
				Tenses:          []string{"PAST"},
				Classes:         []string{"v"},
				IsMultiSentence: true,
			},
		},
		{
			"infinitive expansion",
			"(PRES want.v TO go.v)",
			types.ParsedAnnotation{
				Tokens:  []string{"PRES", "want.v", "TO", "go.v"},
				Words:   []string{"PRES", "want", "TO", "go"},
				Tenses:  []string{types.NoTenseToken, types.NoTenseToken, types.NoTenseToken, types.NoTenseToken},
				Classes: []string{types.NoClassToken, "v", types.NoClassToken, "v"},
			},
		},
		{
			"empty annotation",
			"",
			types.ParsedAnnotation{
				Tokens:  []string{},
				Words:   []string{},
				Tenses:  []string{},
				Classes: []string{},
			},
		},
		{
			"marker later in string does not set flag",
			"(dog) (MULTI-SENT)",
			types.ParsedAnnotation{
				Tokens:  []string{"dog", "MULTI-SENT"},
				Words:   []string{"dog", "MULTI-SENT"},
				Tenses:  []string{types.NoTenseToken, types.NoTenseToken},
				Classes: []string{types.NoClassToken, types.NoClassToken},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse(tc.raw)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-expected +got):\n%s", tc.raw, diff)
			}
		})
	}
}

func TestParseAlignment(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"(PRES run.v)",
		"(MULTI-SENT) (PAST eat.v) (the.d dog.n)",
		"(PRES want.v TO go.v)",
		"no parens at all",
		"(a b c d) (x.y.z)",
		"((()))",
		"( PROG dance.v ) junk ) ( more",
	}
	for _, raw := range inputs {
		got := Parse(raw)
		require.Len(t, got.Tenses, len(got.Words), "input %q", raw)
		require.Len(t, got.Classes, len(got.Words), "input %q", raw)
		require.Len(t, got.Tokens, len(got.Words), "input %q", raw)
	}
}
