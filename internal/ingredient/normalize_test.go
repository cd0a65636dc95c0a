package ingredient

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCleanToken(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"plain", "egg", "egg"},
		{"whitespace", "  egg \n", "egg"},
		{"single quotes", "'flour'", "flour"},
		{"double quotes", `"milk"`, "milk"},
		{"backticks", "`salt`", "salt"},
		{"brackets", "[sugar]", "sugar"},
		{"commas", ",butter,", "butter"},
		{"mixed edges", `  ["'olive oil'"] ,`, "olive oil"},
		{"interior kept", "sea salt, fine", "sea salt, fine"},
		{"nil", nil, ""},
		{"empty", "", ""},
		{"only junk", ` [",'] `, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CleanToken(tc.in)
			if got != tc.want {
				t.Errorf("CleanToken(%q) = %q, want %q", tc.in, got, tc.want)
			}
			// Stable under repeated application.
			if again := CleanToken(got); again != got {
				t.Errorf("CleanToken not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestParseDelimited(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"commas", "egg, flour, milk", []string{"egg", "flour", "milk"}},
		{"newlines", "egg\nflour\nmilk", []string{"egg", "flour", "milk"}},
		{"mixed runs", "egg,,\n, flour", []string{"egg", "flour"}},
		{"empty", "", nil},
		{"only delimiters", ",,\n,", nil},
		{"single", "  egg  ", []string{"egg"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, ParseDelimited(tc.in)); diff != "" {
				t.Errorf("ParseDelimited(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestExtractQuoted(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"double", `"egg", "flour"`, []string{"egg", "flour"}},
		{"single", `'egg', 'flour'`, []string{"egg", "flour"}},
		{"mixed order kept", `'b', "a", 'c'`, []string{"b", "a", "c"}},
		{"embedded comma", `"salt, coarse"`, []string{"salt, coarse"}},
		{"empty spans dropped", `'', "  ", 'egg'`, []string{"egg"}},
		{"none", "egg, flour", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, ExtractQuoted(tc.in)); diff != "" {
				t.Errorf("ExtractQuoted(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestNormalizeList(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want []string
	}{
		{"string slice", []string{" egg ", "'flour'", ""}, []string{"egg", "flour"}},
		{"any slice", []any{" egg ", nil, "'flour'"}, []string{"egg", "flour"}},
		{"stringified list", `["egg", "flour"]`, []string{"egg", "flour"}},
		{"stringified single quotes", `['egg', 'flour']`, []string{"egg", "flour"}},
		{"plain delimited", "egg, flour", []string{"egg", "flour"}},
		{"newline delimited", "egg\nflour", []string{"egg", "flour"}},
		{"empty string", "", nil},
		{"whitespace string", "   ", nil},
		{"nil", nil, nil},
		{"number", 42, nil},
		{"bracketed no quotes", "[egg, flour]", []string{"egg", "flour"}},
		{"bracketed empty", "[]", nil},
		{
			// Quoted items first, then the unquoted remainder.
			"mixed quoted and bare",
			`["egg", "flour", salt]`,
			[]string{"egg", "flour", "salt"},
		},
		{
			"quoted item with embedded comma",
			`["salt, coarse", 'egg']`,
			[]string{"salt, coarse", "egg"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, NormalizeList(tc.in)); diff != "" {
				t.Errorf("NormalizeList(%v) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}
