package entity

import "testing"

func TestAbstractFromIndex(t *testing.T) {
	cases := []struct {
		name  string
		index map[string][]int
		want  string
	}{
		{
			name: "simple",
			index: map[string][]int{
				"Despite": {0},
				"growing": {1},
				"interest": {2},
			},
			want: "Despite growing interest",
		},
		{
			name: "repeated word",
			index: map[string][]int{
				"the": {0, 2},
				"more": {1},
				"merrier": {3},
			},
			want: "the more the merrier",
		},
		{
			name: "gap stays as empty slot",
			index: map[string][]int{
				"a": {0},
				"c": {2},
			},
			want: "a  c",
		},
		{name: "empty", index: map[string][]int{}, want: ""},
		{name: "nil", index: nil, want: ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := AbstractFromIndex(c.index); got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestNoTZ(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2023-07-21", "2023-07-21T00:00:00"},
		{"2023-07-21T01:02:03", "2023-07-21T01:02:03"},
		{"2023-07-21T01:02:03.123456", "2023-07-21T01:02:03"},
		{"2023-07-21T01:02:03Z", "2023-07-21T01:02:03"},
	}
	for _, c := range cases {
		got, err := NoTZ(c.in)
		if err != nil {
			t.Errorf("NoTZ(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("NoTZ(%q) = %q, want %q", c.in, got, c.want)
		}
		// applying it twice must not change anything
		again, err := NoTZ(got)
		if err != nil || again != got {
			t.Errorf("NoTZ not idempotent on %q: %q, %v", got, again, err)
		}
	}
	if _, err := NoTZ("not a date"); err == nil {
		t.Error("NoTZ(not a date): want error")
	}
}

func TestISO8601(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2017-08-08", "2017-08-08T00:00:00"},
		{"2017-08-08T14:30:00", "2017-08-08T14:30:00"},
		{"2017-08-08T14:30:00Z", "2017-08-08T14:30:00+00:00"},
		{"2017-08-08T14:30:00+02:00", "2017-08-08T14:30:00+02:00"},
	}
	for _, c := range cases {
		got, err := ISO8601(c.in)
		if err != nil {
			t.Errorf("ISO8601(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ISO8601(%q) = %q, want %q", c.in, got, c.want)
		}
		again, err := ISO8601(got)
		if err != nil || again != got {
			t.Errorf("ISO8601 not idempotent on %q: %q, %v", got, again, err)
		}
	}
}

func TestNameCleanup(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`John "Jack" Smith`, "John Jack Smith"},
		{"  spaced   out \t name ", "spaced out name"},
		{"plain", "plain"},
	}
	for _, c := range cases {
		if got := NameCleanup.Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
