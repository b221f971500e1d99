package replace

import (
	"testing"
)

func TestParse(t *testing.T) {
	// groups holds a match over "test 123": full match, "test", "123".
	src := "test 123"
	groups := []int{0, 8, 0, 4, 5, 8}

	tests := []struct {
		name     string
		template string
		want     string
		maxGroup int
		wantErr  bool
	}{
		{name: "empty", template: "", want: "", maxGroup: -1},
		{name: "literal only", template: "hello world", want: "hello world", maxGroup: -1},
		{name: "full match", template: "$0", want: "test 123", maxGroup: 0},
		{name: "braced full match", template: "${0}", want: "test 123", maxGroup: 0},
		{name: "single group", template: "$1", want: "test", maxGroup: 1},
		{name: "braced group", template: "${2}", want: "123", maxGroup: 2},
		{name: "mixed", template: "[$2] $1!", want: "[123] test!", maxGroup: 2},
		{name: "escaped dollar", template: "$$1", want: "$1", maxGroup: -1},
		{name: "trailing dollar", template: "x$", want: "x$", maxGroup: -1},
		{name: "lone dollar", template: "a$ b", want: "a$ b", maxGroup: -1},
		{name: "dollar before letter", template: "$name", want: "$name", maxGroup: -1},
		{name: "double digit", template: "$12", want: "", maxGroup: 12},
		{name: "unclosed brace", template: "${1", wantErr: true},
		{name: "empty brace", template: "${}", wantErr: true},
		{name: "non-numeric brace", template: "${abc}", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Parse(tt.template)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.template, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tmpl.MaxGroup() != tt.maxGroup {
				t.Errorf("MaxGroup() = %d, want %d", tmpl.MaxGroup(), tt.maxGroup)
			}

			// $12 references a group the table does not have; expansion for
			// it is exercised separately below.
			if tt.maxGroup > 2 {
				return
			}
			got := string(tmpl.ExpandInto(nil, src, groups))
			if got != tt.want {
				t.Errorf("ExpandInto() = %q, want %q", got, tt.want)
			}
			if n := tmpl.Size(groups); n != len(tt.want) {
				t.Errorf("Size() = %d, want %d", n, len(tt.want))
			}
		})
	}
}

func TestExpandAbsentGroup(t *testing.T) {
	// Match table for (a)|(b) over "b": group 1 absent.
	groups := []int{0, 1, -1, -1, 0, 1}

	tmpl, err := Parse("<$1><$2>")
	if err != nil {
		t.Fatal(err)
	}
	got := string(tmpl.ExpandInto(nil, "b", groups))
	if got != "<><b>" {
		t.Errorf("ExpandInto() = %q, want %q", got, "<><b>")
	}
	if n := tmpl.Size(groups); n != len(got) {
		t.Errorf("Size() = %d, want %d", n, len(got))
	}
}

func TestExpandAppends(t *testing.T) {
	tmpl, err := Parse("$0")
	if err != nil {
		t.Fatal(err)
	}
	dst := []byte("prefix:")
	dst = tmpl.ExpandInto(dst, "abc", []int{0, 3})
	if string(dst) != "prefix:abc" {
		t.Errorf("ExpandInto() = %q, want %q", dst, "prefix:abc")
	}
}
