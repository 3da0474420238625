// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jstream_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jstream"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "y": {
    "hello": "there"
  },
  "n": -3,
  "z": null,
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func TestPath(t *testing.T) {
	v := jstream.MustParse(testJSON)

	tests := []struct {
		name string
		path []any
		want jstream.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{11}, v, true},
		{"NotObject", []any{"n", "x"}, v, true},

		{"ObjPath", []any{"xyz", "d"}, jstream.Bool(true), false},
		{"Nested", []any{"y", "hello"}, jstream.String("there"), false},
		{"Integer", []any{"n"}, jstream.Integer(-3), false},
		{"Null", []any{"z"}, jstream.Null{}, false},

		{"FuncObj", []any{"xyz", testPathFunc}, jstream.Integer(3), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, v, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := jstream.Path(v, tc.path...)
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Path: unexpected error: %v", err)
				}
			} else if tc.fail {
				t.Fatalf("Path: got %s, want error", got.JSON())
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Wrong result (-want, +got):\n%s", diff)
			} else if err == nil {
				t.Logf("Found %s OK", got.JSON())
			}
		})
	}
}

func TestPathPartial(t *testing.T) {
	p := jstream.NewParser()
	if err := p.Feed(`{"tool": {"name": "search", "args": {"query": "golang str`); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	got, err := jstream.Path(p.Snapshot(), "tool", "args", "query")
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if diff := cmp.Diff(jstream.Value(jstream.String("golang str")), got); diff != "" {
		t.Errorf("Path (-want, +got):\n%s", diff)
	}
}

func testPathFunc(v jstream.Value) (jstream.Value, error) {
	if ln, ok := v.(interface{ Len() int }); ok {
		return jstream.Integer(ln.Len()), nil
	}
	return nil, errors.New("not a thing with length")
}

func TestObject(t *testing.T) {
	obj := jstream.MustParse(testJSON)
	if diff := cmp.Diff([]string{"y", "n", "z", "xyz"}, obj.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}
	if got := obj.Len(); got != 4 {
		t.Errorf("Len: got %d, want 4", got)
	}
	if m := obj.Find("nonesuch"); m != nil {
		t.Errorf("Find(nonesuch): got %+v, want nil", m)
	}
	if m := obj.Find("n"); m == nil || m.Value != jstream.Integer(-3) {
		t.Errorf("Find(n): got %+v, want -3", m)
	}
	if got, want := obj.String(), "Object(len=4)"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}

func TestInterface(t *testing.T) {
	got := jstream.Interface(jstream.MustParse(testJSON))
	want := map[string]any{
		"y":   map[string]any{"hello": "there"},
		"n":   int64(-3),
		"z":   nil,
		"xyz": map[string]any{"p": true, "d": true, "q": false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Interface (-want, +got):\n%s", diff)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{"\ufffd", "\"\ufffd\""},
		{"\u2028 \u2029 \u00e9", "\"\\u2028 \\u2029 \u00e9\""},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
	}
	for _, test := range tests {
		got := jstream.Quote(test.input)
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, true},                          // missing quotes
		{`"missing quote`, ``, true},            // missing quotes
		{`missing quote"`, ``, true},            // missing quotes
		{`""`, ``, false},                       // ok
		{`"ok go"`, "ok go", false},             // ok
		{`"abc\ndef"`, "abc\ndef", false},       // C escapes
		{`"\b\f\n\r\t"`, "\b\f\n\r\t", false},   // C escapes
		{`"a \u0026 b"`, "a & b", false},        // short Unicode escape
		{`"\ud83d\ude00"`, "\U0001F600", false}, // surrogate pair
		{`"\ud83d!"`, "\ufffd!", false},         // unpaired surrogate
		{`"\u"`, ``, true},                      // incomplete Unicode escape
		{`"\u00"`, ``, true},                    // incomplete Unicode escape
		{`"\u00x9"`, "\ufffd", false},           // invalid Unicode escape
		{`"a\"b"`, `a"b`, false},                // ok
		{`"a\\b\\cd"`, `a\b\cd`, false},         // ok
	}

	for _, test := range tests {
		got, err := jstream.Unquote(test.input)
		if err != nil {
			if !test.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			} else {
				t.Logf("Unquote(%#q): got expected error: %v", test.input, err)
			}
		} else if test.fail {
			t.Errorf("Unquote(%#q): got nil, want error", test.input)
		}
		if cmp := string(got); cmp != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, cmp, test.want)
		}
	}
}
