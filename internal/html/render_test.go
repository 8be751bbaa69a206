package html

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/riverfjs/tgmarkup/internal/types"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		entities []types.Entity
		want     string
	}{
		{
			name: "nested",
			text: "abc",
			entities: []types.Entity{
				{Type: types.Bold, Offset: 0, Length: 3},
				{Type: types.Italic, Offset: 1, Length: 1},
			},
			want: "<b>a<i>b</i>c</b>",
		},
		{
			name: "unsorted input",
			text: "abc",
			entities: []types.Entity{
				{Type: types.Italic, Offset: 1, Length: 1},
				{Type: types.Bold, Offset: 0, Length: 3},
			},
			want: "<b>a<i>b</i>c</b>",
		},
		{
			name: "equal start outer first",
			text: "ab",
			entities: []types.Entity{
				{Type: types.Italic, Offset: 0, Length: 1},
				{Type: types.Bold, Offset: 0, Length: 2},
			},
			want: "<b><i>a</i>b</b>",
		},
		{
			name:     "escape without entities",
			text:     `1 < 2 && "x" > 0`,
			entities: nil,
			want:     "1 &lt; 2 &amp;&amp; &quot;x&quot; &gt; 0",
		},
		{
			name: "escape around entities",
			text: "<a>&<b>",
			entities: []types.Entity{
				{Type: types.Code, Offset: 3, Length: 1},
			},
			want: "&lt;a&gt;<code>&amp;</code>&lt;b&gt;",
		},
		{
			name: "all kinds",
			text: "abcdefghij",
			entities: []types.Entity{
				{Type: types.Bold, Offset: 0, Length: 1},
				{Type: types.Italic, Offset: 1, Length: 1},
				{Type: types.Underline, Offset: 2, Length: 1},
				{Type: types.Strikethrough, Offset: 3, Length: 1},
				{Type: types.Code, Offset: 4, Length: 1},
				{Type: types.Pre, Offset: 5, Length: 1, Language: "go"},
				{Type: types.Spoiler, Offset: 6, Length: 1},
				{Type: types.TextLink, Offset: 7, Length: 1, URL: `https://e.com/?a=1&b="2"`},
				{Type: types.CustomEmoji, Offset: 8, Length: 1, CustomEmojiID: 42},
				{Type: types.Blockquote, Offset: 9, Length: 1, Collapsed: true},
			},
			want: `<b>a</b><i>b</i><u>c</u><s>d</s><code>e</code><pre language="go">f</pre>` +
				`<spoiler>g</spoiler><a href="https://e.com/?a=1&amp;b=&quot;2&quot;">h</a>` +
				`<emoji id="42">i</emoji><blockquote expandable>j</blockquote>`,
		},
		{
			name: "unknown type skipped",
			text: "ab",
			entities: []types.Entity{
				{Type: "mention", Offset: 0, Length: 2},
				{Type: types.Bold, Offset: 1, Length: 1},
			},
			want: "a<b>b</b>",
		},
		{
			name: "surrogate offsets",
			text: "📌x📌",
			entities: []types.Entity{
				{Type: types.Bold, Offset: 2, Length: 1},
				{Type: types.Italic, Offset: 3, Length: 2},
			},
			want: "📌<b>x</b><i>📌</i>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.text, tt.entities, 0)
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_DoesNotReorderInput(t *testing.T) {
	entities := []types.Entity{
		{Type: types.Italic, Offset: 1, Length: 1},
		{Type: types.Bold, Offset: 0, Length: 3},
	}
	if _, err := Render("abc", entities, 0); err != nil {
		t.Fatal(err)
	}
	if entities[0].Type != types.Italic {
		t.Errorf("Render() reordered caller's slice: %v", entities)
	}
}

func TestRender_TooDeep(t *testing.T) {
	var entities []types.Entity
	for i := 0; i < 10; i++ {
		entities = append(entities, types.Entity{Type: types.Bold, Offset: i, Length: 10 - i})
	}
	_, err := Render(strings.Repeat("x", 10), entities, 5)
	if !errors.Is(err, types.ErrTooDeep) {
		t.Fatalf("Render() error = %v, want ErrTooDeep", err)
	}
	if _, err := Render(strings.Repeat("x", 10), entities, 10); err != nil {
		t.Errorf("Render() with enough depth: %v", err)
	}
}

func TestRender_PartialOverlapDoesNotPanic(t *testing.T) {
	entities := []types.Entity{
		{Type: types.Bold, Offset: 0, Length: 3},
		{Type: types.Italic, Offset: 2, Length: 3},
	}
	if _, err := Render("abcde", entities, 0); err != nil {
		t.Fatal(err)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		text     string
		entities []types.Entity
	}{
		{"abc", []types.Entity{
			{Type: types.Bold, Offset: 0, Length: 3},
			{Type: types.Italic, Offset: 1, Length: 1},
		}},
		{"x < y & z", nil},
		{"a📌b\nc", []types.Entity{
			{Type: types.Blockquote, Offset: 0, Length: 6, Collapsed: true},
			{Type: types.TextLink, Offset: 1, Length: 2, URL: "https://t.me/?q=a&b"},
			{Type: types.Pre, Offset: 5, Length: 1, Language: "c++"},
		}},
		{"a\r\nb\rc", []types.Entity{
			{Type: types.Bold, Offset: 3, Length: 1},
			{Type: types.Italic, Offset: 4, Length: 2},
		}},
		{"emoji 👍", []types.Entity{
			{Type: types.CustomEmoji, Offset: 6, Length: 2, CustomEmojiID: 5368324170671202286},
		}},
	}
	for _, tt := range tests {
		markup, err := Render(tt.text, tt.entities, 0)
		if err != nil {
			t.Fatalf("Render(%q) error: %v", tt.text, err)
		}
		res, err := Parse(markup)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", markup, err)
		}
		if res.Text != tt.text {
			t.Errorf("round trip text = %q, want %q (markup %q)", res.Text, tt.text, markup)
		}
		want := tt.entities
		if want == nil {
			want = []types.Entity{}
		}
		if diff := cmp.Diff(sortedByOffsetThenLength(want), sortedByOffsetThenLength(res.Entities)); diff != "" {
			t.Errorf("round trip %q entities mismatch (-want +got):\n%s", markup, diff)
		}
	}
}

func sortedByOffsetThenLength(in []types.Entity) []types.Entity {
	out := append([]types.Entity{}, in...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && less(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func less(a, b types.Entity) bool {
	if a.Offset != b.Offset {
		return a.Offset < b.Offset
	}
	return a.Length > b.Length
}
