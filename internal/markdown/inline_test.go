package markdown

import "testing"

func TestToHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold", "*bold*", "<b>bold</b>"},
		{"underline before italic", "__u__ _i_", "<u>u</u> <i>i</i>"},
		{"strike and spoiler", "~s~ ||sp||", "<s>s</s> <spoiler>sp</spoiler>"},
		{"nested", "*a _b_ c*", "<b>a <i>b</i> c</b>"},
		{"code suppresses delimiters", "`a*b*c`", "<code>a*b*c</code>"},
		{"code suppresses links", "`[a](b)`", "<code>[a](b)</code>"},
		{"pre with language", "```go\nx := 1\n```", `<pre language="go">x := 1</pre>`},
		{"pre without language", "```\ncode\n```", "<pre>code</pre>"},
		{"pre on one line", "```inline```", "<pre>inline</pre>"},
		{"pre keeps other delimiters", "```\n*a* _b_\n```", "<pre>*a* _b_</pre>"},
		{"link", "see [link](https://e.com) now", `see <a href="https://e.com">link</a> now`},
		{"emoji", "![👍](tg://emoji?id=123)", `<emoji id="123">👍</emoji>`},
		{"link url quote", `[x](a"b)`, `<a href="a&quot;b">x</a>`},
		{"toggle pairing", "*a*b*", "<b>a</b>b<b>"},
		{"plain", "nothing here", "nothing here"},
		{"multibyte around delimiters", "你*好*📌", "你<b>好</b>📌"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToHTML(tt.in); got != tt.want {
				t.Errorf("ToHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
