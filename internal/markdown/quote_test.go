package markdown

import "testing"

func TestReflow(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		strict bool
		want   string
	}{
		{"no quotes", "a\nb", false, "a\nb"},
		{"quote run", "a\n> q1\n> q2\nb", false, "a\n<blockquote>q1\nq2</blockquote>\nb"},
		{"no space after marker", ">q", false, "<blockquote>q</blockquote>"},
		{"two runs", "> a\nx\n> b", false, "<blockquote>a</blockquote>\nx\n<blockquote>b</blockquote>"},
		{"expandable with end marker", "**> a\n> b||\nc", false, "<blockquote expandable>a\nb</blockquote>\nc"},
		{"expandable implicit end", "**> a\n> b\nc", false, "<blockquote expandable>a\nb</blockquote>\nc"},
		{"expandable at end of input", "x\n**> a\n> b", false, "x\n<blockquote expandable>a\nb</blockquote>"},
		{"expandable single line", "**> one||", false, "<blockquote expandable>one</blockquote>"},
		{
			"mixed kinds stay separate",
			"> a\n**> b||\n> c", false,
			"<blockquote>a</blockquote>\n<blockquote expandable>b</blockquote>\n<blockquote>c</blockquote>",
		},
		{"strict escapes every line", "1 < 2\n> a & b", true, "1 &lt; 2\n<blockquote>a &amp; b</blockquote>"},
		{"non-strict leaves markup", "<b>x</b>\n> <i>y</i>", false, "<b>x</b>\n<blockquote><i>y</i></blockquote>"},
		{"crlf", "> a\r\n> b", false, "<blockquote>a\nb</blockquote>"},
		{"trailing newline kept", "a\n", false, "a\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reflow(tt.in, tt.strict); got != tt.want {
				t.Errorf("Reflow(%q, %v) = %q, want %q", tt.in, tt.strict, got, tt.want)
			}
		})
	}
}
