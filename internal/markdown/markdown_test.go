package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "heading",
			source: "# 첫 글",
			want:   []string{"<h1", "첫 글", "</h1>"},
		},
		{
			name:   "gfm table",
			source: "| a | b |\n|---|---|\n| 1 | 2 |",
			want:   []string{"<table>", "<td>1</td>"},
		},
		{
			name:   "fenced code block is highlighted",
			source: "```go\nfmt.Println(\"hi\")\n```",
			want:   []string{"<pre", "Println"},
		},
		{
			name:   "raw html passes through",
			source: "<div class=\"note\">hello</div>",
			want:   []string{`<div class="note">hello</div>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.source)
			if err != nil {
				t.Fatalf("ToHTML: %v", err)
			}
			for _, frag := range tt.want {
				if !strings.Contains(got, frag) {
					t.Errorf("output missing %q:\n%s", frag, got)
				}
			}
		})
	}
}

func TestToHTMLEmpty(t *testing.T) {
	got, err := ToHTML("")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if strings.TrimSpace(got) != "" {
		t.Errorf("empty source rendered %q, want empty output", got)
	}
}
