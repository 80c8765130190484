package parsing

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"boxfmt/internal/notation"
)

var documents = []string{
	"{}",
	"()",
	"{a=1,b=2}",
	"{name = demo, limits = (cpu = 2, mem = 512)}",
	"{outer={inner=5}}",
	"({x}, (y), z)",
	"{verbose=,bare}",
	"{a,}",
	"{deep=(deeper={deepest=(1)})}",
	"{list=(one, two, three), flag}",
}

// Indent output parses back to the tree it was rendered from.
func TestIndentRoundTrip(t *testing.T) {
	for _, doc := range documents {
		t.Run(doc, func(t *testing.T) {
			want := notation.Parse(doc)
			formatted := notation.FormatWithIndentation(doc)
			got := notation.Parse(formatted)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("tree changed after formatting (-want +got):\n%s\nformatted:\n%s", diff, formatted)
			}
			if again := notation.FormatWithIndentation(formatted); again != formatted {
				t.Errorf("formatting is not idempotent:\nfirst:\n%s\nsecond:\n%s", formatted, again)
			}
		})
	}
}

// Documents without empty entries survive the strict checker once formatted.
func TestFormattedOutputIsStrict(t *testing.T) {
	for _, doc := range documents {
		if doc == "{a,}" || doc == "{verbose=,bare}" {
			continue
		}
		t.Run(doc, func(t *testing.T) {
			formatted := notation.FormatWithIndentation(doc)
			root, err := notation.Check("formatted", formatted)
			if err != nil {
				t.Fatalf("Check rejected formatted output: %v\n%s", err, formatted)
			}
			if diff := cmp.Diff(notation.Parse(doc), root); diff != "" {
				t.Errorf("Check tree differs from Parse (-want +got):\n%s", diff)
			}
		})
	}
}

// Box rows of one rendering all share a width.
func TestBoxRowsAligned(t *testing.T) {
	for _, doc := range documents {
		t.Run(doc, func(t *testing.T) {
			rows := notation.RenderBox(notation.Parse(doc), nil)
			width := len([]rune(rows[0]))
			for i, row := range rows {
				if n := len([]rune(row)); n != width {
					t.Errorf("row %d has width %d, want %d: %q", i, n, width, row)
				}
			}
		})
	}
}
