package jdom

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/keelson/jdom/debug"
	"github.com/keelson/jdom/encode"
	"github.com/keelson/jdom/ir"
)

// Diff returns a line-oriented textual diff between the pretty encodings
// of a and b. Unchanged lines are prefixed with two spaces, removed lines
// with "- " and added lines with "+ ". The result is empty when the
// documents are structurally equal.
func Diff(a, b *Document) (string, error) {
	if ir.Equal(a.Root(), b.Root()) {
		return "", nil
	}
	aText, err := prettyText(a)
	if err != nil {
		return "", err
	}
	bText, err := prettyText(b)
	if err != nil {
		return "", err
	}

	diffCfg := diffpatch.New()
	aCh, bCh, lines := diffCfg.DiffLinesToChars(aText, bText)
	diffs := diffCfg.DiffMain(aCh, bCh, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	if debug.Diff() {
		debug.Logf("diff: %d hunks\n", len(diffs))
	}

	var sb strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		prefix := "  "
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, ln := range splitLines(diff.Text) {
			sb.WriteString(prefix)
			sb.WriteString(ln)
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

func prettyText(d *Document) (string, error) {
	var sb strings.Builder
	if err := d.Encode(&sb, encode.Pretty()); err != nil {
		return "", err
	}
	return sb.String() + "\n", nil
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
