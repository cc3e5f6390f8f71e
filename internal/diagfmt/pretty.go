package diagfmt

import (
	"fmt"
	"strings"

	"druim/internal/diag"
	"druim/internal/source"
)

// Render formats a diagnostic against its source into final text.
// Pure and deterministic: same inputs, same output. This is the only
// place user-facing diagnostic formatting happens.
func Render(d diag.Diagnostic, src *source.Source, opts Opts) string {
	r := renderer{src: src, opts: opts}

	r.styled(severityStyle(d.Severity), fmt.Sprintf("%s: %s\n", d.Severity, d.Message))

	// Top-level Note/Help with a zero-width span render the header
	// only; otherwise they get a source block and nothing else.
	if d.Severity == diag.SevNote || d.Severity == diag.SevHelp {
		if d.Span.Empty() {
			return r.out.String()
		}
		r.spanBlock(d.Span)
		return r.out.String()
	}

	r.spanBlock(d.Span)
	r.secondaryLabels(d.Span, d.Secondary)

	for _, n := range d.Notes {
		r.out.WriteByte('\n')
		r.note(n)
	}

	if d.Help != "" {
		r.out.WriteByte('\n')
		r.plain(fmt.Sprintf("help: %s\n", d.Help))
	}

	return r.out.String()
}

type renderer struct {
	src  *source.Source
	opts Opts
	out  strings.Builder
}

func (r *renderer) plain(text string) {
	r.out.WriteString(text)
}

func (r *renderer) styled(s style, text string) {
	if !r.opts.Color || s == stylePlain {
		r.out.WriteString(text)
		return
	}
	code := s.code()
	if code == "" {
		r.out.WriteString(text)
		return
	}
	r.out.WriteString(code)
	r.out.WriteString(text)
	r.out.WriteString(ansiReset)
}

// spanBlock renders the arrow line, the gutter, the source line, and
// the caret line. It returns the zero-based column of the first caret,
// derived solely from the span start: secondary labels and notes must
// never influence it.
func (r *renderer) spanBlock(span source.Span) int {
	line, col := r.src.LineCol(span.Start)
	r.plain(fmt.Sprintf(" --> line %d, column %d\n", line, col))

	lineText := r.src.LineText(line)
	gutter := len(fmt.Sprintf("%d", line))

	r.plain(fmt.Sprintf("%*s |\n", gutter, ""))
	r.plain(fmt.Sprintf("%*d | %s\n", gutter, line, lineText))

	lineLen := len(lineText)
	startCol := int(col) - 1
	if r.src.IsNewlineAt(span.Start) {
		// A span starting on the newline byte points at the end of
		// that line, not column 1 of the next.
		startCol = lineLen
	} else if startCol > lineLen {
		startCol = lineLen
	}

	width := int(span.End) - int(span.Start)
	if rest := lineLen - startCol; width > rest {
		width = rest
	}
	if width < 1 {
		width = 1
	}

	r.plain(fmt.Sprintf("%*s | %s", gutter, "", strings.Repeat(" ", startCol)))
	r.styled(styleCaret, strings.Repeat("^", width))
	r.out.WriteByte('\n')

	return startCol
}

// secondaryLabels renders one dash line per label under the primary
// caret block: up to eight dashes ending one column before the caret,
// then a space and the label text. Secondary spans never move the
// primary caret.
func (r *renderer) secondaryLabels(primary source.Span, labels []diag.Label) {
	if len(labels) == 0 {
		return
	}

	line, col := r.src.LineCol(primary.Start)
	gutter := len(fmt.Sprintf("%d", line))
	lineLen := len(r.src.LineText(line))

	startCol := int(col) - 1
	if r.src.IsNewlineAt(primary.Start) {
		startCol = lineLen
	} else if startCol > lineLen-1 {
		startCol = lineLen - 1
	}

	for _, label := range labels {
		if startCol <= 0 {
			continue
		}
		dashLen := startCol
		if dashLen > 8 {
			dashLen = 8
		}
		r.plain(fmt.Sprintf("%*s | ", gutter, ""))
		r.plain(strings.Repeat(" ", startCol-dashLen))
		r.plain(strings.Repeat("-", dashLen))
		r.out.WriteByte(' ')
		r.plain(label.Text)
		r.out.WriteByte('\n')
	}
}

func (r *renderer) note(n diag.Note) {
	r.styled(severityStyle(n.Severity), fmt.Sprintf("%s: %s\n", n.Severity, n.Message))
	if n.Span == nil {
		return
	}
	r.spanBlock(*n.Span)
}
