// Package extractor pulls chart and table markup out of generated text and
// normalizes whatever prose is left.
package extractor

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
)

var (
	htmlFence = regexp.MustCompile("(?i)```html[\\s\\S]*?```")
	anyFence  = regexp.MustCompile("```[\\s\\S]*?```")
	blankRun  = regexp.MustCompile(`\n\s*\n\s*\n`)
)

// Extractor classifies embedded markup. The zero value is not usable, call New.
type Extractor struct {
	newID   func() string
	inspect bool
}

type Option func(*Extractor)

// WithIDGenerator replaces the random suffix used in fragment ids.
func WithIDGenerator(gen func() string) Option {
	return func(e *Extractor) {
		e.newID = gen
	}
}

// WithInspection toggles title and column discovery on extracted fragments.
func WithInspection(enabled bool) Option {
	return func(e *Extractor) {
		e.inspect = enabled
	}
}

func New(opts ...Option) *Extractor {
	e := &Extractor{
		newID:   randomSuffix,
		inspect: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultExtractor = New()

// Extract runs the default extractor.
func Extract(raw string) Result {
	return defaultExtractor.Extract(raw)
}

// Extract never fails: unmatched or malformed input yields empty fragment
// lists and the normalized text.
//
// Conflicts are resolved first-match-wins. When a candidate chart overlaps an
// accepted chart, that matcher resumes scanning after the accepted span.
// Tables resume the same way after an accepted table. A table whose text is contained in an accepted
// chart is dropped.
func (e *Extractor) Extract(raw string) Result {
	charts := make([]Fragment, 0)
	for pi, m := range chartMatchers {
		mi := 0
		scan(raw, m, func(start, end int) int {
			if resume, blocked := blockedUntil(charts, start, end); blocked {
				return resume
			}
			charts = append(charts, e.fragment(KindChart, m, pi, mi, raw, []int{start, end}))
			mi++
			return end
		})
	}

	tables := make([]Fragment, 0)
	for pi, m := range tableMatchers {
		mi := 0
		scan(raw, m, func(start, end int) int {
			if containedInAny(charts, raw[start:end]) {
				return end
			}
			if resume, blocked := blockedUntil(tables, start, end); blocked {
				return resume
			}
			tables = append(tables, e.fragment(KindTable, m, pi, mi, raw, []int{start, end}))
			mi++
			return end
		})
	}

	return Result{
		Charts:   charts,
		Tables:   tables,
		Residual: residual(raw, charts, tables),
	}
}

func (e *Extractor) fragment(kind Kind, m matcher, patternIdx, matchIdx int, raw string, loc []int) Fragment {
	markup := raw[loc[0]:loc[1]]
	category := m.resolve(markup)

	f := Fragment{
		ID:       fmt.Sprintf("%s-%d-%d-%s", kind, patternIdx, matchIdx, e.newID()),
		Kind:     kind,
		Markup:   markup,
		Category: category,
		Label:    string(category),
		Size:     len(markup),
		start:    loc[0],
		end:      loc[1],
	}

	if kind == KindTable {
		f.RowCount = CountRows(markup)
		f.Size = f.RowCount
		f.Label = TableLabel(category, f.RowCount)
	}

	if e.inspect {
		inspect(&f)
	}

	return f
}

// scan feeds successive matches of m to visit, which returns the offset the
// next search starts from.
func scan(raw string, m matcher, visit func(start, end int) (next int)) {
	pos := 0
	for pos < len(raw) {
		loc := m.pattern.FindStringIndex(raw[pos:])
		if loc == nil {
			return
		}
		start, end := pos+loc[0], pos+loc[1]
		next := visit(start, end)
		if next <= pos {
			next = pos + 1
		}
		pos = next
	}
}

// blockedUntil reports whether [start, end) overlaps an accepted fragment and,
// if so, the furthest end among the overlapped fragments.
func blockedUntil(fragments []Fragment, start, end int) (int, bool) {
	resume, blocked := 0, false
	for _, f := range fragments {
		if f.overlaps(start, end) {
			blocked = true
			resume = max(resume, f.end)
		}
	}
	return resume, blocked
}

func containedInAny(fragments []Fragment, markup string) bool {
	for _, f := range fragments {
		if strings.Contains(f.Markup, markup) {
			return true
		}
	}
	return false
}

// residual cuts every accepted span out of raw exactly once, then strips
// code fences and collapses blank runs.
func residual(raw string, groups ...[]Fragment) string {
	var spans [][2]int
	for _, group := range groups {
		for _, f := range group {
			spans = append(spans, [2]int{f.start, f.end})
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i][0] < spans[j][0] })

	var b strings.Builder
	b.Grow(len(raw))
	pos := 0
	for _, span := range spans {
		if span[0] > pos {
			b.WriteString(raw[pos:span[0]])
		}
		if span[1] > pos {
			pos = span[1]
		}
	}
	b.WriteString(raw[pos:])

	return Normalize(b.String())
}

// Normalize removes fenced code blocks, collapses three or more consecutive
// newlines to two and trims surrounding whitespace.
func Normalize(text string) string {
	text = htmlFence.ReplaceAllString(text, "")
	text = anyFence.ReplaceAllString(text, "")
	text = blankRun.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}
