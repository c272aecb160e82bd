package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// inspect fills Title and Columns from the parsed markup. Parse problems
// leave the fragment untouched.
func inspect(f *Fragment) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(f.Markup))
	if err != nil {
		return
	}

	switch f.Kind {
	case KindTable:
		f.Title = firstText(doc, "caption", "h1, h2, h3, h4")
		doc.Find("table").First().Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
			cells := row.Find("th")
			if cells.Length() == 0 {
				return true
			}
			cells.Each(func(_ int, cell *goquery.Selection) {
				f.Columns = append(f.Columns, squash(cell.Text()))
			})
			return false
		})
	case KindChart:
		f.Title = firstText(doc, "h1, h2, h3, h4", "title")
	}
}

func firstText(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if text := squash(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
