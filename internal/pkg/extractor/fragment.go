package extractor

// Kind distinguishes chart fragments from table fragments.
type Kind string

const (
	KindChart Kind = "chart"
	KindTable Kind = "table"
)

// Category is the display classification of a fragment.
type Category string

// Chart categories, in the order the resolver checks them.
const (
	CategoryPlotly               Category = "Plotly.js Chart"
	CategoryChartJS              Category = "Chart.js"
	CategoryD3                   Category = "D3.js Visualization"
	CategorySVG                  Category = "SVG Chart"
	CategoryCanvas               Category = "Canvas Chart"
	CategoryHTMLPage             Category = "Complete HTML Page"
	CategoryInteractive          Category = "Interactive Chart"
	CategoryGenericVisualization Category = "HTML Visualization"
)

// Table categories.
const (
	CategoryPriceTable    Category = "Price Data Table"
	CategoryRegionalTable Category = "Regional Data Table"
	CategoryTrendTable    Category = "Trend Analysis Table"
	CategoryDataTable     Category = "Data Table"
)

// Fragment is a contiguous piece of markup recognized inside generated text.
type Fragment struct {
	// ID is unique within one extraction pass.
	ID string `json:"id"`
	// Kind is chart or table.
	Kind Kind `json:"kind"`
	// Markup is the exact substring of the input the fragment was cut from.
	Markup string `json:"markup"`
	// Category is the resolved classification.
	Category Category `json:"category"`
	// Label is the human readable category, tables carry their row count.
	Label string `json:"label"`
	// Size is the markup length in bytes for charts and the row count for tables.
	Size int `json:"size"`
	// RowCount is the number of <tr occurrences (tables only).
	RowCount int `json:"row_count,omitempty"`
	// Title is the first heading, caption or document title found in the markup.
	Title string `json:"title,omitempty"`
	// Columns are the header cells of a table fragment.
	Columns []string `json:"columns,omitempty"`

	start int
	end   int
}

// Result is the outcome of one extraction pass.
type Result struct {
	Charts   []Fragment `json:"charts"`
	Tables   []Fragment `json:"tables"`
	Residual string     `json:"residual"`
}

// Empty reports whether no fragment was extracted.
func (r Result) Empty() bool {
	return len(r.Charts) == 0 && len(r.Tables) == 0
}

// Fragments returns charts followed by tables.
func (r Result) Fragments() []Fragment {
	all := make([]Fragment, 0, len(r.Charts)+len(r.Tables))
	all = append(all, r.Charts...)
	return append(all, r.Tables...)
}

func (f Fragment) overlaps(start, end int) bool {
	return start < f.end && f.start < end
}
