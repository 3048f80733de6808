package markdown

// BlockKind identifies the coarse type of a parsed block.
type BlockKind int

const (
	// BlockHeading is an ATX heading (# through ######).
	BlockHeading BlockKind = iota
	// BlockCode is a fenced code block.
	BlockCode
	// BlockProse is a run of paragraph, list, table, or quote lines.
	BlockProse
)

// Link is an inline markdown link found in a prose block.
type Link struct {
	Text   string
	Target string
	Line   int
}

// Block is one parsed markdown block.
type Block struct {
	Kind BlockKind
	// Line is the 1-based source line where the block starts.
	Line int

	// Heading fields.
	Level int
	Text  string
	Slug  string

	// Code fields.
	Language string
	Info     string
	Body     string
	Unclosed bool

	// Prose fields.
	Lines []string
	Links []Link
}

// Document is a parsed markdown file.
type Document struct {
	Name   string
	Blocks []Block
}

// Headings returns the document's heading blocks in order.
func (d Document) Headings() []Block {
	out := make([]Block, 0)
	for _, block := range d.Blocks {
		if block.Kind == BlockHeading {
			out = append(out, block)
		}
	}
	return out
}
