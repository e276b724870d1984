// Package panel builds the structured node labels of the topology diagram.
// A label here is data: ordered typed rows with explicit colors, or an icon
// card with plain text lines. No rendering markup appears anywhere in this
// package; serialization into backend syntax is the renderer adapter's job.
package panel

// RowKind states what a row means within its panel. Serialization treats
// kinds uniformly; kind-specific presentation is carried by the explicit
// color and style fields instead.
type RowKind int

const (
	// RowHeader is the accented title row of a panel.
	RowHeader RowKind = iota
	// RowMeta carries identifiers (resource IDs and names).
	RowMeta
	// RowInfo carries descriptive attributes.
	RowInfo
	// RowSection divides a panel into subsections.
	RowSection
)

// Row is one line of a panel. Text is pre-wrapped: builders emit one Row
// per display line, with Label set only on a group's first row.
type Row struct {
	Kind   RowKind
	Label  string
	Text   string
	BG     string
	FG     string
	Bold   bool
	Italic bool
	Small  bool
	Bullet bool
}

// Label is a diagram node or cluster label. The set of implementations is
// closed; renderer adapters switch exhaustively over it.
type Label interface {
	label()
}

// Panel is a bordered stack of rows (peering connections, virtual private
// gateways).
type Panel struct {
	Border string
	Rows   []Row
}

// IconPanel is a Panel with a colored icon block on its left (NAT and
// internet gateways, the VPC cluster title).
type IconPanel struct {
	Icon   string
	IconBG string
	IconFG string
	BodyBG string
	Border string
	Rows   []Row
}

// IconCard is the compact icon-beside-text form used for endpoints,
// databases, plain gateways and legend entries. Icon text is always
// rendered white on IconBG.
type IconCard struct {
	Title  string
	Lines  []string
	Icon   string
	IconBG string
	BodyBG string
	BodyFG string
	Border string
}

// CellLabel is the composite subnet cell: subnet attributes on top, the
// route table below it, and an optional instance strip at the bottom. The
// route section is addressable as an edge port so route edges can leave
// from the matching part of the cell.
type CellLabel struct {
	Subnet    Panel
	Routes    Panel
	Instances []string
}

// ServicePanel is the title-plus-lines label of one global service summary.
type ServicePanel struct {
	Title string
	Lines []string
	BG    string
	FG    string
}

// BoldText is a plain bold text label (tier and legend cluster titles).
type BoldText string

func (Panel) label()        {}
func (IconPanel) label()    {}
func (IconCard) label()     {}
func (CellLabel) label()    {}
func (ServicePanel) label() {}
func (BoldText) label()     {}
