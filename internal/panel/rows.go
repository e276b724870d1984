package panel

import "strings"

// Row construction helpers shared by the builders. Values are optional:
// empty input yields no rows, so builders can chain attribute groups
// without guarding every field.

func headerRow(text string, p Palette) Row {
	return Row{Kind: RowHeader, Text: text, BG: p.HeaderBG, FG: p.HeaderFG, Bold: true}
}

// labeledRows emits one row per wrapped line of value with the bold label
// prefix on the first line only.
func labeledRows(kind RowKind, label, value, bg, fg string, width int) []Row {
	var rows []Row
	for i, line := range Wrap(value, width) {
		row := Row{Kind: kind, Text: line, BG: bg, FG: fg}
		if i == 0 {
			row.Label = label
		}
		rows = append(rows, row)
	}
	return rows
}

// boldRows emits unlabeled bold rows, one per wrapped line.
func boldRows(kind RowKind, value, bg, fg string, width int) []Row {
	var rows []Row
	for _, line := range Wrap(value, width) {
		rows = append(rows, Row{Kind: kind, Text: line, BG: bg, FG: fg, Bold: true})
	}
	return rows
}

// italicRows emits unlabeled italic rows, one per wrapped line.
func italicRows(kind RowKind, value, bg, fg string, width int) []Row {
	var rows []Row
	for _, line := range Wrap(value, width) {
		rows = append(rows, Row{Kind: kind, Text: line, BG: bg, FG: fg, Italic: true})
	}
	return rows
}

// collapse normalizes runs of whitespace, including non-breaking spaces and
// line breaks, to single spaces. Gateway and VPC panels apply it to tag
// values before wrapping.
func collapse(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
