package graphviz

import (
	"fmt"
	"html"
	"strings"

	"github.com/pankaj-dahiya-devops/netscope/internal/panel"
)

// EscapeLabel escapes a value for use inside Graphviz HTML-like labels.
// html.EscapeString already emits decimal entities, which every dot
// release accepts; raw non-ASCII characters do not parse reliably, so
// everything outside ASCII becomes a decimal entity too (the route
// arrow, for example, turns into &#8594;).
func EscapeLabel(value string) string {
	escaped := html.EscapeString(value)

	var b strings.Builder
	b.Grow(len(escaped))
	for _, r := range escaped {
		if r > 127 {
			fmt.Fprintf(&b, "&#%d;", r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// labelHTML serializes any panel label into Graphviz HTML markup, without
// the outer angle brackets; those are added when the value is attached as
// a dot.HTML attribute.
func labelHTML(label panel.Label) string {
	switch l := label.(type) {
	case panel.Panel:
		return panelLabel(l)
	case panel.IconPanel:
		return iconPanelLabel(l)
	case panel.IconCard:
		return iconCardLabel(l)
	case panel.CellLabel:
		return cellLabel(l)
	case panel.ServicePanel:
		return servicePanelLabel(l)
	case panel.BoldText:
		return "<B>" + EscapeLabel(string(l)) + "</B>"
	}
	return ""
}

// rowHTML emits one panel row as a table row. The bold label prefix sits
// on the row itself; builders already restrict it to a group's first line.
func rowHTML(row panel.Row) string {
	if row.Text == "" && row.Label == "" {
		return fmt.Sprintf(`<TR><TD ALIGN="LEFT" BGCOLOR="%s"> </TD></TR>`, row.BG)
	}

	content := EscapeLabel(row.Text)
	if row.Bold {
		content = "<B>" + content + "</B>"
	}
	if row.Italic {
		content = "<I>" + content + "</I>"
	}
	if row.Bullet {
		content = "&#8226; " + content
	}
	if row.Label != "" {
		content = "<B>" + EscapeLabel(row.Label) + ":</B> " + content
	}

	font := fmt.Sprintf(`<FONT COLOR="%s">`, row.FG)
	if row.Small {
		// Identifier rows shrink less than route listings.
		size := 10
		if row.Kind == panel.RowMeta {
			size = 11
		}
		font = fmt.Sprintf(`<FONT POINT-SIZE="%d" COLOR="%s">`, size, row.FG)
	}

	return fmt.Sprintf(`<TR><TD ALIGN="LEFT" BGCOLOR="%s">%s%s</FONT></TD></TR>`, row.BG, font, content)
}

// panelTable builds the bordered row table shared by plain and composite
// panels.
func panelTable(border string, rows []panel.Row) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<TABLE BORDER="1" CELLBORDER="0" CELLSPACING="0" CELLPADDING="4" COLOR="%s">`, border)
	for _, row := range rows {
		b.WriteString(rowHTML(row))
	}
	b.WriteString(`</TABLE>`)
	return b.String()
}

func panelLabel(p panel.Panel) string {
	return panelTable(p.Border, p.Rows)
}

// iconPanelLabel places a colored icon block beside the row table.
func iconPanelLabel(p panel.IconPanel) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<TABLE BORDER="1" CELLBORDER="0" CELLSPACING="0" CELLPADDING="0" COLOR="%s">`, p.Border)
	b.WriteString(`<TR>`)
	fmt.Fprintf(&b, `<TD BGCOLOR="%s" CELLPADDING="6"><FONT COLOR="%s"><B>%s</B></FONT></TD>`,
		p.IconBG, p.IconFG, EscapeLabel(p.Icon))
	fmt.Fprintf(&b, `<TD BGCOLOR="%s"><TABLE BORDER="0" CELLBORDER="0" CELLSPACING="0" CELLPADDING="4">`, p.BodyBG)
	for _, row := range p.Rows {
		b.WriteString(rowHTML(row))
	}
	b.WriteString(`</TABLE></TD>`)
	b.WriteString(`</TR></TABLE>`)
	return b.String()
}

// iconCardLabel is the compact icon-beside-text form. Icon text is always
// white; the card palettes pick icon backgrounds dark enough for that.
func iconCardLabel(c panel.IconCard) string {
	lines := []string{"<B>" + EscapeLabel(c.Title) + "</B>"}
	for _, line := range c.Lines {
		lines = append(lines, EscapeLabel(line))
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<TABLE BORDER="1" CELLBORDER="0" CELLSPACING="0" CELLPADDING="4" COLOR="%s">`, c.Border)
	b.WriteString(`<TR>`)
	fmt.Fprintf(&b, `<TD BGCOLOR="%s"><FONT COLOR="#ffffff"><B>%s</B></FONT></TD>`, c.IconBG, EscapeLabel(c.Icon))
	fmt.Fprintf(&b, `<TD ALIGN="LEFT" BGCOLOR="%s"><FONT COLOR="%s">%s</FONT></TD>`,
		c.BodyBG, c.BodyFG, strings.Join(lines, `<BR ALIGN="LEFT"/>`))
	b.WriteString(`</TR></TABLE>`)
	return b.String()
}

// cellLabel stacks the subnet panel, the route table panel and the
// optional instance strip into one cell. The route section carries the
// port route edges attach to.
func cellLabel(c panel.CellLabel) string {
	var b strings.Builder
	b.WriteString(`<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0">`)
	fmt.Fprintf(&b, `<TR><TD ALIGN="LEFT" BGCOLOR="#ffffff">%s</TD></TR>`, panelLabel(c.Subnet))
	fmt.Fprintf(&b, `<TR><TD PORT="routes" BGCOLOR="#ffffff" ALIGN="LEFT">%s</TD></TR>`, panelLabel(c.Routes))

	if len(c.Instances) > 0 {
		lines := []string{`<FONT POINT-SIZE="11"><B>Instances</B></FONT>`}
		for _, instance := range c.Instances {
			lines = append(lines, fmt.Sprintf(`<FONT POINT-SIZE="11">%s</FONT>`, EscapeLabel(instance)))
		}
		fmt.Fprintf(&b, `<TR><TD BGCOLOR="#eef2ff"><FONT COLOR="#1a365d">%s</FONT></TD></TR>`,
			strings.Join(lines, `<BR ALIGN="LEFT"/>`))
	}

	b.WriteString(`</TABLE>`)
	return b.String()
}

func servicePanelLabel(p panel.ServicePanel) string {
	var b strings.Builder
	b.WriteString(`<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0">`)
	fmt.Fprintf(&b, `<TR><TD BGCOLOR="%s"><FONT COLOR="%s"><B>%s</B></FONT></TD></TR>`,
		p.BG, p.FG, EscapeLabel(p.Title))
	if len(p.Lines) == 0 {
		b.WriteString(`<TR><TD ALIGN="LEFT">No resources found</TD></TR>`)
	}
	for _, line := range p.Lines {
		fmt.Fprintf(&b, `<TR><TD ALIGN="LEFT">%s</TD></TR>`, EscapeLabel(line))
	}
	b.WriteString(`</TABLE>`)
	return b.String()
}
