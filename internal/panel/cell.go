package panel

import "github.com/pankaj-dahiya-devops/netscope/internal/models"

const noRoutesText = "No non-local routes"

// SubnetCellLabel builds the composite label of one subnet cell: subnet
// attributes, the resolved route table, and the instance strip when the
// subnet hosts instances.
func SubnetCellLabel(cell models.SubnetCell) CellLabel {
	label := CellLabel{
		Subnet: subnetPanel(cell),
		Routes: routeTablePanel(cell.RouteSummary),
	}
	for _, instance := range cell.Instances {
		label.Instances = append(label.Instances, instance.DisplayText())
	}
	return label
}

func subnetPanel(cell models.SubnetCell) Panel {
	var headerBG, headerFG, infoBG, infoFG, metaBG, metaFG string
	switch {
	case cell.Tier == models.TierPublic:
		p := PublicSubnetPalette
		headerBG, headerFG = p.HeaderBG, p.HeaderFG
		infoBG, infoFG = p.InfoBG, p.InfoFG
		metaBG, metaFG = p.MetaBG, p.MetaFG
	case (cell.Tier == models.TierPrivateApp || cell.Tier == models.TierPrivateData) && !cell.Isolated:
		p := PrivateSubnetPalette
		headerBG, headerFG = p.HeaderBG, p.HeaderFG
		infoBG, infoFG = p.InfoBG, p.InfoFG
		metaBG, metaFG = p.MetaBG, p.MetaFG
	default:
		headerBG, headerFG = cell.Color, cell.FontColor
		infoBG, infoFG = "#f8fafc", "#1a202c"
		metaBG, metaFG = "#edf2f7", "#1a202c"
	}

	rows := []Row{{Kind: RowHeader, Text: "Subnet", BG: headerBG, FG: headerFG, Bold: true}}
	rows = append(rows, boldRows(RowInfo, cell.Name, infoBG, infoFG, 32)...)
	for _, line := range Wrap(cell.SubnetID, 32) {
		rows = append(rows, Row{Kind: RowMeta, Text: line, BG: metaBG, FG: metaFG, Small: true})
	}
	rows = append(rows, labeledRows(RowInfo, "CIDR", cell.CIDR, infoBG, infoFG, 32)...)
	rows = append(rows, labeledRows(RowInfo, "Availability Zone", cell.AZ, infoBG, infoFG, 32)...)

	return Panel{Border: headerBG, Rows: rows}
}

func routeTablePanel(summary *models.RouteSummary) Panel {
	p := RouteTablePalette
	rows := []Row{headerRow("Route Table", p)}

	noRoutes := Row{
		Kind: RowSection, Text: noRoutesText,
		BG: p.SectionBG, FG: p.InfoFG,
		Italic: true, Small: true,
	}

	if summary == nil {
		return Panel{Border: p.HeaderBG, Rows: append(rows, noRoutes)}
	}

	rows = append(rows, boldRows(RowInfo, summary.Name, p.InfoBG, p.InfoFG, 30)...)
	rows = append(rows, labeledRows(RowMeta, "", summary.RouteTableID, p.MetaBG, p.MetaFG, 30)...)

	if len(summary.Routes) == 0 {
		return Panel{Border: p.HeaderBG, Rows: append(rows, noRoutes)}
	}
	for _, route := range summary.Routes {
		rows = append(rows, Row{
			Kind: RowSection, Text: route.DisplayText(),
			BG: p.SectionBG, FG: p.InfoFG,
			Small: true, Bullet: true,
		})
	}
	return Panel{Border: p.HeaderBG, Rows: rows}
}
