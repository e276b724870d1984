package panel

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// VPCPanel builds the icon panel used as a VPC cluster title. Default DHCP
// option sets carry no information, so the row is suppressed for them.
func VPCPanel(vpc models.VPC) IconPanel {
	p := VPCPalette
	rows := []Row{headerRow("VPC "+vpc.ID, p)}
	rows = append(rows, labeledRows(RowInfo, "CIDR", collapse(vpc.CIDRBlock), p.InfoBG, p.InfoFG, 32)...)

	dhcp := vpc.DHCPOptionsID
	if dhcp == "default" {
		dhcp = ""
	}
	rows = append(rows, labeledRows(RowMeta, "DHCP Options", collapse(dhcp), p.MetaBG, p.MetaFG, 32)...)

	return IconPanel{
		Icon:   "VPC",
		IconBG: p.HeaderBG,
		IconFG: p.HeaderFG,
		BodyBG: "#ffffff",
		Border: p.HeaderBG,
		Rows:   rows,
	}
}

// NATGatewayPanel builds the ingress-tier panel of a NAT gateway. The zone
// is passed in because the gateway's own record may lack one; callers
// resolve it from the hosting subnet first.
func NATGatewayPanel(nat models.NATGateway, az string) IconPanel {
	p := PeeringPalette
	rows := []Row{headerRow("NAT Gateway", p)}
	rows = append(rows, labeledRows(RowMeta, "Gateway ID", collapse(nat.ID), p.MetaBG, p.MetaFG, 32)...)
	rows = append(rows, labeledRows(RowInfo, "Availability Zone", collapse(az), p.InfoBG, p.InfoFG, 32)...)
	rows = append(rows, labeledRows(RowInfo, "Elastic IP", collapse(nat.PublicIP), p.InfoBG, p.InfoFG, 32)...)
	rows = append(rows, labeledRows(RowInfo, "Subnet", collapse(nat.SubnetID), p.InfoBG, p.InfoFG, 32)...)

	return IconPanel{
		Icon:   "NAT",
		IconBG: p.HeaderBG,
		IconFG: p.HeaderFG,
		BodyBG: "#ffffff",
		Border: p.HeaderBG,
		Rows:   rows,
	}
}

// InternetGatewayPanel builds the ingress-tier panel of an internet
// gateway, listing every VPC attachment with its state.
func InternetGatewayPanel(igw models.InternetGateway) IconPanel {
	p := PeeringPalette
	rows := []Row{headerRow("Internet Gateway", p)}
	rows = append(rows, labeledRows(RowMeta, "Gateway ID", collapse(igw.ID), p.MetaBG, p.MetaFG, 32)...)
	rows = append(rows, labeledRows(RowMeta, "Name", collapse(igw.Name), p.MetaBG, p.MetaFG, 32)...)

	label := "Attachments"
	for _, att := range igw.Attachments {
		var text string
		switch {
		case att.VPCID != "" && att.State != "":
			text = fmt.Sprintf("%s (%s)", att.VPCID, att.State)
		case att.VPCID != "":
			text = att.VPCID
		case att.State != "":
			text = att.State
		default:
			continue
		}
		rows = append(rows, labeledRows(RowInfo, label, collapse(text), p.InfoBG, p.InfoFG, 32)...)
		label = ""
	}

	return IconPanel{
		Icon:   "IGW",
		IconBG: p.HeaderBG,
		IconFG: p.HeaderFG,
		BodyBG: "#ffffff",
		Border: p.HeaderBG,
		Rows:   rows,
	}
}

// PeeringPanel builds the panel of a VPC peering connection. A nil
// connection still yields a usable panel: route tables can reference
// peerings the account cannot describe.
func PeeringPanel(connectionID string, conn *models.VPCPeeringConnection) Panel {
	p := PeeringPalette
	rows := []Row{headerRow("VPC Peering", p)}

	var requester, accepter models.PeeringVPCInfo
	if conn != nil {
		requester, accepter = conn.Requester, conn.Accepter
		rows = append(rows, boldRows(RowInfo, conn.Name, p.InfoBG, p.InfoFG, 32)...)
	}

	rows = append(rows, labeledRows(RowMeta, "Peering Connection ID", connectionID, p.MetaBG, p.MetaFG, 32)...)

	if conn != nil {
		status := conn.StatusMessage
		if status == "" {
			status = conn.StatusCode
		}
		rows = append(rows, labeledRows(RowInfo, "Status", status, p.InfoBG, p.InfoFG, 32)...)
	}

	appendSide := func(title string, info models.PeeringVPCInfo) {
		rows = append(rows, boldRows(RowSection, title, p.SectionBG, p.InfoFG, 32)...)
		vpcID := info.VPCID
		if vpcID == "" {
			vpcID = "Unknown VPC"
		}
		rows = append(rows, labeledRows(RowInfo, "VPC ID", vpcID, p.InfoBG, p.InfoFG, 32)...)
		rows = append(rows, labeledRows(RowInfo, "Account", info.OwnerID, p.InfoBG, p.InfoFG, 32)...)
		rows = append(rows, labeledRows(RowInfo, "Region", info.Region, p.InfoBG, p.InfoFG, 32)...)
		if len(info.CIDRs) > 0 {
			rows = append(rows, labeledRows(RowInfo, "CIDRs", strings.Join(info.CIDRs, ", "), p.InfoBG, p.InfoFG, 32)...)
		}
	}
	appendSide("Requester", requester)
	appendSide("Accepter", accepter)

	return Panel{Border: p.HeaderBG, Rows: rows}
}

// vpnBlockBG backs the per-connection blocks inside a virtual private
// gateway panel.
const vpnBlockBG = "#dcfce7"

// VirtualPrivateGatewayPanel builds the panel of a VPN gateway with one
// block per attached site-to-site connection, sorted by connection ID.
func VirtualPrivateGatewayPanel(gatewayID string, conns []models.VPNConnection, customerGateways map[string]*models.CustomerGateway) Panel {
	p := VirtualPrivateGatewayPalette
	rows := []Row{headerRow("Virtual Private Gateway", p)}
	rows = append(rows, labeledRows(RowMeta, "Gateway ID", gatewayID, p.MetaBG, p.MetaFG, 32)...)
	rows = append(rows, boldRows(RowInfo, fmt.Sprintf("Connections: %d", len(conns)), p.InfoBG, p.InfoFG, 32)...)
	rows = append(rows, boldRows(RowSection, "Site-to-Site VPN connections", p.SectionBG, p.InfoFG, 32)...)

	if len(conns) == 0 {
		rows = append(rows, italicRows(RowInfo, "No Site-to-Site VPN connections found", vpnBlockBG, p.InfoFG, 32)...)
		return Panel{Border: p.HeaderBG, Rows: rows}
	}

	sorted := make([]models.VPNConnection, len(conns))
	copy(sorted, conns)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	for i, conn := range sorted {
		rows = append(rows, vpnConnectionRows(conn, customerGateways)...)
		if i != len(sorted)-1 {
			rows = append(rows, Row{Kind: RowInfo, BG: "#ffffff", FG: p.InfoFG})
		}
	}
	return Panel{Border: p.HeaderBG, Rows: rows}
}

func vpnConnectionRows(conn models.VPNConnection, customerGateways map[string]*models.CustomerGateway) []Row {
	p := VirtualPrivateGatewayPalette

	vpnID := conn.ID
	if vpnID == "" {
		vpnID = "unknown"
	}
	title := conn.Name
	if title == "" {
		title = vpnID
	}

	address := conn.CustomerGatewayID
	if cg := customerGateways[conn.CustomerGatewayID]; cg != nil && cg.IPAddress != "" {
		address = cg.IPAddress
	}
	if address == "" {
		address = "unknown"
	}

	outsideIPs := map[string]bool{}
	for _, t := range conn.Telemetry {
		if t.OutsideIP != "" {
			outsideIPs[t.OutsideIP] = true
		}
	}
	ips := make([]string, 0, len(outsideIPs))
	for ip := range outsideIPs {
		ips = append(ips, ip)
	}
	sort.Strings(ips)

	rows := boldRows(RowInfo, title, vpnBlockBG, p.InfoFG, 32)
	rows = append(rows, labeledRows(RowMeta, "VPN ID", vpnID, p.MetaBG, p.MetaFG, 32)...)
	rows = append(rows, labeledRows(RowInfo, "Type", conn.Type, vpnBlockBG, p.InfoFG, 32)...)
	rows = append(rows, labeledRows(RowInfo, "Status", conn.State, vpnBlockBG, p.InfoFG, 32)...)
	rows = append(rows, labeledRows(RowInfo, "Customer gateway", address, vpnBlockBG, p.InfoFG, 32)...)
	if conn.CustomerGatewayID != "" && conn.CustomerGatewayID != address {
		rows = append(rows, labeledRows(RowInfo, "Customer gateway ID", conn.CustomerGatewayID, vpnBlockBG, p.InfoFG, 32)...)
	}
	if len(ips) > 0 {
		rows = append(rows, labeledRows(RowInfo, "Outside IPs", strings.Join(ips, ", "), vpnBlockBG, p.InfoFG, 32)...)
	}
	return rows
}
