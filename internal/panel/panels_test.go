package panel

import (
	"strings"
	"testing"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

func TestVPCPanelRows(t *testing.T) {
	p := VPCPanel(models.VPC{
		ID:            "vpc-1",
		CIDRBlock:     "10.0.0.0/16",
		DHCPOptionsID: "dopt-9",
	})

	if p.Icon != "VPC" || p.IconBG != "#1d4ed8" || p.BodyBG != "#ffffff" {
		t.Errorf("unexpected icon: %+v", p)
	}
	rows := p.Rows
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %+v", len(rows), rows)
	}
	if rows[0].Text != "VPC vpc-1" || !rows[0].Bold {
		t.Errorf("unexpected header: %+v", rows[0])
	}
	if rows[1].Label != "CIDR" || rows[1].Text != "10.0.0.0/16" {
		t.Errorf("unexpected cidr row: %+v", rows[1])
	}
	if rows[2].Label != "DHCP Options" || rows[2].Text != "dopt-9" {
		t.Errorf("unexpected dhcp row: %+v", rows[2])
	}
}

func TestVPCPanelSuppressesDefaultDHCPOptions(t *testing.T) {
	p := VPCPanel(models.VPC{ID: "vpc-1", CIDRBlock: "10.0.0.0/16", DHCPOptionsID: "default"})
	for _, row := range p.Rows {
		if row.Label == "DHCP Options" {
			t.Fatalf("default DHCP options should be suppressed: %+v", row)
		}
	}
}

func TestNATGatewayPanelRows(t *testing.T) {
	p := NATGatewayPanel(models.NATGateway{
		ID:       "nat-1",
		SubnetID: "subnet-1",
		PublicIP: "52.31.0.9",
	}, "eu-west-1a")

	if p.Icon != "NAT" || p.IconBG != PeeringPalette.HeaderBG {
		t.Errorf("unexpected icon: %+v", p)
	}
	labels := []string{"", "Gateway ID", "Availability Zone", "Elastic IP", "Subnet"}
	texts := []string{"NAT Gateway", "nat-1", "eu-west-1a", "52.31.0.9", "subnet-1"}
	if len(p.Rows) != len(labels) {
		t.Fatalf("expected %d rows, got %d: %+v", len(labels), len(p.Rows), p.Rows)
	}
	for i, row := range p.Rows {
		if row.Label != labels[i] || row.Text != texts[i] {
			t.Errorf("row %d = {%q %q}, want {%q %q}", i, row.Label, row.Text, labels[i], texts[i])
		}
	}
}

func TestNATGatewayPanelOmitsMissingElasticIP(t *testing.T) {
	p := NATGatewayPanel(models.NATGateway{ID: "nat-1", SubnetID: "subnet-1"}, "eu-west-1a")
	for _, row := range p.Rows {
		if row.Label == "Elastic IP" {
			t.Fatalf("unexpected elastic IP row: %+v", row)
		}
	}
}

func TestInternetGatewayPanelAttachments(t *testing.T) {
	p := InternetGatewayPanel(models.InternetGateway{
		ID:   "igw-1",
		Name: "edge",
		Attachments: []models.IGWAttachment{
			{VPCID: "vpc-1", State: "available"},
			{VPCID: "vpc-2"},
			{State: "detaching"},
		},
	})

	if p.Icon != "IGW" {
		t.Errorf("icon = %q", p.Icon)
	}
	var attachments []Row
	for _, row := range p.Rows {
		if row.Kind == RowInfo {
			attachments = append(attachments, row)
		}
	}
	if len(attachments) != 3 {
		t.Fatalf("expected 3 attachment rows, got %d: %+v", len(attachments), attachments)
	}
	if attachments[0].Label != "Attachments" || attachments[0].Text != "vpc-1 (available)" {
		t.Errorf("unexpected first attachment: %+v", attachments[0])
	}
	if attachments[1].Label != "" || attachments[1].Text != "vpc-2" {
		t.Errorf("unexpected second attachment: %+v", attachments[1])
	}
	if attachments[2].Text != "detaching" {
		t.Errorf("unexpected third attachment: %+v", attachments[2])
	}
}

func TestPeeringPanelWithConnection(t *testing.T) {
	conn := &models.VPCPeeringConnection{
		ID:         "pcx-1",
		Name:       "core-to-shared",
		StatusCode: "active",
		Requester: models.PeeringVPCInfo{
			VPCID: "vpc-1", OwnerID: "111111111111", Region: "eu-west-1",
			CIDRs: []string{"10.0.0.0/16", "10.1.0.0/16"},
		},
		Accepter: models.PeeringVPCInfo{VPCID: "vpc-2"},
	}
	p := PeeringPanel("pcx-1", conn)

	if p.Border != PeeringPalette.HeaderBG {
		t.Errorf("border = %q", p.Border)
	}
	var texts []string
	for _, row := range p.Rows {
		if row.Label != "" {
			texts = append(texts, row.Label+": "+row.Text)
		} else {
			texts = append(texts, row.Text)
		}
	}
	want := []string{
		"VPC Peering",
		"core-to-shared",
		"Peering Connection ID: pcx-1",
		"Status: active",
		"Requester",
		"VPC ID: vpc-1",
		"Account: 111111111111",
		"Region: eu-west-1",
		"CIDRs: 10.0.0.0/16, 10.1.0.0/16",
		"Accepter",
		"VPC ID: vpc-2",
	}
	if len(texts) != len(want) {
		t.Fatalf("expected %d rows, got %d: %v", len(want), len(texts), texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestPeeringPanelStatusMessageWinsOverCode(t *testing.T) {
	conn := &models.VPCPeeringConnection{
		ID:            "pcx-1",
		StatusCode:    "active",
		StatusMessage: "Active",
	}
	p := PeeringPanel("pcx-1", conn)
	for _, row := range p.Rows {
		if row.Label == "Status" && row.Text != "Active" {
			t.Errorf("status row = %q, want %q", row.Text, "Active")
		}
	}
}

// Route tables can point at peering connections the account cannot
// describe; the panel still renders with placeholder sections.
func TestPeeringPanelUnknownConnection(t *testing.T) {
	p := PeeringPanel("pcx-404", nil)

	var unknown int
	for _, row := range p.Rows {
		if row.Label == "VPC ID" && row.Text == "Unknown VPC" {
			unknown++
		}
	}
	if unknown != 2 {
		t.Errorf("expected 2 unknown VPC rows, got %d", unknown)
	}
}

func TestVirtualPrivateGatewayPanelNoConnections(t *testing.T) {
	p := VirtualPrivateGatewayPanel("vgw-1", nil, nil)

	if p.Rows[0].Text != "Virtual Private Gateway" {
		t.Errorf("unexpected header: %+v", p.Rows[0])
	}
	var sawCount bool
	var note []string
	for _, row := range p.Rows {
		if row.Text == "Connections: 0" && row.Bold {
			sawCount = true
		}
		if row.Italic {
			note = append(note, row.Text)
		}
	}
	if !sawCount {
		t.Error("missing connection count row")
	}
	if got := strings.Join(note, " "); got != "No Site-to Site VPN connections found" {
		t.Errorf("placeholder rows = %q", got)
	}
}

func TestVirtualPrivateGatewayPanelConnectionBlocks(t *testing.T) {
	conns := []models.VPNConnection{
		{
			ID:                "vpn-2",
			CustomerGatewayID: "cgw-2",
			Type:              "ipsec.1",
			State:             "available",
		},
		{
			ID:                "vpn-1",
			Name:              "branch-office",
			CustomerGatewayID: "cgw-1",
			Type:              "ipsec.1",
			State:             "available",
			Telemetry: []models.VPNTelemetry{
				{OutsideIP: "52.1.1.2", Status: "UP"},
				{OutsideIP: "52.1.1.1", Status: "DOWN"},
				{OutsideIP: "52.1.1.2", Status: "UP"},
			},
		},
	}
	cgws := map[string]*models.CustomerGateway{
		"cgw-1": {ID: "cgw-1", IPAddress: "203.0.113.9"},
	}

	p := VirtualPrivateGatewayPanel("vgw-1", conns, cgws)

	var texts []string
	for _, row := range p.Rows {
		if row.Label != "" {
			texts = append(texts, row.Label+": "+row.Text)
		} else {
			texts = append(texts, row.Text)
		}
	}

	// Connections sort by ID, so vpn-1 renders first.
	want := []string{
		"Virtual Private Gateway",
		"Gateway ID: vgw-1",
		"Connections: 2",
		"Site-to-Site VPN connections",
		"branch-office",
		"VPN ID: vpn-1",
		"Type: ipsec.1",
		"Status: available",
		"Customer gateway: 203.0.113.9",
		"Customer gateway ID: cgw-1",
		"Outside IPs: 52.1.1.1, 52.1.1.2",
		"",
		"vpn-2",
		"VPN ID: vpn-2",
		"Type: ipsec.1",
		"Status: available",
		"Customer gateway: cgw-2",
	}
	if len(texts) != len(want) {
		t.Fatalf("expected %d rows, got %d: %v", len(want), len(texts), texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, texts[i], want[i])
		}
	}
}

// When the customer gateway record is missing, its ID doubles as the
// address and the separate ID row is dropped.
func TestVirtualPrivateGatewayPanelAddressFallsBackToID(t *testing.T) {
	conns := []models.VPNConnection{{ID: "vpn-1", CustomerGatewayID: "cgw-9"}}
	p := VirtualPrivateGatewayPanel("vgw-1", conns, nil)

	var sawAddress bool
	for _, row := range p.Rows {
		if row.Label == "Customer gateway" {
			sawAddress = true
			if row.Text != "cgw-9" {
				t.Errorf("address = %q, want %q", row.Text, "cgw-9")
			}
		}
		if row.Label == "Customer gateway ID" {
			t.Errorf("unexpected gateway ID row: %+v", row)
		}
	}
	if !sawAddress {
		t.Error("missing customer gateway row")
	}
}
