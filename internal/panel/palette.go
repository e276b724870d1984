package panel

import "github.com/pankaj-dahiya-devops/netscope/internal/models"

// Palette is the color set of one panel family. HeaderBG doubles as the
// panel border color.
type Palette struct {
	HeaderBG  string
	HeaderFG  string
	InfoBG    string
	InfoFG    string
	MetaBG    string
	MetaFG    string
	SectionBG string
}

var (
	// PeeringPalette colors peering, NAT gateway and internet gateway panels.
	PeeringPalette = Palette{
		HeaderBG:  "#6b21a8",
		HeaderFG:  "#ffffff",
		InfoBG:    "#f3e8ff",
		InfoFG:    "#581c87",
		MetaBG:    "#e9d5ff",
		MetaFG:    "#5b21b6",
		SectionBG: "#ddd6fe",
	}

	// RouteTablePalette colors the route table block inside subnet cells.
	RouteTablePalette = Palette{
		HeaderBG:  "#1e3a8a",
		HeaderFG:  "#ffffff",
		InfoBG:    "#eff6ff",
		InfoFG:    "#1e3a8a",
		MetaBG:    "#dbeafe",
		MetaFG:    "#1e3a8a",
		SectionBG: "#bfdbfe",
	}

	// VPCPalette colors the VPC cluster title panel.
	VPCPalette = Palette{
		HeaderBG:  "#1d4ed8",
		HeaderFG:  "#ffffff",
		InfoBG:    "#eff6ff",
		InfoFG:    "#1e40af",
		MetaBG:    "#dbeafe",
		MetaFG:    "#1e3a8a",
		SectionBG: "#bfdbfe",
	}

	// VirtualPrivateGatewayPalette colors VPN gateway panels.
	VirtualPrivateGatewayPalette = Palette{
		HeaderBG:  "#047857",
		HeaderFG:  "#ffffff",
		InfoBG:    "#ecfdf5",
		InfoFG:    "#064e3b",
		MetaBG:    "#d1fae5",
		MetaFG:    "#065f46",
		SectionBG: "#bbf7d0",
	}

	// PublicSubnetPalette colors cells of public subnets.
	PublicSubnetPalette = Palette{
		HeaderBG:  "#d9f99d",
		HeaderFG:  "#365314",
		InfoBG:    "#f7fee7",
		InfoFG:    "#3f6212",
		MetaBG:    "#ecfccb",
		MetaFG:    "#3f6212",
		SectionBG: "#bef264",
	}

	// PrivateSubnetPalette colors cells of private application and data
	// subnets.
	PrivateSubnetPalette = Palette{
		HeaderBG:  "#dcfce7",
		HeaderFG:  "#14532d",
		InfoBG:    "#f0fdf4",
		InfoFG:    "#166534",
		MetaBG:    "#d1fae5",
		MetaFG:    "#166534",
		SectionBG: "#bbf7d0",
	}
)

// Neutral cell colors for shared and isolated subnets, and the blue
// fallback for everything else.
const (
	neutralFill = "#e2e2e2"
	neutralFont = "#2d3748"
	defaultFill = "#cfe3ff"
	defaultFont = "#1a365d"
)

// SubnetColors picks the fill and font color of a subnet cell from its
// classification. Isolation wins over the tier color so unreachable
// subnets read gray regardless of naming.
func SubnetColors(classification models.Tier, isolated bool) (fill, font string) {
	fill, font = defaultFill, defaultFont
	switch classification {
	case models.TierPublic:
		fill, font = PublicSubnetPalette.HeaderBG, PublicSubnetPalette.HeaderFG
	case models.TierPrivateApp, models.TierPrivateData:
		fill, font = PrivateSubnetPalette.HeaderBG, PrivateSubnetPalette.HeaderFG
	case models.TierShared:
		fill, font = neutralFill, neutralFont
	}
	if isolated {
		fill, font = neutralFill, neutralFont
	}
	return fill, font
}
