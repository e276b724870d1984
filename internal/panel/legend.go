package panel

// LegendEntry is one sample card in a VPC's legend cluster. Key is stable
// and used to derive node identifiers.
type LegendEntry struct {
	Key  string
	Card IconCard
}

// LegendEntries returns the legend cards in display order. The global
// services entry is only included when a global services cluster is part
// of the diagram.
func LegendEntries(includeGlobal bool) []LegendEntry {
	entries := []LegendEntry{
		{Key: "public", Card: IconCard{
			Title: "Public Subnet", Lines: []string{"CIDR: 10.0.0.0/24"},
			Icon: "PUB", IconBG: "#047857", BodyBG: "#ccebd4", BodyFG: "#1f3f2e", Border: "#047857",
		}},
		{Key: "private", Card: IconCard{
			Title: "Private App Subnet", Lines: []string{"CIDR: 10.0.1.0/24"},
			Icon: "APP", IconBG: "#1d4ed8", BodyBG: "#cfe3ff", BodyFG: "#1a365d", Border: "#1d4ed8",
		}},
		{Key: "isolated", Card: IconCard{
			Title: "Isolated Subnet", Lines: []string{"CIDR: 10.0.2.0/24"},
			Icon: "ISO", IconBG: "#4a5568", BodyBG: "#e2e2e2", BodyFG: "#2d3748", Border: "#4a5568",
		}},
		{Key: "nat", Card: IconCard{
			Title: "NAT Gateway", Lines: []string{"Elastic IP association"},
			Icon: "NAT", IconBG: PeeringPalette.HeaderBG, BodyBG: PeeringPalette.InfoBG,
			BodyFG: PeeringPalette.InfoFG, Border: PeeringPalette.HeaderBG,
		}},
		{Key: "vpce", Card: IconCard{
			Title: "VPC Endpoint", Lines: []string{"Interface example"},
			Icon: "VPCE", IconBG: "#4c51bf", BodyBG: "#e8e8ff", BodyFG: "#2c5282", Border: "#4c51bf",
		}},
		{Key: "instances", Card: IconCard{
			Title: "EC2 Instance", Lines: []string{"Private IP: 10.0.0.12"},
			Icon: "EC2", IconBG: "#3730a3", BodyBG: "#eef2ff", BodyFG: "#1e1b4b", Border: "#3730a3",
		}},
		{Key: "rds", Card: IconCard{
			Title: "RDS Instance", Lines: []string{"Engine: postgres"},
			Icon: "RDS", IconBG: "#9b2c2c", BodyBG: "#fdebd0", BodyFG: "#7b341e", Border: "#c05621",
		}},
		{Key: "igw", Card: IconCard{
			Title: "Internet Gateway", Lines: []string{"Internet access"},
			Icon: "IGW", IconBG: "#2d3748", BodyBG: "#f7fafc", BodyFG: "#2d3748", Border: "#2d3748",
		}},
	}
	if includeGlobal {
		entries = append(entries, LegendEntry{Key: "global_service", Card: IconCard{
			Title: "Global Service Panel", Lines: []string{"Aggregated account view"},
			Icon: "GLB", IconBG: "#2c5282", BodyBG: "#f7fafc", BodyFG: "#1a365d", Border: "#2c5282",
		}})
	}
	return entries
}
