package panel

import (
	"strings"
	"unicode"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// InternetCard builds the internet entry point card shown above each VPC's
// ingress tier.
func InternetCard(vpcID string) IconCard {
	return IconCard{
		Title:  "Internet",
		Lines:  []string{"VPC " + vpcID},
		Icon:   "WWW",
		IconBG: "#1a202c",
		BodyBG: "#edf2f7",
		BodyFG: "#1a202c",
		Border: "#1a202c",
	}
}

// EndpointCard builds the card of a VPC endpoint. The service line keeps
// only the last two segments of the service name; the full
// com.amazonaws.<region> prefix is noise at diagram scale.
func EndpointCard(endpoint models.VPCEndpoint) IconCard {
	title := endpoint.ID
	if title == "" {
		title = "VPC Endpoint"
	}
	var lines []string
	if endpoint.Type != "" {
		lines = append(lines, capitalize(endpoint.Type))
	}
	if service := serviceTail(endpoint.ServiceName); service != "" {
		lines = append(lines, service)
	}
	return IconCard{
		Title:  title,
		Lines:  lines,
		Icon:   "VPCE",
		IconBG: "#4c51bf",
		BodyBG: "#e8e8ff",
		BodyFG: "#2c5282",
		Border: "#4c51bf",
	}
}

func serviceTail(serviceName string) string {
	if serviceName == "" {
		return ""
	}
	parts := strings.Split(serviceName, ".")
	if len(parts) > 2 {
		parts = parts[len(parts)-2:]
	}
	return strings.Join(parts, ", ")
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// RDSCard builds the card of an RDS instance placed in the private data
// tier.
func RDSCard(db models.DBInstance) IconCard {
	title := db.Identifier
	if title == "" {
		title = "RDS Instance"
	}
	var lines []string
	if db.Engine != "" {
		lines = append(lines, "Engine: "+db.Engine)
	}
	if db.Class != "" {
		lines = append(lines, "Class: "+db.Class)
	}
	if db.Status != "" {
		lines = append(lines, "Status: "+db.Status)
	}
	return IconCard{
		Title:  title,
		Lines:  lines,
		Icon:   "RDS",
		IconBG: "#9b2c2c",
		BodyBG: "#fdebd0",
		BodyFG: "#7b341e",
		Border: "#c05621",
	}
}

// GatewayCard builds the card of a route target that gets no dedicated
// panel. The second return reports whether the target type has a card at
// all; instances, network interfaces and unrecognized gateways do not.
func GatewayCard(id string, typ models.TargetType) (IconCard, bool) {
	switch typ {
	case models.TargetEgressOnlyIGW:
		return IconCard{
			Title:  id,
			Lines:  []string{"Egress-only IGW"},
			Icon:   "EIGW",
			IconBG: "#2d3748",
			BodyBG: "#f7fafc",
			BodyFG: "#2d3748",
			Border: "#2d3748",
		}, true
	case models.TargetTransitGateway:
		return IconCard{
			Title:  id,
			Lines:  []string{"Transit Gateway"},
			Icon:   "TGW",
			IconBG: "#2c5282",
			BodyBG: "#ebf8ff",
			BodyFG: "#1a365d",
			Border: "#2c5282",
		}, true
	case models.TargetCarrierGateway:
		return IconCard{
			Title:  id,
			Lines:  []string{"Carrier Gateway"},
			Icon:   "CGW",
			IconBG: "#2c5282",
			BodyBG: "#f7fafc",
			BodyFG: "#1a365d",
			Border: "#2c5282",
		}, true
	case models.TargetLocalGateway:
		return IconCard{
			Title:  id,
			Lines:  []string{"Local Gateway"},
			Icon:   "LGW",
			IconBG: "#2c5282",
			BodyBG: "#f7fafc",
			BodyFG: "#1a365d",
			Border: "#2c5282",
		}, true
	}
	return IconCard{}, false
}

// ServiceLabel adapts a global service summary into its panel label.
func ServiceLabel(summary models.GlobalServiceSummary) ServicePanel {
	return ServicePanel{
		Title: summary.Title,
		Lines: summary.Lines,
		BG:    summary.FillColor,
		FG:    summary.FontColor,
	}
}
