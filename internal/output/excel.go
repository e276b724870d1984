package output

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// serviceForResource maps resource types to the service keys used by the
// inventory and the --services flag. Types missing from the map fall back
// to the lowercased type string.
var serviceForResource = map[models.ResourceType]string{
	models.ResourceEC2Instance:    "ec2",
	models.ResourceEBSVolume:      "ec2",
	models.ResourceSecurityGroup:  "vpc",
	models.ResourceNetworkACL:     "vpc",
	models.ResourceSubnet:         "vpc",
	models.ResourceRouteTable:     "vpc",
	models.ResourceNATGateway:     "vpc",
	models.ResourceVPNConnection:  "vpc",
	models.ResourcePeering:        "vpc",
	models.ResourceLoadBalancer:   "elb",
	models.ResourceRDSInstance:    "rds",
	models.ResourceS3Bucket:       "s3",
	models.ResourceIAMUser:        "iam",
	models.ResourceIAMAccessKey:   "iam",
	models.ResourceRootAccount:    "iam",
	models.ResourceCloudTrail:     "cloudtrail",
	models.ResourceGuardDuty:      "guardduty",
	models.ResourceConfigRecorder: "config",
	models.ResourceKMSKey:         "kms",
	models.ResourceACMCertificate: "acm",
}

// ServiceFor returns the service key a finding belongs to.
func ServiceFor(f models.Finding) string {
	if svc, ok := serviceForResource[f.ResourceType]; ok {
		return svc
	}
	return strings.ToLower(string(f.ResourceType))
}

// ExportFindingsExcel writes findings to an .xlsx workbook with a single
// "Findings" sheet: Service, Resource ID, Severity, Message.
func ExportFindingsExcel(path string, findings []models.Finding) error {
	rows := make([][]any, 0, len(findings))
	for _, f := range findings {
		rows = append(rows, []any{ServiceFor(f), f.ResourceID, string(f.Severity), f.Explanation})
	}
	return exportSheet(path, "Findings", []string{"Service", "Resource ID", "Severity", "Message"}, rows)
}

// ExportInventoryExcel writes the audited-resource inventory to an .xlsx
// workbook with a single "Inventory" sheet: Service, Resource ID, Status, Details.
func ExportInventoryExcel(path string, inventory []models.InventoryItem) error {
	rows := make([][]any, 0, len(inventory))
	for _, item := range inventory {
		rows = append(rows, []any{item.Service, item.ResourceID, string(item.Status), item.Details})
	}
	return exportSheet(path, "Inventory", []string{"Service", "Resource ID", "Status", "Details"}, rows)
}

// exportSheet writes a single-sheet workbook: one header row, one row per
// entry, and column widths sized to the longest cell (capped at 60).
func exportSheet(path, sheet string, headers []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(headers))
	widths := make([]int, len(headers))
	for i, h := range headers {
		header[i] = h
		widths[i] = len(h)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
		for col, v := range row {
			if col >= len(widths) {
				break
			}
			if n := len(fmt.Sprint(v)); n > widths[col] {
				widths[col] = n
			}
		}
	}

	for i, w := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		width := float64(w + 2)
		if width > 60 {
			width = 60
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
