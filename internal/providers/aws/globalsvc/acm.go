package globalsvc

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	acmsvc "github.com/aws/aws-sdk-go-v2/service/acm"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// buildACMSummary lists certificates as "domain [STATUS]". A certificate
// without a domain name is labelled by the resource part of its ARN.
func buildACMSummary(ctx context.Context, src *Source, maxItems int) (*models.GlobalServiceSummary, error) {
	var lines []string
	paginator := acmsvc.NewListCertificatesPaginator(src.ACM, &acmsvc.ListCertificatesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list certificates: %w", err)
		}
		for _, cert := range page.CertificateSummaryList {
			label := aws.ToString(cert.DomainName)
			if label == "" {
				if arn := aws.ToString(cert.CertificateArn); arn != "" {
					label = arn[strings.LastIndex(arn, ":")+1:]
				} else {
					label = "Certificate"
				}
			}
			if status := string(cert.Status); status != "" {
				label = fmt.Sprintf("%s [%s]", label, status)
			}
			lines = append(lines, label)
		}
	}
	if len(lines) == 0 {
		return nil, nil
	}
	sort.Strings(lines)

	return &models.GlobalServiceSummary{
		Title:     "AWS Certificate Manager",
		Lines:     TruncateLines(lines, maxItems),
		FillColor: "#e6fffa",
		FontColor: "#285e61",
	}, nil
}
