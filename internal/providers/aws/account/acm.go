package account

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	acmsvc "github.com/aws/aws-sdk-go-v2/service/acm"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// collectCertificates lists every ACM certificate in the region and describes
// each one to resolve its domain, status, expiry, and attachments. InUse is
// true when at least one AWS resource references the certificate.
// Certificates that cannot be described are omitted.
func collectCertificates(ctx context.Context, client acmAPIClient) ([]models.ACMCertificate, error) {
	paginator := acmsvc.NewListCertificatesPaginator(client, &acmsvc.ListCertificatesInput{})
	var certs []models.ACMCertificate
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list ACM certificates: %w", err)
		}
		for _, summary := range page.CertificateSummaryList {
			arn := aws.ToString(summary.CertificateArn)
			if arn == "" {
				continue
			}

			descOut, descErr := client.DescribeCertificate(ctx, &acmsvc.DescribeCertificateInput{
				CertificateArn: aws.String(arn),
			})
			if descErr != nil || descOut.Certificate == nil {
				continue
			}
			detail := descOut.Certificate

			cert := models.ACMCertificate{
				ARN:        arn,
				DomainName: aws.ToString(detail.DomainName),
				Status:     string(detail.Status),
				InUse:      len(detail.InUseBy) > 0,
			}
			if detail.NotAfter != nil {
				cert.NotAfter = *detail.NotAfter
			}
			certs = append(certs, cert)
		}
	}
	return certs, nil
}
