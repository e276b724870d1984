package account

import (
	"context"

	guardduty "github.com/aws/aws-sdk-go-v2/service/guardduty"
	guarddutytypes "github.com/aws/aws-sdk-go-v2/service/guardduty/types"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// collectGuardDutyStatus checks whether GuardDuty has an enabled detector in
// the given region. It first lists detectors; if none exist, GuardDuty is not
// enabled. If a detector exists, GetDetector verifies its status is ENABLED.
//
// Returns Enabled == false on error (conservative: treat as not enabled).
func collectGuardDutyStatus(ctx context.Context, client guardDutyAPIClient, region string) (models.GuardDutyStatus, error) {
	listOut, err := client.ListDetectors(ctx, &guardduty.ListDetectorsInput{})
	if err != nil {
		return models.GuardDutyStatus{Region: region}, err
	}

	if len(listOut.DetectorIds) == 0 {
		// No detector configured in this region.
		return models.GuardDutyStatus{Region: region}, nil
	}

	// Check the first (usually only) detector's status.
	detOut, err := client.GetDetector(ctx, &guardduty.GetDetectorInput{
		DetectorId: &listOut.DetectorIds[0],
	})
	if err != nil {
		return models.GuardDutyStatus{Region: region}, err
	}

	return models.GuardDutyStatus{
		Region:  region,
		Enabled: detOut.Status == guarddutytypes.DetectorStatusEnabled,
	}, nil
}
