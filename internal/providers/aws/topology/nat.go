package topology

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	ec2svc "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// collectNATGateways pages through all NAT gateways in the region, converts
// them to internal models, and enriches each available gateway with its total
// BytesOutToDestination over the lookback window from CloudWatch.
//
// No state filter is applied: pending gateways still appear on the diagram,
// and the topology context drops deleted and failed ones. CloudWatch failures
// are non-fatal — affected gateways keep BytesOut == nil, which the idle rule
// treats as "no data" rather than "no traffic".
func collectNATGateways(
	ctx context.Context,
	ec2Client topoEC2Client,
	cwClient topoCWClient,
) ([]models.NATGateway, error) {
	paginator := ec2svc.NewDescribeNatGatewaysPaginator(ec2Client, &ec2svc.DescribeNatGatewaysInput{})

	var gateways []models.NATGateway
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("DescribeNatGateways page: %w", err)
		}
		for _, ng := range page.NatGateways {
			gateways = append(gateways, toNATGateway(ng))
		}
	}

	start, end := metricWindow()
	for i := range gateways {
		if gateways[i].State != "available" {
			continue
		}
		gateways[i].BytesOut = fetchNATBytesOut(ctx, cwClient, gateways[i].ID, start, end)
	}

	return gateways, nil
}

// toNATGateway converts an SDK NAT gateway to the internal model. The public
// IP comes from the first gateway address carrying one.
func toNATGateway(ng ec2types.NatGateway) models.NATGateway {
	var publicIP string
	for _, addr := range ng.NatGatewayAddresses {
		if ip := aws.ToString(addr.PublicIp); ip != "" {
			publicIP = ip
			break
		}
	}

	return models.NATGateway{
		ID:       aws.ToString(ng.NatGatewayId),
		VPCID:    aws.ToString(ng.VpcId),
		SubnetID: aws.ToString(ng.SubnetId),
		State:    string(ng.State),
		PublicIP: publicIP,
		// AvailabilityZone is backfilled from the owning subnet by Collect.
	}
}

// fetchNATBytesOut calls CloudWatch GetMetricStatistics to retrieve the total
// BytesOutToDestination for natGatewayID over [start, end) at 1-day
// granularity.
//
// Returns nil when the call fails or no data points exist, so callers can
// distinguish "no data" from a genuine zero-byte total.
func fetchNATBytesOut(
	ctx context.Context,
	cw topoCWClient,
	natGatewayID string,
	start, end time.Time,
) *float64 {
	out, err := cw.GetMetricStatistics(ctx, &cloudwatch.GetMetricStatisticsInput{
		Namespace:  aws.String("AWS/NATGateway"),
		MetricName: aws.String("BytesOutToDestination"),
		Dimensions: []cwtypes.Dimension{
			{
				Name:  aws.String("NatGatewayId"),
				Value: aws.String(natGatewayID),
			},
		},
		StartTime:  aws.Time(start),
		EndTime:    aws.Time(end),
		Period:     aws.Int32(86400), // 1-day granularity → ≤30 points for a 30d window
		Statistics: []cwtypes.Statistic{cwtypes.StatisticSum},
	})
	if err != nil || len(out.Datapoints) == 0 {
		return nil
	}

	var total float64
	for _, dp := range out.Datapoints {
		if dp.Sum != nil {
			total += *dp.Sum
		}
	}
	return &total
}
