package topology

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	elbv2svc "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbv2types "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// collectLoadBalancers pages through all ELBv2 load balancers (Application,
// Network, Gateway) in the region and converts them to internal models.
// Application Load Balancers are enriched with their CloudWatch RequestCount
// over the lookback window; NLB and GWLB publish different metrics and keep
// RequestCount == nil.
func collectLoadBalancers(
	ctx context.Context,
	elbClient topoELBv2Client,
	cwClient topoCWClient,
) ([]models.LoadBalancer, error) {
	paginator := elbv2svc.NewDescribeLoadBalancersPaginator(elbClient, &elbv2svc.DescribeLoadBalancersInput{})

	var lbs []models.LoadBalancer
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("DescribeLoadBalancers page: %w", err)
		}
		for _, lb := range page.LoadBalancers {
			lbs = append(lbs, toLoadBalancer(lb))
		}
	}

	start, end := metricWindow()
	for i := range lbs {
		if lbs[i].Type == "application" {
			lbs[i].RequestCount = fetchALBRequestCount(ctx, cwClient, lbs[i].ARN, start, end)
		}
	}

	return lbs, nil
}

// toLoadBalancer converts an SDK ELBv2 load balancer to the internal model.
func toLoadBalancer(lb elbv2types.LoadBalancer) models.LoadBalancer {
	return models.LoadBalancer{
		ARN:    aws.ToString(lb.LoadBalancerArn),
		Name:   aws.ToString(lb.LoadBalancerName),
		Type:   string(lb.Type),
		Scheme: string(lb.Scheme),
		VPCID:  aws.ToString(lb.VpcId),
	}
}

// fetchALBRequestCount calls CloudWatch GetMetricStatistics to retrieve the
// total RequestCount for an ALB over [start, end) at 1-day granularity.
// The LoadBalancer dimension value is extracted from the ARN.
//
// Returns nil when the ARN is malformed, the call fails, or no data points
// exist, so callers can distinguish "no data" from a genuine zero count.
func fetchALBRequestCount(
	ctx context.Context,
	cw topoCWClient,
	lbARN string,
	start, end time.Time,
) *float64 {
	// ARN format: arn:aws:elasticloadbalancing:<region>:<acct>:loadbalancer/app/<name>/<id>
	// Dimension value: app/<name>/<id>  (everything after "loadbalancer/")
	const marker = ":loadbalancer/"
	idx := strings.Index(lbARN, marker)
	if idx < 0 {
		return nil
	}
	lbDim := lbARN[idx+len(marker):]

	out, err := cw.GetMetricStatistics(ctx, &cloudwatch.GetMetricStatisticsInput{
		Namespace:  aws.String("AWS/ApplicationELB"),
		MetricName: aws.String("RequestCount"),
		Dimensions: []cwtypes.Dimension{
			{
				Name:  aws.String("LoadBalancer"),
				Value: aws.String(lbDim),
			},
		},
		StartTime:  aws.Time(start),
		EndTime:    aws.Time(end),
		Period:     aws.Int32(86400), // 1-day granularity
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
