package topology

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	rdssvc "github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// collectDBInstances pages through all RDS database instances in the region.
func collectDBInstances(ctx context.Context, client topoRDSClient) ([]models.DBInstance, error) {
	paginator := rdssvc.NewDescribeDBInstancesPaginator(client, &rdssvc.DescribeDBInstancesInput{})

	var instances []models.DBInstance
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("DescribeDBInstances page: %w", err)
		}
		for _, db := range page.DBInstances {
			instances = append(instances, toDBInstance(db))
		}
	}
	return instances, nil
}

// toDBInstance converts an SDK DBInstance to the internal model. VPC, subnet,
// and availability-zone placement come from the DB subnet group; instances
// outside a VPC keep those fields empty and stay off the diagram.
func toDBInstance(db rdstypes.DBInstance) models.DBInstance {
	m := models.DBInstance{
		Identifier:         aws.ToString(db.DBInstanceIdentifier),
		Engine:             aws.ToString(db.Engine),
		Class:              aws.ToString(db.DBInstanceClass),
		Status:             aws.ToString(db.DBInstanceStatus),
		PubliclyAccessible: aws.ToBool(db.PubliclyAccessible),
		StorageEncrypted:   aws.ToBool(db.StorageEncrypted),
	}

	if db.DBSubnetGroup != nil {
		m.VPCID = aws.ToString(db.DBSubnetGroup.VpcId)
		seenAZ := make(map[string]struct{})
		for _, subnet := range db.DBSubnetGroup.Subnets {
			if id := aws.ToString(subnet.SubnetIdentifier); id != "" {
				m.SubnetIDs = append(m.SubnetIDs, id)
			}
			if subnet.SubnetAvailabilityZone == nil {
				continue
			}
			az := aws.ToString(subnet.SubnetAvailabilityZone.Name)
			if az == "" {
				continue
			}
			if _, ok := seenAZ[az]; ok {
				continue
			}
			seenAZ[az] = struct{}{}
			m.AvailabilityZones = append(m.AvailabilityZones, az)
		}
	}

	return m
}
