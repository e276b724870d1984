package topology

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2svc "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// collectInstances pages through all non-terminated EC2 instances in the
// region and converts them to internal models. Attached EBS volumes are
// resolved in a second pass: one DescribeVolumes scan builds an encryption
// map that fills each instance's Volumes list.
//
// A volume referenced by a block device mapping but absent from the scan
// (deleted mid-collection) is recorded as encrypted so the encryption rule
// never flags a volume it could not inspect.
func collectInstances(ctx context.Context, ec2Client topoEC2Client) ([]models.Instance, error) {
	input := &ec2svc.DescribeInstancesInput{
		Filters: []ec2types.Filter{
			{
				Name: aws.String("instance-state-name"),
				Values: []string{
					"pending",
					"running",
					"stopping",
					"stopped",
					"shutting-down",
				},
			},
		},
	}

	paginator := ec2svc.NewDescribeInstancesPaginator(ec2Client, input)

	var instances []models.Instance
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("DescribeInstances page: %w", err)
		}
		for _, reservation := range page.Reservations {
			for _, inst := range reservation.Instances {
				instances = append(instances, toInstance(inst))
			}
		}
	}

	encrypted, err := collectVolumeEncryption(ctx, ec2Client)
	if err != nil {
		return nil, err
	}
	for i := range instances {
		for j := range instances[i].Volumes {
			enc, ok := encrypted[instances[i].Volumes[j].ID]
			instances[i].Volumes[j].Encrypted = enc || !ok
		}
	}

	return instances, nil
}

// toInstance converts an SDK EC2 instance to the internal model. Volume
// encryption flags are filled by collectInstances after the volume scan.
func toInstance(inst ec2types.Instance) models.Instance {
	var state string
	if inst.State != nil {
		state = string(inst.State.Name)
	}

	tokensRequired := inst.MetadataOptions != nil &&
		inst.MetadataOptions.HttpTokens == ec2types.HttpTokensStateRequired

	m := models.Instance{
		ID:                     aws.ToString(inst.InstanceId),
		SubnetID:               aws.ToString(inst.SubnetId),
		VPCID:                  aws.ToString(inst.VpcId),
		Name:                   nameTag(inst.Tags),
		State:                  state,
		PrivateIP:              aws.ToString(inst.PrivateIpAddress),
		HasInstanceProfile:     inst.IamInstanceProfile != nil,
		MetadataTokensRequired: tokensRequired,
	}

	for _, mapping := range inst.BlockDeviceMappings {
		if mapping.Ebs == nil {
			continue
		}
		if volumeID := aws.ToString(mapping.Ebs.VolumeId); volumeID != "" {
			m.Volumes = append(m.Volumes, models.Volume{ID: volumeID})
		}
	}

	return m
}

// collectVolumeEncryption pages through all EBS volumes in the region and
// returns volume ID → encrypted.
func collectVolumeEncryption(ctx context.Context, ec2Client topoEC2Client) (map[string]bool, error) {
	paginator := ec2svc.NewDescribeVolumesPaginator(ec2Client, &ec2svc.DescribeVolumesInput{})

	encrypted := make(map[string]bool)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("DescribeVolumes page: %w", err)
		}
		for _, vol := range page.Volumes {
			encrypted[aws.ToString(vol.VolumeId)] = aws.ToBool(vol.Encrypted)
		}
	}
	return encrypted, nil
}
