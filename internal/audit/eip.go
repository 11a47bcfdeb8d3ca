package audit

import (
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

type addressesDump struct {
	Addresses []ec2types.Address `json:"Addresses"`
}

// LoadElasticIPs reads elastic-ips.json and returns normalized address
// allocations with their attachment indicators.
func LoadElasticIPs(dir string) []ElasticIP {
	var dump addressesDump
	if !readJSON(filepath.Join(dir, "elastic-ips.json"), &dump) {
		return nil
	}

	eips := make([]ElasticIP, 0, len(dump.Addresses))
	for _, addr := range dump.Addresses {
		eips = append(eips, ElasticIP{
			AllocationID:       aws.ToString(addr.AllocationId),
			PublicIP:           aws.ToString(addr.PublicIp),
			InstanceID:         aws.ToString(addr.InstanceId),
			NetworkInterfaceID: aws.ToString(addr.NetworkInterfaceId),
			AssociationID:      aws.ToString(addr.AssociationId),
		})
	}
	return eips
}
