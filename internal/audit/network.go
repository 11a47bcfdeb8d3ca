package audit

import (
	"path/filepath"

	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	elbtypes "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	taggingtypes "github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi/types"
)

type elbDump struct {
	LoadBalancers []elbtypes.LoadBalancer `json:"LoadBalancers"`
}

type natDump struct {
	NatGateways []ec2types.NatGateway `json:"NatGateways"`
}

type tagDump struct {
	ResourceTagMappingList []taggingtypes.ResourceTagMapping `json:"ResourceTagMappingList"`
}

// LoadNetworkSummary counts load balancers, NAT gateways, and tagged
// resources from their summary snapshots. Each count defaults to zero when
// its snapshot is absent.
func LoadNetworkSummary(dir string) NetworkSummary {
	var summary NetworkSummary

	var elbs elbDump
	if readJSON(filepath.Join(dir, "loadbalancers.json"), &elbs) {
		summary.LoadBalancers = len(elbs.LoadBalancers)
	}

	var nats natDump
	if readJSON(filepath.Join(dir, "nat-gateways.json"), &nats) {
		summary.NATGateways = len(nats.NatGateways)
	}

	var tags tagDump
	if readJSON(filepath.Join(dir, "tags.json"), &tags) {
		summary.TaggedResources = len(tags.ResourceTagMappingList)
	}

	return summary
}
