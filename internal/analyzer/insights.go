package analyzer

import (
	"github.com/ppiankov/packspectre/internal/audit"
)

// deprecatedVolumeType is flagged for migration to its successor generation.
const deprecatedVolumeType = "gp2"

// Analyze runs every rule over a loaded pack and returns the complete
// derived bundle. It never fails: an empty pack yields empty finding lists
// and default insights.
func Analyze(pack *audit.Pack, cfg Config) *Result {
	recs, idle := Rightsize(pack.Enriched, cfg)
	dupes, lows := AnalyzeZones(pack.ZoneRecords, cfg)

	return &Result{
		Recommendations:  recs,
		DuplicateTargets: dupes,
		LowTTLs:          lows,
		Insights:         buildInsights(pack, idle),
	}
}

// buildInsights folds the normalized tables into scalar facts.
func buildInsights(pack *audit.Pack, idleCandidates int) Insights {
	in := Insights{
		TopService:    "N/A",
		LargestBucket: "N/A",
	}

	if len(pack.Costs) > 0 {
		in.TopService = pack.Costs[0].Service
		in.TopServiceCostUSD = pack.Costs[0].CostUSD
	}

	in.InstanceTotal = len(pack.Instances)
	for _, inst := range pack.Instances {
		if inst.State == "running" {
			in.InstanceRunning++
		}
	}
	in.IdleCandidates = idleCandidates

	for _, v := range pack.Volumes {
		if v.Unattached() {
			in.UnattachedVolumes++
		}
		if v.VolumeType == deprecatedVolumeType {
			in.GP2Volumes++
		}
	}

	if len(pack.Buckets) > 0 {
		in.LargestBucket = pack.Buckets[0].Bucket
		in.LargestBucketGiB = pack.Buckets[0].AvgGiB
	}

	in.DBInstances = len(pack.DBInstances)
	in.LoadBalancers = pack.Network.LoadBalancers
	in.NATGateways = pack.Network.NATGateways
	in.TaggedResources = pack.Network.TaggedResources

	in.Route53CostUSD = pack.Route53CostUSD
	in.HostedZones = pack.ZoneCount
	in.HealthChecks = pack.HealthCheckCount

	in.EIPCostUSD = pack.EIPCostUSD
	in.EIPAllocated = len(pack.ElasticIPs)
	for _, e := range pack.ElasticIPs {
		if !e.Attached() {
			in.EIPUnattached++
		}
	}

	return in
}
