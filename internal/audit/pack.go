package audit

// Load reads every known snapshot in dir into a fully-populated Pack.
// Missing or malformed snapshots degrade to empty tables; Load itself never
// fails.
func Load(dir string) *Pack {
	instances := LoadInstances(dir)
	cpu := LoadCPUSummaries(dir)

	return &Pack{
		Costs:            LoadServiceCosts(dir),
		Instances:        instances,
		Enriched:         EnrichInstances(instances, cpu),
		Volumes:          LoadVolumes(dir),
		Buckets:          LoadBucketSizes(dir),
		DBInstances:      LoadDBInstances(dir),
		Network:          LoadNetworkSummary(dir),
		Route53CostUSD:   LoadTotalCost(dir, "route53-cost.json"),
		ZoneCount:        LoadZoneCount(dir),
		HealthCheckCount: LoadHealthCheckCount(dir),
		ZoneRecords:      LoadZoneRecords(dir),
		ElasticIPs:       LoadElasticIPs(dir),
		EIPCostUSD:       LoadTotalCost(dir, "eip-cost.json"),
	}
}
