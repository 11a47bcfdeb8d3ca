package audit

// ServiceCost is one row of the per-service cost table, in USD.
type ServiceCost struct {
	Service string  `json:"service"`
	CostUSD float64 `json:"cost_usd"`
}

// Instance is a normalized EC2 inventory record.
type Instance struct {
	InstanceID   string `json:"instance_id"`
	InstanceType string `json:"instance_type"`
	State        string `json:"state"`
	AZ           string `json:"az"`
	LaunchTime   string `json:"launch_time"`
}

// CPUSummary summarizes one instance's CPU utilization series.
// Avg and P95 are nil when the series has no samples.
type CPUSummary struct {
	InstanceID string   `json:"instance_id"`
	AvgCPU     *float64 `json:"avg_cpu"`
	P95CPU     *float64 `json:"p95_cpu"`
	Samples    int      `json:"samples"`
}

// EnrichedInstance is an inventory record left-joined with its CPU summary.
// Instances without a matching series keep nil utilization fields.
type EnrichedInstance struct {
	Instance
	AvgCPU  *float64 `json:"avg_cpu"`
	P95CPU  *float64 `json:"p95_cpu"`
	Samples int      `json:"samples"`
}

// Volume is a normalized EBS volume record. An empty InstanceID means the
// volume is unattached.
type Volume struct {
	VolumeID   string `json:"volume_id"`
	SizeGiB    int    `json:"size_gib"`
	VolumeType string `json:"volume_type"`
	State      string `json:"state"`
	InstanceID string `json:"instance_id"`
	Encrypted  bool   `json:"encrypted"`
	CreateTime string `json:"create_time"`
}

// Unattached reports whether the volume has no attached instance.
func (v Volume) Unattached() bool {
	return v.InstanceID == ""
}

// BucketSize is one bucket's average size over the 3-day metrics window.
type BucketSize struct {
	Bucket string  `json:"bucket"`
	AvgGiB float64 `json:"avg_gib"`
}

// DBInstance is a normalized RDS inventory record.
type DBInstance struct {
	Identifier string `json:"identifier"`
	Class      string `json:"class"`
}

// NetworkSummary counts networking and tagging resources from the summary
// snapshots.
type NetworkSummary struct {
	LoadBalancers   int `json:"load_balancers"`
	NATGateways     int `json:"nat_gateways"`
	TaggedResources int `json:"tagged_resources"`
}

// AliasTarget is the aliased destination of a routing record.
type AliasTarget struct {
	DNSName string `json:"dns_name"`
}

// ZoneRecordSet is one record set within a hosted zone. TTL is nil when the
// snapshot carries none or a non-integral value.
type ZoneRecordSet struct {
	Name   string       `json:"name"`
	Type   string       `json:"type"`
	Alias  *AliasTarget `json:"alias,omitempty"`
	TTL    *int64       `json:"ttl,omitempty"`
	Values []string     `json:"values,omitempty"`
}

// ZoneRecords holds all record sets loaded for one hosted zone.
type ZoneRecords struct {
	ZoneID  string          `json:"zone_id"`
	Records []ZoneRecordSet `json:"records"`
}

// ElasticIP is a normalized address allocation.
type ElasticIP struct {
	AllocationID       string `json:"allocation_id"`
	PublicIP           string `json:"public_ip"`
	InstanceID         string `json:"instance_id,omitempty"`
	NetworkInterfaceID string `json:"network_interface_id,omitempty"`
	AssociationID      string `json:"association_id,omitempty"`
}

// Attached reports whether the address is bound to an instance, a network
// interface, or an association.
func (e ElasticIP) Attached() bool {
	return e.InstanceID != "" || e.NetworkInterfaceID != "" || e.AssociationID != ""
}

// Pack is the fully-normalized audit bundle. Every table is defined even when
// its source snapshot is absent; absence yields an empty table.
type Pack struct {
	Costs            []ServiceCost      `json:"costs"`
	Instances        []Instance         `json:"instances"`
	Enriched         []EnrichedInstance `json:"enriched"`
	Volumes          []Volume           `json:"volumes"`
	Buckets          []BucketSize       `json:"buckets"`
	DBInstances      []DBInstance       `json:"db_instances"`
	Network          NetworkSummary     `json:"network"`
	Route53CostUSD   float64            `json:"route53_cost_usd"`
	ZoneCount        int                `json:"zone_count"`
	HealthCheckCount int                `json:"health_check_count"`
	ZoneRecords      []ZoneRecords      `json:"zone_records"`
	ElasticIPs       []ElasticIP        `json:"elastic_ips"`
	EIPCostUSD       float64            `json:"eip_cost_usd"`
}
