package analyzer

// Reason codes emitted by the rightsizing rules.
const (
	ReasonInsufficientMetrics = "insufficient metrics (retain)"
	ReasonDownsizeTwo         = "CPU<5% (downsize 2)"
	ReasonDownsizeOne         = "CPU 5–20% (downsize 1)"
	ReasonRetain              = "CPU≥20% (retain)"
)

// Recommendation is the sizing verdict for one running instance. Every
// running enriched instance produces exactly one.
type Recommendation struct {
	InstanceID      string   `json:"instance_id"`
	CurrentType     string   `json:"current_type"`
	AvgCPU          *float64 `json:"avg_cpu"`
	P95CPU          *float64 `json:"p95_cpu"`
	Samples         int      `json:"samples"`
	RecommendedType string   `json:"recommended_type"`
	Reason          string   `json:"reason"`
}

// DuplicateTarget flags one DNS target bound by two or more distinct record
// names within the same zone. Names are sorted and de-duplicated.
type DuplicateTarget struct {
	ZoneID string   `json:"zone_id"`
	Target string   `json:"target"`
	Names  []string `json:"names"`
}

// LowTTL flags a non-alias A/AAAA/CNAME record whose TTL is under the
// configured threshold.
type LowTTL struct {
	ZoneID string `json:"zone_id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	TTL    int64  `json:"ttl"`
}

// Config holds rule thresholds. Zero values select the documented defaults.
type Config struct {
	IdleCPUPercent float64 // avg CPU below this: downsize two steps
	LowCPUPercent  float64 // avg CPU below this: downsize one step
	MinSamples     int     // fewer samples than this: retain for lack of telemetry
	LowTTLSeconds  int64   // TTLs strictly below this are flagged
}

const (
	defaultIdleCPUPercent = 5.0
	defaultLowCPUPercent  = 20.0
	defaultMinSamples     = 12
	defaultLowTTLSeconds  = 300
)

func (c Config) withDefaults() Config {
	if c.IdleCPUPercent <= 0 {
		c.IdleCPUPercent = defaultIdleCPUPercent
	}
	if c.LowCPUPercent <= 0 {
		c.LowCPUPercent = defaultLowCPUPercent
	}
	if c.MinSamples <= 0 {
		c.MinSamples = defaultMinSamples
	}
	if c.LowTTLSeconds <= 0 {
		c.LowTTLSeconds = defaultLowTTLSeconds
	}
	return c
}

// Insights are the scalar rollup facts the renderer consumes. Every fact has
// a defined default when its source table is empty.
type Insights struct {
	TopService        string  `json:"top_service"`
	TopServiceCostUSD float64 `json:"top_service_cost_usd"`
	InstanceTotal     int     `json:"instance_total"`
	InstanceRunning   int     `json:"instance_running"`
	IdleCandidates    int     `json:"idle_candidates"`
	UnattachedVolumes int     `json:"unattached_volumes"`
	GP2Volumes        int     `json:"gp2_volumes"`
	LargestBucket     string  `json:"largest_bucket"`
	LargestBucketGiB  float64 `json:"largest_bucket_gib"`
	DBInstances       int     `json:"db_instances"`
	LoadBalancers     int     `json:"load_balancers"`
	NATGateways       int     `json:"nat_gateways"`
	TaggedResources   int     `json:"tagged_resources"`
	Route53CostUSD    float64 `json:"route53_cost_usd"`
	HostedZones       int     `json:"hosted_zones"`
	HealthChecks      int     `json:"health_checks"`
	EIPCostUSD        float64 `json:"eip_cost_usd"`
	EIPAllocated      int     `json:"eip_allocated"`
	EIPUnattached     int     `json:"eip_unattached"`
}

// Result bundles every derived finding for the report layer.
type Result struct {
	Recommendations  []Recommendation  `json:"recommendations"`
	DuplicateTargets []DuplicateTarget `json:"duplicate_targets"`
	LowTTLs          []LowTTL          `json:"low_ttls"`
	Insights         Insights          `json:"insights"`
}
