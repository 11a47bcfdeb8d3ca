package audit

import (
	"encoding/json"
	"path/filepath"
	"strings"

	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// modernInstance tolerates both flavors of a rich instance record: a state
// object as describe-instances emits it, or a bare state string from a
// pre-flattened export. Availability zone may appear top-level or under
// Placement.
type modernInstance struct {
	InstanceID   string          `json:"InstanceId"`
	InstanceType string          `json:"InstanceType"`
	State        json.RawMessage `json:"State"`
	AZ           string          `json:"AZ"`
	Placement    struct {
		AvailabilityZone string `json:"AvailabilityZone"`
	} `json:"Placement"`
	LaunchTime string `json:"LaunchTime"`
}

func (m modernInstance) stateName() string {
	var s string
	if err := json.Unmarshal(m.State, &s); err == nil {
		return s
	}
	var obj struct {
		Name string `json:"Name"`
	}
	if err := json.Unmarshal(m.State, &obj); err == nil {
		return obj.Name
	}
	return ""
}

func (m modernInstance) availabilityZone() string {
	if m.AZ != "" {
		return m.AZ
	}
	return m.Placement.AvailabilityZone
}

// instanceFields is the positional schema of a legacy instance record.
const instanceFields = 5

// LoadInstances reads ec2-instances.json in either shape and returns the
// normalized inventory. Legacy records shorter than the positional schema
// are dropped.
func LoadInstances(dir string) []Instance {
	rows := readRows(filepath.Join(dir, "ec2-instances.json"))
	if len(rows) == 0 {
		return nil
	}

	var instances []Instance
	if isObject(rows[0]) {
		for _, row := range rows {
			var m modernInstance
			if err := json.Unmarshal(row, &m); err != nil {
				continue
			}
			instances = append(instances, Instance{
				InstanceID:   m.InstanceID,
				InstanceType: m.InstanceType,
				State:        m.stateName(),
				AZ:           m.availabilityZone(),
				LaunchTime:   m.LaunchTime,
			})
		}
		return instances
	}

	for _, rec := range legacyRows(rows) {
		if len(rec) < instanceFields {
			continue
		}
		instances = append(instances, Instance{
			InstanceID:   cellString(rec[0]),
			InstanceType: cellString(rec[1]),
			State:        cellString(rec[2]),
			AZ:           cellString(rec[3]),
			LaunchTime:   cellString(rec[4]),
		})
	}
	return instances
}

// metricDump mirrors a get-metric-statistics dump.
type metricDump struct {
	Datapoints []cwtypes.Datapoint `json:"Datapoints"`
}

// averageSeries extracts the Average values from a metric dump at path.
// Datapoints without an Average are skipped.
func averageSeries(path string) ([]float64, bool) {
	var dump metricDump
	if !readJSON(path, &dump) {
		return nil, false
	}
	var series []float64
	for _, dp := range dump.Datapoints {
		if dp.Average != nil {
			series = append(series, *dp.Average)
		}
	}
	return series, true
}

// LoadCPUSummaries reads every cpu_<instance-id>.json in dir and summarizes
// each instance's average-CPU series. The instance id comes from the file
// name.
func LoadCPUSummaries(dir string) map[string]CPUSummary {
	matches, _ := filepath.Glob(filepath.Join(dir, "cpu_*.json"))
	summaries := make(map[string]CPUSummary, len(matches))

	for _, path := range matches {
		series, ok := averageSeries(path)
		if !ok {
			continue
		}
		base := filepath.Base(path)
		id := strings.TrimSuffix(strings.TrimPrefix(base, "cpu_"), ".json")

		s := CPUSummary{InstanceID: id, Samples: len(series)}
		if len(series) > 0 {
			avg := mean(series)
			p95 := percentile95(series)
			s.AvgCPU, s.P95CPU = &avg, &p95
		}
		summaries[id] = s
	}
	return summaries
}

// EnrichInstances left-joins CPU summaries onto the inventory by instance
// id. Every inventory record is preserved; instances without a series keep
// nil utilization and a zero sample count.
func EnrichInstances(instances []Instance, cpu map[string]CPUSummary) []EnrichedInstance {
	if len(instances) == 0 {
		return nil
	}
	enriched := make([]EnrichedInstance, 0, len(instances))
	for _, inst := range instances {
		e := EnrichedInstance{Instance: inst}
		if s, ok := cpu[inst.InstanceID]; ok {
			e.AvgCPU, e.P95CPU, e.Samples = s.AvgCPU, s.P95CPU, s.Samples
		}
		enriched = append(enriched, e)
	}
	return enriched
}
