package audit

import "testing"

func TestLoadInstances_ModernShape(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "ec2-instances.json", `[
  {
    "InstanceId": "i-0abc",
    "InstanceType": "m5.large",
    "State": {"Name": "running", "Code": 16},
    "Placement": {"AvailabilityZone": "eu-west-1a"},
    "LaunchTime": "2026-03-01T10:00:00+00:00"
  },
  {
    "InstanceId": "i-0def",
    "InstanceType": "t3.micro",
    "State": "stopped",
    "AZ": "eu-west-1b",
    "LaunchTime": "2026-01-15T08:30:00+00:00"
  }
]`)

	instances := LoadInstances(dir)
	if len(instances) != 2 {
		t.Fatalf("expected 2 instances, got %d", len(instances))
	}
	if instances[0].State != "running" {
		t.Fatalf("expected state object unwrapped to running, got %q", instances[0].State)
	}
	if instances[0].AZ != "eu-west-1a" {
		t.Fatalf("expected AZ from Placement, got %q", instances[0].AZ)
	}
	if instances[1].State != "stopped" {
		t.Fatalf("expected bare state string kept, got %q", instances[1].State)
	}
	if instances[1].AZ != "eu-west-1b" {
		t.Fatalf("expected top-level AZ, got %q", instances[1].AZ)
	}
}

func TestLoadInstances_LegacyNestedShape(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "ec2-instances.json", `[
  [
    ["i-1", "m5.large", "running", "us-east-1a", "2026-02-01T00:00:00+00:00"],
    ["i-2", "t3.small", "stopped", "us-east-1b", "2026-02-02T00:00:00+00:00"]
  ],
  [
    ["i-3", "c5.xlarge", "running", "us-east-1c", "2026-02-03T00:00:00+00:00"]
  ]
]`)

	instances := LoadInstances(dir)
	if len(instances) != 3 {
		t.Fatalf("expected 3 instances, got %d", len(instances))
	}
	if instances[2].InstanceID != "i-3" || instances[2].InstanceType != "c5.xlarge" {
		t.Fatalf("unexpected third record: %+v", instances[2])
	}
}

func TestLoadInstances_LegacyShortRecordDropped(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "ec2-instances.json", `[
  [
    ["i-1", "m5.large", "running", "us-east-1a", "2026-02-01T00:00:00+00:00"],
    ["i-short", "m5.large"]
  ]
]`)

	instances := LoadInstances(dir)
	if len(instances) != 1 {
		t.Fatalf("expected short record dropped, got %d records", len(instances))
	}
	if instances[0].InstanceID != "i-1" {
		t.Fatalf("expected i-1, got %s", instances[0].InstanceID)
	}
}

func TestLoadInstances_Missing(t *testing.T) {
	if instances := LoadInstances(t.TempDir()); len(instances) != 0 {
		t.Fatalf("expected empty inventory, got %d", len(instances))
	}
}

func TestLoadCPUSummaries(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "cpu_i-1.json", `{
  "Datapoints": [
    {"Timestamp": "2026-08-20T00:00:00+00:00", "Average": 2.0, "Unit": "Percent"},
    {"Timestamp": "2026-08-20T01:00:00+00:00", "Average": 4.0, "Unit": "Percent"},
    {"Timestamp": "2026-08-20T02:00:00+00:00", "Unit": "Percent"}
  ]
}`)
	writeFixture(t, dir, "cpu_i-2.json", `{"Datapoints": []}`)
	writeFixture(t, dir, "cpu_i-3.json", `{
  "Datapoints": [{"Timestamp": "2026-08-20T00:00:00+00:00", "Average": 9.5}]
}`)

	sums := LoadCPUSummaries(dir)
	if len(sums) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(sums))
	}

	s1 := sums["i-1"]
	if s1.Samples != 2 {
		t.Fatalf("expected 2 samples (datapoint without Average skipped), got %d", s1.Samples)
	}
	if s1.AvgCPU == nil || *s1.AvgCPU != 3.0 {
		t.Fatalf("expected avg 3.0, got %v", s1.AvgCPU)
	}

	s2 := sums["i-2"]
	if s2.Samples != 0 || s2.AvgCPU != nil || s2.P95CPU != nil {
		t.Fatalf("expected nil summary for empty series, got %+v", s2)
	}

	// Single-sample series: average and p95 are both that sample.
	s3 := sums["i-3"]
	if s3.AvgCPU == nil || s3.P95CPU == nil || *s3.AvgCPU != 9.5 || *s3.P95CPU != 9.5 {
		t.Fatalf("expected 9.5/9.5 for single sample, got %+v", s3)
	}
}

func TestEnrichInstances_LeftJoinPreservesInventory(t *testing.T) {
	avg := 3.0
	p95 := 4.5
	instances := []Instance{
		{InstanceID: "i-1", InstanceType: "m5.large", State: "running"},
		{InstanceID: "i-2", InstanceType: "t3.micro", State: "running"},
	}
	cpu := map[string]CPUSummary{
		"i-1": {InstanceID: "i-1", AvgCPU: &avg, P95CPU: &p95, Samples: 20},
	}

	enriched := EnrichInstances(instances, cpu)
	if len(enriched) != 2 {
		t.Fatalf("expected both inventory records preserved, got %d", len(enriched))
	}
	if enriched[0].AvgCPU == nil || *enriched[0].AvgCPU != 3.0 || enriched[0].Samples != 20 {
		t.Fatalf("expected joined utilization, got %+v", enriched[0])
	}
	if enriched[1].AvgCPU != nil || enriched[1].Samples != 0 {
		t.Fatalf("expected nil utilization for unmatched instance, got %+v", enriched[1])
	}
}
