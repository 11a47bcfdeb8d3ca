package audit

import "testing"

func TestLoadZoneCount(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "route53-zones.json", `{
  "HostedZones": [
    {"Id": "/hostedzone/Z1", "Name": "example.com."},
    {"Id": "/hostedzone/Z2", "Name": "internal.example.com."}
  ]
}`)

	if got := LoadZoneCount(dir); got != 2 {
		t.Fatalf("expected 2 zones, got %d", got)
	}
	if got := LoadZoneCount(t.TempDir()); got != 0 {
		t.Fatalf("expected 0 zones for missing file, got %d", got)
	}
}

func TestLoadHealthCheckCount(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "route53-health-checks.json", `{
  "HealthChecks": [{"Id": "hc-1", "HealthCheckConfig": {"Type": "HTTPS"}}]
}`)

	if got := LoadHealthCheckCount(dir); got != 1 {
		t.Fatalf("expected 1 health check, got %d", got)
	}
}

func TestLoadZoneRecords(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "route53-records-Z1.json", `{
  "ResourceRecordSets": [
    {
      "Name": "example.com.",
      "Type": "A",
      "AliasTarget": {"HostedZoneId": "ZLB", "DNSName": "lb.example.com.", "EvaluateTargetHealth": false}
    },
    {
      "Name": "api.example.com.",
      "Type": "A",
      "TTL": 60,
      "ResourceRecords": [{"Value": "10.0.0.1"}, {"Value": "10.0.0.2"}]
    },
    {
      "Name": "odd.example.com.",
      "Type": "A",
      "TTL": 120.5,
      "ResourceRecords": [{"Value": "10.0.0.3"}]
    }
  ]
}`)

	zones := LoadZoneRecords(dir)
	if len(zones) != 1 {
		t.Fatalf("expected 1 zone, got %d", len(zones))
	}
	zone := zones[0]
	if zone.ZoneID != "Z1" {
		t.Fatalf("expected zone id Z1 from file name, got %s", zone.ZoneID)
	}
	if len(zone.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(zone.Records))
	}

	alias := zone.Records[0]
	if alias.Alias == nil || alias.Alias.DNSName != "lb.example.com." {
		t.Fatalf("expected alias target, got %+v", alias)
	}
	if alias.TTL != nil {
		t.Fatal("alias record carries no TTL")
	}

	plain := zone.Records[1]
	if plain.TTL == nil || *plain.TTL != 60 {
		t.Fatalf("expected TTL 60, got %v", plain.TTL)
	}
	if len(plain.Values) != 2 {
		t.Fatalf("expected 2 values, got %d", len(plain.Values))
	}

	// Non-integral TTL excluded without dropping the record or the zone.
	odd := zone.Records[2]
	if odd.TTL != nil {
		t.Fatalf("expected non-integral TTL excluded, got %v", *odd.TTL)
	}
	if len(odd.Values) != 1 {
		t.Fatal("record with non-integral TTL must keep its values")
	}
}

func TestLoadZoneRecords_MalformedZoneSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "route53-records-Z1.json", `{broken`)
	writeFixture(t, dir, "route53-records-Z2.json", `{"ResourceRecordSets": []}`)

	zones := LoadZoneRecords(dir)
	if len(zones) != 1 {
		t.Fatalf("expected only the valid zone, got %d", len(zones))
	}
	if zones[0].ZoneID != "Z2" {
		t.Fatalf("expected Z2, got %s", zones[0].ZoneID)
	}
}
