package audit

import "testing"

const costByServiceFixture = `{
  "ResultsByTime": [
    {
      "TimePeriod": {"Start": "2026-07-01", "End": "2026-08-01"},
      "Groups": [
        {"Keys": ["Amazon Simple Storage Service"], "Metrics": {"UnblendedCost": {"Amount": "12.50", "Unit": "USD"}}},
        {"Keys": ["Amazon Elastic Compute Cloud - Compute"], "Metrics": {"UnblendedCost": {"Amount": "310.75", "Unit": "USD"}}},
        {"Keys": ["Tax"], "Metrics": {"UnblendedCost": {"Amount": "2.1E1", "Unit": "USD"}}}
      ]
    }
  ]
}`

func TestLoadServiceCosts_OrderedDescending(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "cost-by-service.json", costByServiceFixture)

	costs := LoadServiceCosts(dir)
	if len(costs) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(costs))
	}
	if costs[0].Service != "Amazon Elastic Compute Cloud - Compute" {
		t.Fatalf("expected EC2 first, got %s", costs[0].Service)
	}
	if costs[0].CostUSD != 310.75 {
		t.Fatalf("expected 310.75, got %v", costs[0].CostUSD)
	}
	// Scientific notation amount parsed: 2.1E1 = 21
	if costs[1].CostUSD != 21 {
		t.Fatalf("expected 21 for Tax, got %v", costs[1].CostUSD)
	}
}

func TestLoadServiceCosts_Missing(t *testing.T) {
	if costs := LoadServiceCosts(t.TempDir()); len(costs) != 0 {
		t.Fatalf("expected empty table, got %d rows", len(costs))
	}
}

func TestLoadServiceCosts_MissingKeysAndAmount(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "cost-by-service.json", `{
  "ResultsByTime": [{"Groups": [{"Metrics": {}}]}]
}`)

	costs := LoadServiceCosts(dir)
	if len(costs) != 1 {
		t.Fatalf("expected 1 row, got %d", len(costs))
	}
	if costs[0].Service != "Unknown" || costs[0].CostUSD != 0 {
		t.Fatalf("expected Unknown/0, got %s/%v", costs[0].Service, costs[0].CostUSD)
	}
}

func TestLoadTotalCost(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "route53-cost.json", `{
  "ResultsByTime": [
    {"Total": {"UnblendedCost": {"Amount": "4.20", "Unit": "USD"}}}
  ]
}`)

	if got := LoadTotalCost(dir, "route53-cost.json"); got != 4.20 {
		t.Fatalf("expected 4.20, got %v", got)
	}
}

func TestLoadTotalCost_StructuralMiss(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "eip-cost.json", `{"ResultsByTime": []}`)

	if got := LoadTotalCost(dir, "eip-cost.json"); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := LoadTotalCost(dir, "absent.json"); got != 0 {
		t.Fatalf("expected 0 for missing file, got %v", got)
	}
}
