package audit

import (
	"path/filepath"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	cetypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
)

// costAndUsage mirrors the envelope of a cost-explorer get-cost-and-usage
// dump.
type costAndUsage struct {
	ResultsByTime []cetypes.ResultByTime `json:"ResultsByTime"`
}

// LoadServiceCosts reads cost-by-service.json and returns the per-service
// cost table, ordered descending by cost.
func LoadServiceCosts(dir string) []ServiceCost {
	var dump costAndUsage
	if !readJSON(filepath.Join(dir, "cost-by-service.json"), &dump) {
		return nil
	}
	if len(dump.ResultsByTime) == 0 {
		return nil
	}

	var costs []ServiceCost
	for _, g := range dump.ResultsByTime[0].Groups {
		svc := "Unknown"
		if len(g.Keys) > 0 {
			svc = g.Keys[0]
		}
		amount := "0"
		if mv, ok := g.Metrics["UnblendedCost"]; ok && aws.ToString(mv.Amount) != "" {
			amount = aws.ToString(mv.Amount)
		}
		costs = append(costs, ServiceCost{Service: svc, CostUSD: parseAmount(amount)})
	}

	sort.SliceStable(costs, func(i, j int) bool {
		return costs[i].CostUSD > costs[j].CostUSD
	})
	return costs
}

// LoadTotalCost extracts the unblended total from a single-total cost dump
// such as route53-cost.json or eip-cost.json. Any structural miss yields
// zero.
func LoadTotalCost(dir, name string) float64 {
	var dump costAndUsage
	if !readJSON(filepath.Join(dir, name), &dump) {
		return 0
	}
	if len(dump.ResultsByTime) == 0 {
		return 0
	}
	mv, ok := dump.ResultsByTime[0].Total["UnblendedCost"]
	if !ok || mv.Amount == nil {
		return 0
	}
	return parseAmount(*mv.Amount)
}
