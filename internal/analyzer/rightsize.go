// Package analyzer derives findings from a normalized audit pack: rightsizing
// recommendations, DNS consistency issues, and the scalar insight rollup.
// Every function is a pure transformation over its inputs.
package analyzer

import (
	"strings"

	"github.com/ppiankov/packspectre/internal/audit"
)

// sizeLadder orders instance sizes from smallest to largest within a family.
var sizeLadder = []string{
	"nano", "micro", "small", "medium", "large", "xlarge",
	"2xlarge", "3xlarge", "4xlarge", "6xlarge", "8xlarge",
	"12xlarge", "16xlarge", "24xlarge", "32xlarge", "metal",
}

func ladderIndex(size string) int {
	for i, s := range sizeLadder {
		if s == size {
			return i
		}
	}
	return -1
}

// Downsize steps an instance type down the size ladder within its family,
// clamping at nano. Types that do not decompose into family.size, or whose
// size is off the ladder, come back unchanged.
func Downsize(instanceType string, steps int) string {
	family, size, ok := strings.Cut(instanceType, ".")
	if !ok {
		return instanceType
	}
	idx := ladderIndex(size)
	if idx < 0 {
		return instanceType
	}
	return family + "." + sizeLadder[max(0, idx-steps)]
}

// Rightsize classifies every running enriched instance through the decision
// table: insufficient telemetry retains, avg CPU under the idle threshold
// downsizes two steps, under the low threshold one step, anything else
// retains. The second return value counts idle candidates: running
// instances with sufficient samples and average CPU under the idle
// threshold.
func Rightsize(enriched []audit.EnrichedInstance, cfg Config) ([]Recommendation, int) {
	cfg = cfg.withDefaults()

	var recs []Recommendation
	idle := 0
	for _, e := range enriched {
		if e.State != "running" {
			continue
		}
		rec := Recommendation{
			InstanceID:  e.InstanceID,
			CurrentType: e.InstanceType,
			AvgCPU:      e.AvgCPU,
			P95CPU:      e.P95CPU,
			Samples:     e.Samples,
		}
		switch {
		case e.AvgCPU == nil || e.Samples < cfg.MinSamples:
			rec.RecommendedType, rec.Reason = e.InstanceType, ReasonInsufficientMetrics
		case *e.AvgCPU < cfg.IdleCPUPercent:
			rec.RecommendedType, rec.Reason = Downsize(e.InstanceType, 2), ReasonDownsizeTwo
			idle++
		case *e.AvgCPU < cfg.LowCPUPercent:
			rec.RecommendedType, rec.Reason = Downsize(e.InstanceType, 1), ReasonDownsizeOne
		default:
			rec.RecommendedType, rec.Reason = e.InstanceType, ReasonRetain
		}
		recs = append(recs, rec)
	}
	return recs, idle
}
