package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// TextReporter writes a human-readable summary of the analysis.
type TextReporter struct {
	Writer io.Writer
}

// Generate writes the insights dashboard followed by the finding tables.
func (r *TextReporter) Generate(data Data) error {
	fmt.Fprintf(r.Writer, "%s %s audit pack analysis (%s)\n\n",
		data.Tool, data.Version, data.Timestamp.Format("2006-01-02"))

	in := data.Analysis.Insights

	summary := newTable(r.Writer)
	summary.AppendHeader(table.Row{"Insight", "Value"})
	summary.AppendRows([]table.Row{
		{"Top cost driver", fmt.Sprintf("%s (~$%.2f)", in.TopService, in.TopServiceCostUSD)},
		{"EC2 fleet", fmt.Sprintf("total %d, running %d, idle %d", in.InstanceTotal, in.InstanceRunning, in.IdleCandidates)},
		{"Storage signals", fmt.Sprintf("unattached EBS: %d | gp2: %d | largest S3: %s (%.2f GiB)",
			in.UnattachedVolumes, in.GP2Volumes, in.LargestBucket, in.LargestBucketGiB)},
		{"Databases", fmt.Sprintf("RDS instances: %d", in.DBInstances)},
		{"Networking & tagging", fmt.Sprintf("NAT GWs: %d | LBs: %d | tagged: %d",
			in.NATGateways, in.LoadBalancers, in.TaggedResources)},
		{"Route 53", fmt.Sprintf("$%.2f | zones: %d | health checks: %d",
			in.Route53CostUSD, in.HostedZones, in.HealthChecks)},
		{"Elastic IPs", fmt.Sprintf("$%.2f | allocated: %d | unattached: %d",
			in.EIPCostUSD, in.EIPAllocated, in.EIPUnattached)},
	})
	summary.Render()

	if recs := data.Analysis.Recommendations; len(recs) > 0 {
		fmt.Fprintf(r.Writer, "\nRightsizing (%d running instances)\n", len(recs))
		tw := newTable(r.Writer)
		tw.AppendHeader(table.Row{"Instance", "Type", "Avg CPU %", "P95 CPU %", "Samples", "Recommended", "Reason"})
		for _, rec := range recs {
			tw.AppendRow(table.Row{
				rec.InstanceID, rec.CurrentType,
				formatCPU(rec.AvgCPU), formatCPU(rec.P95CPU),
				rec.Samples, rec.RecommendedType, rec.Reason,
			})
		}
		tw.Render()
	}

	if dupes := data.Analysis.DuplicateTargets; len(dupes) > 0 {
		fmt.Fprintf(r.Writer, "\nDuplicate DNS targets (%d)\n", len(dupes))
		tw := newTable(r.Writer)
		tw.AppendHeader(table.Row{"Zone", "Target", "Names"})
		for _, d := range dupes {
			tw.AppendRow(table.Row{d.ZoneID, d.Target, strings.Join(d.Names, ", ")})
		}
		tw.Render()
	}

	if lows := data.Analysis.LowTTLs; len(lows) > 0 {
		fmt.Fprintf(r.Writer, "\nLow TTL records (%d)\n", len(lows))
		tw := newTable(r.Writer)
		tw.AppendHeader(table.Row{"Zone", "Name", "Type", "TTL"})
		for _, l := range lows {
			tw.AppendRow(table.Row{l.ZoneID, l.Name, l.Type, l.TTL})
		}
		tw.Render()
	}

	return nil
}

func newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	return tw
}

func formatCPU(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.3f", *v)
}
