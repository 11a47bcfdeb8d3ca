package analyzer

import (
	"sort"
	"strings"

	"github.com/ppiankov/packspectre/internal/audit"
)

// AnalyzeZones runs duplicate-target and low-TTL detection over each zone
// independently. The two passes are independent and may both fire for the
// same record.
func AnalyzeZones(zones []audit.ZoneRecords, cfg Config) ([]DuplicateTarget, []LowTTL) {
	cfg = cfg.withDefaults()

	var dupes []DuplicateTarget
	var lows []LowTTL
	for _, zone := range zones {
		dupes = append(dupes, duplicateTargets(zone)...)
		lows = append(lows, lowTTLs(zone, cfg.LowTTLSeconds)...)
	}
	return dupes, lows
}

// duplicateTargets folds a zone's A records into a target→names multimap,
// then keeps targets bound by at least two distinct names. Alias DNS names
// are normalized; raw values are used verbatim, one target per value.
func duplicateTargets(zone audit.ZoneRecords) []DuplicateTarget {
	targets := make(map[string]map[string]struct{})
	bind := func(target, name string) {
		if targets[target] == nil {
			targets[target] = make(map[string]struct{})
		}
		targets[target][name] = struct{}{}
	}

	for _, rr := range zone.Records {
		if rr.Type != "A" {
			continue
		}
		if rr.Alias != nil && rr.Alias.DNSName != "" {
			bind(normalizeTarget(rr.Alias.DNSName), rr.Name)
			continue
		}
		for _, v := range rr.Values {
			bind(v, rr.Name)
		}
	}

	var found []DuplicateTarget
	for target, names := range targets {
		if len(names) < 2 {
			continue
		}
		sorted := make([]string, 0, len(names))
		for n := range names {
			sorted = append(sorted, n)
		}
		sort.Strings(sorted)
		found = append(found, DuplicateTarget{ZoneID: zone.ZoneID, Target: target, Names: sorted})
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Target < found[j].Target })
	return found
}

// normalizeTarget lowercases an alias DNS name and strips trailing dots, so
// "LB.EXAMPLE.COM" and "lb.example.com." bind the same target.
func normalizeTarget(dnsName string) string {
	return strings.ToLower(strings.TrimRight(dnsName, "."))
}

// lowTTLs flags non-alias A/AAAA/CNAME records with a TTL strictly under the
// threshold. Records without an integral TTL are excluded.
func lowTTLs(zone audit.ZoneRecords, threshold int64) []LowTTL {
	var lows []LowTTL
	for _, rr := range zone.Records {
		switch rr.Type {
		case "A", "AAAA", "CNAME":
		default:
			continue
		}
		if rr.Alias != nil || rr.TTL == nil || *rr.TTL >= threshold {
			continue
		}
		lows = append(lows, LowTTL{ZoneID: zone.ZoneID, Name: rr.Name, Type: rr.Type, TTL: *rr.TTL})
	}
	return lows
}
