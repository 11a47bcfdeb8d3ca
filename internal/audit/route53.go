package audit

import (
	"encoding/json"
	"path/filepath"
	"strings"

	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
)

type zonesDump struct {
	HostedZones []r53types.HostedZone `json:"HostedZones"`
}

type healthChecksDump struct {
	HealthChecks []r53types.HealthCheck `json:"HealthChecks"`
}

// rawRecordSet decodes one entry of a list-resource-record-sets dump. TTL
// goes through json.Number so that a non-integral value excludes the TTL
// without failing the whole zone file.
type rawRecordSet struct {
	Name        string       `json:"Name"`
	Type        string       `json:"Type"`
	TTL         *json.Number `json:"TTL"`
	AliasTarget *struct {
		DNSName string `json:"DNSName"`
	} `json:"AliasTarget"`
	ResourceRecords []struct {
		Value string `json:"Value"`
	} `json:"ResourceRecords"`
}

type recordSetsDump struct {
	ResourceRecordSets []rawRecordSet `json:"ResourceRecordSets"`
}

// LoadZoneCount counts hosted zones in route53-zones.json.
func LoadZoneCount(dir string) int {
	var dump zonesDump
	if !readJSON(filepath.Join(dir, "route53-zones.json"), &dump) {
		return 0
	}
	return len(dump.HostedZones)
}

// LoadHealthCheckCount counts health checks in route53-health-checks.json.
func LoadHealthCheckCount(dir string) int {
	var dump healthChecksDump
	if !readJSON(filepath.Join(dir, "route53-health-checks.json"), &dump) {
		return 0
	}
	return len(dump.HealthChecks)
}

// LoadZoneRecords reads every route53-records-<zone-id>.json in dir. The
// zone id comes from the file name; each file yields one ZoneRecords entry,
// unreadable files yield none.
func LoadZoneRecords(dir string) []ZoneRecords {
	matches, _ := filepath.Glob(filepath.Join(dir, "route53-records-*.json"))

	var zones []ZoneRecords
	for _, path := range matches {
		var dump recordSetsDump
		if !readJSON(path, &dump) {
			continue
		}
		base := filepath.Base(path)
		zoneID := strings.TrimSuffix(strings.TrimPrefix(base, "route53-records-"), ".json")

		zone := ZoneRecords{ZoneID: zoneID}
		for _, rr := range dump.ResourceRecordSets {
			rec := ZoneRecordSet{Name: rr.Name, Type: rr.Type}
			if rr.AliasTarget != nil {
				rec.Alias = &AliasTarget{DNSName: rr.AliasTarget.DNSName}
			}
			if rr.TTL != nil {
				if ttl, err := rr.TTL.Int64(); err == nil {
					rec.TTL = &ttl
				}
			}
			for _, v := range rr.ResourceRecords {
				if v.Value != "" {
					rec.Values = append(rec.Values, v.Value)
				}
			}
			zone.Records = append(zone.Records, rec)
		}
		zones = append(zones, zone)
	}
	return zones
}
