package audit

import (
	"path/filepath"
	"sort"
	"strings"
)

const bytesPerGiB = 1 << 30

// LoadBucketSizes reads every s3-<bucket>-size.json in dir and returns each
// bucket's 3-day average size in GiB, ordered descending. Buckets with an
// empty datapoint series report zero.
func LoadBucketSizes(dir string) []BucketSize {
	matches, _ := filepath.Glob(filepath.Join(dir, "s3-*-size.json"))

	var buckets []BucketSize
	for _, path := range matches {
		series, ok := averageSeries(path)
		if !ok {
			continue
		}
		base := filepath.Base(path)
		bucket := strings.TrimSuffix(strings.TrimPrefix(base, "s3-"), "-size.json")

		var avgBytes float64
		if len(series) > 0 {
			avgBytes = mean(series)
		}
		buckets = append(buckets, BucketSize{Bucket: bucket, AvgGiB: avgBytes / bytesPerGiB})
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].AvgGiB > buckets[j].AvgGiB
	})
	return buckets
}
