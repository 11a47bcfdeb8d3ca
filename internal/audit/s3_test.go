package audit

import "testing"

func TestLoadBucketSizes_OrderedDescending(t *testing.T) {
	dir := t.TempDir()
	// 2 GiB average
	writeFixture(t, dir, "s3-logs-size.json", `{
  "Datapoints": [
    {"Average": 1073741824.0},
    {"Average": 3221225472.0}
  ]
}`)
	// 10 GiB
	writeFixture(t, dir, "s3-data-lake-size.json", `{
  "Datapoints": [{"Average": 10737418240.0}]
}`)
	writeFixture(t, dir, "s3-empty-size.json", `{"Datapoints": []}`)

	buckets := LoadBucketSizes(dir)
	if len(buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(buckets))
	}
	if buckets[0].Bucket != "data-lake" || buckets[0].AvgGiB != 10 {
		t.Fatalf("expected data-lake 10 GiB first, got %+v", buckets[0])
	}
	if buckets[1].Bucket != "logs" || buckets[1].AvgGiB != 2 {
		t.Fatalf("expected logs at 2 GiB, got %+v", buckets[1])
	}
	if buckets[2].Bucket != "empty" || buckets[2].AvgGiB != 0 {
		t.Fatalf("expected empty bucket at zero, got %+v", buckets[2])
	}
}

func TestLoadBucketSizes_BucketNameWithDashes(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "s3-my-app-backups-size.json", `{"Datapoints": []}`)

	buckets := LoadBucketSizes(dir)
	if len(buckets) != 1 || buckets[0].Bucket != "my-app-backups" {
		t.Fatalf("expected bucket name my-app-backups, got %+v", buckets)
	}
}

func TestLoadBucketSizes_NoFiles(t *testing.T) {
	if buckets := LoadBucketSizes(t.TempDir()); len(buckets) != 0 {
		t.Fatalf("expected empty table, got %d", len(buckets))
	}
}
