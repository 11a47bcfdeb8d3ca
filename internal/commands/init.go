package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initFlags struct {
	force bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate sample config and collection script",
	Long:  `Creates a sample .packspectre.yaml config file and a shell script that collects an audit pack with the AWS CLI.`,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initFlags.force, "force", false, "Overwrite existing files")
}

func runInit(_ *cobra.Command, _ []string) error {
	configPath := ".packspectre.yaml"
	scriptPath := "collect-audit-pack.sh"

	if err := writeIfNotExists(configPath, sampleConfig, initFlags.force); err != nil {
		return err
	}
	if err := writeIfNotExists(scriptPath, collectScript, initFlags.force); err != nil {
		return err
	}

	fmt.Printf("Created %s and %s\n", configPath, scriptPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Edit .packspectre.yaml to customize thresholds")
	fmt.Println("  2. Run: sh collect-audit-pack.sh ./audit")
	fmt.Println("  3. Run: packspectre analyze --input ./audit")
	return nil
}

func writeIfNotExists(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("Skipping %s (already exists, use --force to overwrite)\n", path)
			return nil
		}
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return os.WriteFile(path, []byte(content), 0o644)
}

const sampleConfig = `# packspectre configuration
# See: https://github.com/ppiankov/packspectre

# Rightsizing thresholds
# idle_cpu_percent: 5    # below: downsize two steps
# low_cpu_percent: 20    # below: downsize one step
# min_samples: 12        # fewer CPU samples: retain

# DNS analysis
# low_ttl_seconds: 300

# Output
# format: text           # text or json
# output: report.json
`

const collectScript = `#!/bin/sh
# Collect an AWS audit pack for packspectre.
# Usage: sh collect-audit-pack.sh ./audit
set -eu
OUT="${1:?output directory required}"
mkdir -p "$OUT"

START=$(date -u -d '30 days ago' +%Y-%m-%d 2>/dev/null || date -u -v-30d +%Y-%m-%d)
END=$(date -u +%Y-%m-%d)
CPU_START=$(date -u -d '7 days ago' +%Y-%m-%dT%H:%M:%S 2>/dev/null || date -u -v-7d +%Y-%m-%dT%H:%M:%S)
NOW=$(date -u +%Y-%m-%dT%H:%M:%S)

aws ce get-cost-and-usage --time-period Start="$START",End="$END" \
  --granularity MONTHLY --metrics UnblendedCost \
  --group-by Type=DIMENSION,Key=SERVICE > "$OUT/cost-by-service.json"

aws ec2 describe-instances \
  --query 'Reservations[].Instances[].{InstanceId:InstanceId,InstanceType:InstanceType,State:State,Placement:Placement,LaunchTime:LaunchTime}' \
  > "$OUT/ec2-instances.json"

for id in $(aws ec2 describe-instances --query 'Reservations[].Instances[].InstanceId' --output text); do
  aws cloudwatch get-metric-statistics --namespace AWS/EC2 --metric-name CPUUtilization \
    --dimensions Name=InstanceId,Value="$id" \
    --start-time "$CPU_START" --end-time "$NOW" --period 3600 --statistics Average \
    > "$OUT/cpu_${id}.json"
done

aws ec2 describe-volumes \
  --query 'Volumes[].{VolumeId:VolumeId,Size:Size,VolumeType:VolumeType,State:State,InstanceId:Attachments[0].InstanceId,Encrypted:Encrypted,CreateTime:CreateTime}' \
  > "$OUT/ebs-volumes.json"

aws rds describe-db-instances --query 'DBInstances[]' > "$OUT/rds-instances.json"
aws elbv2 describe-load-balancers > "$OUT/loadbalancers.json"
aws ec2 describe-nat-gateways > "$OUT/nat-gateways.json"
aws resourcegroupstaggingapi get-resources > "$OUT/tags.json"

aws route53 list-hosted-zones > "$OUT/route53-zones.json"
aws route53 list-health-checks > "$OUT/route53-health-checks.json"
for zone in $(aws route53 list-hosted-zones --query 'HostedZones[].Id' --output text | sed 's|/hostedzone/||g'); do
  aws route53 list-resource-record-sets --hosted-zone-id "$zone" > "$OUT/route53-records-${zone}.json"
done

aws ec2 describe-addresses > "$OUT/elastic-ips.json"

aws ce get-cost-and-usage --time-period Start="$START",End="$END" \
  --granularity MONTHLY --metrics UnblendedCost \
  --filter '{"Dimensions":{"Key":"SERVICE","Values":["Amazon Route 53"]}}' \
  > "$OUT/route53-cost.json"

echo "Audit pack written to $OUT"
`
