package audit

import (
	"encoding/json"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"
)

// dbInstanceFields is the positional schema of a legacy database record:
// identifier, engine, class. The engine column is not carried into the
// normalized record.
const dbInstanceFields = 3

// LoadDBInstances reads rds-instances.json in either shape. Modern rows are
// describe-db-instances records.
func LoadDBInstances(dir string) []DBInstance {
	rows := readRows(filepath.Join(dir, "rds-instances.json"))
	if len(rows) == 0 {
		return nil
	}

	var dbs []DBInstance
	if isObject(rows[0]) {
		for _, row := range rows {
			var m rdstypes.DBInstance
			if err := json.Unmarshal(row, &m); err != nil {
				continue
			}
			dbs = append(dbs, DBInstance{
				Identifier: aws.ToString(m.DBInstanceIdentifier),
				Class:      aws.ToString(m.DBInstanceClass),
			})
		}
		return dbs
	}

	for _, rec := range legacyRows(rows) {
		if len(rec) < dbInstanceFields {
			continue
		}
		dbs = append(dbs, DBInstance{
			Identifier: cellString(rec[0]),
			Class:      cellString(rec[2]),
		})
	}
	return dbs
}
