package audit

import (
	"encoding/json"
	"path/filepath"
)

// modernVolume is a rich volume record as a flattened describe-volumes
// export carries it.
type modernVolume struct {
	VolumeID   string `json:"VolumeId"`
	Size       int    `json:"Size"`
	VolumeType string `json:"VolumeType"`
	State      string `json:"State"`
	InstanceID string `json:"InstanceId"`
	Encrypted  bool   `json:"Encrypted"`
	CreateTime string `json:"CreateTime"`
}

// volumeFields is the positional schema of a legacy volume record.
const volumeFields = 7

// LoadVolumes reads ebs-volumes.json in either shape and returns the
// normalized volume table.
func LoadVolumes(dir string) []Volume {
	rows := readRows(filepath.Join(dir, "ebs-volumes.json"))
	if len(rows) == 0 {
		return nil
	}

	var volumes []Volume
	if isObject(rows[0]) {
		for _, row := range rows {
			var m modernVolume
			if err := json.Unmarshal(row, &m); err != nil {
				continue
			}
			volumes = append(volumes, Volume{
				VolumeID:   m.VolumeID,
				SizeGiB:    m.Size,
				VolumeType: m.VolumeType,
				State:      m.State,
				InstanceID: m.InstanceID,
				Encrypted:  m.Encrypted,
				CreateTime: m.CreateTime,
			})
		}
		return volumes
	}

	for _, rec := range legacyRows(rows) {
		if len(rec) < volumeFields {
			continue
		}
		volumes = append(volumes, Volume{
			VolumeID:   cellString(rec[0]),
			SizeGiB:    cellInt(rec[1]),
			VolumeType: cellString(rec[2]),
			State:      cellString(rec[3]),
			InstanceID: cellString(rec[4]),
			Encrypted:  cellBool(rec[5]),
			CreateTime: cellString(rec[6]),
		})
	}
	return volumes
}
