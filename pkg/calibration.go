package digits

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

// CalibValue holds the per-pad baseline and expected fluctuation.
type CalibValue struct {
	Pedestal float32
	Noise    float32
}

// CalibStore keeps pedestal and noise values in memory for the lifetime of a
// run. Pads without an entry read as the (0, 0) defaults, which is a valid
// state: an empty store simply applies no correction.
type CalibStore struct {
	values map[PadAddress]CalibValue
	loaded bool
}

func NewCalibStore() *CalibStore {
	return &CalibStore{values: make(map[PadAddress]CalibValue)}
}

func (s *CalibStore) Lookup(partition int, row int, pad int) CalibValue {
	return s.values[PadAddress{Partition: partition, Row: row, Pad: pad}]
}

func (s *CalibStore) Set(addr PadAddress, value CalibValue) {
	s.values[addr] = value
}

// Loaded reports whether a calibration source was read successfully.
func (s *CalibStore) Loaded() bool {
	return s.loaded
}

func (s *CalibStore) Size() int {
	return len(s.values)
}

// LoadFile reads pedestal and noise values from a SQLite calibration file.
// An empty filename is not an error: the store stays in default mode.
func (s *CalibStore) LoadFile(filename string) error {
	if filename == "" {
		logger.Info("No pedestal and noise file name set", "calibration")
		return nil
	}

	if _, err := os.Stat(filename); err != nil {
		return &ErrOpenCalibration{Ref: filename, Err: err}
	}

	db, err := sql.Open("sqlite", filename)
	if err != nil {
		return &ErrOpenCalibration{Ref: filename, Err: err}
	}
	defer db.Close()

	rows, err := db.Query("SELECT partition, row, pad, pedestal, noise FROM pedestals")
	if err != nil {
		return &ErrOpenCalibration{Ref: filename, Err: err}
	}
	defer rows.Close()

	nRead := 0
	for rows.Next() {
		var addr PadAddress
		var value CalibValue
		err := rows.Scan(&addr.Partition, &addr.Row, &addr.Pad, &value.Pedestal, &value.Noise)
		if err != nil {
			return &ErrOpenCalibration{Ref: filename, Err: err}
		}
		s.values[addr] = value
		nRead++
	}
	if err := rows.Err(); err != nil {
		return &ErrOpenCalibration{Ref: filename, Err: err}
	}

	s.loaded = true
	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Read %d pedestal/noise entries from %s", nRead, filename)
		logger.Info(message, "calibration")
	}
	return nil
}
