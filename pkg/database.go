package digits

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	sqlx "github.com/jmoiron/sqlx" //make alias name the package to sqlx
)

func ConnectToDatabase(user string, pass string, host string, dbname string) (*sqlx.DB, error) {
	port := "3306"
	dbURI := fmt.Sprintf("%s:%s@(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)
	db, err := sqlx.Connect("mysql", dbURI)
	return db, err
}

type PedestalNoiseEntry struct {
	Partition int     `db:"Partition"`
	Row       int     `db:"Row"`
	Pad       int     `db:"Pad"`
	Pedestal  float32 `db:"Pedestal"`
	Noise     float32 `db:"Noise"`
}

// LoadDatabase fills the store from the run database, selecting the
// calibration set valid for the given run number.
func (s *CalibStore) LoadDatabase(db *sqlx.DB, runNumber int) error {
	query := "SELECT Partition, Row, Pad, Pedestal, Noise FROM PedestalNoise WHERE MinRun <= %d and MaxRun >= %d"
	query = fmt.Sprintf(query, runNumber, runNumber)

	if configuration.Verbosity > 0 {
		logger.Info("Pedestal and noise values read from DB", "database")
	}
	if configuration.Verbosity > 2 {
		message := fmt.Sprintf("Query: %s", query)
		logger.Info(message, "database")
	}

	rows, err := db.Queryx(query)
	if err != nil {
		errMessage := fmt.Errorf("error querying database: %w", err)
		return errMessage
	}

	for rows.Next() {
		result := PedestalNoiseEntry{}
		err := rows.StructScan(&result)
		if err != nil {
			errMessage := fmt.Errorf("error scanning DB row: %w", err)
			return errMessage
		}
		addr := PadAddress{Partition: result.Partition, Row: result.Row, Pad: result.Pad}
		s.values[addr] = CalibValue{Pedestal: result.Pedestal, Noise: result.Noise}
	}

	s.loaded = true
	return nil
}
