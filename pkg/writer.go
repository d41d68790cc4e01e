package digits

import (
	"fmt"

	hdf5 "github.com/jmbenlloch/go-hdf5"
)

// Writer is the HDF5 sink for finalized intervals. Layout:
// /Run/runInfo, /Run/intervals and one digit table per partition under
// /Digits. Digit tables are created lazily, only partitions that ever had
// digits appear in the file.
type Writer struct {
	File            *hdf5.File
	Filename        string
	RunGroup        *hdf5.Group
	DigitsGroup     *hdf5.Group
	RunInfoTable    *hdf5.Dataset
	IntervalTable   *hdf5.Dataset
	DigitTables     [NPartitions]*hdf5.Dataset
	digitCounters   [NPartitions]int
	IntervalCounter int
}

func NewWriter(filename string) *Writer {
	writer := &Writer{}
	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("hdf5writer: Creating file: %s", filename)
		logger.Info(message, "writer")
	}
	writer.File = openFile(filename)
	writer.Filename = filename
	writer.RunGroup = createGroup(writer.File, "Run")
	writer.DigitsGroup = createGroup(writer.File, "Digits")
	writer.RunInfoTable = createTable(writer.RunGroup, "runInfo", RunInfoHDF5{})
	writer.IntervalTable = createTable(writer.RunGroup, "intervals", IntervalDataHDF5{})
	writer.IntervalCounter = 0
	return writer
}

func (w *Writer) WriteRunInfo(runNumber int) {
	runInfo := RunInfoHDF5{run_number: int32(runNumber)}
	writeEntryToTable(w.RunInfoTable, runInfo, 0)
}

// WriteInterval appends one finalized interval to the file. The digits
// arrive sorted and deduplicated; they are written in buffer order.
func (w *Writer) WriteInterval(result *Result) {
	nDigits := 0
	for partition, digits := range result.Digits {
		if len(digits) == 0 {
			continue
		}
		nDigits += len(digits)

		if w.DigitTables[partition] == nil {
			tableName := fmt.Sprintf("TPCDigit_%d", partition)
			w.DigitTables[partition] = createTable(w.DigitsGroup, tableName, DigitHDF5{})
		}

		// The array MUST be allocated at creation, if not, HDF5 will panic
		// doing appends will not work
		rows := make([]DigitHDF5, len(digits))
		for i, digit := range digits {
			rows[i] = DigitHDF5{
				cru:      int32(digit.CRU),
				row:      int32(digit.Row),
				pad:      int32(digit.Pad),
				time_bin: int32(digit.TimeBin),
				charge:   digit.Charge,
			}
		}
		writeArrayToTable(w.DigitTables[partition], &rows, w.digitCounters[partition])
		w.digitCounters[partition] += len(rows)
	}

	intervalData := IntervalDataHDF5{
		interval:     int32(result.IntervalID),
		n_digits:     int32(nDigits),
		n_duplicates: int32(result.Stats.Duplicates),
	}
	writeEntryToTable(w.IntervalTable, intervalData, w.IntervalCounter)
	w.IntervalCounter++
}

func (w *Writer) Close() {
	w.RunInfoTable.Close()
	w.IntervalTable.Close()
	for _, table := range w.DigitTables {
		if table != nil {
			table.Close()
		}
	}
	w.RunGroup.Close()
	w.DigitsGroup.Close()
	w.File.Close()
}
