package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	digits "github.com/tpc-exp/digitdump_go/pkg"
)

type WorkerData struct {
	Data   []byte
	Header IntervalHeaderStruct
}

// Each worker owns one interval controller and reuses it across intervals;
// Reset guarantees no digits bleed from one interval into the next.
func worker(id int, jobs <-chan WorkerData, results chan<- digits.Result) {
	interval := digits.NewInterval(configuration, calibStore, geometry)
	for job := range jobs {
		if VerbosityLevel > 1 {
			message := fmt.Sprintf("Worker %d processing interval %d", id, job.Header.IntervalID)
			logger.Info(message, "worker")
		}
		results <- processInterval(interval, job)
	}
}

func processInterval(interval *digits.Interval, job WorkerData) (result digits.Result) {
	defer func() {
		if r := recover(); r != nil {
			errMessage := fmt.Errorf("worker recovered from panic on interval %d: %v", job.Header.IntervalID, r)
			logger.Error(errMessage.Error())
			interval.Reset()
			result = digits.Result{Error: true}
		}
	}()

	if err := interval.Begin(job.Header.IntervalID); err != nil {
		return digits.Result{Error: true}
	}

	reader := bytes.NewReader(job.Data)
	for i := 0; i < int(job.Header.NWords); i++ {
		var word RawWordStruct
		if err := binary.Read(reader, binary.LittleEndian, &word); err != nil {
			errMessage := fmt.Errorf("error reading word %d of interval %d: %w", i, job.Header.IntervalID, err)
			logger.Error(errMessage.Error())
			break
		}
		sample := digits.RawSample{
			CRU:     digits.CRU(word.CRUID),
			Row:     int(word.Row),
			Pad:     int(word.Pad),
			TimeBin: int(word.TimeBin),
			ADC:     word.ADC,
		}
		interval.Ingest(sample)
	}

	if err := interval.Finalize(); err != nil {
		interval.Reset()
		return digits.Result{Error: true}
	}
	result, err := interval.Emit()
	interval.Reset()
	if err != nil {
		return digits.Result{Error: true}
	}
	return result
}

func sendIntervalsToWorkers(fileReader *FileReader, jobs chan<- WorkerData) {
	for {
		header, intervalData, err := fileReader.getNextInterval()
		if err != nil {
			if err != io.EOF {
				errMessage := fmt.Errorf("error reading interval: %w", err)
				logger.Error(errMessage.Error())
			}
			break
		}
		jobs <- WorkerData{Data: intervalData, Header: header}
	}
	close(jobs)
}

func processWorkerResults(results <-chan digits.Result, writer *digits.Writer, intervalsToProcess int) {
	intervalsProcessed := 0
	for result := range results {
		if configuration.WriteData && !result.Error {
			writer.WriteInterval(&result)
		}
		intervalsProcessed++
		if intervalsProcessed >= intervalsToProcess {
			break
		}
	}
}
