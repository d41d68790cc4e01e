package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	digits "github.com/tpc-exp/digitdump_go/pkg"
)

var (
	configuration  digits.Configuration
	calibStore     *digits.CalibStore
	geometry       digits.Geometry
	logger         Logger
	VerbosityLevel int
)

func init() {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	handlerStdOut := NewHandler(os.Stdout, opts)
	handlerStdErr := slog.NewJSONHandler(os.Stderr, opts)
	logger = Logger{
		InfoLog:  slog.New(handlerStdOut),
		ErrorLog: slog.New(handlerStdErr),
	}
}

func main() {
	configFilename := flag.String("config", "", "Configuration file path")
	flag.Parse()

	var err error
	configuration, err = digits.LoadConfiguration(*configFilename)
	if err != nil {
		message := fmt.Errorf("Error reading configuration file: %w", err)
		logger.Error(message.Error())
		return
	}
	digits.SetConfiguration(configuration)
	digits.SetLogger(logger)

	VerbosityLevel = configuration.Verbosity
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Reading configuration file: %s", *configFilename)
		logger.Info(message, "main")
		printConfiguration(configuration, logger)
	}

	geometry = digits.DefaultGeometry()
	calibStore = digits.NewCalibStore()
	if configuration.NoDB {
		err = calibStore.LoadFile(configuration.PedestalNoiseFile)
	} else {
		dbConn, connErr := digits.ConnectToDatabase(configuration.User, configuration.Passwd,
			configuration.Host, configuration.DBName)
		if connErr != nil {
			err = connErr
		} else {
			defer dbConn.Close()
			err = calibStore.LoadDatabase(dbConn, configuration.RunNumber)
		}
	}
	if err != nil {
		var openErr *digits.ErrOpenCalibration
		if errors.As(err, &openErr) && !configuration.MandatoryCalibration {
			message := fmt.Sprintf("Calibration source unreadable, running with defaults: %v", err)
			logger.Info(message, "main")
		} else {
			message := fmt.Errorf("Error loading calibration: %w", err)
			logger.Error(message.Error())
			return
		}
	}
	if configuration.MandatoryCalibration && !calibStore.Loaded() {
		logger.Error("Mandatory pedestal calibration missing, aborting")
		return
	}

	file, err := os.Open(configuration.FileIn)
	if err != nil {
		message := fmt.Errorf("Error opening file: %w", err)
		logger.Error(message.Error())
		return
	}
	defer file.Close()

	intervalCount := countIntervals(file)
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Number of intervals: %d", intervalCount)
		logger.Info(message, "main")
	}
	intervalsToProcess := numberOfIntervalsToProcess(intervalCount, configuration.Skip, configuration.MaxIntervals)
	if intervalsToProcess <= 0 {
		logger.Info("Nothing to process", "main")
		return
	}

	var writer *digits.Writer
	if configuration.WriteData {
		writer = digits.NewWriter(configuration.FileOut)
		writer.WriteRunInfo(configuration.RunNumber)
		defer writer.Close()
	}

	jobs := make(chan WorkerData, configuration.NumWorkers)
	results := make(chan digits.Result, configuration.NumWorkers)
	for w := 1; w <= configuration.NumWorkers; w++ {
		go worker(w, jobs, results)
	}

	fileReader := NewFileReader(file)

	start := time.Now()
	go sendIntervalsToWorkers(fileReader, jobs)
	processWorkerResults(results, writer, intervalsToProcess)

	duration := time.Since(start)
	message := fmt.Sprintf("Processed %d intervals in %d ms", intervalsToProcess, duration.Milliseconds())
	logger.Info(message, "main")
}

func numberOfIntervalsToProcess(fileIntervalCount int, skip int, maxIntervals int) int {
	intervalsToProcess := fileIntervalCount - skip
	if intervalsToProcess > maxIntervals {
		intervalsToProcess = maxIntervals
	}
	return intervalsToProcess
}
