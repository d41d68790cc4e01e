package main

import (
	"fmt"

	digits "github.com/tpc-exp/digitdump_go/pkg"
)

func printConfiguration(config digits.Configuration, logger Logger) {
	logger.Info(fmt.Sprintf("File in: %s", config.FileIn), "config")
	logger.Info(fmt.Sprintf("File out: %s", config.FileOut), "config")
	logger.Info(fmt.Sprintf("Time bin window: [%d, %d]", config.FirstTimeBin, config.LastTimeBin), "config")
	logger.Info(fmt.Sprintf("ADC band: [%.1f, %.1f]", config.ADCMin, config.ADCMax), "config")
	logger.Info(fmt.Sprintf("Noise threshold: %.2f", config.NoiseThreshold), "config")
	logger.Info(fmt.Sprintf("Pedestal and noise file: %s", config.PedestalNoiseFile), "config")
	logger.Info(fmt.Sprintf("Mandatory calibration: %t", config.MandatoryCalibration), "config")
	logger.Info(fmt.Sprintf("Masked pads: %d", len(config.MaskList)), "config")
	logger.Info(fmt.Sprintf("No DB: %t", config.NoDB), "config")
	logger.Info(fmt.Sprintf("Host: %s", config.Host), "config")
	logger.Info(fmt.Sprintf("DB name: %s", config.DBName), "config")
	logger.Info(fmt.Sprintf("Run number: %d", config.RunNumber), "config")
	logger.Info(fmt.Sprintf("Skip: %d", config.Skip), "config")
	logger.Info(fmt.Sprintf("Max intervals: %d", config.MaxIntervals), "config")
	logger.Info(fmt.Sprintf("Verbosity: %d", config.Verbosity), "config")
	logger.Info(fmt.Sprintf("Write data: %t", config.WriteData), "config")
	logger.Info(fmt.Sprintf("Number of workers: %d", config.NumWorkers), "config")
}
