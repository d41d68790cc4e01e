package digits

import (
	"encoding/json"
	"os"
)

type Configuration struct {
	MaxIntervals         int      `json:"max_intervals"`
	Verbosity            int      `json:"verbosity"`
	FileIn               string   `json:"file_in"`
	FileOut              string   `json:"file_out"`
	FirstTimeBin         int      `json:"first_time_bin"`
	LastTimeBin          int      `json:"last_time_bin"`
	ADCMin               float32  `json:"adc_min"`
	ADCMax               float32  `json:"adc_max"`
	NoiseThreshold       float32  `json:"noise_threshold"`
	PedestalNoiseFile    string   `json:"pedestal_noise_file"`
	MandatoryCalibration bool     `json:"mandatory_calibration"`
	MaskList             [][3]int `json:"mask_list"`
	RunNumber            int      `json:"run_number"`
	Skip                 int      `json:"skip"`
	NoDB                 bool     `json:"no_db"`
	Host                 string   `json:"host"`
	User                 string   `json:"user"`
	Passwd               string   `json:"pass"`
	DBName               string   `json:"dbname"`
	NumWorkers           int      `json:"num_workers"`
	WriteData            bool     `json:"write_data"`
	CompressionLevel     int      `json:"compression_level"`
}

var configuration Configuration

func GetConfiguration() Configuration {
	return configuration
}

func SetConfiguration(config Configuration) {
	configuration = config
}

func LoadConfiguration(filename string) (Configuration, error) {
	var config Configuration

	// Set default values
	config.MaxIntervals = 1000000000
	config.Verbosity = 0
	config.FirstTimeBin = 0
	config.LastTimeBin = 475
	config.ADCMin = -100
	config.ADCMax = 1024
	config.NoiseThreshold = 0
	config.MandatoryCalibration = false
	config.RunNumber = 0
	config.Skip = 0
	config.NoDB = true
	config.Host = "localhost"
	config.User = "tpcreader"
	config.Passwd = "readonly"
	config.DBName = "TPCCALIB"
	config.NumWorkers = 1
	config.WriteData = true
	config.CompressionLevel = 4

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = json.Unmarshal(data, &config)
	if err != nil {
		return config, err
	}
	return config, nil
}
