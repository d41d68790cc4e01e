package digits

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigurationDefaults(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(filename, []byte(`{"file_in": "run.raw"}`), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfiguration(filename)
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}
	if config.FileIn != "run.raw" {
		t.Errorf("expected file_in override, got %q", config.FileIn)
	}
	if config.FirstTimeBin != 0 || config.LastTimeBin != 475 {
		t.Errorf("wrong time window defaults: [%d, %d]", config.FirstTimeBin, config.LastTimeBin)
	}
	if config.ADCMin != -100 || config.ADCMax != 1024 {
		t.Errorf("wrong ADC band defaults: [%f, %f]", config.ADCMin, config.ADCMax)
	}
	if config.NoiseThreshold != 0 {
		t.Errorf("noise cut must be disabled by default, got %f", config.NoiseThreshold)
	}
	if config.MandatoryCalibration {
		t.Error("calibration must not be mandatory by default")
	}
	if config.NumWorkers != 1 {
		t.Errorf("expected 1 worker by default, got %d", config.NumWorkers)
	}
}

func TestLoadConfigurationOverrides(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"first_time_bin": 10,
		"last_time_bin": 100,
		"adc_min": 0,
		"adc_max": 512,
		"noise_threshold": 3,
		"pedestal_noise_file": "pedestals.sqlite",
		"mandatory_calibration": true,
		"mask_list": [[0, 5, 9], [17, 0, 0]],
		"num_workers": 4
	}`
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfiguration(filename)
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}
	if config.FirstTimeBin != 10 || config.LastTimeBin != 100 {
		t.Errorf("wrong time window: [%d, %d]", config.FirstTimeBin, config.LastTimeBin)
	}
	if config.NoiseThreshold != 3 {
		t.Errorf("wrong noise threshold: %f", config.NoiseThreshold)
	}
	if !config.MandatoryCalibration {
		t.Error("expected mandatory calibration")
	}
	if len(config.MaskList) != 2 || config.MaskList[0] != [3]int{0, 5, 9} {
		t.Errorf("wrong mask list: %v", config.MaskList)
	}
	if config.NumWorkers != 4 {
		t.Errorf("wrong worker count: %d", config.NumWorkers)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.json"); err == nil {
		t.Fatal("expected an error for a missing configuration file")
	}
}
