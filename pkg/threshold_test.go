package digits

import "testing"

func testConfig() Configuration {
	return Configuration{
		FirstTimeBin: 0,
		LastTimeBin:  475,
		ADCMin:       0,
		ADCMax:       1024,
	}
}

func TestDecideRejectsOutsideTimeWindow(t *testing.T) {
	config := testConfig()
	config.FirstTimeBin = 10
	config.LastTimeBin = 20
	selector := NewSelector(config, NewCalibStore(), DefaultGeometry())

	for _, timeBin := range []int{0, 9, 21, 1000} {
		sample := RawSample{CRU: 0, Row: 0, Pad: 0, TimeBin: timeBin, ADC: 500}
		if outcome, _ := selector.Decide(sample); outcome != Reject {
			t.Errorf("time bin %d: expected Reject, got %v", timeBin, outcome)
		}
	}
	// Window bounds are inclusive
	for _, timeBin := range []int{10, 20} {
		sample := RawSample{CRU: 0, Row: 0, Pad: 0, TimeBin: timeBin, ADC: 500}
		if outcome, _ := selector.Decide(sample); outcome != Accept {
			t.Errorf("time bin %d: expected Accept, got %v", timeBin, outcome)
		}
	}
}

func TestDecideSubtractsPedestal(t *testing.T) {
	calib := NewCalibStore()
	calib.Set(PadAddress{Partition: 0, Row: 3, Pad: 7}, CalibValue{Pedestal: 10})
	selector := NewSelector(testConfig(), calib, DefaultGeometry())

	sample := RawSample{CRU: 0, Row: 3, Pad: 7, TimeBin: 100, ADC: 25}
	outcome, charge := selector.Decide(sample)
	if outcome != Accept {
		t.Fatalf("expected Accept, got %v", outcome)
	}
	if charge != 15 {
		t.Errorf("expected corrected charge 15, got %f", charge)
	}
}

func TestDecideRejectsBelowADCMin(t *testing.T) {
	calib := NewCalibStore()
	calib.Set(PadAddress{Partition: 0, Row: 0, Pad: 0}, CalibValue{Pedestal: 10})
	selector := NewSelector(testConfig(), calib, DefaultGeometry())

	// amplitude 5, pedestal 10 -> corrected charge -5, below ADCMin=0
	sample := RawSample{CRU: 0, Row: 0, Pad: 0, TimeBin: 100, ADC: 5}
	if outcome, _ := selector.Decide(sample); outcome != Reject {
		t.Errorf("expected Reject for negative corrected charge, got %v", outcome)
	}
}

func TestDecideRejectsAboveADCMax(t *testing.T) {
	selector := NewSelector(testConfig(), NewCalibStore(), DefaultGeometry())
	sample := RawSample{CRU: 0, Row: 0, Pad: 0, TimeBin: 100, ADC: 2000}
	if outcome, _ := selector.Decide(sample); outcome != Reject {
		t.Errorf("expected Reject above ADCMax, got %v", outcome)
	}
}

func TestDecideNoiseThreshold(t *testing.T) {
	calib := NewCalibStore()
	calib.Set(PadAddress{Partition: 0, Row: 0, Pad: 0}, CalibValue{Noise: 2})

	config := testConfig()
	config.NoiseThreshold = 3
	selector := NewSelector(config, calib, DefaultGeometry())

	// corrected charge 5 < noise*threshold = 6
	sample := RawSample{CRU: 0, Row: 0, Pad: 0, TimeBin: 100, ADC: 5}
	if outcome, _ := selector.Decide(sample); outcome != Reject {
		t.Errorf("expected Reject below noise threshold, got %v", outcome)
	}

	sample.ADC = 7
	if outcome, _ := selector.Decide(sample); outcome != Accept {
		t.Errorf("expected Accept above noise threshold, got %v", outcome)
	}

	// Threshold 0 disables the cut
	config.NoiseThreshold = 0
	selector = NewSelector(config, calib, DefaultGeometry())
	sample.ADC = 1
	if outcome, _ := selector.Decide(sample); outcome != Accept {
		t.Errorf("expected Accept with noise cut disabled, got %v", outcome)
	}
}

func TestDecideMaskedPad(t *testing.T) {
	config := testConfig()
	config.MaskList = [][3]int{{0, 5, 9}}
	selector := NewSelector(config, NewCalibStore(), DefaultGeometry())

	// Masked regardless of amplitude, distinct from an ordinary Reject
	for _, adc := range []float32{1, 500, 1024} {
		sample := RawSample{CRU: 0, Row: 5, Pad: 9, TimeBin: 100, ADC: adc}
		if outcome, _ := selector.Decide(sample); outcome != Masked {
			t.Errorf("ADC %f: expected Masked, got %v", adc, outcome)
		}
	}

	// Neighbour pad is not masked
	sample := RawSample{CRU: 0, Row: 5, Pad: 10, TimeBin: 100, ADC: 500}
	if outcome, _ := selector.Decide(sample); outcome != Accept {
		t.Errorf("expected Accept for unmasked pad, got %v", outcome)
	}
}

func TestDecideMaskUsesPartitionRow(t *testing.T) {
	// Region 4 is the first outer region: local row 0 maps to partition row 0
	// again after the inner-section subtraction.
	config := testConfig()
	config.MaskList = [][3]int{{0, 0, 3}}
	selector := NewSelector(config, NewCalibStore(), DefaultGeometry())

	sample := RawSample{CRU: 4, Row: 0, Pad: 3, TimeBin: 100, ADC: 500}
	if outcome, _ := selector.Decide(sample); outcome != Masked {
		t.Errorf("expected Masked for outer-region pad, got %v", outcome)
	}
}
