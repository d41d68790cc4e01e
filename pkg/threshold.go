package digits

import (
	"fmt"

	"golang.org/x/exp/maps"
)

// Outcome of the zero-suppression decision for one raw sample.
type Outcome int

const (
	// Accept: the corrected charge passed all cuts, a digit is produced.
	Accept Outcome = iota
	// Reject: time window, ADC band or noise cut failed. Silently dropped.
	Reject
	// Masked: the pad is on the mask list. Handled, but no digit produced,
	// and not counted as a threshold rejection.
	Masked
)

// Selector applies the per-sample keep/drop decision. Checks run cheapest
// first: time window, then pedestal-corrected ADC band, then the optional
// noise cut, then the mask list.
type Selector struct {
	firstTimeBin   int
	lastTimeBin    int
	adcMin         float32
	adcMax         float32
	noiseThreshold float32

	calib *CalibStore
	geo   Geometry
	mask  map[PadAddress]struct{}
}

func NewSelector(config Configuration, calib *CalibStore, geo Geometry) *Selector {
	s := &Selector{
		firstTimeBin:   config.FirstTimeBin,
		lastTimeBin:    config.LastTimeBin,
		adcMin:         config.ADCMin,
		adcMax:         config.ADCMax,
		noiseThreshold: config.NoiseThreshold,
		calib:          calib,
		geo:            geo,
		mask:           make(map[PadAddress]struct{}, len(config.MaskList)),
	}
	for _, entry := range config.MaskList {
		s.mask[PadAddress{Partition: entry[0], Row: entry[1], Pad: entry[2]}] = struct{}{}
	}
	if config.Verbosity > 1 && len(s.mask) > 0 {
		message := fmt.Sprintf("Masked pads: %v", maps.Keys(s.mask))
		logger.Info(message, "selector")
	}
	return s
}

// Decide returns the outcome for one raw sample and, on Accept, the
// pedestal-corrected charge.
func (s *Selector) Decide(sample RawSample) (Outcome, float32) {
	if (sample.TimeBin < s.firstTimeBin) || (sample.TimeBin > s.lastTimeBin) {
		return Reject, 0
	}

	partitionRow := PartitionRow(s.geo, sample.CRU, sample.Row)
	calib := s.calib.Lookup(sample.CRU.Partition(), partitionRow, sample.Pad)

	// check adc thresholds (zero suppression)
	charge := sample.ADC - calib.Pedestal

	if (charge < s.adcMin) || (charge > s.adcMax) {
		return Reject, 0
	}

	if (s.noiseThreshold > 0) && (charge < calib.Noise*s.noiseThreshold) {
		return Reject, 0
	}

	// check for masked pads
	if len(s.mask) > 0 {
		addr := PadAddress{Partition: sample.CRU.Partition(), Row: partitionRow, Pad: sample.Pad}
		if _, masked := s.mask[addr]; masked {
			return Masked, 0
		}
	}

	return Accept, charge
}
