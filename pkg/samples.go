package digits

// Detector layout constants. A partition is one readout sector; each sector
// is served by RegionsPerPartition CRUs, one per pad region. Regions below
// NInnerRegions belong to the inner readout section.
const (
	NPartitions         = 36
	RegionsPerPartition = 10
	NInnerRegions       = 4
)

// CRU identifies one readout unit: partition*RegionsPerPartition + region.
type CRU uint16

func (c CRU) Partition() int { return int(c) / RegionsPerPartition }
func (c CRU) Region() int    { return int(c) % RegionsPerPartition }
func (c CRU) IsOuter() bool  { return c.Region() >= NInnerRegions }

// RawSample is one readout word as delivered by the link-layer decoder.
// Row is region-local; address fields are already extracted upstream.
type RawSample struct {
	CRU     CRU
	Row     int
	Pad     int
	TimeBin int
	ADC     float32
}

// Digit is one calibrated charge sample. Row is the global row index.
type Digit struct {
	CRU     CRU
	Row     int
	Pad     int
	TimeBin int
	Charge  float32
}

// PadAddress keys calibration values and the channel mask. Row here is
// partition-relative (see PartitionRow).
type PadAddress struct {
	Partition int
	Row       int
	Pad       int
}
