package digits

// Geometry gives the pad-plane row layout. The production mapping comes from
// the detector description; the interface keeps it substitutable in tests.
type Geometry interface {
	// GlobalRowOffset returns the first global row of a pad region.
	GlobalRowOffset(region int) int
	// InnerRowCount returns the number of rows of the inner readout section.
	InnerRowCount() int
}

// Standard 10-region layout, 152 rows per sector, inner section rows 0-62.
var rowOffsets = [RegionsPerPartition]int{0, 17, 32, 48, 63, 81, 97, 113, 127, 140}

type defaultGeometry struct{}

func (defaultGeometry) GlobalRowOffset(region int) int { return rowOffsets[region] }
func (defaultGeometry) InnerRowCount() int             { return rowOffsets[NInnerRegions] }

func DefaultGeometry() Geometry { return defaultGeometry{} }

// GlobalRow translates a region-local row to the global row index.
func GlobalRow(geo Geometry, cru CRU, row int) int {
	return row + geo.GlobalRowOffset(cru.Region())
}

// PartitionRow translates a region-local row to the partition-relative row
// used to address calibration values and the channel mask. Outer-section
// rows restart at zero.
func PartitionRow(geo Geometry, cru CRU, row int) int {
	globalRow := GlobalRow(geo, cru, row)
	if cru.IsOuter() {
		return globalRow - geo.InnerRowCount()
	}
	return globalRow
}
