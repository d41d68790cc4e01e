package digits

// Assembler turns accepted samples into digits and appends them to the
// per-partition buffers owned by the interval.
type Assembler struct {
	geo     Geometry
	buffers *[NPartitions][]Digit
}

func NewAssembler(geo Geometry, buffers *[NPartitions][]Digit) *Assembler {
	return &Assembler{geo: geo, buffers: buffers}
}

// Append builds a digit from an accepted sample. The digit carries the
// global row index; a wrong geometry table misplaces digits silently.
func (a *Assembler) Append(sample RawSample, charge float32) {
	digit := Digit{
		CRU:     sample.CRU,
		Row:     GlobalRow(a.geo, sample.CRU, sample.Row),
		Pad:     sample.Pad,
		TimeBin: sample.TimeBin,
		Charge:  charge,
	}
	partition := sample.CRU.Partition()
	a.buffers[partition] = append(a.buffers[partition], digit)
}
