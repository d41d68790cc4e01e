package digits

import (
	"fmt"
	"sync"
)

// IntervalState tracks the lifecycle of one acquisition interval.
type IntervalState int

const (
	Idle IntervalState = iota
	Collecting
	Finalizing
	Emitted
)

func (s IntervalState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Collecting:
		return "Collecting"
	case Finalizing:
		return "Finalizing"
	case Emitted:
		return "Emitted"
	default:
		return "Unknown"
	}
}

// IntervalStats counts per-interval diagnostics. Masked samples are tracked
// separately and never count as rejections or duplicates.
type IntervalStats struct {
	Accepted   int
	Rejected   int
	Masked     int
	Duplicates int
}

// Result is one finalized interval as handed to the sink. The digit slices
// are detached from the interval on Emit and stay valid across Reset.
type Result struct {
	IntervalID uint32
	Digits     [NPartitions][]Digit
	Stats      IntervalStats
	Error      bool
}

// Interval drives one acquisition window end to end:
// Begin -> Ingest for every raw word -> Finalize -> Emit -> Reset.
// It exclusively owns the per-partition digit buffers for its duration.
// A single producer feeds Ingest; partitions are normalized in parallel
// during Finalize since their buffers are disjoint.
type Interval struct {
	state     IntervalState
	id        uint32
	selector  *Selector
	assembler *Assembler
	calib     *CalibStore
	mandatory bool
	calibRef  string
	buffers   [NPartitions][]Digit
	stats     IntervalStats
}

func NewInterval(config Configuration, calib *CalibStore, geo Geometry) *Interval {
	interval := &Interval{
		state:     Idle,
		selector:  NewSelector(config, calib, geo),
		calib:     calib,
		mandatory: config.MandatoryCalibration,
		calibRef:  config.PedestalNoiseFile,
	}
	interval.assembler = NewAssembler(geo, &interval.buffers)
	return interval
}

func (c *Interval) State() IntervalState {
	return c.state
}

func (c *Interval) Stats() IntervalStats {
	return c.stats
}

// Begin clears the partition buffers and enters Collecting. It fails fast
// when the deployment demands pedestal calibration and none was loaded; the
// interval then never starts collecting.
func (c *Interval) Begin(intervalID uint32) error {
	if c.state != Idle {
		err := &ErrInvalidState{Op: "Begin", State: c.state}
		logger.Error(err.Error())
		return err
	}
	if c.mandatory && !c.calib.Loaded() {
		err := &ErrMandatoryCalibration{Ref: c.calibRef}
		logger.Error(err.Error())
		return err
	}
	for partition := range c.buffers {
		c.buffers[partition] = nil
	}
	c.stats = IntervalStats{}
	c.id = intervalID
	c.state = Collecting
	return nil
}

// Ingest routes one raw sample through the selector and, when accepted,
// appends the digit to its partition buffer. Calling outside Collecting is a
// contract violation: reported, not silently ignored.
func (c *Interval) Ingest(sample RawSample) error {
	if c.state != Collecting {
		err := &ErrInvalidState{Op: "Ingest", State: c.state}
		logger.Error(err.Error())
		return err
	}

	outcome, charge := c.selector.Decide(sample)
	switch outcome {
	case Accept:
		c.assembler.Append(sample, charge)
		c.stats.Accepted++
	case Reject:
		c.stats.Rejected++
	case Masked:
		c.stats.Masked++
	}
	return nil
}

// Finalize sorts and deduplicates every non-empty partition buffer, one
// goroutine per partition, and leaves the interval Emitted.
func (c *Interval) Finalize() error {
	if c.state != Collecting {
		err := &ErrInvalidState{Op: "Finalize", State: c.state}
		logger.Error(err.Error())
		return err
	}
	c.state = Finalizing

	var wg sync.WaitGroup
	var mu sync.Mutex
	for partition := range c.buffers {
		if len(c.buffers[partition]) == 0 {
			continue
		}
		wg.Add(1)
		go func(partition int) {
			defer wg.Done()
			nDuplicates := CheckDuplicates(partition, &c.buffers[partition], true)
			if nDuplicates > 0 {
				mu.Lock()
				c.stats.Duplicates += nDuplicates
				mu.Unlock()
			}
		}(partition)
	}
	wg.Wait()

	c.state = Emitted
	return nil
}

// Emit hands the finalized buffers over. The interval keeps no reference to
// the emitted slices, so the next Begin or Reset cannot corrupt them.
func (c *Interval) Emit() (Result, error) {
	if c.state != Emitted {
		err := &ErrInvalidState{Op: "Emit", State: c.state}
		logger.Error(err.Error())
		return Result{Error: true}, err
	}

	result := Result{IntervalID: c.id, Digits: c.buffers, Stats: c.stats}
	for partition := range c.buffers {
		c.buffers[partition] = nil
	}

	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Interval %d: accepted %d, rejected %d, masked %d, duplicates %d",
			c.id, c.stats.Accepted, c.stats.Rejected, c.stats.Masked, c.stats.Duplicates)
		logger.Info(message, "interval")
	}
	return result, nil
}

// Reset drops all buffers and returns to Idle. Valid from any state, also
// for abandoned intervals that never reached Emit; no partial result ever
// becomes visible to the sink.
func (c *Interval) Reset() {
	for partition := range c.buffers {
		c.buffers[partition] = nil
	}
	c.stats = IntervalStats{}
	c.state = Idle
}
