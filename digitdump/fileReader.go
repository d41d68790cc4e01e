package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"unsafe"
)

// Raw-word stream layout: a sequence of intervals, each an IntervalHeaderStruct
// followed by NWords fixed-size RawWordStruct records, all little endian. The
// link-layer decoder upstream produces this; byte order and framing of the
// hardware stream itself are handled there.

const INTERVAL_MAGIC uint32 = 0x54504344

type IntervalHeaderStruct struct {
	Magic      uint32
	IntervalID uint32
	NWords     uint32
}

type RawWordStruct struct {
	CRUID   uint16
	Row     uint16
	Pad     uint16
	Flags   uint16
	TimeBin uint32
	ADC     float32
}

type FileReader struct {
	File          *os.File
	IntervalCount int
}

func NewFileReader(file *os.File) *FileReader {
	return &FileReader{File: file, IntervalCount: -1}
}

func (f *FileReader) getNextInterval() (IntervalHeaderStruct, []byte, error) {
	header, intervalData, err := readInterval(f.File)
	if err != nil {
		return header, nil, err
	}
	f.IntervalCount++
	if f.IntervalCount >= configuration.Skip+configuration.MaxIntervals {
		return header, nil, io.EOF
	}
	if f.IntervalCount < configuration.Skip {
		return f.getNextInterval()
	}
	return header, intervalData, nil
}

func readInterval(file *os.File) (IntervalHeaderStruct, []byte, error) {
	var header IntervalHeaderStruct
	headerSize := unsafe.Sizeof(header)
	headerBinary := make([]byte, headerSize)
	nRead, err := file.Read(headerBinary)
	if err != nil {
		return header, nil, err
	}
	if nRead < int(headerSize) {
		return header, nil, io.EOF
	}

	headerReader := bytes.NewReader(headerBinary)
	binary.Read(headerReader, binary.LittleEndian, &header)
	if header.Magic != INTERVAL_MAGIC {
		return header, nil, fmt.Errorf("bad interval magic 0x%08x at interval %d", header.Magic, header.IntervalID)
	}

	payloadSize := int(header.NWords) * int(unsafe.Sizeof(RawWordStruct{}))
	intervalData := make([]byte, payloadSize)
	nRead, err = file.Read(intervalData)
	if err != nil {
		return header, nil, err
	}
	if nRead < payloadSize {
		return header, nil, fmt.Errorf("truncated interval %d: %d of %d payload bytes", header.IntervalID, nRead, payloadSize)
	}
	return header, intervalData, nil
}

func countIntervals(file *os.File) int {
	intervalCount := 0
	for {
		var header IntervalHeaderStruct
		headerSize := unsafe.Sizeof(header)
		headerBinary := make([]byte, headerSize)
		nRead, err := file.Read(headerBinary)
		if err != nil || nRead < int(headerSize) {
			break
		}

		headerReader := bytes.NewReader(headerBinary)
		binary.Read(headerReader, binary.LittleEndian, &header)
		if header.Magic != INTERVAL_MAGIC {
			break
		}

		payloadSize := int64(header.NWords) * int64(unsafe.Sizeof(RawWordStruct{}))
		file.Seek(payloadSize, 1)
		intervalCount++
	}
	// Go back to the beginning of the file
	file.Seek(0, 0)
	return intervalCount
}
