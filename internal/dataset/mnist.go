// Package dataset reads the two sample datasets the benchmark harness
// sorts: MNIST-style idx label files and NAICS census CSV records.
// Grounded in original_source/datasets/read_data_sets.h (the C++
// project's own MNIST label reader) and, for error handling idiom, in
// grailbio-bio/encoding/fasta's use of github.com/pkg/errors to wrap
// I/O and parse failures with context.
package dataset

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

const mnistLabelMagic = 0x00000801

// ReadMNISTLabels reads an MNIST idx1-ubyte label file and returns the
// labels as a slice of bytes, one per image, in file order.
func ReadMNISTLabels(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening MNIST label file")
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, errors.Wrap(err, "reading MNIST label header")
	}
	magic := binary.BigEndian.Uint32(header[0:4])
	if magic != mnistLabelMagic {
		return nil, errors.Errorf("unexpected MNIST label magic %#x", magic)
	}
	count := binary.BigEndian.Uint32(header[4:8])

	labels := make([]byte, count)
	if _, err := io.ReadFull(r, labels); err != nil {
		return nil, errors.Wrap(err, "reading MNIST label data")
	}
	return labels, nil
}
