package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// NAICSRecord is one row of a NAICS census file: a numeric industry
// code paired with its free-text description.
type NAICSRecord struct {
	Code        int
	Description string
}

// ReadNAICSCSV reads a NAICS census CSV file (code,description per row,
// optional header). Files whose name ends in ".snappy" are transparently
// decompressed, mirroring grailbio-bio's snappy-compressed shard files.
func ReadNAICSCSV(path string) ([]NAICSRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening NAICS CSV file")
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".snappy") {
		r = snappy.NewReader(f)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	var records []NAICSRecord
	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading NAICS CSV row")
		}
		code, convErr := strconv.Atoi(strings.TrimSpace(row[0]))
		if convErr != nil {
			if first {
				// Tolerate a header row that doesn't parse as a code.
				first = false
				continue
			}
			return nil, errors.Wrapf(convErr, "parsing NAICS code %q", row[0])
		}
		first = false
		records = append(records, NAICSRecord{Code: code, Description: row[1]})
	}
	return records, nil
}
