package loaders

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/reusee/modelrun/stores"
)

// Parse reads the time-series text format:
//
//	LATA 2020 2021 2022
//	GDP  1,5 1,7 1,9
//
// The LATA line fixes the series length L to the number of labels and is
// stored as Labels under LATA and as Scalar under LL. Every other line is a
// variable name followed by values. Short lines are padded by repeating the
// last value; values beyond L are ignored. Commas are read as decimal points.
//
// Lines that cannot be read are reported to onSkip, which may be nil, and
// dropped. A value line before any LATA line is a FormatError.
func Parse(source string, r io.Reader, onSkip func(*LineSkipped)) (*stores.Store, error) {
	store := stores.New()
	length := -1

	skip := func(e *LineSkipped) {
		if onSkip != nil {
			onSkip(e)
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(
			strings.ReplaceAll(scanner.Text(), ",", "."),
		)
		if len(fields) == 0 {
			continue
		}

		name := fields[0]
		if name == stores.LabelsKey {
			length = len(fields) - 1
			store.Set(stores.LengthKey, stores.Scalar(length))
			store.Set(stores.LabelsKey, stores.Labels(fields[1:]))
			continue
		}

		if length < 0 {
			return nil, &FormatError{
				Source: source,
				Line:   lineNum,
				Reason: "variable " + name + " defined before " + stores.LabelsKey,
			}
		}

		if len(fields) < 2 {
			skip(&LineSkipped{
				Line:   lineNum,
				Name:   name,
				Reason: "no values",
			})
			continue
		}

		values, err := parseValues(fields[1:], length)
		if err != nil {
			skip(&LineSkipped{
				Line:   lineNum,
				Name:   name,
				Reason: "bad value",
				Err:    err,
			})
			continue
		}
		store.Set(name, values)
	}
	if err := scanner.Err(); err != nil {
		return nil, &FormatError{
			Source: source,
			Line:   lineNum,
			Reason: "read",
			Err:    err,
		}
	}

	return store, nil
}

func parseValues(fields []string, length int) (stores.Series, error) {
	values := make(stores.Series, length)
	for i := range length {
		if i >= len(fields) {
			values[i] = values[i-1]
			continue
		}
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
