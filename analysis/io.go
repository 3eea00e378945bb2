// SPDX-License-Identifier: MIT
// Package: qaoakit/analysis
//
// io.go — plain-text distribution files: one probability per line, blank
// lines and '#' comments ignored.

package analysis

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const methodReadDistribution = "ReadDistribution"

// ReadDistribution parses a distribution and checks its shape and entries.
// Normalization is left to Validate.
func ReadDistribution(r io.Reader) (Distribution, error) {
	var d Distribution
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %v: %w", methodReadDistribution, line, err, ErrInvalidDistribution)
		}
		d = append(d, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodReadDistribution, err)
	}
	if _, err := d.check(methodReadDistribution); err != nil {
		return nil, err
	}
	return d, nil
}

// WriteDistribution writes one probability per line in shortest 'g' form.
func WriteDistribution(w io.Writer, d Distribution) error {
	bw := bufio.NewWriter(w)
	for _, p := range d {
		if _, err := bw.WriteString(strconv.FormatFloat(p, 'g', -1, 64) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
