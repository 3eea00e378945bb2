// SPDX-License-Identifier: MIT
// Package: qaoakit/operator
//
// text.go — deterministic line-oriented serialization.
//
// Format:
//
//	# qubits=3
//	0.3, 1
//	0.4, 0 1
//	0.6, 1 2
//
//   • The header is optional on input; without it the register size is
//     max(index)+1.
//   • Singles are written first, then pairs, each in construction order.
//   • Real coefficients are written with strconv 'g' shortest formatting;
//     coefficients with a non-zero imaginary part use strconv.FormatComplex,
//     e.g. "(0.5+1i)".
//   • Other lines starting with '#' and blank lines are ignored.

package operator

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

const (
	methodUnmarshalText = "UnmarshalText"
	headerPrefix        = "# qubits="
)

// MarshalText implements encoding.TextMarshaler.
func (m *Model) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(headerPrefix)
	buf.WriteString(strconv.Itoa(m.n))
	buf.WriteByte('\n')

	for _, s := range m.singles {
		buf.WriteString(formatCoeff(s.Coeff))
		buf.WriteString(", ")
		buf.WriteString(strconv.Itoa(s.Qubit))
		buf.WriteByte('\n')
	}
	for _, p := range m.pairs {
		buf.WriteString(formatCoeff(p.Coeff))
		buf.WriteString(", ")
		buf.WriteString(strconv.Itoa(p.A))
		buf.WriteByte(' ')
		buf.WriteString(strconv.Itoa(p.B))
		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}

// String renders the text serialization.
func (m *Model) String() string {
	b, _ := m.MarshalText()
	return string(b)
}

// UnmarshalText implements encoding.TextUnmarshaler. The receiver is replaced
// only when the whole input parses and validates.
func (m *Model) UnmarshalText(text []byte) error {
	parsed, err := ParseText(string(text))
	if err != nil {
		return err
	}
	*m = *parsed
	return nil
}

// ParseText parses the text serialization into a validated Model.
// Complexity: O(len(text)).
func ParseText(text string) (*Model, error) {
	var (
		singles []Single
		pairs   []Pair
		n       = -1
		maxIdx  = -1
		lineNo  int
	)

	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, headerPrefix) {
			v, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, headerPrefix)))
			if err != nil {
				return nil, fmt.Errorf("%s: line %d: bad header %q: %w", methodUnmarshalText, lineNo, line, ErrSyntax)
			}
			n = v
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		coeffPart, idxPart, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%s: line %d: missing ',' in %q: %w", methodUnmarshalText, lineNo, line, ErrSyntax)
		}
		coeff, err := parseCoeff(strings.TrimSpace(coeffPart))
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: coefficient %q: %w", methodUnmarshalText, lineNo, coeffPart, ErrSyntax)
		}

		fields := strings.Fields(idxPart)
		idx := make([]int, len(fields))
		for i, f := range fields {
			if idx[i], err = strconv.Atoi(f); err != nil {
				return nil, fmt.Errorf("%s: line %d: index %q: %w", methodUnmarshalText, lineNo, f, ErrSyntax)
			}
			if idx[i] > maxIdx {
				maxIdx = idx[i]
			}
		}

		switch len(idx) {
		case 1:
			singles = append(singles, Single{Qubit: idx[0], Coeff: coeff})
		case 2:
			pairs = append(pairs, Pair{A: idx[0], B: idx[1], Coeff: coeff})
		default:
			return nil, fmt.Errorf("%s: line %d: %d indices, want 1 or 2: %w",
				methodUnmarshalText, lineNo, len(idx), ErrSyntax)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodUnmarshalText, err)
	}

	if n < 0 {
		n = maxIdx + 1
	}

	return New(n, singles, pairs)
}

func formatCoeff(c complex128) string {
	if imag(c) == 0 {
		return strconv.FormatFloat(real(c), 'g', -1, 64)
	}
	return strconv.FormatComplex(c, 'g', -1, 128)
}

func parseCoeff(s string) (complex128, error) {
	if strings.HasPrefix(s, "(") {
		return strconv.ParseComplex(s, 128)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return complex(f, 0), nil
}
