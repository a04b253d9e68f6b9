package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"svw.info/cephalopod/internal/domain"
)

var (
	ErrMissingLine    = errors.New("missing input line")
	ErrInvalidInteger = errors.New("unparsable integer")
	ErrFieldCount     = errors.New("wrong field count")
)

// ReadProblem parses the depth line followed by three grid rows.
func ReadProblem(r io.Reader) (*domain.Problem, error) {
	sc := bufio.NewScanner(r)
	line := 0
	next := func(want int) ([]uint8, error) {
		line++
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			return nil, fmt.Errorf("line %d: %w", line, ErrMissingLine)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != want {
			return nil, fmt.Errorf("line %d: %w: got %d, want %d", line, ErrFieldCount, len(fields), want)
		}
		out := make([]uint8, want)
		for i, f := range fields {
			v, err := strconv.ParseUint(f, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %q", line, ErrInvalidInteger, f)
			}
			out[i] = uint8(v)
		}
		return out, nil
	}

	depth, err := next(1)
	if err != nil {
		return nil, err
	}
	p := &domain.Problem{Depth: depth[0]}
	for row := 0; row < 3; row++ {
		cells, err := next(3)
		if err != nil {
			return nil, err
		}
		copy(p.Board[row][:], cells)
	}
	return p, nil
}
