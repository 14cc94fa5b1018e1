package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcoot/seabattle-go/internal/model"
)

// ParseCoordinate reads "row col" in 1-based board terms and returns the 0-based coordinate
func ParseCoordinate(line string, size int) (model.Coordinate, error) {
	fields := strings.Fields(line)

	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return model.Coordinate{}, fmt.Errorf("%w: %q", model.ErrInvalidInput, f)
		}
		nums = append(nums, n)
	}

	if len(nums) != 2 {
		return model.Coordinate{}, fmt.Errorf("%w, got %d", model.ErrInvalidInputShape, len(nums))
	}

	c := model.Coordinate{Row: nums[0] - 1, Col: nums[1] - 1}
	if !c.InBounds(size) {
		return model.Coordinate{}, fmt.Errorf("%w: both must be between 1 and %d", model.ErrCoordinateRange, size)
	}
	return c, nil
}

// Input reads answers line by line and writes the prompts for them
type Input struct {
	scanner *bufio.Scanner
	out     io.Writer
	size    int
}

// NewInput creates an Input for a board of the given size
func NewInput(r io.Reader, out io.Writer, size int) *Input {
	return &Input{
		scanner: bufio.NewScanner(r),
		out:     out,
		size:    size,
	}
}

// ReadLine prints prompt and returns the next line; io.EOF once input is closed
func (in *Input) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(in.out, prompt)
	if !in.scanner.Scan() {
		if err := in.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(in.scanner.Text()), nil
}

// AskCoordinate reads one coordinate; parse errors are returned for the caller to report
func (in *Input) AskCoordinate(ctx context.Context, prompt string) (model.Coordinate, error) {
	line, err := in.ReadLine(ctx, prompt)
	if err != nil {
		return model.Coordinate{}, err
	}
	return ParseCoordinate(line, in.size)
}

// AskShot keeps asking until the line parses as a coordinate
func (in *Input) AskShot(ctx context.Context) (model.Coordinate, error) {
	for {
		c, err := in.AskCoordinate(ctx, fmt.Sprintf("Enter row and column separated by a space (1 to %d): ", in.size))
		if err == nil {
			return c, nil
		}
		if !isInputError(err) {
			return model.Coordinate{}, err
		}
		fmt.Fprintf(in.out, "Error: %s, try again\n", err)
	}
}

// Confirm asks a yes/no question; anything other than y or yes is no
func (in *Input) Confirm(ctx context.Context, prompt string) (bool, error) {
	line, err := in.ReadLine(ctx, prompt+" [y/N]: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
