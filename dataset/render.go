// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"fmt"
	"io"
)

// Grayscale ramp of the xterm 256-colour palette.
const (
	grayBase  = 232
	graySteps = 23

	ansiReset = "\x1b[0m"
)

// Render draws sample as rows of width two-space cells whose background is a
// grayscale level proportional to the value (0 black, 1 white). Values
// outside [0,1] are clamped.
func Render(w io.Writer, sample []float32, width int) error {
	if width <= 0 || len(sample)%width != 0 {
		return fmt.Errorf("Render: %d values, width %d: %w", len(sample), width, ErrRenderWidth)
	}

	bw := bufio.NewWriter(w)
	for i, v := range sample {
		fmt.Fprintf(bw, "\x1b[48;5;%dm  ", grayLevel(v))
		if (i+1)%width == 0 {
			bw.WriteString(ansiReset + "\n")
		}
	}

	return bw.Flush()
}

func grayLevel(v float32) int {
	switch {
	case !(v > 0):
		return grayBase
	case v >= 1:
		return grayBase + graySteps
	default:
		return grayBase + int(v*graySteps)
	}
}
