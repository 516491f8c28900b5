// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/katalvlaran/lvgrad/matrix"
)

// OneHot expands an n×1 column of class indices into n×classes rows holding
// a single 1 at the class position.
//
// Errors:
//   - ErrLabelRange for a non-integral label or one outside [0, classes).
//   - matrix.ErrDimensionMismatch when labels is not a single column.
func OneHot(labels *matrix.Dense, classes int) (*matrix.Dense, error) {
	if labels == nil {
		return nil, fmt.Errorf("OneHot: %w", matrix.ErrNilMatrix)
	}
	if labels.Cols() != 1 {
		return nil, fmt.Errorf("OneHot: labels are %d×%d: %w", labels.Rows(), labels.Cols(), matrix.ErrDimensionMismatch)
	}
	out, err := matrix.New(labels.Rows(), classes)
	if err != nil {
		return nil, fmt.Errorf("OneHot: %w", err)
	}

	dst := out.Data()
	for i, v := range labels.Data() {
		if v != math32.Trunc(v) || v < 0 || v >= float32(classes) {
			return nil, fmt.Errorf("OneHot: row %d holds %g: %w", i, v, ErrLabelRange)
		}
		dst[i*classes+int(v)] = 1
	}

	return out, nil
}
