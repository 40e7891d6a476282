package kernel

import (
	"fmt"

	"github.com/born-ml/strided/internal/ndarray"
)

// assertShapes panics with a *ContractViolation when any operand shape
// differs from want. Callers guard it with checkContracts.
func assertShapes(op string, want ndarray.Shape, got ...ndarray.Shape) {
	for i, s := range got {
		if !s.Equal(want) {
			panic(&ContractViolation{
				Op:      op,
				Details: fmt.Sprintf("operand %d has shape %v, want %v", i, []int(s), []int(want)),
			})
		}
	}
}
