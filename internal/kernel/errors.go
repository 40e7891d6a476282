package kernel

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidCallback   = errors.New("kernel: callback must not be nil")
	ErrRankMismatch      = errors.New("kernel: operands have different ranks")
	ErrContractViolation = errors.New("kernel: contract violation")
)

// ContractViolation reports operands that break the kernel's preconditions.
// It is raised as a panic by debug builds only.
type ContractViolation struct {
	Op      string
	Details string
}

// Error implements the error interface.
func (e *ContractViolation) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrContractViolation, e.Op, e.Details)
}

// Unwrap returns ErrContractViolation.
func (e *ContractViolation) Unwrap() error {
	return ErrContractViolation
}

func checkRanks(op string, ranks ...int) error {
	for _, r := range ranks[1:] {
		if r != ranks[0] {
			return fmt.Errorf("%w: %s: %v", ErrRankMismatch, op, ranks)
		}
	}
	return nil
}
