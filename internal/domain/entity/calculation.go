// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Operation identifies one of the four supported arithmetic operations.
type Operation string

const (
	// OperationAdd adds two operands.
	OperationAdd Operation = "add"
	// OperationSubtract subtracts the second operand from the first.
	OperationSubtract Operation = "subtract"
	// OperationMultiply multiplies two operands.
	OperationMultiply Operation = "multiply"
	// OperationDivide divides the first operand by the second.
	OperationDivide Operation = "divide"
)

// String returns the string representation of the Operation.
func (op Operation) String() string {
	return string(op)
}

// IsValid checks if the Operation is a supported value.
func (op Operation) IsValid() bool {
	switch op {
	case OperationAdd, OperationSubtract, OperationMultiply, OperationDivide:
		return true
	default:
		return false
	}
}

// Calculation records one performed arithmetic operation.
// UserID is nil for anonymous requests.
type Calculation struct {
	ID        uuid.UUID  `json:"id"`                // The unique identifier for this history entry.
	UserID    *uuid.UUID `json:"user_id,omitempty"` // The account that requested the calculation, if logged in.
	Operation Operation  `json:"operation"`         // Which of the four operations was performed.
	OperandA  float64    `json:"operand_a"`         // The first operand.
	OperandB  float64    `json:"operand_b"`         // The second operand.
	Result    float64    `json:"result"`            // The computed result.
	CreatedAt time.Time  `json:"created_at"`        // When the calculation was performed.
}
