package model

import (
	"time"

	"github.com/google/uuid"
)

// CalculationModel mirrors the 'calculations' table. UserID is nullable so
// anonymous calculations can be recorded too.
type CalculationModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Operation string     `gorm:"type:varchar(20);not null"`
	OperandA  float64    `gorm:"not null"`
	OperandB  float64    `gorm:"not null"`
	Result    float64    `gorm:"not null"`
	CreatedAt time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CalculationModel) TableName() string {
	return "calculations"
}
