package pricing

import (
	"errors"
	"math"

	"github.com/de-tools/ebsight/pkg/models/domain"
)

// DefaultRatePerGiBMonth is the us-east-1 EBS snapshot storage rate.
// Regional rates vary; the model is an estimate, not a price list.
const DefaultRatePerGiBMonth = 0.05

var ErrInvalidSize = errors.New("size must be a finite non-negative number")

// Model projects a snapshot footprint into cost figures at a fixed
// per-GiB-month rate. It performs no rounding; formatting is left to
// the presentation layer.
type Model struct {
	ratePerGiBMonth float64
}

func NewModel(ratePerGiBMonth float64) *Model {
	if ratePerGiBMonth <= 0 {
		ratePerGiBMonth = DefaultRatePerGiBMonth
	}
	return &Model{ratePerGiBMonth: ratePerGiBMonth}
}

func DefaultModel() *Model {
	return NewModel(DefaultRatePerGiBMonth)
}

func (m *Model) Estimate(sizeGiB float64) (domain.CostEstimate, error) {
	if sizeGiB < 0 || math.IsNaN(sizeGiB) || math.IsInf(sizeGiB, 0) {
		return domain.CostEstimate{}, ErrInvalidSize
	}

	monthly := sizeGiB * m.ratePerGiBMonth
	daily := monthly / 30

	return domain.CostEstimate{
		Daily:   daily,
		Weekly:  daily * 7,
		Monthly: monthly,
		Annual:  monthly * 12,
	}, nil
}
