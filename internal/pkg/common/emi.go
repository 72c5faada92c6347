package common

import "math"

// Schedule holds the money fields derived from a loan request under the
// flat-rate model: interest accrues on the full principal for the whole
// tenure.
type Schedule struct {
	Principal          float64
	MonthlyInstallment float64
	TotalInterest      float64
	TotalPayable       float64
}

// ComputeSchedule derives the repayment schedule for a principal amount over
// tenureMonths at the given flat annual rate (percent).
func ComputeSchedule(principal float64, tenureMonths int32, annualRatePercent float64) Schedule {
	if tenureMonths <= 0 {
		tenureMonths = 1
	}

	years := float64(tenureMonths) / 12.0
	totalInterest := principal * (annualRatePercent / 100.0) * years
	totalPayable := principal + totalInterest
	monthly := totalPayable / float64(tenureMonths)

	return Schedule{
		Principal:          roundTwo(principal),
		MonthlyInstallment: roundTwo(monthly),
		TotalInterest:      roundTwo(totalInterest),
		TotalPayable:       roundTwo(totalPayable),
	}
}

func roundTwo(value float64) float64 {
	return math.Round(value*100) / 100
}
