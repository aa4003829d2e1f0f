package payroll

import "math"

const (
	BasicRate     = 0.6
	HRARate       = 0.2
	DearnessRate  = 0.1
	DeductionRate = 0.08
)

// Breakdown is the monthly split of a stored salary. It is derived on read
// and never persisted.
type Breakdown struct {
	Salary    float64 `json:"salary"`
	Basic     float64 `json:"basic"`
	HRA       float64 `json:"hra"`
	Dearness  float64 `json:"dearness"`
	Deduction float64 `json:"deduction"`
	Net       float64 `json:"net"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func Calculate(salary float64) Breakdown {
	deduction := round2(salary * DeductionRate)
	return Breakdown{
		Salary:    round2(salary),
		Basic:     round2(salary * BasicRate),
		HRA:       round2(salary * HRARate),
		Dearness:  round2(salary * DearnessRate),
		Deduction: deduction,
		Net:       round2(salary - deduction),
	}
}

type Formatted struct {
	Salary    string `json:"salary"`
	Basic     string `json:"basic"`
	HRA       string `json:"hra"`
	Dearness  string `json:"dearness"`
	Deduction string `json:"deduction"`
	Net       string `json:"net"`
}

func (b Breakdown) Format() Formatted {
	return Formatted{
		Salary:    FormatINR(b.Salary, 2),
		Basic:     FormatINR(b.Basic, 2),
		HRA:       FormatINR(b.HRA, 2),
		Dearness:  FormatINR(b.Dearness, 2),
		Deduction: FormatINR(b.Deduction, 2),
		Net:       FormatINR(b.Net, 2),
	}
}
