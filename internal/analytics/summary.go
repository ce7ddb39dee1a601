// Package analytics derives dashboard figures from employee and department records.
//
// Everything here is a pure function of its inputs: no I/O, no caching, safe for
// concurrent use.
package analytics

import (
	"strconv"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/domain/workforce"
)

// Summary is the dashboard payload handed verbatim to the rendering layer.
type Summary struct {
	EmployeeCount   int             `json:"employee_count"`
	DepartmentCount int             `json:"department_count"`
	AverageAge      Tenths          `json:"average_age"`
	AgeDistribution AgeDistribution `json:"age_distribution"`
}

// Tenths is a value already rounded to one decimal place. It always encodes with
// exactly one fractional digit (37 -> 37.0).
type Tenths float64

func (t Tenths) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(t), 'f', 1, 64)), nil
}

func (t Tenths) String() string {
	return strconv.FormatFloat(float64(t), 'f', 1, 64)
}

// ComputeSummary counts both collections, averages employee ages and buckets them.
//
// Ages under 20 fall into no bucket yet still count toward EmployeeCount and the
// average. A nil employee record fails the whole call with *InvalidInputError;
// empty or nil slices are a normal zero summary.
func ComputeSummary(employees []*workforce.Employee, departments []*workforce.Department) (Summary, error) {
	var (
		sum  int64
		dist AgeDistribution
	)
	for i, e := range employees {
		if e == nil {
			return Summary{}, &InvalidInputError{Index: i, Reason: "nil employee record"}
		}
		sum += int64(e.Age)
		dist.observe(e.Age)
	}

	n := len(employees)
	out := Summary{
		EmployeeCount:   n,
		DepartmentCount: len(departments),
		AgeDistribution: dist,
	}
	if n > 0 {
		out.AverageAge = roundTenths(sum, int64(n))
	}
	return out, nil
}

// roundTenths returns num/den rounded to one decimal, half away from zero. The
// rounding is done on the exact rational so binary float error never moves a tie.
func roundTenths(num, den int64) Tenths {
	scaled := num * 10
	neg := scaled < 0
	if neg {
		scaled = -scaled
	}
	q := (2*scaled + den) / (2 * den)
	if neg {
		q = -q
	}
	return Tenths(float64(q) / 10)
}
