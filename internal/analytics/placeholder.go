package analytics

// PlaceholderStats are fixed demo figures shown next to the computed summary. None
// of it is derived from data; Placeholder is always true so clients can label it.
type PlaceholderStats struct {
	Placeholder     bool            `json:"placeholder"`
	Gender          GenderSplit     `json:"gender"`
	JobSatisfaction JobSatisfaction `json:"job_satisfaction"`
	RemoteWork      RemoteWork      `json:"remote_work"`
	EmployeeGrowth  []MonthlyCount  `json:"employee_growth"`
}

type GenderSplit struct {
	Male   int `json:"male"`
	Female int `json:"female"`
}

type JobSatisfaction struct {
	Satisfied    int `json:"satisfied"`
	Neutral      int `json:"neutral"`
	Dissatisfied int `json:"dissatisfied"`
}

type RemoteWork struct {
	Onsite int `json:"onsite"`
	Remote int `json:"remote"`
	Hybrid int `json:"hybrid"`
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

const placeholderHeadcount = 295

// Placeholders returns a fresh copy of the demo figures.
func Placeholders() PlaceholderStats {
	return PlaceholderStats{
		Placeholder: true,
		Gender:      GenderSplit{Male: placeholderHeadcount - 120, Female: 120},
		JobSatisfaction: JobSatisfaction{
			Satisfied:    placeholderHeadcount - 50 - 30,
			Neutral:      50,
			Dissatisfied: 30,
		},
		RemoteWork: RemoteWork{
			Onsite: placeholderHeadcount - 70 - 80,
			Remote: 70,
			Hybrid: 80,
		},
		EmployeeGrowth: []MonthlyCount{
			{Month: "January", Count: 50},
			{Month: "February", Count: 70},
			{Month: "March", Count: 100},
			{Month: "April", Count: 130},
			{Month: "May", Count: 160},
			{Month: "June", Count: 200},
		},
	}
}
