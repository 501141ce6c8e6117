package request_models

const (
	BudgetCap   = 10000
	NotesMaxLen = 500
)

// QuizForm is the raw quiz input for one recommendation request. It is
// normalized once at the boundary and immutable afterwards.
type QuizForm struct {
	Occasion     string   `json:"occasion"`
	Relationship string   `json:"relationship"`
	AgeRange     string   `json:"age_range"`
	BudgetMin    int      `json:"budget_min"`
	BudgetMax    int      `json:"budget_max"`
	Interests    []string `json:"interests"`
	DailyLife    []string `json:"daily_life"`
	AvoidList    []string `json:"avoid_list"`
	Notes        string   `json:"notes"`
}

// Normalize applies the defensive clamps for untrusted input: enum defaults,
// budget bounds in [0, BudgetCap] with min <= max, non-nil slices and a
// truncated notes field.
func (f *QuizForm) Normalize() {
	if f.Occasion == "" {
		f.Occasion = "birthday"
	}
	if f.Relationship == "" {
		f.Relationship = "friend"
	}
	if f.AgeRange == "" {
		f.AgeRange = "25-34"
	}

	if f.BudgetMax == 0 {
		f.BudgetMax = 100
	}
	if f.BudgetMin < 0 {
		f.BudgetMin = 0
	}
	if f.BudgetMin > BudgetCap {
		f.BudgetMin = BudgetCap
	}
	if f.BudgetMax > BudgetCap {
		f.BudgetMax = BudgetCap
	}
	if f.BudgetMax < f.BudgetMin {
		f.BudgetMax = f.BudgetMin
	}

	if f.Interests == nil {
		f.Interests = []string{}
	}
	if f.DailyLife == nil {
		f.DailyLife = []string{}
	}
	if f.AvoidList == nil {
		f.AvoidList = []string{}
	}

	if len(f.Notes) > NotesMaxLen {
		f.Notes = f.Notes[:NotesMaxLen]
	}
}
