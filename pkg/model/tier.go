package model

// Tier is a discrete urgency class derived from deadline pressure.
// T1 is strictly most urgent; T7 means the project has no deadline at all.
type Tier int

const (
	T1 Tier = iota + 1 // overdue / due today, or > 8 h/day needed
	T2                 // > 6 h/day
	T3                 // > 4 h/day
	T4                 // > 2 h/day
	T5                 // > 1 h/day
	T6                 // has a deadline but needs <= 1 h/day
	T7                 // no deadline
)

func (t Tier) String() string {
	switch t {
	case T1:
		return "T1"
	case T2:
		return "T2"
	case T3:
		return "T3"
	case T4:
		return "T4"
	case T5:
		return "T5"
	case T6:
		return "T6"
	case T7:
		return "T7"
	}
	return "T?"
}

// Index returns the sort index of the tier; lower sorts first.
func (t Tier) Index() int {
	return int(t)
}

// Urgent reports whether the tier belongs to the urgent bucket (T1-T5).
// T6 and T7 are the chore bucket.
func (t Tier) Urgent() bool {
	return t >= T1 && t <= T5
}
