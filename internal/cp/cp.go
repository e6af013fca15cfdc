package cp

// Package cp holds a backend-neutral representation of an integer/boolean
// constraint optimization problem: bounded integer variables, linear
// constraints with optional enforcement literals, boolean disjunctions,
// no-overlap interval groups and a single minimization objective.

type IntVar int

type BoolVar int

type IntervalVar int

type Relation int

const (
	Equal Relation = iota
	LessOrEqual
	GreaterOrEqual
)

// Term is one weighted variable of a linear sum.
type Term struct {
	Var   IntVar
	Coeff int64
}

// LinearConstraint states that the weighted sum of Terms relates to Rhs.
// When OnlyIf is non-empty the constraint is enforced only while every
// listed literal is true.
type LinearConstraint struct {
	Terms  []Term
	Rel    Relation
	Rhs    int64
	OnlyIf []BoolVar
}

// OnlyEnforceIf turns the constraint into an implication guarded by the
// given literals.
func (c *LinearConstraint) OnlyEnforceIf(literals ...BoolVar) *LinearConstraint {
	c.OnlyIf = append(c.OnlyIf, literals...)
	return c
}

type intVarData struct {
	Low  int64
	High int64
	Name string
}

type intervalData struct {
	Start IntVar
	Size  int64
	End   IntVar
}

type Model struct {
	ints      []intVarData
	bools     []string
	linear    []*LinearConstraint
	orClauses [][]BoolVar
	intervals []intervalData
	noOverlap [][]IntervalVar

	objective    IntVar
	hasObjective bool
}

func NewModel() *Model {
	return &Model{}
}

func (m *Model) NewIntVar(low, high int64, name string) IntVar {
	m.ints = append(m.ints, intVarData{Low: low, High: high, Name: name})
	return IntVar(len(m.ints) - 1)
}

func (m *Model) NewBoolVar(name string) BoolVar {
	m.bools = append(m.bools, name)
	return BoolVar(len(m.bools) - 1)
}

// NewInterval registers a fixed-size interval spanning [start, end). The
// start/end variables stay linked through whatever linear constraints the
// caller has emitted; the interval itself only matters to no-overlap groups.
func (m *Model) NewInterval(start IntVar, size int64, end IntVar) IntervalVar {
	m.intervals = append(m.intervals, intervalData{Start: start, Size: size, End: end})
	return IntervalVar(len(m.intervals) - 1)
}

func (m *Model) add(rel Relation, rhs int64, terms []Term) *LinearConstraint {
	constraint := &LinearConstraint{Terms: terms, Rel: rel, Rhs: rhs}
	m.linear = append(m.linear, constraint)
	return constraint
}

func (m *Model) AddEquality(terms []Term, rhs int64) *LinearConstraint {
	return m.add(Equal, rhs, terms)
}

func (m *Model) AddLessOrEqual(terms []Term, rhs int64) *LinearConstraint {
	return m.add(LessOrEqual, rhs, terms)
}

func (m *Model) AddGreaterOrEqual(terms []Term, rhs int64) *LinearConstraint {
	return m.add(GreaterOrEqual, rhs, terms)
}

// AddBoolOr requires at least one of the literals to be true.
func (m *Model) AddBoolOr(literals ...BoolVar) {
	m.orClauses = append(m.orClauses, literals)
}

// AddNoOverlap forbids any two of the intervals from occupying a common
// instant: the capacity-1 resource constraint.
func (m *Model) AddNoOverlap(intervals ...IntervalVar) {
	m.noOverlap = append(m.noOverlap, intervals)
}

// Minimize sets the objective. At most one variable can be minimized per
// model; a later call replaces the earlier one.
func (m *Model) Minimize(v IntVar) {
	m.objective = v
	m.hasObjective = true
}

func (m *Model) Variables() int {
	return len(m.ints) + len(m.bools)
}

func (m *Model) Constraints() int {
	return len(m.linear) + len(m.orClauses) + len(m.noOverlap)
}
