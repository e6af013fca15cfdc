package cp

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"
	"google.golang.org/protobuf/proto"
)

// Params bound a single CP-SAT invocation. Zero values leave the backend's
// own defaults in place.
type Params struct {
	TimeLimit time.Duration
	Workers   int32
}

type cpSatSolver struct {
	params Params
}

func NewCpSatSolver() Solver {
	return &cpSatSolver{}
}

func NewCpSatSolverWithParams(params Params) Solver {
	return &cpSatSolver{params: params}
}

func (solver *cpSatSolver) Solve(ctx context.Context, model *Model) (*Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	builder := cpmodel.NewCpModelBuilder()

	ints := make([]cpmodel.IntVar, len(model.ints))
	for i, v := range model.ints {
		ints[i] = builder.NewIntVarFromDomain(cpmodel.NewDomain(v.Low, v.High)).WithName(v.Name)
	}

	bools := make([]cpmodel.BoolVar, len(model.bools))
	for i, name := range model.bools {
		bools[i] = builder.NewBoolVar().WithName(name)
	}

	intervals := make([]cpmodel.IntervalVar, len(model.intervals))
	for i, interval := range model.intervals {
		intervals[i] = builder.NewIntervalVar(
			ints[interval.Start],
			cpmodel.NewConstant(interval.Size),
			ints[interval.End],
		)
	}

	for _, linear := range model.linear {
		expr := cpmodel.NewLinearExpr()
		for _, term := range linear.Terms {
			expr.AddTerm(ints[term.Var], term.Coeff)
		}

		var constraint cpmodel.Constraint
		rhs := cpmodel.NewConstant(linear.Rhs)
		switch linear.Rel {
		case Equal:
			constraint = builder.AddEquality(expr, rhs)
		case LessOrEqual:
			constraint = builder.AddLessOrEqual(expr, rhs)
		case GreaterOrEqual:
			constraint = builder.AddGreaterOrEqual(expr, rhs)
		default:
			return nil, fmt.Errorf("unsupported linear relation: %v", linear.Rel)
		}

		if len(linear.OnlyIf) > 0 {
			literals := make([]cpmodel.BoolVar, len(linear.OnlyIf))
			for i, literal := range linear.OnlyIf {
				literals[i] = bools[literal]
			}
			constraint.OnlyEnforceIf(literals...)
		}
	}

	for _, clause := range model.orClauses {
		literals := make([]cpmodel.BoolVar, len(clause))
		for i, literal := range clause {
			literals[i] = bools[literal]
		}
		builder.AddBoolOr(literals...)
	}

	for _, group := range model.noOverlap {
		groupIntervals := make([]cpmodel.IntervalVar, len(group))
		for i, interval := range group {
			groupIntervals[i] = intervals[interval]
		}
		builder.AddNoOverlap(groupIntervals...)
	}

	if model.hasObjective {
		builder.Minimize(ints[model.objective])
	}

	modelProto, err := builder.Model()
	if err != nil {
		return nil, fmt.Errorf("cannot instantiate CP model: %w", err)
	}

	params := sppb.SatParameters{}
	if limit := solver.budget(ctx); limit > 0 {
		params.MaxTimeInSeconds = proto.Float64(limit.Seconds())
	}
	if solver.params.Workers > 0 {
		params.NumWorkers = proto.Int32(solver.params.Workers)
	}

	response, err := cpmodel.SolveCpModelWithParameters(modelProto, &params)
	if err != nil {
		return nil, fmt.Errorf("an error occurred during CP-SAT execution: %w", err)
	}

	solution := &Solution{}
	switch response.GetStatus() {
	case cmpb.CpSolverStatus_OPTIMAL:
		solution.Status = Optimal
	case cmpb.CpSolverStatus_FEASIBLE:
		solution.Status = Feasible
	case cmpb.CpSolverStatus_INFEASIBLE:
		solution.Status = Infeasible
	case cmpb.CpSolverStatus_MODEL_INVALID:
		return nil, fmt.Errorf("CP-SAT rejected the model: %v", response.GetStatus())
	default:
		solution.Status = Unknown
	}

	if !solution.HasAssignment() {
		return solution, nil
	}

	solution.Objective = int64(math.Round(response.GetObjectiveValue()))
	solution.intValues = make([]int64, len(ints))
	for i, v := range ints {
		solution.intValues[i] = cpmodel.SolutionIntegerValue(response, v)
	}
	solution.boolValues = make([]bool, len(bools))
	for i, b := range bools {
		solution.boolValues[i] = cpmodel.SolutionBooleanValue(response, b)
	}

	return solution, nil
}

// budget merges the configured time limit with the context deadline,
// keeping the tighter of the two.
func (solver *cpSatSolver) budget(ctx context.Context) time.Duration {
	limit := solver.params.TimeLimit
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if limit == 0 || remaining < limit {
			limit = remaining
		}
	}
	return limit
}
