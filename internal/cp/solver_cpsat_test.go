package cp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCpSatSolverOptimal(t *testing.T) {
	//** Arrange: two fixed-size intervals on one resource, minimize the
	//** latest end.
	model := NewModel()
	start1 := model.NewIntVar(0, 100, "start_1")
	end1 := model.NewIntVar(0, 100, "end_1")
	model.AddEquality([]Term{{Var: end1, Coeff: 1}, {Var: start1, Coeff: -1}}, 5)

	start2 := model.NewIntVar(0, 100, "start_2")
	end2 := model.NewIntVar(0, 100, "end_2")
	model.AddEquality([]Term{{Var: end2, Coeff: 1}, {Var: start2, Coeff: -1}}, 3)

	model.AddNoOverlap(
		model.NewInterval(start1, 5, end1),
		model.NewInterval(start2, 3, end2),
	)

	makespan := model.NewIntVar(0, 100, "makespan")
	model.AddLessOrEqual([]Term{{Var: end1, Coeff: 1}, {Var: makespan, Coeff: -1}}, 0)
	model.AddLessOrEqual([]Term{{Var: end2, Coeff: 1}, {Var: makespan, Coeff: -1}}, 0)
	model.Minimize(makespan)

	solver := NewCpSatSolver()

	//** Act
	solution, err := solver.Solve(context.Background(), model)

	//** Assert
	assert.Nil(t, err)
	assert.Equal(t, Optimal, solution.Status)
	assert.True(t, solution.HasAssignment())
	assert.EqualValues(t, 8, solution.Objective)
	assert.EqualValues(t, 8, solution.Value(makespan))
	assert.Equal(t, solution.Value(start1)+5, solution.Value(end1))
	assert.Equal(t, solution.Value(start2)+3, solution.Value(end2))
}

func TestCpSatSolverImplicationAndDisjunction(t *testing.T) {
	//** Arrange: v must avoid the open region (3, 7) via two guarded bounds.
	model := NewModel()
	v := model.NewIntVar(4, 100, "v")
	low := model.NewBoolVar("low")
	high := model.NewBoolVar("high")
	model.AddLessOrEqual([]Term{{Var: v, Coeff: 1}}, 3).OnlyEnforceIf(low)
	model.AddGreaterOrEqual([]Term{{Var: v, Coeff: 1}}, 7).OnlyEnforceIf(high)
	model.AddBoolOr(low, high)
	model.Minimize(v)

	//** Act
	solution, err := NewCpSatSolver().Solve(context.Background(), model)

	//** Assert
	assert.Nil(t, err)
	assert.Equal(t, Optimal, solution.Status)
	assert.EqualValues(t, 7, solution.Value(v))
	assert.True(t, solution.BoolValue(high))
}

func TestCpSatSolverInfeasible(t *testing.T) {
	model := NewModel()
	v := model.NewIntVar(0, 5, "v")
	model.AddGreaterOrEqual([]Term{{Var: v, Coeff: 1}}, 8)

	solution, err := NewCpSatSolver().Solve(context.Background(), model)

	assert.Nil(t, err)
	assert.Equal(t, Infeasible, solution.Status)
	assert.False(t, solution.HasAssignment())
}

func TestCpSatSolverCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCpSatSolver().Solve(ctx, NewModel())

	assert.NotNil(t, err)
}
