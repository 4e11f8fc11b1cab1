package sat

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
)

type processSolver struct {
	name string
}

// NewProcessSolver returns a Solver that shells out to an external DIMACS
// solver following the usual competition conventions: the CNF file path plus
// a "-model" flag, exit code 10 for satisfiable, 20 for unsatisfiable, and on
// success a "v"-line model on standard output. The executable is resolved
// through the solver path config, falling back to the bare name on PATH.
func NewProcessSolver(name string) Solver {
	return &processSolver{name: name}
}

func (s *processSolver) Check(ctx context.Context, formula *Formula) Result {
	dimacs, vars := ExportDIMACS(formula)

	// Unique per-invocation file name keeps concurrent solves on disjoint
	// files; removal covers every exit path.
	file, err := os.CreateTemp("", "sts-*.cnf")
	if err != nil {
		return unknown(fmt.Errorf("cannot create temporary CNF file: %v", err))
	}
	defer os.Remove(file.Name())

	if _, err := file.WriteString(dimacs); err != nil {
		file.Close()
		return unknown(fmt.Errorf("cannot write CNF file: %v", err))
	}
	if err := file.Close(); err != nil {
		return unknown(fmt.Errorf("cannot close CNF file: %v", err))
	}

	cmd := exec.CommandContext(ctx, getExecutablePath(s.name), "-model", file.Name())
	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	runErr := cmd.Run()
	if ctx.Err() != nil {
		return unknown(ctx.Err())
	}
	if cmd.ProcessState == nil {
		return unknown(fmt.Errorf("cannot run %v: %v", s.name, runErr))
	}

	// Exit code 10 stands for satisfiable and 20 for unsatisfiable; anything
	// else is reported as Unknown, never as a crash.
	switch cmd.ProcessState.ExitCode() {
	case 10:
		assignment, err := ParseModel(stdOut.String(), vars)
		if err != nil {
			return unknown(fmt.Errorf("malformed model from %v: %v", s.name, err))
		}
		// Variables that never reached a clause are unconstrained; bind them
		// so the assignment stays total.
		for variable := 1; variable <= formula.NumVars(); variable++ {
			if _, ok := assignment[variable]; !ok {
				assignment[variable] = false
			}
		}
		return satisfiable(assignment)
	case 20:
		return unsatisfiable()
	default:
		return unknown(fmt.Errorf(
			"unexpected exit code %d from %v: %v",
			cmd.ProcessState.ExitCode(), s.name, stdErr.String(),
		))
	}
}
