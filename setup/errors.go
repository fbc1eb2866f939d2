package setup

import "errors"

// ErrInfeasible means the attempt budget ran out without a single
// feasible candidate. That is a constraint design problem on the
// caller's side, not an engine defect.
var ErrInfeasible = errors.New("infeasible configuration: no feasible setup within attempt budget")

type InvalidArgumentError string

func (e InvalidArgumentError) Error() string { return "invalid argument: " + string(e) }

func ErrInvalidArgument(msg string) error { return InvalidArgumentError(msg) }

type InvalidStateError string

func (e InvalidStateError) Error() string { return "invalid state: " + string(e) }

func ErrInvalidState(msg string) error { return InvalidStateError(msg) }
