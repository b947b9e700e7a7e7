package scraper

import (
	"errors"
	"fmt"
)

// Stage - этап прогона, на котором произошла фатальная ошибка.
type Stage int

const (
	StageLaunch Stage = iota
	StageLogin
	StageNavigate
	StageExtract
	StagePersist
)

func (s Stage) String() string {
	switch s {
	case StageLaunch:
		return "launch"
	case StageLogin:
		return "login"
	case StageNavigate:
		return "navigate"
	case StageExtract:
		return "extract"
	case StagePersist:
		return "persist"
	default:
		return "unknown"
	}
}

var ErrLoginFailed = errors.New("вход не выполнен: маркер Dashboard не появился")

// RunError - фатальная ошибка прогона; точка входа решает, как ее показать
// и с каким кодом завершиться.
type RunError struct {
	Stage Stage
	Err   error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// WrapStage оборачивает err в *RunError; nil остается nil.
func WrapStage(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &RunError{Stage: stage, Err: err}
}

// StageOf возвращает этап из цепочки ошибок.
func StageOf(err error) (Stage, bool) {
	var re *RunError
	if errors.As(err, &re) {
		return re.Stage, true
	}
	return 0, false
}
