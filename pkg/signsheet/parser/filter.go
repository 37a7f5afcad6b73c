package parser

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/ukaji3/signsheet-go/pkg/signsheet/models"
)

// ErrNotBoolean indicates a filter expression that does not produce a bool.
var ErrNotBoolean = errors.New("filter did not evaluate to a bool")

// Filter is a compiled record predicate.
//
// The expression sees every column as a variable of the same name and the
// whole row as the map `record`, so columns with spaces are reachable as
// record["Member Status"].
type Filter struct {
	source  string
	program *vm.Program
}

// CompileFilter compiles source against the given header.
func CompileFilter(source string, columns []string) (*Filter, error) {
	program, err := expr.Compile(source, expr.Env(filterEnv(columns, nil)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", source, err)
	}
	return &Filter{source: source, program: program}, nil
}

// Match evaluates the filter for rec.
func (f *Filter) Match(columns []string, rec models.Record) (bool, error) {
	out, err := expr.Run(f.program, filterEnv(columns, rec.Fields))
	if err != nil {
		return false, fmt.Errorf("evaluate filter %q on line %d: %w", f.source, rec.Line, err)
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("%w: %q returned %T", ErrNotBoolean, f.source, out)
	}
	return ok, nil
}

// String returns the expression source.
func (f *Filter) String() string {
	return f.source
}

func filterEnv(columns []string, fields map[string]string) map[string]any {
	record := make(map[string]any, len(columns))
	env := make(map[string]any, len(columns)+1)
	for _, name := range columns {
		value := fields[name]
		record[name] = value
		env[name] = value
	}
	env["record"] = record
	return env
}
