// Package pgxtest provides in-memory stand-ins for the pgx row interfaces and
// for infra.SQLExecutor so repositories and handlers can be tested without a
// database.
package pgxtest

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Row is a pgx.Row backed by a scan function. A nil function yields pgx.ErrNoRows.
type Row struct {
	scan func(dest ...any) error
}

func NewRow(scan func(dest ...any) error) Row {
	return Row{scan: scan}
}

// ValuesRow scans the given values into the destinations in order.
func ValuesRow(values ...any) Row {
	return Row{scan: func(dest ...any) error { return Assign(dest, values...) }}
}

// ErrRow fails every scan with err.
func ErrRow(err error) Row {
	return Row{scan: func(...any) error { return err }}
}

func (r Row) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

// Rows iterates over fixed value tuples. Err, when set, is reported after
// iteration finishes.
type Rows struct {
	Data   [][]any
	Failed error

	idx    int
	closed bool
}

func NewRows(data ...[]any) *Rows {
	return &Rows{Data: data}
}

func (r *Rows) Close() { r.closed = true }

func (r *Rows) Closed() bool { return r.closed }

func (r *Rows) Err() error { return r.Failed }

func (r *Rows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (r *Rows) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (r *Rows) Next() bool {
	if r.closed || r.idx >= len(r.Data) {
		r.closed = true
		return false
	}
	r.idx++
	return true
}

func (r *Rows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.Data) {
		return fmt.Errorf("pgxtest: scan called without a current row")
	}
	return Assign(dest, r.Data[r.idx-1]...)
}

func (r *Rows) Values() ([]any, error) {
	if r.idx == 0 || r.idx > len(r.Data) {
		return nil, fmt.Errorf("pgxtest: no current row")
	}
	return r.Data[r.idx-1], nil
}

func (r *Rows) RawValues() [][]byte { return nil }

func (r *Rows) Conn() *pgx.Conn { return nil }

// Assign copies values into pointer destinations. A nil value zeroes the
// destination, which is how NULL lands in pointer-typed fields.
func Assign(dest []any, values ...any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("pgxtest: %d destinations for %d values", len(dest), len(values))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d)
		if target.Kind() != reflect.Pointer || target.IsNil() {
			return fmt.Errorf("pgxtest: destination %d is not a pointer", i)
		}
		elem := target.Elem()
		if values[i] == nil {
			elem.Set(reflect.Zero(elem.Type()))
			continue
		}
		v := reflect.ValueOf(values[i])
		switch {
		case v.Type().AssignableTo(elem.Type()):
			elem.Set(v)
		case elem.Kind() == reflect.Pointer && v.Type().AssignableTo(elem.Type().Elem()):
			p := reflect.New(elem.Type().Elem())
			p.Elem().Set(v)
			elem.Set(p)
		default:
			return fmt.Errorf("pgxtest: cannot assign %s to %s at %d", v.Type(), elem.Type(), i)
		}
	}
	return nil
}

// Call records one statement sent to an Executor.
type Call struct {
	Query string
	Args  []any
}

// Executor is a scriptable infra.SQLExecutor. Each hook receives the raw query
// constant so tests can switch on the sqlinline name.
type Executor struct {
	ExecFn     func(query string, args []any) (pgconn.CommandTag, error)
	QueryFn    func(query string, args []any) (pgx.Rows, error)
	QueryRowFn func(query string, args []any) pgx.Row

	mu    sync.Mutex
	calls []Call
}

func (e *Executor) record(query string, args []any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, Call{Query: query, Args: args})
}

// Calls returns every statement seen so far.
func (e *Executor) Calls() []Call {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Call(nil), e.calls...)
}

func (e *Executor) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	e.record(query, args)
	if e.ExecFn == nil {
		return pgconn.NewCommandTag("OK 0"), nil
	}
	return e.ExecFn(query, args)
}

func (e *Executor) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	e.record(query, args)
	if e.QueryFn == nil {
		return NewRows(), nil
	}
	return e.QueryFn(query, args)
}

func (e *Executor) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	e.record(query, args)
	if e.QueryRowFn == nil {
		return Row{}
	}
	return e.QueryRowFn(query, args)
}
