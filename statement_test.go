package rxkit

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

type closeRecorder struct {
	closed []string
}

type fakeConn struct {
	rec        *closeRecorder
	stmt       *fakeStmt
	prepareErr error
	closeErr   error

	query string
	args  []any
}

func (c *fakeConn) PrepareContext(ctx context.Context, query string, args ...any) (Stmt, error) {
	c.query, c.args = query, args
	if c.prepareErr != nil {
		return nil, c.prepareErr
	}

	return c.stmt, nil
}

func (c *fakeConn) Close() error {
	c.rec.closed = append(c.rec.closed, "conn")
	return c.closeErr
}

type fakeStmt struct {
	rec      *closeRecorder
	rows     *fakeRows
	queryErr error
	closeErr error
}

func (s *fakeStmt) QueryContext(ctx context.Context) (Rows, error) {
	if s.queryErr != nil {
		return nil, s.queryErr
	}

	return s.rows, nil
}

func (s *fakeStmt) Close() error {
	s.rec.closed = append(s.rec.closed, "stmt")
	return s.closeErr
}

type fakeRows struct {
	rec      *closeRecorder
	columns  []string
	data     [][]any
	pos      int
	err      error
	closeErr error
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}

	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	if len(dest) != len(row) {
		return errors.Errorf("expected %d destinations, got %d", len(row), len(dest))
	}

	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			s, ok := row[i].(string)
			if !ok {
				return errors.Errorf("column %d is not a string", i)
			}
			*p = s
		case *any:
			*p = row[i]
		default:
			return errors.Errorf("unsupported destination %T", d)
		}
	}

	return nil
}

func (r *fakeRows) Columns() ([]string, error) { return r.columns, nil }
func (r *fakeRows) Err() error                 { return r.err }

func (r *fakeRows) Close() error {
	r.rec.closed = append(r.rec.closed, "rows")
	return r.closeErr
}

func newFakeConn(data ...[]any) *fakeConn {
	rec := &closeRecorder{}
	return &fakeConn{
		rec: rec,
		stmt: &fakeStmt{
			rec:  rec,
			rows: &fakeRows{rec: rec, columns: []string{"name"}, data: data},
		},
	}
}

type fakeRunner struct {
	prepareErr error
	parseErr   error

	prepared bool
	parsed   bool
	names    []string
}

func (r *fakeRunner) Prepare(ctx context.Context, conn Conn) (Stmt, error) {
	r.prepared = true
	if r.prepareErr != nil {
		return nil, r.prepareErr
	}

	return conn.PrepareContext(ctx, "SELECT name FROM items WHERE id = ?", 7)
}

func (r *fakeRunner) ParseResults(rows Rows) error {
	r.parsed = true
	if r.parseErr != nil {
		return r.parseErr
	}

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		r.names = append(r.names, name)
	}

	return nil
}

func (r *fakeRunner) Describe() string {
	return "items by id"
}

func TestRun_Success(t *testing.T) {
	conn := newFakeConn([]any{"a"}, []any{"b"})
	runner := &fakeRunner{}

	err := Run(context.Background(), conn, runner)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, runner.names)
	assert.Equal(t, "SELECT name FROM items WHERE id = ?", conn.query)
	assert.Equal(t, []any{7}, conn.args)
	assert.Equal(t, []string{"rows", "stmt", "conn"}, conn.rec.closed)
}

func TestRun_PrepareFailure(t *testing.T) {
	cause := errors.New("syntax error")
	conn := newFakeConn()
	runner := &fakeRunner{prepareErr: cause}

	err := Run(context.Background(), conn, runner)

	var execErr *QueryExecutionError
	if assert.ErrorAs(t, err, &execErr) {
		assert.Equal(t, StagePrepare, execErr.Stage)
		assert.Equal(t, "items by id", execErr.Label)
	}

	var prepErr *StatementPreparationError
	assert.ErrorAs(t, err, &prepErr)
	assert.ErrorIs(t, err, cause)

	assert.False(t, runner.parsed)
	assert.Equal(t, []string{"conn"}, conn.rec.closed)
}

func TestRun_PrepareFailureKeepsPreparationError(t *testing.T) {
	conn := newFakeConn()
	prepErr := &StatementPreparationError{Err: errors.New("bad parameter")}
	runner := &fakeRunner{prepareErr: prepErr}

	err := Run(context.Background(), conn, runner)

	var execErr *QueryExecutionError
	if assert.ErrorAs(t, err, &execErr) {
		assert.Same(t, prepErr, execErr.Err)
	}
}

func TestRun_ExecuteFailure(t *testing.T) {
	cause := errors.New("connection reset")
	conn := newFakeConn()
	conn.stmt.queryErr = cause
	runner := &fakeRunner{}

	err := Run(context.Background(), conn, runner)

	var execErr *QueryExecutionError
	if assert.ErrorAs(t, err, &execErr) {
		assert.Equal(t, StageExecute, execErr.Stage)
	}
	assert.ErrorIs(t, err, cause)

	assert.False(t, runner.parsed)
	assert.Equal(t, []string{"stmt", "conn"}, conn.rec.closed)
}

func TestRun_ParseFailure(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	cause := errors.New("malformed row")
	conn := newFakeConn([]any{"a"})
	runner := &fakeRunner{parseErr: cause}

	err := Run(context.Background(), conn, runner)

	var execErr *QueryExecutionError
	if assert.ErrorAs(t, err, &execErr) {
		assert.Equal(t, StageParse, execErr.Stage)
	}

	var parseErr *ResultParsingError
	assert.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, []string{"rows", "stmt", "conn"}, conn.rec.closed)

	// the failure is reported once
	var failures int
	for _, entry := range hook.AllEntries() {
		if entry.Level == log.ErrorLevel && entry.Message == `query "items by id" failed` {
			failures++
		}
	}
	assert.Equal(t, 1, failures)
}

func TestRun_CursorError(t *testing.T) {
	cause := errors.New("network error while iterating")
	conn := newFakeConn([]any{"a"})
	conn.stmt.rows.err = cause
	runner := &fakeRunner{}

	err := Run(context.Background(), conn, runner)

	var parseErr *ResultParsingError
	assert.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, []string{"rows", "stmt", "conn"}, conn.rec.closed)
}

func TestRun_ReleaseFailuresAreLogged(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	conn := newFakeConn([]any{"a"})
	conn.closeErr = errors.New("conn close")
	conn.stmt.closeErr = errors.New("stmt close")
	conn.stmt.rows.closeErr = errors.New("rows close")
	runner := &fakeRunner{}

	err := Run(context.Background(), conn, runner)
	assert.NoError(t, err)
	assert.Equal(t, []string{"rows", "stmt", "conn"}, conn.rec.closed)

	var logged []error
	for _, entry := range hook.AllEntries() {
		if entry.Level != log.ErrorLevel {
			continue
		}

		if e, ok := entry.Data[log.ErrorKey].(error); ok {
			logged = append(logged, e)
		}
	}

	if assert.Len(t, logged, 3) {
		assert.EqualError(t, logged[0], "rows close")
		assert.EqualError(t, logged[1], "stmt close")
		assert.EqualError(t, logged[2], "conn close")
	}
}

type nilStmtRunner struct{ fakeRunner }

func (r *nilStmtRunner) Prepare(ctx context.Context, conn Conn) (Stmt, error) {
	return nil, nil
}

func TestRun_NilStatement(t *testing.T) {
	conn := newFakeConn()
	runner := &nilStmtRunner{}

	err := Run(context.Background(), conn, runner)

	var prepErr *StatementPreparationError
	assert.ErrorAs(t, err, &prepErr)
	assert.False(t, runner.parsed)
	assert.Equal(t, []string{"conn"}, conn.rec.closed)
}

type partialStmtRunner struct{ fakeRunner }

func (r *partialStmtRunner) Prepare(ctx context.Context, conn Conn) (Stmt, error) {
	stmt, err := conn.PrepareContext(ctx, "SELECT name FROM items WHERE id = ?", 7)
	if err != nil {
		return nil, err
	}

	return stmt, errors.New("parameter 1 out of range")
}

func TestRun_PrepareFailureClosesReturnedStatement(t *testing.T) {
	conn := newFakeConn([]any{"a"})
	runner := &partialStmtRunner{}

	err := Run(context.Background(), conn, runner)

	var execErr *QueryExecutionError
	if assert.ErrorAs(t, err, &execErr) {
		assert.Equal(t, StagePrepare, execErr.Stage)
	}
	assert.False(t, runner.parsed)
	assert.Equal(t, []string{"stmt", "conn"}, conn.rec.closed)
}
