package rxkit

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// StatementRunner is implemented once per query. Run drives it.
type StatementRunner interface {
	// Prepare builds the parameterized statement on conn.
	Prepare(ctx context.Context, conn Conn) (Stmt, error)

	// ParseResults consumes the result cursor into state owned by the runner's caller.
	ParseResults(rows Rows) error

	// Describe returns a non-empty label used in failure logs.
	Describe() string
}

// Run executes a single query on conn and releases the result cursor, the statement
// and the connection, in that order, before it returns. Release failures are logged
// and never returned. A failure of prepare, execute or parse is returned as
// *QueryExecutionError once cleanup is done.
//
// Run takes ownership of conn; the caller must not use it afterwards.
func Run(ctx context.Context, conn Conn, runner StatementRunner) (err error) {
	label := runner.Describe()
	p := startProfile(label)

	var stmt Stmt
	var rows Rows

	defer func() {
		if rows != nil {
			if err2 := rows.Close(); err2 != nil {
				log.WithError(err2).Errorf("unable to close result cursor of query %q", label)
			}
		}

		if stmt != nil {
			if err2 := stmt.Close(); err2 != nil {
				log.WithError(err2).Errorf("unable to close statement of query %q", label)
			}
		}

		if conn != nil {
			if err2 := conn.Close(); err2 != nil {
				log.WithError(err2).Errorf("unable to close connection of query %q", label)
			}
		}

		p.Stop()
		log.Debugf("query done, duration: %s", p.String())

		if err != nil {
			log.WithError(err).Errorf("query %q failed", label)
		}
	}()

	// a statement returned along with an error is still closed
	stmt, err = runner.Prepare(ctx, conn)
	if err != nil {
		var prepErr *StatementPreparationError
		if !errors.As(err, &prepErr) {
			err = &StatementPreparationError{Err: err}
		}

		return &QueryExecutionError{Label: label, Stage: StagePrepare, Err: err}
	}

	if stmt == nil {
		return &QueryExecutionError{
			Label: label,
			Stage: StagePrepare,
			Err:   &StatementPreparationError{Err: errors.New("runner returned no statement")},
		}
	}

	rows, err = stmt.QueryContext(ctx)
	if err != nil {
		rows = nil
		return &QueryExecutionError{Label: label, Stage: StageExecute, Err: err}
	}

	if err = parseResults(runner, rows); err != nil {
		return &QueryExecutionError{Label: label, Stage: StageParse, Err: err}
	}

	return nil
}

func parseResults(runner StatementRunner, rows Rows) error {
	err := runner.ParseResults(rows)
	if err == nil {
		err = rows.Err()
	}

	if err == nil {
		return nil
	}

	var parseErr *ResultParsingError
	if errors.As(err, &parseErr) {
		return err
	}

	return &ResultParsingError{Err: err}
}
