package rxkit

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

type scriptState int

const (
	stateStatement      scriptState = iota // 0
	stateStatementBegin                    // 1
)

const scanBufSize = 4 * 1024 * 1024

var matchEmptyLines = regexp.MustCompile(`^\s*$`)

// ParseScript splits a SQL script into statements.
// A statement ends with a semicolon at the end of a line; statements that contain
// semicolons themselves (procedures, triggers) are wrapped in "-- +begin" and "-- +end".
func ParseScript(r io.Reader) ([]string, error) {
	var stmts []string
	var buf bytes.Buffer

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), scanBufSize)

	var state = stateStatement
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "--") {
			cmd := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "--")))

			switch cmd {
			case "+begin":
				if state != stateStatement {
					return nil, errors.New("'-- +begin' can not be nested")
				}

				if remaining := strings.TrimSpace(buf.String()); len(remaining) > 0 {
					return nil, errors.Errorf("unfinished statement before '-- +begin': %q", remaining)
				}

				state = stateStatementBegin

			case "+end":
				if state != stateStatementBegin {
					return nil, errors.New("'-- +end' must be defined after '-- +begin'")
				}

				if stmt := strings.TrimSpace(buf.String()); len(stmt) > 0 {
					stmts = append(stmts, stmt)
				}
				buf.Reset()
				state = stateStatement
			}

			// other comments are ignored
			continue
		}

		if matchEmptyLines.MatchString(line) {
			continue
		}

		buf.WriteString(line + "\n")

		if state == stateStatement && endsWithSemicolon(line) {
			stmts = append(stmts, strings.TrimSpace(buf.String()))
			buf.Reset()
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan script")
	}

	if state == stateStatementBegin {
		return nil, errors.New("failed to parse script: missing '-- +end' annotation")
	}

	if remaining := strings.TrimSpace(buf.String()); len(remaining) > 0 {
		return nil, errors.Errorf("failed to parse script: unexpected unfinished SQL query: %q: missing semicolon?", remaining)
	}

	return stmts, nil
}

// endsWithSemicolon checks the last word before any double-dash comment
func endsWithSemicolon(line string) bool {
	prev := ""
	for _, word := range strings.Fields(line) {
		if strings.HasPrefix(word, "--") {
			break
		}
		prev = word
	}

	return strings.HasSuffix(prev, ";")
}

// RunScript runs the statements in order, each on its own connection,
// and stops at the first failure.
func RunScript(ctx context.Context, provider ConnProvider, stmts []string) ([]*RowsQuery, error) {
	var results []*RowsQuery
	for _, stmt := range stmts {
		conn, err := provider.Conn(ctx)
		if err != nil {
			return results, err
		}

		q := &RowsQuery{SQL: stmt}
		if err := Run(ctx, conn, q); err != nil {
			return results, err
		}

		results = append(results, q)
	}

	return results, nil
}
