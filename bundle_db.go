package rxkit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// DBBundleStore reads bundles from a database table, one row per entry
type DBBundleStore struct {
	db        *DB
	tableName string
}

func NewDBBundleStore(db *DB, tableName string) *DBBundleStore {
	if len(tableName) == 0 {
		tableName = DefaultBundleTable
	}

	return &DBBundleStore{db: db, tableName: tableName}
}

// Touch creates the bundle table if it does not exist
func (s *DBBundleStore) Touch(ctx context.Context) error {
	return execAndCheckErr(s.db, ctx, s.db.dialect.createBundleTableSQL(s.tableName))
}

// LookupBundle resolves the bundle from its stored rows.
// A bundle exists only through its entries: one stored without entries is
// missing and the next, less specific locale is tried. FSBundleStore differs
// here since an empty bundle file still matches.
func (s *DBBundleStore) LookupBundle(ctx context.Context, name string, locale language.Tag) (*Bundle, error) {
	for _, suffix := range localeSuffixes(locale) {
		q := &bundleEntriesQuery{table: s.tableName, bundle: name, locale: suffix}
		if err := s.db.Run(ctx, q); err != nil {
			return nil, err
		}

		if len(q.entries) > 0 {
			return &Bundle{Name: name, Locale: suffix, Entries: q.entries}, nil
		}
	}

	return nil, &ResourceMissingError{Bundle: name, Locale: locale}
}

// PutBundle replaces the stored entries of the bundle's name and locale
func (s *DBBundleStore) PutBundle(ctx context.Context, bundle *Bundle) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "unable to begin transaction")
	}

	deleteSQL := s.db.rebind(fmt.Sprintf("DELETE FROM %s WHERE bundle = ? AND locale = ?", s.tableName))
	if err := execAndCheckErr(tx, ctx, deleteSQL, bundle.Name, bundle.Locale); err != nil {
		return rollbackAndLogErr(err, tx, "unable to delete bundle %s[%s]", bundle.Name, bundle.Locale)
	}

	insertSQL := s.db.rebind(fmt.Sprintf(
		"INSERT INTO %s (bundle, locale, position, entry_key, entry_value) VALUES (?, ?, ?, ?, ?)", s.tableName))
	for i, entry := range bundle.Entries {
		if err := execAndCheckErr(tx, ctx, insertSQL, bundle.Name, bundle.Locale, i, entry.Key, entry.Value); err != nil {
			return rollbackAndLogErr(err, tx, "unable to insert bundle entry %q", entry.Key)
		}
	}

	return tx.Commit()
}

func rollbackAndLogErr(originErr error, txn *sql.Tx, msg string, args ...any) error {
	if err := txn.Rollback(); err != nil {
		log.WithError(err).Errorf("unable to rollback transaction")
	}

	return errors.Wrapf(originErr, msg, args...)
}

func execAndCheckErr(db SQLExecutor, ctx context.Context, sql string, args ...any) error {
	_, err := db.ExecContext(ctx, sql, args...)
	if err != nil {
		log.WithError(err).Errorf("unable to execute SQL: %s", previewSQL(sql))
		return err
	}

	return nil
}
