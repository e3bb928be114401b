package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

// Коды ошибок PostgreSQL, которые мы переводим в доменные ошибки.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translatePgError переводит ошибки ограничений PostgreSQL в доменные
// ошибки. Прочие ошибки оборачиваются в технический sentinel.
func translatePgError(err error, technical error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicateValue, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrForeignKeyViolation, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%w: %v", technical, err)
}
