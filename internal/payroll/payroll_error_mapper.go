package payroll

import (
	"errors"
	"strings"

	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUndefinedTable = "42P01"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
		return payrollerrors.ErrSchemaNotInitialized
	}

	// sqlite dan mysql hanya mengembalikan pesan teks
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "no such table") ||
		(strings.Contains(errMsg, "table") && strings.Contains(errMsg, "doesn't exist")) {
		return payrollerrors.ErrSchemaNotInitialized
	}

	return err
}
