package services

import (
	"gorm.io/gorm"

	"github.com/acmecollege/registrar/internal/pkg/dbctx"
)

// inTransaction runs fn in a unit of work. A transaction already carried by
// dbc is joined through a savepoint, so a failure rolls back only fn's writes.
func inTransaction(db *gorm.DB, dbc dbctx.Context, fn func(inner dbctx.Context) error) error {
	return dbc.Conn(db).Transaction(func(tx *gorm.DB) error {
		return fn(dbc.WithTx(tx))
	})
}
