// SPDX-License-Identifier: Apache-2.0

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/mvidales/go-purchase-graph/models"
)

// Names of the unique constraints on the users table. Used to translate a
// 23505 unique_violation into the field-specific sentinel error.
const (
	emailUniqueConstraint    = "users_email_key"
	userNameUniqueConstraint = "users_user_name_key"
)

const (
	createUser = `INSERT INTO users (name, last_name, user_name, email, password_hash)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, name, last_name, user_name, email, password_hash;`

	findUserByEmail = `SELECT id, name, last_name, user_name, email, password_hash
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, name, last_name, user_name, email, password_hash
    FROM users
    WHERE id = $1;`

	getAllUsers = `SELECT id, name, last_name, user_name, email, password_hash
    FROM users
    ORDER BY id;`

	createPurchase = `INSERT INTO purchases (name, tags, is_done, user_id)
    VALUES ($1, $2, $3, $4)
    RETURNING id, name, tags, is_done, created, updated, user_id;`

	findPurchaseByID = `SELECT id, name, tags, is_done, created, updated, user_id
    FROM purchases
    WHERE id = $1;`

	// The row lock serializes concurrent read-check-write sequences on the
	// same purchase: a second mutation blocks here until the first commits.
	findPurchaseByIDForUpdate = `SELECT id, name, tags, is_done, created, updated, user_id
    FROM purchases
    WHERE id = $1
    FOR UPDATE;`

	getAllPurchases = `SELECT id, name, tags, is_done, created, updated, user_id
    FROM purchases
    ORDER BY id;`

	deletePurchase = `DELETE FROM purchases
    WHERE id = $1;`
)

// buildUpdatePurchaseQuery builds the partial UPDATE statement for a purchase
// mutation. Only non-nil fields of update produce SET clauses; the updated
// column always advances.
//
// clock_timestamp() rather than NOW(): the statement runs after the row lock
// is acquired, so a transaction that waited on a concurrent writer still
// records a timestamp later than the committed one.
func buildUpdatePurchaseQuery(update models.PurchaseUpdate) (string, []any, error) {
	builder := sq.Update("purchases").
		Set("updated", sq.Expr("clock_timestamp()")).
		Where(sq.Eq{"id": update.PurchaseID}).
		Suffix("RETURNING id, name, tags, is_done, created, updated, user_id").
		PlaceholderFormat(sq.Dollar)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Tags != nil {
		builder = builder.Set("tags", pq.StringArray(update.Tags))
	}
	if update.IsDone != nil {
		builder = builder.Set("is_done", *update.IsDone)
	}
	if update.UserID != nil {
		builder = builder.Set("user_id", *update.UserID)
	}

	return builder.ToSql()
}
