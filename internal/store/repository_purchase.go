package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/mvidales/go-purchase-graph/internal/logger"
	"github.com/mvidales/go-purchase-graph/models"
)

// purchaseRepository is the PostgreSQL-backed implementation of
// [PurchaseRepository]. It executes all purchase CRUD operations against the
// "purchases" table using the embedded [*DB] connection.
//
// The mutation methods (update, delete) wrap their read-check-write sequence
// in a transaction with a SELECT ... FOR UPDATE on the target row, so that
// two concurrent mutations of the same purchase serialize instead of
// interleaving into a lost update.
type purchaseRepository struct {
	*DB
	logger *logger.Logger
}

// NewPurchaseRepository constructs a [PurchaseRepository] backed by the
// provided database connection and logger.
func NewPurchaseRepository(db *DB, logger *logger.Logger) PurchaseRepository {
	logger.Debug().Msg("creating purchase repository")
	return &purchaseRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePurchase persists a new purchase and returns the canonical database
// representation: server-assigned id, created set by the column default,
// updated NULL.
//
// Error handling:
//   - foreign_key_violation on user_id → [ErrNoUserWasFound]: the explicit
//     owner the caller named does not exist.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (p *purchaseRepository) CreatePurchase(ctx context.Context, purchase models.Purchase) (models.Purchase, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, createPurchase,
		purchase.Name, purchase.Tags, purchase.IsDone, purchase.UserID)

	created, err := scanPurchaseRow(row)
	if err != nil {
		log.Err(err).Str("func", "*purchaseRepository.CreatePurchase").Str("name", purchase.Name).Msg("purchase creation failed")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Purchase{}, ErrNoUserWasFound
		}

		return models.Purchase{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindPurchaseByID retrieves the purchase with the given id, or
// [ErrPurchaseNotFound] when no such row exists.
func (p *purchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID int64) (models.Purchase, error) {
	log := logger.FromContext(ctx)

	found, err := scanPurchaseRow(p.DB.QueryRowContext(ctx, findPurchaseByID, purchaseID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Purchase{}, ErrPurchaseNotFound
		}

		log.Err(err).Str("func", "*purchaseRepository.FindPurchaseByID").Int64("purchase_id", purchaseID).Msg("purchase search by id failed")
		return models.Purchase{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// GetAllPurchases retrieves every purchase ordered by id.
//
// Returns an empty slice when the table is empty.
func (p *purchaseRepository) GetAllPurchases(ctx context.Context) ([]models.Purchase, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, getAllPurchases)
	if err != nil {
		log.Err(err).Str("func", "*purchaseRepository.GetAllPurchases").Msg("failed to execute query for getting all purchases")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	purchases := make([]models.Purchase, 0, 50)

	for rows.Next() {
		var item models.Purchase

		scanErr := rows.Scan(
			&item.PurchaseID,
			&item.Name,
			&item.Tags,
			&item.IsDone,
			&item.Created,
			&item.Updated,
			&item.UserID,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*purchaseRepository.GetAllPurchases").Msg("failed to scan purchase row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		purchases = append(purchases, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*purchaseRepository.GetAllPurchases").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return purchases, nil
}

// UpdatePurchase applies a partial mutation to a purchase as one atomic unit
// of work.
//
// Inside a single transaction it:
//  1. locks the target row with SELECT ... FOR UPDATE
//     ([ErrPurchaseNotFound] when the row is absent);
//  2. verifies the requester owns the purchase under that lock
//     ([ErrNotPurchaseOwner] otherwise — fail closed);
//  3. applies the non-nil fields of update and advances the updated column.
//
// A change of user_id to a user that does not exist surfaces as
// [ErrNoUserWasFound] via the foreign-key constraint.
func (p *purchaseRepository) UpdatePurchase(ctx context.Context, update models.PurchaseUpdate, requesterID int64) (models.Purchase, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePurchaseQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*purchaseRepository.UpdatePurchase").Int64("purchase_id", update.PurchaseID).Msg("failed to build update query")
		return models.Purchase{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*purchaseRepository.UpdatePurchase").Msg("failed to begin transaction")
		return models.Purchase{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := lockAndCheckOwner(ctx, tx, update.PurchaseID, requesterID); err != nil {
		return models.Purchase{}, err
	}

	updated, err := scanPurchaseRow(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*purchaseRepository.UpdatePurchase").Int64("purchase_id", update.PurchaseID).Msg("purchase update failed")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Purchase{}, ErrNoUserWasFound
		}

		return models.Purchase{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*purchaseRepository.UpdatePurchase").Msg("failed to commit transaction")
		return models.Purchase{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return updated, nil
}

// DeletePurchase removes a purchase as one atomic unit of work, with the same
// lock-then-check sequence as [purchaseRepository.UpdatePurchase].
func (p *purchaseRepository) DeletePurchase(ctx context.Context, purchaseID int64, requesterID int64) error {
	log := logger.FromContext(ctx)

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*purchaseRepository.DeletePurchase").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := lockAndCheckOwner(ctx, tx, purchaseID, requesterID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, deletePurchase, purchaseID); err != nil {
		log.Err(err).Str("func", "*purchaseRepository.DeletePurchase").Int64("purchase_id", purchaseID).Msg("purchase deletion failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*purchaseRepository.DeletePurchase").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// lockAndCheckOwner locks the purchase row for the duration of tx and checks
// that requesterID owns it. Returns ErrPurchaseNotFound for an absent row,
// ErrNotPurchaseOwner when the owner differs or the purchase is unowned.
func lockAndCheckOwner(ctx context.Context, tx *sql.Tx, purchaseID, requesterID int64) error {
	current, err := scanPurchaseRow(tx.QueryRowContext(ctx, findPurchaseByIDForUpdate, purchaseID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPurchaseNotFound
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if !current.OwnedBy(requesterID) {
		return ErrNotPurchaseOwner
	}

	return nil
}

// scanPurchaseRow reads one purchase row in the canonical column order.
func scanPurchaseRow(row *sql.Row) (models.Purchase, error) {
	var item models.Purchase

	err := row.Scan(
		&item.PurchaseID,
		&item.Name,
		&item.Tags,
		&item.IsDone,
		&item.Created,
		&item.Updated,
		&item.UserID,
	)
	if err != nil {
		return models.Purchase{}, err
	}

	return item, nil
}
