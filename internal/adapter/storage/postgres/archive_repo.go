package postgres

import (
	"context"
	"fmt"

	"voltx-wallet-engine/internal/core/domain"
)

// ArchiveRepo implements ports.ArchiveRepository. The archive is append-only
// long-term storage for settled activity; the hot path never reads from it.
type ArchiveRepo struct {
	pool Pool
}

// NewArchiveRepo creates a new ArchiveRepo.
func NewArchiveRepo(pool Pool) *ArchiveRepo {
	return &ArchiveRepo{pool: pool}
}

// EnsureSchema creates the archive tables if they do not exist.
func (r *ArchiveRepo) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS transfer_archive (
			id UUID PRIMARY KEY,
			kind TEXT NOT NULL,
			from_address TEXT NOT NULL,
			to_address TEXT NOT NULL,
			amount NUMERIC(20,8) NOT NULL,
			fee NUMERIC(20,8) NOT NULL,
			status TEXT NOT NULL,
			tx_hash TEXT,
			created_at TIMESTAMPTZ NOT NULL,
			confirmed_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS conversion_archive (
			id UUID PRIMARY KEY,
			from_amount NUMERIC(20,8) NOT NULL,
			to_amount NUMERIC(20,8) NOT NULL,
			to_currency TEXT NOT NULL,
			status TEXT NOT NULL,
			settlement_id TEXT,
			country_id TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			completed_at TIMESTAMPTZ
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure archive schema: %w", err)
		}
	}
	return nil
}

// ArchiveTransfer stores a terminal transfer. Re-archiving is a no-op.
func (r *ArchiveRepo) ArchiveTransfer(ctx context.Context, transfer *domain.Transfer) error {
	query := `INSERT INTO transfer_archive
		(id, kind, from_address, to_address, amount, fee, status, tx_hash, created_at, confirmed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query,
		transfer.ID, string(transfer.Kind), transfer.FromAddress, transfer.ToAddress,
		transfer.Amount.String(), transfer.Fee.String(), string(transfer.Status),
		transfer.TxHash, transfer.CreatedAt, transfer.ConfirmedAt,
	)
	if err != nil {
		return fmt.Errorf("archive transfer: %w", err)
	}
	return nil
}

// ArchiveConversion stores a terminal conversion order. Re-archiving is a no-op.
func (r *ArchiveRepo) ArchiveConversion(ctx context.Context, order *domain.ConversionOrder) error {
	query := `INSERT INTO conversion_archive
		(id, from_amount, to_amount, to_currency, status, settlement_id, country_id, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query,
		order.ID, order.FromAmount.String(), order.ToAmount.String(), order.ToCurrency,
		string(order.Status), order.SettlementID, order.CountryID,
		order.CreatedAt, order.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("archive conversion: %w", err)
	}
	return nil
}

// CountArchived returns the number of archived transfers and conversions.
func (r *ArchiveRepo) CountArchived(ctx context.Context) (int64, int64, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM transfer_archive),
		(SELECT COUNT(*) FROM conversion_archive)`

	var transfers, conversions int64
	if err := r.pool.QueryRow(ctx, query).Scan(&transfers, &conversions); err != nil {
		return 0, 0, fmt.Errorf("count archived: %w", err)
	}
	return transfers, conversions, nil
}
