package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/praxisbooks/asset_depreciation_app/internal/apperrors"
	"github.com/praxisbooks/asset_depreciation_app/internal/core/domain"
	portsrepo "github.com/praxisbooks/asset_depreciation_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// PgxAssetRepository persists assets through a pgx connection pool.
type PgxAssetRepository struct {
	pool *pgxpool.Pool
}

// NewAssetRepository creates a new repository for asset data.
func NewAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{pool: pool}
}

// Ensure PgxAssetRepository implements the facade.
var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

const assetColumns = `asset_id, name, description, category, supplier, supplier_invoice_ref, notes, receipt_path,
	purchase_date, in_service_date, purchase_value, vat_amount, residual_value, business_use_percent,
	depreciation_years, is_active, disposal_date, disposal_value, expense_id,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveAsset inserts a new asset row.
func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);
	`

	_, err := r.pool.Exec(ctx, query,
		asset.AssetID,
		asset.Name,
		asset.Description,
		asset.Category,
		asset.Supplier,
		asset.SupplierInvoiceRef,
		asset.Notes,
		asset.ReceiptPath,
		asset.PurchaseDate,
		asset.InServiceDate,
		asset.PurchaseValue,
		asset.VATAmount,
		asset.ResidualValue,
		asset.BusinessUsePercent,
		asset.DepreciationYears,
		asset.IsActive,
		asset.DisposalDate,
		asset.DisposalValue,
		asset.ExpenseID,
		asset.CreatedAt,
		asset.CreatedBy,
		asset.LastUpdatedAt,
		asset.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: asset with ID %s already exists", apperrors.ErrDuplicate, asset.AssetID)
		}
		return fmt.Errorf("failed to save asset %s: %w", asset.AssetID, err)
	}
	return nil
}

// FindAssetByID retrieves an asset by its ID.
func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE asset_id = $1;`

	row := r.pool.QueryRow(ctx, query, assetID)
	asset, err := scanAsset(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset by ID %s: %w", assetID, err)
	}
	return asset, nil
}

// ListAssets retrieves assets matching the filter, newest purchases first.
func (r *PgxAssetRepository) ListAssets(ctx context.Context, filter portsrepo.AssetFilter) ([]domain.Asset, error) {
	var conditions []string
	var args []any

	if filter.Category != nil {
		args = append(args, *filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if filter.PurchaseYear != nil {
		args = append(args, *filter.PurchaseYear)
		conditions = append(conditions, fmt.Sprintf("date_part('year', purchase_date) = $%d", len(args)))
	}

	query := `SELECT ` + assetColumns + ` FROM assets`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY purchase_date DESC, asset_id LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d;", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []domain.Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		assets = append(assets, *asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset rows: %w", err)
	}
	return assets, nil
}

// UpdateAsset updates an existing asset row.
func (r *PgxAssetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	query := `
		UPDATE assets SET
			name = $2, description = $3, category = $4, supplier = $5, supplier_invoice_ref = $6,
			notes = $7, receipt_path = $8, purchase_date = $9, in_service_date = $10,
			purchase_value = $11, vat_amount = $12, residual_value = $13, business_use_percent = $14,
			depreciation_years = $15, is_active = $16, disposal_date = $17, disposal_value = $18,
			expense_id = $19, last_updated_at = $20, last_updated_by = $21
		WHERE asset_id = $1;
	`

	tag, err := r.pool.Exec(ctx, query,
		asset.AssetID,
		asset.Name,
		asset.Description,
		asset.Category,
		asset.Supplier,
		asset.SupplierInvoiceRef,
		asset.Notes,
		asset.ReceiptPath,
		asset.PurchaseDate,
		asset.InServiceDate,
		asset.PurchaseValue,
		asset.VATAmount,
		asset.ResidualValue,
		asset.BusinessUsePercent,
		asset.DepreciationYears,
		asset.IsActive,
		asset.DisposalDate,
		asset.DisposalValue,
		asset.ExpenseID,
		asset.LastUpdatedAt,
		asset.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset %s: %w", asset.AssetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAsset removes an asset row. The referenced expense is external and
// is never cascaded.
func (r *PgxAssetRepository) DeleteAsset(ctx context.Context, assetID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM assets WHERE asset_id = $1;`, assetID)
	if err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", assetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// scanAsset reads one asset row, mapping nullable columns onto pointers.
func scanAsset(row pgx.Row) (*domain.Asset, error) {
	var (
		asset         domain.Asset
		inService     sql.NullTime
		disposalDate  sql.NullTime
		disposalValue decimal.NullDecimal
		expenseID     sql.NullString
	)

	err := row.Scan(
		&asset.AssetID,
		&asset.Name,
		&asset.Description,
		&asset.Category,
		&asset.Supplier,
		&asset.SupplierInvoiceRef,
		&asset.Notes,
		&asset.ReceiptPath,
		&asset.PurchaseDate,
		&inService,
		&asset.PurchaseValue,
		&asset.VATAmount,
		&asset.ResidualValue,
		&asset.BusinessUsePercent,
		&asset.DepreciationYears,
		&asset.IsActive,
		&disposalDate,
		&disposalValue,
		&expenseID,
		&asset.CreatedAt,
		&asset.CreatedBy,
		&asset.LastUpdatedAt,
		&asset.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	if inService.Valid {
		t := inService.Time
		asset.InServiceDate = &t
	}
	if disposalDate.Valid {
		t := disposalDate.Time
		asset.DisposalDate = &t
	}
	if disposalValue.Valid {
		d := disposalValue.Decimal
		asset.DisposalValue = &d
	}
	if expenseID.Valid {
		id := expenseID.String
		asset.ExpenseID = &id
	}
	return &asset, nil
}
