package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/praxisbooks/asset_depreciation_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AssetRepo: NewAssetRepository(pool),
		UserRepo:  NewUserRepository(pool),
	}
}
