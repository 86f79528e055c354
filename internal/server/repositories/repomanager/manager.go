package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophstore/internal/dbx"
	"github.com/dmitrijs2005/gophstore/internal/server/repositories/products"
	"github.com/dmitrijs2005/gophstore/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/gophstore/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophstore/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a connection or a
// transaction, so services decide the transactional scope.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	Products(db dbx.DBTX) products.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
}
