package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ParthMistry57/Blog-application/internal/domain/repository"
)

type AdminRepository struct {
	db *mongo.Database
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{db: db}
}

// ClearAll wipes every collection inside one transaction so a failure
// partway through cannot leave a half-cleared database.
func (r *AdminRepository) ClearAll(ctx context.Context) error {
	return withTransaction(ctx, r.db, func(sc mongo.SessionContext) error {
		for _, name := range []string{commentsColl, postsColl, usersColl} {
			if _, err := r.db.Collection(name).DeleteMany(sc, bson.M{}); err != nil {
				return err
			}
		}
		return nil
	})
}

var _ repository.AdminRepository = (*AdminRepository)(nil)
