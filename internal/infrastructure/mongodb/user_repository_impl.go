package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ParthMistry57/Blog-application/internal/domain/entity"
	"github.com/ParthMistry57/Blog-application/internal/domain/repository"
)

type UserRepository struct {
	db *mongo.Database
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) coll() *mongo.Collection {
	return r.db.Collection(usersColl)
}

func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return repository.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return repository.ErrDuplicate
	default:
		return err
	}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	res, err := r.coll().InsertOne(ctx, u)
	if err != nil {
		return mapErr(err)
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	u := &entity.User{}
	err := r.coll().FindOne(ctx, bson.M{"_id": id}).Decode(u)
	if err != nil {
		return nil, mapErr(err)
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := &entity.User{}
	err := r.coll().FindOne(ctx, bson.M{"email": email}).Decode(u)
	if err != nil {
		return nil, mapErr(err)
	}
	return u, nil
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*entity.User, error) {
	out := make(map[primitive.ObjectID]*entity.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := r.coll().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		u := &entity.User{}
		if err := cur.Decode(u); err != nil {
			return nil, err
		}
		out[u.ID] = u
	}
	return out, cur.Err()
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	n, err := r.coll().CountDocuments(ctx, bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()
	res, err := r.coll().ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, f repository.UserFilter) ([]entity.User, int64, error) {
	filter := bson.M{}
	if f.Search != "" {
		re := primitive.Regex{Pattern: regexQuote(f.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"username": re},
			bson.M{"firstName": re},
			bson.M{"lastName": re},
			bson.M{"email": re},
		}
	}

	total, err := r.coll().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(f.Skip).
		SetLimit(f.Limit)
	cur, err := r.coll().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var users []entity.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// DeleteCascade removes the user, their posts, the comments on those posts,
// and the comments they authored elsewhere, in one transaction.
func (r *UserRepository) DeleteCascade(ctx context.Context, id primitive.ObjectID) error {
	posts := r.db.Collection(postsColl)
	comments := r.db.Collection(commentsColl)

	return withTransaction(ctx, r.db, func(sc mongo.SessionContext) error {
		cur, err := posts.Find(sc, bson.M{"author": id}, options.Find().SetProjection(bson.M{"_id": 1}))
		if err != nil {
			return err
		}
		var owned []struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.All(sc, &owned); err != nil {
			return err
		}
		postIDs := make([]primitive.ObjectID, 0, len(owned))
		for _, p := range owned {
			postIDs = append(postIDs, p.ID)
		}

		commentFilter := bson.M{"author": id}
		if len(postIDs) > 0 {
			commentFilter = bson.M{"$or": bson.A{
				bson.M{"author": id},
				bson.M{"post": bson.M{"$in": postIDs}},
			}}
		}
		if _, err := comments.DeleteMany(sc, commentFilter); err != nil {
			return err
		}
		if _, err := posts.DeleteMany(sc, bson.M{"author": id}); err != nil {
			return err
		}
		res, err := r.coll().DeleteOne(sc, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if res.DeletedCount == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return r.coll().CountDocuments(ctx, bson.M{})
}

var _ repository.UserRepository = (*UserRepository)(nil)
