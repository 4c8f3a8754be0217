package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ParthMistry57/Blog-application/internal/domain/entity"
	"github.com/ParthMistry57/Blog-application/internal/domain/repository"
)

type PostRepository struct {
	db *mongo.Database
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) coll() *mongo.Collection {
	return r.db.Collection(postsColl)
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Likes == nil {
		p.Likes = []primitive.ObjectID{}
	}
	if p.Comments == nil {
		p.Comments = []primitive.ObjectID{}
	}
	res, err := r.coll().InsertOne(ctx, p)
	if err != nil {
		return mapErr(err)
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Post, error) {
	p := &entity.Post{}
	err := r.coll().FindOne(ctx, bson.M{"_id": id}).Decode(p)
	if err != nil {
		return nil, mapErr(err)
	}
	return p, nil
}

func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	p := &entity.Post{}
	err := r.coll().FindOne(ctx, bson.M{"slug": slug}).Decode(p)
	if err != nil {
		return nil, mapErr(err)
	}
	return p, nil
}

func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	p.UpdatedAt = time.Now()
	res, err := r.coll().ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func buildPostFilter(f repository.PostFilter) bson.M {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Tag != "" {
		filter["tags"] = f.Tag
	}
	if !f.AuthorID.IsZero() {
		filter["author"] = f.AuthorID
	}
	if f.Search != "" {
		re := primitive.Regex{Pattern: regexQuote(f.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"content": re},
		}
	}
	return filter
}

func (r *PostRepository) List(ctx context.Context, f repository.PostFilter) ([]entity.Post, int64, error) {
	filter := buildPostFilter(f)

	total, err := r.coll().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	sortKey := f.SortBy
	if sortKey == "" {
		sortKey = repository.SortByCreatedAt
	}
	opts := options.Find().
		SetSort(bson.D{{Key: sortKey, Value: -1}}).
		SetSkip(f.Skip).
		SetLimit(f.Limit)
	cur, err := r.coll().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var posts []entity.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *PostRepository) RecentByAuthor(ctx context.Context, authorID primitive.ObjectID, limit int64) ([]entity.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "publishedAt", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{
			"title": 1, "slug": 1, "excerpt": 1, "publishedAt": 1, "views": 1, "likes": 1, "author": 1, "status": 1,
		})
	filter := bson.M{"author": authorID, "status": entity.StatusPublished}
	cur, err := r.coll().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []entity.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// DeleteWithComments removes the post and every comment referencing it as
// one transaction, so a crash cannot leave orphaned comments behind.
func (r *PostRepository) DeleteWithComments(ctx context.Context, id primitive.ObjectID) error {
	comments := r.db.Collection(commentsColl)
	return withTransaction(ctx, r.db, func(sc mongo.SessionContext) error {
		if _, err := comments.DeleteMany(sc, bson.M{"post": id}); err != nil {
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

func (r *PostRepository) Count(ctx context.Context) (int64, error) {
	return r.coll().CountDocuments(ctx, bson.M{})
}

var _ repository.PostRepository = (*PostRepository)(nil)
