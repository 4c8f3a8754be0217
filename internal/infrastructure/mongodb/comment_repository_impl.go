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

type CommentRepository struct {
	db *mongo.Database
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) coll() *mongo.Collection {
	return r.db.Collection(commentsColl)
}

// Create inserts the comment and appends its id to the post's comment list
// in one transaction.
func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	posts := r.db.Collection(postsColl)

	return withTransaction(ctx, r.db, func(sc mongo.SessionContext) error {
		res, err := r.coll().InsertOne(sc, c)
		if err != nil {
			return mapErr(err)
		}
		c.ID = res.InsertedID.(primitive.ObjectID)
		upd, err := posts.UpdateOne(sc, bson.M{"_id": c.PostID},
			bson.M{"$push": bson.M{"comments": c.ID}})
		if err != nil {
			return err
		}
		if upd.MatchedCount == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
}

func (r *CommentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Comment, error) {
	c := &entity.Comment{}
	err := r.coll().FindOne(ctx, bson.M{"_id": id}).Decode(c)
	if err != nil {
		return nil, mapErr(err)
	}
	return c, nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID primitive.ObjectID) ([]entity.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := r.coll().Find(ctx, bson.M{"post": postID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var comments []entity.Comment
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// Delete removes the comment and pulls its reference off the post.
func (r *CommentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	posts := r.db.Collection(postsColl)
	return withTransaction(ctx, r.db, func(sc mongo.SessionContext) error {
		c := &entity.Comment{}
		if err := r.coll().FindOne(sc, bson.M{"_id": id}).Decode(c); err != nil {
			return mapErr(err)
		}
		if _, err := r.coll().DeleteOne(sc, bson.M{"_id": id}); err != nil {
			return err
		}
		_, err := posts.UpdateOne(sc, bson.M{"_id": c.PostID},
			bson.M{"$pull": bson.M{"comments": id}})
		return err
	})
}

func (r *CommentRepository) CountByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	return r.coll().CountDocuments(ctx, bson.M{"post": postID})
}

func (r *CommentRepository) Count(ctx context.Context) (int64, error) {
	return r.coll().CountDocuments(ctx, bson.M{})
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
