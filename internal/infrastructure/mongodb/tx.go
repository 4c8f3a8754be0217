package mongodb

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/mongo"
)

// withTransaction runs fn inside a session transaction so multi-collection
// cascades commit or roll back as a unit. Requires a replica set, which the
// official driver also requires for sessions.
func withTransaction(ctx context.Context, db *mongo.Database, fn func(mongo.SessionContext) error) error {
	session, err := db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// regexQuote escapes user input before it is embedded in a $regex filter.
func regexQuote(s string) string {
	return regexp.QuoteMeta(s)
}
