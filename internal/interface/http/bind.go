package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ParthMistry57/Blog-application/internal/application"
	"github.com/ParthMistry57/Blog-application/pkg/response"
)

// bindStrict decodes the JSON body rejecting unknown fields, then runs the
// binding-tag validators. Update payloads are explicit allow-lists; a
// field we do not know is a client bug, not something to silently drop.
func bindStrict(c *gin.Context, obj any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(obj); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(obj)
}

// objectID parses a hex id path param. A malformed id can never reference
// an existing document, so it reports not-found rather than bad-request.
func objectID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		response.Message(c, http.StatusNotFound, "Not found")
		return primitive.NilObjectID, false
	}
	return id, true
}

// fail maps a service error to a response, logging anything the taxonomy
// does not cover.
func fail(c *gin.Context, logger *logrus.Logger, err error) {
	if logger != nil && !application.Classified(err) {
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.FullPath(),
			"error":      err.Error(),
		}).Error("request failed")
	}
	response.Err(c, err)
}
