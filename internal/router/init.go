package router

import (
	"github.com/ParthMistry57/Blog-application/internal/application"
	"github.com/ParthMistry57/Blog-application/internal/container"
	"github.com/ParthMistry57/Blog-application/internal/infrastructure/mongodb"
	handlers "github.com/ParthMistry57/Blog-application/internal/interface/http"
	"github.com/ParthMistry57/Blog-application/internal/router/modules"
)

// InitModules constructs the repository, service, and handler graph and
// registers every feature module with the registry. Called once at startup.
func InitModules(r *Registry) {
	db := container.GetMongo()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	users := mongodb.NewUserRepository(db)
	posts := mongodb.NewPostRepository(db)
	comments := mongodb.NewCommentRepository(db)

	userSvc := application.NewUserService(users, posts, jwt, logger)
	postSvc := application.NewPostService(posts, users, comments, logger)
	commentSvc := application.NewCommentService(comments, posts, users, logger)
	adminSvc := application.NewAdminService(users, posts, comments, mongodb.NewAdminRepository(db), logger)

	authHandler := handlers.NewAuthHandler(userSvc, logger)
	postHandler := handlers.NewPostHandler(postSvc, logger)
	commentHandler := handlers.NewCommentHandler(commentSvc, logger)
	userHandler := handlers.NewUserHandler(userSvc, logger)
	adminHandler := handlers.NewAdminHandler(adminSvc, logger)

	r.Add(
		modules.NewAuthModule(authHandler, users, jwt),
		modules.NewPostModule(postHandler, commentHandler, users, jwt),
		modules.NewCommentModule(commentHandler, users, jwt),
		modules.NewUserModule(userHandler, users, jwt),
		modules.NewAdminModule(adminHandler, users, jwt),
	)
}
