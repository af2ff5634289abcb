package wire

import (
	"skillshare/internal/api"
	"skillshare/internal/api/config"
	"skillshare/internal/api/handler"
	"skillshare/internal/pkg/storage"
	"skillshare/internal/repository"
	"skillshare/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer bundles the top-level components the app runs on.
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepository(db)
	likeRepo := repository.NewLikeRepo(db)
	userFollowRepo := repository.NewUserFollowRepo(db)

	mediaStore := storage.NewLocalStore(cfg.Upload.Dir)

	authService := service.NewAuthService(userRepo)
	postService := service.NewPostService(postRepo, userRepo, likeRepo, mediaStore)
	postActionService := service.NewPostActionService(likeRepo, postRepo, userRepo)
	userFollowService := service.NewUserFollowService(userFollowRepo, userRepo)

	handlers := &api.HandlersGroup{
		AuthHandler:       handler.NewAuthHandler(authService),
		PostHandler:       handler.NewPostHandler(postService),
		PostActionHandler: handler.NewPostActionHandler(postActionService),
		UserFollowHandler: handler.NewUserFollowHandler(userFollowService),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
