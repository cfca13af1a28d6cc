package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"audiblebooks"
	"audiblebooks/config"
	"audiblebooks/internal/application/usecase"
	"audiblebooks/internal/domain/entity"
	"audiblebooks/internal/infrastructure/broker"
	"audiblebooks/internal/infrastructure/database"
	"audiblebooks/internal/infrastructure/filestore"
	"audiblebooks/internal/presentation/handler"
	"audiblebooks/internal/presentation/middleware"
	"audiblebooks/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running audiblebooks", "version", audiblebooks.StringVersion())

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	store, err := filestore.New(db, cfg.FileStore)
	if err != nil {
		ExitOnError(err)
	}

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}

	publisher := broker.NewPublisher(brokerClient, cfg.PublisherConfig)

	dbWriter := database.NewWriter(db)
	dbRetriever := database.NewRetriever(db)
	dbLister := database.NewLister(db)
	dbRemover := database.NewRemover(db)
	dbUpdater := database.NewUpdater(db)

	fileStorer := filestore.NewStorer(store)
	fileRetriever := filestore.NewRetriever(store)
	fileRemover := filestore.NewRemover(store)

	uploader := usecase.NewUploader(dbWriter, fileStorer, fileRemover, publisher)
	getter := usecase.NewGetter(dbRetriever)
	lister := usecase.NewLister(dbLister, fileRetriever)
	searcher := usecase.NewSearcher(dbLister)
	updater := usecase.NewUpdater(dbRetriever, dbUpdater, fileStorer, fileRemover)
	deleter := usecase.NewDeleter(dbRetriever, dbRemover, fileRemover, publisher)
	rater := usecase.NewRater(dbRetriever, dbUpdater)
	streamer := usecase.NewStreamer(fileRetriever)

	uploadHandler := handler.NewUploadHandler(uploader)
	getHandler := handler.NewGetHandler(getter)
	listHandler := handler.NewListHandler(lister)
	searchHandler := handler.NewSearchHandler(searcher)
	categoryHandler := handler.NewCategoryHandler(lister)
	updateHandler := handler.NewUpdateHandler(updater)
	deleteHandler := handler.NewDeleteHandler(deleter)
	ratingHandler := handler.NewRatingHandler(rater)
	streamHandler := handler.NewStreamHandler(streamer)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(cfg.HTTPServer.BodyLimit))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	authorOnly := middleware.Auth(cfg.Auth.Secret, entity.RoleAuthor)
	anyIdentity := middleware.Auth(cfg.Auth.Secret, entity.RoleUser, entity.RoleAuthor)

	api := e.Group("/api/audiobooks")
	api.POST("", uploadHandler.Handle, authorOnly)
	api.GET("", listHandler.HandleList)
	api.GET("/mine", listHandler.HandleMine, authorOnly)
	api.GET("/search", searchHandler.Handle)
	api.GET("/categories", categoryHandler.HandleCategories)
	api.GET("/subcategories", categoryHandler.HandleSubcategories)
	api.GET("/category/:category", categoryHandler.HandleByCategory)
	api.GET("/audio/:filename", streamHandler.HandleAudio)
	api.GET("/image/:filename", streamHandler.HandleImage)
	api.GET("/:id", getHandler.Handle, authorOnly)
	api.PUT("/:id", updateHandler.Handle, authorOnly)
	api.DELETE("/:id", deleteHandler.Handle, authorOnly)
	api.POST("/:id/ratings", ratingHandler.HandleRate, anyIdentity)
	api.GET("/:id/ratings", ratingHandler.HandleGetRating, anyIdentity)
	api.DELETE("/:id/ratings", ratingHandler.HandleUnrate, anyIdentity)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.HTTPServer.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}

	if err := brokerClient.Close(); err != nil {
		logger.Error("failed to close broker client", "err", err)
	}
	if err := db.Stop(); err != nil {
		logger.Error("failed to disconnect database", "err", err)
	}
}
