package initialize

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/zee467/twitter-clone/app/controllers"
	"github.com/zee467/twitter-clone/app/db"
	"github.com/zee467/twitter-clone/app/media"
	"github.com/zee467/twitter-clone/app/middleware"
	"github.com/zee467/twitter-clone/app/repo"
	"github.com/zee467/twitter-clone/app/services"
	"github.com/zee467/twitter-clone/app/session"
	"github.com/zee467/twitter-clone/app/views"
	"github.com/zee467/twitter-clone/config"
	"github.com/zee467/twitter-clone/router"
)

// App is the application context built once at startup; every handler gets
// its collaborators from here instead of package-level state.
type App struct {
	Cfg      *config.Config
	Log      zerolog.Logger
	DB       *gorm.DB
	Sessions *session.Manager
	Users    *services.UserService
	Router   http.Handler
}

func Build(ctx context.Context, configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log := NewLogger(cfg.Env)

	gdb, err := db.Connect(db.Config{Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	if err := db.Migrate(gdb); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	var store session.Store
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		store = session.NewRedisStore(rdb)
	} else {
		if cfg.IsProd() {
			return nil, fmt.Errorf("redis.addr is required in prod")
		}
		log.Warn().Msg("redis not configured, sessions are process-local")
		store = session.NewMemoryStore()
	}

	var uploader media.Uploader
	mediaCfg := media.Config{
		Bucket:    cfg.Media.Bucket,
		Region:    cfg.Media.Region,
		Endpoint:  cfg.Media.Endpoint,
		BaseURL:   cfg.Media.BaseURL,
		AccessKey: cfg.Media.AccessKey,
		SecretKey: cfg.Media.SecretKey,
	}
	if mediaCfg.Configured() {
		uploader, err = media.NewS3Uploader(ctx, mediaCfg)
		if err != nil {
			return nil, fmt.Errorf("media host: %w", err)
		}
	} else {
		log.Warn().Msg("media host not configured, profile images are disabled")
		uploader = media.NoopUploader{}
	}

	return Assemble(cfg, log, gdb, store, uploader)
}

// Assemble wires repositories, services, controllers, and the router around
// already-constructed infrastructure. Tests call it with in-memory pieces.
func Assemble(cfg *config.Config, log zerolog.Logger, gdb *gorm.DB, store session.Store, uploader media.Uploader) (*App, error) {
	renderer, err := views.New(cfg.TemplatesDir, !cfg.IsProd(), log)
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}

	sessions := &session.Manager{
		Signer:      &session.Signer{Secret: []byte(cfg.Session.Secret), Issuer: cfg.Session.Issuer},
		Store:       store,
		Cookie:      cfg.Session.Cookie,
		TTL:         cfg.Session.TTL,
		RememberTTL: cfg.Session.RememberTTL,
		Secure:      cfg.IsProd(),
	}

	userRepo := repo.NewUserRepository(gdb)
	userSvc := services.NewUserService(userRepo, uploader, log)

	pagesCtrl := controllers.NewPagesController(renderer, userSvc, sessions)
	authCtrl := controllers.NewAuthController(renderer, userSvc, sessions)
	registerCtrl := controllers.NewRegisterController(renderer, userSvc, sessions, log)
	mw := &middleware.Auth{Sessions: sessions}

	h := router.New(pagesCtrl, authCtrl, registerCtrl, mw)
	h = middleware.Logging(log)(h)

	return &App{Cfg: cfg, Log: log, DB: gdb, Sessions: sessions, Users: userSvc, Router: h}, nil
}
