package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"corpus-backend/internal/config"
	"corpus-backend/internal/infrastructure/audit"
	"corpus-backend/internal/infrastructure/fsstore"
	infraSession "corpus-backend/internal/infrastructure/session"
	"corpus-backend/pkg/session"

	"corpus-backend/internal/domains/commentary"
	commentaryHandler "corpus-backend/internal/domains/commentary/handler"
	commentaryRepo "corpus-backend/internal/domains/commentary/repository"
	commentaryService "corpus-backend/internal/domains/commentary/service"
	"corpus-backend/internal/domains/export"
	exportHandler "corpus-backend/internal/domains/export/handler"
	exportService "corpus-backend/internal/domains/export/service"
	reviewHandler "corpus-backend/internal/domains/review/handler"
	reviewService "corpus-backend/internal/domains/review/service"
	"corpus-backend/internal/domains/user"
	userHandler "corpus-backend/internal/domains/user/handler"
	userRepo "corpus-backend/internal/domains/user/repository"
	userService "corpus-backend/internal/domains/user/service"
	"corpus-backend/internal/domains/verse"
	verseHandler "corpus-backend/internal/domains/verse/handler"
	verseRepo "corpus-backend/internal/domains/verse/repository"
	verseSvc "corpus-backend/internal/domains/verse/service"
	"corpus-backend/internal/domains/work"
	workHandler "corpus-backend/internal/domains/work/handler"
	workRepo "corpus-backend/internal/domains/work/repository"
	workSvc "corpus-backend/internal/domains/work/service"

	"corpus-backend/internal/domains/tombstone"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Struct này là "root" của dependency graph
// Pattern: Service Locator + Dependency Injection
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	// Lifecycle: Singleton (1 instance duy nhất trong app lifetime)

	Config   *config.Config // Application config
	Store    *fsstore.Store // File-backed document store
	Locks    *fsstore.Locks // Per-work mutation locks
	Audit    *audit.Logger  // Date-partitioned review audit log
	Sessions session.Store  // Session store (in-memory hoặc Redis)

	// Set only when Redis is configured; kept for Cleanup().
	redisSessions *infraSession.RedisStore

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================
	// Lifecycle: Singleton (stateless, can be reused)

	WorkRepo       work.Repository
	VerseRepo      verse.Repository
	CommentaryRepo commentary.Repository
	UserRepo       user.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================
	// Lifecycle: Singleton (stateless)

	WorkService       work.Service
	VerseService      verse.Service
	CommentaryService commentary.Service
	ReviewService     reviewService.Service
	ExportService     export.Service
	UserService       user.Service
	Tombstones        tombstone.Manager

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	// Lifecycle: Singleton (stateless)

	WorkHandler       *workHandler.Handler
	VerseHandler      *verseHandler.Handler
	CommentaryHandler *commentaryHandler.Handler
	ReviewHandler     *reviewHandler.Handler
	ExportHandler     *exportHandler.Handler
	UserHandler       *userHandler.Handler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer tạo và initialize toàn bộ dependency graph
//
// QUAN TRỌNG: Thứ tự initialization:
// 1. Config (không phụ thuộc gì)
// 2. Infrastructure (store, locks, audit, sessions) - phụ thuộc Config
// 3. Repositories - phụ thuộc Infrastructure
// 4. Services - phụ thuộc Repositories
// 5. Handlers - phụ thuộc Services
//
// Nếu thứ tự sai → panic (nil pointer dereference)
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DOCUMENT STORE
	// ========================================
	log.Printf("🗄️  Opening document store at %s...", cfg.Storage.DataRoot)

	store, err := fsstore.New(cfg.Storage.DataRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}
	c.Store = store
	c.Locks = fsstore.NewLocks()
	c.Audit = audit.New(cfg.Storage.LogsDir)
	log.Println("✅ Document store ready")

	// ========================================
	// STEP 3: INITIALIZE SESSION STORE
	// ========================================
	ttl := time.Duration(cfg.Session.TTLHours) * time.Hour

	if cfg.Redis.Host != "" {
		log.Println("🔴 Connecting to Redis session store...")

		redisStore := infraSession.NewRedisStore(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB, ttl)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := redisStore.Connect(ctx); err != nil {
			// Redis failure không critical - fall back to in-memory
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
			c.Sessions = session.NewMemoryStore(ttl)
		} else {
			c.Sessions = redisStore
			c.redisSessions = redisStore
			log.Println("✅ Redis connected")
		}
	} else {
		c.Sessions = session.NewMemoryStore(ttl)
		log.Println("✅ In-memory session store ready")
	}

	// ========================================
	// STEP 4: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")

	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 5: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	if err := c.initServices(); err != nil {
		return nil, fmt.Errorf("failed to init services: %w", err)
	}
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")

	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

// initRepositories khởi tạo tất cả repositories
// Pattern: Constructor Injection
func (c *Container) initRepositories() {
	c.WorkRepo = workRepo.NewFSRepository(c.Store)
	c.VerseRepo = verseRepo.NewFSRepository(c.Store)
	c.CommentaryRepo = commentaryRepo.NewFSRepository(c.Store)
	c.UserRepo = userRepo.NewFSRepository(c.Store)
}

// initServices khởi tạo tất cả services
func (c *Container) initServices() error {
	// Tombstone manager trước - verse/commentary services cần nó
	c.Tombstones = tombstone.NewManager(c.Store)

	c.WorkService = workSvc.NewWorkService(c.WorkRepo, c.Locks)

	c.VerseService = verseSvc.NewVerseService(
		c.VerseRepo,
		c.WorkRepo, // Cross-domain dependency
		c.Tombstones,
		c.Locks,
	)

	c.CommentaryService = commentaryService.NewCommentaryService(
		c.CommentaryRepo,
		c.VerseRepo, // Cross-domain dependency
		c.Tombstones,
		c.Locks,
	)

	c.ReviewService = reviewService.NewReviewService(
		c.VerseRepo,
		c.CommentaryRepo,
		c.WorkRepo,
		c.Audit,
		c.Locks,
	)

	c.ExportService = exportService.NewExportService(
		c.Store,
		c.WorkRepo,
		c.VerseRepo,
		c.CommentaryRepo,
	)

	// User service mints the CSRF token at startup; can fail on entropy
	userSvc, err := userService.NewUserService(c.UserRepo, c.Sessions)
	if err != nil {
		return err
	}
	c.UserService = userSvc

	return nil
}

// initHandlers khởi tạo tất cả handlers
func (c *Container) initHandlers() {
	c.WorkHandler = workHandler.NewHandler(c.WorkService)
	c.VerseHandler = verseHandler.NewHandler(c.VerseService)
	c.CommentaryHandler = commentaryHandler.NewHandler(c.CommentaryService)
	c.ReviewHandler = reviewHandler.NewHandler(c.ReviewService)
	c.ExportHandler = exportHandler.NewHandler(c.ExportService)
	c.UserHandler = userHandler.NewHandler(
		c.UserService,
		c.Config.Session.TTLHours*3600, // cookie max age (seconds)
		c.Config.Session.CookieSecure,
	)
}

// Cleanup đóng các connections khi shutdown
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container...")

	if c.redisSessions != nil {
		if err := c.redisSessions.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		}
	}

	log.Println("✅ Container cleanup complete")
}
