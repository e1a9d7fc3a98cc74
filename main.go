package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"slices"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/decor"
	"github.com/beka-birhanu/vinom-maze/infrastruture/layoutcache"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/term"
)

const operatorTokenTTL = 24 * time.Hour

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mazeRepo       i.MazeRepo
	layoutCache    i.LayoutCache
	mazeService    i.MazeService
	mazeController api_i.Controller
	jwtTokenizer   i.Tokenizer
	router         *api.Router
	appLogger      *logger.Logger
)

// cliFlags holds the command line options.
type cliFlags struct {
	cols    int
	rows    int
	seed    int64
	theme   string
	density float64
	policy  string
	lang    string
	plain   bool
	serve   bool
	token   bool
}

func parseFlags() cliFlags {
	var f cliFlags
	flag.IntVar(&f.cols, "cols", config.Envs.MazeCols, "number of columns")
	flag.IntVar(&f.rows, "rows", config.Envs.MazeRows, "number of rows")
	flag.Int64Var(&f.seed, "seed", 0, "seed for the generator (0 picks one from the clock)")
	flag.StringVar(&f.theme, "theme", config.Envs.Theme, "decoration theme, or \"random\"")
	flag.Float64Var(&f.density, "density", config.Envs.Density, "fraction of cells to decorate")
	flag.StringVar(&f.policy, "policy", config.Envs.Policy, "backtracking policy: skip or lifo")
	flag.StringVar(&f.lang, "lang", decor.DefaultLanguage, "label language: en or da")
	flag.BoolVar(&f.plain, "plain", false, "disable colors (implied when stdout is not a terminal)")
	flag.BoolVar(&f.serve, "serve", false, "run the HTTP server")
	flag.BoolVar(&f.token, "token", false, "print an operator token for the protected routes")
	flag.Parse()
	return f
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initMazeRepo(client *mongo.Client) {
	mazeRepo = repo.NewMazeRepo(client, config.Envs.DBName, "mazes")
	appLogger.Info("Maze repository initialized")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initLayoutCache(client *redis.Client) {
	var err error
	layoutCache, err = layoutcache.NewRedisLayoutCache(client, config.Envs.CacheTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating layout cache: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Layout cache initialized")
}

func initMazeService() {
	mazeLogger, err := logger.New("MAZE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze logger: %v", err))
		os.Exit(1)
	}

	mazeService, err = service.NewMazeService(mazeRepo, layoutCache, mazeLogger, &service.MazeOptions{
		Cols:         config.Envs.MazeCols,
		Rows:         config.Envs.MazeRows,
		MaxDimension: config.Envs.MaxDimension,
		Theme:        config.Envs.Theme,
		Density:      &config.Envs.Density,
		Policy:       config.Envs.Policy,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initJWTTokenizer() {
	var err error
	jwtTokenizer, err = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating JWT tokenizer: %v", err))
		os.Exit(1)
	}
	appLogger.Info("JWT Tokenizer initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService, identity.RequireScope(identity.ScopeMazeWrite))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	addr := fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort)
	router = api.NewRouter(api.Config{
		Addr:                    addr,
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.With(map[string]any{"addr": addr, "mode": config.Envs.GinMode}).Info("Router initialized")
}

func serve() {
	if err := config.Envs.ValidateServer(); err != nil {
		appLogger.Error(fmt.Sprintf("Invalid configuration: %v", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	initRedis(ctx)
	defer redisClient.Close()

	initMazeRepo(mongoClient)
	initLayoutCache(redisClient)
	initMazeService()
	initJWTTokenizer()
	initMazeController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}

func printToken() {
	initJWTTokenizer()
	signed, err := jwtTokenizer.Generate(map[string]interface{}{
		"sub":               "operator",
		identity.ScopeClaim: identity.ScopeMazeWrite,
	}, operatorTokenTTL)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Signing operator token: %v", err))
		os.Exit(1)
	}
	fmt.Println(signed)
}

// printMaze generates a maze locally and draws it on stdout.
func printMaze(f cliFlags) error {
	if !slices.Contains(decor.Languages(), f.lang) {
		return fmt.Errorf("unsupported language %q, want one of %v", f.lang, decor.Languages())
	}
	backtracker, ok := maze.Backtrackers[f.policy]
	if !ok {
		return fmt.Errorf("unknown policy %q", f.policy)
	}
	if err := decor.ValidateDensity(f.density); err != nil {
		return err
	}

	seed := f.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid, err := maze.New(f.cols, f.rows)
	if err != nil {
		return err
	}
	gen, err := maze.NewGenerator(rand.New(rand.NewSource(seed)), maze.WithBacktracker(backtracker))
	if err != nil {
		return err
	}
	if _, err := gen.Generate(grid); err != nil {
		return err
	}

	decorRand := rand.New(rand.NewSource(seed + 1))
	theme := decor.ResolveTheme(f.theme, decorRand)
	if _, err := decor.Decorate(grid, theme, f.density, decorRand); err != nil {
		return err
	}

	fmt.Println(decor.CurrentThemeLine(theme, f.lang))
	fmt.Printf("seed: %d\n", seed)
	plain := f.plain || !term.IsTerminal(int(os.Stdout.Fd()))
	return render.NewTerminal(plain).Render(os.Stdout, grid)
}

func main() {
	// Initialize dependencies
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating app logger: %v\n", err)
		os.Exit(1)
	}

	f := parseFlags()
	switch {
	case f.serve:
		serve()
	case f.token:
		printToken()
	default:
		if err := printMaze(f); err != nil {
			appLogger.Error(fmt.Sprintf("Generating maze: %v", err))
			os.Exit(1)
		}
	}
}
