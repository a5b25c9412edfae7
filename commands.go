package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/amazeing/api"
	api_i "github.com/beka-birhanu/amazeing/api/i"
	"github.com/beka-birhanu/amazeing/api/identity"
	"github.com/beka-birhanu/amazeing/api/mazeapi"
	"github.com/beka-birhanu/amazeing/config"
	"github.com/beka-birhanu/amazeing/infrastruture/cache"
	"github.com/beka-birhanu/amazeing/infrastruture/mazefile"
	"github.com/beka-birhanu/amazeing/infrastruture/repo"
	"github.com/beka-birhanu/amazeing/infrastruture/token"
	"github.com/beka-birhanu/amazeing/logger"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/menu"
	"github.com/beka-birhanu/amazeing/metrics"
	"github.com/beka-birhanu/amazeing/render"
	"github.com/beka-birhanu/amazeing/service"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RunCmd generates the configured maze, writes its file and opens the menu.
type RunCmd struct {
	Config string `arg:"" type:"existingfile" help:"Maze configuration file (KEY=VALUE lines)"`
	NoMenu bool   `help:"Print the maze once and exit"`
	PNG    string `name:"png" type:"path" help:"Also export the maze as a PNG image"`
}

func (c *RunCmd) Run(appLogger *logger.Logger) error {
	cfg, err := config.LoadMaze(c.Config)
	if err != nil {
		printFieldErrors(err)
		return errors.New("invalid maze configuration")
	}

	gen, err := maze.New(cfg.Options)
	if err != nil {
		printFieldErrors(err)
		return errors.New("invalid maze configuration")
	}
	gen.MarkExplicit(cfg.Explicit...)
	gen.SetOutputFile(cfg.OutputFile)
	if err := gen.Generate(); err != nil {
		return fmt.Errorf("generating maze: %w", err)
	}
	if !maze.HasLandmark(cfg.Options.Width, cfg.Options.Height) {
		appLogger.Info("maze too small for the 42 landmark", "width", cfg.Options.Width, "height", cfg.Options.Height)
	}

	save := func(g *maze.Generator) error {
		if err := mazefile.WriteFile(cfg.OutputFile, mazefile.FromSource(g)); err != nil {
			return err
		}
		if c.PNG != "" {
			return writePNG(c.PNG, g)
		}
		return nil
	}
	if err := save(gen); err != nil {
		return err
	}
	appLogger.Info("maze written", "file", cfg.OutputFile, "steps", len(gen.Directions()))

	view := render.NewASCII(os.Stdout)
	if c.NoMenu {
		return view.Render(os.Stdout, gen)
	}

	m, err := menu.New(menu.Config{
		Generator: gen,
		View:      view,
		In:        os.Stdin,
		Out:       os.Stdout,
		Save:      save,
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
		Logger:    appLogger,
	})
	if err != nil {
		return err
	}
	return m.Run()
}

func writePNG(path string, g *maze.Generator) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating png: %w", err)
	}
	r := &render.PNG{TilePixels: render.DefaultTilePixels, ShowPath: true, BorderWidth: render.DefaultTilePixels}
	if err := r.Encode(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// VerifyCmd reads a maze file back and checks that its route solves it.
type VerifyCmd struct {
	File     string `arg:"" type:"existingfile" help:"Maze file written by run"`
	ShowPath bool   `name:"path" help:"Overlay the route when drawing the maze"`
}

func (c *VerifyCmd) Run(appLogger *logger.Logger) error {
	doc, err := mazefile.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.File, err)
	}
	v, err := doc.Verify()
	if err != nil {
		return fmt.Errorf("verifying %s: %w", c.File, err)
	}
	view := render.NewASCII(os.Stdout)
	view.ShowPath = c.ShowPath
	if err := view.Render(os.Stdout, v); err != nil {
		return err
	}
	appLogger.Info("maze verified", "file", c.File, "width", v.Grid.Width, "height", v.Grid.Height,
		"steps", len(v.Cells)-1, "open_walls", v.Grid.OpenWallCount())
	return nil
}

// printFieldErrors lists every rejected configuration field on stderr.
func printFieldErrors(err error) {
	var joined interface{ Unwrap() []error }
	errs := []error{err}
	if errors.As(err, &joined) {
		errs = joined.Unwrap()
	}
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "%sError:%s %v\n", config.ColorRed, config.ColorReset, e)
	}
}

// ServeCmd runs the HTTP API.
type ServeCmd struct{}

func (c *ServeCmd) Run(appLogger *logger.Logger) error {
	envs := config.LoadEnvs()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(envs.DBURI))
	if err != nil {
		return fmt.Errorf("connecting to MongoDB: %w", err)
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	if err := mongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}
	appLogger.Info("Connected to MongoDB")
	mazeRepo := repo.NewMazeRepo(mongoClient, envs.DBName, "mazes")

	redisClient := redis.NewClient(&redis.Options{Addr: envs.RedisAddr, Password: envs.RedisPassword})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	mazeCache, err := cache.NewRedisMazeCache(redisClient, envs.CacheTTLSeconds)
	if err != nil {
		return err
	}
	appLogger.Info("Connected to Redis")

	recorder := metrics.NewPrometheusRecorder(nil)

	serviceLogger, err := logger.New("MAZE-SERVICE", config.ColorCyan, os.Stdout)
	if err != nil {
		return fmt.Errorf("creating maze service logger: %w", err)
	}
	mazeService, err := service.NewMazeService(service.MazeServiceConfig{
		Repo:    mazeRepo,
		Cache:   mazeCache,
		Metrics: recorder,
		Logger:  serviceLogger,
	})
	if err != nil {
		return err
	}

	mazeController, err := mazeapi.NewMazeController(mazeService, identity.RequireScope(token.ScopeManage))
	if err != nil {
		return err
	}

	tokenizer := token.NewJwtService(envs.JWTSecret, envs.JWTIssuer)
	router := api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", envs.HostIP, envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    envs.GinMode,
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: identity.Authoriz(tokenizer),
		MetricsHandler:          recorder.Handler(),
	})
	appLogger.Info("Router initialized", "addr", fmt.Sprintf("%s:%v", envs.HostIP, envs.RESTPort))

	return router.Run()
}

// TokenCmd prints a management token.
type TokenCmd struct {
	Subject string        `arg:"" help:"Who the token is issued to"`
	TTL     time.Duration `name:"ttl" default:"24h" help:"Token lifetime"`
}

func (c *TokenCmd) Run(appLogger *logger.Logger) error {
	secret, issuer := config.LoadJWTEnvs()
	tok, err := token.NewJwtService(secret, issuer).Manager(c.Subject, c.TTL)
	if err != nil {
		return fmt.Errorf("signing token: %w", err)
	}
	appLogger.Info("token issued", "subject", c.Subject, "ttl", c.TTL)
	fmt.Println(tok)
	return nil
}
