package serve

import (
	"flag"
	"fmt"
	"net"
	"time"

	"github.com/google/subcommands"
	"github.com/redis/go-redis/v9"
	"golang.org/x/net/context"
	"google.golang.org/grpc"
	"k8s.io/klog/v2"

	"github.com/nelhage/connect4/cmd/internal/config"
	"github.com/nelhage/connect4/pb"
)

type Command struct {
	Env *config.Config

	port     int
	redis    string
	ttl      time.Duration
	maxDepth int
}

func (*Command) Name() string     { return "serve" }
func (*Command) Synopsis() string { return "Serve Connect Four analysis RPCs via GRPC" }
func (*Command) Usage() string {
	return `serve [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	env := c.Env
	if env == nil {
		env = config.FromEnv()
	}
	flags.IntVar(&c.port, "port", env.Port, "bind port")
	flags.StringVar(&c.redis, "redis", env.Redis, "redis address for the analysis cache (empty to disable)")
	flags.DurationVar(&c.ttl, "cache-ttl", 24*time.Hour, "analysis cache expiry")
	flags.IntVar(&c.maxDepth, "max-depth", 10, "refuse searches deeper than this")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	srv := &Server{MaxDepth: c.maxDepth}
	if c.redis != "" {
		client := redis.NewClient(&redis.Options{Addr: c.redis})
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			klog.Warningf("could not connect to redis at %s: %v; serving without a cache", c.redis, err)
		} else {
			klog.Infof("caching analyses in redis at %s", c.redis)
			srv.Cache = NewRedisCache(client, c.ttl)
		}
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", c.port))
	if err != nil {
		klog.Errorf("failed to listen: %v", err)
		return subcommands.ExitFailure
	}
	klog.Infof("Listening on port %d", c.port)
	grpcServer := grpc.NewServer()
	pb.RegisterConnect4Server(grpcServer, srv)

	if err := grpcServer.Serve(lis); err != nil {
		klog.Errorf("serve: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
