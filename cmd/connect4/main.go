package main

import (
	"flag"
	"os"

	"github.com/google/subcommands"
	"golang.org/x/net/context"
	"k8s.io/klog/v2"

	"github.com/nelhage/connect4/cmd/internal/analyze"
	"github.com/nelhage/connect4/cmd/internal/config"
	"github.com/nelhage/connect4/cmd/internal/play"
	"github.com/nelhage/connect4/cmd/internal/selfplay"
	"github.com/nelhage/connect4/cmd/internal/serve"
)

func main() {
	klog.InitFlags(nil)
	env := config.Load()

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{Env: env}, "")
	subcommands.Register(&analyze.Command{Env: env}, "")
	subcommands.Register(&selfplay.Command{Env: env}, "")
	subcommands.Register(&serve.Command{Env: env}, "")

	flag.Parse()
	ctx := context.Background()
	status := subcommands.Execute(ctx)
	klog.Flush()
	os.Exit(int(status))
}
