package main

import (
	"fmt"
	"os"

	flag "github.com/ogier/pflag"

	"github.com/Caqil/scanpro-annotate/api"
	"github.com/Caqil/scanpro-annotate/config"
	"github.com/Caqil/scanpro-annotate/log"
	"github.com/Caqil/scanpro-annotate/shell"
	"github.com/Caqil/scanpro-annotate/version"
)

func main() {
	showVersion := flag.BoolP("version", "v", false, "print version and exit")
	serverMode := flag.Bool("server", false, "run as HTTP API server")
	port := flag.String("port", "8080", "server port")
	configPath := flag.String("config", config.Path(), "config file")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error.Fatalln(err)
	}

	if *serverMode {
		runServerMode(cfg, *port)
		return
	}

	ctx := &shell.ShellCtxt{
		Config: cfg,
		Client: api.NewClient(cfg.APIURL, cfg.Token),
	}

	if err := shell.RunShell(ctx, flag.Args()); err != nil {
		log.Error.Println("failed to run command:", err)
		os.Exit(1)
	}
}
