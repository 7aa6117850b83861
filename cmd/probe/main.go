package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
)

var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

type Settings struct {
	InputPath string
	Threads   int
}

func main() {
	var err = run()
	if err != nil {
		logger.Println(err)
	}
}

func parseSettings(args []string) (Settings, error) {
	var settings = Settings{
		Threads: runtime.NumCPU(),
	}
	var fs = flag.NewFlagSet("probe", flag.ContinueOnError)
	fs.StringVar(&settings.InputPath, "input", settings.InputPath, "Path to EPD file with test positions")
	fs.IntVar(&settings.Threads, "threads", settings.Threads, "Number of threads")
	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}
	if settings.Threads < 1 {
		return Settings{}, fmt.Errorf("threads must be positive: %v", settings.Threads)
	}
	return settings, nil
}

func run() error {
	settings, err := parseSettings(os.Args[1:])
	if err != nil {
		return err
	}
	logger.Printf("%+v", settings)
	return probeHandler(settings.InputPath, settings.Threads)
}
