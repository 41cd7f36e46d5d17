package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"dns-scavenger/scavenger/command"
	"dns-scavenger/scavenger/records"
)

func main() {
	os.Exit(mainExitCode())
}

func mainExitCode() int {
	const logTag = "main"

	// optional .env defaults for grid address and credentials
	_ = godotenv.Load()

	logger := boshlog.NewAsyncWriterLogger(boshlog.LevelError, os.Stderr)
	defer logger.FlushTimeout(5 * time.Second)

	shutdown := make(chan struct{})
	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigterm
		close(shutdown)
	}()

	cmd := command.Commands{
		Audit: command.AuditCmd{
			DryRun:   true,
			Shutdown: shutdown,
		},
	}

	parser := flags.NewParser(&cmd, flags.HelpFlag|flags.PassDoubleDash)

	_, err := parser.Parse()
	if err == nil {
		return 0
	}

	var flagsErr *flags.Error
	if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
		fmt.Println(flagsErr.Message)
		return 0
	}

	if errors.Is(err, records.ErrInterrupted) {
		fmt.Println("\nOperation cancelled by user.")
		return 130
	}

	logger.Error(logTag, err.Error())
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())

	return 1
}
