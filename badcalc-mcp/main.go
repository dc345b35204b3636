// Command badcalc-mcp serves the bad calculator over the Model Context Protocol.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/text/language"

	"github.com/fjl/badcalc/internal/calc"
)

const version = "0.1.0"

func main() {
	var (
		portFlag    = flag.Int("port", 0, "TCP port to listen on (0 for stdio)")
		langFlag    = flag.String("lang", "en", "language of the display's number format")
		debugFlag   = flag.Bool("debug", false, "Enable debug logging")
		versionFlag = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Println("badcalc-mcp v" + version)
		os.Exit(0)
	}

	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	// stdout carries the protocol in stdio mode.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	tag, err := language.Parse(*langFlag)
	if err != nil {
		log.Fatalf("Invalid -lang %q: %v", *langFlag, err)
	}

	mcpServer := server.NewMCPServer(
		"badcalc-mcp",
		version,
		server.WithToolCapabilities(true),
		server.WithLogging(),
		server.WithRecovery(),
	)
	sess := newSession(logger, nil, calc.WithLanguage(tag))
	sess.register(mcpServer)

	if *portFlag == 0 {
		logger.Info("serving on stdio")
		if err := server.ServeStdio(mcpServer); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
		return
	}
	httpServer := server.NewStreamableHTTPServer(mcpServer)
	logger.Info("serving HTTP", "port", *portFlag)
	if err := httpServer.Start(fmt.Sprintf(":%d", *portFlag)); err != nil {
		log.Fatalf("HTTP server failed: %v", err)
	}
}
