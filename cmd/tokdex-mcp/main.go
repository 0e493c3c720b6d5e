package main

import (
	"context"
	"flag"
	"log"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tokdex/internal/adapters/filesystem"
	"tokdex/internal/adapters/jsonstore"
	mcpadapter "tokdex/internal/adapters/mcp"
	"tokdex/internal/adapters/pdfinfo"
	"tokdex/internal/application"
	"tokdex/internal/config"
)

func main() {
	libraryFlag := flag.String("library", config.LibraryRoot(), "path to the PDF library root")
	dataFlag := flag.String("data", config.DataDir(), "folder holding the catalog and classification documents")
	flag.Parse()

	deps := mcpadapter.Deps{
		Session:      application.NewSession(),
		Scanner:      filesystem.NewScanner(*libraryFlag, config.Excludes(), pdfinfo.ReadTitle),
		Renamer:      filesystem.NewRenamer(),
		CatalogStore: jsonstore.NewCatalogStore(filepath.Join(*dataFlag, config.CatalogFileName)),
		TokStore:     jsonstore.NewTokStore(filepath.Join(*dataFlag, config.TokFileName)),
	}

	mcpServer := server.NewMCPServer(
		"tokdex-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, deps)
	mcpadapter.RegisterWriteTools(mcpServer, deps)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("tokdex-mcp: %v", err)
	}
}
