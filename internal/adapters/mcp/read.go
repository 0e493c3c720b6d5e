package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tokdex/internal/adapters/report"
	"tokdex/internal/application"
	"tokdex/internal/application/commands"
	"tokdex/internal/domain"
	"tokdex/internal/ports"
)

// Deps bundles the adapters the MCP tools operate on.
type Deps struct {
	Session      *application.Session
	Scanner      ports.LibraryScanner
	CatalogStore ports.CatalogStore
	TokStore     ports.TokStore
	Renamer      ports.FileRenamer
}

// RegisterReadTools adds all read-only library tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, deps Deps) {
	s.AddTool(listBareTool(), listBareHandler(deps))
	s.AddTool(treeTool(), treeHandler(deps))
	s.AddTool(reportTool(), reportHandler(deps))
}

// --- list_bare ---

func listBareTool() mcp.Tool {
	return mcp.NewTool("list_bare",
		mcp.WithDescription("List the PDFs in a folder that carry no ToK classification prefix, newest first. Row numbers feed apply_prefix and rename_file."),
		mcp.WithString("folder",
			mcp.Description("Folder to list"),
			mcp.Required(),
		),
	)
}

func listBareHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		folder := req.GetString("folder", "")
		if folder == "" {
			return toolError(fmt.Errorf("folder is required"))
		}

		cmd := commands.NewListBareCommand(deps.Session, deps.Scanner, folder)
		index, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		files := index.Files()
		if len(files) == 0 {
			return mcp.NewToolResultText("No unclassified PDFs found."), nil
		}
		var sb strings.Builder
		for i, f := range files {
			fmt.Fprintf(&sb, "%d  %s  %s\n", i+1, f.Name, f.ModifiedAt.Format(domain.TimeFormat))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the ToK classification codes as a tree."),
	)
}

func treeHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewTokTreeCommand(deps.TokStore)
		roots, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		var sb strings.Builder
		for _, root := range roots {
			renderTree(&sb, root)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, node *domain.TokNode) {
	fmt.Fprintf(sb, "%s%s %s\n", strings.Repeat("  ", node.Depth()), node.Code, node.Label)
	for _, child := range node.Children {
		renderTree(sb, child)
	}
}

// --- report ---

func reportTool() mcp.Tool {
	return mcp.NewTool("report",
		mcp.WithDescription("Scan the library for PDFs that already carry a ToK prefix and return the code/filename/title table."),
	)
}

func reportHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewPatternedScanCommand(deps.Session, deps.Scanner, "")
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(result.Files) == 0 {
			return mcp.NewToolResultText("No classified PDFs found."), nil
		}
		return mcp.NewToolResultText(report.FormatPatterned(result.Files)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
