package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tokdex/internal/application/commands"
)

// RegisterWriteTools adds all mutating library tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, deps Deps) {
	s.AddTool(scanTool(), scanHandler(deps))
	s.AddTool(applyPrefixTool(), applyPrefixHandler(deps))
	s.AddTool(renameFileTool(), renameFileHandler(deps))
	s.AddTool(tokAddTool(), tokAddHandler(deps))
	s.AddTool(tokEditTool(), tokEditHandler(deps))
	s.AddTool(tokDeleteTool(), tokDeleteHandler(deps))
}

// --- scan ---

func scanTool() mcp.Tool {
	return mcp.NewTool("scan",
		mcp.WithDescription("Scan the whole library, diff against the previous snapshot, and save a new snapshot when anything changed. The old snapshot is backed up first."),
		mcp.WithBoolean("all",
			mcp.Description("Include every file instead of only duplicated sizes"),
		),
	)
}

func scanHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		all := req.GetBool("all", false)

		cmd := commands.NewScanCommand(deps.Session, deps.Scanner, deps.CatalogStore, !all)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, change := range result.Diff.Changes {
			sb.WriteString(change.String())
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "Scanned %d files, %d with a duplicated size.\n", result.TotalFiles, result.DuplicateFiles)
		if result.Save != nil {
			fmt.Fprintf(&sb, "Snapshot saved to %s", result.Save.WrittenPath)
			if result.Save.BackupPath != "" {
				fmt.Fprintf(&sb, " (previous backed up to %s)", result.Save.BackupPath)
			}
			sb.WriteByte('\n')
		} else {
			sb.WriteString("No changes, snapshot left untouched.\n")
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- apply_prefix ---

func applyPrefixTool() mcp.Tool {
	return mcp.NewTool("apply_prefix",
		mcp.WithDescription("Apply a ToK code to an unclassified PDF, addressed by its list_bare row number. The folder is re-listed first so the row matches current disk state."),
		mcp.WithString("folder",
			mcp.Description("Folder holding the bare files"),
			mcp.Required(),
		),
		mcp.WithNumber("index",
			mcp.Description("1-based row number from list_bare"),
			mcp.Required(),
		),
		mcp.WithString("code",
			mcp.Description("ToK code without spaces (e.g. AB)"),
			mcp.Required(),
		),
	)
}

func applyPrefixHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		folder := req.GetString("folder", "")
		index := req.GetInt("index", 0)
		code := req.GetString("code", "")

		if err := refreshBareListing(ctx, deps, folder); err != nil {
			return toolError(err)
		}
		cmd := commands.NewApplyPrefixCommand(deps.Session, deps.Renamer, index, code)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- rename_file ---

func renameFileTool() mcp.Tool {
	return mcp.NewTool("rename_file",
		mcp.WithDescription("Rename an unclassified PDF to an exact new filename, addressed by its list_bare row number. Refuses to overwrite an existing file."),
		mcp.WithString("folder",
			mcp.Description("Folder holding the bare files"),
			mcp.Required(),
		),
		mcp.WithNumber("index",
			mcp.Description("1-based row number from list_bare"),
			mcp.Required(),
		),
		mcp.WithString("new_name",
			mcp.Description("New filename"),
			mcp.Required(),
		),
	)
}

func renameFileHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		folder := req.GetString("folder", "")
		index := req.GetInt("index", 0)
		newName := req.GetString("new_name", "")

		if err := refreshBareListing(ctx, deps, folder); err != nil {
			return toolError(err)
		}
		cmd := commands.NewRenameCommand(deps.Session, deps.Renamer, index, newName)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

func refreshBareListing(ctx context.Context, deps Deps, folder string) error {
	if folder == "" {
		return fmt.Errorf("folder is required")
	}
	_, err := commands.NewListBareCommand(deps.Session, deps.Scanner, folder).Execute(ctx)
	return err
}

// --- tok_add ---

func tokAddTool() mcp.Tool {
	return mcp.NewTool("tok_add",
		mcp.WithDescription("Add an entry to the ToK classification document."),
		mcp.WithString("code",
			mcp.Description("Classification code (e.g. AB)"),
			mcp.Required(),
		),
		mcp.WithString("label",
			mcp.Description("Human-readable label for the code"),
			mcp.Required(),
		),
	)
}

func tokAddHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		code := req.GetString("code", "")
		label := req.GetString("label", "")

		cmd := commands.NewTokAddCommand(deps.TokStore, code, label)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- tok_edit ---

func tokEditTool() mcp.Tool {
	return mcp.NewTool("tok_edit",
		mcp.WithDescription("Edit a ToK entry, addressed by its current code."),
		mcp.WithString("code",
			mcp.Description("Current classification code"),
			mcp.Required(),
		),
		mcp.WithString("new_code",
			mcp.Description("New classification code"),
			mcp.Required(),
		),
		mcp.WithString("new_label",
			mcp.Description("New label"),
			mcp.Required(),
		),
	)
}

func tokEditHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		code := req.GetString("code", "")
		newCode := req.GetString("new_code", "")
		newLabel := req.GetString("new_label", "")

		cmd := commands.NewTokUpdateCommand(deps.TokStore, code, newCode, newLabel)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- tok_delete ---

func tokDeleteTool() mcp.Tool {
	return mcp.NewTool("tok_delete",
		mcp.WithDescription("Delete a ToK entry by its code."),
		mcp.WithString("code",
			mcp.Description("Classification code to delete"),
			mcp.Required(),
		),
	)
}

func tokDeleteHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		code := req.GetString("code", "")

		cmd := commands.NewTokDeleteCommand(deps.TokStore, code)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
