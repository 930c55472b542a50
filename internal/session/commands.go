package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"plexiterm/internal/contextstore"
	"plexiterm/internal/fsutil"
	"plexiterm/internal/navigator"
	"plexiterm/internal/paste"
	"plexiterm/internal/shellexec"
)

// handleFSCommand routes the filesystem commands to the navigator and
// renders the results. ls/cd/tree take an optional path; cat requires one.
func (s *Session) handleFSCommand(cmd string, args []string) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	switch cmd {
	case "ls":
		entries, err := s.nav.Ls(arg)
		if err != nil {
			s.ui.WriteWarning(fmt.Sprintf("ls: %v", err))
			return
		}
		s.ui.WriteMessage(formatListing(entries))

	case "cd":
		if _, err := s.nav.Cd(arg); err != nil {
			s.ui.WriteWarning(fmt.Sprintf("cd: %v", err))
			return
		}
		s.ui.WriteMessage(s.nav.RelPath())

	case "pwd":
		s.ui.WriteMessage(s.nav.Pwd())

	case "cat":
		if arg == "" {
			s.ui.WriteWarning("Usage: cat <filename>")
			return
		}
		view, err := s.nav.Cat(arg)
		if err != nil {
			s.ui.WriteWarning(fmt.Sprintf("cat: %v", err))
			return
		}
		s.ui.WriteMessage(formatFileView(view.Name, view.Content, view.Language))

	case "tree":
		out, err := s.nav.Tree(arg)
		if err != nil {
			s.ui.WriteWarning(fmt.Sprintf("tree: %v", err))
			return
		}
		s.ui.WriteMessage(fence("", out))
	}
}

// handleContextCommand routes the @-prefixed context commands to the store.
func (s *Session) handleContextCommand(cmd string, args []string) {
	switch cmd {
	case "@add":
		if len(args) == 0 {
			s.ui.WriteWarning("Usage: @add <pattern> (example: @add *.py)")
			return
		}
		s.addToContext(strings.Join(args, " "))

	case "@remove":
		if len(args) == 0 {
			s.ui.WriteWarning("Usage: @remove <pattern> (example: @remove *.py or @remove paste_001)")
			return
		}
		s.removeFromContext(strings.Join(args, " "))

	case "@list", "@ls":
		s.ui.WriteMessage(formatContextListing(s.store.List()))

	case "@clear":
		files, pastes := s.store.ClearAll()
		s.ui.WriteMessage(fmt.Sprintf("Cleared %d item(s) from context (%d files, %d pastes)",
			files+pastes, files, pastes))

	default:
		s.ui.WriteWarning(fmt.Sprintf("Unknown command: %s (available: @add, @remove, @list, @clear)", cmd))
	}
}

// addToContext expands pattern through the store and reports the outcome,
// one warning per skipped file and one aggregate line for denied paths.
func (s *Session) addToContext(pattern string) {
	report, err := s.store.AddFiles(pattern, s.nav.CurrentDir())
	if err != nil {
		s.ui.WriteWarning(err.Error())
		return
	}

	for _, skipped := range report.Skipped {
		s.ui.WriteWarning(fmt.Sprintf("Skipped %s: %v", skipped.Path, skipped.Reason))
	}
	if report.AccessDenied > 0 {
		s.ui.WriteWarning(fmt.Sprintf("%d path(s) denied: outside home directory", report.AccessDenied))
	}

	if report.Added == 0 {
		s.ui.WriteWarning(fmt.Sprintf("No files added: %s", pattern))
		return
	}
	s.ui.WriteMessage(fmt.Sprintf("Added %d file(s) to context", report.Added))
}

// removeFromContext removes a paste by ID or file entries by pattern.
func (s *Session) removeFromContext(pattern string) {
	if strings.HasPrefix(pattern, "paste_") {
		if s.store.RemovePaste(pattern) {
			s.ui.WriteMessage(fmt.Sprintf("Removed %s from context", pattern))
		} else {
			s.ui.WriteWarning(fmt.Sprintf("Paste not found: %s", pattern))
		}
		return
	}

	removed := s.store.RemoveFiles(pattern)
	if removed == 0 {
		s.ui.WriteWarning(fmt.Sprintf("No matching files: %s", pattern))
		return
	}
	s.ui.WriteMessage(fmt.Sprintf("Removed %d file(s) from context", removed))
}

// handleShell runs a !-prefixed command through the shell executor.
func (s *Session) handleShell(ctx context.Context, command string) error {
	if command == "" {
		s.ui.WriteWarning("Usage: !<command>")
		return nil
	}

	s.ui.WriteStatus("thinking", "Running command")
	result, err := s.exec.Run(ctx, command)
	s.ui.WriteStatus("", "")

	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, shellexec.ErrTimeout) {
			s.ui.WriteWarning(err.Error())
			return nil
		}
		s.ui.WriteWarning(fmt.Sprintf("command failed: %v", err))
		return nil
	}

	if out := formatShellOutput(result); out != "" {
		s.ui.WriteMessage(out)
	}
	if result.Truncated {
		s.ui.WriteWarning("(output truncated)")
	}
	if result.ExitCode != 0 {
		s.ui.WriteWarning(fmt.Sprintf("Exit code: %d", result.ExitCode))
	}
	return nil
}

// -- Rendering helpers --

func pastePrompt(stats paste.Stats, preview string) string {
	return fmt.Sprintf("Paste detected (%d lines, %s)\n\n%s", stats.Lines, stats.Size, preview)
}

func addedPasteMessage(entry *contextstore.PasteEntry) string {
	return fmt.Sprintf("Added %s to context (%d lines, %s)",
		entry.ID, entry.LineCount, fsutil.FormatSize(int64(entry.ByteSize)))
}

// formatListing renders an ls result as a fenced block, one entry per line,
// directories marked with a trailing slash and files with their size.
func formatListing(entries []navigator.Entry) string {
	if len(entries) == 0 {
		return "(empty)"
	}

	var b strings.Builder
	for _, entry := range entries {
		if entry.IsDir {
			fmt.Fprintf(&b, "%s/\n", entry.Name)
			continue
		}
		fmt.Fprintf(&b, "%s (%s)\n", entry.Name, fsutil.FormatSize(entry.Size))
	}
	return fence("", b.String())
}

// formatFileView renders a file as a fenced code block so the markdown
// renderer can highlight it.
func formatFileView(name, content, language string) string {
	return name + "\n" + fence(language, content)
}

// formatContextListing renders the @list summary.
func formatContextListing(summary contextstore.Summary) string {
	if summary.TotalItems == 0 {
		return "Context is empty."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Context: %d item(s), %s total\n",
		summary.TotalItems, fsutil.FormatSize(summary.TotalBytes))

	for _, file := range summary.Files {
		fmt.Fprintf(&b, "  %s (%s)", file.DisplayPath, fsutil.FormatSize(file.ByteSize))
		if file.Missing {
			b.WriteString(" [missing]")
		}
		b.WriteString("\n")
	}
	for _, entry := range summary.Pastes {
		fmt.Fprintf(&b, "  %s: %d lines, %s, added %s\n",
			entry.ID, entry.LineCount, fsutil.FormatSize(int64(entry.ByteSize)), entry.Age)
	}
	return fence("", b.String())
}

func formatShellOutput(result *shellexec.Result) string {
	var parts []string
	if result.Stdout != "" {
		parts = append(parts, result.Stdout)
	}
	if result.Stderr != "" {
		parts = append(parts, result.Stderr)
	}
	if len(parts) == 0 {
		return ""
	}
	return fence("", strings.Join(parts, "\n"))
}

// fence wraps content in a markdown code fence with an optional language tag.
func fence(language, content string) string {
	content = strings.TrimRight(content, "\n")
	return "```" + language + "\n" + content + "\n```"
}
