// Package app contains the root application model.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sergi/go-diff/diffmatchpatch"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/quill/internal/buffer"
	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/keys"
	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/sessions/domain"
	"github.com/zjrosen/quill/internal/styles"
	"github.com/zjrosen/quill/internal/syntax"
	"github.com/zjrosen/quill/internal/tracing"
	"github.com/zjrosen/quill/internal/ui/editor"
	"github.com/zjrosen/quill/internal/ui/help"
	"github.com/zjrosen/quill/internal/watcher"
)

// themeCycle is the order Ctrl+T rotates through the built-in presets.
var themeCycle = []string{"default", "light", "catppuccin-mocha"}

// Config carries everything the application model needs at startup.
type Config struct {
	// Path is the file to edit, as given on the command line.
	Path string

	// ConfigPath is the user config file theme changes are persisted to.
	// Empty disables persistence.
	ConfigPath string

	UserConfig config.Config

	// Sessions restores and saves per-file cursor state. Optional.
	Sessions domain.EditSessionRepository

	// Tracer emits spans around file and session operations. Optional;
	// nil means tracing is off.
	Tracer *tracing.Provider
}

// fileChangedMsg signals a debounced on-disk change of the open file.
type fileChangedMsg struct{}

// Model is the root application state.
type Model struct {
	cfg     Config
	absPath string

	editor   editor.Model
	helpView help.Model
	showHelp bool

	width  int
	height int

	session *domain.EditSession

	watcherHandle *watcher.Watcher
	changes       <-chan struct{}
}

// New loads the file, restores any saved session and assembles the model.
func New(cfg Config) (Model, error) {
	if cfg.Tracer == nil {
		cfg.Tracer, _ = tracing.NewProvider(tracing.DefaultConfig())
	}

	absPath, err := filepath.Abs(cfg.Path)
	if err != nil {
		return Model{}, fmt.Errorf("resolving path: %w", err)
	}

	ctx, span := cfg.Tracer.Tracer().Start(context.Background(), tracing.SpanFileLoad,
		trace.WithAttributes(attribute.String(tracing.AttrFilePath, absPath)))
	content, err := readFileOrEmpty(cfg.Path)
	span.End()
	if err != nil {
		return Model{}, err
	}

	language := cfg.UserConfig.Language
	if language == "" {
		language = syntax.DetectLanguage(cfg.Path)
	}

	theme, err := styles.ApplyTheme(cfg.UserConfig.Theme.Styles())
	if err != nil {
		return Model{}, err
	}

	m := Model{
		cfg:      cfg,
		absPath:  absPath,
		helpView: help.New(),
	}

	restoredOffset := 0
	if cfg.Sessions != nil {
		_, span := cfg.Tracer.Tracer().Start(ctx, tracing.SpanSessionLoad,
			trace.WithAttributes(attribute.String(tracing.AttrFilePath, absPath)))
		m.session, language, theme = restoreSession(cfg, absPath, language, theme)
		span.End()
		if m.session != nil {
			restoredOffset = m.session.Offset()
		}
	}

	buf := buffer.FromText(content, cfg.Path)
	m.editor = editor.New(buf, language, theme, editor.Options{
		TabWidth:        cfg.UserConfig.Editor.TabWidth,
		ShowLineNumbers: cfg.UserConfig.Editor.ShowLineNumbers,
	}).SetCursorOffset(restoredOffset)

	if cfg.UserConfig.Editor.AutoReload {
		w, err := watcher.New(watcher.Config{
			Path:        absPath,
			DebounceDur: cfg.UserConfig.Editor.AutoReloadDebounce,
		})
		if err != nil {
			log.Warn(log.CatWatcher, "Auto-reload unavailable", "error", err)
		} else if changes, err := w.Start(); err != nil {
			log.Warn(log.CatWatcher, "Auto-reload unavailable", "error", err)
			_ = w.Stop()
		} else {
			m.watcherHandle = w
			m.changes = changes
		}
	}

	return m, nil
}

func readFileOrEmpty(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- the user names the file to edit
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// restoreSession looks up the saved session for a path. A saved language or
// theme only applies when the user config does not pin one itself.
func restoreSession(cfg Config, absPath, language string, theme styles.Theme) (*domain.EditSession, string, styles.Theme) {
	session, err := cfg.Sessions.FindByPath(absPath)
	if err != nil {
		var notFound *domain.EditSessionNotFoundError
		if !errors.As(err, &notFound) {
			log.ErrorErr(log.CatSession, "Session lookup failed", err, "path", absPath)
			return nil, language, theme
		}
		return domain.NewEditSession(uuid.NewString(), absPath), language, theme
	}

	log.Debug(log.CatSession, "Restored session", "path", absPath, "offset", session.Offset())

	if cfg.UserConfig.Language == "" && session.Language() != "" {
		language = session.Language()
	}
	if cfg.UserConfig.Theme.Preset == "" && session.Theme() != "" {
		if restored, ok := styles.FromPreset(session.Theme()); ok {
			theme = restored
		}
	}
	return session, language, theme
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.changes != nil {
		return waitForChange(m.changes)
	}
	return nil
}

func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor = m.editor.SetSize(msg.Width, msg.Height)
		m.helpView = m.helpView.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		if m.showHelp {
			return m, nil
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd

	case fileChangedMsg:
		if m.cfg.UserConfig.Editor.AutoReload && !m.editor.Buffer().IsModified() {
			m = m.reloadFromDisk()
		} else {
			log.Debug(log.CatWatcher, "Ignoring on-disk change", "modified", m.editor.Buffer().IsModified())
		}
		return m, waitForChange(m.changes)
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := keys.Editor

	if m.showHelp {
		if key.Matches(msg, km.Help) || msg.Type == tea.KeyEsc {
			m.showHelp = false
		}
		if key.Matches(msg, km.Quit) {
			return m.quit()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, km.Quit):
		return m.quit()
	case key.Matches(msg, km.Save):
		return m.saveFile(), nil
	case key.Matches(msg, km.Reload):
		return m.reloadFromDisk(), nil
	case key.Matches(msg, km.CycleTheme):
		return m.cycleTheme(), nil
	case key.Matches(msg, km.Help):
		m.showHelp = true
		return m, nil
	}

	if m.cfg.Tracer.Enabled() {
		_, span := m.cfg.Tracer.Tracer().Start(context.Background(), tracing.SpanBufferEdit,
			trace.WithAttributes(
				attribute.String(tracing.AttrFilePath, m.absPath),
				attribute.Int(tracing.AttrEditOffset, m.editor.Position().Offset),
			))
		defer span.End()
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.persistSession()
	if m.watcherHandle != nil {
		if err := m.watcherHandle.Stop(); err != nil {
			log.ErrorErr(log.CatWatcher, "Watcher stop failed", err)
		}
	}
	return m, tea.Quit
}

func (m Model) saveFile() Model {
	text := m.editor.Buffer().Text()

	_, span := m.cfg.Tracer.Tracer().Start(context.Background(), tracing.SpanFileSave,
		trace.WithAttributes(
			attribute.String(tracing.AttrFilePath, m.absPath),
			attribute.Int(tracing.AttrBufferLength, m.editor.Buffer().Len()),
			attribute.Int(tracing.AttrBufferLines, m.editor.Buffer().LineCount()),
		))
	err := os.WriteFile(m.cfg.Path, []byte(text), 0o644) // #nosec G306 -- source files are not secrets
	span.End()

	if err != nil {
		log.ErrorErr(log.CatUI, "Save failed", err, "path", m.cfg.Path)
		m.editor = m.editor.SetStatusMessage("save failed: " + err.Error())
		return m
	}

	log.Info(log.CatUI, "Saved file", "path", m.cfg.Path, "bytes", len(text))
	m.editor = m.editor.SetBuffer(buffer.FromText(text, m.cfg.Path)).SetStatusMessage("saved")
	m.persistSession()
	return m
}

// reloadFromDisk replaces the buffer with the on-disk content. The cursor
// is carried across the change by diffing old against new text, so edits
// made elsewhere in the file do not teleport it.
func (m Model) reloadFromDisk() Model {
	_, span := m.cfg.Tracer.Tracer().Start(context.Background(), tracing.SpanFileReload,
		trace.WithAttributes(attribute.String(tracing.AttrFilePath, m.absPath)))
	defer span.End()

	content, err := readFileOrEmpty(m.cfg.Path)
	if err != nil {
		log.ErrorErr(log.CatWatcher, "Reload failed", err, "path", m.cfg.Path)
		m.editor = m.editor.SetStatusMessage("reload failed: " + err.Error())
		return m
	}

	oldText := m.editor.Buffer().Text()
	if content == oldText && !m.editor.Buffer().IsModified() {
		return m
	}

	cursor := diffAdjustedCursor(oldText, content, m.editor.Position().Offset)
	m.editor = m.editor.
		SetBuffer(buffer.FromText(content, m.cfg.Path)).
		SetCursorOffset(cursor).
		SetStatusMessage("reloaded")

	log.Info(log.CatWatcher, "Reloaded from disk", "path", m.cfg.Path, "cursor", cursor)
	return m
}

// diffAdjustedCursor maps a rune offset in oldText to the corresponding
// offset in newText. A cursor inside a deleted region collapses to the
// deletion point.
func diffAdjustedCursor(oldText, newText string, cursor int) int {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)

	oldPos, newPos := 0, 0
	for _, d := range diffs {
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			if cursor <= oldPos+n {
				return newPos + (cursor - oldPos)
			}
			oldPos += n
			newPos += n
		case diffmatchpatch.DiffDelete:
			if cursor <= oldPos+n {
				return newPos
			}
			oldPos += n
		case diffmatchpatch.DiffInsert:
			newPos += n
		}
	}
	return newPos
}

func (m Model) cycleTheme() Model {
	current := m.editor.Theme().Name
	next := themeCycle[0]
	for i, name := range themeCycle {
		if name == current {
			next = themeCycle[(i+1)%len(themeCycle)]
			break
		}
	}

	theme, ok := styles.FromPreset(next)
	if !ok {
		return m
	}
	m.editor = m.editor.SetTheme(theme).SetStatusMessage("theme: " + next)
	log.Info(log.CatUI, "Theme changed", "theme", next)

	if m.cfg.ConfigPath != "" {
		if err := config.SaveThemePreset(m.cfg.ConfigPath, next); err != nil {
			log.Warn(log.CatConfig, "Failed to persist theme", "error", err)
		}
	}
	return m
}

func (m Model) persistSession() {
	if m.session == nil || m.cfg.Sessions == nil {
		return
	}

	pos := m.editor.Position()
	m.session.SetCursor(pos.Offset, pos.Line, pos.Column)
	m.session.SetLanguage(m.editor.Language())
	m.session.SetTheme(m.editor.Theme().Name)

	_, span := m.cfg.Tracer.Tracer().Start(context.Background(), tracing.SpanSessionSave,
		trace.WithAttributes(
			attribute.String(tracing.AttrFilePath, m.absPath),
			attribute.String(tracing.AttrSessionGUID, m.session.GUID()),
		))
	err := m.cfg.Sessions.Save(m.session)
	span.End()

	if err != nil {
		log.ErrorErr(log.CatSession, "Session save failed", err, "path", m.absPath)
		return
	}
	log.Debug(log.CatSession, "Session saved", "path", m.absPath, "offset", pos.Offset)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.helpView.Overlay(m.editor.View())
	}
	return m.editor.View()
}
