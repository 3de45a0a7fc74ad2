package tui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/amazer/internal/codec"
	"github.com/vovakirdan/amazer/internal/config"
	"github.com/vovakirdan/amazer/internal/core"
	"github.com/vovakirdan/amazer/internal/storage"
)

// runCommand executes one command line entered after ':'.
//
//	size WxH              change the area size
//	generator SPEC        change the generator, e.g. rooms:room_placement_attempts=40
//	modifiers SPEC;SPEC   replace the modifiers, "none" clears them
//	seed N                regenerate with a fixed seed, 0 picks a new one
//	save [name]           save the current area
//	save-config [name]    save the current config
//	quit
func (m SessionModel) runCommand(line string) (tea.Model, tea.Cmd) {
	line = strings.TrimSpace(line)
	if line == "" {
		return m, nil
	}
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "size":
		size, err := core.ParseSize(arg)
		if err != nil {
			return m.fail(err)
		}
		m.cfg.Size = size

	case "generator", "gen", "g":
		gen, err := config.ParseGenerator(arg)
		if err != nil {
			return m.fail(err)
		}
		m.cfg.Generator = gen

	case "modifiers", "mods", "m":
		if arg == "" || strings.EqualFold(arg, "none") {
			m.cfg.Modifiers = nil
			break
		}
		mods, err := config.ParseModifiers(arg)
		if err != nil {
			return m.fail(err)
		}
		m.cfg.Modifiers = mods

	case "seed":
		seed, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return m.fail(fmt.Errorf("invalid seed %q", arg))
		}
		m.cfg.Seed = seed

	case "save", "w":
		return m.save(arg)

	case "save-config":
		return m.saveConfig(arg)

	case "quit", "q":
		m.quitting = true
		return m, tea.Quit

	default:
		return m.fail(fmt.Errorf("unknown command %q", name))
	}

	cmd := m.generate()
	return m, cmd
}

func (m SessionModel) fail(err error) (tea.Model, tea.Cmd) {
	cmd := m.setStatus(err.Error(), true)
	return m, cmd
}

// defaultName names saved files and records after the current area.
func (m SessionModel) defaultName() string {
	cfg := m.result.Config
	name := fmt.Sprintf("%s-%d", cfg.Generator.Name, cfg.Seed)
	if m.opts.Username != "" {
		name = m.opts.Username + "-" + name
	}
	return name
}

// save writes the current area to the session directory and archives it.
func (m SessionModel) save(name string) (tea.Model, tea.Cmd) {
	if m.result == nil {
		return m.fail(fmt.Errorf("nothing to save yet"))
	}
	if m.opts.Dir == "" && m.opts.Store == nil {
		return m.fail(fmt.Errorf("saving is not available in this session"))
	}
	if name == "" {
		name = m.defaultName()
	}
	name = filepath.Base(name)

	var done []string
	if m.opts.Dir != "" {
		path := filepath.Join(m.opts.Dir, name)
		if filepath.Ext(path) == "" {
			path += m.opts.Format.Extension()
		}
		if err := codec.WriteFile(path, m.result.Area, m.opts.Format); err != nil {
			return m.fail(err)
		}
		done = append(done, "saved "+path)
	}
	if m.opts.Store != nil {
		rec, err := storage.NewAreaRecord(name, m.result.Config, m.result.Area)
		if err != nil {
			return m.fail(err)
		}
		id, err := m.opts.Store.SaveArea(rec)
		if err != nil {
			return m.fail(err)
		}
		done = append(done, fmt.Sprintf("archived #%d", id))
	}

	m.opts.Logger.Info("area saved", "user", m.opts.Username, "name", name)
	cmd := m.setStatus(strings.Join(done, ", "), false)
	return m, cmd
}

// saveConfig writes the config of the current area to the session directory.
func (m SessionModel) saveConfig(name string) (tea.Model, tea.Cmd) {
	if m.result == nil {
		return m.fail(fmt.Errorf("nothing to save yet"))
	}
	if m.opts.Dir == "" {
		return m.fail(fmt.Errorf("saving configs is not available in this session"))
	}
	if name == "" {
		name = m.defaultName()
	}
	path := filepath.Join(m.opts.Dir, filepath.Base(name))
	if filepath.Ext(path) == "" {
		path += ".yaml"
	}
	if err := config.Save(path, m.result.Config); err != nil {
		return m.fail(err)
	}
	cmd := m.setStatus("saved "+path, false)
	return m, cmd
}
