package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

// Values that keep what the loaded configuration says.
const (
	keepCustom = "custom"
	keepConfig = "config"
)

// setupOption is one row of choices cycled with left/right.
type setupOption struct {
	label  string
	values []string
	index  int
}

func (o setupOption) value() string {
	return o.values[o.index]
}

func (o *setupOption) cycle(delta int) {
	n := len(o.values)
	o.index = ((o.index+delta)%n + n) % n
}

// Option rows, followed by the action rows.
const (
	optMode = iota
	optSize
	optSlide
	optSpeed
	optCount
)

var setupActions = []string{"Play", "High scores", "Quit"}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuBestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// SetupModel is the pre-game menu: mode, board size, slide preset and
// speed, then play, scores or quit.
type SetupModel struct {
	base        config.BlocksConfig
	options     []setupOption
	best        map[string]int
	cursor      int
	width       int
	height      int
	keys        MenuKeyMap
	help        help.Model
	selected    bool
	wantsScores bool
	quitting    bool
}

// NewSetupModel creates a menu preset to base. store may be nil.
func NewSetupModel(base config.BlocksConfig, store *storage.Store, width, height int) SetupModel {
	modes := make([]string, len(engine.Modes))
	for i, m := range engine.Modes {
		modes[i] = m.String()
	}
	mode, _ := base.EngineMode()

	sizes := make([]string, 0, len(engine.BoardSizes)+1)
	if base.Board.Width > 0 && base.Board.Height > 0 {
		sizes = append(sizes, keepCustom)
	}
	for _, s := range engine.BoardSizes {
		sizes = append(sizes, s.Name)
	}

	slides := engine.SlidePresetNames()
	if len(base.Slide.Attempts) > 0 || base.Slide.MaxDistance > 0 {
		slides = append([]string{keepCustom}, slides...)
	}

	speeds := []string{keepConfig}
	for _, p := range config.DifficultyPresets {
		speeds = append(speeds, string(p))
	}

	options := []setupOption{
		optMode:  {label: "Mode", values: modes, index: indexOf(modes, mode.String())},
		optSize:  {label: "Board", values: sizes, index: indexOf(sizes, base.Board.Size)},
		optSlide: {label: "Slide", values: slides, index: indexOf(slides, currentSlide(base))},
		optSpeed: {label: "Speed", values: speeds},
	}

	h := help.New()
	h.Width = width

	return SetupModel{
		base:    base,
		options: options,
		best:    loadBest(store),
		width:   width,
		height:  height,
		keys:    DefaultMenuKeyMap(),
		help:    h,
	}
}

// currentSlide names the preset base uses.
func currentSlide(base config.BlocksConfig) string {
	switch {
	case len(base.Slide.Attempts) > 0 || base.Slide.MaxDistance > 0:
		return keepCustom
	case !base.Slide.Enabled:
		return "disabled"
	default:
		return strings.ToLower(base.Slide.Preset)
	}
}

func loadBest(store *storage.Store) map[string]int {
	best := make(map[string]int)
	if store == nil {
		return best
	}
	stats, err := store.GetAllModesStats()
	if err != nil {
		return best
	}
	for mode, s := range stats {
		best[mode] = s.HighScore
	}
	return best
}

// indexOf returns the position of v in values, or 0.
func indexOf(values []string, v string) int {
	for i, s := range values {
		if strings.EqualFold(s, v) {
			return i
		}
	}
	return 0
}

// Init initializes the menu model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := optCount + len(setupActions)

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Scores):
		m.wantsScores = true

	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor - 1 + rows) % rows

	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % rows

	case key.Matches(msg, m.keys.Left):
		if m.cursor < optCount {
			m.options[m.cursor].cycle(-1)
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor < optCount {
			m.options[m.cursor].cycle(1)
		}

	case key.Matches(msg, m.keys.Select):
		switch m.cursor - optCount {
		case 0:
			m.selected = true
		case 1:
			m.wantsScores = true
		case 2:
			m.quitting = true
			return m, tea.Quit
		default:
			m.options[m.cursor].cycle(1)
		}
	}

	return m, nil
}

// Selection returns the chosen mode and the configuration to play it with.
func (m SetupModel) Selection() (engine.Mode, config.BlocksConfig) {
	cfg := m.base
	mode := engine.Modes[m.options[optMode].index]
	cfg.Mode = mode.ID()

	if size := m.options[optSize].value(); size != keepCustom {
		_ = config.ApplyBoardSize(&cfg, size)
	}
	if slide := m.options[optSlide].value(); slide != keepCustom {
		_ = config.ApplySlidePreset(&cfg, slide)
	}
	if speed := m.options[optSpeed].value(); speed != keepConfig {
		if preset, err := config.ParseDifficulty(speed); err == nil {
			config.ApplyDifficultyPreset(&cfg, preset)
		}
	}
	return mode, cfg
}

// View renders the menu.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("B L O C K S"), m.width))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		cursor := "  "
		value := fmt.Sprintf("  %s  ", opt.value())
		if i == m.cursor {
			cursor = menuCursorStyle.Render("> ")
			value = menuCursorStyle.Render(fmt.Sprintf("< %s >", opt.value()))
		}
		line := cursor + menuLabelStyle.Render(fmt.Sprintf("%-6s", opt.label)) + value
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	mode := engine.Modes[m.options[optMode].index]
	best := fmt.Sprintf("best %s score: %d", mode.String(), m.best[mode.ID()])
	b.WriteString("\n")
	b.WriteString(centerText(menuBestStyle.Render(best), m.width))
	b.WriteString("\n\n")

	for i, action := range setupActions {
		line := "  " + action
		if optCount+i == m.cursor {
			line = menuCursorStyle.Render("> " + action)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected reports whether the user chose Play.
func (m SetupModel) Selected() bool {
	return m.selected
}

// WantsScoreboard reports whether the user asked for the scoreboard.
func (m SetupModel) WantsScoreboard() bool {
	return m.wantsScores
}

// IsQuitting reports whether the user asked to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within width, measuring its printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
