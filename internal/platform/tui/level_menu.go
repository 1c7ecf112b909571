package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okurenko/conduit/internal/levels"
	"github.com/okurenko/conduit/internal/storage"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	menuActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	menuDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	menuSolvedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))
)

// levelMenuItem is one selectable level row.
type levelMenuItem struct {
	ID        string
	Name      string
	Size      string
	Completed bool
	BestMoves int
}

// LevelMenuModel is the Bubble Tea model for the level picker.
type LevelMenuModel struct {
	items        []levelMenuItem
	cursor       int
	width        int
	height       int
	keyMapper    *KeyMapper
	selected     string // level ID, set when user picks a level
	openProgress bool
	quitting     bool
	backing      bool
	scrollOffset int
}

// NewLevelMenuModel builds the level picker from the loader and progress store.
// The store may be nil, in which case completion markers are omitted.
func NewLevelMenuModel(store *storage.Store, levelsDir string, width, height int) LevelMenuModel {
	loader := levels.NewLoader(levelsDir)
	all, err := loader.LoadAll()

	items := make([]levelMenuItem, 0, len(all))
	if err == nil {
		for _, lvl := range all {
			item := levelMenuItem{
				ID:   lvl.ID,
				Name: lvl.Name,
				Size: fmt.Sprintf("%dx%d %s", lvl.Width, lvl.Height, lvl.Topology),
			}
			if store != nil {
				if done, cErr := store.Completed(lvl.ID); cErr == nil && done {
					item.Completed = true
					if best, ok, bErr := store.BestMoves(lvl.ID); bErr == nil && ok {
						item.BestMoves = best
					}
				}
			}
			items = append(items, item)
		}
	}

	return LevelMenuModel{
		items:     items,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionBack:
		m.backing = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
			m.updateScroll()
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			m.selected = m.items[m.cursor].ID
			return m, tea.Quit
		}

	case MenuActionProgress:
		m.openProgress = true
		return m, tea.Quit
	}

	return m, nil
}

// updateScroll adjusts the scroll offset to keep the cursor visible.
func (m *LevelMenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

func (m LevelMenuModel) visibleItems() int {
	visible := m.height - 10
	if visible < 3 {
		visible = 3
	}
	return visible
}

// View renders the level list.
func (m LevelMenuModel) View() string {
	if m.quitting || m.backing {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("C O N D U I T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("Select a level"), m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText(menuDimStyle.Render("No levels found."), m.width))
		b.WriteString("\n")
	}

	visible := m.visibleItems()
	endIdx := m.scrollOffset + visible
	if endIdx > len(m.items) {
		endIdx = len(m.items)
	}

	for i := m.scrollOffset; i < endIdx; i++ {
		item := m.items[i]

		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = menuActiveStyle
		}

		mark := "   "
		if item.Completed {
			mark = menuSolvedStyle.Render(" ✓ ")
			if item.BestMoves > 0 {
				mark = menuSolvedStyle.Render(fmt.Sprintf(" ✓ best %d", item.BestMoves))
			}
		}

		line := style.Render(fmt.Sprintf("%s%-24s %-14s", cursor, item.Name, item.Size)) + mark
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Scroll indicators
	if m.scrollOffset > 0 {
		b.WriteString(centerText(menuDimStyle.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	if endIdx < len(m.items) {
		b.WriteString(centerText(menuDimStyle.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := menuDimStyle.Render("Up/Down: Navigate | Enter: Play | Tab: Progress | Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the picked level ID, or empty if none was picked.
func (m LevelMenuModel) Selected() string {
	return m.selected
}

// OpensProgress reports whether the user asked for the progress view.
func (m LevelMenuModel) OpensProgress() bool {
	return m.openProgress
}

// IsQuitting reports whether the user asked to quit entirely.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// IsBacking reports whether the user backed out of the menu.
func (m LevelMenuModel) IsBacking() bool {
	return m.backing
}

// centerText centers a line of text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// RunLevelMenu shows the level picker and returns the chosen level ID.
// An empty ID with wantProgress false means the user quit.
func RunLevelMenu(store *storage.Store, levelsDir string, width, height int) (levelID string, wantProgress bool, err error) {
	model := NewLevelMenuModel(store, levelsDir, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok {
		return "", false, nil
	}
	return m.Selected(), m.OpensProgress(), nil
}
