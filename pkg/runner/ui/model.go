package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"checkli/pkg/app"
	"checkli/pkg/checklist"
	"checkli/pkg/store"
)

// noticeDelay is how long transient notifications stay on screen.
const noticeDelay = 3 * time.Second

type mode int

const (
	modeNormal mode = iota
	modeAdd
	modeNotes
	modeBulk
	modeCategory
	modeConfirm
)

type (
	noticeExpiredMsg struct{}
	storeChangedMsg  struct{ ev store.Event }
)

// Model contains the UI state backed by the Service.
type Model struct {
	svc *app.Service
	ctx context.Context

	mode mode

	items list.Model
	input textinput.Model
	paste textarea.Model

	// pending category deletion awaiting a y/N decision
	confirmCat  *checklist.Category
	confirmRefs int

	notice string

	events <-chan store.Event

	termWidth  int
	termHeight int
}

// New creates a UI model backed by the Service.
func New(ctx context.Context, svc *app.Service) Model {
	l := list.New([]list.Item{}, rowDelegate{}, 80, 20)
	l.Title = "Checklist"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Prompt = "> "

	ta := textarea.New()
	ta.Placeholder = "Paste one item per line"
	ta.SetHeight(8)

	m := Model{
		svc:   svc,
		ctx:   ctx,
		items: l,
		input: ti,
		paste: ta,
	}

	if events, err := svc.Watch(ctx); err == nil {
		m.events = events
	}

	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.waitForStore()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.items.SetSize(msg.Width, msg.Height-4)
		m.paste.SetWidth(msg.Width - 4)
		return m, nil

	case noticeExpiredMsg:
		m.notice = ""
		return m, nil

	case storeChangedMsg:
		m.svc.Reload(m.ctx)
		m.refresh()
		return m, m.waitForStore()

	case tea.KeyMsg:
		switch m.mode {
		case modeNormal:
			return m.updateNormal(msg)
		case modeAdd, modeNotes, modeCategory:
			return m.updateInput(msg)
		case modeBulk:
			return m.updateBulk(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		}
	}

	var cmd tea.Cmd
	m.items, cmd = m.items.Update(msg)
	return m, cmd
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "a":
		m.mode = modeAdd
		m.input.Placeholder = "New item"
		m.input.SetValue("")
		m.input.Focus()
		return m, nil

	case " ", "x", "enter":
		if item, ok := m.selected(); ok {
			if _, err := m.svc.ToggleItem(item.ID); err != nil {
				return m.showNotice(err.Error())
			}
			m.refresh()
		}
		return m, nil

	case "d":
		if item, ok := m.selected(); ok {
			if _, err := m.svc.DeleteItem(item.ID); err != nil {
				return m.showNotice(err.Error())
			}
			m.refresh()
		}
		return m, nil

	case "n":
		if item, ok := m.selected(); ok {
			m.mode = modeNotes
			m.input.Placeholder = "Notes (enter saves, empty clears, esc cancels)"
			m.input.SetValue(item.Notes)
			m.input.Focus()
		}
		return m, nil

	case "c":
		if item, ok := m.selected(); ok {
			next := m.nextCategory(item.CategoryID)
			if _, err := m.svc.SetCategoryForItem(item.ID, next); err != nil {
				return m.showNotice(err.Error())
			}
			m.refresh()
		}
		return m, nil

	case "C":
		m.mode = modeCategory
		m.input.Placeholder = "New category"
		m.input.SetValue("")
		m.input.Focus()
		return m, nil

	case "D":
		id, ok := m.svc.CategoryFilter().CategoryID()
		if !ok {
			return m.showNotice("scope the view to a category first (F)")
		}
		cat, found := m.svc.FindCategory(id)
		if !found {
			return m, nil
		}
		refs := m.svc.Counts().PerCategory[id]
		if refs == 0 {
			if _, err := m.svc.DeleteCategory(id, nil); err != nil {
				return m.showNotice(err.Error())
			}
			m.refresh()
			return m.showNotice(fmt.Sprintf("Deleted category %q", cat.Name))
		}
		m.mode = modeConfirm
		m.confirmCat = cat
		m.confirmRefs = refs
		return m, nil

	case "f":
		m.svc.SetStatusFilter(nextStatus(m.svc.StatusFilter()))
		m.refresh()
		return m, nil

	case "F":
		_ = m.svc.SetCategoryFilter(m.nextCategoryFilter())
		m.refresh()
		return m, nil

	case "r":
		m.svc.Reload(m.ctx)
		m.refresh()
		return m, nil

	case "b":
		m.mode = modeBulk
		m.paste.Reset()
		m.paste.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.items, cmd = m.items.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Cancel: the edit never reaches the Service, so "cancelled"
		// stays distinguishable from "cleared to empty".
		m.mode = modeNormal
		m.input.Blur()
		return m, nil

	case "enter":
		value := m.input.Value()
		prior := m.mode
		m.mode = modeNormal
		m.input.Blur()

		switch prior {
		case modeAdd:
			if _, err := m.svc.AddItem(value, nil); err != nil {
				return m.showNotice(err.Error())
			}
		case modeNotes:
			if item, ok := m.selected(); ok {
				if _, err := m.svc.SetNotes(item.ID, value); err != nil {
					return m.showNotice(err.Error())
				}
			}
		case modeCategory:
			if _, err := m.svc.AddCategory(value); err != nil {
				return m.showNotice(err.Error())
			}
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateBulk(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.paste.Blur()
		return m, nil

	case "ctrl+d":
		raw := m.paste.Value()
		m.mode = modeNormal
		m.paste.Blur()

		var scoped *int
		if id, ok := m.svc.CategoryFilter().CategoryID(); ok {
			scoped = &id
		}
		created, err := m.svc.BulkAdd(raw, scoped)
		if err != nil {
			return m.showNotice(err.Error())
		}
		m.refresh()
		if created == 0 {
			return m, nil
		}
		return m.showNotice(fmt.Sprintf("Added %d items successfully!", created))
	}

	var cmd tea.Cmd
	m.paste, cmd = m.paste.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cat := m.confirmCat
	m.mode = modeNormal
	m.confirmCat = nil
	m.confirmRefs = 0

	switch msg.String() {
	case "y", "Y":
		if cat == nil {
			return m, nil
		}
		deleted, err := m.svc.DeleteCategory(cat.ID, func(*checklist.Category, int) bool { return true })
		if err != nil {
			return m.showNotice(err.Error())
		}
		if deleted {
			m.refresh()
			return m.showNotice(fmt.Sprintf("Deleted category %q", cat.Name))
		}
	}
	return m, nil
}

// selected returns the item under the cursor.
func (m Model) selected() (*checklist.Item, bool) {
	row, ok := m.items.SelectedItem().(itemRow)
	if !ok {
		return nil, false
	}
	return row.item, true
}

// nextCategory cycles an item assignment: none, each category in
// creation order, back to none.
func (m Model) nextCategory(current *int) *int {
	cats := m.svc.Categories()
	if len(cats) == 0 {
		return nil
	}
	if current == nil {
		id := cats[0].ID
		return &id
	}
	for i, c := range cats {
		if c.ID == *current {
			if i+1 < len(cats) {
				id := cats[i+1].ID
				return &id
			}
			return nil
		}
	}
	id := cats[0].ID
	return &id
}

// nextCategoryFilter cycles the category filter: all, then each
// category in creation order.
func (m Model) nextCategoryFilter() checklist.CategoryFilter {
	cats := m.svc.Categories()
	if len(cats) == 0 {
		return checklist.CategoryAll
	}
	current, scoped := m.svc.CategoryFilter().CategoryID()
	if !scoped {
		return checklist.FilterForCategory(cats[0].ID)
	}
	for i, c := range cats {
		if c.ID == current {
			if i+1 < len(cats) {
				return checklist.FilterForCategory(cats[i+1].ID)
			}
			return checklist.CategoryAll
		}
	}
	return checklist.CategoryAll
}

func nextStatus(f checklist.StatusFilter) checklist.StatusFilter {
	switch f {
	case checklist.StatusAll:
		return checklist.StatusUnchecked
	case checklist.StatusUnchecked:
		return checklist.StatusChecked
	}
	return checklist.StatusAll
}

func (m Model) showNotice(text string) (tea.Model, tea.Cmd) {
	m.notice = text
	return m, tea.Tick(noticeDelay, func(time.Time) tea.Msg {
		return noticeExpiredMsg{}
	})
}

func (m *Model) refresh() {
	visible := m.svc.Visible()
	rows := make([]list.Item, 0, len(visible))
	for _, item := range visible {
		row := itemRow{item: item}
		if item.CategoryID != nil {
			if cat, ok := m.svc.FindCategory(*item.CategoryID); ok {
				row.cat = cat
			}
		}
		rows = append(rows, row)
	}
	m.items.SetItems(rows)
}

func (m Model) waitForStore() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return storeChangedMsg{ev: ev}
	}
}
