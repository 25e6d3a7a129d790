package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ndhoang/shopfront/filter"
	"github.com/ndhoang/shopfront/notify"
	"github.com/ndhoang/shopfront/payment"
	"github.com/ndhoang/shopfront/types"
)

const panelWidth = 44

// Model is the root TUI model: the catalog listing, the filter bar and
// the checkout panel.
type Model struct {
	source types.CatalogSource
	queue  *notify.Queue

	list    list.Model
	panel   *Panel
	filters *FilterBar
	help    help.Model
	spinner spinner.Model
	toasts  toastStack

	// catalog is the immutable fetched listing; the list widget only ever
	// holds a derived view of it
	catalog  []types.Product
	criteria filter.Criteria
	// viewCriteria is the criteria the current list contents were derived
	// from; the view is recomputed only when criteria differs
	viewCriteria filter.Criteria
	viewBuilt    bool

	loading    bool
	err        error
	showFilter bool
	width      int
	height     int
}

// NewModel creates the root model with the injected catalog source and
// payment gateway.
func NewModel(source types.CatalogSource, gateway payment.Gateway) Model {
	queue := notify.NewQueue()

	l := list.New(nil, ProductDelegate{}, 0, 0)
	l.Title = "Shopfront"
	l.Styles.Title = TitleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(DraculaPink)

	return Model{
		source:   source,
		queue:    queue,
		list:     l,
		panel:    NewPanel(gateway, queue),
		filters:  NewFilterBar(),
		help:     help.New(),
		spinner:  sp,
		criteria: filter.DefaultCriteria(),
		loading:  true,
	}
}

// Init starts the catalog fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(fetchCatalog(m.source), m.spinner.Tick)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case tea.KeyMsg:
		model, cmd := m.handleKey(msg)
		return model, cmd

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case catalogMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.catalog = msg.products
			m.filters.SetCategories(m.catalog)
			m.viewBuilt = false
			m.refreshView()
		}

	case toastExpiredMsg:
		m.toasts.expire(msg.id)

	default:
		cmds = append(cmds, m.panel.Update(msg))
	}

	cmds = append(cmds, m.drainNotifications()...)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	var cmds []tea.Cmd
	switch {
	case m.panel.Opened():
		cmds = append(cmds, m.panel.Update(msg))
		if !m.panel.Opened() {
			m.resize() // give the panel's columns back to the list
		}

	case m.showFilter:
		switch msg.String() {
		case "f", "esc":
			m.showFilter = false
		default:
			if update, changed := m.filters.HandleKey(msg); changed {
				m.criteria = filter.Apply(m.criteria, update)
				m.refreshView()
			}
		}

	default:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "f":
			m.showFilter = true
		case "r":
			if c, ok := m.source.(interface{ ClearCache() }); ok {
				c.ClearCache()
			}
			m.loading = true
			cmds = append(cmds, fetchCatalog(m.source), m.spinner.Tick)
		case "?":
			m.help.ShowAll = !m.help.ShowAll
		case "enter":
			if item, ok := m.list.SelectedItem().(types.Product); ok {
				cmds = append(cmds, m.panel.Open(item))
				m.resize()
			}
		default:
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, m.drainNotifications()...)
	return m, tea.Batch(cmds...)
}

// refreshView rebuilds the list contents from the catalog, but only when
// the criteria actually changed since the last build.
func (m *Model) refreshView() {
	if m.viewBuilt && m.criteria == m.viewCriteria {
		return
	}
	view := filter.View(m.catalog, m.criteria)
	items := make([]list.Item, len(view))
	for i, p := range view {
		items[i] = p
	}
	m.list.SetItems(items)
	m.viewCriteria = m.criteria
	m.viewBuilt = true
}

func (m *Model) drainNotifications() []tea.Cmd {
	return m.toasts.push(m.queue.Drain())
}

func (m *Model) resize() {
	listWidth := m.width
	if m.panel.Opened() {
		listWidth = m.width - panelWidth
		if listWidth < 20 {
			listWidth = 20
		}
		m.panel.SetSize(panelWidth, m.height)
	}
	m.list.SetSize(listWidth, m.height-4)
	m.help.Width = m.width
}

// View renders the whole screen.
func (m Model) View() string {
	if m.loading {
		return "\n  " + m.spinner.View() + " loading catalog…\n"
	}
	if m.err != nil {
		return "\n  " + ErrorStyle.Render(fmt.Sprintf("could not load catalog: %v", m.err)) +
			"\n  " + StatusBarStyle.Render("r to retry • q to quit") + "\n"
	}

	var sections []string
	if m.showFilter {
		sections = append(sections, m.filters.View(), "")
	}

	main := m.list.View()
	if m.panel.Opened() {
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, m.panel.View())
	}
	sections = append(sections, main)

	if toasts := m.toasts.render(); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections, m.help.View(keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
