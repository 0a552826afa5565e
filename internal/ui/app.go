package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/pokeview/internal/favorites"
	"github.com/five82/pokeview/internal/pokemon"
	"github.com/five82/pokeview/internal/prefs"
	"github.com/five82/pokeview/internal/state"
)

// PageLoader loads one catalog page with its details.
type PageLoader interface {
	Load(ctx context.Context, pageIndex int) state.PageSnapshot
	PerPage() int
}

// DetailLoader loads one record for a route parameter.
type DetailLoader interface {
	Load(ctx context.Context, param string) state.DetailSnapshot
}

// FavoritesStore reads and toggles the persisted favorites set.
type FavoritesStore interface {
	Load(ctx context.Context) favorites.Set
	Toggle(ctx context.Context, set favorites.Set, id int) (favorites.Set, error)
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Pages     PageLoader
	Details   DetailLoader
	Favorites FavoritesStore
	Logger    *zap.Logger
	BaseURL   string
	ThemeName string
	PrefsPath string
	// StartRoute opens the viewer on a detail screen instead of the list.
	// The list always starts on the first page.
	StartRoute Route
	// CopyText puts a shared link on the clipboard. Nil uses the system
	// clipboard.
	CopyText func(string) error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	pages     PageLoader
	details   DetailLoader
	favStore  FavoritesStore
	logger    *zap.Logger
	baseURL   string
	prefsPath string
	copyText  func(string) error
	keys      keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	route    Route
	flash    string
	flashErr bool

	// Data state
	page       int
	pageSnap   state.PageSnapshot
	detailSnap state.DetailSnapshot
	favs       favorites.Set
	favsLoaded bool

	// List state
	selectedRow int

	// Search state
	searching   bool
	searchInput textinput.Model

	// Detail state
	detailViewport viewport.Model
	spinner        spinner.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Placeholder = "name or number"
	input.Prompt = "/ "
	input.CharLimit = 64

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	perPage := 0
	if opts.Pages != nil {
		perPage = opts.Pages.PerPage()
	}
	copyText := opts.CopyText
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	m := Model{
		ctx:         ctx,
		pages:       opts.Pages,
		details:     opts.Details,
		favStore:    opts.Favorites,
		logger:      logger.Named("ui"),
		baseURL:     opts.BaseURL,
		prefsPath:   prefsPath,
		copyText:    copyText,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(themeName),
		route:       ListRoute(),
		pageSnap:    state.PageSnapshot{PerPage: perPage, Phase: state.PhaseLoading},
		searchInput: input,
		spinner:     sp,
	}
	if opts.StartRoute.Kind == RouteDetail && opts.StartRoute.Param != "" {
		m.route = opts.StartRoute
		m.detailSnap = state.DetailSnapshot{Param: opts.StartRoute.Param, Phase: state.PhaseLoading}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.favStore != nil {
		cmds = append(cmds, loadFavoritesCmd(m.ctx, m.favStore))
	}
	if m.pages != nil {
		cmds = append(cmds, loadPageCmd(m.ctx, m.pages, m.page))
	}
	if m.route.Kind == RouteDetail && m.details != nil {
		cmds = append(cmds, loadDetailCmd(m.ctx, m.details, m.route.Param))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w, h := m.detailViewportSize()
		if !m.ready {
			m.detailViewport = viewport.New(w, h)
		} else {
			m.detailViewport.Width = w
			m.detailViewport.Height = h
		}
		m.ready = true
		m.updateDetailViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pageMsg:
		snap := state.PageSnapshot(msg)
		if !m.acceptPage(snap) {
			return m, nil
		}
		m.pageSnap = snap
		if n := len(snap.Entries()); m.selectedRow >= n {
			m.selectedRow = max(n-1, 0)
		}
		return m, nil

	case detailMsg:
		snap := state.DetailSnapshot(msg)
		if !m.acceptDetail(snap) {
			return m, nil
		}
		m.detailSnap = snap
		m.detailViewport.GotoTop()
		m.updateDetailViewport()
		return m, nil

	case favoritesMsg:
		// A toggle already read the stored set; this result is older.
		if m.favsLoaded {
			return m, nil
		}
		m.favs = favorites.Set(msg)
		m.favsLoaded = true
		m.updateDetailViewport()
		return m, nil
	}

	return m, nil
}

// acceptPage drops snapshots for a page we have navigated away from and
// snapshots older than the one on screen.
func (m Model) acceptPage(snap state.PageSnapshot) bool {
	if snap.PageIndex != m.page {
		return false
	}
	if snap.Generation != m.pageSnap.Generation {
		return snap.Generation > m.pageSnap.Generation
	}
	return !snap.LastUpdated.Before(m.pageSnap.LastUpdated)
}

func (m Model) acceptDetail(snap state.DetailSnapshot) bool {
	if m.route.Kind != RouteDetail || snap.Param != m.route.Param {
		return false
	}
	if snap.Generation != m.detailSnap.Generation {
		return snap.Generation > m.detailSnap.Generation
	}
	return !snap.LastUpdated.Before(m.detailSnap.LastUpdated)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	m.flash = ""
	m.flashErr = false

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.savePrefs()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.SetValue("")
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.Favorite):
		m.toggleFavorite()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if m.route.Kind == RouteDetail {
			return m.navigate(m.route)
		}
		return m.goToPage(m.page)
	}

	switch m.route.Kind {
	case RouteDetail:
		return m.handleDetailKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

// handleListKey processes keyboard input for the list view.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.pageSnap.Entries()
	loading := m.pageSnap.Phase == state.PhaseLoading

	switch {
	case key.Matches(msg, m.keys.NextPage):
		if !loading && m.pageSnap.HasNext() {
			return m.goToPage(m.page + 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		if !loading && m.pageSnap.HasPrevious() {
			return m.goToPage(m.page - 1)
		}
		return m, nil
	}

	if len(entries) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < len(entries)-1 {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = len(entries) - 1
	case key.Matches(msg, m.keys.Open):
		entry := entries[m.selectedRow]
		param := entry.Name
		if entry.ID > 0 {
			param = strconv.Itoa(entry.ID)
		}
		if param == "" {
			return m, nil
		}
		return m.navigate(DetailRoute(param))
	}

	return m, nil
}

// handleDetailKey processes keyboard input for the detail view.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.route = ListRoute()
		return m, nil
	}
	if key.Matches(msg, m.keys.Share) {
		m.shareLink()
		return m, nil
	}

	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

// handleSearchKey feeds the search input until it is submitted or cancelled.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.searchInput.Blur()
		return m, nil

	case tea.KeyEnter:
		m.searching = false
		m.searchInput.Blur()
		target, ok := pokemon.SearchTarget(m.searchInput.Value())
		if !ok {
			return m, nil
		}
		return m.navigate(DetailRoute(target))
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// goToPage switches to pageIndex and starts its load.
func (m Model) goToPage(pageIndex int) (tea.Model, tea.Cmd) {
	m.page = pageIndex
	m.selectedRow = 0
	m.pageSnap = state.PageSnapshot{
		PageIndex:  pageIndex,
		PerPage:    m.pageSnap.PerPage,
		Phase:      state.PhaseLoading,
		Generation: m.pageSnap.Generation,
	}
	if m.pages == nil {
		return m, nil
	}
	return m, loadPageCmd(m.ctx, m.pages, pageIndex)
}

// navigate moves to r and starts the detail load when r is a detail route.
func (m Model) navigate(r Route) (tea.Model, tea.Cmd) {
	m.route = r
	if r.Kind != RouteDetail {
		return m, nil
	}
	m.detailSnap = state.DetailSnapshot{
		Param:      r.Param,
		Phase:      state.PhaseLoading,
		Generation: m.detailSnap.Generation,
	}
	m.detailViewport.SetContent("")
	if m.details == nil {
		return m, nil
	}
	return m, loadDetailCmd(m.ctx, m.details, r.Param)
}

// favoriteTarget returns the id and display name the favorite key applies to.
func (m Model) favoriteTarget() (int, string, bool) {
	if m.route.Kind == RouteDetail {
		d := m.detailSnap.Detail
		if m.detailSnap.Phase != state.PhaseReady || d == nil || d.ID <= 0 {
			return 0, "", false
		}
		return d.ID, pokemon.TitleCase(d.Name), true
	}
	entries := m.pageSnap.Entries()
	if m.selectedRow < 0 || m.selectedRow >= len(entries) {
		return 0, "", false
	}
	e := entries[m.selectedRow]
	if e.ID <= 0 {
		return 0, "", false
	}
	return e.ID, pokemon.TitleCase(e.Name), true
}

func (m *Model) toggleFavorite() {
	if m.favStore == nil {
		return
	}
	id, name, ok := m.favoriteTarget()
	if !ok {
		return
	}

	if !m.favsLoaded {
		m.favs = m.favStore.Load(m.ctx)
		m.favsLoaded = true
	}
	next, err := m.favStore.Toggle(m.ctx, m.favs, id)
	m.favs = next
	switch {
	case err != nil:
		m.logger.Warn("persist favorites failed", zap.Int("id", id), zap.Error(err))
		m.flash = "Could not save favorites"
		m.flashErr = true
	case next.Contains(id):
		m.flash = fmt.Sprintf("Added to favorites · %s added to your favorites.", name)
	default:
		m.flash = fmt.Sprintf("Removed from favorites · %s removed from your favorites.", name)
	}
	m.updateDetailViewport()
}

// shareLink copies the catalog URL of the record on screen.
func (m *Model) shareLink() {
	d := m.detailSnap.Detail
	if m.detailSnap.Phase != state.PhaseReady || d == nil || d.ID <= 0 {
		return
	}
	link := ShareLink(m.baseURL, d.ID)
	if err := m.copyText(link); err != nil {
		m.logger.Warn("copy link failed", zap.String("link", link), zap.Error(err))
		m.flash = "Could not copy link"
		m.flashErr = true
		return
	}
	m.flash = "Link copied! · Pokemon link copied to clipboard."
}

// ShareLink is the resource URL for id under baseURL.
func ShareLink(baseURL string, id int) string {
	return strings.TrimRight(baseURL, "/") + DetailRoute(strconv.Itoa(id)).Path()
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Debug("save prefs failed", zap.Error(err))
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line 1: logo + location
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: command bar or search input
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	// Main content
	b.WriteString(m.renderContent())
	b.WriteString("\n")

	b.WriteString(m.renderFooter())

	return b.String()
}

// renderContent renders the main content area based on the current route.
func (m Model) renderContent() string {
	switch m.route.Kind {
	case RouteDetail:
		return m.renderDetail()
	default:
		return m.renderList()
	}
}

// contentHeight is the space left after header, command bar and footer.
func (m Model) contentHeight() int {
	return max(m.height-3, 3)
}

// Messages

type pageMsg state.PageSnapshot

type detailMsg state.DetailSnapshot

type favoritesMsg favorites.Set

// Commands

func loadPageCmd(ctx context.Context, pages PageLoader, pageIndex int) tea.Cmd {
	return func() tea.Msg {
		return pageMsg(pages.Load(ctx, pageIndex))
	}
}

func loadDetailCmd(ctx context.Context, details DetailLoader, param string) tea.Cmd {
	return func() tea.Msg {
		return detailMsg(details.Load(ctx, param))
	}
}

func loadFavoritesCmd(ctx context.Context, store FavoritesStore) tea.Cmd {
	return func() tea.Msg {
		return favoritesMsg(store.Load(ctx))
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
