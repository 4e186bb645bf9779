package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	historyLimit    = 20
	statusLifetime  = 5 * time.Second
	domainListWidth = 40
)

type dashboardModel struct {
	ctx    context.Context
	engine Engine

	rows    []domainRow
	idx     int
	server  models.ServerConfig
	loading bool
	busy    bool
	spinner spinner.Model
	status  string

	errOverlay *errorOverlayModel

	adding bool
	input  textinput.Model

	history        bool
	historyDomain  string
	historyLoading bool
	versions       []models.VersionInfo
	vIdx           int

	confirm        *confirmModel
	pendingRestore string

	now func() time.Time
}

func newDashboardModel(ctx context.Context, engine Engine) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	in := textinput.New()
	in.Placeholder = "example.com"
	in.CharLimit = 253

	return dashboardModel{
		ctx:     ctx,
		engine:  engine,
		loading: true,
		spinner: s,
		input:   in,
		now:     time.Now,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(), m.spinner.Tick)
}

func (m dashboardModel) current() (domainRow, bool) {
	if len(m.rows) == 0 || m.idx < 0 || m.idx >= len(m.rows) {
		return domainRow{}, false
	}
	return m.rows[m.idx], true
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case domainsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errOverlay = newErrorOverlay("Ошибка загрузки", "", msg.err, m.cmdLoad())
			return m, nil
		}
		m.rows = msg.rows
		m.server = msg.server
		m.idx = min(max(m.idx, 0), max(len(m.rows)-1, 0))
		return m, nil
	case syncDoneMsg:
		m.busy = false
		m.status = resultText(msg.result)
		return m, tea.Batch(m.cmdLoad(), clearStatusAfter(statusLifetime))
	case domainSavedMsg:
		if msg.err != nil {
			m.errOverlay = newErrorOverlay("Ошибка сохранения", msg.domain, msg.err, nil)
			return m, nil
		}
		m.status = "Настройки " + msg.domain + " сохранены"
		return m, tea.Batch(m.cmdLoad(), clearStatusAfter(statusLifetime))
	case historyLoadedMsg:
		m.historyLoading = false
		if msg.err != nil {
			m.errOverlay = newErrorOverlay("Ошибка загрузки истории", msg.domain, msg.err, m.cmdHistory(msg.domain))
			return m, nil
		}
		m.versions = msg.versions
		m.vIdx = 0
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errOverlay = newErrorOverlay("Ошибка копирования", "", msg.err, nil)
			return m, nil
		}
		m.status = "Ссылка скопирована"
		return m, clearStatusAfter(statusLifetime)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.adding {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.errOverlay != nil:
		return m.updateErrorOverlay(keyMsg)
	case m.confirm != nil:
		return m.updateConfirm(keyMsg)
	case m.adding:
		return m.updateAdding(keyMsg)
	case m.history:
		return m.updateHistory(keyMsg)
	}

	return m.updateList(keyMsg)
}

func (m dashboardModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.idx < len(m.rows)-1 {
			m.idx++
		}
		return m, nil
	case key.Matches(msg, keys.add):
		m.adding = true
		m.input.SetValue("")
		return m, m.input.Focus()
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.cmdLoad()
	}

	row, ok := m.current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.cookies):
		return m, m.cmdSave(row.domain, !row.cfg.CookieSyncEnabled, row.cfg.StorageSyncEnabled)
	case key.Matches(msg, keys.storage):
		return m, m.cmdSave(row.domain, row.cfg.CookieSyncEnabled, !row.cfg.StorageSyncEnabled)
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy(row.domain)
	case key.Matches(msg, keys.history, keys.enter):
		m.history = true
		m.historyDomain = row.domain
		m.historyLoading = true
		m.versions = nil
		return m, m.cmdHistory(row.domain)
	}

	if m.busy {
		return m, nil
	}
	var run func(context.Context, string) models.SyncResult
	switch {
	case key.Matches(msg, keys.sync):
		run = m.engine.SyncDomain
	case key.Matches(msg, keys.upload):
		run = m.engine.ForceUpload
	case key.Matches(msg, keys.download):
		run = m.engine.ForceDownload
	default:
		return m, nil
	}
	m.busy = true
	m.status = "Синхронизация " + row.domain + "..."
	return m, m.cmdSync(row.domain, run)
}

func (m dashboardModel) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.adding = false
		m.input.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		domain := strings.TrimSpace(m.input.Value())
		m.adding = false
		m.input.Blur()
		if domain == "" {
			return m, nil
		}
		// новый домен сразу синхронизирует куки
		return m, m.cmdSave(domain, true, false)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m dashboardModel) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.history = false
		return m, nil
	case key.Matches(msg, keys.up):
		if m.vIdx > 0 {
			m.vIdx--
		}
	case key.Matches(msg, keys.down):
		if m.vIdx < len(m.versions)-1 {
			m.vIdx++
		}
	case key.Matches(msg, keys.refresh):
		m.historyLoading = true
		return m, m.cmdHistory(m.historyDomain)
	case key.Matches(msg, keys.restore):
		if m.busy || m.vIdx >= len(m.versions) {
			return m, nil
		}
		v := m.versions[m.vIdx]
		m.pendingRestore = v.ID
		m.confirm = &confirmModel{question: fmt.Sprintf("Восстановить версию %s для %s?", v.ID, m.historyDomain)}
	}
	return m, nil
}

func (m dashboardModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirm = nil
		m.busy = true
		m.history = false
		m.status = "Восстановление " + m.pendingRestore + "..."
		domain, id := m.historyDomain, m.pendingRestore
		return m, m.cmdSync(domain, func(ctx context.Context, d string) models.SyncResult {
			return m.engine.RestoreVersion(ctx, d, id)
		})
	case key.Matches(msg, keys.no):
		m.confirm = nil
		m.pendingRestore = ""
	}
	return m, nil
}

func (m dashboardModel) updateErrorOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	retry := m.errOverlay.retry
	switch {
	case key.Matches(msg, keys.enter, keys.esc):
		m.errOverlay = nil
	case retry != nil && key.Matches(msg, keys.refresh):
		m.errOverlay = nil
		return m, retry
	}
	return m, nil
}

func (m dashboardModel) cmdLoad() tea.Cmd {
	ctx, engine := m.ctx, m.engine
	return func() tea.Msg {
		server, err := engine.ServerConfig()
		if err != nil {
			return domainsLoadedMsg{err: err}
		}
		domains, err := engine.Domains()
		if err != nil {
			return domainsLoadedMsg{err: err}
		}

		// активный домен виден, даже если для него ещё ничего не включено
		active, _ := engine.ActiveDomain(ctx)
		if active != "" && !slices.Contains(domains, active) {
			domains = append(domains, active)
		}
		slices.Sort(domains)

		rows := make([]domainRow, 0, len(domains))
		for _, d := range domains {
			cfg, err := engine.DomainConfig(d)
			if err != nil {
				return domainsLoadedMsg{err: err}
			}
			rows = append(rows, domainRow{domain: d, cfg: cfg, active: d == active})
		}
		return domainsLoadedMsg{rows: rows, server: server}
	}
}

func (m dashboardModel) cmdSync(domain string, run func(context.Context, string) models.SyncResult) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return syncDoneMsg{result: run(ctx, domain)}
	}
}

func (m dashboardModel) cmdSave(domain string, cookies, storage bool) tea.Cmd {
	ctx, engine := m.ctx, m.engine
	return func() tea.Msg {
		cfg, err := engine.SaveDomainConfig(ctx, domain, cookies, storage)
		return domainSavedMsg{domain: domain, cfg: cfg, err: err}
	}
}

func (m dashboardModel) cmdHistory(domain string) tea.Cmd {
	ctx, engine := m.ctx, m.engine
	return func() tea.Msg {
		versions, err := engine.VersionHistory(ctx, domain, historyLimit)
		return historyLoadedMsg{domain: domain, versions: versions, err: err}
	}
}

func (m dashboardModel) cmdCopy(domain string) tea.Cmd {
	ctx, engine := m.ctx, m.engine
	return func() tea.Msg {
		url, err := engine.CopyQuickAccessURL(ctx, domain)
		return copiedMsg{url: url, err: err}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m dashboardModel) View() string {
	if m.errOverlay != nil {
		return m.errOverlay.View()
	}
	if m.confirm != nil {
		return m.confirm.View()
	}
	if m.history {
		return m.viewHistory()
	}
	if m.adding {
		return renderPage("НОВЫЙ ДОМЕН", "Домен: "+m.input.View(), "enter: добавить │ esc: отмена")
	}
	return m.viewList()
}

func (m dashboardModel) viewList() string {
	var b strings.Builder

	server := "не настроен"
	if m.server.HasServer() {
		server = m.server.ServerURL + "  pass " + m.server.Pass.Masked()
	}
	fmt.Fprintf(&b, "Сервер: %s\n", server)
	if m.server.EncryptionEnabled {
		b.WriteString("Шифрование: включено\n")
	}
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString("Загрузка...\n")
	case len(m.rows) == 0:
		b.WriteString("Доменов нет. a: добавить\n")
	default:
		now := m.now()
		for i, row := range m.rows {
			cursor := "  "
			name := fitText(row.domain, domainListWidth)
			if row.active {
				name += " *"
			}
			line := fmt.Sprintf("%-*s %s  %s  %s", domainListWidth+2, name,
				checkbox(row.cfg.CookieSyncEnabled, "куки"),
				checkbox(row.cfg.StorageSyncEnabled, "хранилище"),
				lastSync(row.cfg, now))
			if i == m.idx {
				cursor = "> "
				line = selectedStyle.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
	}

	if m.busy {
		b.WriteString("\n" + m.spinner.View() + " ")
	} else if m.status != "" {
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}

	return renderPage("ДОМЕНЫ", strings.TrimRight(b.String(), "\n"),
		"s: синхр. │ u: выгрузить │ d: загрузить │ c/t: куки/хранилище │ h: история │ y: ссылка │ a: добавить │ f: обновить")
}

func (m dashboardModel) viewHistory() string {
	var b strings.Builder

	switch {
	case m.historyLoading:
		b.WriteString("Загрузка истории...\n")
	case len(m.versions) == 0:
		b.WriteString("Версий нет\n")
	default:
		now := m.now()
		for i, v := range m.versions {
			cursor := "  "
			line := fmt.Sprintf("%-24s %-8s %-14s %s", fitText(v.ID, 24), v.Source, string(v.Type), relOrSize(v, now))
			if i == m.vIdx {
				cursor = "> "
				line = selectedStyle.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
	}

	return renderPage("ИСТОРИЯ "+m.historyDomain, strings.TrimRight(b.String(), "\n"), "r: восстановить │ f: обновить │ esc: назад")
}

func relOrSize(v models.VersionInfo, now time.Time) string {
	out := lastSync(models.DomainConfig{LastSyncTime: &v.Timestamp}, now)
	if v.Size > 0 {
		out += ", " + sizeText(v.Size)
	}
	return out
}
