// Package tui provides the interactive what-if dashboard: adjust sliders,
// toggles, and financial fields and watch the engines recompute live.
// All state lives here in the model; the engines stay pure.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"hearth/internal/afford"
	"hearth/internal/cli"
	"hearth/internal/finance"
	"hearth/internal/rehearsal"
	"hearth/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabRehearsal = iota
	tabAfford
	tabCount
)

var tabNames = []string{"Rehearsal", "Affordability"}

// sliderRow describes one adjustable rehearsal dimension.
type sliderRow struct {
	label string
	get   func(*rehearsal.Sliders) *float64
}

// toggleRow describes one stress toggle.
type toggleRow struct {
	label string
	get   func(*rehearsal.Toggles) *bool
}

var sliderRows = []sliderRow{
	{"Buffer", func(s *rehearsal.Sliders) *float64 { return &s.Buffer }},
	{"Lifestyle", func(s *rehearsal.Sliders) *float64 { return &s.Lifestyle }},
	{"Risk", func(s *rehearsal.Sliders) *float64 { return &s.Risk }},
	{"Finance", func(s *rehearsal.Sliders) *float64 { return &s.Finance }},
	{"Deal", func(s *rehearsal.Sliders) *float64 { return &s.Deal }},
	{"Attach", func(s *rehearsal.Sliders) *float64 { return &s.Attach }},
	{"Leverage", func(s *rehearsal.Sliders) *float64 { return &s.Lev }},
}

var toggleRows = []toggleRow{
	{"Deadline", func(t *rehearsal.Toggles) *bool { return &t.Deadline }},
	{"Competition", func(t *rehearsal.Toggles) *bool { return &t.Competition }},
	{"Outside pressure", func(t *rehearsal.Toggles) *bool { return &t.OutsidePressure }},
	{"Recent setback", func(t *rehearsal.Toggles) *bool { return &t.RecentSetback }},
	{"Info gap", func(t *rehearsal.Toggles) *bool { return &t.InfoGap }},
	{"Life event", func(t *rehearsal.Toggles) *bool { return &t.LifeEvent }},
}

// fieldRow describes one editable affordability input.
type fieldRow struct {
	label  string
	get    func(*afford.FinancialInputs) float64
	set    func(*afford.FinancialInputs, float64)
	format func(float64) string
}

func plain(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

var fieldRows = []fieldRow{
	{"Annual gross income",
		func(i *afford.FinancialInputs) float64 { return i.AnnualGrossIncome },
		func(i *afford.FinancialInputs, v float64) { i.AnnualGrossIncome = v },
		cli.FormatMoney},
	{"Monthly expenses",
		func(i *afford.FinancialInputs) float64 { return i.MonthlyExpenses },
		func(i *afford.FinancialInputs, v float64) { i.MonthlyExpenses = v },
		cli.FormatMoney},
	{"Monthly debts",
		func(i *afford.FinancialInputs) float64 { return i.MonthlyDebts },
		func(i *afford.FinancialInputs, v float64) { i.MonthlyDebts = v },
		cli.FormatMoney},
	{"Down payment funds",
		func(i *afford.FinancialInputs) float64 { return i.AvailableDownPayment },
		func(i *afford.FinancialInputs, v float64) { i.AvailableDownPayment = v },
		cli.FormatMoney},
	{"Interest rate %",
		func(i *afford.FinancialInputs) float64 { return i.InterestRate },
		func(i *afford.FinancialInputs, v float64) { i.InterestRate = v },
		cli.FormatPercent},
	{"Loan term (years)",
		func(i *afford.FinancialInputs) float64 { return float64(i.LoanTermYears) },
		func(i *afford.FinancialInputs, v float64) { i.LoanTermYears = int(v) },
		plain},
	{"Down payment %",
		func(i *afford.FinancialInputs) float64 { return i.DownPaymentPercent },
		func(i *afford.FinancialInputs, v float64) { i.DownPaymentPercent = v },
		cli.FormatPercent},
}

// App is the root Bubble Tea model.
type App struct {
	width  int
	height int

	activeTab int
	showHelp  bool

	// Rehearsal tab state
	mode    rehearsal.Mode
	sliders rehearsal.Sliders
	toggles rehearsal.Toggles
	cursor  int // indexes sliders then toggles
	result  rehearsal.Result

	// Affordability tab state
	inputs      afford.FinancialInputs
	assumptions finance.Assumptions
	fieldCursor int
	editing     bool
	editor      textinput.Model
	affordRes   afford.Result
}

// New builds the dashboard model from the loaded scenario state.
func New(inputs afford.FinancialInputs, mode rehearsal.Mode, sliders rehearsal.Sliders, toggles rehearsal.Toggles, a finance.Assumptions) App {
	ti := textinput.New()
	ti.CharLimit = 12
	ti.Width = 14

	app := App{
		mode:        mode,
		sliders:     sliders,
		toggles:     toggles,
		inputs:      inputs,
		assumptions: a,
		editor:      ti,
	}
	app.recompute()
	return app
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// recompute reruns both engines against current state. Cheap enough to do
// on every keystroke; the engines are pure and bounded.
func (a *App) recompute() {
	a.result = rehearsal.Compute(a.mode, a.sliders, a.toggles)
	a.affordRes = afford.MaxAffordability(a.inputs, a.assumptions)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if a.editing {
			return a.updateEditor(msg)
		}
		return a.updateKeys(msg)
	}
	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "?":
		a.showHelp = !a.showHelp
		return a, nil
	case "tab":
		a.activeTab = (a.activeTab + 1) % tabCount
		return a, nil
	case "1":
		a.activeTab = tabRehearsal
		return a, nil
	case "2":
		a.activeTab = tabAfford
		return a, nil
	}

	if a.activeTab == tabRehearsal {
		return a.updateRehearsal(msg)
	}
	return a.updateAfford(msg)
}

func (a App) updateRehearsal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := len(sliderRows) + len(toggleRows)

	switch msg.String() {
	case "j", "down":
		a.cursor = (a.cursor + 1) % rows
	case "k", "up":
		a.cursor = (a.cursor + rows - 1) % rows
	case "m":
		a.mode = nextMode(a.mode)
		a.recompute()
	case "h", "left":
		a.adjustSlider(-5)
	case "l", "right":
		a.adjustSlider(+5)
	case "H", "shift+left":
		a.adjustSlider(-1)
	case "L", "shift+right":
		a.adjustSlider(+1)
	case " ", "enter":
		if i := a.cursor - len(sliderRows); i >= 0 && i < len(toggleRows) {
			flag := toggleRows[i].get(&a.toggles)
			*flag = !*flag
			a.recompute()
		}
	}
	return a, nil
}

func (a *App) adjustSlider(delta float64) {
	if a.cursor >= len(sliderRows) {
		return
	}
	v := sliderRows[a.cursor].get(&a.sliders)
	*v = finance.Clamp(*v+delta, 0, 100)
	a.recompute()
}

func nextMode(m rehearsal.Mode) rehearsal.Mode {
	switch m {
	case rehearsal.ModeClarify:
		return rehearsal.ModeLocation
	case rehearsal.ModeLocation:
		return rehearsal.ModeOffer
	default:
		return rehearsal.ModeClarify
	}
}

func (a App) updateAfford(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		a.fieldCursor = (a.fieldCursor + 1) % len(fieldRows)
	case "k", "up":
		a.fieldCursor = (a.fieldCursor + len(fieldRows) - 1) % len(fieldRows)
	case "enter", "e":
		a.editing = true
		a.editor.SetValue(strconv.FormatFloat(fieldRows[a.fieldCursor].get(&a.inputs), 'f', -1, 64))
		a.editor.Focus()
		return a, textinput.Blink
	case "y":
		a.inputs.ExcessStrategy = nextStrategy(a.inputs.ExcessStrategy)
		a.recompute()
	}
	return a, nil
}

func nextStrategy(s afford.Strategy) afford.Strategy {
	switch s {
	case afford.StrategyReducePayment:
		return afford.StrategyIncreasePrice
	case afford.StrategyIncreasePrice:
		return afford.StrategySave
	default:
		return afford.StrategyReducePayment
	}
}

func (a App) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if v, err := strconv.ParseFloat(strings.TrimSpace(a.editor.Value()), 64); err == nil {
			fieldRows[a.fieldCursor].set(&a.inputs, v)
			a.recompute()
		}
		a.editing = false
		a.editor.Blur()
		return a, nil
	case "esc":
		a.editing = false
		a.editor.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	t := theme.Active

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(a.renderTabBar())
	b.WriteString("\n\n")

	if a.activeTab == tabRehearsal {
		b.WriteString(a.renderRehearsal())
	} else {
		b.WriteString(a.renderAfford())
	}

	b.WriteString("\n")
	hint := "tab switch · j/k move · q quit · ? help"
	if a.showHelp {
		hint = "h/l adjust ±5 · H/L ±1 · space toggle · m mode · e edit field · y cycle strategy"
	}
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render("  " + hint))
	b.WriteString("\n")
	return b.String()
}

func (a App) renderTabBar() string {
	t := theme.Active
	active := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	inactive := lipgloss.NewStyle().Foreground(t.TextMuted)

	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf(" %d %s ", i+1, name)
		if i == a.activeTab {
			parts[i] = active.Render(label)
		} else {
			parts[i] = inactive.Render(label)
		}
	}
	return "  " + strings.Join(parts, lipgloss.NewStyle().Foreground(t.Border).Render("│"))
}

func (a App) renderRehearsal() string {
	t := theme.Active
	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selected := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  Mode: %s\n\n", value.Render(string(a.mode))))

	for i, row := range sliderRows {
		v := *row.get(&a.sliders)
		marker := "  "
		style := label
		if i == a.cursor {
			marker = "> "
			style = selected
		}
		b.WriteString(fmt.Sprintf("  %s%-18s %s %3.0f\n",
			marker, style.Render(row.label), miniBar(v, 20), v))
	}
	b.WriteString("\n")
	for i, row := range toggleRows {
		idx := len(sliderRows) + i
		on := *row.get(&a.toggles)
		marker := "  "
		style := label
		if idx == a.cursor {
			marker = "> "
			style = selected
		}
		box := "( )"
		if on {
			box = "(x)"
		}
		b.WriteString(fmt.Sprintf("  %s%s %s\n", marker, box, style.Render(row.label)))
	}

	r := a.result
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Steadiness  %s  %s\n", cli.RenderScoreBar(r.Score, 30), r.Band.Label))
	b.WriteString(label.Render(fmt.Sprintf("  resource %.0f · demand %.0f · whiplash %.0f · %s",
		r.Resource, r.Demand, r.Whiplash, r.Pattern.Tag)))
	b.WriteString("\n")
	return b.String()
}

func (a App) renderAfford() string {
	t := theme.Active
	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selected := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var b strings.Builder
	for i, row := range fieldRows {
		marker := "  "
		style := label
		if i == a.fieldCursor {
			marker = "> "
			style = selected
		}
		if i == a.fieldCursor && a.editing {
			b.WriteString(fmt.Sprintf("  %s%-22s %s\n", marker, style.Render(row.label), a.editor.View()))
			continue
		}
		b.WriteString(fmt.Sprintf("  %s%-22s %s\n",
			marker, style.Render(row.label), value.Render(row.format(row.get(&a.inputs)))))
	}

	strategy := a.inputs.ExcessStrategy
	if strategy == "" {
		strategy = afford.StrategySave
	}
	b.WriteString(fmt.Sprintf("  %-24s %s\n", label.Render("Excess strategy"), value.Render(string(strategy))))

	r := a.affordRes
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Max price      %s\n", value.Render(cli.FormatMoney(r.MaxPurchasePrice))))
	b.WriteString(fmt.Sprintf("  Payment        %s / %s max\n",
		value.Render(cli.FormatMoney(r.ActualMonthlyPayment)), cli.FormatMoney(r.MaxMonthlyPayment)))
	b.WriteString(fmt.Sprintf("  Down payment   %s (%s)\n",
		value.Render(cli.FormatMoney(r.DownPayment.Used)), string(r.DownPayment.Status)))
	b.WriteString(fmt.Sprintf("  DTI            %s   Remaining %s\n",
		value.Render(cli.FormatPercent(r.DTIPercent)), cli.FormatMoney(r.RemainingBudget)))
	return b.String()
}

// miniBar renders a compact 0-100 bar for slider rows.
func miniBar(v float64, width int) string {
	t := theme.Active
	filled := int(v / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	on := lipgloss.NewStyle().Foreground(t.Accent)
	off := lipgloss.NewStyle().Foreground(t.TextDim)
	return on.Render(strings.Repeat("█", filled)) + off.Render(strings.Repeat("░", width-filled))
}
