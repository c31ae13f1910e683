package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/garagemleilao/caixa/internal/extraction"
	"github.com/garagemleilao/caixa/internal/transaction"
)

type previewState int

const (
	previewStateInput previewState = iota
	previewStateExtracting
	previewStateResult
)

// PreviewModel sends a pasted group message through the extractor and shows
// what would be saved. Nothing is persisted.
type PreviewModel struct {
	extractor extraction.Extractor

	state    previewState
	input    textarea.Model
	spinner  spinner.Model
	raw      string
	shape    extraction.Shape
	records  []transaction.Record
	err      error
	showJSON bool
}

func NewPreviewModel(ext extraction.Extractor) PreviewModel {
	ta := textarea.New()
	ta.Placeholder = "Cole aqui a mensagem do grupo..."
	ta.ShowLineNumbers = false
	ta.SetWidth(80)
	ta.SetHeight(8)
	ta.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return PreviewModel{
		extractor: ext,
		input:     ta,
		spinner:   s,
	}
}

func (m PreviewModel) Title() string { return "Caixa: pré-visualização" }

func (m PreviewModel) ShortHelp() string {
	switch m.state {
	case previewStateExtracting:
		return "Extraindo..."
	case previewStateResult:
		return "j: JSON bruto | Esc: nova mensagem | Ctrl+C: sair"
	}

	return "Ctrl+S: extrair | Esc: sair"
}

func (m PreviewModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.state {
	case previewStateInput:
		return m.updateInput(msg)
	case previewStateExtracting:
		return m.updateExtracting(msg)
	case previewStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m PreviewModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlS:
			if m.input.Value() == "" {
				return m, nil
			}

			m.state = previewStateExtracting
			m.err = nil

			return m, tea.Batch(m.spinner.Tick, m.runPreviewCmd(m.input.Value()))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m PreviewModel) updateExtracting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(previewResultMsg); ok {
		m.state = previewStateResult
		m.raw = result.raw
		m.shape = result.shape
		m.records = result.records
		m.err = result.err
		m.showJSON = false

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m PreviewModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case keyMsg.Type == tea.KeyEsc:
		m.state = previewStateInput
		m.input.Reset()

		return m, m.input.Focus()
	case keyMsg.String() == "j":
		m.showJSON = !m.showJSON
	}

	return m, nil
}

func (m PreviewModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Render(m.Title())
	help := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.ShortHelp())

	var body string

	switch m.state {
	case previewStateInput:
		body = m.input.View()
	case previewStateExtracting:
		body = fmt.Sprintf("%s Enviando mensagem ao modelo...", m.spinner.View())
	case previewStateResult:
		body = m.viewResult()
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", help),
	)
}

func (m PreviewModel) viewResult() string {
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	if m.err != nil && m.raw == "" {
		return errStyle.Render(fmt.Sprintf("Erro: %v", m.err))
	}

	var sections []string

	if m.err != nil {
		sections = append(sections, errStyle.Render(fmt.Sprintf("Erro: %v", m.err)))
	} else {
		summary := fmt.Sprintf("%d transação(ões) no formato %s", len(m.records), m.shape)
		sections = append(sections, lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render(summary))

		if len(m.records) > 0 {
			sections = append(sections, "", RecordsTable(m.records))
		}
	}

	if m.showJSON || m.err != nil {
		sections = append(sections, "", "Resposta do modelo:", m.raw)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type previewResultMsg struct {
	raw     string
	shape   extraction.Shape
	records []transaction.Record
	err     error
}

func (m PreviewModel) runPreviewCmd(text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := extractCtx()
		defer cancel()

		raw, err := m.extractor.Extract(ctx, text)
		if err != nil {
			return previewResultMsg{err: err}
		}

		records, shape, err := extraction.Normalize(raw)

		return previewResultMsg{raw: raw, shape: shape, records: records, err: err}
	}
}
