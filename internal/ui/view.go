package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const filterPaneWidth = 26

// View renders the UI: category filter on the left, grouped records on
// the right, status line at the bottom.
func (a App) View() string {
	if !a.ready {
		return "Carregando..."
	}

	if a.importing {
		return a.renderImportPrompt()
	}

	contentHeight := a.height - 2
	if a.err != nil {
		contentHeight--
	}

	left := a.renderFilterPane(contentHeight)
	right := a.renderBrowsePane(contentHeight)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	if a.err != nil {
		b.WriteString(ErrorStyle.Width(a.width).Render("Erro: " + a.err.Error() + " (qualquer tecla para fechar)"))
		b.WriteString("\n")
	}
	b.WriteString(a.renderStatusBar())
	return b.String()
}

func (a App) renderImportPrompt() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Importar progresso (JSON)"))
	b.WriteString("\n\n")
	b.WriteString(a.pathInput.View())
	b.WriteString("\n\n")
	b.WriteString(HintStyle.Render("enter confirma · esc cancela"))
	return b.String()
}

func (a App) renderFilterPane(height int) string {
	var lines []string
	lines = append(lines, TitleStyle.Render("Categorias"))

	cats := a.sess.Categories()
	if len(cats) == 0 {
		lines = append(lines, HintStyle.Render("nenhuma tabela carregada"))
	}
	for i, cat := range cats {
		mark := "[ ]"
		if a.sess.Selected(cat) {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, truncate(cat, filterPaneWidth-6))
		if a.focus == paneFilter && i == a.filterIdx {
			line = SelectedStyle.Render(line)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(filterPaneWidth).
		Height(height).
		PaddingRight(1).
		Render(strings.Join(lines, "\n"))
}

func (a App) renderBrowsePane(height int) string {
	width := a.width - filterPaneWidth - 1
	if width < 20 {
		width = 20
	}

	if a.loading {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			fmt.Sprintf("%s Carregando arquivo...", a.spin.View()))
	}
	if !a.sess.HasData() {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			HintStyle.Render("Nenhum dado. Inicie com -file <planilha.xlsx>."))
	}
	if a.sess.SelectionEmpty() {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			HintStyle.Render("Selecione ao menos uma categoria para visualizar os registros."))
	}

	rows := a.rows()
	// Each row renders to one or more lines; track which row each line
	// belongs to so the window can center on the cursor.
	type lineInfo struct {
		content string
		rowIdx  int
	}
	var lines []lineInfo
	for i, r := range rows {
		selected := a.focus == paneBrowse && i == a.browseIdx
		for _, l := range a.renderRow(r, selected, width) {
			lines = append(lines, lineInfo{l, i})
		}
	}

	cursorLine := 0
	for i, li := range lines {
		if li.rowIdx == a.browseIdx {
			cursorLine = i
			break
		}
	}
	start := cursorLine - height/2
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
		if end-height > 0 {
			start = end - height
		} else {
			start = 0
		}
	}

	var out []string
	for i := start; i < end; i++ {
		out = append(out, lines[i].content)
	}
	return strings.Join(out, "\n")
}

// renderRow renders one navigable row; selected records expand with
// description and resolved links, like the original's record card.
func (a App) renderRow(r row, selected bool, width int) []string {
	switch r.kind {
	case rowCategory:
		return []string{CategoryStyle.Render(truncate(r.category, width-2))}

	case rowConcept:
		return []string{"  " + ConceptStyle.Render(truncate(r.concept, width-4))}

	case rowLoadMore:
		line := fmt.Sprintf("    ▸ carregar mais registros (%d/%d)", r.shown, r.total)
		if selected {
			return []string{SelectedStyle.Render(line)}
		}
		return []string{LoadMoreStyle.Render(line)}

	case rowRecord:
		rec := r.rec
		title := fmt.Sprintf("[%s] %s", rec.IDRegistro, truncate(rec.TituloArtigo, width-16))
		line := "    " + title + " " + Pill(rec.Read)
		if selected {
			lines := []string{SelectedStyle.Render("    " + title + " " + Pill(rec.Read))}
			if rec.Descricao != "" {
				lines = append(lines, "      "+DescStyle.Render(truncate(rec.Descricao, width-8)))
			}
			lines = append(lines,
				"      "+LinkStyle.Render(truncate("Link: "+rec.LinkURL, width-8)),
				"      "+LinkStyle.Render(truncate("DOI:  "+rec.DOIURL, width-8)),
			)
			return lines
		}
		if rec.Read {
			return []string{ReadRecordStyle.Render(line)}
		}
		return []string{RecordStyle.Render(line)}
	}
	return nil
}

func (a App) renderStatusBar() string {
	focus := "categorias"
	if a.focus == paneBrowse {
		focus = "registros"
	}
	help := "tab painel · espaço marcar · enter carregar mais · e exportar · i importar · q sair"
	status := a.status
	if status != "" {
		status += "  ·  "
	}
	return StatusStyle.Width(a.width).Render(fmt.Sprintf(" %s[%s] %s", status, focus, help))
}

func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
