package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/wordcloud/pkg/cloud"
	"github.com/matzehuels/wordcloud/pkg/cloud/paint"
)

// Map styles
var (
	mapCursorStyle  = lipgloss.NewStyle().Reverse(true)
	mapHoverStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	mapEmptyStyle   = lipgloss.NewStyle().Foreground(colorDim)
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
)

const (
	mapBlock       = "█"
	mapEmpty       = "·"
	defaultMapCols = 64
	minMapCols     = 16
	listRows       = 8
)

// =============================================================================
// Pointer state
// =============================================================================

// pointerState receives the run's hover and click callbacks. The run calls
// them synchronously from Hover and Click, so the model reads the result
// right after forwarding a pointer move.
type pointerState struct {
	hovered *cloud.Placement
	clicked []*cloud.Placement
}

func (s *pointerState) hover(p *cloud.Placement) { s.hovered = p }
func (s *pointerState) click(p *cloud.Placement) { s.clicked = append(s.clicked, p) }

// =============================================================================
// InspectModel - Interactive cloud browser
// =============================================================================

// InspectModel is the bubbletea model for browsing a placed cloud. The
// canvas is drawn as a character map; the cursor acts as the pointer.
type InspectModel struct {
	Run        *cloud.Run
	Placements []*cloud.Placement
	Width      int // canvas width in pixels
	Height     int // canvas height in pixels
	Cols, Rows int // map size in characters
	CX, CY     int // cursor position in characters

	state *pointerState
	cells [][]*cloud.Placement
}

// NewInspectModel creates an inspect model for a placed run whose hover and
// click callbacks write to state.
func NewInspectModel(run *cloud.Run, width, height int, state *pointerState) InspectModel {
	m := InspectModel{
		Run:        run,
		Placements: run.Placements(),
		Width:      width,
		Height:     height,
		state:      state,
	}
	m.resize(defaultMapCols, 0)
	m.moveTo(m.Cols/2, m.Rows/2)
	return m
}

// resize fits the map into cols characters and, when maxRows is positive,
// at most maxRows lines. Terminal cells are about twice as tall as wide.
func (m *InspectModel) resize(cols, maxRows int) {
	cols = max(cols, minMapCols)
	rows := max(cols*m.Height/max(m.Width, 1)/2, 1)
	if maxRows > 0 && rows > maxRows {
		rows = max(maxRows, 1)
		cols = max(rows*2*m.Width/max(m.Height, 1), minMapCols)
	}
	m.Cols, m.Rows = cols, rows

	sess := m.Run.Session()
	m.cells = make([][]*cloud.Placement, rows)
	for y := range m.cells {
		m.cells[y] = make([]*cloud.Placement, cols)
		for x := range m.cells[y] {
			px, py := m.pixel(x, y)
			m.cells[y][x] = sess.HitTest(px, py)
		}
	}
	m.CX, m.CY = min(m.CX, cols-1), min(m.CY, rows-1)
}

// pixel returns the canvas pixel at the center of map character (x, y).
func (m *InspectModel) pixel(x, y int) (float64, float64) {
	px := (float64(x) + 0.5) * float64(m.Width) / float64(m.Cols)
	py := (float64(y) + 0.5) * float64(m.Height) / float64(m.Rows)
	return px, py
}

// moveTo places the cursor and forwards it to the run as a pointer move.
func (m *InspectModel) moveTo(x, y int) {
	m.CX = max(0, min(x, m.Cols-1))
	m.CY = max(0, min(y, m.Rows-1))
	m.Run.Hover(m.pixel(m.CX, m.CY))
}

// Hovered returns the word under the cursor.
func (m InspectModel) Hovered() *cloud.Placement { return m.state.hovered }

// Clicked returns the words selected with enter, in selection order.
func (m InspectModel) Clicked() []*cloud.Placement { return m.state.clicked }

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.moveTo(m.CX, m.CY-1)
		case "down", "j":
			m.moveTo(m.CX, m.CY+1)
		case "left", "h":
			m.moveTo(m.CX-1, m.CY)
		case "right", "l":
			m.moveTo(m.CX+1, m.CY)
		case "enter", " ":
			m.Run.Click(m.pixel(m.CX, m.CY))
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width-2, msg.Height-listRows-10)
		m.moveTo(m.CX, m.CY)
	}
	return m, nil
}

func (m InspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Inspect Word Cloud"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓/←/→ move  ⏎ select  q quit"))
	b.WriteString("\n\n")

	hovered := m.state.hovered
	for y, row := range m.cells {
		for x, p := range row {
			b.WriteString(m.renderCell(x, y, p, hovered))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if hovered != nil {
		b.WriteString(StyleValue.Render(hovered.Item.Word))
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  weight %g · %.0fpx · %.0f° · ring %d",
			hovered.Item.Weight, hovered.FontSize, degrees(hovered.Rotation), hovered.Distance)))
	} else {
		b.WriteString(listDimStyle.Render("no word under the cursor"))
	}
	b.WriteString("\n")

	if clicked := m.state.clicked; len(clicked) > 0 {
		b.WriteString(m.clickedTable(clicked))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d words placed]", len(m.Placements))))

	return b.String()
}

func (m InspectModel) renderCell(x, y int, p, hovered *cloud.Placement) string {
	ch, style := mapEmpty, mapEmptyStyle
	if p != nil {
		ch = mapBlock
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(p.Color)))
		if p == hovered {
			style = mapHoverStyle
		}
	}
	if x == m.CX && y == m.CY {
		style = mapCursorStyle
	}
	return style.Render(ch)
}

// clickedTable lists the most recent selections.
func (m InspectModel) clickedTable(clicked []*cloud.Placement) string {
	start := max(len(clicked)-listRows, 0)
	rows := make([][]string, 0, len(clicked)-start)
	for i, p := range clicked[start:] {
		rows = append(rows, []string{strconv.Itoa(start + i + 1), p.Item.Word, fmt.Sprintf("%g", p.Item.Weight)})
	}
	last := len(rows) - 1

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("#", "Selected", "Weight").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleTableHeader.Padding(0, 1)
			case row == last:
				return listActiveStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		String()
}

// hexColor converts a CSS color to the hex form lipgloss understands.
func hexColor(css string) string {
	c := paint.MustParse(css)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
