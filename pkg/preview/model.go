// Package preview shows a live host view in the terminal.
//
// Every terminal cell carries two pixels stacked with the upper half block
// character: the foreground paints the top pixel and the background the
// bottom one. Mouse press, motion and release drive the toggle's pointer;
// the keyboard can tap it or flip the binding from outside.
package preview

import (
	"context"
	"fmt"
	"image"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"

	"github.com/go-drift/neon/pkg/gestures"
	"github.com/go-drift/neon/pkg/graphics"
	"github.com/go-drift/neon/pkg/host"
	"github.com/go-drift/neon/pkg/raster"
)

const (
	halfBlock = "▀"
	// statusLines is the number of rows below the picture.
	statusLines = 2

	mousePointer int64 = 1
	keyPointer   int64 = 2
)

// tickMsg advances animations by one frame.
type tickMsg struct{}

// Options configures a preview.
type Options struct {
	Host host.Config
	// FPS is the frame rate of the tick loop. Zero means 60.
	FPS int
}

// Model is the bubbletea model of a preview.
type Model struct {
	view     *host.View
	interval time.Duration

	cols, rows int
	pressed    bool

	// fit maps surface pixels onto half-block pixels.
	fit              float64
	originX, originY float64
}

// New mounts a host view for opts.
func New(opts Options) Model {
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	return Model{
		view:     host.New(opts.Host),
		interval: time.Second / time.Duration(fps),
		cols:     80,
		rows:     24,
	}
}

// HostView returns the mounted host view.
func (m Model) HostView() *host.View {
	return m.view
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case " ", "space", "enter":
			m.tapKey()
		case "e":
			m.view.Binding().Set(!m.view.Binding().Value())
		}

	case tea.MouseMsg:
		m = m.handleMouse(msg)

	case tickMsg:
		m.view.StepFrame()
		return m, m.tick()
	}
	return m, nil
}

func (m Model) tapKey() {
	c := m.view.ToggleBounds().Center()
	for _, phase := range []gestures.PointerPhase{gestures.PointerPhaseDown, gestures.PointerPhaseUp} {
		m.view.HandlePointer(host.PointerEvent{PointerID: keyPointer, X: c.X, Y: c.Y, Phase: phase})
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	m = m.layout()
	p := m.cellToSurface(msg.X, msg.Y)
	event := host.PointerEvent{PointerID: mousePointer, X: p.X, Y: p.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.pressed {
			return m
		}
		event.Phase = gestures.PointerPhaseDown
		m.pressed = true
	case tea.MouseActionMotion:
		if !m.pressed {
			return m
		}
		event.Phase = gestures.PointerPhaseMove
	case tea.MouseActionRelease:
		if !m.pressed {
			return m
		}
		event.Phase = gestures.PointerPhaseUp
		m.pressed = false
	default:
		return m
	}
	m.view.HandlePointer(event)
	return m
}

// layout computes the uniform fit of the surface into the picture area.
func (m Model) layout() Model {
	size := m.view.Size()
	w, h := m.pictureSize()
	if size.Width <= 0 || size.Height <= 0 || w <= 0 || h <= 0 {
		m.fit = 0
		return m
	}
	m.fit = math.Min(float64(w)/size.Width, float64(h)/size.Height)
	m.originX = (float64(w) - size.Width*m.fit) / 2
	m.originY = (float64(h) - size.Height*m.fit) / 2
	return m
}

// pictureSize is the picture area in half-block pixels.
func (m Model) pictureSize() (int, int) {
	return m.cols, max(0, m.rows-statusLines) * 2
}

// cellToSurface maps the center of a terminal cell to surface pixels.
func (m Model) cellToSurface(col, row int) graphics.Offset {
	if m.fit == 0 {
		return graphics.Offset{X: -1, Y: -1}
	}
	return graphics.Offset{
		X: (float64(col) + 0.5 - m.originX) / m.fit,
		Y: (float64(row*2) + 1 - m.originY) / m.fit,
	}
}

func (m Model) View() string {
	m = m.layout()
	var sb strings.Builder
	sb.WriteString(m.renderPicture())
	sb.WriteString(m.status())
	return sb.String()
}

func (m Model) renderPicture() string {
	w, h := m.pictureSize()
	if m.fit == 0 {
		return ""
	}
	src := raster.Render(m.view.Record())
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := m.view.Background().NRGBA()
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	target := image.Rect(
		int(math.Round(m.originX)), int(math.Round(m.originY)),
		int(math.Round(m.originX+float64(src.Bounds().Dx())*m.fit)),
		int(math.Round(m.originY+float64(src.Bounds().Dy())*m.fit)),
	)
	draw.ApproxBiLinear.Scale(dst, target, src, src.Bounds(), draw.Src, nil)

	var sb strings.Builder
	for y := 0; y+1 < h; y += 2 {
		for x := 0; x < w; x++ {
			top, bottom := dst.RGBAAt(x, y), dst.RGBAAt(x, y+1)
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", top.R, top.G, top.B))).
				Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", bottom.R, bottom.G, bottom.B)))
			sb.WriteString(cell.Render(halfBlock))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) status() string {
	state := offStyle.Render("off")
	if m.view.Binding().Value() {
		state = onStyle.Render("on")
	}
	line := fmt.Sprintf("%s  value: %s", titleStyle.Render("neon toggle"), state)
	help := helpStyle.Render("space: tap  e: flip binding  drag: mouse  q: quit")
	return line + "\n" + help
}

// Run starts an interactive preview and blocks until the user quits or
// ctx is done.
func Run(ctx context.Context, opts Options) error {
	program := tea.NewProgram(New(opts),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	final, err := program.Run()
	if m, ok := final.(Model); ok {
		m.view.Dispose()
	}
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
