package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/labelforge/labelforge/pkg/device"
	"github.com/labelforge/labelforge/pkg/errors"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// DeviceListModel - Interactive device selection
// =============================================================================

// DeviceListModel is the bubbletea model for picking one of several printers.
type DeviceListModel struct {
	Devices  []device.Device
	Cursor   int
	Selected *device.Device
}

// NewDeviceListModel creates a new device list model.
func NewDeviceListModel(devices []device.Device) DeviceListModel {
	return DeviceListModel{Devices: devices}
}

func (m DeviceListModel) Init() tea.Cmd {
	return nil
}

func (m DeviceListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Devices)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Devices[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m DeviceListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Device"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, d := range m.Devices {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		name := d.Product
		if name == "" {
			name = d.Path
		}
		line := fmt.Sprintf("%s%-30s  %s", cursor, name, listDimStyle.Render(d.Path))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Devices))))

	return b.String()
}

// runDevicePicker runs the interactive picker and returns the chosen device.
// Quitting without a selection is an error so print does not fall through to
// an arbitrary printer.
func runDevicePicker(devices []device.Device) (device.Device, error) {
	p := tea.NewProgram(NewDeviceListModel(devices))
	final, err := p.Run()
	if err != nil {
		return device.Device{}, err
	}
	m, ok := final.(DeviceListModel)
	if !ok || m.Selected == nil {
		return device.Device{}, errors.New(errors.ErrCodeNoDevices, "no device selected")
	}
	return *m.Selected, nil
}
