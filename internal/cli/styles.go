package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tulinowpavel/gojsonrpc2msg"
)

var (
	indigo = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	green  = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	blue   = lipgloss.AdaptiveColor{Light: "#1E88E5", Dark: "#42A5F5"}
	yellow = lipgloss.AdaptiveColor{Light: "#FFC107", Dark: "#FFD54F"}
	red    = lipgloss.AdaptiveColor{Light: "#FE5F86", Dark: "#FE5F86"}
	gray   = lipgloss.AdaptiveColor{Light: "#9E9E9E", Dark: "#BDBDBD"}
)

var labelStyle = lipgloss.NewStyle().Bold(true).Width(13)

var kindColors = map[gojsonrpc2msg.Kind]lipgloss.AdaptiveColor{
	gojsonrpc2msg.KindRequest:      indigo,
	gojsonrpc2msg.KindNotification: blue,
	gojsonrpc2msg.KindResponse:     green,
	gojsonrpc2msg.KindBatch:        yellow,
	gojsonrpc2msg.KindError:        red,
	gojsonrpc2msg.KindException:    red,
}

// label renders the kind name in its color.
func label(k gojsonrpc2msg.Kind) string {
	color, ok := kindColors[k]
	if !ok {
		color = gray
	}
	return labelStyle.Foreground(color).Render(k.String())
}
