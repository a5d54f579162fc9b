package web

import "github.com/mdashik24x7/portfolio/internal/icon"

// lucide icon names, resolved at render time.
var lucideNames = map[icon.Icon]string{
	icon.Scissors:      "scissors",
	icon.Image:         "image",
	icon.Layout:        "layout",
	icon.Clapperboard:  "clapperboard",
	icon.Layers:        "layers",
	icon.Frame:         "frame",
	icon.PenTool:       "pen-tool",
	icon.Sparkles:      "sparkles",
	icon.Monitor:       "monitor",
	icon.Code:          "code",
	icon.Terminal:      "terminal",
	icon.Youtube:       "youtube",
	icon.MessageSquare: "message-square",
	icon.Facebook:      "facebook",
	icon.Gamepad:       "gamepad-2",
	icon.Music:         "music",
	icon.Mail:          "mail",
	icon.Calendar:      "calendar",
	icon.MapPin:        "map-pin",
	icon.GraduationCap: "graduation-cap",
	icon.Cpu:           "cpu",
	icon.Wrench:        "wrench",
	icon.ArrowRight:    "arrow-right",
	icon.Sun:           "sun",
	icon.Moon:          "moon",
	icon.Menu:          "menu",
	icon.X:             "x",
}

func lucide(i icon.Icon) string {
	return lucideNames[i]
}
