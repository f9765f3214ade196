package cipher

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Submit key.Binding
	Pick   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "seç")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "aşağı")),
		Submit: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "onayla")),
		Pick:   key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-3", "cevapla")),
		Quit:   key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("Esc", "bitir")),
	}
}
