package board

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/idilsaglam/todoboard/internal/config"
)

type keyMap struct {
	Add        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	NextStatus key.Binding
	PrevStatus key.Binding
	SetStatus  key.Binding
	Toggle     key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Quit       key.Binding
	Submit     key.Binding
	Cancel     key.Binding
}

func newKeyMap(kc config.KeyConfig) keyMap {
	bind := func(keys []string, desc string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKeys(keys), desc))
	}
	return keyMap{
		Add:        bind(kc.Add, "add"),
		Edit:       bind(kc.Edit, "edit"),
		Delete:     bind(kc.Delete, "delete"),
		NextStatus: bind(kc.NextStatus, "next status"),
		PrevStatus: bind(kc.PrevStatus, "prev status"),
		SetStatus:  bind([]string{"1", "2", "3"}, "set status"),
		Toggle:     bind(kc.Toggle, "toggle done"),
		NextFilter: bind(kc.NextFilter, "next filter"),
		PrevFilter: bind(kc.PrevFilter, "prev filter"),
		Quit:       bind(kc.Quit, "quit"),
		Submit:     bind([]string{"enter"}, "save"),
		Cancel:     bind([]string{"esc"}, "cancel"),
	}
}

// helpKeys joins key names for the help bar, showing space by name.
func helpKeys(keys []string) string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		out = append(out, k)
	}
	return strings.Join(out, "/")
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.NextStatus, k.Toggle, k.NextFilter, k.Quit}
}

func (k keyMap) fullHelp() []key.Binding {
	return []key.Binding{
		k.Add, k.Edit, k.Delete,
		k.NextStatus, k.PrevStatus, k.SetStatus, k.Toggle,
		k.NextFilter, k.PrevFilter, k.Quit,
	}
}
