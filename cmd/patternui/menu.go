package main

import (
	"patternui/internal/panel"
)

// page is the per-entry payload of the demo menu.
type page struct {
	Body string `json:"body,omitempty" yaml:"body,omitempty"`
}

type entry = panel.Item[string, page]

func demoMenu() panel.Menu[string, page] {
	return panel.Menu[string, page]{
		DefaultActive: "home",
		Items: []entry{
			{
				ID: "home", Title: "Home", Icon: "home",
				Children: []entry{
					{ID: "home", Title: "Home", Active: true, Extra: page{Body: "Welcome."}},
					{ID: "activity", Title: "Activity"},
				},
			},
			{
				ID: "settings", Title: "Settings", Icon: "gears",
				Children: []entry{
					{ID: "profile", Title: "Profile"},
					{
						ID: "dropdownTest", Title: "Dropdown",
						Children: []entry{
							{ID: "dropdownItem1", Title: "Dropdown item 1"},
							{ID: "dropdownItem2", Title: "Dropdown item 2"},
						},
					},
					{ID: "locked", Title: "Locked", Disabled: true},
				},
			},
			{
				ID: "help", Title: "Help", Icon: "question",
				Children: []entry{
					{ID: "docs", Title: "Docs", Extra: page{Body: "Press ctrl+b to toggle the sidebar."}},
				},
			},
		},
	}
}

func loadMenu(path string) (panel.Menu[string, page], error) {
	if path == "" {
		return demoMenu(), nil
	}
	return panel.LoadFile[string, page](path)
}
