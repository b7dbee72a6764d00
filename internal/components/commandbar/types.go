package commandbar

import "github.com/bloopai/bloop-tui/internal/state"

// stepPage describes what the command bar shows for one step.
type stepPage struct {
	title string
	hint  string
	empty string // body for steps whose content comes from the server
}

var stepPages = map[state.CommandBarStepID]stepPage{
	state.StepHome: {
		title: "Commands",
		hint:  "type to filter  ↑/↓ select  enter run  esc close",
	},
	state.StepPrivateRepos: {
		title: "Private repositories",
		hint:  "esc back",
		empty: "No private repositories indexed yet",
	},
	state.StepPublicRepos: {
		title: "Public repositories",
		hint:  "esc back",
		empty: "No public repositories added yet",
	},
	state.StepLocalRepos: {
		title: "Local repositories",
		hint:  "esc back",
		empty: "No local folders added yet",
	},
	state.StepDocs: {
		title: "Add docs",
		hint:  "esc back",
		empty: "No documentation sources added yet",
	},
	state.StepManageRepos: {
		title: "Manage repositories",
		hint:  "esc back",
		empty: "Nothing to manage yet",
	},
	state.StepCreateProject: {
		title: "Create project",
		hint:  "esc back",
		empty: "Projects group repositories and docs for one search scope",
	},
}

func pageFor(id state.CommandBarStepID) stepPage {
	if page, ok := stepPages[id]; ok {
		return page
	}
	return stepPage{title: id.String(), hint: "esc back"}
}
