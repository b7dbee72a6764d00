package actions

import "time"

// Catalog action names
const (
	ToggleLightTheme         Name = "toggle-light-theme"
	ToggleDarkTheme          Name = "toggle-dark-theme"
	ToggleBlackTheme         Name = "toggle-black-theme"
	ToggleSystemTheme        Name = "toggle-system-theme"
	OpenPrivateRepos         Name = "open-private-repos"
	OpenPublicRepos          Name = "open-public-repos"
	OpenLocalRepos           Name = "open-local-repos"
	OpenAddDocs              Name = "open-add-docs"
	OpenManageRepos          Name = "open-manage-repos"
	CreateNewProject         Name = "create-new-project"
	OpenProjectSettings      Name = "open-project-settings"
	OpenSettings             Name = "open-settings"
	OpenSubscriptionSettings Name = "open-subscription-settings"
	OpenAppDocs              Name = "open-app-docs"
	ReportBug                Name = "report-bug"
	SignOut                  Name = "sign-out"
	ToggleRegex              Name = "toggle-regex"
)

// DefaultDocsURL is opened by the app docs action.
const DefaultDocsURL = "https://bloop.ai/docs"

// DefaultSignOutTimeout bounds the sign-out collaborator call.
const DefaultSignOutTimeout = 10 * time.Second
