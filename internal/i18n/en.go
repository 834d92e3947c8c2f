package i18n

// EN is the English dictionary.
var EN = Dictionary{
	Header: HeaderStrings{
		Title:    "Swarm Console",
		Subtitle: "account terminal",
	},
	Server: ServerStrings{
		Label:       "server",
		Checking:    "checking…",
		Online:      "online",
		Offline:     "offline",
		LastChecked: "last checked",
		Never:       "never",
	},
	Auth: AuthStrings{
		RegisterTab:    "Register",
		LoginTab:       "Log in",
		Nickname:       "Nickname",
		Email:          "Email",
		Password:       "Password",
		RegisterSubmit: "Create account",
		LoginSubmit:    "Log in",
		Submitting:     "working…",
	},
	Session: SessionStrings{
		Title:      "Session",
		Nickname:   "Nickname",
		Email:      "Email",
		UserID:     "User ID",
		Role:       "Role",
		RoleAdmin:  "administrator",
		RoleMember: "member",
		CreatedAt:  "Registered",
		Refreshing: "refreshing…",
		Refresh:    "refresh profile",
		CopyToken:  "copy token",
		SignOut:    "sign out",
	},
	Notices: NoticeStrings{
		Registered:       "Account created, welcome aboard!",
		LoggedIn:         "Logged in.",
		SignedOut:        "Signed out.",
		SessionRefreshed: "Profile refreshed.",
		TokenCopied:      "Token copied to clipboard.",
		UnexpectedError:  "Something went wrong, please try again.",
	},
}
