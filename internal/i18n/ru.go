package i18n

// RU is the Russian dictionary.
var RU = Dictionary{
	Header: HeaderStrings{
		Title:    "Swarm Console",
		Subtitle: "терминал аккаунта",
	},
	Server: ServerStrings{
		Label:       "сервер",
		Checking:    "проверка…",
		Online:      "в сети",
		Offline:     "недоступен",
		LastChecked: "проверено",
		Never:       "ещё не проверялся",
	},
	Auth: AuthStrings{
		RegisterTab:    "Регистрация",
		LoginTab:       "Вход",
		Nickname:       "Никнейм",
		Email:          "Почта",
		Password:       "Пароль",
		RegisterSubmit: "Создать аккаунт",
		LoginSubmit:    "Войти",
		Submitting:     "выполняется…",
	},
	Session: SessionStrings{
		Title:      "Сессия",
		Nickname:   "Никнейм",
		Email:      "Почта",
		UserID:     "ID пользователя",
		Role:       "Роль",
		RoleAdmin:  "администратор",
		RoleMember: "участник",
		CreatedAt:  "Зарегистрирован",
		Refreshing: "обновление…",
		Refresh:    "обновить профиль",
		CopyToken:  "скопировать токен",
		SignOut:    "выйти",
	},
	Notices: NoticeStrings{
		Registered:       "Аккаунт создан, добро пожаловать!",
		LoggedIn:         "Вход выполнен.",
		SignedOut:        "Вы вышли из аккаунта.",
		SessionRefreshed: "Профиль обновлён.",
		TokenCopied:      "Токен скопирован в буфер обмена.",
		UnexpectedError:  "Что-то пошло не так, попробуйте ещё раз.",
	},
}
