package tui

import (
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/models"
)

const appName = "GoAuthKeeper"

// renderBuildInfoWindow shows the client build metadata; esc closes it.
func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Название приложения", appName},
		{"Версия", info.BuildVersion()},
		{"Дата", info.BuildDate()},
		{"Коммит", info.BuildCommit()},
	}

	body := ""
	for i, row := range rows {
		if i > 0 {
			body += "\n"
		}
		body += fmt.Sprintf("%s │ %s", padRight(row[0], 19), row[1])
	}

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", body, "esc: назад")
}
