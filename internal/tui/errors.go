package tui

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/internal/adapter"
)

const (
	msgNoSession   = "Сессия не найдена, войдите снова"
	msgConflict    = "Пользователь с таким логином или e-mail уже существует"
	msgUnreachable = "Отсутствует сеть или Сервер недоступен"
)

// transport failures that resty reports as plain strings
var unreachableMarkers = []string{
	"connection refused",
	"no such host",
	"network is unreachable",
	"i/o timeout",
}

// humanizeError turns adapter and network errors into a status-line message.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var netErr net.Error
	switch {
	case errors.Is(err, adapter.ErrNoSession):
		return msgNoSession
	case errors.Is(err, adapter.ErrConflict):
		return msgConflict
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr):
		return msgUnreachable
	}

	lower := strings.ToLower(err.Error())
	for _, marker := range unreachableMarkers {
		if strings.Contains(lower, marker) {
			return msgUnreachable
		}
	}
	return err.Error()
}
