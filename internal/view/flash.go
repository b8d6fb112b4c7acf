package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
)

// FlashData carries one render's worth of flash messages into the layout.
type FlashData struct {
	Success []string
	Error   []string
}

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) {
	sess, _ := session.Get(flashSessionName, c)
	sess.AddFlash(message, key)
	sess.Save(c.Request(), c.Response())
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// GetFlashData retrieves and clears flash messages from the session.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, _ := session.Get(flashSessionName, c)

	// Flashes() retrieves and then clears the flashes from the session, so
	// the session must be saved afterwards to persist the clearing.
	successFlashes := sess.Flashes(flashKeySuccess)
	errorFlashes := sess.Flashes(flashKeyError)

	if len(successFlashes) == 0 && len(errorFlashes) == 0 {
		return data
	}

	for _, f := range successFlashes {
		if msg, ok := f.(string); ok {
			data.Success = append(data.Success, msg)
		}
	}
	for _, f := range errorFlashes {
		if msg, ok := f.(string); ok {
			data.Error = append(data.Error, msg)
		}
	}

	_ = sess.Save(c.Request(), c.Response())
	return data
}
