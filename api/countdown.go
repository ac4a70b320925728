package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/voicemaster/voicemaster/domain"
	"github.com/voicemaster/voicemaster/session"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The demo serves browsers from any origin.
		return true
	},
}

// CountdownTick is one websocket frame of the countdown stream.
type CountdownTick struct {
	SecondsLeft int64             `json:"seconds_left"`
	State       domain.TrialState `json:"state"`
}

// TrialCountdown upgrades to a websocket and streams the remaining trial
// time once per configured interval until the client disconnects.
func (h *Handler) TrialCountdown(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	countdown := session.NewCountdown(h.trials, h.config.CountdownInterval)
	err = countdown.Run(c.Request().Context(), func(secondsLeft int64, state domain.TrialState) error {
		frame, err := json.Marshal(CountdownTick{SecondsLeft: secondsLeft, State: state})
		if err != nil {
			return err
		}
		return ws.WriteMessage(websocket.TextMessage, frame)
	})
	if err != nil {
		log.Printf("countdown stream closed: %v", err)
	}
	return nil
}
