package handlers

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"saunactl/internal/control"
)

// commandTimeout bounds how long a handler waits for the control loop to
// pick a command up. The loop ticks every few milliseconds, so hitting this
// means the loop is gone.
const commandTimeout = 2 * time.Second

const errCommandFailed = "controller not responding"

// applyCommand forwards one remote command to the control loop and writes
// the outcome string back as plain text, matching the firmware contract.
func (h *Handler) applyCommand(c *gin.Context, kind control.CommandKind, minutes int) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), commandTimeout)
	defer cancel()

	out, err := h.services.Sauna.Apply(ctx, kind, minutes)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("command apply failed", "err", err, "kind", kind)
		}
		c.String(http.StatusServiceUnavailable, errCommandFailed)
		return
	}
	c.String(http.StatusOK, out.Message)
}

// @Summary      Turn the sauna on with the default duration
// @Description  With nothing on the clock, loads 90 minutes and powers on; otherwise reports "Sauna already on".
// @Tags         sauna
// @Produce      plain
// @Success      200  {string}  string
// @Router       /on [get]
func (h *Handler) turnOn(c *gin.Context) {
	h.applyCommand(c, control.CmdStartDefault, 0)
}

// @Summary      Turn the sauna off
// @Tags         sauna
// @Produce      plain
// @Success      200  {string}  string
// @Router       /off [get]
func (h *Handler) turnOff(c *gin.Context) {
	h.applyCommand(c, control.CmdStop, 0)
}

// @Summary      Add 15 minutes
// @Description  Clamps at 90 minutes. Also raises the stored duration while the sauna is off, without powering on (source firmware behavior, not reachable from the local menu).
// @Tags         sauna
// @Produce      plain
// @Success      200  {string}  string
// @Router       /addtime [get]
func (h *Handler) addTime(c *gin.Context) {
	h.applyCommand(c, control.CmdAddTime, 15)
}

// statusResponse is the wire form the firmware's web client expects.
type statusResponse struct {
	Temp  float64 `json:"temp"`  // one decimal place
	Time  string  `json:"time"`  // MM:SS
	State bool    `json:"state"` // powered
}

// @Summary      Sauna status
// @Tags         sauna
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       /status [get]
func (h *Handler) status(c *gin.Context) {
	snap := h.services.Monitoring.Snapshot()
	c.JSON(http.StatusOK, statusResponse{
		Temp:  math.Round(snap.TemperatureF*10) / 10,
		Time:  snap.Remaining,
		State: snap.Powered,
	})
}

// @Summary      Full controller snapshot
// @Tags         sauna
// @Produce      json
// @Success      200  {object}  saunactl.Snapshot
// @Router       /api/v1/sauna/state [get]
func (h *Handler) getState(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Monitoring.Snapshot())
}
