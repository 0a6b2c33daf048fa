package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// indexHTML is the embedded control page. It drives the legacy command
// endpoints and re-syncs its local countdown from /status every few seconds,
// so the displayed time ticks smoothly between polls.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Sauna Controller</title>
  <style>
    body { font-family: 'Segoe UI', sans-serif; background: #f5f5f5; color: #333; padding: 20px; text-align: center; }
    h1 { color: #444; margin-bottom: 10px; }
    .status { background: white; display: inline-block; padding: 20px; border-radius: 10px;
              box-shadow: 0 4px 12px rgba(0,0,0,0.1); margin-bottom: 20px; }
    .status p { margin: 10px 0; font-size: 1.2em; }
    button { background: #007aff; color: white; border: none; padding: 15px 25px; font-size: 1.1em;
             border-radius: 8px; cursor: pointer; margin: 10px; box-shadow: 0 2px 6px rgba(0,0,0,0.1); }
    button:hover { background: #005fcc; }
    button:disabled { background: #ccc; cursor: not-allowed; box-shadow: none; }
  </style>
</head>
<body>
  <h1>Sauna Controller</h1>
  <div class="status">
    <p>Temperature: <span id="temp">--</span> &deg;F</p>
    <p>Time Remaining: <span id="time">--</span></p>
    <p>Status: <span id="state">--</span></p>
  </div>
  <button id="onBtn" onclick="sendCommand('/on')">Turn ON</button>
  <button id="offBtn" onclick="sendCommand('/off')">Turn OFF</button>
  <button id="addBtn" onclick="addTimeCommand()">Add 15 min</button>

  <script>
    let saunaOn = false;
    let remainingSeconds = 0;

    function addTimeCommand() {
      fetch('/addtime').then(() => setTimeout(updateStatus, 500));
    }

    function sendCommand(endpoint) {
      fetch(endpoint).then(() => updateStatus());
    }

    function updateStatus() {
      fetch('/status')
        .then(res => res.json())
        .then(data => {
          document.getElementById('temp').textContent = data.temp;
          saunaOn = data.state === true;
          document.getElementById('state').textContent = saunaOn ? 'On' : 'Off';

          document.getElementById('onBtn').disabled = saunaOn;
          document.getElementById('offBtn').disabled = !saunaOn;
          document.getElementById('addBtn').disabled = !saunaOn;

          if (saunaOn) {
            const [mm, ss] = data.time.split(':').map(Number);
            remainingSeconds = mm * 60 + ss;
          } else {
            remainingSeconds = 0;
          }
          updateTimeDisplay();
        });
    }

    function updateTimeDisplay() {
      const mm = Math.floor(remainingSeconds / 60);
      const ss = remainingSeconds % 60;
      document.getElementById('time').textContent =
        mm.toString().padStart(2, '0') + ':' + ss.toString().padStart(2, '0');
    }

    setInterval(() => {
      if (saunaOn && remainingSeconds > 0) {
        remainingSeconds--;
        updateTimeDisplay();
        if (remainingSeconds === 0) {
          document.getElementById('state').textContent = 'Off*';
        }
      }
    }, 1000);

    setInterval(updateStatus, 5000);
    updateStatus();
  </script>
</body>
</html>
`

// @Summary      Control page
// @Tags         sauna
// @Produce      html
// @Success      200  {string}  string
// @Router       / [get]
func (h *Handler) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}
