package ws

// Minimal client: draws the grid rows and offers regenerate and set controls
const indexPage = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Caves</title>
<style>
body { background: #111; color: #ccc; font-family: monospace; }
pre { line-height: 1; font-size: 8px; }
input { background: #222; color: #ccc; border: 1px solid #444; }
</style>
</head>
<body>
<div>
  <input id="seed" placeholder="seed (blank for random)">
  <button id="regen">Regenerate</button>
  <input id="field" placeholder="field">
  <input id="value" placeholder="value">
  <button id="set">Set</button>
</div>
<div id="info"></div>
<pre id="grid"></pre>
<script>
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/stream");
const send = (type, payload) => ws.send(JSON.stringify({type, payload}));
ws.onmessage = (ev) => {
  const msg = JSON.parse(ev.data);
  if (msg.type === "Error") {
    document.getElementById("info").textContent = "error: " + msg.payload.message;
    return;
  }
  const s = msg.payload;
  document.getElementById("info").textContent =
    s.seed + " (" + s.seedAlgorithm + ") " + s.width + "x" + s.height +
    ", rooms " + s.roomCount + ", triangles " + (s.floor.indices.length / 3) +
    ", outlines " + s.outlines.length;
  document.getElementById("grid").textContent = s.rows.slice().reverse().join("\n");
};
document.getElementById("regen").onclick = () => {
  const seed = document.getElementById("seed").value;
  send("Regenerate", seed ? {seed} : {});
};
document.getElementById("set").onclick = () => {
  const raw = document.getElementById("value").value;
  let value = raw;
  try { value = JSON.parse(raw); } catch (e) {}
  send("Set", {field: document.getElementById("field").value, value});
};
</script>
</body>
</html>
`
