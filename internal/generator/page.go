package generator

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
   <meta charset="UTF-8"/>
   {{ if gt .Options.RefreshSeconds 0 }}<meta http-equiv="refresh" content="{{ .Options.RefreshSeconds }}">{{ end }}
   <title>Wildfire Dashboard</title>
   <style>
      :root {
         --bg-color: #121212;
         --text-color: #e0e0e0;
         --card-bg: #2A2A2A;
         --panel-bg: #181818;
         --map-bg: #242424;
         --muted: #B0B0B0;
         --accent: #FF7A00;
         --danger: #DC2626;
      }
      body {
         font-family: Arial, sans-serif;
         margin: 0;
         background-color: var(--bg-color);
         color: var(--text-color);
      }
      .alert-banner, .heat-banner {
         color: white;
         padding: 15px 30px;
         text-align: center;
         font-size: 18px;
         font-weight: bold;
         animation: pulse 2s infinite;
      }
      .alert-banner { background: linear-gradient(135deg, #DC2626, #B91C1C); }
      .heat-banner { background-color: #ff0000; }
      @keyframes pulse {
         0%, 100% { opacity: 1; }
         50% { opacity: 0.7; }
      }
      .dashboard { display: flex; }
      .map {
         background: var(--map-bg);
         margin: 20px;
         border-radius: 10px;
         position: relative;
         overflow: hidden;
      }
      .map .legend {
         position: absolute;
         bottom: 10px;
         left: 10px;
         font-size: 14px;
         color: var(--muted);
      }
      .panel {
         background: var(--panel-bg);
         padding: 20px;
         min-width: 240px;
      }
      .panel h3 { color: var(--accent); margin-top: 0; }
      .card {
         background: var(--card-bg);
         padding: 20px 15px;
         margin-top: 10px;
         border-radius: 10px;
         box-shadow: 0 2px 8px rgba(0,0,0,0.2);
      }
      .card .label { color: var(--muted); font-size: 14px; margin-bottom: 5px; }
      .card .value { font-size: 24px; font-weight: bold; color: var(--accent); }
      .card .value.unknown { color: #666; }
      .card.highlight { background: var(--danger); }
      .card.highlight .label, .card.highlight .value { color: #FFF; }
      .card.danger-text .value { color: var(--danger); }
      .updated { font-size: 12px; color: #666; text-align: center; }
      .rendered { font-size: 0.8em; color: #888; margin: 0 20px 20px; }
   </style>
</head>
<body>
   {{ if .Banner.Visible }}<div class="alert-banner" id="alert-banner">⚠️ {{ .Banner.Message }}</div>{{ end }}
   {{ if .Banner.HeatWarning }}<div class="heat-banner" id="heat-banner">🔥 {{ .Banner.HeatMessage }} 🔥</div>{{ end }}

   <main class="dashboard">
      <section class="map">
         <svg id="map" width="{{ .Map.Width }}" height="{{ .Map.Height }}" viewBox="0 0 {{ .Map.Width }} {{ .Map.Height }}">
         {{ range .Map.Markers }}
            <g class="fire" data-fire-id="{{ .ID }}" data-risk="{{ .Level }}">
               {{ if .Halo }}<circle class="halo" cx="{{ .X }}" cy="{{ .Y }}" r="{{ half $.Map.HaloSize }}" fill="none" stroke="{{ .Color }}" stroke-width="2" stroke-dasharray="6 4" opacity="{{ $.HaloOpacity }}"/>{{ end }}
               <circle class="marker" cx="{{ .X }}" cy="{{ .Y }}" r="{{ half $.Map.MarkerSize }}" fill="{{ .Color }}" stroke="white" stroke-width="2"><title>{{ .Title }}</title></circle>
            </g>
         {{ end }}
         </svg>
         <p class="legend">
            <span style="color:{{ .LegendHigh }}">●</span> High
            <span style="color:{{ .LegendMod }}">●</span> Moderate
            <span style="color:{{ .LegendLow }}">●</span> Low
            ◌ Predicted Zone
         </p>
      </section>

      <aside class="panel">
         <h3>Live Data</h3>

         <div class="card">
            <div class="label">Temperature 🌡️</div>
            <div class="value{{ if not .Panel.TemperatureKnown }} unknown{{ end }}" id="temperature">{{ .Panel.Temperature }}</div>
            {{ if .Panel.SensorID }}<div class="label">Sensor: {{ .Panel.SensorID }}</div>{{ end }}
            {{ if .Panel.Location }}<div class="label">Location: {{ .Panel.Location }}</div>{{ end }}
         </div>

         <div class="card">
            <div class="label">Avg Temperature 🌡️</div>
            <div class="value" id="average-temperature">{{ .Panel.AverageTemperature }}</div>
         </div>

         <div class="card{{ if .Panel.HighRiskHighlight }} highlight{{ else }} danger-text{{ end }}">
            <div class="label">High Risk Fires ⚠️</div>
            <div class="value" id="high-risk-count">{{ .Panel.HighRiskCount }}</div>
         </div>

         <div class="card updated">Last updated: <span id="last-updated">{{ .Panel.LastUpdated }}</span></div>
      </aside>
   </main>

   <div class="rendered">Rendered {{ .LastRendered }}</div>

   {{ if .Options.LiveURL }}
   <script>
      (function() {
         var proto = location.protocol === "https:" ? "wss://" : "ws://";
         var rendered = {{ toJSON .Digest }};
         var ws = new WebSocket(proto + location.host + {{ .Options.LiveURL }});
         ws.onmessage = function(e) {
            try {
               var v = JSON.parse(e.data);
               if (v.digest && v.digest !== rendered) {
                  location.reload();
               }
            } catch (err) {}
         };
         ws.onclose = function() {
            setTimeout(function() { location.reload(); }, 10000);
         };
      })();
   </script>
   {{ end }}
</body>
</html>
`
