package server

import (
	"encoding/csv"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"BreakoutSentinel/internal/model"
	"BreakoutSentinel/internal/screener"
)

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="{{.RefreshSeconds}}">
<title>Intraday Breakout Screener</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #ccc; padding: 6px 12px; text-align: left; }
th { background: #f0f0f0; }
.alert { padding: 16px; background: #fcc; border: 3px solid red; border-radius: 8px;
         text-align: center; font-size: 20px; font-weight: bold; margin: 1em 0; }
.double td { background: #ffe5e5; }
.note { color: #777; }
.err { color: #b00; }
form { display: inline; }
</style>
</head>
<body>
<h1>Intraday Breakout Screener with MACD</h1>
{{if .Snapshot}}
<p class="note">Last pass: {{.Snapshot.GeneratedAt.Format "2006-01-02 15:04:05"}} |
scanned {{.Snapshot.Scanned}} symbols | {{.LedgerCount}} symbols notified</p>
{{if .Doubles}}
<div class="alert">DOUBLE BREAKOUT ALERT</div>
<table>
<tr><th>Stock</th><th>CMP</th><th>Breakout Type</th><th>Trend</th><th>MACD</th><th>Signal</th><th>MACD Trend</th></tr>
{{range .Doubles}}
<tr class="double"><td>{{.Symbol}}</td><td>{{printf "%.2f" .Price}}</td><td>{{.BreakoutType}}</td>
<td>{{.Trend}}</td><td>{{printf "%.2f" .MACD}}</td><td>{{printf "%.2f" .Signal}}</td><td>{{.MACDTrend}}</td></tr>
{{end}}
</table>
{{end}}
{{if .Snapshot.Results}}
<table>
<tr><th>Stock</th><th>CMP</th><th>Today Breakout</th><th>2-Day Breakout</th><th>Breakout Type</th>
<th>Trend</th><th>MACD</th><th>Signal</th><th>MACD Trend</th></tr>
{{range .Snapshot.Results}}
<tr{{if .IsDoubleBreakout}} class="double"{{end}}><td>{{.Symbol}}</td><td>{{printf "%.2f" .Price}}</td>
<td>{{.TodayBreakout}}</td><td>{{.TwoDayBreakout}}</td><td>{{.BreakoutType}}</td><td>{{.Trend}}</td>
<td>{{printf "%.2f" .MACD}}</td><td>{{printf "%.2f" .Signal}}</td><td>{{.MACDTrend}}</td></tr>
{{end}}
</table>
<p><a href="/export.csv">Download Breakout CSV</a></p>
{{else}}
<p>No valid breakout data found.</p>
{{end}}
{{range .Snapshot.FetchErrors}}
<p class="err">Data fetch failed for {{.}}</p>
{{end}}
{{else}}
<p>First screening pass is still running. Refresh shortly.</p>
{{end}}
<form method="post" action="/api/refresh"><button>Refresh Now</button></form>
<form method="post" action="/api/ledger/reset"><button>Reset Email Log</button></form>
</body>
</html>
`))

type dashboardData struct {
	Snapshot       *screener.Snapshot
	Doubles        []model.AnalysisResult
	RefreshSeconds int
	LedgerCount    int
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	data := dashboardData{
		Snapshot:       s.sched.Latest(),
		RefreshSeconds: s.refreshSeconds,
		LedgerCount:    s.ledger.Len(),
	}
	if data.Snapshot != nil {
		data.Doubles = data.Snapshot.DoubleBreakouts()
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, data); err != nil {
		log.Printf("[ERROR] render dashboard: %v", err)
	}
}

// csvHeader matches the dashboard table column order.
var csvHeader = []string{
	"Stock", "CMP", "Today Breakout", "2-Day Breakout", "Breakout Type",
	"Trend", "MACD", "Signal", "MACD Trend",
}

func (s *Server) handleExportCSV(w http.ResponseWriter, _ *http.Request) {
	snap := s.sched.Latest()
	if snap == nil {
		http.Error(w, "no pass completed yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="breakout_screener.csv"`)

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		log.Printf("[ERROR] write csv header: %v", err)
		return
	}
	for _, r := range snap.Results {
		row := []string{
			r.Symbol,
			strconv.FormatFloat(r.Price, 'f', 2, 64),
			r.TodayBreakout,
			r.TwoDayBreakout,
			r.BreakoutType,
			string(r.Trend),
			strconv.FormatFloat(r.MACD, 'f', 2, 64),
			strconv.FormatFloat(r.Signal, 'f', 2, 64),
			string(r.MACDTrend),
		}
		if err := cw.Write(row); err != nil {
			log.Printf("[ERROR] write csv row: %v", err)
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Printf("[ERROR] flush csv: %v", err)
	}
}
