package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"RotationSentinel/internal/model"
)

// Renderer writes the static HTML report for a completed run. The file is
// written atomically so a crashed run never leaves a truncated page behind.
type Renderer struct {
	OutputPath string
}

func New(outputPath string) *Renderer {
	return &Renderer{OutputPath: outputPath}
}

var tmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct": func(v float64) string { return fmt.Sprintf("%+.2f%%", v*100) },
	"adx": func(snap *model.RunSnapshot) string {
		if !snap.ADXValid {
			return "unknown"
		}
		return fmt.Sprintf("%.1f", snap.MarketADX)
	},
}).Parse(pageTemplate))

// Render writes the report page for the snapshot.
func (r *Renderer) Render(snap *model.RunSnapshot) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, snap); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	dir := filepath.Dir(r.OutputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "report-*.html")
	if err != nil {
		return fmt.Errorf("create temp report: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), r.OutputPath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("publish report: %w", err)
	}
	return nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
<meta charset="utf-8">
<title>ETF 轮动信号 | {{.Date}}</title>
<style>
body { font-family: -apple-system, "PingFang SC", "Microsoft YaHei", sans-serif; margin: 2em auto; max-width: 860px; color: #222; }
.card { border: 1px solid #ddd; border-radius: 8px; padding: 1em 1.5em; margin-bottom: 1.5em; }
.signal { font-size: 1.4em; font-weight: 600; }
.healthy { color: #1a7f37; } .caution { color: #b08800; } .warning { color: #cf222e; }
table { border-collapse: collapse; width: 100%; }
th, td { border-bottom: 1px solid #eee; padding: 0.4em 0.6em; text-align: right; }
th:first-child, td:first-child { text-align: left; }
.warn-list { color: #b08800; font-size: 0.9em; }
footer { color: #888; font-size: 0.8em; }
</style>
</head>
<body>
<h1>ETF 轮动信号 <small>{{.Date}}</small></h1>

<div class="card">
  <div class="signal">{{.Decision.Label}}</div>
  <p>目标标的: <b>{{.Decision.ETFCode}}</b>{{if .Decision.Asset}} ({{.Decision.Asset.Name}}){{end}}
  | 建议仓位: <b>{{.Decision.Position}}</b></p>
  {{if .Decision.Reason}}<p>原因: {{.Decision.Reason}}</p>{{end}}
  <p>市场趋势: {{.TrendStatus}} (ADX: {{adx .}})</p>
</div>

<div class="card">
  <h2>策略健康度 <span class="{{.Health.Status}}">{{.Health.Score}} / 100 ({{.Health.Status}})</span></h2>
  <table>
    <tr><th>胜率</th><th>连亏次数</th><th>当前回撤</th><th>夏普比率</th></tr>
    <tr>
      <td>{{pct .Health.WinRate}}</td>
      <td>{{.Health.ConsecutiveLosses}}</td>
      <td>{{pct .Health.CurrentDrawdown}}</td>
      <td>{{printf "%.2f" .Health.SharpeRatio}}</td>
    </tr>
  </table>
</div>

<div class="card">
  <h2>动量排名</h2>
  <table>
    <tr><th>资产</th><th>ETF</th><th>动量</th><th>调整后</th><th>收盘</th><th>日期</th></tr>
    {{range .Rankings}}
    <tr>
      <td>{{.Name}}</td>
      <td>{{.ETFCode}}</td>
      <td>{{pct .Momentum}}</td>
      <td>{{pct .AdjustedMomentum}}</td>
      <td>{{printf "%.3f" .LastClose}}</td>
      <td>{{.LastDate.Format "2006-01-02"}}</td>
    </tr>
    {{end}}
  </table>
</div>

{{if .ActiveEvents}}
<div class="card">
  <h2>生效事件</h2>
  <ul>
    {{range .ActiveEvents}}
    <li><b>{{.Name}}</b> ({{.StartDate}} ~ {{.EndDate}}){{if .Description}} — {{.Description}}{{end}}</li>
    {{end}}
  </ul>
</div>
{{end}}

{{if .Warnings}}
<div class="card warn-list">
  <h2>提示</h2>
  <ul>{{range .Warnings}}<li>{{.}}</li>{{end}}</ul>
</div>
{{end}}

<footer>generated at {{.GeneratedAt.Format "2006-01-02 15:04:05"}}</footer>
</body>
</html>
`
