package notifier

import (
	"fmt"
	"strings"

	"RotationSentinel/internal/model"
)

// FormatDailyReport formats the day's rotation decision for Telegram.
func FormatDailyReport(snap *model.RunSnapshot) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>ETF 轮动信号</b> | %s\n\n", snap.Date))
	b.WriteString(fmt.Sprintf("信号: <b>%s</b>\n", snap.Decision.Label))
	b.WriteString(fmt.Sprintf("目标: %s", snap.Decision.ETFCode))
	if snap.Decision.Asset != nil {
		b.WriteString(fmt.Sprintf(" (%s)", snap.Decision.Asset.Name))
	}
	b.WriteString(fmt.Sprintf("\n建议仓位: %s\n", snap.Decision.Position))

	if snap.ADXValid {
		b.WriteString(fmt.Sprintf("市场趋势: %s (ADX %.1f)\n", snap.TrendStatus, snap.MarketADX))
	} else {
		b.WriteString("市场趋势: 未知 (历史数据不足)\n")
	}

	if len(snap.Rankings) > 0 {
		b.WriteString("\n📈 <b>动量排名:</b>\n")
		for i, a := range snap.Rankings {
			b.WriteString(fmt.Sprintf("  %d. %s (%s): %+.2f%%", i+1, a.Name, a.ETFCode, a.AdjustedMomentum*100))
			if a.AdjustedMomentum != a.Momentum {
				b.WriteString(fmt.Sprintf(" (原始 %+.2f%%)", a.Momentum*100))
			}
			b.WriteString("\n")
		}
	}

	if len(snap.ActiveEvents) > 0 {
		b.WriteString("\n📌 <b>生效事件:</b>\n")
		for _, e := range snap.ActiveEvents {
			b.WriteString(fmt.Sprintf("  • %s (%s ~ %s)\n", e.Name, e.StartDate, e.EndDate))
		}
	}

	b.WriteString("\n" + FormatHealth(snap.Health))

	if len(snap.Warnings) > 0 {
		b.WriteString("\n⚠️ ")
		b.WriteString(strings.Join(snap.Warnings, "; "))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatHealth formats the health snapshot for display.
func FormatHealth(h *model.HealthSnapshot) string {
	var b strings.Builder
	icon := "✅"
	switch h.Status {
	case model.HealthCaution:
		icon = "🟡"
	case model.HealthWarning:
		icon = "🔴"
	}
	b.WriteString(fmt.Sprintf("%s <b>策略健康度: %d/100 (%s)</b>\n", icon, h.Score, h.Status))
	b.WriteString(fmt.Sprintf("  胜率: %.0f%% | 连亏: %d | 回撤: %+.1f%% | 夏普: %.2f\n",
		h.WinRate*100, h.ConsecutiveLosses, h.CurrentDrawdown*100, h.SharpeRatio))
	return b.String()
}
