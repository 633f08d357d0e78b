package domain

import (
	"strconv"
	"time"
)

// RankingLocation é o fuso fixo (UTC+9) onde a virada do dia é calculada
var RankingLocation = time.FixedZone("UTC+9", 9*60*60)

// Window é um intervalo [Oldest, Latest) de um dia de histórico
type Window struct {
	Oldest time.Time
	Latest time.Time
}

// OldestUnix retorna o início da janela em segundos unix, no formato esperado pelo Slack
func (w Window) OldestUnix() string {
	return strconv.FormatInt(w.Oldest.Unix(), 10)
}

// LatestUnix retorna o fim da janela em segundos unix, no formato esperado pelo Slack
func (w Window) LatestUnix() string {
	return strconv.FormatInt(w.Latest.Unix(), 10)
}

// ReportPeriod agrupa as janelas de hoje e de ontem usadas em uma execução
type ReportPeriod struct {
	Date      string // Formato yyyy-mm-dd do dia apurado
	Today     Window
	Yesterday Window
}

// NewReportPeriod calcula as janelas a partir do dia atual em UTC+9 e da hora de virada.
// A janela de hoje termina no horário de virada do dia corrente, mesmo que ele ainda não tenha chegado.
func NewReportPeriod(now time.Time, switchingHour int) ReportPeriod {
	local := now.In(RankingLocation)
	boundary := time.Date(local.Year(), local.Month(), local.Day(), switchingHour, 0, 0, 0, RankingLocation)

	dayBefore := boundary.AddDate(0, 0, -1)
	twoDaysBefore := boundary.AddDate(0, 0, -2)

	return ReportPeriod{
		Date:      dayBefore.Format(time.DateOnly),
		Today:     Window{Oldest: dayBefore, Latest: boundary},
		Yesterday: Window{Oldest: twoDaysBefore, Latest: dayBefore},
	}
}
