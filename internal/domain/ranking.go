package domain

import "time"

type Ranking struct {
	Channel AggregatedData `json:"channel"`
	Rank    int            `json:"rank"`
}

type RankingDiff struct {
	Ranking
	Diff int `json:"diff"` // Valor positivo = subiu, negativo = desceu, 0 = manteve ou canal novo
}

// TrendGlyphs são os emojis usados para indicar a variação de posição
type TrendGlyphs struct {
	Sideways string
	Up       string
	Down     string
}

// Leaderboard é o resultado completo da última execução
type Leaderboard struct {
	RunID         string        `json:"run_id"`
	Date          string        `json:"date"`
	SumOfMessages int           `json:"sum_of_messages"`
	Rankings      []RankingDiff `json:"rankings"`
	Post          PostData      `json:"post"`
	Published     bool          `json:"published"`
	GeneratedAt   time.Time     `json:"generated_at"`
}
