package ranking

import (
	"errors"
	"sync"

	"github.com/vfg2006/slack-hot-channels/internal/domain"
)

// ErrRankingNotFound indica que nenhuma execução terminou desde que o processo subiu
var ErrRankingNotFound = errors.New("ranking not found")

type RankingService interface {
	GetLatestRanking() (*domain.Leaderboard, error)
	SaveLatestRanking(leaderboard *domain.Leaderboard)
}

// LeaderboardService mantém em memória o último ranking calculado pelo processo
type LeaderboardService struct {
	mu     sync.RWMutex
	latest *domain.Leaderboard
}

func NewLeaderboardService() RankingService {
	return &LeaderboardService{}
}

func (s *LeaderboardService) GetLatestRanking() (*domain.Leaderboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.latest == nil {
		return nil, ErrRankingNotFound
	}

	latest := *s.latest
	return &latest, nil
}

func (s *LeaderboardService) SaveLatestRanking(leaderboard *domain.Leaderboard) {
	if leaderboard == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest = leaderboard
}
