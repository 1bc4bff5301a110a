package history

import (
	"context"
	"testing"
	"time"

	"crash_backend/internal/config"
	"crash_backend/internal/model"
)

type stubGameConfig struct{}

func (stubGameConfig) Tiers() []config.GameTier  { return nil }
func (stubGameConfig) StartingBalance() float64  { return 10000.0 }
func (stubGameConfig) CrashHistoryLimit() int    { return 50 }

// mockUserRepo - мок-реализация repository.UserRepository
type mockUserRepo struct {
	users []model.User
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	return 0, nil
}
func (m *mockUserRepo) GetUserByLogin(ctx context.Context, username string) (*model.User, error) {
	return nil, nil
}
func (m *mockUserRepo) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			return &m.users[i], nil
		}
	}
	return nil, nil
}
func (m *mockUserRepo) DeleteUser(ctx context.Context, id int) error { return nil }
func (m *mockUserRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	return m.users, nil
}
func (m *mockUserRepo) GetBalance(ctx context.Context, id int) (float64, error)     { return 0, nil }
func (m *mockUserRepo) AddBalance(ctx context.Context, id int, delta float64) error { return nil }
func (m *mockUserRepo) SetBalance(ctx context.Context, id int, amount float64) error {
	return nil
}
func (m *mockUserRepo) UpdatePassword(ctx context.Context, id int, hash string) error { return nil }
func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, id int) error             { return nil }
func (m *mockUserRepo) SetAdmin(ctx context.Context, id int, isAdmin bool) error      { return nil }

// mockBetRepo - мок-реализация repository.BetRepository
type mockBetRepo struct {
	bets []model.Bet
}

func (m *mockBetRepo) AddBet(ctx context.Context, bet *model.Bet) error { return nil }
func (m *mockBetRepo) GetBets(ctx context.Context, username string, limit int) ([]model.Bet, error) {
	if username == "" {
		return m.bets, nil
	}
	var filtered []model.Bet
	for _, bet := range m.bets {
		if bet.Username == username {
			filtered = append(filtered, bet)
		}
	}
	return filtered, nil
}
func (m *mockBetRepo) CountBets(ctx context.Context, username string) (int, error) {
	bets, _ := m.GetBets(ctx, username, 0)
	return len(bets), nil
}

func TestMyBets_Stats(t *testing.T) {
	now := time.Now()
	userRepo := &mockUserRepo{users: []model.User{{ID: 1, Username: "player", Balance: 9000}}}
	betRepo := &mockBetRepo{bets: []model.Bet{
		{Username: "player", BetAmount: 1000, CashoutMultiplier: 2.0, WinAmount: 2000, CrashMultiplier: 3.5, CreatedAt: now},
		{Username: "player", BetAmount: 500, CashoutMultiplier: 1.8, WinAmount: 0, CrashMultiplier: 1.8, CreatedAt: now},
		{Username: "other", BetAmount: 100, CashoutMultiplier: 1.1, WinAmount: 110, CrashMultiplier: 2.0, CreatedAt: now},
	}}

	s := NewHistoryService(betRepo, userRepo, stubGameConfig{})

	bets, stats, err := s.MyBets(context.Background(), 1, 100)
	if err != nil {
		t.Fatalf("MyBets: %v", err)
	}

	// Чужие ставки не попадают в выборку
	if len(bets) != 2 {
		t.Fatalf("ставок %d, ожидалось 2", len(bets))
	}
	if stats.TotalBets != 2 || stats.TotalWagered != 1500 || stats.TotalWon != 2000 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.NetProfit != 500 {
		t.Errorf("net profit = %v, ожидалось 500", stats.NetProfit)
	}
}

func TestCrashHistory_Stats(t *testing.T) {
	now := time.Now()
	betRepo := &mockBetRepo{bets: []model.Bet{
		{Username: "a", CrashMultiplier: 2.0, CreatedAt: now},
		{Username: "b", CrashMultiplier: 6.0, CreatedAt: now},
		{Username: "c", CrashMultiplier: 4.0, CreatedAt: now},
	}}

	s := NewHistoryService(betRepo, &mockUserRepo{}, stubGameConfig{})

	bets, stats, err := s.CrashHistory(context.Background())
	if err != nil {
		t.Fatalf("CrashHistory: %v", err)
	}

	if len(bets) != 3 {
		t.Fatalf("записей %d, ожидалось 3", len(bets))
	}
	if stats.Average != 4.0 || stats.Highest != 6.0 || stats.Lowest != 2.0 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestCrashHistory_Empty(t *testing.T) {
	s := NewHistoryService(&mockBetRepo{}, &mockUserRepo{}, stubGameConfig{})

	bets, stats, err := s.CrashHistory(context.Background())
	if err != nil {
		t.Fatalf("CrashHistory: %v", err)
	}
	if len(bets) != 0 {
		t.Errorf("записей %d, ожидалось 0", len(bets))
	}
	if stats.Average != 0 || stats.Highest != 0 || stats.Lowest != 0 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestLeaderboard_ExcludesAdminsAndRanks(t *testing.T) {
	userRepo := &mockUserRepo{users: []model.User{
		{ID: 1, Username: "rich", Balance: 50000},
		{ID: 2, Username: "admin", Balance: 100000, IsAdmin: true},
		{ID: 3, Username: "mid", Balance: 20000},
		{ID: 4, Username: "poor", Balance: 5000},
	}}

	s := NewHistoryService(&mockBetRepo{}, userRepo, stubGameConfig{})

	entries, err := s.Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("строк %d, ожидалось 3 (админ исключен)", len(entries))
	}

	wantOrder := []string{"rich", "mid", "poor"}
	for i, want := range wantOrder {
		if entries[i].Username != want {
			t.Errorf("строка %d: %s, ожидалось %s", i, entries[i].Username, want)
		}
		if entries[i].Rank != i+1 {
			t.Errorf("строка %d: ранг %d, ожидалось %d", i, entries[i].Rank, i+1)
		}
	}
}

func TestProfile(t *testing.T) {
	now := time.Now()
	userRepo := &mockUserRepo{users: []model.User{
		{ID: 1, Username: "rich", Balance: 50000},
		{ID: 3, Username: "mid", Balance: 20000},
	}}
	betRepo := &mockBetRepo{bets: []model.Bet{
		{Username: "mid", BetAmount: 100, CreatedAt: now},
		{Username: "mid", BetAmount: 200, CreatedAt: now},
	}}

	s := NewHistoryService(betRepo, userRepo, stubGameConfig{})

	profile, err := s.Profile(context.Background(), 3)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}

	if profile.Username != "mid" || profile.Balance != 20000 {
		t.Errorf("profile = %+v", profile)
	}
	if profile.Rank != 2 {
		t.Errorf("rank = %d, ожидалось 2", profile.Rank)
	}
	if profile.TotalBets != 2 {
		t.Errorf("total bets = %d, ожидалось 2", profile.TotalBets)
	}
}
