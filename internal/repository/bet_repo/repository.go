package bet_repo

import (
	"crash_backend/internal/model"
	"crash_backend/internal/repository"
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table                = "bets"
	colID                = "id"
	colUsername          = "username"
	colBetAmount         = "bet_amount"
	colCashoutMultiplier = "cashout_multiplier"
	colWinAmount         = "win_amount"
	colCrashMultiplier   = "crash_multiplier"
	colCreatedAt         = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewBetRepository(dbc *pgxpool.Pool) repository.BetRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// AddBet - добавляет запись о завершенном раунде в историю.
// Таблица append-only, записи никогда не обновляются
func (r *repo) AddBet(ctx context.Context, bet *model.Bet) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUsername, colBetAmount, colCashoutMultiplier, colWinAmount, colCrashMultiplier).
		Values(bet.Username, bet.BetAmount, bet.CashoutMultiplier, bet.WinAmount, bet.CrashMultiplier).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// GetBets - возвращает последние ставки, новые первыми.
// Пустой username - история по всем пользователям
func (r *repo) GetBets(ctx context.Context, username string, limit int) ([]model.Bet, error) {
	// Формируем запрос
	query := sq.Select(colID, colUsername, colBetAmount, colCashoutMultiplier, colWinAmount, colCrashMultiplier, colCreatedAt).
		From(table).
		OrderBy(colCreatedAt + " DESC, " + colID + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	if username != "" {
		query = query.Where(sq.Eq{colUsername: username})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bets []model.Bet
	for rows.Next() {
		var bet model.Bet
		err = rows.Scan(&bet.ID, &bet.Username, &bet.BetAmount, &bet.CashoutMultiplier, &bet.WinAmount, &bet.CrashMultiplier, &bet.CreatedAt)
		if err != nil {
			return nil, err
		}
		bets = append(bets, bet)
	}

	return bets, rows.Err()
}

// CountBets - количество ставок. Пустой username - по всем пользователям
func (r *repo) CountBets(ctx context.Context, username string) (int, error) {
	query := sq.Select("COUNT(*)").
		From(table).
		PlaceholderFormat(sq.Dollar)

	if username != "" {
		query = query.Where(sq.Eq{colUsername: username})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
