package user_repo

import (
	"crash_backend/internal/model"
	"crash_backend/internal/repository"
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "users"
	colID           = "id"
	colUsername     = "username"
	colPasswordHash = "password_hash"
	colBalance      = "balance"
	colIsAdmin      = "is_admin"
	colCreatedAt    = "created_at"
	colLastLogin    = "last_login"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateUser - создает нового пользователя в БД.
// Возвращает ID созданного пользователя
func (r *repo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUsername, colPasswordHash, colBalance, colIsAdmin).
		Values(user.Username, user.Password, user.Balance, user.IsAdmin).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetUserByLogin - возвращает модель пользователя по его имени
func (r *repo) GetUserByLogin(ctx context.Context, username string) (*model.User, error) {
	return r.getUser(ctx, sq.Eq{colUsername: username})
}

// GetUserByID - возвращает модель пользователя по его ID
func (r *repo) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	return r.getUser(ctx, sq.Eq{colID: id})
}

func (r *repo) getUser(ctx context.Context, where sq.Eq) (*model.User, error) {
	// Формируем запрос
	query := sq.Select(colID, colUsername, colPasswordHash, colBalance, colIsAdmin, colCreatedAt, colLastLogin).
		From(table).
		Where(where).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&user.ID, &user.Username, &user.Password, &user.Balance, &user.IsAdmin, &user.CreatedAt, &user.LastLogin)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// DeleteUser - удаляет пользователя по ID
func (r *repo) DeleteUser(ctx context.Context, id int) error {
	query := sq.Delete(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// ListUsers - возвращает всех пользователей, отсортированных по балансу по убыванию
func (r *repo) ListUsers(ctx context.Context) ([]model.User, error) {
	query := sq.Select(colID, colUsername, colPasswordHash, colBalance, colIsAdmin, colCreatedAt, colLastLogin).
		From(table).
		OrderBy(colBalance + " DESC").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var user model.User
		err = rows.Scan(&user.ID, &user.Username, &user.Password, &user.Balance, &user.IsAdmin, &user.CreatedAt, &user.LastLogin)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// GetBalance - получение баланса пользователя по его ID.
// Для несуществующего пользователя возвращает pgx.ErrNoRows
func (r *repo) GetBalance(ctx context.Context, id int) (float64, error) {
	// Формируем запрос
	query := sq.Select(colBalance).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var balance float64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		return 0, err
	}

	return balance, nil
}

// AddBalance - применяет дельту к балансу одним UPDATE.
// Списание и начисление идут через этот метод, чтобы не терять
// конкурентные обновления при read-modify-write
func (r *repo) AddBalance(ctx context.Context, id int, delta float64) error {
	query := sq.Update(table).
		Set(colBalance, sq.Expr(colBalance+" + ?", delta)).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// SetBalance - выставляет баланс в абсолютное значение (админка)
func (r *repo) SetBalance(ctx context.Context, id int, amount float64) error {
	query := sq.Update(table).
		Set(colBalance, amount).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// UpdatePassword - обновляет хэш пароля пользователя
func (r *repo) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	query := sq.Update(table).
		Set(colPasswordHash, passwordHash).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// UpdateLastLogin - отмечает время последнего входа
func (r *repo) UpdateLastLogin(ctx context.Context, id int) error {
	query := sq.Update(table).
		Set(colLastLogin, sq.Expr("NOW()")).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// SetAdmin - выставляет флаг администратора
func (r *repo) SetAdmin(ctx context.Context, id int, isAdmin bool) error {
	query := sq.Update(table).
		Set(colIsAdmin, isAdmin).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}
