// Package logs stores finished games in a SQL database.
package logs

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	_ "github.com/lib/pq"           // postgres driver
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
)

type Repository struct {
	db     *sqlx.DB
	driver string
}

// Game is one row of the games table. Player1 played red.
type Game struct {
	ID               string    `db:"id"`
	Timestamp        time.Time `db:"played_at"`
	Rows             int       `db:"board_rows"`
	Columns          int       `db:"board_columns"`
	Player1, Player2 string
	Result           string `db:"result"`
	Winner           string `db:"winner"`
	Moves            int    `db:"moves"`
	MoveList         string `db:"move_list"`
}

// PlayerGame is one row of the player_games view: a game seen from
// one participant's side.
type PlayerGame struct {
	ID       string `db:"id"`
	Player   string `db:"player"`
	Opponent string `db:"opponent"`
	Color    string `db:"color"`
	Win      string `db:"win"`
	Result   string `db:"result"`
	Rows     int    `db:"board_rows"`
	Columns  int    `db:"board_columns"`
	Moves    int    `db:"moves"`
}

// Open connects to dsn with driver ("sqlite3" or "postgres") and
// creates the schema if it is missing.
func Open(driver, dsn string) (*Repository, error) {
	schema, ok := schemas[driver]
	if !ok {
		return nil, errors.Errorf("unsupported driver %q", driver)
	}
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	if driver == "sqlite3" {
		// Each connection to ":memory:" is a separate database.
		db.SetMaxOpenConns(1)
	}
	for _, stmt := range []struct{ name, sql string }{
		{"games table", schema.games},
		{"player_games view", schema.playerGames},
	} {
		if _, err := db.Exec(stmt.sql); err != nil {
			db.Close()
			return nil, errors.Wrapf(err, "create %s", stmt.name)
		}
	}
	return &Repository{db: db, driver: driver}, nil
}

// NewGame fills in an ID and timestamp for a game about to be stored.
func NewGame(g Game) *Game {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.Timestamp.IsZero() {
		g.Timestamp = time.Now().UTC()
	}
	return &g
}

func (r *Repository) InsertGame(g *Game) error {
	_, err := r.db.NamedExec(insertStmt, g)
	return errors.Wrapf(err, "insert %s", g.ID)
}

// InsertGames stores gs in a single transaction.
func (r *Repository) InsertGames(gs []*Game) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()
	stmt, err := tx.PrepareNamed(insertStmt)
	if err != nil {
		return errors.Wrap(err, "prepare")
	}
	defer stmt.Close()
	for _, g := range gs {
		if _, err := stmt.Exec(g); err != nil {
			return errors.Wrapf(err, "insert %s", g.ID)
		}
	}
	return errors.Wrap(tx.Commit(), "commit")
}

// Games returns every game player took part in, oldest first.
func (r *Repository) Games(player string) ([]PlayerGame, error) {
	var out []PlayerGame
	err := r.db.Select(&out, r.db.Rebind(selectPlayerGames), player)
	return out, errors.Wrapf(err, "games for %q", player)
}

// Count returns the number of stored games.
func (r *Repository) Count() (int, error) {
	var n int
	err := r.db.Get(&n, "SELECT COUNT(*) FROM games")
	return n, errors.Wrap(err, "count")
}

func (r *Repository) Close() error {
	return r.db.Close()
}
